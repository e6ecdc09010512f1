package api

import (
	"net/http" // HTTP status codes

	"money_tracker/internal/middleware" // Request id lookup
	"money_tracker/internal/service"    // Bookkeeping operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AddTransactionRequest represents an income or expense entry
type AddTransactionRequest struct {
	Type        any `json:"type"`        // income or expense
	Amount      any `json:"amount"`      // Number or numeric string
	Description any `json:"description"` // Optional note
}

// AddTransactionHandler records a transaction and returns the wallet's new balance
func AddTransactionHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		walletID, err := pathID(c, "wallet")
		if err != nil {
			respondError(c, err)
			return
		}
		var req AddTransactionRequest
		decoded := bindJSON(c, &req) // Reported by the service once the wallet is known to exist
		rec, err := svc.AddTransaction(c.Request.Context(), walletID, service.AddTransactionInput{
			Type:         stringValue(stringField(decoded, "type", req.Type, "The selected type is invalid.")),
			Amount:       amountText(req.Amount),
			Description:  stringField(decoded, "description", req.Description, "The description must be a string."),
			DecodeErrors: decoded,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		// Log the recorded entry
		logrus.WithFields(logrus.Fields{
			"request_id":     middleware.GetRequestID(c),
			"wallet_id":      walletID,
			"transaction_id": rec.Transaction.ID,
			"type":           rec.Transaction.Type,
			"amount":         rec.Transaction.Amount.String(),
		}).Info("Transaction recorded")
		c.JSON(http.StatusCreated, gin.H{
			"message":        "Transaction recorded successfully.",
			"data":           rec.Transaction,
			"wallet_balance": rec.WalletBalance,
		})
	}
}

// stringValue dereferences s, treating nil as empty
func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
