package api

import (
	"net/http" // HTTP status codes

	"money_tracker/internal/middleware" // Request id lookup
	"money_tracker/internal/service"    // Bookkeeping operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateWalletRequest represents a wallet creation request
type CreateWalletRequest struct {
	Name any `json:"name"` // Friendly label, e.g. "Business A"
}

// CreateWalletHandler opens a wallet for the user in the path; a user may own many
func CreateWalletHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "user")
		if err != nil {
			respondError(c, err)
			return
		}
		var req CreateWalletRequest
		decoded := bindJSON(c, &req) // Reported by the service once the user is known to exist
		wallet, err := svc.CreateWallet(c.Request.Context(), userID, service.CreateWalletInput{
			Name:         textField(decoded, "name", req.Name),
			DecodeErrors: decoded,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful wallet creation
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"user_id":    wallet.UserID,
			"wallet_id":  wallet.ID,
		}).Info("Wallet created")
		c.JSON(http.StatusCreated, gin.H{"message": "Wallet created successfully.", "data": wallet})
	}
}

// GetWalletHandler returns a wallet with its balance and transactions, newest first
func GetWalletHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "wallet")
		if err != nil {
			respondError(c, err)
			return
		}
		detail, err := svc.GetWalletDetail(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": detail})
	}
}
