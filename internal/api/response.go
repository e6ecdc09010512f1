package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"strings"  // Message casing

	"money_tracker/internal/domain"     // Domain error types
	"money_tracker/internal/middleware" // Request id lookup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// respondError maps err onto the HTTP contract: 422 for validation, 404 for missing
// entities, 500 for everything else
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.", // Summary
			"errors":  verr.Fields,                   // Messages per failing field
		})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage(nf.Resource)})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c), // Request correlation id
			"route":      c.FullPath(),               // Matched route
			"error":      err.Error(),                // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	}
}

// notFoundMessage turns "wallet" into "Wallet not found."
func notFoundMessage(resource string) string {
	if resource == "" {
		return "Resource not found."
	}
	return strings.ToUpper(resource[:1]) + resource[1:] + " not found."
}
