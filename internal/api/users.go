package api

import (
	"net/http" // HTTP status codes

	"money_tracker/internal/middleware" // Request id lookup
	"money_tracker/internal/service"    // Bookkeeping operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Name  any `json:"name"`  // Display name
	Email any `json:"email"` // Unique email address
}

// CreateUserHandler registers a new user
func CreateUserHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest    // Bind JSON request to struct
		decoded := bindJSON(c, &req) // Body and field type problems
		user, err := svc.CreateUser(c.Request.Context(), service.CreateUserInput{
			Name:         textField(decoded, "name", req.Name),
			Email:        textField(decoded, "email", req.Email),
			DecodeErrors: decoded,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"user_id":    user.ID,
		}).Info("User created")
		c.JSON(http.StatusCreated, gin.H{"message": "User account created successfully.", "data": user})
	}
}

// GetUserHandler returns a user's profile with wallet balances and their total
func GetUserHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "user")
		if err != nil {
			respondError(c, err)
			return
		}
		profile, err := svc.GetUserProfile(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": profile})
	}
}
