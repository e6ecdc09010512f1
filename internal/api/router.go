package api

import (
	"money_tracker/internal/middleware" // Request id and logging middleware
	"money_tracker/internal/service"    // Bookkeeping operations

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every route. No authentication is applied; any caller may read
// or write any user's data.
func NewRouter(svc *service.Service, gdb *gorm.DB) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	r.GET("/healthz", HealthHandler(gdb))

	// User routes
	r.POST("/users", CreateUserHandler(svc))               // Create user
	r.GET("/users/:id", GetUserHandler(svc))               // View user profile
	r.POST("/users/:id/wallets", CreateWalletHandler(svc)) // Create wallet for a user

	// Wallet routes
	r.GET("/wallets/:id", GetWalletHandler(svc))                    // View wallet
	r.POST("/wallets/:id/transactions", AddTransactionHandler(svc)) // Add transaction

	return r, nil
}
