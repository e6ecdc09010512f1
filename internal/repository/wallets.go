package repository

import (
	"context"
	"errors"
	"fmt"

	"money_tracker/internal/domain"

	"gorm.io/gorm"
)

// WalletRepository persists wallets
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository wraps a GORM handle
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create inserts w and fills its generated fields
func (r *WalletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

// FindByID loads a wallet or returns a *domain.NotFoundError
func (r *WalletRepository) FindByID(ctx context.Context, id uint) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "wallet", ID: id} // Becomes a 404
		}
		return nil, fmt.Errorf("find wallet %d: %w", id, err)
	}
	return &w, nil
}

// ListByUser returns a user's wallets in creation order
func (r *WalletRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	// Creation order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("list wallets of user %d: %w", userID, err)
	}
	return wallets, nil
}
