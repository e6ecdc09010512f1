package repository

import (
	"context"
	"fmt"

	"money_tracker/internal/domain"
	"money_tracker/internal/ledger"

	"gorm.io/gorm"
)

// TransactionRepository persists ledger entries
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository wraps a GORM handle
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts t verbatim
func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// ListByWallet returns the wallet's transactions, most recent first.
// id breaks ties between rows created within the same clock tick.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uint) ([]domain.Transaction, error) {
	txs := []domain.Transaction{} // Non-nil so an empty history encodes as []
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID). // Owned rows only
		Order("created_at desc").         // Most recent first
		Order("id desc").                 // Tie-break for equal timestamps
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions of wallet %d: %w", walletID, err)
	}
	return txs, nil
}

// Entries loads only the columns a balance needs for one wallet
func (r *TransactionRepository) Entries(ctx context.Context, walletID uint) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Select("type", "amount"). // Only what the balance needs
		Where("wallet_id = ?", walletID).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load ledger of wallet %d: %w", walletID, err)
	}
	return entries, nil
}

// entryRow is a ledger entry tagged with its wallet
type entryRow struct {
	WalletID uint
	Type     domain.TransactionType
	Amount   domain.Money
}

// EntriesByWallets loads the entries of several wallets in one query, keyed by wallet id.
// Wallets without transactions are absent from the map.
func (r *TransactionRepository) EntriesByWallets(ctx context.Context, walletIDs []uint) (map[uint][]ledger.Entry, error) {
	out := make(map[uint][]ledger.Entry, len(walletIDs))
	if len(walletIDs) == 0 {
		return out, nil
	}
	var rows []entryRow
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Select("wallet_id", "type", "amount").
		Where("wallet_id IN ?", walletIDs). // One query for the whole profile
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load ledgers of %d wallets: %w", len(walletIDs), err)
	}
	for _, row := range rows {
		// Group by owning wallet
		out[row.WalletID] = append(out[row.WalletID], ledger.Entry{Type: row.Type, Amount: row.Amount})
	}
	return out, nil
}
