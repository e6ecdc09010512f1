package domain

import "time"

// TransactionType decides the sign an amount contributes to a balance
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"  // Adds to the balance
	TransactionExpense TransactionType = "expense" // Subtracts from the balance
)

// Valid reports whether t is one of the known types
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// MaxDescriptionLength bounds Transaction.Description in characters
const MaxDescriptionLength = 500

// Transaction Model
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	WalletID    uint            `gorm:"index;not null" json:"wallet_id"`           // Foreign key to Wallet
	Type        TransactionType `gorm:"size:16;not null" json:"type"`              // income or expense
	Amount      Money           `gorm:"type:decimal(15,2);not null" json:"amount"` // Always a positive magnitude
	Description *string         `gorm:"size:500" json:"description"`               // Optional note
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`                   // Creation timestamp, orders the ledger
	UpdatedAt   time.Time       `json:"updated_at"`                                // Last update timestamp
}
