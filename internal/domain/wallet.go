package domain

import "time"

// Wallet Model. Balance is never stored; see ledger.Balance.
type Wallet struct {
	ID           uint          `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID       uint          `gorm:"index;not null" json:"user_id"`                          // Foreign key to User
	Name         string        `gorm:"size:255;not null" json:"name"`                          // Human-friendly label
	Transactions []Transaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Ledger entries, removed with the wallet
	CreatedAt    time.Time     `json:"created_at"`                                             // Creation timestamp
	UpdatedAt    time.Time     `json:"updated_at"`                                             // Last update timestamp
}
