package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	Name      string    `gorm:"size:255;not null" json:"name"`                          // Display name
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`             // Unique email address
	Wallets   []Wallet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owned wallets, removed with the user
	CreatedAt time.Time `json:"created_at"`                                             // Creation timestamp
	UpdatedAt time.Time `json:"updated_at"`                                             // Last update timestamp
}
