package models

import "time"

// Expense mirrors Income with the opposite balance effect: it decreases
// its wallet's balance by Amount.
type Expense struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	WalletID  string    `gorm:"index;size:36;not null" json:"walletId"`
	UserID    string    `gorm:"size:36;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
