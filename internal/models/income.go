package models

import "time"

// Income is an amount-bearing entry that increases its wallet's balance.
// UserID is denormalized from the owning wallet at creation time so
// ownership checks don't need an extra wallet lookup; it is never
// updated afterwards because wallets don't change owners.
type Income struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	WalletID  string    `gorm:"index;size:36;not null" json:"walletId"`
	UserID    string    `gorm:"size:36;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
