package models

import "time"

// Wallet is a named balance container owned by a single user.
// CurrentBalance is derived state: it starts at StartingBalance and is
// only moved by income/expense mutations or a starting-balance re-base,
// never recomputed from the entry tables.
type Wallet struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"index;size:36;not null" json:"userId"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	StartingBalance float64   `json:"startingBalance"`
	CurrentBalance  float64   `json:"currentBalance"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
