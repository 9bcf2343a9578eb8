package wallet

import (
	"context"

	"walletbook/internal/models"
)

// Input carries the user-editable wallet fields for create and update.
type Input struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	StartingBalance float64 `json:"startingBalance"`
}

type noopCache struct{}

func (noopCache) GetWallet(context.Context, string) (*models.Wallet, error) {
	return nil, ErrCacheMiss
}
func (noopCache) SetWallet(context.Context, *models.Wallet) error { return nil }
func (noopCache) InvalidateWallet(context.Context, string) error  { return nil }
