package wallet

import (
	"context"

	"walletbook/internal/models"
)

// Service defines the wallet lifecycle operations. Ownership checks
// against the requesting user are the caller's job; the service trusts
// the ids it is handed.
type Service interface {
	Create(ctx context.Context, userID string, input Input) (*models.Wallet, error)
	Get(ctx context.Context, walletID string) (*models.Wallet, error)
	List(ctx context.Context, userID string) ([]models.Wallet, error)

	// Update re-bases the starting balance: current balance shifts by
	// the starting-balance diff so the accumulated income/expense
	// effect is preserved.
	Update(ctx context.Context, walletID string, input Input, existing *models.Wallet) (*models.Wallet, error)

	// Delete removes the wallet and every income and expense that
	// references it in one atomic transaction.
	Delete(ctx context.Context, walletID string) error
}

// Cache is the read-cache surface the service needs. A nil cache at
// construction disables caching.
type Cache interface {
	GetWallet(ctx context.Context, id string) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, id string) error
}
