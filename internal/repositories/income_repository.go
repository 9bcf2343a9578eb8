package repositories

import (
	"time"

	"walletbook/internal/models"
)

// IncomeRepository defines income-related database operations.
//
// AdjustWalletBalance lives here rather than on the wallet repository
// because every income mutation pairs its row write with the balance
// shift inside one ExecuteInTransaction closure; the owning repository
// has to reach the wallet row within the same transaction handle.
type IncomeRepository interface {
	Create(income *models.Income) error
	GetByID(id string) (*models.Income, error)

	// ListByWalletID resolves through the wallet_id index, never a full
	// table scan.
	ListByWalletID(walletID string) ([]models.Income, error)

	Update(income *models.Income) error
	Delete(id string) error

	// AdjustWalletBalance applies current_balance += delta to the wallet
	// row as a single in-store update, so concurrent deltas serialize on
	// the row instead of losing writes.
	AdjustWalletBalance(walletID string, delta float64, at time.Time) error

	ExecuteInTransaction(fn func(IncomeRepository) error) error
}
