package repositories

import (
	"time"

	"walletbook/internal/models"
)

// ExpenseRepository mirrors IncomeRepository for the expenses table.
// See IncomeRepository for the reasoning behind AdjustWalletBalance
// and ExecuteInTransaction.
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	GetByID(id string) (*models.Expense, error)
	ListByWalletID(walletID string) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id string) error
	AdjustWalletBalance(walletID string, delta float64, at time.Time) error
	ExecuteInTransaction(fn func(ExpenseRepository) error) error
}
