package repositories

import (
	"errors"
	"time"

	"walletbook/internal/models"
)

var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrIncomeNotFound  = errors.New("income not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already in use")
)

// WalletRepository defines wallet-related database operations.
//
// Rebase and the cascade deletes are the only writes that touch more
// than one value at a time; everything multi-row goes through
// ExecuteInTransaction so the store commits all-or-nothing.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id string) (*models.Wallet, error)
	ListByUserID(userID string) ([]models.Wallet, error)

	// Rebase updates the editable wallet fields and shifts
	// current_balance by balanceDiff in a single row update, preserving
	// the accumulated income/expense effect across the re-base.
	Rebase(id, name, description string, startingBalance, balanceDiff float64, at time.Time) (*models.Wallet, error)

	Delete(id string) error
	DeleteIncomesByWallet(walletID string) error
	DeleteExpensesByWallet(walletID string) error

	// ExecuteInTransaction runs fn against a transaction-scoped copy of
	// the repository. Every operation inside commits or none do.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
