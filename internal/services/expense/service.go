// Package expense owns the expense entry lifecycle. It mirrors the
// income service with the opposite balance sign: an expense of amount
// A moves its wallet's balance by -A.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/validation"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid expense data")

// Input carries the user-editable expense fields for create and update.
type Input struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Service defines expense operations. Ownership checks are the
// caller's job.
type Service interface {
	Create(ctx context.Context, walletID, userID string, input Input) (*models.Expense, error)
	Get(ctx context.Context, expenseID string) (*models.Expense, error)
	List(ctx context.Context, walletID string) ([]models.Expense, error)
	Update(ctx context.Context, expenseID, walletID string, input Input, existing *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, expenseID, walletID string, existing *models.Expense) error
}

// WalletCache is the slice of the wallet cache this service needs.
type WalletCache interface {
	InvalidateWallet(ctx context.Context, id string) error
}

type service struct {
	repo  repositories.ExpenseRepository
	cache WalletCache
}

// NewService creates a new expense service. cache may be nil.
func NewService(repo repositories.ExpenseRepository, cache WalletCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, walletID, userID string, input Input) (*models.Expense, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := &models.Expense{
		ID:        uuid.NewString(),
		WalletID:  walletID,
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Amount:    input.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.ExecuteInTransaction(func(tx repositories.ExpenseRepository) error {
		if err := tx.Create(expense); err != nil {
			return err
		}
		return tx.AdjustWalletBalance(walletID, -expense.Amount, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.invalidate(ctx, walletID)
	return expense, nil
}

func (s *service) Get(ctx context.Context, expenseID string) (*models.Expense, error) {
	return s.repo.GetByID(expenseID)
}

func (s *service) List(ctx context.Context, walletID string) ([]models.Expense, error) {
	return s.repo.ListByWalletID(walletID)
}

func (s *service) Update(ctx context.Context, expenseID, walletID string, input Input, existing *models.Expense) (*models.Expense, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	// Raising an expense lowers the balance, so the delta is inverted
	// relative to income.
	delta := existing.Amount - input.Amount

	updated := *existing
	updated.Name = input.Name
	updated.Type = input.Type
	updated.Amount = input.Amount
	updated.UpdatedAt = now

	err := s.repo.ExecuteInTransaction(func(tx repositories.ExpenseRepository) error {
		if err := tx.Update(&updated); err != nil {
			return err
		}
		return tx.AdjustWalletBalance(walletID, delta, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.invalidate(ctx, walletID)
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, expenseID, walletID string, existing *models.Expense) error {
	now := time.Now().UTC()

	err := s.repo.ExecuteInTransaction(func(tx repositories.ExpenseRepository) error {
		if err := tx.Delete(expenseID); err != nil {
			return err
		}
		// Deleting an expense gives its amount back to the wallet.
		return tx.AdjustWalletBalance(walletID, existing.Amount, now)
	})
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.invalidate(ctx, walletID)
	return nil
}

func (s *service) invalidate(ctx context.Context, walletID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		log.Printf("failed to invalidate wallet %s: %v", walletID, err)
	}
}

func validateInput(input Input) error {
	v := validation.New()
	v.Required("name", input.Name)
	v.NonNegative("amount", input.Amount)
	if !v.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidInput, v.First())
	}
	return nil
}
