// Package income owns the income entry lifecycle. Every mutation pairs
// the entry row write with the owning wallet's balance adjustment in a
// single store transaction, so the balance can never drift from its
// entries under partial failure.
package income

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

var ErrInvalidInput = errors.New("invalid income data")

// Input carries the user-editable income fields for create and update.
type Input struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Service defines income operations. Ownership checks are the
// caller's job.
type Service interface {
	Create(ctx context.Context, walletID, userID string, input Input) (*models.Income, error)
	Get(ctx context.Context, incomeID string) (*models.Income, error)
	List(ctx context.Context, walletID string) ([]models.Income, error)
	Update(ctx context.Context, incomeID, walletID string, input Input, existing *models.Income) (*models.Income, error)
	Delete(ctx context.Context, incomeID, walletID string, existing *models.Income) error
}

// WalletCache is the slice of the wallet cache this service needs:
// balance mutations only invalidate.
type WalletCache interface {
	InvalidateWallet(ctx context.Context, id string) error
}

type service struct {
	repo  repositories.IncomeRepository
	cache WalletCache
}

// NewService creates a new income service. cache may be nil.
func NewService(repo repositories.IncomeRepository, cache WalletCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, walletID, userID string, input Input) (*models.Income, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	income := &models.Income{
		ID:        uuid.NewString(),
		WalletID:  walletID,
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Amount:    input.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.ExecuteInTransaction(func(tx repositories.IncomeRepository) error {
		if err := tx.Create(income); err != nil {
			return err
		}
		return tx.AdjustWalletBalance(walletID, income.Amount, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	s.invalidate(ctx, walletID)
	return income, nil
}

func (s *service) Get(ctx context.Context, incomeID string) (*models.Income, error) {
	return s.repo.GetByID(incomeID)
}

func (s *service) List(ctx context.Context, walletID string) ([]models.Income, error) {
	return s.repo.ListByWalletID(walletID)
}

func (s *service) Update(ctx context.Context, incomeID, walletID string, input Input, existing *models.Income) (*models.Income, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	delta := input.Amount - existing.Amount

	updated := *existing
	updated.Name = input.Name
	updated.Type = input.Type
	updated.Amount = input.Amount
	updated.UpdatedAt = now

	err := s.repo.ExecuteInTransaction(func(tx repositories.IncomeRepository) error {
		if err := tx.Update(&updated); err != nil {
			return err
		}
		return tx.AdjustWalletBalance(walletID, delta, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	s.invalidate(ctx, walletID)
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, incomeID, walletID string, existing *models.Income) error {
	now := time.Now().UTC()

	err := s.repo.ExecuteInTransaction(func(tx repositories.IncomeRepository) error {
		if err := tx.Delete(incomeID); err != nil {
			return err
		}
		// Reverse the entry's original contribution.
		return tx.AdjustWalletBalance(walletID, -existing.Amount, now)
	})
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
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
