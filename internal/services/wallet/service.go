package wallet

import (
	"context"
	"fmt"
	"log"
	"time"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/validation"

	"github.com/google/uuid"
)

type service struct {
	repo  repositories.WalletRepository
	cache Cache
}

// NewService creates a new wallet service. cache may be nil.
func NewService(repo repositories.WalletRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, userID string, input Input) (*models.Wallet, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            input.Name,
		Description:     input.Description,
		StartingBalance: input.StartingBalance,
		CurrentBalance:  input.StartingBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet %s: %v", wallet.ID, err)
	}
	return wallet, nil
}

func (s *service) Get(ctx context.Context, walletID string) (*models.Wallet, error) {
	if wallet, err := s.cache.GetWallet(ctx, walletID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByID(walletID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet %s: %v", wallet.ID, err)
	}
	return wallet, nil
}

func (s *service) List(ctx context.Context, userID string) ([]models.Wallet, error) {
	return s.repo.ListByUserID(userID)
}

func (s *service) Update(ctx context.Context, walletID string, input Input, existing *models.Wallet) (*models.Wallet, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// Shifting by the diff, rather than overwriting, keeps every
	// income/expense contribution accumulated since creation.
	balanceDiff := input.StartingBalance - existing.StartingBalance

	wallet, err := s.repo.Rebase(walletID, input.Name, input.Description, input.StartingBalance, balanceDiff, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		log.Printf("failed to invalidate wallet %s: %v", walletID, err)
	}
	return wallet, nil
}

func (s *service) Delete(ctx context.Context, walletID string) error {
	// The wallet row and every entry referencing it go in one
	// transaction: either all rows disappear or none do.
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		if err := tx.DeleteIncomesByWallet(walletID); err != nil {
			return err
		}
		if err := tx.DeleteExpensesByWallet(walletID); err != nil {
			return err
		}
		return tx.Delete(walletID)
	})
	if err != nil {
		return err
	}

	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		log.Printf("failed to invalidate wallet %s: %v", walletID, err)
	}
	return nil
}

func validateInput(input Input) error {
	v := validation.New()
	v.Required("name", input.Name)
	v.NonNegative("startingBalance", input.StartingBalance)
	if !v.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidInput, v.First())
	}
	return nil
}
