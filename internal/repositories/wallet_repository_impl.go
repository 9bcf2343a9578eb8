package repositories

import (
	"fmt"
	"time"

	"walletbook/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByID(id string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListByUserID(userID string) ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) Rebase(id, name, description string, startingBalance, balanceDiff float64, at time.Time) (*models.Wallet, error) {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             name,
			"description":      description,
			"starting_balance": startingBalance,
			"current_balance":  gorm.Expr("current_balance + ?", balanceDiff),
			"updated_at":       at,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrWalletNotFound
	}
	return r.GetByID(id)
}

func (r *walletRepository) Delete(id string) error {
	result := r.db.Delete(&models.Wallet{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) DeleteIncomesByWallet(walletID string) error {
	if err := r.db.Delete(&models.Income{}, "wallet_id = ?", walletID).Error; err != nil {
		return fmt.Errorf("failed to delete incomes for wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) DeleteExpensesByWallet(walletID string) error {
	if err := r.db.Delete(&models.Expense{}, "wallet_id = ?", walletID).Error; err != nil {
		return fmt.Errorf("failed to delete expenses for wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}
