package repositories

import (
	"fmt"
	"time"

	"walletbook/internal/models"

	"gorm.io/gorm"
)

type incomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(income *models.Income) error {
	if err := r.db.Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

func (r *incomeRepository) GetByID(id string) (*models.Income, error) {
	var income models.Income
	if err := r.db.First(&income, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	return &income, nil
}

func (r *incomeRepository) ListByWalletID(walletID string) ([]models.Income, error) {
	var incomes []models.Income
	err := r.db.
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Find(&incomes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

func (r *incomeRepository) Update(income *models.Income) error {
	if err := r.db.Save(income).Error; err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	return nil
}

func (r *incomeRepository) Delete(id string) error {
	result := r.db.Delete(&models.Income{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}
	return nil
}

func (r *incomeRepository) AdjustWalletBalance(walletID string, delta float64, at time.Time) error {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"current_balance": gorm.Expr("current_balance + ?", delta),
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to adjust wallet balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *incomeRepository) ExecuteInTransaction(fn func(IncomeRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&incomeRepository{db: tx})
	})
}
