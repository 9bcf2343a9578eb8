package repositories

import (
	"fmt"
	"time"

	"walletbook/internal/models"

	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) GetByID(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

func (r *expenseRepository) ListByWalletID(walletID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepository) Update(expense *models.Expense) error {
	if err := r.db.Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) Delete(id string) error {
	result := r.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *expenseRepository) AdjustWalletBalance(walletID string, delta float64, at time.Time) error {
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

func (r *expenseRepository) ExecuteInTransaction(fn func(ExpenseRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&expenseRepository{db: tx})
	})
}
