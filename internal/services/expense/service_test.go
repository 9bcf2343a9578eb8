package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"walletbook/internal/models"
	"walletbook/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExpenseRepo struct {
	mock.Mock
}

func TestExpenseService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		setupMock func(*MockExpenseRepo)
		wantErr   bool
		errMsg    string
	}{
		{
			name:  "create debits the wallet by the amount",
			input: Input{Name: "Rent", Type: "monthly", Amount: 800},
			setupMock: func(repo *MockExpenseRepo) {
				repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
				repo.On("Create", mock.Anything).Return(nil)
				repo.On("AdjustWalletBalance", "w-1", -800.0, mock.Anything).Return(nil)
			},
		},
		{
			name:    "missing name",
			input:   Input{Amount: 10},
			wantErr: true,
			errMsg:  "invalid expense data",
		},
		{
			name:    "negative amount",
			input:   Input{Name: "Rent", Amount: -10},
			wantErr: true,
			errMsg:  "invalid expense data",
		},
		{
			name:  "wallet gone mid-flight",
			input: Input{Name: "Rent", Amount: 10},
			setupMock: func(repo *MockExpenseRepo) {
				repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
				repo.On("Create", mock.Anything).Return(nil)
				repo.On("AdjustWalletBalance", "w-1", -10.0, mock.Anything).Return(repositories.ErrWalletNotFound)
			},
			wantErr: true,
			errMsg:  "wallet not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockExpenseRepo)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			s := NewService(repo, nil)
			expense, err := s.Create(context.Background(), "w-1", "user-1", tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, expense.ID)
				assert.Equal(t, "w-1", expense.WalletID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestExpenseService_Update(t *testing.T) {
	existing := &models.Expense{ID: "e-1", WalletID: "w-1", Name: "Rent", Amount: 100}

	tests := []struct {
		name      string
		input     Input
		wantDelta float64
	}{
		{name: "raising an expense lowers the balance", input: Input{Name: "Rent", Amount: 150}, wantDelta: -50},
		{name: "cutting an expense raises the balance", input: Input{Name: "Rent", Amount: 40}, wantDelta: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockExpenseRepo)
			repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
			repo.On("Update", mock.Anything).Return(nil)
			repo.On("AdjustWalletBalance", "w-1", tt.wantDelta, mock.Anything).Return(nil)

			s := NewService(repo, nil)
			updated, err := s.Update(context.Background(), "e-1", "w-1", tt.input, existing)

			assert.NoError(t, err)
			assert.Equal(t, tt.input.Amount, updated.Amount)
			repo.AssertExpectations(t)
		})
	}
}

func TestExpenseService_Delete(t *testing.T) {
	existing := &models.Expense{ID: "e-1", WalletID: "w-1", Name: "Rent", Amount: 100}

	t.Run("delete gives the amount back", func(t *testing.T) {
		repo := new(MockExpenseRepo)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("Delete", "e-1").Return(nil)
		repo.On("AdjustWalletBalance", "w-1", 100.0, mock.Anything).Return(nil)

		s := NewService(repo, nil)
		err := s.Delete(context.Background(), "e-1", "w-1", existing)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("row delete failure aborts the balance shift", func(t *testing.T) {
		repo := new(MockExpenseRepo)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("Delete", "e-1").Return(errors.New("connection reset"))

		s := NewService(repo, nil)
		err := s.Delete(context.Background(), "e-1", "w-1", existing)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "AdjustWalletBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestExpenseService_BalanceLifecycle walks one expense through its
// full lifecycle against an in-memory store and checks the wallet
// balance after every step: 100 -> create 30 -> 70 -> update to 50 ->
// 50 -> delete -> 100.
func TestExpenseService_BalanceLifecycle(t *testing.T) {
	repo := newFakeExpenseRepo(100)
	s := NewService(repo, nil)
	ctx := context.Background()

	created, err := s.Create(ctx, "w-1", "user-1", Input{Name: "Groceries", Amount: 30})
	assert.NoError(t, err)
	assert.InDelta(t, 70, repo.balance, 1e-9)

	updated, err := s.Update(ctx, created.ID, "w-1", Input{Name: "Groceries", Amount: 50}, created)
	assert.NoError(t, err)
	assert.InDelta(t, 50, repo.balance, 1e-9)

	err = s.Delete(ctx, updated.ID, "w-1", updated)
	assert.NoError(t, err)
	assert.InDelta(t, 100, repo.balance, 1e-9)
	assert.Empty(t, repo.rows)
}

// fakeExpenseRepo is a minimal in-memory ExpenseRepository for
// lifecycle tests where the arithmetic matters more than the calls.
type fakeExpenseRepo struct {
	balance float64
	rows    map[string]models.Expense
}

func newFakeExpenseRepo(balance float64) *fakeExpenseRepo {
	return &fakeExpenseRepo{balance: balance, rows: make(map[string]models.Expense)}
}

func (f *fakeExpenseRepo) Create(expense *models.Expense) error {
	f.rows[expense.ID] = *expense
	return nil
}

func (f *fakeExpenseRepo) GetByID(id string) (*models.Expense, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrExpenseNotFound
	}
	return &row, nil
}

func (f *fakeExpenseRepo) ListByWalletID(walletID string) ([]models.Expense, error) {
	var out []models.Expense
	for _, row := range f.rows {
		if row.WalletID == walletID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(expense *models.Expense) error {
	if _, ok := f.rows[expense.ID]; !ok {
		return repositories.ErrExpenseNotFound
	}
	f.rows[expense.ID] = *expense
	return nil
}

func (f *fakeExpenseRepo) Delete(id string) error {
	if _, ok := f.rows[id]; !ok {
		return repositories.ErrExpenseNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeExpenseRepo) AdjustWalletBalance(walletID string, delta float64, at time.Time) error {
	f.balance += delta
	return nil
}

func (f *fakeExpenseRepo) ExecuteInTransaction(fn func(repositories.ExpenseRepository) error) error {
	return fn(f)
}

func (m *MockExpenseRepo) Create(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepo) GetByID(id string) (*models.Expense, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseRepo) ListByWalletID(walletID string) ([]models.Expense, error) {
	args := m.Called(walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseRepo) Update(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockExpenseRepo) AdjustWalletBalance(walletID string, delta float64, at time.Time) error {
	args := m.Called(walletID, delta, at)
	return args.Error(0)
}

func (m *MockExpenseRepo) ExecuteInTransaction(fn func(repositories.ExpenseRepository) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}
