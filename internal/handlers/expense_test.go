package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/expense"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExpenseService struct {
	mock.Mock
}

func newExpenseTestApp(svc expense.Service, wallets *MockWalletService, claims *models.UserClaims) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("claims", claims)
		}
		return c.Next()
	})

	h := NewExpenseHandler(svc, wallets)
	expenses := app.Group("/api/wallets/:walletId/expenses")
	expenses.Get("/:expenseId", h.GetExpense)
	expenses.Delete("/:expenseId", h.DeleteExpense)
	return app
}

// The expense guard mirrors the income one; these cases pin the
// expense-specific wiring and messages.
func TestExpenseHandler_OwnershipGuard(t *testing.T) {
	claims := &models.UserClaims{UserID: "user-1", Role: models.RoleUser}

	t.Run("expense under another wallet is 401", func(t *testing.T) {
		svc := new(MockExpenseService)
		svc.On("Get", mock.Anything, "e-1").Return(&models.Expense{ID: "e-1", WalletID: "w-2", UserID: "user-1"}, nil)
		app := newExpenseTestApp(svc, new(MockWalletService), claims)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/wallets/w-1/expenses/e-1", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "expense does not pertain to requested wallet", responseMessage(t, resp))
	})

	t.Run("foreign-owned expense delete is rejected with no state change", func(t *testing.T) {
		svc := new(MockExpenseService)
		svc.On("Get", mock.Anything, "e-1").Return(&models.Expense{ID: "e-1", WalletID: "w-1", UserID: "someone-else"}, nil)
		app := newExpenseTestApp(svc, new(MockWalletService), claims)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/wallets/w-1/expenses/e-1", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing expense is 404", func(t *testing.T) {
		svc := new(MockExpenseService)
		svc.On("Get", mock.Anything, "e-404").Return(nil, repositories.ErrExpenseNotFound)
		app := newExpenseTestApp(svc, new(MockWalletService), claims)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/wallets/w-1/expenses/e-404", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func (m *MockExpenseService) Create(ctx context.Context, walletID, userID string, input expense.Input) (*models.Expense, error) {
	args := m.Called(ctx, walletID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseService) Get(ctx context.Context, expenseID string) (*models.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseService) List(ctx context.Context, walletID string) ([]models.Expense, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseService) Update(ctx context.Context, expenseID, walletID string, input expense.Input, existing *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, expenseID, walletID, input, existing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseService) Delete(ctx context.Context, expenseID, walletID string, existing *models.Expense) error {
	args := m.Called(ctx, expenseID, walletID, existing)
	return args.Error(0)
}
