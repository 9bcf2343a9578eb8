package handlers

import (
	"errors"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/expense"
	"walletbook/internal/services/wallet"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service expense.Service
	wallets wallet.Service
}

func NewExpenseHandler(service expense.Service, wallets wallet.Service) *ExpenseHandler {
	return &ExpenseHandler{service: service, wallets: wallets}
}

func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	w, claims, ok := requireWallet(c, h.wallets)
	if !ok {
		return nil
	}

	var input expense.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.service.Create(c.Context(), w.ID, claims.UserID, input)
	if err != nil {
		if errors.Is(err, expense.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error creating expense")
	}

	return utils.Success(c, created)
}

func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	w, _, ok := requireWallet(c, h.wallets)
	if !ok {
		return nil
	}

	expenses, err := h.service.List(c.Context(), w.ID)
	if err != nil {
		return utils.InternalError(c, "error fetching expenses")
	}

	return utils.Success(c, expenses)
}

func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	ex, _, ok := h.requireExpense(c)
	if !ok {
		return nil
	}
	return utils.Success(c, ex)
}

func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	existing, _, ok := h.requireExpense(c)
	if !ok {
		return nil
	}

	var input expense.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), existing.ID, existing.WalletID, input, existing)
	if err != nil {
		if errors.Is(err, expense.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error updating expense")
	}

	return utils.Success(c, updated)
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	existing, _, ok := h.requireExpense(c)
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.Context(), existing.ID, existing.WalletID, existing); err != nil {
		return utils.InternalError(c, "error deleting expense")
	}

	return utils.Success(c, fiber.Map{"message": "expense deleted"})
}

// requireExpense mirrors requireIncome for the expense routes.
func (h *ExpenseHandler) requireExpense(c *fiber.Ctx) (*models.Expense, *models.UserClaims, bool) {
	claims, err := extractUserClaims(c)
	if err != nil {
		_ = utils.Unauthorized(c, "invalid claims")
		return nil, nil, false
	}

	walletID := c.Params("walletId")
	if walletID == "" {
		_ = utils.BadRequest(c, "wallet ID is missing in the request")
		return nil, nil, false
	}

	expenseID := c.Params("expenseId")
	if expenseID == "" {
		_ = utils.BadRequest(c, "expense ID is missing in the request")
		return nil, nil, false
	}

	ex, err := h.service.Get(c.Context(), expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			_ = utils.NotFound(c, "expense not found")
		} else {
			_ = utils.InternalError(c, "failed to get expense")
		}
		return nil, nil, false
	}

	if ex.WalletID != walletID {
		_ = utils.Unauthorized(c, "expense does not pertain to requested wallet")
		return nil, nil, false
	}

	if ex.UserID != claims.UserID {
		_ = utils.Unauthorized(c, "unauthorized")
		return nil, nil, false
	}

	return ex, claims, true
}
