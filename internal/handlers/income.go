package handlers

import (
	"errors"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/income"
	"walletbook/internal/services/wallet"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type IncomeHandler struct {
	service income.Service
	wallets wallet.Service
}

func NewIncomeHandler(service income.Service, wallets wallet.Service) *IncomeHandler {
	return &IncomeHandler{service: service, wallets: wallets}
}

func (h *IncomeHandler) CreateIncome(c *fiber.Ctx) error {
	w, claims, ok := requireWallet(c, h.wallets)
	if !ok {
		return nil
	}

	var input income.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.service.Create(c.Context(), w.ID, claims.UserID, input)
	if err != nil {
		if errors.Is(err, income.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error creating income")
	}

	return utils.Success(c, created)
}

func (h *IncomeHandler) ListIncomes(c *fiber.Ctx) error {
	w, _, ok := requireWallet(c, h.wallets)
	if !ok {
		return nil
	}

	incomes, err := h.service.List(c.Context(), w.ID)
	if err != nil {
		return utils.InternalError(c, "error fetching incomes")
	}

	return utils.Success(c, incomes)
}

func (h *IncomeHandler) GetIncome(c *fiber.Ctx) error {
	in, _, ok := h.requireIncome(c)
	if !ok {
		return nil
	}
	return utils.Success(c, in)
}

func (h *IncomeHandler) UpdateIncome(c *fiber.Ctx) error {
	existing, _, ok := h.requireIncome(c)
	if !ok {
		return nil
	}

	var input income.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), existing.ID, existing.WalletID, input, existing)
	if err != nil {
		if errors.Is(err, income.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error updating income")
	}

	return utils.Success(c, updated)
}

func (h *IncomeHandler) DeleteIncome(c *fiber.Ctx) error {
	existing, _, ok := h.requireIncome(c)
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.Context(), existing.ID, existing.WalletID, existing); err != nil {
		return utils.InternalError(c, "error deleting income")
	}

	return utils.Success(c, fiber.Map{"message": "income deleted"})
}

// requireIncome resolves the incomeId path parameter and enforces that
// the income belongs to the requested wallet and the requesting user.
// A wallet mismatch and an owner mismatch are both authorization
// failures, matching the wallet guard.
func (h *IncomeHandler) requireIncome(c *fiber.Ctx) (*models.Income, *models.UserClaims, bool) {
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

	incomeID := c.Params("incomeId")
	if incomeID == "" {
		_ = utils.BadRequest(c, "income ID is missing in the request")
		return nil, nil, false
	}

	in, err := h.service.Get(c.Context(), incomeID)
	if err != nil {
		if errors.Is(err, repositories.ErrIncomeNotFound) {
			_ = utils.NotFound(c, "income not found")
		} else {
			_ = utils.InternalError(c, "failed to get income")
		}
		return nil, nil, false
	}

	if in.WalletID != walletID {
		_ = utils.Unauthorized(c, "income does not pertain to requested wallet")
		return nil, nil, false
	}

	if in.UserID != claims.UserID {
		_ = utils.Unauthorized(c, "unauthorized")
		return nil, nil, false
	}

	return in, claims, true
}
