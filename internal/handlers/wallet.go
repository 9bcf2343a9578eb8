package handlers

import (
	"errors"

	"walletbook/internal/services/wallet"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input wallet.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.service.Create(c.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error creating wallet")
	}

	return utils.Success(c, created)
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	wallets, err := h.service.List(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "error fetching wallets")
	}

	return utils.Success(c, wallets)
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	w, _, ok := requireWallet(c, h.service)
	if !ok {
		return nil
	}
	return utils.Success(c, w)
}

func (h *WalletHandler) UpdateWallet(c *fiber.Ctx) error {
	existing, _, ok := requireWallet(c, h.service)
	if !ok {
		return nil
	}

	var input wallet.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.service.Update(c.Context(), existing.ID, input, existing)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "error updating wallet")
	}

	return utils.Success(c, updated)
}

func (h *WalletHandler) DeleteWallet(c *fiber.Ctx) error {
	existing, _, ok := requireWallet(c, h.service)
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.Context(), existing.ID); err != nil {
		return utils.InternalError(c, "error deleting wallet")
	}

	return utils.Success(c, fiber.Map{"message": "wallet with incomes and expenses deleted"})
}
