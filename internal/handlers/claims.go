// Package handlers contains the fiber HTTP handlers. Handlers own the
// authorization contract: before any wallet-scoped operation they load
// the wallet, report 404 when it is absent and 401 when it belongs to
// another user, and only then call into the service layer.
package handlers

import (
	"errors"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/wallet"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// requireWallet resolves the walletId path parameter to a wallet owned
// by the requesting user. On failure it writes the error response and
// reports false; the handler should return nil.
//
// The order matters: a missing wallet is 404, a wallet owned by someone
// else is 401. An owner mismatch is an authorization failure, not a
// not-found.
func requireWallet(c *fiber.Ctx, svc wallet.Service) (*models.Wallet, *models.UserClaims, bool) {
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

	w, err := svc.Get(c.Context(), walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			_ = utils.NotFound(c, "wallet not found")
		} else {
			_ = utils.InternalError(c, "failed to get wallet")
		}
		return nil, nil, false
	}

	if w.UserID != claims.UserID {
		_ = utils.Unauthorized(c, "unauthorized")
		return nil, nil, false
	}

	return w, claims, true
}
