package handlers

import (
	"errors"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/services/user"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.service.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, user.ErrEmailTaken):
			return utils.BadRequest(c, "email already registered")
		default:
			return utils.InternalError(c, "error creating user")
		}
	}

	return utils.Success(c, created)
}

// Me returns the account of the requesting user.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.service.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}

	return utils.Success(c, u)
}

// ListUsers is admin-only, enforced by middleware.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return utils.InternalError(c, "error fetching users")
	}
	return utils.Success(c, users)
}

// GetUser returns any account by id. Admins may read anyone; other
// users only themselves.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID := c.Params("id")
	if userID == "" {
		return utils.BadRequest(c, "user ID is missing in the request")
	}

	if !claims.IsAdmin() && claims.UserID != userID {
		return utils.Unauthorized(c, "unauthorized")
	}

	u, err := h.service.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}

	return utils.Success(c, u)
}
