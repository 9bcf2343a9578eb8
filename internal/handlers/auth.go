package handlers

import (
	"errors"

	"walletbook/internal/services/auth"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	user, accessToken, refreshToken, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "invalid credentials")
		}
		return utils.InternalError(c, "login failed")
	}

	return utils.Success(c, fiber.Map{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	accessToken, refreshToken, err := h.service.Refresh(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
