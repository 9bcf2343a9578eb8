// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"log"
	"strings"

	"walletbook/internal/models"
	"walletbook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and stores its claims in the request
// context. The token signature is verified against JWT_SECRET; a token
// that merely decodes is not trusted.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing authorization header"})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid authorization format"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			log.Printf("token validation error: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		c.Locals("claims", claims)
		c.Locals("userID", claims.UserID)

		return c.Next()
	}
}

// AdminOnly rejects requests whose claims don't carry the admin role.
// It must run after Auth.
func AdminOnly(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid claims"})
	}

	if !claims.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "insufficient permissions"})
	}

	return c.Next()
}
