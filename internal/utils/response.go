package utils

import "github.com/gofiber/fiber/v2"

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends the affected record (or list) with a 200 status.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"message": message})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"message": message})
}

// Forbidden sends a JSON error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusForbidden, fiber.Map{"message": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"message": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"message": message})
}
