package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
	// Details maps a request field to the rule it failed.
	Details map[string]string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func ValidationError(c *fiber.Ctx, details map[string]string) error {
	return JSON(c, fiber.StatusBadRequest, ErrorResponse{Message: "validation failed", Details: details})
}
