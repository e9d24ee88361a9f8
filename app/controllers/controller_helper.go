package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// All endpoints answer with the same envelope:
// {success, data?, message?, errors?, error?}

func respondSuccess(c *fiber.Ctx, status int, data interface{}, message string) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func respondError(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

func respondValidationFailed(c *fiber.Ctx, fieldErrors map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fieldErrors,
	})
}
