package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope statuses. Every handler terminates the request with exactly one
// of these.
const (
	StatusSuccess          = "SUCCESS"
	StatusError            = "ERROR"
	StatusNotFound         = "NOT_FOUND"
	StatusFailedValidation = "FAILED_VALIDATION"
	StatusUnauthorized     = "UNAUTHORIZED"
)

// ✅ Success envelope (200)
func Success(c *fiber.Ctx, payload interface{}) error {
	if payload == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": StatusSuccess})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  StatusSuccess,
		"payload": payload,
	})
}

// NotFound envelope (404), optional payload (e.g. {"msg": "Channel Not Found"})
func NotFound(c *fiber.Ctx, payload ...interface{}) error {
	body := fiber.Map{"status": StatusNotFound}
	if len(payload) > 0 && payload[0] != nil {
		body["payload"] = payload[0]
	}
	return c.Status(fiber.StatusNotFound).JSON(body)
}

// FailedValidation is deliberately a success-level HTTP response: field
// constraint violations are application results, not transport errors.
func FailedValidation(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  StatusFailedValidation,
		"payload": payload,
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": StatusUnauthorized,
	})
}

// StoreError surfaces the raw driver error payload, unredacted.
func StoreError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"status": StatusError}
	if err != nil {
		body["payload"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
