package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"elearn/engine"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errs)
}

// EngineErrorResponse maps engine errors onto the response envelope:
// validation problems to 400, missing entities to 404, anything else to 500
// with the fallback message (infrastructure detail stays in the log).
func EngineErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *engine.ValidationError
	if errors.As(err, &validationErr) {
		return JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), nil)
	}

	var notFoundErr *engine.NotFoundError
	if errors.As(err, &notFoundErr) {
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundErr.Error(), nil)
	}

	log.Printf("Engine error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
}
