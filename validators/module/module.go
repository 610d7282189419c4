package moduleValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"elearn/middleware"
)

var validate = validator.New()

// ModuleRequest is the validated body of a module create or update
type ModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Published   bool   `json:"published"`
	LecturerID  uint   `json:"lecturerId"`
}

// CreateModule validates the body of a module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if errs := validateStruct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedModule", reqData)

		return c.Next()
	}
}

// UpdateModule validates the body and id of a module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
		}

		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if errs := validateStruct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedModule", reqData)
		c.Locals("moduleID", uint(moduleID))

		return c.Next()
	}
}

func validateStruct(reqData *ModuleRequest) map[string]string {
	errs := make(map[string]string)
	if err := validate.Struct(reqData); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Title":
				errs["title"] = "Title is required and must be between 3 and 100 characters!"
			case "Description":
				errs["description"] = "Description must not exceed 1000 characters!"
			default:
				errs[strings.ToLower(fieldErr.Field())] = "Invalid value!"
			}
		}
	}
	return errs
}
