package enrollmentValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"elearn/middleware"
)

var validate = validator.New()

// EnrollRequest is the validated body of an enrollment creation
type EnrollRequest struct {
	LearnerID uint `json:"learnerId" validate:"required"`
	ModuleID  uint `json:"moduleId" validate:"required"`
}

// Enroll validates the body of an enrollment request
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errs := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "LearnerID":
					errs["learnerId"] = "Learner ID is required!"
				case "ModuleID":
					errs["moduleId"] = "Module ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedEnrollment", reqData)

		return c.Next()
	}
}
