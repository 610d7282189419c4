package enrollmentRoutes

import (
	enrollmentControllers "elearn/controllers/enrollment"
	enrollmentValidator "elearn/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment routes
func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/api/enrollments", enrollmentValidator.Enroll(), enrollmentControllers.EnrollInModule)
	app.Get("/api/learners/:learnerId/enrolled-modules", enrollmentControllers.GetLearnerModules)
}
