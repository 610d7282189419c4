package moduleRoutes

import (
	contentControllers "elearn/controllers/content"
	moduleControllers "elearn/controllers/module"
	quizControllers "elearn/controllers/quiz"
	moduleValidator "elearn/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes sets up module management routes and module-scoped listings
func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/api/modules")

	moduleGroup.Post("/", moduleValidator.CreateModule(), moduleControllers.CreateModule)
	moduleGroup.Get("/", moduleControllers.GetModules)
	moduleGroup.Put("/:id", moduleValidator.UpdateModule(), moduleControllers.UpdateModule)
	moduleGroup.Delete("/:id", moduleControllers.DeleteModule)
	moduleGroup.Patch("/:id/publish", moduleControllers.TogglePublish)

	// Module-scoped listings
	moduleGroup.Get("/:moduleId/quizzes", quizControllers.GetModuleQuizzes)
	moduleGroup.Get("/:moduleId/contents", contentControllers.GetModuleContents)
}
