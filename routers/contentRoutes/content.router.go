package contentRoutes

import (
	contentControllers "elearn/controllers/content"
	contentValidator "elearn/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up content upload and reorder routes
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content")

	contentGroup.Post("/upload", contentValidator.UploadContent(), contentControllers.UploadContent)
	contentGroup.Patch("/reorder", contentValidator.ReorderContent(), contentControllers.ReorderContent)
}
