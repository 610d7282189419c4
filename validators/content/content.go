package contentValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"elearn/engine"
	"elearn/middleware"
)

// UploadRequest is the validated multipart metadata of a content upload
type UploadRequest struct {
	Title       string
	Description string
	ContentType string
}

// UploadContent validates the multipart fields of a content upload before the
// file is persisted anywhere
func UploadContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDValue := strings.TrimSpace(c.FormValue("module_id"))
		if moduleIDValue == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID, title, and content type are required.", nil)
		}
		moduleID, err := strconv.Atoi(moduleIDValue)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
		}

		reqData := &UploadRequest{
			Title:       strings.TrimSpace(c.FormValue("title")),
			Description: strings.TrimSpace(c.FormValue("description")),
			ContentType: strings.TrimSpace(c.FormValue("content_type")),
		}
		if reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID, title, and content type are required.", nil)
		}

		c.Locals("validatedUpload", reqData)
		c.Locals("moduleID", uint(moduleID))

		return c.Next()
	}
}

// ReorderRequest is the validated body of a reorder batch
type ReorderRequest struct {
	Updates []engine.OrderUpdate `json:"updates"`
}

// ReorderContent validates the shape of a reorder batch. Per-entry checks are
// repeated by the engine before it issues any write.
func ReorderContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Updates) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content updates array provided.", nil)
		}

		c.Locals("validatedReorder", reqData)

		return c.Next()
	}
}
