package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"elearn/config"
	"elearn/database"
	"elearn/engine"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	contentValidator "elearn/validators/content"
)

// UploadContent stores the uploaded file and appends the content item at the
// end of the module's sequence. If the database write fails, the stored file
// is removed again.
func UploadContent(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("contentFile")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded.", nil)
	}

	moduleID := c.Locals("moduleID").(uint)
	reqData := c.Locals("validatedUpload").(*contentValidator.UploadRequest)

	contentType := reqData.ContentType
	if contentType == "" {
		contentType = detectContentType(fileHeader.Header.Get("Content-Type"))
	}

	savedPath, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded file.", nil)
	}

	content, err := engine.AppendContent(database.Database.Db, moduleID, engine.NewContent{
		ContentType:      contentType,
		Title:            reqData.Title,
		Description:      reqData.Description,
		FilePath:         utils.GetFileURL(savedPath),
		OriginalFilename: fileHeader.Filename,
	})
	if err != nil {
		utils.RemoveUploadedFile(savedPath)
		return middleware.EngineErrorResponse(c, err, "Failed to save content details to database.")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content uploaded and saved successfully!", fiber.Map{
		"contentId":        content.ID,
		"filePath":         content.FilePath,
		"originalFilename": content.OriginalFilename,
		"displayOrder":     content.DisplayOrder,
	})
}

// GetModuleContents lists a module's content items in display order
func GetModuleContents(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("moduleId")))
	if err != nil || moduleID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
	}

	var contents []models.ModuleContent
	if err := database.Database.Db.
		Where("module_id = ?", moduleID).
		Order("display_order asc").
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module contents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module contents fetched successfully!", contents)
}

// ReorderContent applies a batch of display_order updates as one transaction
func ReorderContent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReorder").(*contentValidator.ReorderRequest)

	if err := engine.ReorderContent(database.Database.Db, reqData.Updates); err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to reorder content due to a server error.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content order updated successfully!", nil)
}

// detectContentType maps an upload's MIME type to a stored content type
func detectContentType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case mimeType == "application/pdf":
		return "pdf"
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case mimeType == "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		mimeType == "application/vnd.ms-powerpoint":
		return "presentation"
	default:
		return "other"
	}
}
