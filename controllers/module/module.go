package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	moduleValidator "elearn/validators/module"
)

// CreateModule creates a new learning module
func CreateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*moduleValidator.ModuleRequest)

	module := models.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
		Published:   reqData.Published,
		LecturerID:  reqData.LecturerID,
	}
	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// GetModules lists modules, optionally filtered by lecturer
func GetModules(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Module{})

	if lecturerID := c.Query("lecturerId"); lecturerID != "" {
		id, err := strconv.Atoi(lecturerID)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lecturer ID must be a positive number!", nil)
		}
		db = db.Where("lecturer_id = ?", id)
	}

	var modules []models.Module
	if err := db.Order("id asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// UpdateModule updates a module's metadata
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	reqData := c.Locals("validatedModule").(*moduleValidator.ModuleRequest)

	var module models.Module
	if err := database.Database.Db.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.Title = reqData.Title
	module.Description = reqData.Description
	module.Published = reqData.Published
	module.LecturerID = reqData.LecturerID

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule deletes a module
func DeleteModule(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || moduleID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
	}

	res := database.Database.Db.Delete(&models.Module{}, moduleID)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// TogglePublish updates a module's publish flag
func TogglePublish(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || moduleID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
	}

	reqData := new(struct {
		Published bool `json:"published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	res := database.Database.Db.Model(&models.Module{}).
		Where("id = ?", moduleID).
		Update("published", reqData.Published)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update publish status!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module publish status updated!", nil)
}
