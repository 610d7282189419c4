package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	enrollmentValidator "elearn/validators/enrollment"
)

// EnrollInModule enrolls a learner in a module
func EnrollInModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)

	var module models.Module
	if err := database.Database.Db.First(&module, reqData.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var existing models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND module_id = ?", reqData.LearnerID, reqData.ModuleID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learner is already enrolled in this module.", nil)
	}

	enrollment := models.Enrollment{
		UserID:   reqData.LearnerID,
		ModuleID: reqData.ModuleID,
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		// The unique (user_id, module_id) index closes the check-then-insert race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learner is already enrolled in this module.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in module due to a server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment successful!", fiber.Map{
		"enrollmentId": enrollment.ID,
	})
}

// GetLearnerModules lists the modules a learner is enrolled in, newest
// enrollment first
func GetLearnerModules(c *fiber.Ctx) error {
	learnerID, err := strconv.Atoi(strings.TrimSpace(c.Params("learnerId")))
	if err != nil || learnerID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Learner ID must be a positive number!", nil)
	}

	type enrolledModule struct {
		ID          uint       `json:"id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Published   bool       `json:"published"`
		EnrolledAt  time.Time  `json:"enrolled_at"`
		Completed   bool       `json:"completed"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	var rows []enrolledModule
	if err := database.Database.Db.
		Table("enrollments").
		Select("modules.id, modules.title, modules.description, modules.published, enrollments.created_at AS enrolled_at, enrollments.completed, enrollments.completed_at").
		Joins("JOIN modules ON modules.id = enrollments.module_id AND modules.deleted_at IS NULL").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL", learnerID).
		Order("enrollments.created_at DESC").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled modules due to a server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled modules fetched successfully!", rows)
}
