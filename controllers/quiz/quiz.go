package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"elearn/database"
	"elearn/engine"
	"elearn/middleware"
	quizModels "elearn/models/quiz"
)

// CreateQuiz creates a quiz with its questions and answer keys in one unit of work
func CreateQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		ModuleID        uint                   `json:"moduleId"`
		Title           string                 `json:"title"`
		Description     string                 `json:"description"`
		DurationMinutes *int                   `json:"durationMinutes"`
		PassPercentage  float64                `json:"passPercentage"`
		Questions       []engine.QuestionInput `json:"questions"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	quizID, err := engine.CreateQuiz(database.Database.Db, engine.CreateQuizInput{
		ModuleID:        reqData.ModuleID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		DurationMinutes: reqData.DurationMinutes,
		PassPercentage:  reqData.PassPercentage,
		Questions:       reqData.Questions,
	})
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to create quiz due to a server error.")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", fiber.Map{
		"quizId": quizID,
	})
}

// GetQuizDetails fetches a single quiz with nested questions and options
func GetQuizDetails(c *fiber.Ctx) error {
	quizID, err := parseIDParam(c, "quizId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID must be a positive number!", nil)
	}

	view, err := engine.GetQuiz(database.Database.Db, quizID)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to fetch quiz details due to a server error.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", view)
}

// GetQuizQuestions fetches a quiz's questions in display order
func GetQuizQuestions(c *fiber.Ctx) error {
	quizID, err := parseIDParam(c, "quizId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID must be a positive number!", nil)
	}

	view, err := engine.GetQuiz(database.Database.Db, quizID)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to fetch quiz questions due to a server error.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", view.Questions)
}

// GetModuleQuizzes lists the quizzes belonging to a module, newest first
func GetModuleQuizzes(c *fiber.Ctx) error {
	moduleID, err := parseIDParam(c, "moduleId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID must be a positive number!", nil)
	}

	var quizzes []quizModels.Quiz
	if err := database.Database.Db.
		Where("module_id = ?", moduleID).
		Order("created_at desc").
		Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// DeleteQuiz deletes a quiz; its questions, options, submissions and answers
// go with it
func DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := parseIDParam(c, "quizId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID must be a positive number!", nil)
	}

	if err := engine.DeleteQuiz(database.Database.Db, quizID); err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to delete quiz.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || value <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(value), nil
}
