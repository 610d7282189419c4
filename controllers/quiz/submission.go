package controllers

import (
	"github.com/gofiber/fiber/v2"

	"elearn/database"
	"elearn/engine"
	"elearn/middleware"
)

// SubmitQuiz grades a learner's answers and records the attempt. Grading and
// completion propagation happen in one transaction inside the engine.
func SubmitQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		LearnerID uint                 `json:"learnerId"`
		QuizID    uint                 `json:"quizId"`
		Answers   []engine.AnswerInput `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.LearnerID == 0 || reqData.QuizID == 0 || reqData.Answers == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Learner ID, Quiz ID, and answers array are required.", nil)
	}

	result, err := engine.SubmitQuiz(database.Database.Db, engine.SubmitQuizInput{
		UserID:  reqData.LearnerID,
		QuizID:  reqData.QuizID,
		Answers: reqData.Answers,
	})
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to submit quiz due to a server error.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", result)
}
