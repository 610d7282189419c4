package quizRoutes

import (
	quizControllers "elearn/controllers/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz authoring, reading and submission routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/api/quizzes")

	quizGroup.Post("/", quizControllers.CreateQuiz)
	quizGroup.Get("/:quizId", quizControllers.GetQuizDetails)
	quizGroup.Get("/:quizId/questions", quizControllers.GetQuizQuestions)
	quizGroup.Delete("/:quizId", quizControllers.DeleteQuiz)

	app.Post("/api/quiz-submissions", quizControllers.SubmitQuiz)
}
