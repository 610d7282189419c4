package engine

import (
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"elearn/models"
	quizModels "elearn/models/quiz"
)

// AnswerInput is one submitted answer. SelectedOptionID carries the learner's
// pick for choice questions, SubmittedText the free text for short answers.
type AnswerInput struct {
	QuestionID       uint    `json:"questionId"`
	SubmittedText    *string `json:"submittedText"`
	SelectedOptionID *uint   `json:"selectedOptionId"`
}

// SubmitQuizInput is a learner's full attempt at a quiz
type SubmitQuizInput struct {
	UserID  uint
	QuizID  uint
	Answers []AnswerInput
}

// SubmitQuizResult is the graded outcome returned to the caller
type SubmitQuizResult struct {
	SubmissionID   uint    `json:"submissionId"`
	Score          float64 `json:"score"`
	Passed         bool    `json:"passed"`
	CorrectCount   int     `json:"correctCount"`
	TotalQuestions int     `json:"totalQuestions"`
}

// SubmitQuiz grades the learner's answers against the quiz's answer keys,
// stores the submission with one audit row per answer, and flips the
// learner's enrollment to completed on a passing score. All writes share one
// transaction, so a failure anywhere leaves no trace of the attempt.
//
// The score denominator is the number of submitted answers, not the number of
// questions in the quiz: a partial submission is graded only against what the
// learner actually answered.
func SubmitQuiz(db *gorm.DB, input SubmitQuizInput) (*SubmitQuizResult, error) {
	result := new(SubmitQuizResult)

	err := db.Transaction(func(tx *gorm.DB) error {
		var targetQuiz quizModels.Quiz
		if err := tx.First(&targetQuiz, input.QuizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Quiz"}
			}
			return err
		}

		var questions []quizModels.Question
		if err := tx.Preload("Options").Where("quiz_id = ?", input.QuizID).Find(&questions).Error; err != nil {
			return err
		}

		questionTypes := make(map[uint]string, len(questions))
		correctOptions := make(map[uint]map[uint]bool, len(questions))
		for _, q := range questions {
			questionTypes[q.ID] = q.QuestionType
			correct := make(map[uint]bool)
			for _, opt := range q.Options {
				if opt.IsCorrect {
					correct[opt.ID] = true
				}
			}
			correctOptions[q.ID] = correct
		}

		correctCount := 0
		totalQuestions := len(input.Answers)
		answerRows := make([]quizModels.Answer, 0, totalQuestions)

		for _, answer := range input.Answers {
			isCorrect := false

			switch questionTypes[answer.QuestionID] {
			case quizModels.TypeMultipleChoice, quizModels.TypeTrueFalse:
				if answer.SelectedOptionID != nil && correctOptions[answer.QuestionID][*answer.SelectedOptionID] {
					isCorrect = true
				}
			case quizModels.TypeShortAnswer:
				// Placeholder grading: any non-blank text counts as correct.
				if answer.SubmittedText != nil && strings.TrimSpace(*answer.SubmittedText) != "" {
					isCorrect = true
				}
			default:
				// Answer to a question this quiz does not have: scored as
				// incorrect rather than rejecting the whole submission.
			}

			if isCorrect {
				correctCount++
			}
			answerRows = append(answerRows, quizModels.Answer{
				QuestionID:       answer.QuestionID,
				UserID:           input.UserID,
				SubmittedText:    answer.SubmittedText,
				SelectedOptionID: answer.SelectedOptionID,
				IsCorrect:        isCorrect,
			})
		}

		score := 0.0
		if totalQuestions > 0 {
			score = math.Round(float64(correctCount)/float64(totalQuestions)*100*100) / 100
		}
		passed := score >= targetQuiz.PassPercentage

		submission := quizModels.Submission{
			QuizID: input.QuizID,
			UserID: input.UserID,
			Score:  score,
			Passed: passed,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		if len(answerRows) > 0 {
			for i := range answerRows {
				answerRows[i].SubmissionID = submission.ID
			}
			if err := tx.Create(&answerRows).Error; err != nil {
				return err
			}
		}

		if passed {
			// Same transaction as the grade: a crash here rolls back the
			// submission too.
			if _, err := MarkCompleted(tx, input.UserID, targetQuiz.ModuleID); err != nil {
				return err
			}
		}

		result.SubmissionID = submission.ID
		result.Score = score
		result.Passed = passed
		result.CorrectCount = correctCount
		result.TotalQuestions = totalQuestions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkCompleted flips the enrollment for (userID, moduleID) to completed and
// stamps the completion time. Idempotent; a missing enrollment is a silent
// no-op reported through the zero affected-row count, not an error.
func MarkCompleted(tx *gorm.DB, userID, moduleID uint) (int64, error) {
	now := time.Now()
	res := tx.Model(&models.Enrollment{}).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Updates(map[string]interface{}{"completed": true, "completed_at": &now})
	return res.RowsAffected, res.Error
}
