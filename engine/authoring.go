package engine

import (
	"strings"

	"gorm.io/gorm"

	quizModels "elearn/models/quiz"
)

// OptionInput is one answer option supplied by the quiz author
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionInput is one question supplied by the quiz author. Options is used
// by multiple_choice questions; IsTrueCorrect by true_false questions;
// short_answer questions need neither.
type QuestionInput struct {
	Text          string        `json:"text"`
	Type          string        `json:"type"`
	Options       []OptionInput `json:"options"`
	IsTrueCorrect *bool         `json:"isTrueCorrect"`
}

// CreateQuizInput is the full quiz definition to persist as one unit of work
type CreateQuizInput struct {
	ModuleID        uint
	Title           string
	Description     string
	DurationMinutes *int
	PassPercentage  float64
	Questions       []QuestionInput
}

// CreateQuiz persists a quiz with its questions and answer keys inside a
// single transaction. Questions keep their array position as display_order.
// Any invalid question aborts the whole operation, leaving no partial quiz,
// question or option rows behind.
func CreateQuiz(db *gorm.DB, input CreateQuizInput) (uint, error) {
	if input.ModuleID == 0 || strings.TrimSpace(input.Title) == "" || len(input.Questions) == 0 {
		return 0, newValidationError(-1, "Module ID, title, and at least one question are required.")
	}

	var quizID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		newQuiz := quizModels.Quiz{
			ModuleID:        input.ModuleID,
			Title:           strings.TrimSpace(input.Title),
			Description:     input.Description,
			DurationMinutes: input.DurationMinutes,
			PassPercentage:  input.PassPercentage,
		}
		if err := tx.Create(&newQuiz).Error; err != nil {
			return err
		}

		for i, q := range input.Questions {
			if strings.TrimSpace(q.Text) == "" {
				return newValidationError(i, "Question text is missing.")
			}

			questionType := q.Type
			if questionType == "" {
				questionType = quizModels.TypeMultipleChoice
			}

			question := quizModels.Question{
				QuizID:       newQuiz.ID,
				QuestionText: q.Text,
				QuestionType: questionType,
				DisplayOrder: i,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			switch questionType {
			case quizModels.TypeMultipleChoice:
				if err := createChoiceOptions(tx, question.ID, i, q.Options); err != nil {
					return err
				}
			case quizModels.TypeTrueFalse:
				if q.IsTrueCorrect == nil {
					return newValidationError(i, "True/False question must specify which answer is correct.")
				}
				options := []quizModels.Option{
					{QuestionID: question.ID, OptionText: "True", IsCorrect: *q.IsTrueCorrect},
					{QuestionID: question.ID, OptionText: "False", IsCorrect: !*q.IsTrueCorrect},
				}
				if err := tx.Create(&options).Error; err != nil {
					return err
				}
			case quizModels.TypeShortAnswer:
				// Free-form answers, no key stored. Graded on submission.
			default:
				return newValidationError(i, "Unknown question type '"+questionType+"'.")
			}
		}

		quizID = newQuiz.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return quizID, nil
}

// createChoiceOptions validates and inserts the answer key of a
// multiple_choice question: at least two options, none blank, at least one
// marked correct.
func createChoiceOptions(tx *gorm.DB, questionID uint, questionIndex int, options []OptionInput) error {
	if len(options) < 2 {
		return newValidationError(questionIndex, "Question must have at least two options.")
	}

	hasCorrect := false
	rows := make([]quizModels.Option, 0, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt.Text) == "" {
			return newValidationError(questionIndex, "Option text is missing.")
		}
		if opt.IsCorrect {
			hasCorrect = true
		}
		rows = append(rows, quizModels.Option{
			QuestionID: questionID,
			OptionText: opt.Text,
			IsCorrect:  opt.IsCorrect,
		})
	}
	if !hasCorrect {
		return newValidationError(questionIndex, "Question must have at least one correct option.")
	}

	return tx.Create(&rows).Error
}
