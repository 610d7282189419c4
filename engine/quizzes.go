package engine

import (
	"errors"
	"time"

	"gorm.io/gorm"

	quizModels "elearn/models/quiz"
)

// OptionView is an option as exposed to quiz readers
type OptionView struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionView is a question with its options. Options are omitted for
// short_answer questions; IsTrueCorrect is derived for true_false questions
// for display convenience.
type QuestionView struct {
	ID            uint         `json:"id"`
	Text          string       `json:"text"`
	Type          string       `json:"type"`
	DisplayOrder  int          `json:"displayOrder"`
	Options       []OptionView `json:"options,omitempty"`
	IsTrueCorrect *bool        `json:"isTrueCorrect,omitempty"`
}

// QuizView is a full quiz with nested questions in display order
type QuizView struct {
	ID              uint           `json:"id"`
	ModuleID        uint           `json:"moduleId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DurationMinutes *int           `json:"durationMinutes"`
	PassPercentage  float64        `json:"passPercentage"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Questions       []QuestionView `json:"questions"`
}

// GetQuiz fetches a quiz with its questions and options nested, questions
// ordered by display_order
func GetQuiz(db *gorm.DB, quizID uint) (*QuizView, error) {
	var q quizModels.Quiz
	err := db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Questions.Options").
		First(&q, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Quiz"}
		}
		return nil, err
	}

	view := &QuizView{
		ID:              q.ID,
		ModuleID:        q.ModuleID,
		Title:           q.Title,
		Description:     q.Description,
		DurationMinutes: q.DurationMinutes,
		PassPercentage:  q.PassPercentage,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
		Questions:       make([]QuestionView, 0, len(q.Questions)),
	}

	for _, question := range q.Questions {
		qv := QuestionView{
			ID:           question.ID,
			Text:         question.QuestionText,
			Type:         question.QuestionType,
			DisplayOrder: question.DisplayOrder,
		}

		if question.QuestionType == quizModels.TypeMultipleChoice || question.QuestionType == quizModels.TypeTrueFalse {
			for _, opt := range question.Options {
				qv.Options = append(qv.Options, OptionView{
					ID:        opt.ID,
					Text:      opt.OptionText,
					IsCorrect: opt.IsCorrect,
				})
				if question.QuestionType == quizModels.TypeTrueFalse && opt.OptionText == "True" {
					isTrueCorrect := opt.IsCorrect
					qv.IsTrueCorrect = &isTrueCorrect
				}
			}
		}

		view.Questions = append(view.Questions, qv)
	}

	return view, nil
}

// DeleteQuiz removes a quiz and everything hanging off it: questions,
// options, submissions and answer audit rows, all in one transaction.
func DeleteQuiz(db *gorm.DB, quizID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var target quizModels.Quiz
		if err := tx.First(&target, quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Quiz"}
			}
			return err
		}

		questionIDs := tx.Model(&quizModels.Question{}).Select("id").Where("quiz_id = ?", quizID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&quizModels.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&quizModels.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&quizModels.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&quizModels.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&target).Error
	})
}
