package quiz

import "gorm.io/gorm"

// Submission records one graded attempt at a quiz
type Submission struct {
	gorm.Model
	QuizID  uint     `json:"quiz_id" gorm:"index;not null"`
	UserID  uint     `json:"user_id" gorm:"index;not null"`
	Score   float64  `json:"score" gorm:"default:0"`
	Passed  bool     `json:"passed" gorm:"default:false"`
	Answers []Answer `json:"answers" gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the original table name
func (Submission) TableName() string { return "quiz_submissions" }

// Answer is the per-question audit row of a submission. Exactly one of
// SubmittedText (short_answer) and SelectedOptionID (choice types) is
// meaningful, decided by the owning question's type.
type Answer struct {
	gorm.Model
	QuestionID       uint    `json:"question_id" gorm:"index;not null"`
	SubmissionID     uint    `json:"submission_id" gorm:"index;not null"`
	UserID           uint    `json:"user_id" gorm:"index;not null"`
	SubmittedText    *string `json:"submitted_text"`
	SelectedOptionID *uint   `json:"selected_option_id"`
	IsCorrect        bool    `json:"is_correct" gorm:"default:false"`
}

// TableName keeps the original table name
func (Answer) TableName() string { return "quiz_answers" }
