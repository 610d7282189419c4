package quiz

import "gorm.io/gorm"

// Question types supported by the assessment engine
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeShortAnswer    = "short_answer"
)

// Quiz represents an assessment attached to a module
type Quiz struct {
	gorm.Model
	ModuleID        uint       `json:"module_id" gorm:"index;not null"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes *int       `json:"duration_minutes"`
	PassPercentage  float64    `json:"pass_percentage" gorm:"default:0"`
	Questions       []Question `json:"questions" gorm:"constraint:OnDelete:CASCADE"`
}

// Question belongs to a quiz. DisplayOrder mirrors the authoring array index
// and never changes once the quiz exists.
type Question struct {
	gorm.Model
	QuizID       uint     `json:"quiz_id" gorm:"index;not null"`
	QuestionText string   `json:"question_text" gorm:"type:text"`
	QuestionType string   `json:"question_type" gorm:"default:'multiple_choice'"`
	DisplayOrder int      `json:"display_order" gorm:"default:0"`
	Options      []Option `json:"options" gorm:"constraint:OnDelete:CASCADE"`
}

// Option is the answer key row for multiple_choice and true_false questions.
// true_false questions always own exactly two: "True" and "False".
type Option struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
