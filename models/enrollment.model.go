package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment ties a learner to a module. Completed is only flipped by the
// grading path when a submission passes the quiz threshold.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enrollments_user_module"`
	ModuleID    uint       `json:"module_id" gorm:"index;not null;uniqueIndex:idx_enrollments_user_module"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}
