package models

import "gorm.io/gorm"

// Module represents a learning module that owns content, quizzes and enrollments
type Module struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published" gorm:"default:false"`
	LecturerID  uint   `json:"lecturer_id" gorm:"index"`
}
