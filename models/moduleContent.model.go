package models

import "gorm.io/gorm"

// ModuleContent represents an uploaded content item within a module.
// DisplayOrder is zero-based and unique within a module: the sequencing
// engine assigns it on append and rewrites it on reorder.
type ModuleContent struct {
	gorm.Model
	ModuleID         uint   `json:"module_id" gorm:"index;not null"`
	ContentType      string `json:"content_type" gorm:"default:'other'"` // video, pdf, image, presentation, other
	Title            string `json:"title"`
	Description      string `json:"description"`
	FilePath         string `json:"file_path"`
	OriginalFilename string `json:"original_filename"`
	DisplayOrder     int    `json:"display_order" gorm:"index;default:0"`
}
