package engine

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elearn/models"
)

// NewContent is the metadata of a content item to append to a module. The
// file itself is already stored; FilePath is the locator handed back by the
// storage layer.
type NewContent struct {
	ContentType      string
	Title            string
	Description      string
	FilePath         string
	OriginalFilename string
}

// OrderUpdate is one (id, display_order) pair of a reorder batch
type OrderUpdate struct {
	ID           uint `json:"id"`
	DisplayOrder int  `json:"displayOrder"`
}

// sqliteDialect identifies the one supported dialect whose grammar has no
// FOR UPDATE. SQLite allows a single writer, so the row lock is redundant
// there anyway.
const sqliteDialect = "sqlite"

// lockForUpdate adds a FOR UPDATE row lock on dialects that support it.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == sqliteDialect {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AppendContent inserts a content item at the end of the module's sequence:
// display_order is the current max plus one, or 0 for an empty module. The
// module row is locked for the duration of the transaction so two concurrent
// appends cannot compute the same order.
func AppendContent(db *gorm.DB, moduleID uint, item NewContent) (*models.ModuleContent, error) {
	if moduleID == 0 || strings.TrimSpace(item.Title) == "" || item.ContentType == "" {
		return nil, newValidationError(-1, "Module ID, title, and content type are required.")
	}

	content := models.ModuleContent{
		ContentType:      item.ContentType,
		Title:            strings.TrimSpace(item.Title),
		Description:      item.Description,
		FilePath:         item.FilePath,
		OriginalFilename: item.OriginalFilename,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var owner models.Module
		if err := lockForUpdate(tx).First(&owner, moduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Module"}
			}
			return err
		}

		var nextOrder int
		if err := tx.Model(&models.ModuleContent{}).
			Where("module_id = ?", moduleID).
			Select("COALESCE(MAX(display_order) + 1, 0)").
			Scan(&nextOrder).Error; err != nil {
			return err
		}

		content.ModuleID = moduleID
		content.DisplayOrder = nextOrder
		return tx.Create(&content).Error
	})
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// ReorderContent applies a batch of display_order updates atomically. Entry
// shape is checked before any write is issued; the batch itself is trusted to
// be a full permutation of the module's items and is not checked for density
// or uniqueness here.
func ReorderContent(db *gorm.DB, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return newValidationError(-1, "Invalid content updates array provided.")
	}
	for _, u := range updates {
		if u.ID == 0 || u.DisplayOrder < 0 {
			return newValidationError(-1, "Invalid item format in content updates array.")
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&models.ModuleContent{}).
				Where("id = ?", u.ID).
				Update("display_order", u.DisplayOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
