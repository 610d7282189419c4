package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"elearn/models"
	quizModels "elearn/models/quiz"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "engine_test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Module{},
		&models.ModuleContent{},
		&models.Enrollment{},
		&quizModels.Quiz{},
		&quizModels.Question{},
		&quizModels.Option{},
		&quizModels.Submission{},
		&quizModels.Answer{},
	))

	return db
}

func createModule(t *testing.T, db *gorm.DB) models.Module {
	t.Helper()
	module := models.Module{Title: "Databases 101", Published: true}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
