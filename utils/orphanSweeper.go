package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"elearn/config"
	"elearn/database"
	"elearn/models"
)

// InitializeOrphanSweeper schedules the daily sweep of upload files that no
// content row references anymore (failed uploads, deleted content)
func InitializeOrphanSweeper() {
	log.Println("[ORPHAN-SWEEPER] Initializing upload sweeper...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[ORPHAN-SWEEPER] Running daily orphan sweep...")
		SweepOrphanUploads()
	})

	c.Start()
	log.Println("[ORPHAN-SWEEPER] Upload sweeper started - runs daily at 3 AM")
}

// SweepOrphanUploads deletes files in the upload directory that have no
// matching module_contents row. Files younger than an hour are skipped so an
// in-flight upload is never raced.
func SweepOrphanUploads() {
	db := database.Database.Db
	uploadDir := config.AppConfig.UploadDir

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		log.Printf("[ORPHAN-SWEEPER] Error reading upload dir: %v", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < time.Hour {
			continue
		}

		var count int64
		if err := db.Model(&models.ModuleContent{}).
			Where("file_path = ?", GetFileURL(entry.Name())).
			Count(&count).Error; err != nil {
			log.Printf("[ORPHAN-SWEEPER] Error checking file %s: %v", entry.Name(), err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			log.Printf("[ORPHAN-SWEEPER] Error deleting orphan %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	log.Printf("[ORPHAN-SWEEPER] Sweep finished, removed %d orphaned file(s)", removed)
}
