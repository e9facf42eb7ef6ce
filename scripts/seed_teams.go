package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"team-docs-backend/internal/config"
	"team-docs-backend/internal/database"
	"team-docs-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TeamData mirrors one entry of scripts/data/teams.yaml
type TeamData struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
	Icon        string `yaml:"icon"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("Seeding default teams...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	teams, err := loadTeams("scripts/data/teams.yaml")
	if err != nil {
		log.Fatalf("Failed to load team data: %v", err)
	}

	created := 0
	for _, data := range teams {
		fresh, err := seedTeam(db, data)
		if err != nil {
			log.Fatalf("Failed to seed team %q: %v", data.Name, err)
		}
		if fresh {
			created++
			log.Printf("Created team: %s %s (%s)", data.Icon, data.Name, data.Slug)
		}
	}

	log.Printf("Done: %d created, %d already present", created, len(teams)-created)
}

// connectWithRetry waits for Postgres readiness (dockerized startup)
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadTeams(path string) ([]TeamData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TeamsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Teams, nil
}

// seedTeam inserts the team unless one with the slug already exists. Existing
// teams are left untouched so local edits survive re-runs. Returns true when
// a new row was created.
func seedTeam(db *gorm.DB, data TeamData) (bool, error) {
	var existing models.Team
	err := db.Where("slug = ?", data.Slug).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	team := models.Team{
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Color:       data.Color,
		Icon:        data.Icon,
		IsActive:    true,
		Settings: models.TeamSettings{
			AllowPublicView: false,
			RequireApproval: true,
		},
	}
	return true, db.Create(&team).Error
}
