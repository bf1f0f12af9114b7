package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vault/internal/config"
	"vault/internal/db"
	"vault/internal/model"
	"vault/internal/repository"
	"vault/internal/service"
)

// sampleDocument is a seed record for the content library.
type sampleDocument struct {
	ID          uuid.UUID
	Title       string
	Description string
	FileName    string
	ContentType string
	UploadedBy  string // demo account email
}

var sampleDocuments = []sampleDocument{
	{
		ID:          uuid.MustParse("7d2b91e0-0000-4000-8000-000000000001"),
		Title:       "Quarterly Security Review",
		Description: "Findings and remediation plan for Q3.",
		FileName:    "quarterly-security-review.pdf",
		ContentType: "application/pdf",
		UploadedBy:  "admin@vault.io",
	},
	{
		ID:          uuid.MustParse("7d2b91e0-0000-4000-8000-000000000002"),
		Title:       "Onboarding Guide",
		Description: "Getting started with the platform.",
		FileName:    "onboarding-guide.pdf",
		ContentType: "application/pdf",
		UploadedBy:  "editor@vault.io",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Document{}, &model.Activity{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	documentRepo := repository.NewDocumentRepository(gormDB)

	created, err := service.SeedDemoUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo users: %v", err)
	}
	log.Printf("Demo accounts created: %d", created)

	seeded, skipped, err := seedDocuments(ctx, userRepo, documentRepo)
	if err != nil {
		log.Fatalf("Failed to seed documents: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New documents created: %d", seeded)
	log.Printf("  - Existing documents skipped: %d", skipped)
}

// seedDocuments creates the sample documents that do not exist yet. Fixed IDs
// keep the run idempotent.
func seedDocuments(ctx context.Context, users repository.UserRepository, docs repository.DocumentRepository) (seeded, skipped int, err error) {
	for _, sample := range sampleDocuments {
		if _, err := docs.FindByID(ctx, sample.ID); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return seeded, skipped, err
		}

		uploader, err := users.FindByEmail(ctx, sample.UploadedBy)
		if err != nil {
			return seeded, skipped, err
		}

		doc := &model.Document{
			ID:           sample.ID,
			Title:        sample.Title,
			Description:  sample.Description,
			FileName:     sample.FileName,
			ContentType:  sample.ContentType,
			UploadedByID: uploader.ID,
		}
		if err := docs.Create(ctx, doc); err != nil {
			return seeded, skipped, err
		}
		seeded++
	}
	return seeded, skipped, nil
}
