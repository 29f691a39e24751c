package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"feedbackhub/internal/config"
	"feedbackhub/internal/db"
	"feedbackhub/internal/model"
	"feedbackhub/internal/repository"
)

// seedUser bundles a demo account with its feedback entries.
type seedUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Feedback  []seedFeedback
}

type seedFeedback struct {
	Title   string
	Content string
}

var demoUsers = []seedUser{
	{
		Username:  "alice",
		Password:  "alice-demo",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Anderson",
		Feedback: []seedFeedback{
			{Title: "Great onboarding", Content: "Signing up took less than a minute."},
			{Title: "Feature request", Content: "Would love an export button on the profile page."},
		},
	},
	{
		Username:  "bob",
		Password:  "bob-demo",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Brown",
		Feedback: []seedFeedback{
			{Title: "Login hiccup", Content: "Got logged out once after editing feedback."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Feedback{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	feedback := repository.NewFeedbackRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, demo := range demoUsers {
		if _, err := users.FindByUsername(ctx, demo.Username); err == nil {
			// seeding is idempotent: existing demo users are left alone
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", demo.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", demo.Username, err)
		}

		user := &model.User{
			Username:     demo.Username,
			PasswordHash: string(hashed),
			Email:        demo.Email,
			FirstName:    demo.FirstName,
			LastName:     demo.LastName,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", demo.Username, err)
		}

		for _, entry := range demo.Feedback {
			if err := feedback.Create(ctx, &model.Feedback{
				Title:    entry.Title,
				Content:  entry.Content,
				Username: demo.Username,
			}); err != nil {
				log.Fatalf("Failed to create feedback for %s: %v", demo.Username, err)
			}
		}
		created++
	}

	log.Printf("Seed completed: %d users created, %d already present", created, skipped)
}
