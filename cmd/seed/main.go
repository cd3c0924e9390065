package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"cropadvisor/internal/auth"
	"cropadvisor/internal/config"
	"cropadvisor/internal/db"
	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/model"
	"cropadvisor/internal/repository"
	"cropadvisor/internal/service"
)

func main() {
	username := flag.String("username", "demo", "username of the seeded account")
	password := flag.String("password", "Demo123!@", "password of the seeded account (must satisfy the policy)")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.SQLitePath, cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Seed through the normal registration path so the password policy and
	// hashing apply exactly as they do for real sign-ups. The session store
	// is unused during registration; a nil cache client is fine here.
	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.SessionSecret), auth.NewSessionStore(nil))

	user, err := authService.Register(context.Background(), *username, *password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			log.Printf("Account %q already exists, nothing to do", *username)
			return
		}
		log.Fatalf("Failed to seed account: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Account created: %s (id=%d)", user.Username, user.ID)
}
