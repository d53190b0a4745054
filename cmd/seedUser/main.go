package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"savor/frontend/login"
	"savor/infrastructure/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	dbPath := getenv("SQLITE_PATH", "savor.db")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	username := getenv("SEED_USERNAME", "savor")
	password := getenv("SEED_PASSWORD", "Savor123!Pantry")
	if err := login.UpsertUserPasswordHash(context.Background(), db, username, password); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	fmt.Printf("seeded user (username=%s)\n", username)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
