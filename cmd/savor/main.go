package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"savor/backend"
	"savor/infrastructure/audit"
	"savor/infrastructure/cache"
	httpserver "savor/infrastructure/http"
	"savor/infrastructure/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "savor.db")
	backendURL := getenv("BACKEND_URL", "http://localhost:8000")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	sessionCache := cache.NewUserSessionCache()
	userCache := cache.NewUserCache()
	criteriaCache := cache.NewCriteriaCache(12 * time.Hour)
	auditSvc := audit.NewService()
	backendClient := backend.New(backendURL, nil)

	server := httpserver.NewServer(addr, db, sessionCache, userCache, criteriaCache, auditSvc, backendClient)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("savor listening on %s (backend %s)", addr, backendURL)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
