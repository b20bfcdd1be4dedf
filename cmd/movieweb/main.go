package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/movieweb-dev/movieweb/db"
	"github.com/movieweb-dev/movieweb/internal/config"
	"github.com/movieweb-dev/movieweb/internal/omdb"
	"github.com/movieweb-dev/movieweb/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	provider := omdb.NewClient(
		cfg.OMDBBaseURL,
		cfg.OMDBAPIKey,
		cfg.OMDBUserKey,
		time.Duration(cfg.OMDBTimeout)*time.Second,
	)

	r := router.NewRouter(conn, provider)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
