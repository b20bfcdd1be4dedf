package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration. Every field maps to an
// environment variable; secrets come from the environment (or a .env
// file loaded in main) and are never baked into the binary.
type Config struct {
	Port        string // HTTP port to listen on
	DatabaseURL string // postgres DSN
	OMDBBaseURL string // metadata provider base URL
	OMDBAPIKey  string // provider API key
	OMDBUserKey string // optional per-user provider key ("i" query parameter)
	OMDBTimeout int    // provider request timeout in seconds
}

func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: mustEnv("DATABASE_URL"),
		OMDBBaseURL: os.Getenv("API_BASE_URL"),
		OMDBAPIKey:  mustEnv("API_KEY"),
		OMDBUserKey: os.Getenv("API_USER_KEY"),
		OMDBTimeout: intEnv("API_TIMEOUT_SECONDS", 10),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if cfg.OMDBBaseURL == "" {
		cfg.OMDBBaseURL = "https://www.omdbapi.com/"
	}

	return cfg
}

func mustEnv(key string) string {
	value := os.Getenv(key)

	if value == "" {
		log.Fatalf("%s environment variable is not set", key)
	}

	return value
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)

	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)

	if err != nil || value <= 0 {
		log.Printf("Invalid %s value %q, using %d", key, raw, fallback)
		return fallback
	}

	return value
}
