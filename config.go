package main

import (
	"os"
)

// Config is read from the environment (and .env, via godotenv autoload).
// Command-line flags override individual fields.
type Config struct {
	Port           string
	DatabasePath   string
	AssetsDir      string
	SiteConfig     string
	PhilosophyPath string
	AdminUsername  string
	AdminPassword  string
	LogLevel       string
}

func loadConfig() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		DatabasePath:   getenv("DATABASE_PATH", "portfolio.db"),
		AssetsDir:      getenv("ASSETS_DIR", "."),
		SiteConfig:     os.Getenv("SITE_CONFIG"),
		PhilosophyPath: os.Getenv("PHILOSOPHY_PATH"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
