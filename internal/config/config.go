// Package config reads the server settings from the environment, loading a
// .env file first when one is present.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"marketplace_admin/internal/reports"
	"marketplace_admin/pkg/utils"
)

type Config struct {
	Port               string
	CORSAllowedOrigins []string
	LogLevel           string
	SeedPath           string
	DatabaseURL        string // empty disables the transaction archive
	SchemaPath         string
	CurrencyLocale     string
	CurrencyCode       string
	WeekStart          time.Weekday
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not fatal: production passes real environment variables.
		utils.LogDebug("No .env file found, relying on environment variables")
	}

	weekStartName := utils.Getenv("WEEK_START", "monday")
	weekStart, ok := reports.ParseWeekday(weekStartName)
	if !ok {
		return nil, fmt.Errorf("config: WEEK_START %q is not a day of the week", weekStartName)
	}

	return &Config{
		Port:               utils.Getenv("PORT", "8080"),
		CORSAllowedOrigins: utils.GetenvList("CORS_ALLOWED_ORIGINS", defaultOrigins),
		LogLevel:           utils.Getenv("LOG_LEVEL", "info"),
		SeedPath:           utils.Getenv("SEED_PATH", "configs/seed.yaml"),
		DatabaseURL:        utils.Getenv("DATABASE_URL", ""),
		SchemaPath:         utils.Getenv("DB_SCHEMA_PATH", "db/schema.sql"),
		CurrencyLocale:     utils.Getenv("CURRENCY_LOCALE", "vi"),
		CurrencyCode:       utils.Getenv("CURRENCY_CODE", "VND"),
		WeekStart:          weekStart,
	}, nil
}
