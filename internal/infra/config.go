package infra

import (
	"os"
	"time"
)

// Config represents console configuration loaded from environment variables.
// Backend connection parameters are deployment concerns; none of them change
// console behavior beyond selecting the store and auth endpoints.
type Config struct {
	AppEnv        string
	DatabaseURL   string // empty selects the in-memory document store
	AuthBaseURL   string
	AuthAPIKey    string
	LogFile       string
	DefaultLocale string
	AuthTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() *Config {
	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AuthBaseURL:   os.Getenv("AUTH_BASE_URL"),
		AuthAPIKey:    os.Getenv("AUTH_API_KEY"),
		LogFile:       getEnv("BAGISADMIN_LOG", "bagisadmin.log"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "tr"),
		AuthTimeout:   15 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
