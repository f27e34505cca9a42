package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is read once at startup and never re-read.
type AppConfig struct {
	Port string

	// Remote directory API.
	APIBaseURL    string
	EmployeesPath string
	ExportPath    string
	APITimeout    time.Duration
	APIMaxRetries int

	// Session gate.
	JWTSecret         string
	SessionFile       string
	DatabaseURL       string // optional; selects the Postgres session store when set
	SessionTTL        time.Duration
	AdminPasswordHash string // optional bcrypt override for the demo password
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("missing required env: JWT_SECRET")
	}

	return AppConfig{
		Port:              getEnv("PORT", "8080"),
		APIBaseURL:        getEnv("API_BASE_URL", "https://jsonplaceholder.typicode.com"),
		EmployeesPath:     getEnv("EMPLOYEES_PATH", "/users"),
		ExportPath:        getEnv("EXPORT_PATH", "/posts"),
		APITimeout:        time.Duration(getEnvInt("API_TIMEOUT_MS", 10000)) * time.Millisecond,
		APIMaxRetries:     getEnvInt("API_MAX_RETRIES", 2),
		JWTSecret:         jwtSecret,
		SessionFile:       getEnv("SESSION_FILE", "data/session.json"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SessionTTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s must be an integer, got %q", key, v)
	}
	return n
}
