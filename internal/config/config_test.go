package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.APIBaseURL)
	assert.Equal(t, "/users", cfg.EmployeesPath)
	assert.Equal(t, "/posts", cfg.ExportPath)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 2, cfg.APIMaxRetries)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "data/session.json", cfg.SessionFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("API_BASE_URL", "http://localhost:9000")
	t.Setenv("API_TIMEOUT_MS", "2500")
	t.Setenv("API_MAX_RETRIES", "5")
	t.Setenv("SESSION_TTL_HOURS", "1")

	cfg := Load()
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.APITimeout)
	assert.Equal(t, 5, cfg.APIMaxRetries)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}
