package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// DataDir holds the sqlite store and the process lock file.
	DataDir     string
	FrontendURL string
	// Session tokens
	JWTSecret     string
	TokenTTLHours int
	// Optional bcrypt-hash overrides for the login allow-list
	// (see scripts/genhash.go to generate values).
	AdminPasswordHash string
	HRPasswordHash    string
	// Redis (optional, login rate limiter backend)
	RedisURL      string
	RedisPassword string
	// Rate limiting
	LoginRateLimit         int
	LoginRateWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// .env is only used for local runs; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		Environment:            getEnv("APP_ENV", "development"),
		DataDir:                getEnv("DATA_DIR", "./data"),
		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLHours:          getEnvInt("TOKEN_TTL_HOURS", 12),
		AdminPasswordHash:      getEnv("ADMIN_PASSWORD_HASH", ""),
		HRPasswordHash:         getEnv("HR_PASSWORD_HASH", ""),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		LoginRateLimit:         getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindowSeconds: getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60),
	}

	if cfg.JWTSecret == "" {
		// local tool, not a security boundary; still warn so a shared
		// deployment sets its own secret
		log.Println("WARNING: JWT_SECRET not set. Using an insecure development secret.")
		cfg.JWTSecret = "ats-dev-secret"
	}

	return cfg, nil
}

// StorePath returns the sqlite database location inside DataDir.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "ats.db")
}

// LockPath returns the single-instance lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.DataDir, "ats.lock")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
