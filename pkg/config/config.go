package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	PageSize   int
	DataDir    string

	// Dev server settings (cmd/devserver only).
	Port      string
	JWTSecret string
	JWTExpiry time.Duration
	UploadDir string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	pageSize := 10
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	jwtExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "https://simple-api-ngvw.onrender.com"),
		PageSize:   pageSize,
		DataDir:    getEnv("DATA_DIR", defaultDataDir()),
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:  jwtExpiry,
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feedgram"
	}
	return filepath.Join(home, ".feedgram")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
