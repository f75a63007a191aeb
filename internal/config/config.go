package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	AppEnv            string
	BaseURL           string
	EnableDocs        bool
	AdminAPIKey       string
	LogPath           string
	Debug             bool
	DBMaxConns        int32
	DBMinConns        int32
	CashfreeAppID     string
	CashfreeSecretKey string
	CashfreeBaseURL   string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	appID, exists := os.LookupEnv("CASHFREE_APP_ID")
	if !exists || appID == "" {
		return nil, fmt.Errorf("CASHFREE_APP_ID is required")
	}
	secretKey, exists := os.LookupEnv("CASHFREE_SECRET_KEY")
	if !exists || secretKey == "" {
		return nil, fmt.Errorf("CASHFREE_SECRET_KEY is required")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "production")),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		EnableDocs:        getEnvBool("ENABLE_API_DOCS", false),
		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		LogPath:           getEnv("LOG_PATH", "logs/"),
		Debug:             getEnvBool("DEBUG", false),
		DBMaxConns:        getEnvInt32("DB_MAX_CONNS", 10),
		DBMinConns:        getEnvInt32("DB_MIN_CONNS", 2),
		CashfreeAppID:     appID,
		CashfreeSecretKey: secretKey,
		CashfreeBaseURL:   getEnv("CASHFREE_BASE_URL", "https://sandbox.cashfree.com"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt32(key string, fallback int32) int32 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return fallback
	}
	return int32(parsed)
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

// SeedEnabled gates the destructive reseed endpoint to non-production
// environments.
func (c *Config) SeedEnabled() bool {
	return c != nil && c.AppEnv != "production"
}
