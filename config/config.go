package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port    string
	AppName string
	LogMode string

	APIBaseURL        string // Upstream REST API
	APITimeoutSeconds int

	JWTKey string // Shared with the upstream API to read role claims

	CacheDriver     string // memory, sqlite, postgres, mysql
	CacheDSN        string
	CacheTTLSeconds int
	CachePurgeSpec  string

	SendgridAPIKey string
	SupportEmail   string
	SupportName    string

	AllowOrigins string
	MaxUploadMB  int
	CookieSecure bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = FromEnv()

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Contact messages will be logged only.")
	}
}

// FromEnv reads the configuration without touching .env files.
func FromEnv() *Config {
	return &Config{
		Port:    getEnv("PORT", "3000"),
		AppName: getEnv("APP_NAME", "LearnHub"),
		LogMode: getEnv("LOG_MODE", "development"),

		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api/v1"), "/"),
		APITimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 15),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		CacheDriver:     strings.ToLower(getEnv("CACHE_DRIVER", "memory")),
		CacheDSN:        getEnv("CACHE_DSN", "storefront-cache.db"),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),
		CachePurgeSpec:  getEnv("CACHE_PURGE_SPEC", "*/10 * * * *"),

		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SupportEmail:   getEnv("SUPPORT_EMAIL", "support@learnhub.local"),
		SupportName:    getEnv("SUPPORT_NAME", "LearnHub Support"),

		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:5173"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 512),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return b
}
