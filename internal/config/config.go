package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxWorkers   int

	// Logging configuration
	LogFormat string // "json" or "pretty"
	LogLevel  string

	// Invoice generator configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Storage configuration
	DataDir     string
	DatabaseURL string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 120)) * time.Second,
		MaxWorkers:   getEnvInt("MAX_WORKERS", 5),

		// Logging configuration
		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),

		// Invoice generator configuration
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnvString("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAITimeout: time.Duration(getEnvInt("OPENAI_TIMEOUT", 60)) * time.Second,

		// Storage configuration
		DataDir:     getEnvString("DATA_DIR", "data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.OpenAIAPIKey == "" {
		log.Println("Warning: No OpenAI API key provided. Invoice generation will fail.")
	}

	if config.DatabaseURL == "" {
		log.Printf("Warning: No DATABASE_URL provided. Invoice records will be stored under %s.", config.DataDir)
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
