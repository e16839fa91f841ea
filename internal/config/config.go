package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultDatabaseFile = "stunting_assistant.db"

type Config struct {
	AppTitle     string
	AppVersion   string
	HTTPPort     string
	LogLevel     string
	JWTSecret    string
	DatabaseURL  string
	LLMProvider  string
	OpenAIKey    string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
}

var AppConfig Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		AppTitle:     getEnv("APP_TITLE", "Asisten Medis Stunting Indonesia"),
		AppVersion:   getEnv("APP_VERSION", ""),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    getEnv("JWT_SECRET", "insecure-dev-secret"),
		DatabaseURL:  getEnv("DATABASE_URL", "sqlite:///"+defaultDatabaseFile),
		LLMProvider:  getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
	}

	if AppConfig.JWTSecret == "insecure-dev-secret" {
		logrus.Warn("JWT_SECRET not set, using insecure development default")
	}
}

// DatabasePath resolves a DATABASE_URL value to a SQLite file path.
//
// Supported forms:
//   - sqlite:///relative/path.db
//   - sqlite:////absolute/path.db
//   - a bare filename ending in .db
//
// Anything else falls back to the default database file.
func DatabasePath(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "sqlite:////") {
		path := strings.TrimPrefix(databaseURL, "sqlite:////")
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return path
	}
	if strings.HasPrefix(databaseURL, "sqlite:///") {
		path := strings.TrimPrefix(databaseURL, "sqlite:///")
		if path == "" {
			return defaultDatabaseFile
		}
		return path
	}
	if strings.HasSuffix(databaseURL, ".db") && !strings.Contains(databaseURL, "://") {
		return databaseURL
	}
	return defaultDatabaseFile
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
