package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server and the CLI read from the environment.
type Config struct {
	Env         string
	Port        string
	LogLevel    string
	CORSOrigins string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBPath            string
	DBMaxIdleConns    int
	DBMaxOpenConns    int
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	CatalogURL      string
	CatalogTimeout  time.Duration
	CatalogCacheTTL time.Duration

	AIProvider    string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	AITimeout     time.Duration
}

// LoadEnv loads variables from a .env file if present. A missing file is
// not reported.
func LoadEnv() {
	loadEnv(log.Printf, ".env")
}

func loadEnv(logf func(format string, args ...any), filename string) {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logf("failed to load %s: %v", filename, err)
	}
}

// Load reads the environment into a Config, applying defaults.
func Load() Config {
	return Config{
		Env:         GetEnv("ENV", "development"),
		Port:        GetEnv("PORT", "3000"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),

		DBDriver:          strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBHost:            GetEnv("DB_HOST", "localhost"),
		DBPort:            GetEnv("DB_PORT", "5432"),
		DBUser:            GetEnv("DB_USER", "postgres"),
		DBPassword:        GetEnv("DB_PASSWORD", "postgres"),
		DBName:            GetEnv("DB_NAME", "cardcopy"),
		DBSSLMode:         GetEnv("DB_SSLMODE", "disable"),
		DBPath:            GetEnv("DB_PATH", "cardcopy.db"),
		DBMaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		DBConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		DBConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),

		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		CatalogURL:      GetEnv("CATALOG_URL", "https://bk-api.bankkaro.com/sp/api/cards"),
		CatalogTimeout:  GetDurationEnv("CATALOG_TIMEOUT", 15*time.Second),
		CatalogCacheTTL: GetDurationEnv("CATALOG_CACHE_TTL", 10*time.Minute),

		AIProvider:    strings.ToLower(GetEnv("AI_PROVIDER", "gemini")),
		GeminiAPIKey:  GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:   GetEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL: GetEnv("GEMINI_BASE_URL", ""),
		OpenAIAPIKey:  GetEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: GetEnv("OPENAI_BASE_URL", ""),
		AITimeout:     GetDurationEnv("AI_TIMEOUT", 60*time.Second),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
