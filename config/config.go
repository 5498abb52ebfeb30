package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"bikeshare/utils"
)

// Trip source kinds accepted in DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	LogLevel string

	CitiesConfigPath string
	DataSource       string
	DataDir          string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MaxRetries int
	PageSize   int
}

// Load reads the .env file, if any, and returns a populated Config struct.
func Load(logger *utils.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "warn"),

		CitiesConfigPath: getEnv("CITIES_CONFIG", "./config/cities.yaml"),
		DataSource:       strings.ToLower(getEnv("DATA_SOURCE", SourceCSV)),
		DataDir:          getEnv("DATA_DIR", "."),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "bikeshare"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "bikeshare"),
		PostgresDB:       getEnv("POSTGRES_DB", "bikeshare"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxRetries: getEnvInt("MAX_RETRIES", 3),
		PageSize:   getEnvInt("PAGE_SIZE", 5),
	}

	if cfg.PageSize < 1 {
		logger.Warn("[config] PAGE_SIZE must be positive, using 5")
		cfg.PageSize = 5
	}

	return cfg
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
