package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port            string
	BasePath        string
	CorsOrigins     string
	ShutdownTimeout time.Duration

	DBDriver       string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBSeed         bool

	LogLevel  string
	LogFormat string
}

// DSN builds the postgres connection string.
func (s Settings) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName, s.DBSSLMode)
}

// Load reads the settings from the environment after loading .env, if present.
// Unset or empty keys take their defaults.
func Load() (Settings, error) {
	_ = godotenv.Load(".env")

	s := Settings{
		Port:        lookup("APP_PORT", "8000"),
		BasePath:    lookup("API_BASE_PATH", "/api"),
		CorsOrigins: lookup("CORS_ORIGINS", "*"),
		DBDriver:    lookup("DB_DRIVER", "postgres"),
		DBHost:      lookup("DB_HOST", "localhost"),
		DBUser:      lookup("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      lookup("DB_NAME", "movies"),
		DBSSLMode:   lookup("DB_SSLMODE", "disable"),
		DBPath:      lookup("DB_PATH", "movies.db"),
		LogLevel:    lookup("LOG_LEVEL", "info"),
		LogFormat:   lookup("LOG_FORMAT", "text"),
	}

	var err error
	if s.DBPort, err = lookupInt("DB_PORT", 5432); err != nil {
		return s, err
	}
	if s.DBMaxOpenConns, err = lookupInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return s, err
	}
	if s.DBMaxIdleConns, err = lookupInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return s, err
	}
	if s.DBSeed, err = lookupBool("DB_SEED", false); err != nil {
		return s, err
	}
	if s.ShutdownTimeout, err = lookupDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return s, err
	}

	switch s.DBDriver {
	case "postgres", "sqlite":
	default:
		return s, fmt.Errorf("DB_DRIVER: unsupported driver %q", s.DBDriver)
	}
	return s, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func lookupInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func lookupBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
