package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrPartialR2Config = errors.New("R2 archive configuration is incomplete: set all R2_* variables or none")

type Config struct {
	DatabaseURL           string
	JWTSecretKey          string
	OrganizerPasswordHash string
	ServerPort            int
	CORSAllowedOrigins    []string
	LogLevel              string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// ArchiveEnabled reports whether rounds should be archived to R2.
func (c *Config) ArchiveEnabled() bool {
	return c.R2AccountID != ""
}

// Load reads configuration from the environment. A .env file, when present,
// is loaded first without overriding variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	passwordHash := getenv("ORGANIZER_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, fmt.Errorf("ORGANIZER_PASSWORD_HASH environment variable is not set")
	}

	portStr := getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	logLevel := strings.ToLower(getenv("LOG_LEVEL"))
	switch logLevel {
	case "":
		logLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", logLevel)
	}

	cfg := &Config{
		DatabaseURL:           dbURL,
		JWTSecretKey:          jwtKey,
		OrganizerPasswordHash: passwordHash,
		ServerPort:            port,
		CORSAllowedOrigins:    splitList(getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		LogLevel:              logLevel,
		R2AccountID:           getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:         getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:     getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:          getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:       getenv("R2_PUBLIC_BASE_URL"),
	}

	r2 := []string{cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2BucketName, cfg.R2PublicBaseURL}
	set := 0
	for _, v := range r2 {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != len(r2) {
		return nil, ErrPartialR2Config
	}

	return cfg, nil
}

func splitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
