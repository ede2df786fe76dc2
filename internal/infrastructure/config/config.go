package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MenuSourceStatic   = "static"
	MenuSourceDynamoDB = "dynamodb"
)

// Config holds the runtime settings read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - GIN_MODE (default: release)
//   - LOG_LEVEL (default: info), LOG_FORMAT (text|json, default: text)
//   - MENU_SOURCE (static|dynamodb, default: static)
//   - JWT_SECRET, ADMIN_EMAIL, ADMIN_PASSWORD_HASH (bcrypt)
//   - ADMIN_TOKEN_TTL (Go duration, default: 8h)
//   - SESSION_IDLE_TTL (Go duration, default: 4h; 0 keeps idle sessions)
//
// DynamoDB settings (AWS_REGION, DYNAMODB_ENDPOINT, MENU_TABLE, ...) are read
// by the database and repository packages.
type Config struct {
	Port              int
	GinMode           string
	LogLevel          string
	LogFormat         string
	MenuSource        string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration
	SessionIdleTTL    time.Duration
}

func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	ttl, err := time.ParseDuration(getenvDefault("ADMIN_TOKEN_TTL", "8h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid ADMIN_TOKEN_TTL %q", os.Getenv("ADMIN_TOKEN_TTL"))
	}

	idle, err := time.ParseDuration(getenvDefault("SESSION_IDLE_TTL", "4h"))
	if err != nil || idle < 0 {
		return Config{}, fmt.Errorf("invalid SESSION_IDLE_TTL %q", os.Getenv("SESSION_IDLE_TTL"))
	}

	source := strings.ToLower(getenvDefault("MENU_SOURCE", MenuSourceStatic))
	if source != MenuSourceStatic && source != MenuSourceDynamoDB {
		return Config{}, fmt.Errorf("invalid MENU_SOURCE %q", source)
	}

	return Config{
		Port:              port,
		GinMode:           getenvDefault("GIN_MODE", "release"),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		LogFormat:         strings.ToLower(getenvDefault("LOG_FORMAT", "text")),
		MenuSource:        source,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTokenTTL:     ttl,
		SessionIdleTTL:    idle,
	}, nil
}

// AdminEnabled reports whether the admin login can issue tokens.
func (c Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
