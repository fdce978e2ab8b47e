package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	AdminChatID int64
	HTTPPort    string
	Database    DatabaseConfig
}

// DatabaseConfig holds the optional lead archive connection settings.
// The archive is enabled only when a password is provided.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		HTTPPort: getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "leadbot"),
			User:     getEnv("DB_USER", "leadbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	adminChatID := os.Getenv("ADMIN_CHAT_ID")
	if adminChatID == "" {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is required")
	}
	id, err := strconv.ParseInt(adminChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer: %w", err)
	}
	cfg.AdminChatID = id

	return cfg, nil
}

// ArchiveEnabled reports whether the lead archive database is configured
func (c *Config) ArchiveEnabled() bool {
	return c.Database.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
