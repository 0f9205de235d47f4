// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Session     SessionConfig
	Images      ImageConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type SessionConfig struct {
	TTLMinutes    int
	FlashRevertMS int
}

type ImageConfig struct {
	FetchTimeout int // in seconds
	MaxBytes     int64
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

type FrontendConfig struct {
	BaseURL string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Session: SessionConfig{
			TTLMinutes:    getEnvAsInt("SESSION_TTL_MINUTES", 30),
			FlashRevertMS: getEnvAsInt("FLASH_REVERT_MS", 600),
		},
		Images: ImageConfig{
			FetchTimeout: getEnvAsInt("IMAGE_FETCH_TIMEOUT", 10),
			MaxBytes:     int64(getEnvAsInt("IMAGE_MAX_BYTES", 5*1024*1024)),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	// The confirmation flash reverts somewhere between half a second and
	// under a second; anything outside (0s, 1s] is a misconfiguration.
	if c.Session.FlashRevertMS <= 0 || c.Session.FlashRevertMS > 1000 {
		return fmt.Errorf("FLASH_REVERT_MS must be in (0, 1000], got %d", c.Session.FlashRevertMS)
	}

	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be at least 1, got %d", c.Session.TTLMinutes)
	}

	if c.Images.FetchTimeout < 1 {
		return fmt.Errorf("IMAGE_FETCH_TIMEOUT must be at least 1 second, got %d", c.Images.FetchTimeout)
	}

	return nil
}

func (c *Config) FlashRevert() time.Duration {
	return time.Duration(c.Session.FlashRevertMS) * time.Millisecond
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
