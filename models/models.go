package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig. A .env file in the working
// directory is loaded into the environment before LoadConfig runs.
const (
	EnvPort        = "BIORHYTHM_PORT"
	EnvBirthDate   = "BIORHYTHM_BIRTH_DATE"
	EnvSessionKey  = "BIORHYTHM_SESSION_KEY"
	EnvLogDir      = "BIORHYTHM_LOG_DIR"
	EnvOpenBrowser = "BIORHYTHM_OPEN_BROWSER"
)

// Config holds the application configuration
type Config struct {
	Port        string
	BirthDate   time.Time
	SessionKey  string
	LogDir      string
	OpenBrowser bool
}

// DefaultConfig is the configuration used when no environment is set.
func DefaultConfig() Config {
	birth, _ := ParseDate(DefaultBirthDate)
	return Config{
		Port:      "8080",
		BirthDate: birth,
		LogDir:    "logs",
	}
}

// LoadConfig overlays environment variables on DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		cfg.Port = v
	}
	if v := os.Getenv(EnvBirthDate); strings.TrimSpace(v) != "" {
		birth, err := ParseDate(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBirthDate, err)
		}
		cfg.BirthDate = birth
	}
	cfg.SessionKey = os.Getenv(EnvSessionKey)
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		cfg.LogDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOpenBrowser)); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q", EnvOpenBrowser, v)
		}
		cfg.OpenBrowser = open
	}
	return cfg, nil
}
