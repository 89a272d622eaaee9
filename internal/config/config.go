// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/gofinances/backend/internal/storage"
)

type Config struct {
	// HTTP Server
	APIURL string
	Port   string

	// Database
	DBPath string

	// Location used to determine dates and months
	TZLocation string

	// Which key the transaction lists are stored under
	StorageScope string
}

func Load() *Config {
	return &Config{
		APIURL: getEnv("API_URL", ""),
		Port:   getEnv("PORT", "8080"),

		DBPath: getEnv("DB_PATH", "data/gofinances.db"),

		TZLocation:   getEnv("TZ_LOCATION", "America/Sao_Paulo"),
		StorageScope: getEnv("STORAGE_SCOPE", string(storage.ScopeIdentity)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else if _, err := c.BaseURL(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid location '%s': %v", c.TZLocation, err))
	}

	scope := storage.Scope(c.StorageScope)
	if scope != storage.ScopeIdentity && scope != storage.ScopeGlobal {
		errors = append(errors, fmt.Sprintf("invalid storage scope '%s': must be one of [%s %s]", c.StorageScope, storage.ScopeIdentity, storage.ScopeGlobal))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API URL. A trailing slash is removed.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(c.APIURL, "/"))
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scheme must be 'http' or 'https', got '%s'", u.Scheme)
	}

	return u, nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TZLocation)
}

func (c *Config) Scope() storage.Scope {
	return storage.Scope(c.StorageScope)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
