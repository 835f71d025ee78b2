package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/khedmalink/khedma/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Session store backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig          `yaml:"api"`
	Session     SessionConfig      `yaml:"session"`
	DataDir     string             `yaml:"data_dir" env:"KHEDMA_DATA_DIR"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig locates the marketplace backend
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"KHEDMA_API_URL"`
	Timeout time.Duration `yaml:"timeout" env:"KHEDMA_API_TIMEOUT"`
}

// SessionConfig selects where the admin login flag is persisted
type SessionConfig struct {
	Backend   string `yaml:"backend" env:"KHEDMA_SESSION_BACKEND"`
	RedisAddr string `yaml:"redis_addr" env:"KHEDMA_REDIS_ADDR"`
	RedisDB   int    `yaml:"redis_db" env:"KHEDMA_REDIS_DB"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from KHEDMA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KHEDMA_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// parseEnv applies KHEDMA_* environment overrides on top of file values
func parseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load loads config from the user's config directory, then applies
// environment overrides. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(config)

	if err := parseEnv(config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ResolveDataDir returns the directory holding the session database and
// logs, creating it if needed
func (c *Config) ResolveDataDir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".khedma")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "khedma", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "khedma", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8080"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Session.Backend == "" {
		c.Session.Backend = BackendSQLite
	}
	if c.Session.RedisAddr == "" {
		c.Session.RedisAddr = "localhost:6379"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
