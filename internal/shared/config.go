package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Admin    AdminConfig    `toml:"admin"`
	Database DatabaseConfig `toml:"database"`
	Player   PlayerConfig   `toml:"player"`
}

// APIConfig contains connection settings for the catalog backend.
type APIConfig struct {
	BaseURL   string  `toml:"base_url"`
	RateLimit float64 `toml:"rate_limit"` // requests per second, 0 disables limiting
}

// AdminConfig contains connection settings for the admin back-office API.
//
// The admin surface lives on a separate base URL and carries its own session.
type AdminConfig struct {
	BaseURL string `toml:"base_url"`
}

// DatabaseConfig contains local database settings for the session and catalog cache.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// PlayerConfig contains playback defaults.
type PlayerConfig struct {
	Shuffle bool `toml:"shuffle"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// A .env file in the working directory, when present, overrides the base URLs
// via QUAVER_API_URL and QUAVER_ADMIN_URL.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(&config)

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	applyEnvOverrides(&config)
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvOverrides layers environment values over the parsed config.
//
// godotenv.Load is best-effort; a missing .env file is not an error.
func applyEnvOverrides(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("QUAVER_API_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("QUAVER_ADMIN_URL"); v != "" {
		config.Admin.BaseURL = v
	}
	if v := os.Getenv("QUAVER_DB_PATH"); v != "" {
		config.Database.Path = v
	}
}
