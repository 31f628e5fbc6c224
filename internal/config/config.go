package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB        DBConfig        `toml:"database"`
	User      UserConfig      `toml:"user"`
	Log       LogConfig       `toml:"log"`
	Analytics AnalyticsConfig `toml:"analytics"`
	Session   SessionConfig   `toml:"session"`

	location *time.Location
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type UserConfig struct {
	ID string `toml:"id"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Empty logs to stderr.
	JSON  bool   `toml:"json"`
}

type AnalyticsConfig struct {
	Timezone         string `toml:"timezone"` // IANA name or "Local".
	Weeks            int    `toml:"weeks"`
	ConsistencyWeeks int    `toml:"consistency_weeks"`
}

type SessionConfig struct {
	RestSeconds int `toml:"rest_seconds"`
}

func Default() *Config {
	return &Config{
		User: UserConfig{ID: "local"},
		Log:  LogConfig{Level: "warn"},
		Analytics: AnalyticsConfig{
			Timezone:         "Local",
			Weeks:            8,
			ConsistencyWeeks: 4,
		},
		Session:  SessionConfig{RestSeconds: 90},
		location: time.Local,
	}
}

// Returns the directory holding the config and state files.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ratlog"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads ~/.config/ratlog/config.toml after loading a .env file
// from the working directory, if there is one.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("Failed to load .env: %w", err)
	}

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load reads the config at path on top of the defaults, then applies
// environment overrides:
//
//	TURSO_DATABASE_URL, RATLOG_USER_ID, RATLOG_LOG_LEVEL, RATLOG_TIMEZONE,
//	RATLOG_REST_SECONDS, DEV_MODE=true (local sqlite file)
//
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("Failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("RATLOG_USER_ID"); v != "" {
		cfg.User.ID = v
	}
	if v := os.Getenv("RATLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("RATLOG_TIMEZONE"); v != "" {
		cfg.Analytics.Timezone = v
	}
	if v := os.Getenv("RATLOG_REST_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Session.RestSeconds = secs
		}
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
}

func (c *Config) validate() error {
	if c.User.ID == "" {
		return fmt.Errorf("user.id is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Analytics.Weeks <= 0 {
		return fmt.Errorf("analytics.weeks must be positive, got %d", c.Analytics.Weeks)
	}
	if c.Analytics.ConsistencyWeeks <= 0 {
		return fmt.Errorf("analytics.consistency_weeks must be positive, got %d", c.Analytics.ConsistencyWeeks)
	}
	if c.Session.RestSeconds < 0 {
		return fmt.Errorf("session.rest_seconds cannot be negative")
	}

	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return fmt.Errorf("analytics.timezone: %w", err)
	}
	c.location = loc
	return nil
}

// Location is the time zone calendar days are counted in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// HasDatabase reports whether a remote or local database is configured.
func (c *Config) HasDatabase() bool {
	return c.DB.ConnectionString != ""
}
