// Package config loads multiquest settings from a YAML file, a .env file and
// MULTIQUEST_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/nathoo/multiquest/titles"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MULTIQUEST_"

type Config struct {
	DefaultTitle  string `yaml:"default_title"`
	TitlesDir     string `yaml:"titles_dir"`
	PlayerName    string `yaml:"player_name"`
	SessionTTL    string `yaml:"session_ttl"`
	SweepInterval string `yaml:"sweep_interval"`
	Seed          int64  `yaml:"seed"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		DefaultTitle:  titles.Default,
		PlayerName:    "Adventurer",
		SessionTTL:    "8h",
		SweepInterval: "5m",
		LogLevel:      "info",
		LogFile:       "multiquest.log",
	}
}

// Load reads path (optional when empty), then .env from the working
// directory, then the process environment.
func Load(path string) (*Config, error) {
	return load(path, ".env", os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", envFile, err)
	}

	env := func(key string) (string, bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	if err := c.applyEnv(env); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv(env func(string) (string, bool)) error {
	strs := map[string]*string{
		"DEFAULT_TITLE":  &c.DefaultTitle,
		"TITLES_DIR":     &c.TitlesDir,
		"PLAYER_NAME":    &c.PlayerName,
		"SESSION_TTL":    &c.SessionTTL,
		"SWEEP_INTERVAL": &c.SweepInterval,
		"LOG_LEVEL":      &c.LogLevel,
		"LOG_FILE":       &c.LogFile,
	}
	for key, field := range strs {
		if v, ok := env(key); ok {
			*field = v
		}
	}

	if v, ok := env("SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	return nil
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.DefaultTitle == "" {
		el.Add(fmt.Errorf("default_title is required"))
	}
	if c.PlayerName == "" {
		el.Add(fmt.Errorf("player_name is required"))
	}

	if d, err := time.ParseDuration(c.SessionTTL); err != nil {
		el.Add(fmt.Errorf("parsing session_ttl: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("session_ttl must be positive"))
	}
	if d, err := time.ParseDuration(c.SweepInterval); err != nil {
		el.Add(fmt.Errorf("parsing sweep_interval: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("sweep_interval must be positive"))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		el.Add(err)
	}

	return el.Err()
}

// TTL is the parsed session expiry window.
func (c *Config) TTL() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Sweep is the parsed janitor interval.
func (c *Config) Sweep() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Level is the parsed log level.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: want debug, info, warn or error", s)
	}
	return l, nil
}
