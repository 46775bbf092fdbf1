// Package config loads service settings from an optional TOML file, a .env file
// and the process environment, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kesava936/money-muling-detection/internal/parser"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Graph  GraphConfig  `toml:"graph"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Port         int     `toml:"port"`
	CORSOrigin   string  `toml:"cors_origin"`
	RateLimit    float64 `toml:"rate_limit"` // payload uploads per second
	RateBurst    int     `toml:"rate_burst"`
	MaxBodyBytes int64   `toml:"max_body_bytes"`
}

type GraphConfig struct {
	HubPosition string `toml:"hub_position"` // "first" or "last"
}

type LogConfig struct {
	Level string `toml:"level"` // debug|info|warn|error
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			CORSOrigin:   "*",
			RateLimit:    5,
			RateBurst:    10,
			MaxBodyBytes: 32 << 20,
		},
		Graph: GraphConfig{HubPosition: parser.DefaultHubPosition.String()},
		Log:   LogConfig{Level: "info"},
	}
}

// Load builds the configuration. path may be empty; a missing file is not an
// error, a malformed one is. A .env file in the working directory is applied
// to the environment if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RINGVIZ_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RINGVIZ_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGIN"); v != "" {
		c.Server.CORSOrigin = v
	}

	if v := os.Getenv("RINGVIZ_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RINGVIZ_RATE_LIMIT %q: %w", v, err)
		}
		c.Server.RateLimit = limit
	}

	if v := os.Getenv("RINGVIZ_HUB_POSITION"); v != "" {
		c.Graph.HubPosition = v
	}

	if v := os.Getenv("RINGVIZ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}

	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %v", c.Server.RateLimit)
	}

	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("rate_burst must be positive, got %d", c.Server.RateBurst)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}

	if _, err := c.HubPosition(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}

func (c *Config) HubPosition() (parser.HubPosition, error) {
	return parser.ParseHubPosition(c.Graph.HubPosition)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
