package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"pokedex-backend/internal/errs"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Upstream UpstreamConfig `yaml:"upstream" koanf:"upstream"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port" koanf:"port" validate:"gt=0,lt=65536"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" koanf:"rate_limit_per_sec" validate:"gt=0"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" koanf:"rate_limit_burst" validate:"gt=0"`
}

// UpstreamConfig points at the Pokémon data API being wrapped.
type UpstreamConfig struct {
	APIURL    string `yaml:"api_url" koanf:"api_url" validate:"required,url"`
	ImageURL  string `yaml:"image_url" koanf:"image_url" validate:"required,url"`
	HTTPProxy string `yaml:"http_proxy" koanf:"http_proxy" validate:"omitempty,url"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" koanf:"development"`
}

// envKeys maps the flat environment variable names onto koanf key paths.
var envKeys = map[string]string{
	"API_URL":            "upstream.api_url",
	"IMAGE_URL":          "upstream.image_url",
	"HTTP_PROXY_URL":     "upstream.http_proxy",
	"PORT":               "server.port",
	"RATE_LIMIT_PER_SEC": "server.rate_limit_per_sec",
	"RATE_LIMIT_BURST":   "server.rate_limit_burst",
	"LOG_LEVEL":          "log.level",
	"LOG_DEVELOPMENT":    "log.development",
}

// Load reads the configuration from the optional yaml file at path, overlays
// environment variables (a .env file in the working directory is honoured)
// and validates the result. Every failure wraps errs.ErrConfig.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read .env: %v", errs.ErrConfig, err)
	}

	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrConfig, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed to decode %s: %v", errs.ErrConfig, path, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[strings.ToUpper(s)]
	}), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to read environment: %v", errs.ErrConfig, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to apply environment: %v", errs.ErrConfig, err)
	}

	applyDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConfig, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
