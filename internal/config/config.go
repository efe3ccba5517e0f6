package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 2333
	defaultEnv      = "development"
	defaultTimezone = "Australia/Sydney"
	defaultCacheDir = ".cache"

	defaultModel               = "claude-sonnet-4-20250514"
	defaultArticlesPerCategory = 5
	defaultMaxSearchUses       = 10
	defaultMaxOutputTokens     = 16000
	defaultCooldownSeconds     = 30
	defaultRequestTimeoutSecs  = 300
)

// Load reads the YAML config, applies defaults and environment overrides.
// A missing file at the default path is not an error: the generate CLI is
// usually configured through the environment alone.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if n := cfg.Generation.ArticlesPerCategory; n != 1 && n != 5 {
		return nil, fmt.Errorf("invalid generation.articles_per_category %d, expected 1 or 5", n)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		Timezone: defaultTimezone,
		CacheDir: defaultCacheDir,
		Generation: GenerationConfig{
			Model:               defaultModel,
			ArticlesPerCategory: defaultArticlesPerCategory,
			MaxSearchUses:       defaultMaxSearchUses,
			MaxOutputTokens:     defaultMaxOutputTokens,
			CooldownSeconds:     defaultCooldownSeconds,
			RequestTimeoutSecs:  defaultRequestTimeoutSecs,
		},
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("SIGNAL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("SIGNAL_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Generation.APIKey = v
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = defaultTimezone
	}
	if strings.TrimSpace(cfg.CacheDir) == "" {
		cfg.CacheDir = defaultCacheDir
	}
	if strings.TrimSpace(cfg.Generation.Model) == "" {
		cfg.Generation.Model = defaultModel
	}
	if cfg.Generation.ArticlesPerCategory == 0 {
		cfg.Generation.ArticlesPerCategory = defaultArticlesPerCategory
	}
	if cfg.Generation.MaxSearchUses <= 0 {
		cfg.Generation.MaxSearchUses = defaultMaxSearchUses
	}
	if cfg.Generation.MaxOutputTokens <= 0 {
		cfg.Generation.MaxOutputTokens = defaultMaxOutputTokens
	}
	if cfg.Generation.CooldownSeconds < 0 {
		cfg.Generation.CooldownSeconds = defaultCooldownSeconds
	}
	if cfg.Generation.RequestTimeoutSecs <= 0 {
		cfg.Generation.RequestTimeoutSecs = defaultRequestTimeoutSecs
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Cooldown returns the inter-category generation delay.
func (c GenerationConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

// RequestTimeout bounds a single generation call.
func (c GenerationConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}
