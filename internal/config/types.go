package config

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variable overrides for deploy-time secrets.
type AppConfig struct {
	Port           int              `yaml:"port"`
	Env            string           `yaml:"env"` // "development" | "production"
	DSN            string           `yaml:"dsn"` // MySQL DSN
	RedisURL       string           `yaml:"redis_url"`
	Timezone       string           `yaml:"timezone"`
	CacheDir       string           `yaml:"cache_dir"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Generation     GenerationConfig `yaml:"generation"`
}

// GenerationConfig controls the article generation pipeline.
type GenerationConfig struct {
	APIKey              string `yaml:"api_key"`
	Model               string `yaml:"model"`
	ArticlesPerCategory int    `yaml:"articles_per_category"` // 1 (lazy mode) or 5 (batch mode)
	MaxSearchUses       int    `yaml:"max_search_uses"`
	MaxOutputTokens     int    `yaml:"max_output_tokens"`
	CooldownSeconds     int    `yaml:"cooldown_seconds"` // delay between categories
	RequestTimeoutSecs  int    `yaml:"request_timeout_seconds"`
	DailyJob            bool   `yaml:"daily_job"` // also run the batch from the server's scheduler
}
