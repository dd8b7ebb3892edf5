package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/cinnamonledger/cinnamon/internal/common"
)

// Settings is the application configuration resolved from the config file,
// environment, and flags.
type Settings struct {
	Database DatabaseSettings
	Redis    RedisSettings
	Fallback FallbackSettings
	Engine   EngineSettings
}

// DatabaseSettings configures the SQLite store.
type DatabaseSettings struct {
	Path string
}

// RedisSettings configures the shared cache and budget backend. When Addr is
// empty the application runs on in-memory implementations instead.
type RedisSettings struct {
	Addr     string
	Password string
	DB       int
}

// FallbackSettings configures the external classifier.
type FallbackSettings struct {
	Provider    string
	APIKey      string
	Model       string
	RateLimit   int
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// EngineSettings configures classification orchestration.
type EngineSettings struct {
	HighConfidenceThreshold float64
	CacheTTL                time.Duration
	DailyBudgetCap          int
	FallbackTimeout         time.Duration
	BatchWorkers            int
}

// SetDefaults registers defaults with viper. Call once before Load.
func SetDefaults() {
	viper.SetDefault("database.path", "$HOME/.local/share/cinnamon/cinnamon.db")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("fallback.provider", "anthropic")
	viper.SetDefault("fallback.model", "claude-3-haiku-20240307")
	viper.SetDefault("fallback.rate_limit", 30)
	viper.SetDefault("fallback.temperature", 0.0)
	viper.SetDefault("fallback.max_tokens", 256)
	viper.SetDefault("fallback.timeout", "30s")
	viper.SetDefault("engine.high_confidence_threshold", 0.8)
	viper.SetDefault("engine.cache_ttl", "168h")
	viper.SetDefault("engine.daily_budget_cap", 10)
	viper.SetDefault("engine.fallback_timeout", "5s")
	viper.SetDefault("engine.batch_workers", 8)
}

// Load resolves settings from viper's merged sources.
func Load() (Settings, error) {
	s := Settings{
		Database: DatabaseSettings{
			Path: ExpandPath(viper.GetString("database.path")),
		},
		Redis: RedisSettings{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Fallback: FallbackSettings{
			Provider:    viper.GetString("fallback.provider"),
			APIKey:      viper.GetString("fallback.api_key"),
			Model:       viper.GetString("fallback.model"),
			RateLimit:   viper.GetInt("fallback.rate_limit"),
			Temperature: viper.GetFloat64("fallback.temperature"),
			MaxTokens:   viper.GetInt("fallback.max_tokens"),
			Timeout:     viper.GetDuration("fallback.timeout"),
		},
		Engine: EngineSettings{
			HighConfidenceThreshold: viper.GetFloat64("engine.high_confidence_threshold"),
			CacheTTL:                viper.GetDuration("engine.cache_ttl"),
			DailyBudgetCap:          viper.GetInt("engine.daily_budget_cap"),
			FallbackTimeout:         viper.GetDuration("engine.fallback_timeout"),
			BatchWorkers:            viper.GetInt("engine.batch_workers"),
		},
	}

	if s.Database.Path == "" {
		return Settings{}, common.ErrMissingConfig
	}
	if s.Engine.HighConfidenceThreshold < 0 || s.Engine.HighConfidenceThreshold > 1 {
		return Settings{}, common.ErrInvalidConfig
	}

	return s, nil
}
