package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Calendar integration specifics
	Google      GoogleConfig
	Encryption  EncryptionConfig
	Cache       CacheConfig
	Aggregation AggregationConfig

	// Request throttling
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

// GoogleConfig is the OAuth client credential bundle for the Google
// Calendar provider.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// EncryptionConfig carries the symmetric key protecting stored tokens.
// The key itself must never be logged; errors report only its length.
type EncryptionConfig struct {
	Key string
}

type CacheConfig struct {
	Size        int
	TTL         time.Duration
	CacheEvents bool
}

type AggregationConfig struct {
	// CalendarTimeout bounds each per-calendar provider call independently.
	CalendarTimeout time.Duration
}

type RateLimitConfig struct {
	PerMin int
	Burst  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("postgres_dsn"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Google OAuth bundle. Flat env aliases take precedence so secrets can
	// be injected without a config file.
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}
	if redirect := viper.GetString("google_redirect_url"); redirect != "" {
		cfg.Google.RedirectURL = redirect
	}

	// Token encryption key
	cfg.Encryption.Key = viper.GetString("encryption.key")
	if key := viper.GetString("token_encryption_key"); key != "" {
		cfg.Encryption.Key = key
	}
	if len(cfg.Encryption.Key) != 32 {
		return nil, fmt.Errorf("token encryption key must be 32 bytes, got %d", len(cfg.Encryption.Key))
	}

	// Provider response cache
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.CacheEvents = viper.GetBool("cache.cache_events")

	// Aggregation
	cfg.Aggregation.CalendarTimeout = viper.GetDuration("aggregation.calendar_timeout")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", "60s")
	viper.SetDefault("cache.cache_events", false)
	viper.SetDefault("aggregation.calendar_timeout", "10s")
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.burst", 30)
}
