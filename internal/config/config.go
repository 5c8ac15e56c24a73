package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/NicolasChusseau/MedicaZelda-API/internal/upstream/instamed"
)

type Config struct {
	Port                   string   `mapstructure:"PORT"`
	Env                    string   `mapstructure:"ENV"`
	ESanteAPIURL           string   `mapstructure:"ESANTE_API_URL"`
	ESanteAPIKey           string   `mapstructure:"ESANTE_API_KEY"`
	InstamedAPIURL         string   `mapstructure:"INSTAMED_API_URL"`
	CORSOrigins            []string `mapstructure:"CORS_ORIGINS"`
	UpstreamTimeoutSeconds int      `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	RequestTimeoutSeconds  int      `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	DefaultPageSize        int      `mapstructure:"DEFAULT_PAGE_SIZE"`
	RateLimitRPS           float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst         int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("ESANTE_API_URL", "")
	v.SetDefault("INSTAMED_API_URL", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("DEFAULT_PAGE_SIZE", 30)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("ESANTE_API_URL")
	v.BindEnv("ESANTE_API_KEY")
	v.BindEnv("INSTAMED_API_URL")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("UPSTREAM_TIMEOUT_SECONDS")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("DEFAULT_PAGE_SIZE")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UpstreamTimeout is the per-call deadline for an upstream HTTP request.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// RequestTimeout is the whole-request deadline, covering every upstream
// call a lookup fans out to.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is safe to run. The eSanté
// gateway rejects unauthenticated requests, so the API key is required.
// The default page size must stay within the directory's page ceiling.
func (c *Config) Validate() error {
	if c.ESanteAPIKey == "" {
		return fmt.Errorf("ESANTE_API_KEY is required")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize)
	}
	if c.DefaultPageSize > instamed.PageCap {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must not exceed the upstream page cap of %d, got %d",
			instamed.PageCap, c.DefaultPageSize)
	}
	if c.UpstreamTimeoutSeconds <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive, got %d", c.UpstreamTimeoutSeconds)
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got %d", c.RequestTimeoutSeconds)
	}
	return nil
}
