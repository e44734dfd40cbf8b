package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	DefaultUserID  string   `mapstructure:"DEFAULT_USER_ID"`
	DefaultRole    string   `mapstructure:"DEFAULT_ROLE"`
	TokenSecret    string   `mapstructure:"TOKEN_SECRET"`
	TokenTTL       int      `mapstructure:"TOKEN_TTL"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8090")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("DEFAULT_USER_ID", "patient-001")
	v.SetDefault("DEFAULT_ROLE", "patient")
	v.SetDefault("TOKEN_SECRET", "dev-only-secret")
	v.SetDefault("TOKEN_TTL", 720)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("DEFAULT_USER_ID")
	v.BindEnv("DEFAULT_ROLE")
	v.BindEnv("TOKEN_SECRET")
	v.BindEnv("TOKEN_TTL")
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

// Validate checks that the configuration is safe to run. The token secret
// ships with a development default; anything other than development mode
// must override it.
func (c *Config) Validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %d", c.TokenTTL)
	}
	if !c.IsDev() && c.TokenSecret == "dev-only-secret" {
		return fmt.Errorf("TOKEN_SECRET must be overridden when ENV is %q", c.Env)
	}
	switch c.DefaultRole {
	case "patient", "doctor", "nurse", "admin":
	default:
		return fmt.Errorf("DEFAULT_ROLE must be patient, doctor, nurse, or admin, got %q", c.DefaultRole)
	}
	return nil
}
