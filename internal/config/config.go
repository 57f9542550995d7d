package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultSessionSecret = "default-secret-key-change-me"

type Config struct {
	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`
	SQLitePath string `mapstructure:"sqlite_path"`

	SessionStore  string `mapstructure:"session_store"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	SessionSecret string `mapstructure:"session_secret"`

	GinMode    string `mapstructure:"gin_mode"`
	ListenAddr string `mapstructure:"listen_addr"`
	LogDev     bool   `mapstructure:"log_dev"`

	IdentityProviders []string      `mapstructure:"identity_providers"`
	KratosURL         string        `mapstructure:"kratos_url"`
	KratosTimeout     time.Duration `mapstructure:"kratos_timeout"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	JWTIssuer         string        `mapstructure:"jwt_issuer"`
	JWTAudience       string        `mapstructure:"jwt_audience"`

	ProvisioningAttempts int `mapstructure:"provisioning_attempts"`
}

// Load reads config.yaml (if present) and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db_driver", "mysql")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "3306")
	v.SetDefault("db_user", "erpuser")
	v.SetDefault("db_password", "erppassword")
	v.SetDefault("db_name", "erp")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("sqlite_path", "erp.db")
	v.SetDefault("session_store", "redis")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("session_secret", defaultSessionSecret)
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_dev", false)
	v.SetDefault("identity_providers", "session")
	v.SetDefault("kratos_url", "")
	v.SetDefault("kratos_timeout", 5*time.Second)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_issuer", "")
	v.SetDefault("jwt_audience", "")
	v.SetDefault("provisioning_attempts", 5)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Every key has a default above, so AutomaticEnv picks up DB_HOST etc.
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.IdentityProviders = splitList(strings.Join(cfg.IdentityProviders, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements that defaults cannot satisfy.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported db_driver %q", c.DBDriver)
	}

	switch c.SessionStore {
	case "redis", "cookie":
	default:
		return fmt.Errorf("config: unsupported session_store %q", c.SessionStore)
	}

	if len(c.IdentityProviders) == 0 {
		return errors.New("config: at least one identity provider is required")
	}
	for _, p := range c.IdentityProviders {
		switch p {
		case "session":
		case "token":
			if c.JWTSecret == "" {
				return errors.New("config: jwt_secret/JWT_SECRET required by the token identity provider")
			}
		case "kratos":
			if c.KratosURL == "" {
				return errors.New("config: kratos_url/KRATOS_URL required by the kratos identity provider")
			}
		default:
			return fmt.Errorf("config: unknown identity provider %q", p)
		}
	}

	if c.GinMode == "release" && c.SessionSecret == defaultSessionSecret {
		return errors.New("config: session_secret/SESSION_SECRET must be set in release mode")
	}
	if c.ProvisioningAttempts < 1 {
		return errors.New("config: provisioning_attempts must be at least 1")
	}
	return nil
}

// IsProduction reports whether the server runs in gin release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(strings.ToLower(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
