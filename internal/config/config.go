// Package config loads the application configuration from the environment.
//
// Values come from process env vars (and a `.env` file when present),
// are mapped into typed structs with koanf, and validated with
// go-playground/validator so the process fails fast on bad config.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the COMMENTS_ prefix. The prefix is removed, the
	rest is lower-cased, and "__" separates nesting levels:

		COMMENTS_SERVER__PORT            -> server.port
		COMMENTS_DATABASE__SSL_MODE      -> database.ssl_mode
		COMMENTS_AUTH__CURRENT_USER_NAME -> auth.current_user_name
*/

// EnvPrefix is the prefix shared by every configuration env var.
const EnvPrefix = "COMMENTS_"

// Storage drivers accepted by storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config is the root configuration object.
//
// Database is validated only when the postgres storage driver is selected.
// Observability starts from DefaultObservabilityConfig; env vars override
// individual fields.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"-"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development", "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server.
//
// Timeouts are in seconds. ClientURL is the single origin allowed to call
// the API with credentials (cookies). RateLimit is requests per second per
// client IP; 0 disables rate limiting.
type ServerConfig struct {
	Port         string  `koanf:"port" validate:"required"`
	ReadTimeout  int     `koanf:"read_timeout" validate:"required"`
	WriteTimeout int     `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int     `koanf:"idle_timeout" validate:"required"`
	ClientURL    string  `koanf:"client_url" validate:"required,url"`
	RateLimit    float64 `koanf:"rate_limit" validate:"gte=0"`
}

// StorageConfig selects the data store backing the repositories.
type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres memory"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains the optional Redis address ("host:port").
// When set, rate-limit counters are shared through Redis.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig configures the single-tenant identity.
//
// CurrentUserName is the name of the user every request is attributed to.
// It is looked up once at startup.
type AuthConfig struct {
	CurrentUserName string `koanf:"current_user_name" validate:"required"`
}

// defaults are applied before env vars, so any of them can be overridden.
var defaults = map[string]any{
	"primary.env":                 "local",
	"server.port":                 "3001",
	"server.read_timeout":         30,
	"server.write_timeout":        30,
	"server.idle_timeout":         60,
	"server.client_url":           "http://localhost:3000",
	"server.rate_limit":           0,
	"storage.driver":              StorageDriverPostgres,
	"database.port":               5432,
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     25,
	"database.max_idle_conns":     25,
	"database.conn_max_lifetime":  300,
	"database.conn_max_idle_time": 300,
	"auth.current_user_name":      "John",
}

// envKey maps COMMENTS_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig reads defaults and env vars, unmarshals them into Config and
// validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	// Database is skipped by the struct walk (validate:"-") and checked on
	// its own only when postgres is the selected driver.
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if mainConfig.Storage.Driver == StorageDriverPostgres {
		if err := validate.Struct(mainConfig.Database); err != nil {
			return nil, fmt.Errorf("database config validation failed: %w", err)
		}
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// MustLoadConfig is LoadConfig for main: it prints the error and exits.
func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
