// Package config manages the application configuration.
//
// It starts from a hardcoded preset selected by the runtime environment
// (development or test), overlays environment variables (optionally read
// from a `.env` file), loads the result into structured Go types and
// validates it so the app fails fast on bad or missing values.
//
// Responsibilities:
//   - Pick the preset for TODOAPI_PRIMARY.ENV.
//   - Map TODOAPI_ env vars into the Config struct.
//   - Validate required values.
//   - Provide defaults for optional blocks (e.g. observability).
//
// The resulting *Config is built once at startup and passed by reference
// into the server container. Nothing here is read from global state after
// LoadConfig returns.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the TODOAPI_ prefix. The prefix is removed and the
	rest is lowercased; nesting uses the "." delimiter, so the variable name
	must carry the dot:

		TODOAPI_SERVER.PORT=3000        -> server.port   -> Config.Server.Port
		TODOAPI_DATABASE.URI=mongodb:// -> database.uri  -> Config.Database.URI
*/

const (
	// EnvPrefix is the prefix every configuration variable carries.
	EnvPrefix = "TODOAPI_"

	// EnvSelector names the variable choosing the preset.
	EnvSelector = EnvPrefix + "PRIMARY.ENV"

	// DefaultEnv is used when EnvSelector is unset.
	DefaultEnv = EnvDevelopment

	// ServiceName tags logs, traces and health reports.
	ServiceName = "todo-api"
)

// Storage drivers accepted by DatabaseConfig.Driver.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are injected
// when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig describes the document store connection.
//
// Driver selects the backend: "mongo" (default, URI is a mongodb:// string)
// or "postgres" (URI is a postgres:// DSN, documents live in tables created
// by the embedded migrations). Name is the Mongo database name; when empty
// it is taken from the URI path.
//
// ConnMaxLifetime and ConnMaxIdleTime are seconds.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=mongo postgres"`
	URI             string `koanf:"uri" validate:"required"`
	Name            string `koanf:"name"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
// Redis is optional; an empty address disables it.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores the secret used to sign fixture auth tokens.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IsMongo reports whether the document store is MongoDB.
func (c DatabaseConfig) IsMongo() bool {
	return c.Driver == DriverMongo
}

// LoadConfig builds the configuration for the environment named by
// TODOAPI_PRIMARY.ENV (default "development").
//
// Behavior summary:
//   - Loads the matching preset, if one exists
//   - Overlays env vars with prefix TODOAPI_
//   - Unmarshals into Config and validates it
//   - Sets default observability if missing, then forces service name and environment
func LoadConfig() (*Config, error) {
	environment := os.Getenv(EnvSelector)
	if environment == "" {
		environment = DefaultEnv
	}

	k := koanf.New(".")

	// Environments without a preset must be configured entirely through env vars.
	if preset, ok := Preset(environment); ok {
		if err := k.Load(confmap.Provider(preset, "."), nil); err != nil {
			return nil, fmt.Errorf("could not load %s preset: %w", environment, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// The selector may be unset, in which case the preset default applies.
	if k.String("primary.env") == "" {
		if err := k.Set("primary.env", environment); err != nil {
			return nil, fmt.Errorf("could not set environment: %w", err)
		}
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
