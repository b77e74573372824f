// Package config loads the service configuration with koanf and validates it
// with validator.
package config

import (
	"time"
)

const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	DefaultRetrievalDelay = 600 * time.Millisecond

	// DefaultAuthHeader carries the advisor's bearer token.
	DefaultAuthHeader = "Authorization"
)

// Config is the service configuration. See Load for where values come from.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	CORS      CORSConfig      `koanf:"cors"`
	Dora      DoraConfig      `koanf:"dora"`
	Storage   StorageConfig   `koanf:"storage"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig tunes the http.Server. MaxRequestSize caps request bodies.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig selects the slog level and handler. "pretty" is for terminals.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig copies logs to a lumberjack rotated file. Sizes are in
// megabytes, ages in days.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig points the OTLP exporters at a collector. When disabled
// the noop providers are installed.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig configures the bearer token check. The check only logs; it never
// rejects a request. An empty token list accepts any well-formed bearer token.
type AuthConfig struct {
	Header string   `koanf:"header" validate:"required"`
	Tokens []string `koanf:"tokens" validate:"dive,required"`
}

// CORSConfig lists the dashboard origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"   validate:"dive,required"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age"           validate:"min=0s"`
}

// DoraConfig tunes the assistant. RetrievalDelay simulates knowledge lookup
// latency and is 0 in tests.
type DoraConfig struct {
	RetrievalDelay time.Duration `koanf:"retrieval_delay" validate:"min=0s,max=10s"`
}

// StorageConfig controls the in-memory store. Seed loads the demo book of
// clients and model portfolios at startup.
type StorageConfig struct {
	Seed bool `koanf:"seed"`
}
