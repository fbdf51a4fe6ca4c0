package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Media    MediaConfig    `mapstructure:"media"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// Storage backends understood by DatabaseConfig.Backend.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Backend selects the card store: "postgres" for durable storage or
	// "memory" for a throwaway process-local store.
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres memory"`
	URL     string `mapstructure:"url"     validate:"required_if=Backend postgres"`

	MaxOpenConns           int `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// MediaConfig controls where uploaded card images live and how they are served.
type MediaConfig struct {
	Dir            string `mapstructure:"dir"              validate:"required"`
	URLPrefix      string `mapstructure:"url_prefix"       validate:"required,startswith=/"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" validate:"gt=0"`
}
