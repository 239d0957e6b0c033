package config

// DatabaseConfig holds the sqlite history database settings.
type DatabaseConfig struct {
	// Path to the sqlite file. ":memory:" keeps history for the process
	// lifetime only.
	Path string `mapstructure:"path" validate:"required"`
}
