// Package config provides configuration loading and validation for the
// application. Configuration is loaded from YAML files with environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Log       LogConfig       `koanf:"log"`
	Admin     AdminConfig     `koanf:"admin"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AppConfig holds settings for the terminal UI.
type AppConfig struct {
	Title       string `koanf:"title"`
	Placeholder string `koanf:"placeholder"`
	AltScreen   bool   `koanf:"alt_screen"`
}

// LogConfig holds structured logging settings. An empty File logs to stderr
// when stderr is redirected and discards logs when it is the terminal.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// AdminConfig holds settings for the read-only diagnostics HTTP server.
type AdminConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
