package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.App.validate(),
		c.Log.validate(),
		c.Admin.validate(),
		c.Telemetry.validate(),
	)
}

func (a *AppConfig) validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("app.title must not be empty")
	}
	return nil
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case logging.FormatJSON, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *AdminConfig) validate() error {
	if !s.Enabled {
		return nil
	}

	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("admin.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("admin.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("admin.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case telemetry.ExporterStdout, telemetry.ExporterOTLP:
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == telemetry.ExporterOTLP && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if strings.TrimSpace(t.ServiceName) == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
