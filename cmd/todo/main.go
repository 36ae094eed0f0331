// Package main is the entry point for the to-do terminal app. It wires all
// dependencies using samber/do v2, runs the terminal UI in the foreground,
// optionally serves the read-only diagnostics HTTP API, and shuts everything
// down when the UI exits or on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-stream/internal/adapters/http"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/memory"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/tui"
	"github.com/jsamuelsen11/todo-stream/internal/platform/config"
	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

const (
	defaultProfile        = "local"
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file when configured.
	logOut, err := logging.Open(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("opening log output: %w", err)
	}
	defer func() { _ = logOut.Close() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var providers *telemetry.Providers
	if cfg.Telemetry.Enabled {
		providers, err = telemetry.Setup(ctx, telemetry.Settings{
			ServiceName: cfg.Telemetry.ServiceName,
			Exporter:    cfg.Telemetry.Exporter,
			Endpoint:    cfg.Telemetry.Endpoint,
			Writer:      logOut,
		})
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics())
	registerDependencies(injector, cfg, logger)

	svc, err := do.Invoke[ports.ToDoService](injector)
	if err != nil {
		return fmt.Errorf("resolving todo service: %w", err)
	}

	repo := do.MustInvoke[*memory.Repository](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(repo)
	if providers != nil {
		registry.Register(providers)
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	var diag *diagnostics
	if cfg.Admin.Enabled {
		server, err := do.Invoke[*adapthttp.Server](injector)
		if err != nil {
			return fmt.Errorf("resolving server: %w", err)
		}
		if diag, err = serveDiagnostics(server, cancelRun); err != nil {
			return err
		}
	}

	logger.Info("starting todo", slog.String("profile", profile))

	uiErr := tui.Run(runCtx, svc,
		tui.WithTitle(cfg.App.Title),
		tui.WithPlaceholder(cfg.App.Placeholder),
		tui.WithAltScreen(cfg.App.AltScreen),
		tui.WithLogger(logger),
	)
	if uiErr != nil {
		logger.Error("terminal ui error", slog.Any("error", uiErr))
	}

	errs := []error{uiErr, diag.stop(logger)}
	repo.Close()

	logger.Info("shutdown complete")
	return errors.Join(errs...)
}

// diagnostics tracks the background HTTP server.
type diagnostics struct {
	server *adapthttp.Server
	done   chan error
}

// serveDiagnostics binds the server before the UI takes over the terminal,
// so a port clash is reported readably, then serves in the background. A
// serve failure cancels the UI through onFail.
func serveDiagnostics(server *adapthttp.Server, onFail context.CancelFunc) (*diagnostics, error) {
	if err := server.Listen(); err != nil {
		return nil, err
	}
	d := &diagnostics{server: server, done: make(chan error, 1)}
	go func() {
		err := server.Start()
		if err != nil {
			onFail()
		}
		d.done <- err
	}()
	return d, nil
}

// stop drains in-flight requests and returns the serve error, if any.
// Nil-safe.
func (d *diagnostics) stop(logger *slog.Logger) error {
	if d == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := d.server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-d.done; err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func flushTelemetry(providers *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
