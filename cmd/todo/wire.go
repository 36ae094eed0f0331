package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-stream/internal/adapters/http"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/memory"
	"github.com/jsamuelsen11/todo-stream/internal/app"
	"github.com/jsamuelsen11/todo-stream/internal/platform/config"
	"github.com/jsamuelsen11/todo-stream/internal/platform/health"
	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// registerDependencies declares the object graph. Providers are lazy, so
// the diagnostics server is only built when something invokes it.
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*memory.Repository, error) {
		return memory.New(
			memory.WithLogger(logger),
			memory.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ToDoRepository, error) {
		return do.MustInvoke[*memory.Repository](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ToDoService, error) {
		return app.NewToDoService(do.MustInvoke[ports.ToDoRepository](i), logger), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewTodoHandler(do.MustInvoke[ports.ToDoService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Stack(logger, do.MustInvoke[*telemetry.Metrics](i))...,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Admin, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
