package main

import (
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/health"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// newContainer registers every provider lazily; resolving *service builds
// the whole graph. metrics may be nil.
func newContainer(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, metrics)

	do.Provide(i, provideBackend)
	do.Provide(i, provideStore)
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) { return health.New(), nil })
	do.Provide(i, provideRouter)
	do.Provide(i, provideService)
	return i
}

func provideBackend(i do.Injector) (*acl.Backend, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	client := httpclient.New(&cfg.Client, acl.ServiceName, do.MustInvoke[*telemetry.Metrics](i), logger)
	return acl.NewBackend(client, logger, acl.WithFanoutWorkers(cfg.Store.FanoutWorkers)), nil
}

func provideStore(i do.Injector) (*store.Store[app.State], error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	b := do.MustInvoke[*acl.Backend](i)

	deps := app.Deps{
		Auth:             b.Auth,
		Projects:         b.Projects,
		TaskLists:        b.TaskLists,
		Tasks:            b.Tasks,
		Users:            b.Users,
		Logger:           logger,
		DefaultTaskLists: cfg.Store.DefaultTaskLists,
		FanoutWorkers:    cfg.Store.FanoutWorkers,
		HistorySize:      cfg.Store.HistorySize,
	}
	return app.NewStore(deps,
		store.WithQueueSize(cfg.Store.QueueSize),
		store.WithEffectTimeout(cfg.Store.EffectTimeout),
		store.WithLogger(logger),
		store.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
	), nil
}

func provideRouter(i do.Injector) (http.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	board := do.MustInvoke[*store.Store[app.State]](i)

	return adapthttp.NewRouter(
		handlers.NewActionHandler(board, app.NewRegistry(), dispatchDeadline),
		handlers.NewViewHandler(board, app.NewSelectors()),
		handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.WriteTimeout),
	), nil
}

func provideService(i do.Injector) (*service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	return &service{
		server:        adapthttp.NewServer(cfg.Server, do.MustInvoke[http.Handler](i), logger),
		board:         do.MustInvoke[*store.Store[app.State]](i),
		backend:       do.MustInvoke[*acl.Backend](i),
		registry:      do.MustInvoke[ports.HealthRegistry](i),
		logger:        logger,
		settleTimeout: cfg.Store.ShutdownTimeout,
	}, nil
}
