// Command taskboard serves the board state API. It loads the profile named
// by APP_PROFILE, wires the backend clients, the store and the HTTP surface
// in a samber/do container, then runs until SIGINT or SIGTERM.
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

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

const (
	shutdownGrace    = 15 * time.Second
	telemetryFlush   = 5 * time.Second
	dispatchDeadline = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "taskboard:", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}

	svc, err := do.Invoke[*service](newContainer(cfg, logger, otel.metrics))
	if err != nil {
		return fmt.Errorf("wiring service: %w", err)
	}

	logger.Info("taskboard starting",
		slog.String("profile", profile),
		slog.String("addr", svc.server.Addr()),
	)
	return svc.serve(ctx, adapthttp.ShutdownHook{Name: "telemetry", Run: func(ctx context.Context) error {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlush)
		defer cancel()
		return otel.shutdown(flushCtx)
	}})
}

// service is the resolved runtime: the HTTP server in front of the store,
// plus what readiness checks.
type service struct {
	server        *adapthttp.Server
	board         *store.Store[app.State]
	backend       *acl.Backend
	registry      ports.HealthRegistry
	logger        *slog.Logger
	settleTimeout time.Duration
}

// serve runs the dispatch loop and the server until ctx ends, then drains
// requests, settles the store and runs extra hooks in that order. A server
// or loop failure before ctx ends is returned as is.
func (s *service) serve(ctx context.Context, extra ...adapthttp.ShutdownHook) error {
	s.registry.Register(s.board)
	s.registry.Register(s.backend)

	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()
	loopDone := make(chan error, 1)
	go func() { loopDone <- s.board.Run(loopCtx) }()

	s.server.OnShutdown(adapthttp.ShutdownHook{Name: "store", Run: func(ctx context.Context) error {
		return settle(ctx, s.board, s.settleTimeout, stopLoop, loopDone)
	}})
	s.server.OnShutdown(extra...)

	served := make(chan error, 1)
	go func() { served <- s.server.Start() }()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-served:
		return fmt.Errorf("serving http: %w", err)
	case err := <-loopDone:
		return fmt.Errorf("store loop exited: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
	defer cancel()
	if err := s.server.Shutdown(drainCtx); err != nil {
		s.logger.Error("shutdown incomplete", slog.Any("error", err))
	}
	<-served

	s.logger.Info("shutdown complete")
	return nil
}

// settle gives queued actions and running effects up to timeout to finish,
// then stops the loop and waits for Run to return.
func settle(ctx context.Context, board *store.Store[app.State], timeout time.Duration, stop context.CancelFunc, done <-chan error) error {
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var errs []error
	if err := board.Settle(waitCtx); err != nil {
		errs = append(errs, fmt.Errorf("settling store with %d pending: %w", board.Pending(), err))
	}

	stop()
	select {
	case err := <-done:
		errs = append(errs, err)
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}
