package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// ShutdownHook releases a resource once the server has drained. Hooks run
// in registration order under the shutdown deadline.
type ShutdownHook struct {
	Name string
	Run  func(ctx context.Context) error
}

// Server is the taskboard API listener.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	hooks  []ShutdownHook
}

func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
	}
}

// OnShutdown adds hooks run after in-flight requests finish, such as
// settling the store and then flushing telemetry.
func (s *Server) OnShutdown(hooks ...ShutdownHook) {
	s.hooks = append(s.hooks, hooks...)
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown, which makes it return nil.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("serving HTTP", slog.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests, then
// runs every hook even if an earlier step failed. The errors are joined. A
// ctx without deadline gets ten seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server", slog.Int("hooks", len(s.hooks)))
	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("draining requests: %w", err))
	}
	for _, h := range s.hooks {
		err := h.Run(ctx)
		if err == nil {
			continue
		}
		s.logger.Error("shutdown hook failed", slog.String("hook", h.Name), slog.Any("error", err))
		errs = append(errs, fmt.Errorf("%s: %w", h.Name, err))
	}
	return errors.Join(errs...)
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
