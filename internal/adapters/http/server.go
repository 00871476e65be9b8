package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/realtime-config/internal/platform/config"
)

// writeSlack covers the cache writes and JSON encoding that follow a
// synchronous refresh.
const writeSlack = time.Second

// Server serves the sidecar API. A lookup that misses the cache refreshes
// from the gateway before answering, so the write timeout never drops
// below the gateway's request budget.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu sync.Mutex
	ln net.Listener
}

// NewServer creates a Server for handler. gateway sizes the write and
// shutdown timeouts; cfg.WriteTimeout only raises them.
func NewServer(cfg config.ServerConfig, gateway config.ClientConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      max(cfg.WriteTimeout, gateway.RequestBudget()+writeSlack),
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// Start listens on the configured address and serves until Shutdown.
// It returns nil on graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.logger.Info("config sidecar listening",
		slog.String("addr", ln.Addr().String()),
		slog.Duration("write_timeout", s.srv.WriteTimeout),
	)

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving config API: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight lookups. A ctx
// without a deadline waits at most one write timeout, long enough for a
// lookup caught mid-refresh.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.srv.WriteTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down config sidecar")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once Start is listening, and the
// configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// WriteTimeout returns the effective per-response write timeout.
func (s *Server) WriteTimeout() time.Duration {
	return s.srv.WriteTimeout
}
