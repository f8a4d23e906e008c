package http

import (
	"context"
	"errors"
	"fmt"
	"itemservice/internal/platform/logger"
	"net"
	"net/http"
	"sync"
	"time"

	"itemservice/internal/config"
)

const defaultShutdownTimeout = 30 * time.Second

type Server struct {
	server          *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	shutdownTimeout := seconds(cfg.Server.ShutdownTimeout)
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadTimeout:       seconds(cfg.Server.ReadTimeout),
			ReadHeaderTimeout: seconds(cfg.Server.ReadHeaderTimeout),
			WriteTimeout:      seconds(cfg.Server.WriteTimeout),
			IdleTimeout:       seconds(cfg.Server.IdleTimeout),
		},
		logger:          log,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start binds the listener synchronously and serves in the background, so
// a port clash fails the fx start hook instead of surfacing later.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("Failed to listen", logger.String("addr", s.server.Addr), logger.Error(err))
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("Starting HTTP server", logger.String("addr", ln.Addr().String()))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", logger.Error(err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("Server startup cancelled")
		return s.server.Shutdown(context.Background())
	default:
		return nil
	}
}

// Addr is the bound address after Start, the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", logger.String("timeout", s.shutdownTimeout.String()))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
