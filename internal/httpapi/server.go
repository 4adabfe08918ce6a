// Package httpapi exposes the solver over HTTP: a health check and a
// synchronous solve endpoint that accepts puzzle text and returns the
// solved grid. Grounded on ThoDHa-sudoku's cmd/server/main.go (gin engine
// construction, graceful shutdown) and internal/transport/http/routes.go
// (route registration, gin.H JSON responses).
package httpapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sudokusat/pkg/constants"
)

// Config holds the settings a running server needs: which SAT solver
// binary to shell out to, and where to stage CNF/model scratch files.
type Config struct {
	Addr       string
	SolverCmd  string
	SolverArgs []string
	WorkDir    string
	Log        *logrus.Entry
}

// Server wraps a gin engine and the http.Server serving it.
type Server struct {
	cfg    Config
	engine *gin.Engine
	http   *http.Server
}

// NewServer builds a Server with routes registered, applying the same
// defaults the original's main.go falls back to when unset.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":" + constants.DefaultAPIPort
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}

	r := gin.Default()
	s := &Server{cfg: cfg, engine: r}
	s.registerRoutes()
	s.http = &http.Server{Addr: cfg.Addr, Handler: r}
	return s
}

// Run serves until the context is canceled or a SIGINT/SIGTERM arrives,
// then shuts the HTTP server down with a bounded grace period. Mirrors
// cmd/server/main.go's goroutine-plus-signal.Notify shutdown pattern.
func (s *Server) Run(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.cfg.Log.WithField("addr", s.cfg.Addr).Info("starting HTTP server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
	case <-sigCh:
		s.cfg.Log.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down HTTP server")
	}
	return <-errCh
}
