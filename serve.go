package blogbuild

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Server previews a built site over HTTP and can rebuild it on change.
type Server struct {
	Echo *echo.Echo

	builder *Builder
	addr    string
	watch   bool
	log     *slog.Logger
}

// NewServer serves b's output directory on addr. When watch is true, source
// and template changes trigger a full rebuild.
func NewServer(b *Builder, addr string, watch bool) *Server {
	if addr == "" {
		addr = b.Config.Addr
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:    e,
		builder: b,
		addr:    addr,
		watch:   watch,
		log:     b.log,
	}
	s.setupMiddleware()
	e.Static("/", b.Config.OutputDir)
	return s
}

// Run builds the site, starts the server and blocks until ctx is done or the
// server fails. The initial build must succeed.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.builder.Build(); err != nil {
		return err
	}

	if s.watch {
		w, err := NewWatcher(s.builder)
		if err != nil {
			return fmt.Errorf("blogbuild: start watcher: %w", err)
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				s.log.Error("Watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Serving site", "addr", s.addr, "dir", s.builder.Config.OutputDir, "watch", s.watch)
		errCh <- s.Echo.Start(s.addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Echo.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
