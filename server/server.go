package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes wires the handler into a chi router.
func Routes(h *Handler, staticDir string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware(h.Log))

	fs := http.FileServer(http.Dir(staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/", h.ServeIndex)
	r.Post("/submit", h.ServeSubmit)
	r.Post("/navigate", h.ServeNavigate)
	r.Post("/today", h.ServeToday)
	r.Post("/select", h.ServeSelect)

	r.Get("/api/window", h.ServeWindowJSON)
	r.Get("/chart.png", h.ServeChartPNG)
	r.Get("/healthz", ServeHealth)

	return r
}

// Serve runs the HTTP server on addr until ctx is cancelled. ready, when
// non-nil, is called once the listener is bound; a bind failure is
// returned without calling it.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger, ready func()) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server listening", zap.String("addr", ln.Addr().String()))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	if ready != nil {
		ready()
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
