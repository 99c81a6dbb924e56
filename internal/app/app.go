// Package app implements the application layer for runviz.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/adapters/httpapi"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/engine/runtime"
	"go.trai.ch/zerr"
)

// shutdownGrace bounds how long in-flight requests may run after the
// serve context is cancelled.
const shutdownGrace = 10 * time.Second

// App represents the main application logic.
type App struct {
	rt     *runtime.Runtime
	server *httpapi.Server
	cfg    *config.Config
	log    ports.Logger
}

// New creates a new App instance.
func New(rt *runtime.Runtime, server *httpapi.Server, cfg *config.Config, log ports.Logger) *App {
	return &App{
		rt:     rt,
		server: server,
		cfg:    cfg,
		log:    log,
	}
}

// Serve binds the given template, if any, and runs the HTTP server
// until ctx is cancelled.
func (a *App) Serve(ctx context.Context, template string) error {
	if template != "" {
		switched, err := a.rt.EnsureTemplate(ctx, template)
		if err != nil {
			return zerr.Wrap(err, "failed to bind initial template")
		}
		if !switched {
			return zerr.With(zerr.New("initial template switch was refused"), "template", template)
		}
	}

	srv := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           a.server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info(fmt.Sprintf("listening on %s", a.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down HTTP server")
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "HTTP server failed")
	}
}
