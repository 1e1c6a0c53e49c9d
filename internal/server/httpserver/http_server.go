// Package httpserver wires the blogd HTTP API together.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hhpeter/blogd/internal/config"
	"github.com/hhpeter/blogd/internal/content"
	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/feed"
	"github.com/hhpeter/blogd/internal/metrics"
	"github.com/hhpeter/blogd/internal/server/handlers"
	smw "github.com/hhpeter/blogd/internal/server/middleware"
	"github.com/hhpeter/blogd/internal/views"
)

const shutdownTimeout = 10 * time.Second

// Options carries the collaborators the server exposes over HTTP.
type Options struct {
	Repository *content.Repository
	Feed       *feed.Renderer
	Views      views.Store
	Recorder   metrics.Recorder
	Registry   *prom.Registry // nil disables the /metrics endpoint
	Logger     *slog.Logger
}

// Server manages the blogd HTTP endpoints.
type Server struct {
	cfg          *config.Config
	opts         Options
	errorAdapter *berrors.HTTPErrorAdapter
	httpServer   *http.Server

	postHandlers       *handlers.PostHandlers
	feedHandlers       *handlers.FeedHandlers
	viewHandlers       *handlers.ViewHandlers
	monitoringHandlers *handlers.MonitoringHandlers

	// middleware chain
	mchain func(http.Handler) http.Handler
}

// New constructs a new HTTP server wiring instance.
func New(cfg *config.Config, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}

	s := &Server{
		cfg:          cfg,
		opts:         opts,
		errorAdapter: berrors.NewHTTPErrorAdapter(opts.Logger),
	}

	s.postHandlers = handlers.NewPostHandlers(opts.Repository, cfg, s.errorAdapter)
	s.feedHandlers = handlers.NewFeedHandlers(opts.Feed, cfg, s.errorAdapter)
	s.viewHandlers = handlers.NewViewHandlers(opts.Views, s.errorAdapter, opts.Recorder)
	s.monitoringHandlers = handlers.NewMonitoringHandlers()

	s.mchain = smw.Chain(opts.Logger, s.errorAdapter, opts.Recorder)

	return s
}

// Handler returns the fully routed and wrapped handler (exported for tests).
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/posts", s.postHandlers.List)
	mux.HandleFunc("GET /api/posts/{slug}", s.postHandlers.Get)
	mux.HandleFunc("GET /api/posts/{slug}/related", s.postHandlers.Related)
	mux.HandleFunc("GET /api/posts/{slug}/views", s.viewHandlers.Get)
	mux.HandleFunc("POST /api/posts/{slug}/views", s.viewHandlers.Increment)
	mux.HandleFunc("GET /api/feed", s.feedHandlers.Get)
	mux.HandleFunc("GET /healthz", s.monitoringHandlers.Health)
	if s.opts.Registry != nil {
		mux.Handle("GET /metrics", metrics.HTTPHandler(s.opts.Registry))
	}

	return s.mchain(mux)
}

// Start binds the listener, serves until ctx is canceled, then shuts down
// gracefully. The pre-bind surfaces 'address already in use' before any
// request handling starts.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(ln)
	}()

	s.opts.Logger.Info("HTTP server listening", "addr", ln.Addr().String())

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
