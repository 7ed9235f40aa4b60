package server

import (
	"context"
	"log/slog"
	"net/http"

	"boxscore-service/internal/autosave"
	"boxscore-service/internal/config"
	httpserver "boxscore-service/internal/http"
	"boxscore-service/internal/http/handlers"
	"boxscore-service/internal/http/middleware"
	"boxscore-service/internal/ledger"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/metrics"
	"boxscore-service/internal/store"
	"boxscore-service/internal/summary"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	ledger        *ledger.Service
	generator     summary.Generator
	httpServer    httpServer
	metricsServer httpServer
	autosaver     Autosaver
	metricsStop   func(context.Context) error
}

// Autosaver abstracts the background snapshot loop for testing.
type Autosaver interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() autosave.Status
}

// New constructs a server with default store and generator wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithDeps(cfg, logger, nil, nil, nil)
}

// newServerWithDeps allows tests to inject a store, generator, or recorder;
// nil values get the default wiring.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, st store.Store, generator summary.Generator, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if st == nil {
		st = buildStore(cfg, logger)
	}
	if generator == nil {
		generator = newGeneratorFactory(logger, recorder).build(cfg)
	}

	ledgerSvc := ledger.New(st, logger, recorder)
	snaps := buildSnapshots(cfg)

	var saver Autosaver
	if cfg.Autosave.Enabled {
		saver = autosave.New(ledgerSvc, snaps.writer, logger, recorder, cfg.Autosave.Interval)
	}

	httpSrv := buildHTTPServer(cfg, ledgerSvc, generator, snaps, logger, recorder, saver)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		ledger:        ledgerSvc,
		generator:     generator,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		autosaver:     saver,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, ledgerSvc *ledger.Service, generator summary.Generator, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, saver Autosaver) httpServer {
	var statusFn func() autosave.Status
	if saver != nil {
		statusFn = saver.Status
	}

	handler := handlers.NewHandler(ledgerSvc, generator, snaps.store, logger, statusFn)
	router := httpserver.NewRouter(handler)

	// Optionally mount the admin refresh endpoint if a token is set.
	if cfg.Autosave.AdminToken != "" {
		admin := handlers.NewAdminHandler(ledgerSvc, snaps.writer, cfg.Autosave.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshot)
		}
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the autosaver and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.autosaver != nil {
		s.autosaver.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.autosaver != nil {
		if err := s.autosaver.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop autosaver", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Release the embedded database when the store holds one.
	if closer, ok := s.store.(store.Closer); ok {
		if err := closer.Close(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
