package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/dataharbor/inquiry-backend/internal/adapter/postgres"
	datasetrepo "github.com/dataharbor/inquiry-backend/internal/adapter/postgres/dataset"
	inquiryrepo "github.com/dataharbor/inquiry-backend/internal/adapter/postgres/inquiry"
	"github.com/dataharbor/inquiry-backend/internal/config"
	inquirysvc "github.com/dataharbor/inquiry-backend/internal/service/inquiry"
	"github.com/dataharbor/inquiry-backend/internal/tool"
	"github.com/dataharbor/inquiry-backend/internal/transport/middleware"
	"github.com/dataharbor/inquiry-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database, wires the repositories, the inquiry service and
// the tool registry, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	inquiries := inquiryrepo.New(pool)
	datasets := datasetrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	svc := inquirysvc.NewService(logger, inquiries, datasets, txManager,
		inquirysvc.Limits{MaxSummaryChars: cfg.Inquiry.MaxSummaryChars})

	registry := tool.NewRegistry()
	if err := tool.RegisterInquiryTools(registry, svc); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	tools := rest.NewToolsHandler(registry, logger)
	mux.HandleFunc("GET /tools", tools.List)
	mux.HandleFunc("POST /tools/{name}", tools.Call)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
