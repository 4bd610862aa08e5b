package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
	"github.com/International-Combat-Archery-Alliance/activity-signup/api"
	"github.com/International-Combat-Archery-Alliance/activity-signup/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "activity-signup: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	swagger, err := api.GetSwagger()
	if err != nil {
		return fmt.Errorf("error loading swagger spec: %w", err)
	}

	swagger.Servers = nil

	db, err := memory.NewDB(activities.DefaultCatalog()...)
	if err != nil {
		return fmt.Errorf("failed to seed activities: %w", err)
	}

	notifier, err := createNotifier(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to create email notifier: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	activityAPI := api.NewAPI(db, logger, cfg.Env, notifier, api.NewMetrics(registry))

	s := &http.Server{
		Handler: activityAPI.Handler(swagger, api.HandlerOptions{
			AllowedOrigins: cfg.AllowedOrigins,
			MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
		Addr: net.JoinHostPort(cfg.Host, cfg.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", s.Addr), slog.String("env", cfg.Env.String()))
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

func newLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.Env == api.PROD {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
