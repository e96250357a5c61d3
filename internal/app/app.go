package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/contracts-backend/internal/config"
	"github.com/heartmarshall/contracts-backend/internal/service/sweep"
	dl "github.com/heartmarshall/contracts-backend/internal/transport/dataloader"
	"github.com/heartmarshall/contracts-backend/internal/transport/middleware"
	"github.com/heartmarshall/contracts-backend/internal/transport/rest"
)

// Run starts the HTTP server and, when enabled, the sweep scheduler. It
// blocks until ctx is cancelled and then shuts both down.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	var scheduler *sweep.Scheduler
	if cfg.Sweep.Enabled {
		scheduler = sweep.NewScheduler(logger, c.SweepService, sweep.Schedule{
			Hour:     cfg.Sweep.Hour,
			Minute:   cfg.Sweep.Minute,
			Location: cfg.Sweep.Location,
		}, c.Clock)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, c, scheduler, limiter),
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
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	c *Container,
	scheduler *sweep.Scheduler,
	limiter *middleware.RateLimiter,
) http.Handler {
	// A nil *Scheduler stored in the interface would not compare equal to nil.
	var sweepStatus interface{ LastRun() (time.Time, error) }
	if scheduler != nil {
		sweepStatus = scheduler
	}

	opts := rest.RouterOptions{
		Global: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.ClientInfo(cfg.Server.TrustProxy),
			middleware.Logger(logger),
			middleware.Metrics,
			middleware.CORS(cfg.CORS),
			middleware.Auth(c.JWT),
			middleware.Recovery(logger),
			dl.Middleware(&dl.Repos{User: c.Users}),
		},
		API: []func(http.Handler) http.Handler{middleware.RequireAuth},
	}
	if cfg.RateLimit.Enabled {
		opts.WriteLimit = limiter.Limit(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst)
	}

	return rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(c.Pool, sweepStatus, Version),
		Contracts:     rest.NewContractHandler(c.ContractService, logger),
		Tasks:         rest.NewTaskHandler(c.TaskService, logger),
		Notifications: rest.NewNotificationHandler(c.NotificationService, logger),
		Dashboard:     rest.NewDashboardHandler(c.DashboardService, logger),
		Metrics:       promhttp.Handler(),
	}, opts)
}
