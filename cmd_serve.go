package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "soffit-quote/http"
	"soffit-quote/jobs"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the retention scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := buildApp(ctx, cfg, logger)
	defer a.Close()

	sched := jobs.NewScheduler(ctx, a.submissions, cfg.RetentionMaxAge(), logger)
	if cfg.Retention.MaxAgeDays > 0 {
		if err := sched.RegisterPurge(cfg.Retention.Cron); err != nil {
			return err
		}
	}
	sched.Start()
	defer sched.Stop()

	calcLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.CalculatePerMinute, time.Minute)
	defer calcLimiter.Stop()
	submitLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.SubmitMax, cfg.RateLimit.SubmitWindow)
	defer submitLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterConfig{
		Estimates:       httpLayer.NewEstimateHandler(a.quotes, logger),
		Submissions:     httpLayer.NewSubmissionHandler(a.submissions, cfg.HTTP.TrustProxy, logger),
		CalculateLimit:  calcLimiter,
		SubmissionLimit: submitLimiter,
		TrustProxy:      cfg.HTTP.TrustProxy,
		Logger:          logger,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
