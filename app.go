package main

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"soffit-quote/config"
	"soffit-quote/notify"
	"soffit-quote/repository"
	"soffit-quote/service"
)

// app is the wired service graph shared by the sub-commands.
type app struct {
	quotes      *service.QuoteService
	submissions *service.SubmissionService
	closers     []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) *app {
	a := &app{}

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		rc, err := repository.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			logger.Warn("redis unavailable, using in-process cache", zap.Error(err))
		} else {
			cache = rc
			a.closers = append(a.closers, rc.Close)
		}
	}
	if cache == nil {
		mc := repository.NewMemoryCache()
		cache = mc
		a.closers = append(a.closers, mc.Close)
	}

	var (
		runs  repository.EstimateRepository   = repository.NewEstimateRepositoryMemory()
		store repository.SubmissionRepository = repository.NewSubmissionRepositoryMemory()
	)
	if path := cfg.Database.SQLitePath; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			logger.Warn("create database directory", zap.Error(err))
		}
		db, err := repository.NewSQLiteStore(path, logger)
		if err != nil {
			logger.Warn("sqlite unavailable, using memory store", zap.Error(err))
		} else {
			runs, store = db, db
			a.closers = append(a.closers, db.Close)
		}
	}

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.SMTP.Host != "" {
		notifier = notify.NewEmailNotifier(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.FromName,
			Bcc:      cfg.SMTP.Bcc,
		})
	}

	estimator := service.NewEstimator(cfg.Pricing)
	a.quotes = service.NewQuoteService(estimator, runs, cache, logger).WithCacheTTL(cfg.Redis.QuoteTTL)
	a.submissions = service.NewSubmissionService(store, notifier, logger)
	return a
}
