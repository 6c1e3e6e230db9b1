package http

import (
	"net/http"

	"go.uber.org/zap"
)

// RouterConfig wires handlers to routes.
type RouterConfig struct {
	Estimates       *EstimateHandler
	Submissions     *SubmissionHandler
	CalculateLimit  *RateLimiter
	SubmissionLimit *RateLimiter
	TrustProxy      bool
	Logger          *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	limit := func(l *RateLimiter, msg string, h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(l, cfg.TrustProxy, msg, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/estimate/calculate",
		limit(cfg.CalculateLimit, "Too many requests from this IP, please try again later.", cfg.Estimates.Calculate))
	mux.Handle("/estimate/options",
		limit(cfg.CalculateLimit, "Too many requests from this IP, please try again later.", cfg.Estimates.Options))
	mux.HandleFunc("/estimate/catalog", cfg.Estimates.Catalog)
	mux.Handle("/api/estimate",
		limit(cfg.SubmissionLimit, "Too many estimate requests from this IP, please try again later.", cfg.Submissions.Submit))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	return LoggingMiddleware(cfg.Logger, mux)
}
