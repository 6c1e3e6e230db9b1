package repository

import (
	"context"
	"time"

	"soffit-quote/domain"
)

// SubmissionRepository stores estimate requests sent through the site.
type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) error
	// List returns the newest submissions first.
	List(ctx context.Context, limit int) ([]domain.Submission, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
