package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"soffit-quote/domain"
)

type SubmissionRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.Submission
}

func NewSubmissionRepositoryMemory() *SubmissionRepositoryMemory {
	return &SubmissionRepositoryMemory{}
}

func (r *SubmissionRepositoryMemory) Create(_ context.Context, s domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, s)
	return nil
}

func (r *SubmissionRepositoryMemory) List(_ context.Context, limit int) ([]domain.Submission, error) {
	r.mu.Lock()
	out := make([]domain.Submission, len(r.data))
	copy(out, r.data)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SubmissionRepositoryMemory) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.data[:0]
	var removed int64
	for _, s := range r.data {
		if s.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	r.data = kept
	return removed, nil
}
