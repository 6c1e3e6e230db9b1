package repository

import (
	"context"
	"sync"

	"soffit-quote/domain"
)

// EstimateRepositoryMemory is an in-memory implementation of EstimateRepository.
type EstimateRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.QuoteRecord
}

// NewEstimateRepositoryMemory creates a new in-memory estimate repository.
func NewEstimateRepositoryMemory() *EstimateRepositoryMemory {
	return &EstimateRepositoryMemory{
		data: []domain.QuoteRecord{},
	}
}

// Save stores the calculator run in memory.
func (r *EstimateRepositoryMemory) Save(_ context.Context, record domain.QuoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// Records returns a copy of everything saved so far.
func (r *EstimateRepositoryMemory) Records() []domain.QuoteRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.QuoteRecord, len(r.data))
	copy(out, r.data)
	return out
}
