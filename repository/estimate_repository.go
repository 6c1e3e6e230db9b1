package repository

import (
	"context"

	"soffit-quote/domain"
)

// EstimateRepository records calculator runs.
type EstimateRepository interface {
	Save(ctx context.Context, record domain.QuoteRecord) error
}
