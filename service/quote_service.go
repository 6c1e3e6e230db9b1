package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"soffit-quote/domain"
	"soffit-quote/repository"
)

const defaultQuoteCacheTTL = 24 * time.Hour

// QuoteService validates calculator input and prices it through the
// Estimator, caching results and recording every run.
type QuoteService struct {
	estimator *Estimator
	repo      repository.EstimateRepository
	cache     repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewQuoteService creates a new QuoteService with the given repository and cache.
func NewQuoteService(
	estimator *Estimator,
	repo repository.EstimateRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		estimator: estimator,
		repo:      repo,
		cache:     cache,
		cacheTTL:  defaultQuoteCacheTTL,
		logger:    logger,
	}
}

// WithCacheTTL sets how long cached quotes live. Zero keeps them forever.
func (s *QuoteService) WithCacheTTL(ttl time.Duration) *QuoteService {
	s.cacheTTL = ttl
	return s
}

func (s *QuoteService) Estimator() *Estimator {
	return s.estimator
}

type parsedQuote struct {
	installation domain.InstallationType
	material     domain.MaterialType
	service      domain.ServiceType
	zip          string
}

func (s *QuoteService) parse(req domain.QuoteRequest) (parsedQuote, error) {
	installation, err := ParseInstallationType(req.InstallationType)
	if err != nil {
		return parsedQuote{}, err
	}
	material, err := ParseMaterialType(req.MaterialType)
	if err != nil {
		return parsedQuote{}, err
	}
	svc, err := ParseServiceType(req.ServiceType)
	if err != nil {
		return parsedQuote{}, err
	}

	if v := s.estimator.ValidateMeasurements(req.LinearFeet, req.OverhangFeet); !v.Valid {
		return parsedQuote{}, &ValidationError{Errors: v.Errors}
	}

	zip := strings.TrimSpace(req.ZipCode)
	if zip != "" && !s.estimator.ValidateZipCode(zip) {
		return parsedQuote{}, fmt.Errorf("%w: %q", ErrInvalidZipCode, zip)
	}

	return parsedQuote{installation: installation, material: material, service: svc, zip: zip}, nil
}

// Quote prices a calculator request.
func (s *QuoteService) Quote(ctx context.Context, req domain.QuoteRequest) (domain.QuoteResult, error) {
	q, err := s.parse(req)
	if err != nil {
		return domain.QuoteResult{}, err
	}

	key := quoteCacheKey(s.estimator.PricingVersion(), req.LinearFeet, req.OverhangFeet, q)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached domain.QuoteResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			cached.Cached = true
			return cached, nil
		}
		s.logger.Warn("discarding unreadable cached quote", zap.String("key", key))
	}

	estimate := s.estimator.CalculateCostEstimate(req.LinearFeet, req.OverhangFeet, q.installation, q.material, q.service)
	result := domain.QuoteResult{
		Estimate:       estimate,
		FormattedTotal: FormatCurrency(estimate.FinalTotal),
		FormattedTax:   FormatCurrency(estimate.TaxAmount),
		FormattedBase:  FormatCurrency(estimate.TotalCost),
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache quote", zap.String("key", key), zap.Error(err))
		}
	}

	// Recording is not critical to answering the customer.
	record := domain.QuoteRecord{
		Installation: q.installation,
		Material:     q.material,
		Service:      q.service,
		ZipCode:      q.zip,
		Estimate:     estimate,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save quote run", zap.Error(err))
	}

	return result, nil
}

// MaterialOptions validates req and returns the lifetime-cost options.
func (s *QuoteService) MaterialOptions(_ context.Context, req domain.QuoteRequest) ([]domain.MaterialOption, error) {
	q, err := s.parse(req)
	if err != nil {
		return nil, err
	}
	return s.estimator.MaterialOptions(req.LinearFeet, req.OverhangFeet, q.installation, q.material, q.service), nil
}

// quoteCacheKey scopes entries to the price table so a shared cache never
// serves quotes priced under an older table.
func quoteCacheKey(version string, linearFeet, overhangFeet float64, q parsedQuote) string {
	return fmt.Sprintf("quote:%s:%s:%s:%s:%g:%g", version, q.installation, q.material, q.service, linearFeet, overhangFeet)
}
