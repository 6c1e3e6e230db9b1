package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"soffit-quote/domain"
	"soffit-quote/repository"
)

type MockEstimateRepository struct {
	SaveCalls  int
	ForceError bool
	Last       domain.QuoteRecord
}

func (m *MockEstimateRepository) Save(_ context.Context, record domain.QuoteRecord) error {
	m.SaveCalls++
	m.Last = record
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func newQuoteService(repo repository.EstimateRepository) *QuoteService {
	return NewQuoteService(NewEstimator(DefaultPricing()), repo, repository.NewMemoryCache(), zap.NewNop())
}

func validRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		LinearFeet:       100,
		OverhangFeet:     2,
		InstallationType: "soffit_fascia",
		MaterialType:     "aluminum",
		ServiceType:      "new_construction",
		ZipCode:          "32801",
	}
}

func TestQuote_OK(t *testing.T) {
	mockRepo := &MockEstimateRepository{}
	service := newQuoteService(mockRepo)

	result, err := service.Quote(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FormattedTotal != "$1,281.20" {
		t.Errorf("formatted total = %q, want $1,281.20", result.FormattedTotal)
	}
	if result.FormattedBase != "$1,203.00" {
		t.Errorf("formatted subtotal = %q", result.FormattedBase)
	}
	if result.Cached {
		t.Errorf("first quote should not come from cache")
	}
	if mockRepo.SaveCalls != 1 {
		t.Errorf("expected repository Save to be called once, got %d", mockRepo.SaveCalls)
	}
	if mockRepo.Last.ZipCode != "32801" || mockRepo.Last.Service != domain.ServiceNewConstruction {
		t.Errorf("unexpected record: %+v", mockRepo.Last)
	}
}

func TestQuote_CacheHit(t *testing.T) {
	mockRepo := &MockEstimateRepository{}
	service := newQuoteService(mockRepo)
	ctx := context.Background()

	first, err := service.Quote(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Quote(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.Cached {
		t.Errorf("expected cached result")
	}
	if second.Estimate != first.Estimate {
		t.Errorf("cached estimate differs:\n%+v\n%+v", second.Estimate, first.Estimate)
	}
	if mockRepo.SaveCalls != 1 {
		t.Errorf("cache hits are not recorded, got %d saves", mockRepo.SaveCalls)
	}
}

func TestQuote_PriceUpdateBypassesSharedCache(t *testing.T) {
	cache := repository.NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	oldTable := NewQuoteService(NewEstimator(DefaultPricing()), &MockEstimateRepository{}, cache, zap.NewNop())
	if _, err := oldTable.Quote(ctx, validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := DefaultPricing()
	updated.LaborPerFoot = 7
	newTable := NewQuoteService(NewEstimator(updated), &MockEstimateRepository{}, cache, zap.NewNop())

	result, err := newTable.Quote(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Cached {
		t.Fatal("quote priced under the old table was served")
	}
	if result.Estimate.LaborCost != 700 {
		t.Errorf("expected labor 700 at the new rate, got %v", result.Estimate.LaborCost)
	}

	again, err := oldTable.Quote(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Cached || again.Estimate.LaborCost != 600 {
		t.Errorf("old table should still hit its own entry, got cached=%v labor=%v", again.Cached, again.Estimate.LaborCost)
	}
}

func TestQuote_CacheExpires(t *testing.T) {
	mockRepo := &MockEstimateRepository{}
	service := newQuoteService(mockRepo).WithCacheTTL(time.Nanosecond)
	ctx := context.Background()

	if _, err := service.Quote(ctx, validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(time.Millisecond)
	again, err := service.Quote(ctx, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Cached {
		t.Errorf("expired entry should not be served")
	}
}

func TestQuote_SaveErrorIsNotFatal(t *testing.T) {
	mockRepo := &MockEstimateRepository{ForceError: true}
	service := newQuoteService(mockRepo)

	if _, err := service.Quote(context.Background(), validRequest()); err != nil {
		t.Fatalf("save failure should not fail the quote: %v", err)
	}
}

func TestQuote_InvalidEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.QuoteRequest)
		want   error
	}{
		{"installation", func(r *domain.QuoteRequest) { r.InstallationType = "gutter" }, ErrInvalidInstallationType},
		{"material", func(r *domain.QuoteRequest) { r.MaterialType = "wood" }, ErrInvalidMaterialType},
		{"service", func(r *domain.QuoteRequest) { r.ServiceType = "" }, ErrInvalidServiceType},
		{"zip", func(r *domain.QuoteRequest) { r.ZipCode = "90210" }, ErrInvalidZipCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockEstimateRepository{}
			service := newQuoteService(mockRepo)

			req := validRequest()
			tt.mutate(&req)
			_, err := service.Quote(context.Background(), req)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if mockRepo.SaveCalls != 0 {
				t.Errorf("repository Save should NOT be called")
			}
		})
	}
}

func TestQuote_EmptyZipAllowed(t *testing.T) {
	service := newQuoteService(&MockEstimateRepository{})

	req := validRequest()
	req.ZipCode = ""
	if _, err := service.Quote(context.Background(), req); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestQuote_InvalidMeasurements(t *testing.T) {
	service := newQuoteService(&MockEstimateRepository{})

	req := validRequest()
	req.LinearFeet = 5
	req.OverhangFeet = 20

	_, err := service.Quote(context.Background(), req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 errors, got %q", verr.Errors)
	}
}

func TestMaterialOptions_Service(t *testing.T) {
	service := newQuoteService(&MockEstimateRepository{})

	req := validRequest()
	req.MaterialType = "vinyl"
	opts, err := service.MaterialOptions(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 || opts[0].Material.Name != domain.MaterialVinyl {
		t.Errorf("unexpected options: %+v", opts)
	}

	req.LinearFeet = 1
	if _, err := service.MaterialOptions(context.Background(), req); err == nil {
		t.Errorf("expected validation error")
	}
}
