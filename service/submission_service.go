package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soffit-quote/domain"
	"soffit-quote/notify"
	"soffit-quote/repository"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^\+?[1-9][\d\s\-()]{7,15}$`)
	phoneKeep = regexp.MustCompile(`[^\d+\-\s()]`)
	zipRe     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// SubmissionService handles the "email me this estimate" form.
type SubmissionService struct {
	repo     repository.SubmissionRepository
	notifier notify.Notifier
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewSubmissionService(
	repo repository.SubmissionRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit screens, stores and sends an estimate request. The stored
// submission is returned even when notification fails.
func (s *SubmissionService) Submit(
	ctx context.Context,
	in domain.SubmissionInput,
	clientIP string,
) (domain.Submission, error) {

	// any value at all, whitespace included, means a bot filled the field
	if in.Website != "" {
		s.logger.Info("honeypot tripped", zap.String("ip", clientIP))
		return domain.Submission{}, ErrHoneypot
	}

	in = normalizeSubmission(in)
	if errs := validateSubmission(in); len(errs) > 0 {
		return domain.Submission{}, &ValidationError{Errors: errs}
	}

	if in.TotalPrice < SubmissionMinPrice || in.TotalPrice > SubmissionMaxPrice {
		return domain.Submission{}, ErrImplausiblePrice
	}

	score := SpamScore(in)
	if score > SpamThreshold {
		s.logger.Info("submission flagged as spam",
			zap.String("ip", clientIP),
			zap.Float64("score", score),
		)
		return domain.Submission{}, ErrSpam
	}

	sub := domain.Submission{
		ID:               s.newID(),
		CreatedAt:        s.now().UTC(),
		ClientIP:         clientIP,
		SpamScore:        score,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		ContactMethod:    in.ContactMethod,
		Notes:            in.Notes,
		LinearFeet:       in.LinearFeet,
		Overhang:         in.Overhang,
		InstallationType: in.InstallationType,
		MaterialType:     in.MaterialType,
		ServiceType:      in.ServiceType,
		ZipCode:          in.ZipCode,
		TotalPrice:       in.TotalPrice,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return domain.Submission{}, fmt.Errorf("store submission: %w", err)
	}

	if err := s.notifier.NotifyEstimate(ctx, sub); err != nil {
		s.logger.Error("failed to send estimate email",
			zap.String("submission_id", sub.ID),
			zap.Error(err),
		)
		return sub, errors.Join(ErrNotifyFailed, err)
	}

	s.logger.Info("estimate sent",
		zap.String("submission_id", sub.ID),
		zap.String("email", sub.Email),
		zap.Float64("total_price", sub.TotalPrice),
	)
	return sub, nil
}

// List returns the most recent submissions; limit <= 0 returns all.
func (s *SubmissionService) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	return s.repo.List(ctx, limit)
}

// Purge deletes submissions older than maxAge.
func (s *SubmissionService) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, errors.New("purge age must be positive")
	}
	cutoff := s.now().Add(-maxAge)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	s.logger.Info("purged submissions", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	return n, nil
}

func normalizeSubmission(in domain.SubmissionInput) domain.SubmissionInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = phoneKeep.ReplaceAllString(strings.TrimSpace(in.Phone), "")
	in.ContactMethod = strings.TrimSpace(in.ContactMethod)
	in.Notes = strings.TrimSpace(in.Notes)
	in.InstallationType = strings.TrimSpace(in.InstallationType)
	in.MaterialType = strings.TrimSpace(in.MaterialType)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	return in
}

func validateSubmission(in domain.SubmissionInput) []string {
	var errs []string

	text := func(field, v string, minLen, maxLen int) {
		n := utf8.RuneCountInString(v)
		switch {
		case n == 0:
			errs = append(errs, field+" is required")
		case n < minLen:
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", field, minLen))
		case n > maxLen:
			errs = append(errs, fmt.Sprintf("%s must not exceed %d characters", field, maxLen))
		}
	}
	// A blank or zero number counts as missing.
	number := func(field string, v, lo, hi float64) {
		switch {
		case v == 0 || math.IsNaN(v):
			errs = append(errs, field+" is required")
		case math.IsInf(v, 0):
			errs = append(errs, field+" must be a valid number")
		case v < lo:
			errs = append(errs, fmt.Sprintf("%s must be at least %g", field, lo))
		case v > hi:
			errs = append(errs, fmt.Sprintf("%s must not exceed %g", field, hi))
		}
	}
	required := func(field, v string) bool {
		if v == "" {
			errs = append(errs, field+" is required")
			return false
		}
		return true
	}

	text("firstName", in.FirstName, 2, 50)
	text("lastName", in.LastName, 2, 50)

	if required("email", in.Email) && !emailRe.MatchString(in.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if required("phone", in.Phone) && !phoneRe.MatchString(strings.ReplaceAll(in.Phone, " ", "")) {
		errs = append(errs, "phone must be a valid phone number")
	}

	number("linearFeet", in.LinearFeet, 1, SubmissionMaxLinearFeet)
	number("overhang", in.Overhang, 0, SubmissionMaxOverhang)

	required("installationType", in.InstallationType)
	required("materialType", in.MaterialType)
	required("serviceType", in.ServiceType)

	if required("zipCode", in.ZipCode) && !zipRe.MatchString(in.ZipCode) {
		errs = append(errs, "zipCode format is invalid")
	}

	number("totalPrice", in.TotalPrice, 0, math.MaxFloat64)

	return errs
}
