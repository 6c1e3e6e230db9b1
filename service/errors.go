package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInstallationType = errors.New("invalid installation type")
	ErrInvalidMaterialType     = errors.New("invalid material type")
	ErrInvalidServiceType      = errors.New("invalid service type")
	ErrInvalidZipCode          = errors.New("zip code must be a Florida 5-digit ZIP")

	ErrHoneypot         = errors.New("invalid submission detected")
	ErrImplausiblePrice = errors.New("invalid price calculation detected")
	ErrSpam             = errors.New("submission flagged as potential spam")
	ErrNotifyFailed     = errors.New("failed to send estimate")
)

// ValidationError lists every rule an input broke.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
