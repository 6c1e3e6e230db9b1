package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"soffit-quote/domain"
	"soffit-quote/service"
)

const maxFormBytes = 1 << 20

type SubmissionHandler struct {
	service    *service.SubmissionService
	trustProxy bool
	logger     *zap.Logger
}

func NewSubmissionHandler(service *service.SubmissionService, trustProxy bool, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{service: service, trustProxy: trustProxy, logger: logger}
}

// formFloat parses a numeric form field; blanks and garbage become NaN so
// validation can report them.
func formFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(key)), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Submit accepts the estimate email form (urlencoded or multipart).
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Error: "invalid form body"}, h.logger)
		return
	}

	in := domain.SubmissionInput{
		FirstName:        r.FormValue("firstName"),
		LastName:         r.FormValue("lastName"),
		Email:            r.FormValue("email"),
		Phone:            r.FormValue("phone"),
		ContactMethod:    r.FormValue("contactMethod"),
		Notes:            r.FormValue("notes"),
		LinearFeet:       formFloat(r, "linearFeet"),
		Overhang:         formFloat(r, "overhang"),
		InstallationType: r.FormValue("installationType"),
		MaterialType:     r.FormValue("materialType"),
		ServiceType:      r.FormValue("serviceType"),
		ZipCode:          r.FormValue("zipCode"),
		TotalPrice:       formFloat(r, "totalPrice"),
		Website:          r.FormValue("website"),
	}

	_, err = h.service.Submit(r.Context(), in, clientIP(r, h.trustProxy))

	var verr *service.ValidationError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Estimate sent to your email successfully!"}, h.logger)
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "Validation failed", Details: verr.Errors}, h.logger)
	case errors.Is(err, service.ErrHoneypot):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "Invalid submission detected"}, h.logger)
	case errors.Is(err, service.ErrImplausiblePrice):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "Invalid price calculation detected"}, h.logger)
	case errors.Is(err, service.ErrSpam):
		writeJSON(w, http.StatusBadRequest, envelope{Error: "Submission flagged as potential spam"}, h.logger)
	case errors.Is(err, service.ErrNotifyFailed):
		writeJSON(w, http.StatusInternalServerError, envelope{Error: "Failed to send estimate. Please try again."}, h.logger)
	default:
		h.logger.Error("estimate submission failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, envelope{Error: "Internal server error. Please try again later."}, h.logger)
	}
}
