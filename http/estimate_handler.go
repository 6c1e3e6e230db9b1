package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"soffit-quote/domain"
	"soffit-quote/service"
)

type EstimateHandler struct {
	service *service.QuoteService
	logger  *zap.Logger
}

func NewEstimateHandler(service *service.QuoteService, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{service: service, logger: logger}
}

func (h *EstimateHandler) decode(w http.ResponseWriter, r *http.Request) (domain.QuoteRequest, bool) {
	var req domain.QuoteRequest

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("decoding quote request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *EstimateHandler) writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, envelope{Error: "Validation failed", Details: verr.Errors}, h.logger)
	case errors.Is(err, service.ErrInvalidInstallationType),
		errors.Is(err, service.ErrInvalidMaterialType),
		errors.Is(err, service.ErrInvalidServiceType),
		errors.Is(err, service.ErrInvalidZipCode):
		writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()}, h.logger)
	default:
		h.logger.Error("quote failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, envelope{Error: "internal server error"}, h.logger)
	}
}

// Calculate prices a calculator request.
func (h *EstimateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.service.Quote(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// Options returns the material option with its cost per year.
func (h *EstimateHandler) Options(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	options, err := h.service.MaterialOptions(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options, h.logger)
}

type catalogResponse struct {
	InstallationTypes map[domain.InstallationType]domain.Installation `json:"installation_types"`
	Materials         []domain.MaterialInfo                           `json:"materials"`
	UnitCosts         domain.UnitCosts                                `json:"unit_costs"`
	LaborPerFoot      float64                                         `json:"labor_per_foot"`
	TaxRate           float64                                         `json:"tax_rate"`
}

// Catalog lists installation types, materials and unit prices.
func (h *EstimateHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	est := h.service.Estimator()
	pricing := est.Pricing()

	mats := []domain.MaterialInfo{
		est.MaterialInfo(domain.MaterialAluminum),
		est.MaterialInfo(domain.MaterialVinyl),
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		InstallationTypes: est.InstallationTypes(),
		Materials:         mats,
		UnitCosts:         est.MaterialCosts(),
		LaborPerFoot:      pricing.LaborPerFoot,
		TaxRate:           pricing.TaxRate,
	}, h.logger)
}
