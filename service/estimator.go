package service

import (
	"fmt"
	"math"
	"strconv"

	"soffit-quote/domain"
)

// Estimator prices soffit and fascia jobs. It holds no mutable state and is
// safe for concurrent use.
type Estimator struct {
	pricing Pricing
	version string
}

func NewEstimator(pricing Pricing) *Estimator {
	return &Estimator{pricing: pricing.clone(), version: pricing.Fingerprint()}
}

// PricingVersion is the fingerprint of the price table in use.
func (e *Estimator) PricingVersion() string {
	return e.version
}

// Pricing returns a copy of the estimator's price table.
func (e *Estimator) Pricing() Pricing {
	return e.pricing.clone()
}

// CalculateMaterialQuantities works out piece counts for a run of soffit.
// Inputs are assumed to have passed ValidateMeasurements.
func (e *Estimator) CalculateMaterialQuantities(
	linearFeet, overhangFeet float64,
	installationType domain.InstallationType,
	materialType domain.MaterialType,
) domain.MaterialQuantities {
	installation := installationFor(installationType)

	panelWidth := materialFor(materialType).PanelWidthInches / inchesPerFoot
	panelsPerFoot := math.Ceil(overhangFeet / panelWidth)
	// round up to whole 12 ft panels
	totalPanelsNeeded := math.Ceil((linearFeet*panelsPerFoot)/PieceLengthFeet) * PieceLengthFeet

	jChannel := int(math.Ceil(linearFeet / PieceLengthFeet))
	if installationType == domain.InstallationDoubleJ {
		jChannel *= DoubleJChannels
	}

	fascia := 0
	if installation.RequiresFascia {
		fascia = int(math.Ceil(linearFeet / PieceLengthFeet))
	}

	return domain.MaterialQuantities{
		SoffitPanels: int(math.Ceil(totalPanelsNeeded / PieceLengthFeet)),
		JChannel:     jChannel,
		Fascia:       fascia,
		NailBoxes:    int(math.Ceil(linearFeet / FeetPerNailBox)),
	}
}

// CalculateCostEstimate prices a job: materials and labor scaled by the
// service multiplier, then volume discount, repair minimum and sales tax.
func (e *Estimator) CalculateCostEstimate(
	linearFeet, overhangFeet float64,
	installationType domain.InstallationType,
	materialType domain.MaterialType,
	serviceType domain.ServiceType,
) domain.CostEstimate {
	p := e.pricing
	quantities := e.CalculateMaterialQuantities(linearFeet, overhangFeet, installationType, materialType)

	multiplier, ok := p.ServiceMultipliers[serviceType]
	if !ok {
		multiplier = fallbackMultiply
	}

	panelCost := p.UnitCosts.SoffitPanelAluminum
	if materialType == domain.MaterialVinyl {
		panelCost = p.UnitCosts.SoffitPanelVinyl
	}

	breakdown := domain.MaterialBreakdown{
		Soffit:   float64(quantities.SoffitPanels) * panelCost,
		JChannel: float64(quantities.JChannel) * p.UnitCosts.JChannel,
		Fascia:   float64(quantities.Fascia) * p.UnitCosts.Fascia6,
		Nails:    float64(quantities.NailBoxes) * p.UnitCosts.Nails,
	}

	baseMaterialCost := breakdown.Soffit + breakdown.JChannel + breakdown.Fascia + breakdown.Nails
	baseLaborCost := linearFeet * p.LaborPerFoot

	materialCost := baseMaterialCost * multiplier
	laborCost := baseLaborCost * multiplier
	subtotal := materialCost + laborCost

	volumeDiscount := linearFeet >= p.VolumeDiscountThreshold
	discountAmount := 0.0
	if volumeDiscount {
		discountAmount = subtotal * p.VolumeDiscountRate
	}
	discountedTotal := subtotal - discountAmount

	repairMinimum := serviceType == domain.ServiceRepair && discountedTotal < p.RepairMinimum
	adjustedTotal := discountedTotal
	if repairMinimum {
		adjustedTotal = p.RepairMinimum
	}

	taxAmount := adjustedTotal * p.TaxRate

	return domain.CostEstimate{
		MaterialCost:          materialCost,
		LaborCost:             laborCost,
		TotalCost:             adjustedTotal,
		LinearFeet:            linearFeet,
		OverhangFeet:          overhangFeet,
		Quantities:            quantities,
		Installation:          installationFor(installationType),
		TaxRate:               p.TaxRate,
		TaxAmount:             taxAmount,
		FinalTotal:            adjustedTotal + taxAmount,
		VolumeDiscountApplied: volumeDiscount,
		DiscountAmount:        discountAmount,
		RepairMinimumApplied:  repairMinimum,
		MaterialBreakdown:     breakdown,
	}
}

// MaterialOptions returns the estimate for the chosen material together
// with its cost per year of service life.
func (e *Estimator) MaterialOptions(
	linearFeet, overhangFeet float64,
	installationType domain.InstallationType,
	materialType domain.MaterialType,
	serviceType domain.ServiceType,
) []domain.MaterialOption {
	estimate := e.CalculateCostEstimate(linearFeet, overhangFeet, installationType, materialType, serviceType)
	info := e.MaterialInfo(materialType)

	return []domain.MaterialOption{{
		Material:    info,
		Estimate:    estimate,
		CostPerYear: estimate.FinalTotal / float64(info.DurabilityYears),
	}}
}

// ValidateMeasurements reports every out-of-range measurement. It never
// fails; callers decide how to surface the errors.
func (e *Estimator) ValidateMeasurements(linearFeet, overhangFeet float64) domain.ValidationResult {
	p := e.pricing
	errs := []string{}

	if math.IsNaN(linearFeet) || math.IsInf(linearFeet, 0) {
		errs = append(errs, "Linear feet must be a valid number")
	} else {
		if linearFeet < p.MinLinearFeet {
			errs = append(errs, fmt.Sprintf("Linear feet must be at least %g feet", p.MinLinearFeet))
		}
		if linearFeet > p.MaxLinearFeet {
			errs = append(errs, fmt.Sprintf("Linear feet cannot exceed %g feet", p.MaxLinearFeet))
		}
	}

	if math.IsNaN(overhangFeet) || math.IsInf(overhangFeet, 0) {
		errs = append(errs, "Overhang must be a valid number")
	} else {
		if overhangFeet < p.MinOverhang {
			errs = append(errs, fmt.Sprintf("Overhang must be at least %g feet", p.MinOverhang))
		}
		if overhangFeet > p.MaxOverhang {
			errs = append(errs, fmt.Sprintf("Overhang cannot exceed %g feet", p.MaxOverhang))
		}
	}

	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateZipCode accepts five digits inside the service area ZIP range.
func (e *Estimator) ValidateZipCode(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(zip)
	if err != nil {
		return false
	}
	return n >= e.pricing.MinZipCode && n <= e.pricing.MaxZipCode
}

func (e *Estimator) MaterialInfo(materialType domain.MaterialType) domain.MaterialInfo {
	m := materialFor(materialType)
	return domain.MaterialInfo{
		Name:            materialType,
		DurabilityYears: m.DurabilityYears,
		Description:     m.Description,
	}
}

func (e *Estimator) InstallationTypes() map[domain.InstallationType]domain.Installation {
	out := make(map[domain.InstallationType]domain.Installation, len(installations))
	for k, v := range installations {
		out[k] = v
	}
	return out
}

func (e *Estimator) MaterialCosts() domain.UnitCosts {
	return e.pricing.UnitCosts
}
