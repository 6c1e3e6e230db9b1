package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"soffit-quote/domain"
)

// Pricing is every price, rate and threshold the estimator uses. It is
// loaded from config so price updates need no rebuild.
type Pricing struct {
	LaborPerFoot       float64                        `yaml:"labor_per_foot"`
	TaxRate            float64                        `yaml:"tax_rate"`
	UnitCosts          domain.UnitCosts               `yaml:"unit_costs"`
	ServiceMultipliers map[domain.ServiceType]float64 `yaml:"service_multipliers"`

	RepairMinimum           float64 `yaml:"repair_minimum"`
	VolumeDiscountThreshold float64 `yaml:"volume_discount_threshold"`
	VolumeDiscountRate      float64 `yaml:"volume_discount_rate"`

	MinLinearFeet float64 `yaml:"min_linear_feet"`
	MaxLinearFeet float64 `yaml:"max_linear_feet"`
	MinOverhang   float64 `yaml:"min_overhang"`
	MaxOverhang   float64 `yaml:"max_overhang"`
	MinZipCode    int     `yaml:"min_zip_code"`
	MaxZipCode    int     `yaml:"max_zip_code"`
}

// DefaultPricing returns the standard Orlando price table.
func DefaultPricing() Pricing {
	return Pricing{
		LaborPerFoot: DefaultLaborPerFoot,
		TaxRate:      DefaultTaxRate,
		UnitCosts: domain.UnitCosts{
			SoffitPanelAluminum: DefaultSoffitPanelAluminum,
			SoffitPanelVinyl:    DefaultSoffitPanelVinyl,
			JChannel:            DefaultJChannel,
			Fascia6:             DefaultFascia6,
			Nails:               DefaultNailsPerBox,
		},
		ServiceMultipliers: map[domain.ServiceType]float64{
			domain.ServiceRemoveReplace:   1.3,
			domain.ServiceNewConstruction: 1.0,
			domain.ServiceRepair:          0.8,
		},
		RepairMinimum:           DefaultRepairMinimum,
		VolumeDiscountThreshold: DefaultVolumeDiscountThreshold,
		VolumeDiscountRate:      DefaultVolumeDiscountRate,
		// perimeters run up to four house sides
		MinLinearFeet: MinHouseDimension,
		MaxLinearFeet: MaxHouseDimension * 4,
		MinOverhang:   MinOverhangFeet,
		MaxOverhang:   MaxOverhangFeet,
		MinZipCode:    MinZipCode,
		MaxZipCode:    MaxZipCode,
	}
}

// Fingerprint identifies the price table. Any changed price, rate or limit
// yields a different value.
func (p Pricing) Fingerprint() string {
	raw, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(raw), 16)
}

// Validate rejects tables that would produce negative or undefined prices.
func (p Pricing) Validate() error {
	if p.LaborPerFoot < 0 {
		return errors.New("labor_per_foot must not be negative")
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return fmt.Errorf("tax_rate %.4f out of range [0, 1)", p.TaxRate)
	}
	c := p.UnitCosts
	for name, v := range map[string]float64{
		"soffit_panel_aluminum": c.SoffitPanelAluminum,
		"soffit_panel_vinyl":    c.SoffitPanelVinyl,
		"j_channel":             c.JChannel,
		"fascia_6":              c.Fascia6,
		"nails":                 c.Nails,
	} {
		if v < 0 {
			return fmt.Errorf("unit_costs.%s must not be negative", name)
		}
	}
	for svc, m := range p.ServiceMultipliers {
		if m < 0 {
			return fmt.Errorf("service multiplier for %s must not be negative", svc)
		}
	}
	if p.VolumeDiscountRate < 0 || p.VolumeDiscountRate > 1 {
		return fmt.Errorf("volume_discount_rate %.4f out of range [0, 1]", p.VolumeDiscountRate)
	}
	if p.RepairMinimum < 0 {
		return errors.New("repair_minimum must not be negative")
	}
	if p.MinLinearFeet > p.MaxLinearFeet {
		return errors.New("min_linear_feet exceeds max_linear_feet")
	}
	if p.MinOverhang > p.MaxOverhang {
		return errors.New("min_overhang exceeds max_overhang")
	}
	if p.MinZipCode > p.MaxZipCode {
		return errors.New("min_zip_code exceeds max_zip_code")
	}
	return nil
}

func (p Pricing) clone() Pricing {
	p.ServiceMultipliers = maps.Clone(p.ServiceMultipliers)
	return p
}
