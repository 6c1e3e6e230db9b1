package service

import (
	"fmt"
	"strings"

	"soffit-quote/domain"
)

var installations = map[domain.InstallationType]domain.Installation{
	domain.InstallationSoffitFascia: {
		Name:           "Soffit and Fascia",
		Description:    "Complete installation with soffit panels and fascia",
		RequiresFascia: true,
	},
	domain.InstallationDoubleJ: {
		Name:           "Double J",
		Description:    "Soffit with J-channel only (no fascia replacement)",
		RequiresFascia: false,
	},
}

var materials = map[domain.MaterialType]domain.Material{
	domain.MaterialVinyl: {
		DurabilityYears:  20,
		Description:      "Vinyl - Economical and low maintenance",
		PanelWidthInches: 12,
	},
	domain.MaterialAluminum: {
		DurabilityYears:  30,
		Description:      "Aluminum - Durable and corrosion resistant",
		PanelWidthInches: 16,
	},
}

// installationFor falls back to soffit_fascia for unknown keys.
func installationFor(t domain.InstallationType) domain.Installation {
	if inst, ok := installations[t]; ok {
		return inst
	}
	return installations[domain.InstallationSoffitFascia]
}

// materialFor falls back to aluminum for unknown keys.
func materialFor(t domain.MaterialType) domain.Material {
	if m, ok := materials[t]; ok {
		return m
	}
	return materials[domain.MaterialAluminum]
}

func ParseInstallationType(s string) (domain.InstallationType, error) {
	t := domain.InstallationType(strings.TrimSpace(s))
	if _, ok := installations[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidInstallationType, s)
	}
	return t, nil
}

func ParseMaterialType(s string) (domain.MaterialType, error) {
	t := domain.MaterialType(strings.TrimSpace(s))
	if _, ok := materials[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMaterialType, s)
	}
	return t, nil
}

func ParseServiceType(s string) (domain.ServiceType, error) {
	switch t := domain.ServiceType(strings.TrimSpace(s)); t {
	case domain.ServiceRemoveReplace, domain.ServiceNewConstruction, domain.ServiceRepair:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidServiceType, s)
}
