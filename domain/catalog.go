package domain

// InstallationType selects how soffit panels are trimmed out.
type InstallationType string

const (
	InstallationSoffitFascia InstallationType = "soffit_fascia"
	InstallationDoubleJ      InstallationType = "double_j"
)

// Installation describes an installation type.
type Installation struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	RequiresFascia bool   `json:"requires_fascia"`
}

// MaterialType is the soffit panel material.
type MaterialType string

const (
	MaterialVinyl    MaterialType = "vinyl"
	MaterialAluminum MaterialType = "aluminum"
)

// Material describes a panel material.
type Material struct {
	DurabilityYears  int     `json:"durability_years"`
	Description      string  `json:"description"`
	PanelWidthInches float64 `json:"panel_width_inches"`
}

// MaterialInfo is the public view of a material returned to callers.
type MaterialInfo struct {
	Name            MaterialType `json:"name"`
	DurabilityYears int          `json:"durability_years"`
	Description     string       `json:"description"`
}

// ServiceType is the kind of job being quoted.
type ServiceType string

const (
	ServiceRemoveReplace   ServiceType = "remove_replace"
	ServiceNewConstruction ServiceType = "new_construction"
	ServiceRepair          ServiceType = "repair"
)

// UnitCosts are per-piece material prices. Panels, J-channel and fascia are
// sold in ~12 ft pieces, nails by the box.
type UnitCosts struct {
	SoffitPanelAluminum float64 `json:"soffit_panel_aluminum" yaml:"soffit_panel_aluminum"`
	SoffitPanelVinyl    float64 `json:"soffit_panel_vinyl" yaml:"soffit_panel_vinyl"`
	JChannel            float64 `json:"j_channel" yaml:"j_channel"`
	Fascia6             float64 `json:"fascia_6" yaml:"fascia_6"`
	Nails               float64 `json:"nails" yaml:"nails"`
}
