package domain

type MaterialQuantities struct {
	SoffitPanels int `json:"soffit_panels"`
	JChannel     int `json:"j_channel"`
	Fascia       int `json:"fascia"`
	NailBoxes    int `json:"nails"`
}

// MaterialBreakdown holds each material line before the service multiplier.
type MaterialBreakdown struct {
	Soffit   float64 `json:"soffit"`
	JChannel float64 `json:"j_channel"`
	Fascia   float64 `json:"fascia"`
	Nails    float64 `json:"nails"`
}

type CostEstimate struct {
	MaterialCost          float64            `json:"material_cost"`
	LaborCost             float64            `json:"labor_cost"`
	TotalCost             float64            `json:"total_cost"`
	LinearFeet            float64            `json:"linear_feet"`
	OverhangFeet          float64            `json:"overhang_feet"`
	Quantities            MaterialQuantities `json:"quantities"`
	Installation          Installation       `json:"installation"`
	TaxRate               float64            `json:"tax_rate"`
	TaxAmount             float64            `json:"tax_amount"`
	FinalTotal            float64            `json:"final_total"`
	VolumeDiscountApplied bool               `json:"volume_discount_applied"`
	DiscountAmount        float64            `json:"discount_amount"`
	RepairMinimumApplied  bool               `json:"repair_minimum_applied"`
	MaterialBreakdown     MaterialBreakdown  `json:"material_breakdown"`
}

// MaterialOption pairs an estimate with the material's lifetime cost.
type MaterialOption struct {
	Material    MaterialInfo `json:"material"`
	Estimate    CostEstimate `json:"estimate"`
	CostPerYear float64      `json:"cost_per_year"`
}

type ValidationResult struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}
