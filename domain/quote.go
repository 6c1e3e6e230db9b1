package domain

// QuoteRequest is the raw calculator input as submitted by a client.
type QuoteRequest struct {
	LinearFeet       float64 `json:"linear_feet"`
	OverhangFeet     float64 `json:"overhang_feet"`
	InstallationType string  `json:"installation_type"`
	MaterialType     string  `json:"material_type"`
	ServiceType      string  `json:"service_type"`
	ZipCode          string  `json:"zip_code,omitempty"`
}

// QuoteResult is a priced estimate plus display strings.
type QuoteResult struct {
	Estimate       CostEstimate `json:"estimate"`
	FormattedTotal string       `json:"formatted_total"`
	FormattedTax   string       `json:"formatted_tax"`
	FormattedBase  string       `json:"formatted_subtotal"`
	Cached         bool         `json:"cached"`
}

// QuoteRecord is a stored calculator run.
type QuoteRecord struct {
	Installation InstallationType
	Material     MaterialType
	Service      ServiceType
	ZipCode      string
	Estimate     CostEstimate
}
