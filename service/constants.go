package service

// Orlando market pricing, 2024.
const (
	DefaultLaborPerFoot = 6.00
	DefaultTaxRate      = 0.065 // Florida sales tax

	DefaultSoffitPanelAluminum = 22.00 // 16" ventilated aluminum, ~12 ft
	DefaultSoffitPanelVinyl    = 9.00
	DefaultJChannel            = 7.00  // 3/8" aluminum, ~12 ft
	DefaultFascia6             = 17.00 // 6" aluminum, ~12 ft
	DefaultNailsPerBox         = 13.00 // 1 7/8" stainless

	DefaultRepairMinimum           = 250.00
	DefaultVolumeDiscountThreshold = 290.0 // linear feet
	DefaultVolumeDiscountRate      = 0.05

	MinHouseDimension = 10.0
	MaxHouseDimension = 500.0
	MinOverhangFeet   = 0.5
	MaxOverhangFeet   = 10.0

	// Florida ZIP range
	MinZipCode = 32000
	MaxZipCode = 34999

	PieceLengthFeet  = 12.0
	FeetPerNailBox   = 100.0
	DoubleJChannels  = 2
	inchesPerFoot    = 12.0
	fallbackMultiply = 1.0
)

// Limits enforced on the estimate submission form.
const (
	SubmissionMinPrice      = 100.0
	SubmissionMaxPrice      = 100000.0
	SubmissionMaxLinearFeet = 10000.0
	SubmissionMaxOverhang   = 100.0
	SpamThreshold           = 0.7
)
