package domain

import "time"

// SubmissionInput is the "email me my estimate" form.
type SubmissionInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	ContactMethod string
	Notes         string

	LinearFeet       float64
	Overhang         float64
	InstallationType string
	MaterialType     string
	ServiceType      string
	ZipCode          string
	TotalPrice       float64

	// Website is a honeypot; humans never see the field.
	Website string
}

// Submission is a stored estimate request.
type Submission struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ClientIP  string    `json:"client_ip,omitempty"`
	SpamScore float64   `json:"spam_score"`

	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ContactMethod string `json:"contact_method,omitempty"`
	Notes         string `json:"notes,omitempty"`

	LinearFeet       float64 `json:"linear_feet"`
	Overhang         float64 `json:"overhang"`
	InstallationType string  `json:"installation_type"`
	MaterialType     string  `json:"material_type"`
	ServiceType      string  `json:"service_type"`
	ZipCode          string  `json:"zip_code"`
	TotalPrice       float64 `json:"total_price"`
}
