package dtos

import "github.com/vayload/contact-validator/pkg/validation"

// ValidationRequest is the optional JSON body of the validation endpoints.
type ValidationRequest struct {
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
}

type CustomerValidationResponse struct {
	IsValid     bool                        `json:"IsValid"`
	Email       validation.ValidationResult `json:"Email"`
	PhoneNumber validation.ValidationResult `json:"PhoneNumber"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
