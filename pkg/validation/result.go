// Package validation classifies customer contact fields (email address and
// US phone number). Every function in this package is pure and total: any
// input string maps to a ValidationResult, none of them return an error.
package validation

// ValidationResult is the outcome of validating a single field.
type ValidationResult struct {
	IsValid bool   `json:"IsValid"`
	Message string `json:"Message"`
}

const (
	MsgEmailRequired = "Email is required."
	MsgEmailValid    = "Email is valid."
	MsgEmailInvalid  = "Invalid email format."

	MsgPhoneRequired    = "Phone number is required."
	MsgPhoneValid       = "Phone number is valid."
	MsgPhoneInvalid     = "Invalid phone number format."
	MsgPhoneDigitLength = "Phone number must be 10 digits."
)

// Validator classifies one raw field value.
type Validator interface {
	Validate(value string) ValidationResult
}

// Func adapts a plain function to the Validator interface.
type Func func(value string) ValidationResult

func (f Func) Validate(value string) ValidationResult {
	return f(value)
}

func valid(message string) ValidationResult {
	return ValidationResult{IsValid: true, Message: message}
}

func invalid(message string) ValidationResult {
	return ValidationResult{IsValid: false, Message: message}
}
