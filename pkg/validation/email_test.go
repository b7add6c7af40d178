package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		isValid bool
		message string
	}{
		{"test@example.com", true, MsgEmailValid},
		{"user.name@domain.com", true, MsgEmailValid},
		{"user+tag@example.com", true, MsgEmailValid},
		{"first_last%x@sub.example.co.uk", true, MsgEmailValid},
		{"TEST@EXAMPLE.COM", true, MsgEmailValid},
		{"", false, MsgEmailRequired},
		{" ", false, MsgEmailRequired},
		{"\t\n", false, MsgEmailRequired},
		{"invalid", false, MsgEmailInvalid},
		{"invalid-email", false, MsgEmailInvalid},
		{"invalid@", false, MsgEmailInvalid},
		{"@invalid.com", false, MsgEmailInvalid},
		{"invalid@domain", false, MsgEmailInvalid},
		{"invalid@.com", false, MsgEmailInvalid},
		{"invalid@domain.c", false, MsgEmailInvalid},
		{"in valid@domain.com", false, MsgEmailInvalid},
		{"test@example.com\n", true, MsgEmailValid},
		{"test@example.com\n\n", false, MsgEmailInvalid},
		{"test@example.com\r\n", false, MsgEmailInvalid},
		{"test@example.com\nx", false, MsgEmailInvalid},
		{" test@example.com", false, MsgEmailInvalid},
		{"@", false, MsgEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := ValidateEmail(tt.email)
			assert.Equal(t, tt.isValid, got.IsValid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestEmailValidator_MatchesFunction(t *testing.T) {
	var v Validator = EmailValidator{}
	for _, in := range []string{"", "a@b.co", "nope"} {
		assert.Equal(t, ValidateEmail(in), v.Validate(in))
	}
}

func TestValidateEmail_Idempotent(t *testing.T) {
	for _, in := range []string{"test@example.com", "invalid@domain", ""} {
		assert.Equal(t, ValidateEmail(in), ValidateEmail(in))
	}
}
