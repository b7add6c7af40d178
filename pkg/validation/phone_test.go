package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		isValid bool
		message string
	}{
		{"1234567890", true, MsgPhoneValid},
		{"123-456-7890", true, MsgPhoneValid},
		{"(123) 456-7890", true, MsgPhoneValid},
		{"123.456.7890", true, MsgPhoneValid},
		{"+1 123-456-7890", true, MsgPhoneValid},
		{"+11234567890", true, MsgPhoneValid},
		{"1-123-456-7890", true, MsgPhoneValid},
		{"11234567890", true, MsgPhoneValid},
		{"", false, MsgPhoneRequired},
		{" ", false, MsgPhoneRequired},
		{"123abc4567", false, MsgPhoneInvalid},
		{"abc", false, MsgPhoneInvalid},
		{"invalid", false, MsgPhoneInvalid},
		{"123-456-789O", false, MsgPhoneInvalid},
		{"123", false, MsgPhoneDigitLength},
		{"123456", false, MsgPhoneDigitLength},
		{"21234567890", false, MsgPhoneDigitLength},
		{"22345678901", false, MsgPhoneDigitLength},
		{"123456789012", false, MsgPhoneDigitLength},
		{"---", false, MsgPhoneDigitLength},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			got := ValidatePhone(tt.phone)
			assert.Equal(t, tt.isValid, got.IsValid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestValidatePhone_SeparatorInvariance(t *testing.T) {
	formats := []string{
		"5551234567",
		"555 123 4567",
		"555.123.4567",
		"555-123-4567",
		"(555) 123-4567",
		"(555)123-4567",
		"+1 555-123-4567",
		"+1 (555) 123 4567",
	}

	want := ValidatePhone(formats[0])
	assert.True(t, want.IsValid)
	for _, f := range formats[1:] {
		assert.Equal(t, want, ValidatePhone(f), f)
	}
}

func TestValidatePhone_Idempotent(t *testing.T) {
	for _, in := range []string{"(123) 456-7890", "123abc4567", "123", ""} {
		assert.Equal(t, ValidatePhone(in), ValidatePhone(in))
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11234567890", DigitsOnly("+1 (123) 456-7890"))
	assert.Equal(t, "", DigitsOnly("()-. +"))
	assert.Equal(t, "2", DigitsOnly("４2"))
}

func TestPhoneValidator_MatchesFunction(t *testing.T) {
	var v Validator = PhoneValidator{}
	for _, in := range []string{"", "1234567890", "12ab"} {
		assert.Equal(t, ValidatePhone(in), v.Validate(in))
	}
}
