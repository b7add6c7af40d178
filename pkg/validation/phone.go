package validation

import "strings"

const (
	usNumberDigits = 10
	usCountryCode  = '1'
)

type PhoneValidator struct{}

func (PhoneValidator) Validate(phoneNumber string) ValidationResult {
	return ValidatePhone(phoneNumber)
}

// ValidatePhone classifies a US phone number in three stages: presence,
// letters, then digit count. Letters are checked before the digit count so
// "123abc4567" reports a format error rather than a length error.
//
// Separators (spaces, dots, dashes, parentheses, a leading "+1") are dropped
// before counting digits. An 11 digit number is accepted only when it starts
// with the US country code.
func ValidatePhone(phoneNumber string) ValidationResult {
	if strings.TrimSpace(phoneNumber) == "" {
		return invalid(MsgPhoneRequired)
	}

	if containsLetter(phoneNumber) {
		return invalid(MsgPhoneInvalid)
	}

	digits := DigitsOnly(phoneNumber)
	if len(digits) == usNumberDigits+1 {
		if digits[0] != usCountryCode {
			return invalid(MsgPhoneDigitLength)
		}
		digits = digits[1:]
	}

	if len(digits) != usNumberDigits {
		return invalid(MsgPhoneDigitLength)
	}

	return valid(MsgPhoneValid)
}

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

func containsLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20 // fold to lower case
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
