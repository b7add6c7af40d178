package validation

import (
	"regexp"
	"strings"
)

// local-part@domain.tld, the tld being at least two letters. A single
// trailing newline is accepted.
var emailRegex = regexp.MustCompile(`(?i)^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\n?$`)

type EmailValidator struct{}

func (EmailValidator) Validate(email string) ValidationResult {
	return ValidateEmail(email)
}

// ValidateEmail checks the syntactic shape of an email address. It does not
// resolve the domain.
func ValidateEmail(email string) ValidationResult {
	if strings.TrimSpace(email) == "" {
		return invalid(MsgEmailRequired)
	}

	if !emailRegex.MatchString(email) {
		return invalid(MsgEmailInvalid)
	}

	return valid(MsgEmailValid)
}
