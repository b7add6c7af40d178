package logger

import "strings"

// Redactor maps a field name to the mask applied to its string value.
// Values of other types pass through untouched.
type Redactor map[string]func(string) string

// ContactRedactor masks the contact fields written by the validation
// endpoints and trims user agents.
func ContactRedactor() Redactor {
	return Redactor{
		"email":        RedactEmail,
		"Email":        RedactEmail,
		"phone":        RedactPhone,
		"phone_number": RedactPhone,
		"PhoneNumber":  RedactPhone,
		"user_agent":   truncateUserAgent,
	}
}

func (r Redactor) apply(key string, value any) any {
	mask, ok := r[key]
	if !ok {
		return value
	}
	if s, isString := value.(string); isString {
		return mask(s)
	}
	return value
}

// RedactEmail keeps the first and last character of the local part and of
// the first domain label, plus the top level domain.
func RedactEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***.***"
	}

	labels := strings.Split(domain, ".")
	if len(labels) >= 2 {
		return maskMiddle(local) + "@" + maskMiddle(labels[0]) + "." + labels[len(labels)-1]
	}
	return maskMiddle(local) + "@" + maskMiddle(domain)
}

// RedactPhone keeps only the last four digits.
func RedactPhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) <= 4 {
		return "***"
	}
	return "***-" + string(digits[len(digits)-4:])
}

func maskMiddle(s string) string {
	if len(s) <= 2 {
		return "***"
	}
	return string(s[0]) + "***" + string(s[len(s)-1])
}

func truncateUserAgent(ua string) string {
	if len(ua) > 50 {
		return ua[:50] + "..."
	}
	return ua
}
