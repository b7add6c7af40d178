package domain

import "strings"

// Field names a customer contact field that can be validated.
type Field string

const (
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

var fieldAliases = map[string]Field{
	"email":       FieldEmail,
	"phone":       FieldPhone,
	"phonenumber": FieldPhone,
}

// ParseField resolves a path segment such as "Email" or "phoneNumber". A
// blank name is a validation error, an unknown one is not found.
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", NewValidationError("field name is required")
	}
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	return "", NewNotFoundError("unknown field: " + s)
}

func (f Field) String() string {
	return string(f)
}
