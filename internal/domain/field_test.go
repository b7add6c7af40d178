package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"email", FieldEmail},
		{"Email", FieldEmail},
		{"phone", FieldPhone},
		{"phoneNumber", FieldPhone},
		{" PHONE ", FieldPhone},
	}

	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if err != nil {
			t.Fatalf("ParseField(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseField(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("address")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestParseField_Blank(t *testing.T) {
	for _, in := range []string{"", "  "} {
		if _, err := ParseField(in); !IsValidation(err) {
			t.Errorf("ParseField(%q): expected validation error, got %v", in, err)
		}
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewValidationError("bad"))
	if KindOf(err) != ErrorKindValidation {
		t.Errorf("expected validation kind, got %s", KindOf(err))
	}
	if KindOf(errors.New("plain")) != ErrorKindUnknown {
		t.Error("expected unknown kind for plain errors")
	}
	if ErrorKindNotFound.String() != "NOT_FOUND" {
		t.Errorf("unexpected kind string %s", ErrorKindNotFound)
	}
}
