package entity

import "testing"

func TestNewRequestID(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()

	if a.IsZero() || b.IsZero() {
		t.Fatal("expected non zero ids")
	}
	if a == b {
		t.Error("expected distinct ids")
	}
	if len(a.String()) != 26 {
		t.Errorf("expected 26 char ULID, got %q", a.String())
	}
}

func TestParseRequestID(t *testing.T) {
	id := NewRequestID()

	parsed, err := ParseRequestID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Errorf("expected %s, got %s", id, parsed)
	}

	if _, err := ParseRequestID("not-a-ulid"); err == nil {
		t.Error("expected parse error")
	}
}
