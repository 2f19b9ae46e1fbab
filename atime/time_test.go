package atime

import (
	"testing"
	"time"
)

func TestEnsureDateTime(t *testing.T) {
	a := time.Now()
	b := EnsureDateTime(a)
	if !b.Equal(a) {
		t.Fatalf("expected %v, got %v", a, b)
	}

	b = EnsureDateTime(&a)
	if !b.Equal(a) {
		t.Fatalf("expected %v, got %v", a, b)
	}

	var c *time.Time
	b = EnsureDateTime(c)
	if !b.IsZero() {
		t.Fatalf("expected zero time for nil *time.Time, got %v", b)
	}

	b = EnsureDateTime("not a time")
	if !b.IsZero() {
		t.Fatalf("expected zero time for a non-time input, got %v", b)
	}
}
