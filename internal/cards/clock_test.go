package cards

import (
	"testing"
	"time"
)

func TestFormatISO(t *testing.T) {
	t.Run("fixed-width UTC with milliseconds", func(t *testing.T) {
		ts := time.Date(2024, 1, 15, 10, 30, 0, 7_000_000, time.UTC)
		if got := FormatISO(ts); got != "2024-01-15T10:30:00.007Z" {
			t.Errorf("FormatISO() = %v, want 2024-01-15T10:30:00.007Z", got)
		}
	})

	t.Run("converts to UTC", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		ts := time.Date(2024, 1, 15, 11, 30, 0, 0, loc)
		if got := FormatISO(ts); got != "2024-01-15T10:30:00.000Z" {
			t.Errorf("FormatISO() = %v, want 2024-01-15T10:30:00.000Z", got)
		}
	})
}

func TestParseISO(t *testing.T) {
	t.Run("round-trips the canonical layout", func(t *testing.T) {
		ts, err := ParseISO("2024-01-15T10:30:00.250Z")
		if err != nil {
			t.Fatalf("ParseISO() error = %v", err)
		}
		if FormatISO(ts) != "2024-01-15T10:30:00.250Z" {
			t.Errorf("round-trip = %v", FormatISO(ts))
		}
	})

	t.Run("accepts RFC3339 without milliseconds", func(t *testing.T) {
		ts, err := ParseISO("2024-01-15T10:30:00Z")
		if err != nil {
			t.Fatalf("ParseISO() error = %v", err)
		}
		if FormatISO(ts) != "2024-01-15T10:30:00.000Z" {
			t.Errorf("normalized = %v, want 2024-01-15T10:30:00.000Z", FormatISO(ts))
		}
	})

	t.Run("accepts an offset and normalizes to UTC", func(t *testing.T) {
		ts, err := ParseISO("2024-01-15T11:30:00+01:00")
		if err != nil {
			t.Fatalf("ParseISO() error = %v", err)
		}
		if FormatISO(ts) != "2024-01-15T10:30:00.000Z" {
			t.Errorf("normalized = %v, want 2024-01-15T10:30:00.000Z", FormatISO(ts))
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseISO("yesterday"); err == nil {
			t.Error("ParseISO(yesterday) expected error")
		}
	})
}

func TestMaxISO(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"later second argument", "2024-01-01T00:00:00.000Z", "2024-01-02T00:00:00.000Z", "2024-01-02T00:00:00.000Z"},
		{"later first argument", "2024-01-05T00:00:00.000Z", "2024-01-02T00:00:00.000Z", "2024-01-05T00:00:00.000Z"},
		{"equal", "2024-01-01T00:00:00.000Z", "2024-01-01T00:00:00.000Z", "2024-01-01T00:00:00.000Z"},
		{"empty first argument", "", "2024-01-01T00:00:00.000Z", "2024-01-01T00:00:00.000Z"},
		{"empty second argument", "2024-01-01T00:00:00.000Z", "", "2024-01-01T00:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxISO(tt.a, tt.b); got != tt.want {
				t.Errorf("MaxISO(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
