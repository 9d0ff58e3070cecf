package cli

import (
	"testing"
	"time"

	"timeclock/internal/timeengine"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{"explicit date", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"today", "today", timeengine.StartOfDay(time.Now()), false},
		{"empty defaults to today", "", timeengine.StartOfDay(time.Now()), false},
		{"yesterday", "yesterday", timeengine.StartOfDay(time.Now()).AddDate(0, 0, -1), false},
		{"garbage", "10/03/2025", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) expected error, got %v", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{105, "1h 45m"},
		{480, "8h 0m"},
		{1440, "24h 0m"},
	}

	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.expected {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.expected)
		}
	}
}
