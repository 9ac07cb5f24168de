package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextScanTime(t *testing.T) {
	ref := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		freq     ScanFrequency
		expected time.Time
	}{
		{
			name:     "hourly adds one hour",
			freq:     FrequencyHourly,
			expected: time.Date(2025, 3, 15, 11, 30, 0, 0, time.UTC),
		},
		{
			name:     "daily adds one day",
			freq:     FrequencyDaily,
			expected: time.Date(2025, 3, 16, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "weekly adds seven days",
			freq:     FrequencyWeekly,
			expected: time.Date(2025, 3, 22, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "monthly adds one calendar month",
			freq:     FrequencyMonthly,
			expected: time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "unknown frequency falls back to daily",
			freq:     ScanFrequency("fortnightly"),
			expected: time.Date(2025, 3, 16, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "empty frequency falls back to daily",
			freq:     ScanFrequency(""),
			expected: time.Date(2025, 3, 16, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextScanTime(tt.freq, ref))
			// deterministic under repeated identical input
			assert.Equal(t, NextScanTime(tt.freq, ref), NextScanTime(tt.freq, ref))
		})
	}
}

func TestNextScanTime_MonthlyEndOfMonth(t *testing.T) {
	// Jan 31 + 1 month normalizes into early March, same as time.AddDate
	ref := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), NextScanTime(FrequencyMonthly, ref))
}

func TestWebsite_DisplayName(t *testing.T) {
	w := &Website{URL: "https://example.com", Name: "Example"}
	assert.Equal(t, "Example", w.DisplayName())

	w.Name = ""
	assert.Equal(t, "https://example.com", w.DisplayName())
}
