package models

import "testing"

func TestParseQuality(t *testing.T) {
	testCases := []struct {
		input    string
		expected Quality
		ok       bool
	}{
		{"high", QualityHigh, true},
		{"low", QualityLow, true},
		{"HIGH", QualityHigh, true},
		{"Low", QualityLow, true},
		{"best", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseQuality(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseQuality(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if got != tc.expected {
				t.Fatalf("ParseQuality(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
