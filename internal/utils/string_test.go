package utils

import "testing"

func TestIsASCIIDigits(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"44", true, "Plain digits"},
		{"007", true, "Leading zeros"},
		{"1", true, "Single digit"},
		{"", false, "Empty string"},
		{"44a", false, "Trailing letter"},
		{"4 4", false, "Interior space"},
		{"-44", false, "Sign"},
		{"4.4", false, "Decimal point"},
		{"٤٤", false, "Arabic-Indic digits"},
	}

	for _, tc := range testCases {
		if got := IsASCIIDigits(tc.input); got != tc.expected {
			t.Errorf("%s: IsASCIIDigits(%q) = %v, want %v", tc.description, tc.input, got, tc.expected)
		}
	}
}
