package validation

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"500000", 500000},
		{" 7.5 ", 7.5},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-3", -3},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1", 1, true},
		{"0", 0, true},
		{"  2.25", 2.25, true},
		{"", 0, false},
		{"   ", 0, false},
		{"ten", 0, false},
		{"+Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ParseQuantity(%q) = (%v, %v), expected (%v, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"20", 20},
		{"20.9", 20},
		{"0", 0},
		{"-5", 0},
		{"", 0},
		{"twenty", 0},
		{"1e12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCount(tt.input); got != tt.expected {
				t.Errorf("ParseCount(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
