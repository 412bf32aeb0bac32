package common

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"100", 100},
		{"100B", 100},
		{"1k", KB},
		{"1KB", KB},
		{"1.5k", int64(1.5 * float64(KB))},
		{"500m", 500 * MB},
		{"1g", GB},
		{"2GB", 2 * GB},
		{"1t", TB},
		{"  100  ", 100},
		{"10 m", 10 * MB},
		{" 1 g ", GB},
	}

	for _, tt := range tests {
		result, err := ParseSize(tt.input)
		if err != nil {
			t.Errorf("ParseSize(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestParseSize_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"-10",
		"10x",
		"10 xyz",
		"m10",
		"1.2.3k",
	}

	for _, tt := range tests {
		_, err := ParseSize(tt)
		if err == nil {
			t.Errorf("ParseSize(%q) should return error", tt)
		}
	}
}
