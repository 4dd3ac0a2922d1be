package normalize

import "testing"

func TestStandardizeCCN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already canonical", "675123", "675123"},
		{"leading zeros dropped by source", "5123", "005123"},
		{"single digit", "7", "000007"},
		{"separators stripped", "67-5123", "675123"},
		{"surrounding whitespace", "  675123  ", "675123"},
		{"alphanumeric swing-bed style", "67Z123", "67Z123"},
		{"empty input", "", ""},
		{"only separators", "--  --", ""},
		{"over-long input truncated", "6751234", "675123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StandardizeCCN(tt.input); got != tt.expected {
				t.Errorf("StandardizeCCN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStateRegionFromCCN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"texas prefix", "675123", "67"},
		{"padded ccn", "005123", "00"},
		{"too short", "6", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateRegionFromCCN(tt.input); got != tt.expected {
				t.Errorf("StateRegionFromCCN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
