package domain

import "testing"

func TestRRTypeString(t *testing.T) {
	tests := []struct {
		input    RRType
		expected string
	}{
		{RRTypeA, "A"},
		{RRTypeNS, "NS"},
		{RRTypeAAAA, "AAAA"},
		{RRType(16), "TYPE16"},
		{RRType(257), "TYPE257"},
	}
	for _, tt := range tests {
		if got := tt.input.String(); got != tt.expected {
			t.Errorf("RRType(%d).String() = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRRTypeIsAddress(t *testing.T) {
	if !RRTypeA.IsAddress() || !RRTypeAAAA.IsAddress() {
		t.Error("A and AAAA must be address types")
	}
	if RRTypeNS.IsAddress() {
		t.Error("NS must not be an address type")
	}
}

func TestRRTypeIsQueryable(t *testing.T) {
	if !RRTypeA.IsQueryable() || !RRTypeAAAA.IsQueryable() {
		t.Error("A and AAAA must be queryable")
	}
	if RRTypeNS.IsQueryable() {
		t.Error("NS must not be queryable")
	}
}

func TestRRTypeFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected RRType
	}{
		{"A", RRTypeA},
		{"NS", RRTypeNS},
		{"AAAA", RRTypeAAAA},
		{"MX", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RRTypeFromString(tt.input); got != tt.expected {
			t.Errorf("RRTypeFromString(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
