package format

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

// TestMoney tests grouping, precision and signs
func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole", amount: "4620", want: "€4,620"},
		{name: "large", amount: "1234567", want: "€1,234,567"},
		{name: "fraction", amount: "2640.5", want: "€2,640.5"},
		{name: "rounded to cents", amount: "0.126", want: "€0.13"},
		{name: "zero", amount: "0", want: "€0"},
		{name: "negative", amount: "-580", want: "-€580"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Money("€", decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("Money(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}

	if got := SignedMoney("€", decimal.NewFromInt(1560)); got != "+€1,560" {
		t.Errorf("SignedMoney(1560) = %q", got)
	}
	if got := SignedMoney("€", decimal.NewFromInt(-580)); got != "-€580" {
		t.Errorf("SignedMoney(-580) = %q", got)
	}
	if got := Rounded("$", decimal.RequireFromString("10277.6")); got != "$10,278" {
		t.Errorf("Rounded = %q", got)
	}
}

// TestFloatNonFinite tests the placeholder for values that cannot be shown
func TestFloatNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Float(f); got != Missing {
			t.Errorf("Float(%v) = %q, want %q", f, got, Missing)
		}
	}
}

// TestParseAmount tests coercion of raw cost input
func TestParseAmount(t *testing.T) {
	tests := map[string]string{
		"":        "0",
		"  ":      "0",
		"14":      "14",
		" 5280 ":  "5280",
		"2640.50": "2640.5",
		"-3":      "0",
		"abc":     "0",
		"1,000":   "0",
	}
	for in, want := range tests {
		got := ParseAmount(in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
}

// TestParseCount tests coercion of raw head counts
func TestParseCount(t *testing.T) {
	tests := map[string]int64{
		"":     0,
		"300":  300,
		" 25 ": 25,
		"12.9": 12,
		"-4":   0,
		"x":    0,
	}
	for in, want := range tests {
		if got := ParseCount(in); got != want {
			t.Errorf("ParseCount(%q) = %d, want %d", in, got, want)
		}
	}
}
