package sku

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestExtractTierSize tests reading the size out of SKU names
func TestExtractTierSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSize int
		wantOK   bool
	}{
		{name: "canonical", input: "F64", wantSize: 64, wantOK: true},
		{name: "lower case", input: "f2048", wantSize: 2048, wantOK: true},
		{name: "surrounding whitespace", input: "  F32 ", wantSize: 32, wantOK: true},
		{name: "space after prefix", input: "F 128", wantSize: 128, wantOK: true},
		{name: "zero parses", input: "F0", wantSize: 0, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "garbage", wantOK: false},
		{name: "missing number", input: "F", wantOK: false},
		{name: "suffix", input: "F64x", wantOK: false},
		{name: "other prefix", input: "P1", wantOK: false},
		{name: "negative", input: "F-8", wantOK: false},
		{name: "overflow", input: "F99999999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := ExtractTierSize(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractTierSize(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && size != tt.wantSize {
				t.Errorf("ExtractTierSize(%q) = %d, want %d", tt.input, size, tt.wantSize)
			}
		})
	}
}

// TestCatalogNormalize tests canonical spelling and the default fallback
func TestCatalogNormalize(t *testing.T) {
	c := DefaultCatalog()

	if got := c.Default(); got != "F2" {
		t.Fatalf("Default() = %q, want F2", got)
	}

	tests := map[string]string{
		"F64":    "F64",
		" f128 ": "F128",
		"F 8":    "F8",
		"F48":    "F2",
		"bogus":  "F2",
		"":       "F2",
	}
	for in, want := range tests {
		if got := c.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}

	if !c.Contains("f2048") {
		t.Error("catalog should contain f2048")
	}
	if c.Contains("F3") {
		t.Error("catalog should not contain F3")
	}
	if n := len(c.Names()); n != len(DefaultNames) {
		t.Errorf("Names() has %d entries, want %d", n, len(DefaultNames))
	}
}

// TestNewCatalogValidation tests rejected catalogs
func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name       string
		names      []string
		defaultSKU string
		wantErr    bool
	}{
		{name: "valid", names: []string{"F8", "F64"}, wantErr: false},
		{name: "valid with default", names: []string{"F8", "F64"}, defaultSKU: "f64", wantErr: false},
		{name: "empty", names: nil, wantErr: true},
		{name: "unparseable", names: []string{"F8", "X"}, wantErr: true},
		{name: "zero size", names: []string{"F0"}, wantErr: true},
		{name: "duplicate", names: []string{"F8", "f8"}, wantErr: true},
		{name: "default not listed", names: []string{"F8"}, defaultSKU: "F64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.names, tt.defaultSKU)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	c, err := NewCatalog([]string{"F8", "F64"}, "f64")
	if err != nil {
		t.Fatal(err)
	}
	if c.Normalize("nope") != "F64" {
		t.Errorf("fallback = %q, want F64", c.Normalize("nope"))
	}
}

// TestReferencePrices tests the reference table and reservation discount
func TestReferencePrices(t *testing.T) {
	refs := ReferencePrices()
	if len(refs) != 6 {
		t.Fatalf("expected 6 reference SKUs, got %d", len(refs))
	}

	f8, ok := LookupReference("f8")
	if !ok {
		t.Fatal("F8 should have a reference price")
	}
	if !f8.Price(false).Equal(decimal.NewFromInt(1285)) {
		t.Errorf("F8 list price = %s, want 1285", f8.Price(false))
	}
	if !f8.Price(true).Equal(decimal.NewFromInt(764)) {
		t.Errorf("F8 reserved price = %s, want 764", f8.Price(true))
	}
	if got := f8.ReservationDiscount(); got != 41 {
		t.Errorf("F8 reservation discount = %d, want 41", got)
	}

	if _, ok := LookupReference("F2"); ok {
		t.Error("F2 has no reference price")
	}
	if _, ok := LookupReference("junk"); ok {
		t.Error("junk has no reference price")
	}
}
