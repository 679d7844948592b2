package comparison

import (
	"testing"

	"capacity-cost/core/pricing"
	"capacity-cost/core/sku"
)

// TestBuildImpactTable tests baselines, rows and savings
func TestBuildImpactTable(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())
	table := BuildImpactTable(engine, ImpactInput{
		Viewers:  500,
		Builders: 40,
		ProCost:  DefaultProCost,
		PPUCost:  DefaultPPUCost,
	})

	if table.ProOnly == nil || table.PPUOnly == nil {
		t.Fatal("both baselines should be visible")
	}
	if !table.ProOnly.Total.Equal(d(7560)) {
		t.Errorf("Pro only = %s, want 7560", table.ProOnly.Total)
	}
	if !table.PPUOnly.Total.Equal(d(12960)) {
		t.Errorf("PPU only = %s, want 12960", table.PPUOnly.Total)
	}
	if !table.ProOnly.VsOther.Cheaper || table.PPUOnly.VsOther.Cheaper {
		t.Error("Pro only should be the cheaper baseline")
	}
	if !table.ProOnly.VsOther.Amount.Equal(d(5400)) {
		t.Errorf("baseline gap = %s, want 5400", table.ProOnly.VsOther.Amount)
	}

	if len(table.Rows) != len(sku.ReferencePrices()) {
		t.Fatalf("expected %d rows, got %d", len(sku.ReferencePrices()), len(table.Rows))
	}

	f8 := table.Rows[0]
	if f8.SKU != "F8" || f8.Policy != PolicyLicensedViewers {
		t.Errorf("first row = %s/%s", f8.SKU, f8.Policy)
	}
	// 1285 + 40*14 + 500*14
	if !f8.Total.Equal(d(8845)) {
		t.Errorf("F8 total = %s, want 8845", f8.Total)
	}
	if f8.VsPro == nil || f8.VsPro.Cheaper {
		t.Errorf("F8 should cost more than Pro only: %+v", f8.VsPro)
	}
	if f8.VsPro.Percent != -17 {
		t.Errorf("F8 vs Pro percent = %d, want -17", f8.VsPro.Percent)
	}

	f64 := table.Rows[3]
	if f64.SKU != "F64" || f64.Policy != PolicyFreeViewers {
		t.Errorf("fourth row = %s/%s", f64.SKU, f64.Policy)
	}
	// 10278 + 40*14
	if !f64.Total.Equal(d(10838)) {
		t.Errorf("F64 total = %s, want 10838", f64.Total)
	}
	if !f64.VsPPU.Cheaper || !f64.VsPPU.Amount.Equal(d(2122)) {
		t.Errorf("F64 vs PPU = %+v, want a saving of 2122", f64.VsPPU)
	}
	if f64.VsPPU.Percent != 16 {
		t.Errorf("F64 vs PPU percent = %d, want 16", f64.VsPPU.Percent)
	}
	if f64.ReservationDiscount != 0 {
		t.Error("discount is only reported for reserved pricing")
	}
}

// TestBuildImpactTableReserved tests reservation pricing
func TestBuildImpactTableReserved(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())
	table := BuildImpactTable(engine, ImpactInput{
		Viewers:  10,
		Builders: 2,
		ProCost:  DefaultProCost,
		PPUCost:  DefaultPPUCost,
		Reserved: true,
	})

	f8 := table.Rows[0]
	if !f8.CapacityCost.Equal(d(764)) {
		t.Errorf("reserved F8 = %s, want 764", f8.CapacityCost)
	}
	if !f8.ListCost.Equal(d(1285)) {
		t.Errorf("F8 list = %s, want 1285", f8.ListCost)
	}
	if f8.ReservationDiscount != 41 {
		t.Errorf("F8 discount = %d, want 41", f8.ReservationDiscount)
	}
}

// TestBuildImpactTableHiddenAndEmpty tests hidden baselines and zero users
func TestBuildImpactTableHiddenAndEmpty(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())

	hidden := BuildImpactTable(engine, ImpactInput{
		Viewers:  100,
		Builders: 10,
		ProCost:  DefaultProCost,
		PPUCost:  DefaultPPUCost,
		HidePPU:  true,
	})
	if hidden.PPUOnly != nil {
		t.Error("PPU baseline should be hidden")
	}
	if hidden.ProOnly == nil || hidden.ProOnly.VsOther != nil {
		t.Error("Pro baseline should be shown without a gap")
	}
	for _, row := range hidden.Rows {
		if row.VsPPU != nil {
			t.Errorf("%s has savings against a hidden baseline", row.SKU)
		}
		if row.VsPro == nil {
			t.Errorf("%s is missing savings against Pro", row.SKU)
		}
	}

	empty := BuildImpactTable(engine, ImpactInput{ProCost: DefaultProCost, PPUCost: DefaultPPUCost})
	for _, row := range empty.Rows {
		if row.VsPro != nil || row.VsPPU != nil {
			t.Errorf("%s has savings with no users", row.SKU)
		}
		if !row.Total.Equal(row.CapacityCost) {
			t.Errorf("%s total = %s, want capacity only", row.SKU, row.Total)
		}
	}
}

// TestSavingsPercentRounding tests that half percents round up
func TestSavingsPercentRounding(t *testing.T) {
	tests := []struct {
		name     string
		baseline int64
		total    int64
		want     int64
	}{
		{name: "negative half rounds up", baseline: 200, total: 205, want: -2},
		{name: "positive half rounds up", baseline: 200, total: 195, want: 3},
		{name: "below half rounds down", baseline: 1000, total: 1024, want: -2},
		{name: "above half rounds away", baseline: 1000, total: 1026, want: -3},
		{name: "exact", baseline: 100, total: 90, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := savings(d(tt.baseline), d(tt.total))
			if got.Percent != tt.want {
				t.Errorf("savings(%d, %d).Percent = %d, want %d", tt.baseline, tt.total, got.Percent, tt.want)
			}
		})
	}

	if got := savings(d(0), d(50)); got.Percent != 0 || got.Cheaper {
		t.Errorf("zero baseline = %+v, want 0%% and not cheaper", got)
	}
}
