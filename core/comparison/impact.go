package comparison

import (
	"github.com/shopspring/decimal"

	"capacity-cost/core/pricing"
	"capacity-cost/core/sku"
)

// Default license prices for the impact analysis
var (
	DefaultProCost = decimal.NewFromInt(14)
	DefaultPPUCost = decimal.NewFromInt(24)
)

// Baseline names in the impact table
const (
	BaselinePro = "Pro only"
	BaselinePPU = "PPU only"
)

// ImpactInput describes a license impact analysis: a head count priced
// against the reference SKUs and against two all-license baselines.
type ImpactInput struct {
	Viewers  int64
	Builders int64

	// ProCost is the standard per-user license, also used for builders and
	// charged viewers on capacity tiers
	ProCost decimal.Decimal

	// PPUCost is the premium per-user license
	PPUCost decimal.Decimal

	// Reserved prices capacities at their reservation rate
	Reserved bool

	HidePro bool
	HidePPU bool

	// References defaults to sku.ReferencePrices when nil
	References []sku.Reference
}

// Gap compares one baseline with the other
type Gap struct {
	Amount  decimal.Decimal `json:"amount"`
	Cheaper bool            `json:"cheaper"`
}

// Savings is a capacity row measured against a baseline
type Savings struct {
	// Amount is baseline minus row total; positive means the row saves money
	Amount  decimal.Decimal `json:"amount"`
	Percent int64           `json:"percent"`
	Cheaper bool            `json:"cheaper"`
}

// BaselineRow is an all-license option
type BaselineRow struct {
	Name        string          `json:"name"`
	Policy      string          `json:"policy"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	BuilderCost decimal.Decimal `json:"builder_cost"`
	ViewerCost  decimal.Decimal `json:"viewer_cost"`
	Total       decimal.Decimal `json:"total"`

	// VsOther is set when both baselines are visible
	VsOther *Gap `json:"vs_other,omitempty"`
}

// ImpactRow is one reference SKU
type ImpactRow struct {
	SKU                 string          `json:"sku"`
	Policy              string          `json:"policy"`
	CapacityCost        decimal.Decimal `json:"capacity_cost"`
	ListCost            decimal.Decimal `json:"list_cost"`
	ReservationDiscount int64           `json:"reservation_discount,omitempty"`
	BuilderCost         decimal.Decimal `json:"builder_cost"`
	ViewerCost          decimal.Decimal `json:"viewer_cost"`
	Total               decimal.Decimal `json:"total"`

	// VsPro and VsPPU are nil when the baseline is hidden or nobody is licensed
	VsPro *Savings `json:"vs_pro,omitempty"`
	VsPPU *Savings `json:"vs_ppu,omitempty"`
}

// ImpactTable is the full license impact analysis
type ImpactTable struct {
	Viewers  int64        `json:"viewers"`
	Builders int64        `json:"builders"`
	Reserved bool         `json:"reserved"`
	ProOnly  *BaselineRow `json:"pro_only,omitempty"`
	PPUOnly  *BaselineRow `json:"ppu_only,omitempty"`
	Rows     []ImpactRow  `json:"rows"`
}

// BuildImpactTable prices every reference SKU against the baselines. The
// viewer policy comes from the engine, so it always agrees with the main
// comparison.
func BuildImpactTable(engine *pricing.Engine, in ImpactInput) ImpactTable {
	refs := in.References
	if refs == nil {
		refs = sku.ReferencePrices()
	}

	viewers := decimal.NewFromInt(in.Viewers)
	builders := decimal.NewFromInt(in.Builders)
	users := decimal.NewFromInt(in.Viewers + in.Builders)

	pro := baselineRow(BaselinePro, "All users have Pro", in.ProCost, viewers, builders)
	ppu := baselineRow(BaselinePPU, "All users need PPU", in.PPUCost, viewers, builders)

	table := ImpactTable{
		Viewers:  in.Viewers,
		Builders: in.Builders,
		Reserved: in.Reserved,
		Rows:     make([]ImpactRow, 0, len(refs)),
	}
	if !in.HidePro {
		table.ProOnly = &pro
	}
	if !in.HidePPU {
		table.PPUOnly = &ppu
	}
	if table.ProOnly != nil && table.PPUOnly != nil {
		table.ProOnly.VsOther = gap(pro.Total, ppu.Total)
		table.PPUOnly.VsOther = gap(ppu.Total, pro.Total)
	}

	hasUsers := users.IsPositive()
	policy := engine.Policy()
	for _, ref := range refs {
		capacity := ref.Price(in.Reserved)
		builderCost := builders.Mul(in.ProCost)
		viewerCost := viewers.Mul(policy.ViewerUnitCost(ref.SKU, in.ProCost))
		total := capacity.Add(builderCost).Add(viewerCost)

		row := ImpactRow{
			SKU:          ref.SKU,
			Policy:       PolicyLicensedViewers,
			CapacityCost: capacity,
			ListCost:     ref.MonthlyCost,
			BuilderCost:  builderCost,
			ViewerCost:   viewerCost,
			Total:        total,
		}
		if policy.FreeViewers(ref.SKU) {
			row.Policy = PolicyFreeViewers
		}
		if in.Reserved {
			row.ReservationDiscount = ref.ReservationDiscount()
		}
		if hasUsers && table.ProOnly != nil {
			row.VsPro = savings(pro.Total, total)
		}
		if hasUsers && table.PPUOnly != nil {
			row.VsPPU = savings(ppu.Total, total)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func baselineRow(name, policy string, unit, viewers, builders decimal.Decimal) BaselineRow {
	b := builders.Mul(unit)
	v := viewers.Mul(unit)
	return BaselineRow{
		Name:        name,
		Policy:      policy,
		UnitCost:    unit,
		BuilderCost: b,
		ViewerCost:  v,
		Total:       b.Add(v),
	}
}

func gap(self, other decimal.Decimal) *Gap {
	return &Gap{
		Amount:  self.Sub(other).Abs(),
		Cheaper: self.LessThan(other),
	}
}

func savings(baseline, total decimal.Decimal) *Savings {
	amount := baseline.Sub(total)
	s := &Savings{
		Amount:  amount,
		Cheaper: amount.IsPositive(),
	}
	if !baseline.IsZero() {
		s.Percent = roundHalfUp(amount.Div(baseline).Mul(decimal.NewFromInt(100)))
	}
	return s
}

var half = decimal.NewFromFloat(0.5)

// roundHalfUp rounds to the nearest integer with halves going towards
// positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
