package sku

import (
	"github.com/shopspring/decimal"

	"capacity-cost/core/types"
)

// Reference is a published list price for one SKU, used by the license
// impact analysis when the user has not entered their own capacity prices.
type Reference struct {
	SKU          string          `json:"sku"`
	ComputeUnits int             `json:"compute_units"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	ReservedCost decimal.Decimal `json:"reserved_cost"`
	Currency     types.Currency  `json:"currency"`
}

// Price returns the reserved or pay-as-you-go monthly price
func (r Reference) Price(reserved bool) decimal.Decimal {
	if reserved {
		return r.ReservedCost
	}
	return r.MonthlyCost
}

// ReservationDiscount returns the reservation saving in whole percent
func (r Reference) ReservationDiscount() int64 {
	if r.MonthlyCost.IsZero() {
		return 0
	}
	off := r.MonthlyCost.Sub(r.ReservedCost).Div(r.MonthlyCost).Mul(decimal.NewFromInt(100))
	return off.Round(0).IntPart()
}

// ReferencePrices returns USD list prices for the mid-range SKUs
func ReferencePrices() []Reference {
	ref := func(size int, monthly, reserved int64) Reference {
		return Reference{
			SKU:          Canonical(size),
			ComputeUnits: size,
			MonthlyCost:  decimal.NewFromInt(monthly),
			ReservedCost: decimal.NewFromInt(reserved),
			Currency:     types.CurrencyUSD,
		}
	}
	return []Reference{
		ref(8, 1285, 764),
		ref(16, 2570, 1528),
		ref(32, 5139, 3056),
		ref(64, 10278, 6112),
		ref(128, 20557, 12224),
		ref(256, 41114, 24448),
	}
}

// LookupReference finds the reference price for a SKU name
func LookupReference(name string) (Reference, bool) {
	size, ok := ExtractTierSize(name)
	if !ok {
		return Reference{}, false
	}
	for _, r := range ReferencePrices() {
		if r.ComputeUnits == size {
			return r, true
		}
	}
	return Reference{}, false
}
