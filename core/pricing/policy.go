// Package pricing is the capacity pricing engine.
// It turns a scenario and a list of capacity tiers into per-tier monthly
// costs and an all-license baseline. Every function here is pure.
package pricing

import (
	"github.com/shopspring/decimal"

	"capacity-cost/core/sku"
)

// Default policy bounds
const (
	DefaultFreeViewerThreshold = 64
	DefaultChargedViewerMax    = 32
)

// Policy decides whether viewers need a license on a given tier.
//
// Tiers of FreeViewerThreshold and up let viewers in for free. Tiers from 1
// to ChargedViewerMax charge every viewer the per-user license. Anything
// else, including names that cannot be parsed, is charged as well: an
// unknown SKU must never make viewers free.
type Policy struct {
	FreeViewerThreshold int `json:"free_viewer_threshold"`
	ChargedViewerMax    int `json:"charged_viewer_max"`
}

// DefaultPolicy returns the 64/32 policy
func DefaultPolicy() Policy {
	return Policy{
		FreeViewerThreshold: DefaultFreeViewerThreshold,
		ChargedViewerMax:    DefaultChargedViewerMax,
	}
}

// ViewerUnitCost returns the per-viewer cost on the named tier
func (p Policy) ViewerUnitCost(skuName string, licenseCost decimal.Decimal) decimal.Decimal {
	if p.Classify(skuName) == BandFree {
		return decimal.Zero
	}
	return licenseCost
}

// Band classifies a tier under the policy
type Band string

const (
	// BandFree tiers waive viewer licenses
	BandFree Band = "free"

	// BandCharged tiers charge every viewer
	BandCharged Band = "charged"

	// BandUnknown covers unparseable names and sizes outside both ranges.
	// They are charged.
	BandUnknown Band = "unknown"
)

// Classify returns the band the named tier falls into
func (p Policy) Classify(skuName string) Band {
	size, ok := sku.ExtractTierSize(skuName)
	switch {
	case !ok:
		return BandUnknown
	case size >= p.FreeViewerThreshold:
		return BandFree
	case size >= 1 && size <= p.ChargedViewerMax:
		return BandCharged
	default:
		return BandUnknown
	}
}

// FreeViewers reports whether the named tier waives viewer licenses
func (p Policy) FreeViewers(skuName string) bool {
	return p.Classify(skuName) == BandFree
}

// ViewerUnitCost applies the default policy
func ViewerUnitCost(skuName string, licenseCost decimal.Decimal) decimal.Decimal {
	return DefaultPolicy().ViewerUnitCost(skuName, licenseCost)
}
