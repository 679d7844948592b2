// Package workspace holds the mutable inputs of a comparison: the scenario
// and the ordered list of capacity tiers. The front end owns a Workspace,
// mutates it on every input event and hands snapshots to the pricing
// engine. A Workspace is not safe for concurrent use.
package workspace

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"capacity-cost/core/format"
	"capacity-cost/core/pricing"
	"capacity-cost/core/sku"
	"capacity-cost/core/types"
	"capacity-cost/internal/config"
	"capacity-cost/internal/errors"
	"capacity-cost/internal/logging"
)

// Options configures a Workspace
type Options struct {
	// MaxTiers caps the tier list; non-positive means pricing.DefaultMaxTiers
	MaxTiers int

	// Catalog normalizes SKU names; nil means sku.DefaultCatalog
	Catalog *sku.Catalog

	// IDs assigns tier ids; nil means a fresh Sequence
	IDs IDSource

	// Logger defaults to a "workspace" child of the global logger
	Logger *zap.Logger
}

// Workspace is the caller-owned comparison state
type Workspace struct {
	scenario types.Scenario
	tiers    []types.CapacityTier
	maxTiers int
	catalog  *sku.Catalog
	ids      IDSource
	log      *zap.Logger
}

// New creates an empty workspace with the default currency
func New(opts Options) *Workspace {
	if opts.MaxTiers <= 0 {
		opts.MaxTiers = pricing.DefaultMaxTiers
	}
	if opts.Catalog == nil {
		opts.Catalog = sku.DefaultCatalog()
	}
	if opts.IDs == nil {
		opts.IDs = NewSequence()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Named("workspace")
	}
	w := &Workspace{
		maxTiers: opts.MaxTiers,
		catalog:  opts.Catalog,
		ids:      opts.IDs,
		log:      opts.Logger,
	}
	w.Reset()
	return w
}

// FromConfig builds a workspace from the application configuration
func FromConfig(cfg *config.Config) (*Workspace, error) {
	catalog, err := cfg.SKUCatalog()
	if err != nil {
		return nil, err
	}
	var ids IDSource
	if cfg.Workspace.IDScheme == config.IDSchemeUUID {
		ids = NewUUIDSource()
	}
	w := New(Options{
		MaxTiers: cfg.Engine.MaxTiers,
		Catalog:  catalog,
		IDs:      ids,
	})
	if cfg.Currency.Default != "" {
		w.SetCurrency(cfg.Currency.Default)
	}
	return w, nil
}

// Scenario returns the current scenario
func (w *Workspace) Scenario() types.Scenario {
	return w.scenario
}

// SetScenario replaces the scenario. Negative counts and costs become zero,
// the currency code is normalized and the symbol is derived from it when
// missing.
func (w *Workspace) SetScenario(s types.Scenario) {
	s.Viewers = format.ClampCount(s.Viewers)
	s.Builders = format.ClampCount(s.Builders)
	s.LicenseCost = format.ClampAmount(s.LicenseCost)
	s.Currency = w.normalizeCurrency(s.Currency)
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = s.Currency.Symbol()
	}
	w.scenario = s
}

// SetCurrency changes the display currency and its symbol
func (w *Workspace) SetCurrency(c types.Currency) {
	c = w.normalizeCurrency(c)
	w.scenario.Currency = c
	w.scenario.CurrencySymbol = c.Symbol()
}

// normalizeCurrency upper-cases the code and maps an empty one to the
// default. Unknown codes are kept and shown with the default symbol.
func (w *Workspace) normalizeCurrency(c types.Currency) types.Currency {
	c = types.ParseCurrency(string(c))
	if c == "" {
		return types.DefaultCurrency
	}
	if !c.IsKnown() {
		w.log.Warn("unknown currency, using default symbol",
			zap.String("currency", c.String()),
			zap.String("symbol", types.DefaultSymbol))
	}
	return c
}

// Tiers returns a copy of the active tiers in order
func (w *Workspace) Tiers() []types.CapacityTier {
	out := make([]types.CapacityTier, len(w.tiers))
	copy(out, w.tiers)
	return out
}

// Len returns the number of active tiers
func (w *Workspace) Len() int {
	return len(w.tiers)
}

// MaxTiers returns the tier limit
func (w *Workspace) MaxTiers() int {
	return w.maxTiers
}

// Catalog returns the SKU catalog used for normalization
func (w *Workspace) Catalog() *sku.Catalog {
	return w.catalog
}

// CanAdd reports whether another tier fits
func (w *Workspace) CanAdd() bool {
	return len(w.tiers) < w.maxTiers
}

// LimitReached reports whether the tier list is full
func (w *Workspace) LimitReached() bool {
	return !w.CanAdd()
}

// LimitNote explains a full tier list, or returns "" when there is room
func (w *Workspace) LimitNote() string {
	if w.CanAdd() {
		return ""
	}
	return fmt.Sprintf("Limit reached (%d instances). Remove one to add another.", w.maxTiers)
}

// AddTier appends a tier. Unknown SKU names fall back to the catalog
// default and negative costs become zero. When the list is full nothing
// changes and the second result is false.
func (w *Workspace) AddTier(skuName string, monthlyCost decimal.Decimal) (types.TierID, bool) {
	if !w.CanAdd() {
		w.log.Debug("tier rejected", zap.String("sku", skuName), zap.Int("max", w.maxTiers))
		return "", false
	}
	tier := types.CapacityTier{
		ID:          w.ids.Next(),
		SKU:         w.catalog.Normalize(skuName),
		MonthlyCost: format.ClampAmount(monthlyCost),
	}
	if tier.SKU != skuName {
		w.log.Debug("sku normalized", zap.String("input", skuName), zap.String("sku", tier.SKU))
	}
	w.tiers = append(w.tiers, tier)
	return tier.ID, true
}

// RemoveTier deletes the tier with the given id
func (w *Workspace) RemoveTier(id types.TierID) error {
	i := w.index(id)
	if i < 0 {
		return errors.NotFound("tier", id.String())
	}
	w.tiers = append(w.tiers[:i], w.tiers[i+1:]...)
	return nil
}

// SetTierSKU renames a tier, applying the catalog fallback
func (w *Workspace) SetTierSKU(id types.TierID, skuName string) error {
	i := w.index(id)
	if i < 0 {
		return errors.NotFound("tier", id.String())
	}
	w.tiers[i].SKU = w.catalog.Normalize(skuName)
	return nil
}

// SetTierCost changes a tier's monthly cost; negative costs become zero
func (w *Workspace) SetTierCost(id types.TierID, monthlyCost decimal.Decimal) error {
	i := w.index(id)
	if i < 0 {
		return errors.NotFound("tier", id.String())
	}
	w.tiers[i].MonthlyCost = format.ClampAmount(monthlyCost)
	return nil
}

// Reset clears the scenario and tiers. Ids already handed out stay used.
func (w *Workspace) Reset() {
	w.scenario = types.Scenario{
		LicenseCost:    decimal.Zero,
		Currency:       types.DefaultCurrency,
		CurrencySymbol: types.DefaultCurrency.Symbol(),
	}
	w.tiers = nil
}

// ApplyPreset replaces the whole state with a preset. Capacities past the
// limit are dropped; the number that fit is returned.
func (w *Workspace) ApplyPreset(p config.Preset) int {
	currency := types.ParseCurrency(p.Currency)
	if currency == "" {
		currency = w.scenario.Currency
	}
	w.tiers = nil
	w.SetScenario(types.Scenario{
		Viewers:     p.Viewers,
		Builders:    p.Builders,
		LicenseCost: p.LicenseCost,
		Currency:    currency,
		Region:      p.Region,
	})

	added := 0
	for _, c := range p.Capacities {
		if _, ok := w.AddTier(c.SKU, c.MonthlyCost); ok {
			added++
		}
	}
	return added
}

func (w *Workspace) index(id types.TierID) int {
	for i, t := range w.tiers {
		if t.ID == id {
			return i
		}
	}
	return -1
}
