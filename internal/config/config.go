// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"capacity-cost/core/comparison"
	"capacity-cost/core/pricing"
	"capacity-cost/core/sku"
	"capacity-cost/core/types"
	"capacity-cost/internal/errors"
	"capacity-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Engine contains pricing engine parameters
	Engine EngineConfig `json:"engine" yaml:"engine"`

	// Catalog lists the valid SKUs
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Recommendation controls the headline text
	Recommendation RecommendationConfig `json:"recommendation" yaml:"recommendation"`

	// Licensing contains license impact defaults
	Licensing LicensingConfig `json:"licensing" yaml:"licensing"`

	// Currency contains display currency settings
	Currency CurrencyConfig `json:"currency" yaml:"currency"`

	// Workspace contains tier bookkeeping settings
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`

	// Presets are named starting scenarios
	Presets map[string]Preset `json:"presets,omitempty" yaml:"presets,omitempty"`
}

// EngineConfig contains pricing engine parameters
type EngineConfig struct {
	// MaxTiers is the number of capacities compared at once
	MaxTiers int `json:"max_tiers" yaml:"max_tiers"`

	// FreeViewerThreshold is the smallest tier size with free viewers
	FreeViewerThreshold int `json:"free_viewer_threshold" yaml:"free_viewer_threshold"`

	// ChargedViewerMax is the largest tier size that charges viewers
	ChargedViewerMax int `json:"charged_viewer_max" yaml:"charged_viewer_max"`
}

// CatalogConfig lists the valid SKUs
type CatalogConfig struct {
	// SKUs are the valid tier names
	SKUs []string `json:"skus" yaml:"skus"`

	// DefaultSKU replaces unrecognized names; empty means the first SKU
	DefaultSKU string `json:"default_sku,omitempty" yaml:"default_sku,omitempty"`
}

// RecommendationConfig controls the headline text
type RecommendationConfig struct {
	// Period is "monthly" or "yearly"
	Period string `json:"period" yaml:"period"`
}

// LicensingConfig contains license impact defaults
type LicensingConfig struct {
	// ProCost is the standard per-user license price
	ProCost decimal.Decimal `json:"pro_cost" yaml:"pro_cost"`

	// PPUCost is the premium per-user license price
	PPUCost decimal.Decimal `json:"ppu_cost" yaml:"ppu_cost"`
}

// CurrencyConfig contains display currency settings
type CurrencyConfig struct {
	// Default is the ISO code used when a scenario has none
	Default types.Currency `json:"default" yaml:"default"`
}

// WorkspaceConfig contains tier bookkeeping settings
type WorkspaceConfig struct {
	// IDScheme is "sequence" or "uuid"
	IDScheme string `json:"id_scheme" yaml:"id_scheme"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" yaml:"no_color"`

	// ShowDelta adds the baseline delta column
	ShowDelta bool `json:"show_delta" yaml:"show_delta"`
}

// Preset is a named starting scenario. Scenario files decode into it too.
// An empty Currency keeps the configured default. Amounts decode from JSON
// and YAML numbers or strings through decimal's text unmarshaling.
type Preset struct {
	Currency    string           `json:"currency,omitempty" yaml:"currency,omitempty"`
	Region      string           `json:"region,omitempty" yaml:"region,omitempty"`
	Viewers     int64            `json:"viewers" yaml:"viewers"`
	Builders    int64            `json:"builders" yaml:"builders"`
	LicenseCost decimal.Decimal  `json:"license_cost" yaml:"license_cost"`
	Capacities  []PresetCapacity `json:"capacities,omitempty" yaml:"capacities,omitempty"`
}

// PresetCapacity is one tier of a preset
type PresetCapacity struct {
	SKU         string          `json:"sku" yaml:"sku"`
	MonthlyCost decimal.Decimal `json:"monthly_cost" yaml:"monthly_cost"`
}

// Scheme names for tier ids
const (
	IDSchemeSequence = "sequence"
	IDSchemeUUID     = "uuid"
)

// Built-in preset names
const (
	PresetDefault = "default"
	PresetSample  = "sample"
)

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			MaxTiers:            pricing.DefaultMaxTiers,
			FreeViewerThreshold: pricing.DefaultFreeViewerThreshold,
			ChargedViewerMax:    pricing.DefaultChargedViewerMax,
		},
		Catalog: CatalogConfig{
			SKUs: append([]string(nil), sku.DefaultNames...),
		},
		Recommendation: RecommendationConfig{
			Period: string(comparison.DefaultPeriod),
		},
		Licensing: LicensingConfig{
			ProCost: comparison.DefaultProCost,
			PPUCost: comparison.DefaultPPUCost,
		},
		Currency: CurrencyConfig{
			Default: types.DefaultCurrency,
		},
		Workspace: WorkspaceConfig{
			IDScheme: IDSchemeSequence,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDelta:     true,
		},
		Logging: logging.DefaultConfig(),
		Presets: DefaultPresets(),
	}
}

// DefaultPresets returns the two built-in scenarios. They leave the
// currency empty so currency.default applies.
func DefaultPresets() map[string]Preset {
	capacities := func() []PresetCapacity {
		return []PresetCapacity{
			{SKU: "F32", MonthlyCost: decimal.NewFromInt(2640)},
			{SKU: "F64", MonthlyCost: decimal.NewFromInt(5280)},
		}
	}
	return map[string]Preset{
		PresetDefault: {
			Viewers:     300,
			Builders:    30,
			LicenseCost: decimal.NewFromInt(14),
			Capacities:  capacities(),
		},
		PresetSample: {
			Region:      "North Europe",
			Viewers:     1200,
			Builders:    25,
			LicenseCost: decimal.NewFromInt(14),
			Capacities:  capacities(),
		},
	}
}

// Load loads configuration from a file. A missing file yields defaults.
// Files ending in .yaml or .yml are YAML, everything else is JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "decode %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(isYAML(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the configuration as YAML or indented JSON
func (c *Config) Marshal(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "  ")
}

// Validate checks the engine bounds and the catalog
func (c *Config) Validate() error {
	if c.Engine.MaxTiers < 1 {
		return errors.Config("engine.max_tiers must be at least 1").
			WithContext("max_tiers", c.Engine.MaxTiers)
	}
	if c.Engine.ChargedViewerMax < 1 {
		return errors.Config("engine.charged_viewer_max must be at least 1")
	}
	if c.Engine.FreeViewerThreshold <= c.Engine.ChargedViewerMax {
		return errors.Newf(errors.TypeConfig,
			"engine.free_viewer_threshold (%d) must be greater than engine.charged_viewer_max (%d)",
			c.Engine.FreeViewerThreshold, c.Engine.ChargedViewerMax)
	}
	if _, err := c.SKUCatalog(); err != nil {
		return err
	}
	if _, err := c.Period(); err != nil {
		return errors.Wrap(errors.TypeConfig, "recommendation.period", err)
	}
	switch c.Workspace.IDScheme {
	case "", IDSchemeSequence, IDSchemeUUID:
	default:
		return errors.Newf(errors.TypeConfig, "unknown workspace.id_scheme %q", c.Workspace.IDScheme)
	}
	if c.Licensing.ProCost.IsNegative() || c.Licensing.PPUCost.IsNegative() {
		return errors.Config("licensing costs must not be negative")
	}
	return nil
}

// PricingConfig derives the engine configuration
func (c *Config) PricingConfig() pricing.Config {
	return pricing.Config{
		MaxTiers: c.Engine.MaxTiers,
		Policy: pricing.Policy{
			FreeViewerThreshold: c.Engine.FreeViewerThreshold,
			ChargedViewerMax:    c.Engine.ChargedViewerMax,
		},
	}
}

// SKUCatalog builds the configured catalog
func (c *Config) SKUCatalog() (*sku.Catalog, error) {
	return sku.NewCatalog(c.Catalog.SKUs, c.Catalog.DefaultSKU)
}

// Period parses the recommendation period
func (c *Config) Period() (comparison.Period, error) {
	if c.Recommendation.Period == "" {
		return comparison.DefaultPeriod, nil
	}
	return comparison.ParsePeriod(c.Recommendation.Period)
}

// ProCost returns the standard license price
func (c *Config) ProCost() decimal.Decimal {
	return c.Licensing.ProCost
}

// PPUCost returns the premium license price
func (c *Config) PPUCost() decimal.Decimal {
	return c.Licensing.PPUCost
}

// Preset looks up a named preset
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, errors.NotFound("preset", name).WithContext("available", c.PresetNames())
	}
	return p, nil
}

// PresetNames lists preset names alphabetically
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
