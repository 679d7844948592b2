package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacity-cost/core/comparison"
	"capacity-cost/core/pricing"
	"capacity-cost/internal/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, pricing.DefaultConfig(), cfg.PricingConfig())
	period, err := cfg.Period()
	require.NoError(t, err)
	assert.Equal(t, comparison.PeriodYearly, period)
	assert.Equal(t, []string{PresetDefault, PresetSample}, cfg.PresetNames())
	assert.True(t, cfg.ProCost().Equal(comparison.DefaultProCost))
	assert.True(t, cfg.PPUCost().Equal(comparison.DefaultPPUCost))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max tiers", func(c *Config) { c.Engine.MaxTiers = 0 }},
		{"zero charged max", func(c *Config) { c.Engine.ChargedViewerMax = 0 }},
		{"threshold not above charged max", func(c *Config) { c.Engine.FreeViewerThreshold = 32 }},
		{"empty catalog", func(c *Config) { c.Catalog.SKUs = nil }},
		{"bad sku", func(c *Config) { c.Catalog.SKUs = []string{"F2", "P1"} }},
		{"default sku outside catalog", func(c *Config) { c.Catalog.DefaultSKU = "F3" }},
		{"bad period", func(c *Config) { c.Recommendation.Period = "weekly" }},
		{"bad id scheme", func(c *Config) { c.Workspace.IDScheme = "random" }},
		{"negative license", func(c *Config) { c.Licensing.PPUCost = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
		})
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
engine:
  max_tiers: 5
recommendation:
  period: monthly
presets:
  team:
    currency: USD
    viewers: 40
    builders: 4
    license_cost: 10
    capacities:
      - sku: F8
        monthly_cost: 1285
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Engine.MaxTiers)
	assert.Equal(t, pricing.DefaultFreeViewerThreshold, cfg.Engine.FreeViewerThreshold, "unset keys keep defaults")
	period, err := cfg.Period()
	require.NoError(t, err)
	assert.Equal(t, comparison.PeriodMonthly, period)

	team, err := cfg.Preset("team")
	require.NoError(t, err)
	assert.Equal(t, int64(40), team.Viewers)
	require.Len(t, team.Capacities, 1)
	assert.Equal(t, "F8", team.Capacities[0].SKU)
	assert.True(t, team.Capacities[0].MonthlyCost.Equal(decimal.NewFromInt(1285)))
	assert.True(t, team.LicenseCost.Equal(decimal.NewFromInt(10)))
}

func TestLoadJSONInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"engine": `), 0644))
	_, err := Load(broken)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"engine": {"max_tiers": 0}}`), 0644))
	_, err = Load(invalid)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Engine.MaxTiers = 4
			cfg.Output.DefaultFormat = "markdown"
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 4, loaded.Engine.MaxTiers)
			assert.Equal(t, "markdown", loaded.Output.DefaultFormat)
			assert.Equal(t, cfg.Catalog.SKUs, loaded.Catalog.SKUs)
		})
	}
}

func TestPresetNotFound(t *testing.T) {
	_, err := Default().Preset("nope")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestBuiltInPresetsUseConfiguredCurrency(t *testing.T) {
	for name, p := range DefaultPresets() {
		assert.Empty(t, p.Currency, "preset %s", name)
	}
}

func TestLicensingAmountsAreExact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"licensing": {"pro_cost": 14.1, "ppu_cost": "24.35"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "14.1", cfg.ProCost().String())
	assert.Equal(t, "24.35", cfg.PPUCost().String())

	neg := Default()
	neg.Licensing.ProCost = decimal.NewFromInt(-1)
	assert.Error(t, neg.Validate())
}
