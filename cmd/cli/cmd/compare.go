// Package cmd - compare command
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"capacity-cost/adapters/scenario"
	"capacity-cost/core/comparison"
	"capacity-cost/core/format"
	"capacity-cost/core/output"
	"capacity-cost/core/pricing"
	"capacity-cost/core/workspace"
	"capacity-cost/internal/config"
	"capacity-cost/internal/errors"
	"capacity-cost/internal/logging"
)

var (
	compareViewers     int64
	compareBuilders    int64
	compareLicenseCost string
	compareCurrency    string
	compareRegion      string
	compareTiers       []string
	compareFile        string
	comparePreset      string
	comparePeriod      string
	compareFormat      string
	compareNoColor     bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare capacity tiers against per-user licensing",
	Long: `Price up to the configured number of capacity tiers for a head count
and recommend the cheapest one.

The starting point is a preset (--preset, "default" unless set) or a
scenario file (--file). Flags override individual values; --tier replaces
the preset's capacities.

Examples:
  capacity-cost compare
  capacity-cost compare --preset sample
  capacity-cost compare --viewers 300 --builders 30 --license-cost 14 --tier F32=2640 --tier F64=5280
  capacity-cost compare --file scenario.yaml --period monthly --format json`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.Int64Var(&compareViewers, "viewers", 0, "number of viewers")
	f.Int64Var(&compareBuilders, "builders", 0, "number of builders")
	f.StringVar(&compareLicenseCost, "license-cost", "", "monthly per-user license cost")
	f.StringVarP(&compareCurrency, "currency", "c", "", "display currency code (EUR, USD, GBP, ...)")
	f.StringVar(&compareRegion, "region", "", "region label shown in the report")
	f.StringArrayVarP(&compareTiers, "tier", "t", nil, "capacity as SKU=MONTHLY_COST, repeatable")
	f.StringVar(&compareFile, "file", "", "scenario file (.hcl, .yaml, .json)")
	f.StringVarP(&comparePreset, "preset", "p", config.PresetDefault, "built-in or configured preset")
	f.StringVar(&comparePeriod, "period", "", "recommendation period: monthly or yearly")
	f.StringVarP(&compareFormat, "format", "f", "", "output format (cli, json, markdown)")
	f.BoolVar(&compareNoColor, "no-color", false, "disable colored output")

	compareCmd.MarkFlagsMutuallyExclusive("file", "preset")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	log := logging.Named("compare")

	preset, source, err := loadStartingPoint(cfg)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, &preset); err != nil {
		return err
	}

	ws, err := workspace.FromConfig(cfg)
	if err != nil {
		return err
	}
	added := ws.ApplyPreset(preset)
	var rejected []string
	for _, c := range preset.Capacities[added:] {
		rejected = append(rejected, c.SKU)
	}
	if len(rejected) > 0 {
		log.Warn("capacities dropped",
			zap.Strings("skus", rejected),
			zap.Error(errors.Limit(ws.MaxTiers())))
	}

	period, err := resolvePeriod(cfg)
	if err != nil {
		return err
	}

	engine := pricing.NewEngine(cfg.PricingConfig())
	summary := comparison.BuildSummary(engine, ws.Scenario(), ws.Tiers(), period)
	log.Debug("comparison built",
		zap.Int("tiers", len(summary.Rows)),
		zap.Bool("empty", summary.Recommendation.Empty))

	report := &output.Report{
		Summary:   &summary,
		Rejected:  rejected,
		LimitNote: ws.LimitNote(),
		Metadata:  newMetadata(source),
	}
	return render(cmd, cfg, compareFormat, compareNoColor, report)
}

// loadStartingPoint returns the preset or scenario file the run starts from
func loadStartingPoint(cfg *config.Config) (config.Preset, string, error) {
	if compareFile != "" {
		p, err := scenario.Load(compareFile)
		if err != nil {
			return config.Preset{}, "", fmt.Errorf("failed to load scenario: %w", err)
		}
		return p, compareFile, nil
	}
	p, err := cfg.Preset(comparePreset)
	if err != nil {
		return config.Preset{}, "", err
	}
	return p, "preset:" + comparePreset, nil
}

// applyOverrides applies explicitly set flags on top of the preset
func applyOverrides(cmd *cobra.Command, p *config.Preset) error {
	flags := cmd.Flags()
	if flags.Changed("viewers") {
		p.Viewers = compareViewers
	}
	if flags.Changed("builders") {
		p.Builders = compareBuilders
	}
	if flags.Changed("license-cost") {
		p.LicenseCost = format.ParseAmount(compareLicenseCost)
	}
	if flags.Changed("currency") {
		p.Currency = compareCurrency
	}
	if flags.Changed("region") {
		p.Region = compareRegion
	}
	if flags.Changed("tier") {
		capacities := make([]config.PresetCapacity, 0, len(compareTiers))
		for _, raw := range compareTiers {
			c, err := parseTierFlag(raw)
			if err != nil {
				return err
			}
			capacities = append(capacities, c)
		}
		p.Capacities = capacities
	}
	return nil
}

// parseTierFlag parses "F64=5280". An unusable cost becomes zero, the same
// way an empty cost field is treated.
func parseTierFlag(raw string) (config.PresetCapacity, error) {
	name, cost, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return config.PresetCapacity{}, errors.Newf(errors.TypeInput, "invalid --tier %q (want SKU=MONTHLY_COST)", raw)
	}
	return config.PresetCapacity{
		SKU:         name,
		MonthlyCost: format.ParseAmount(cost),
	}, nil
}

func resolvePeriod(cfg *config.Config) (comparison.Period, error) {
	if comparePeriod != "" {
		return comparison.ParsePeriod(comparePeriod)
	}
	return cfg.Period()
}

func newMetadata(source string) output.Metadata {
	return output.Metadata{
		Timestamp: time.Now().Format("January 2, 2006"),
		Version:   Version,
		Source:    source,
	}
}

// render picks the formatter and writes the report to the command's stdout
func render(cmd *cobra.Command, cfg *config.Config, formatFlag string, noColor bool, report *output.Report) error {
	name := formatFlag
	if name == "" {
		name = cfg.Output.DefaultFormat
	}
	f, err := output.ParseFormat(name)
	if err != nil {
		return err
	}
	registry := output.NewRegistry(output.Options{
		NoColor:   noColor || cfg.Output.NoColor,
		ShowDelta: cfg.Output.ShowDelta,
	})
	formatter, err := registry.Get(f)
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), report)
}
