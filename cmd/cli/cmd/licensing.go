package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"capacity-cost/core/comparison"
	"capacity-cost/core/format"
	"capacity-cost/core/output"
	"capacity-cost/core/pricing"
	"capacity-cost/internal/config"
	"capacity-cost/internal/logging"
)

// Reference prices are published in US dollars
const referenceSymbol = "$"

var (
	licensingViewers  int64
	licensingBuilders int64
	licensingPro      string
	licensingPPU      string
	licensingReserved bool
	licensingHidePro  bool
	licensingHidePPU  bool
	licensingFormat   string
	licensingNoColor  bool
)

// licensingCmd represents the licensing command
var licensingCmd = &cobra.Command{
	Use:   "licensing",
	Short: "Price the reference SKUs against Pro-only and PPU-only licensing",
	Long: `Show the license impact of a head count on every reference SKU.

Builders always pay the Pro price. Viewers pay it on tiers below the
free-viewer threshold. Each SKU is compared with licensing every user
with Pro and with Premium Per User.

Examples:
  capacity-cost licensing
  capacity-cost licensing --viewers 500 --builders 40 --reserved
  capacity-cost licensing --hide-ppu --format markdown`,
	Args: cobra.NoArgs,
	RunE: runLicensing,
}

func init() {
	def := config.DefaultPresets()[config.PresetDefault]

	f := licensingCmd.Flags()
	f.Int64Var(&licensingViewers, "viewers", def.Viewers, "number of viewers")
	f.Int64Var(&licensingBuilders, "builders", def.Builders, "number of builders")
	f.StringVar(&licensingPro, "pro-cost", "", "monthly Pro license price (default from config)")
	f.StringVar(&licensingPPU, "ppu-cost", "", "monthly PPU license price (default from config)")
	f.BoolVar(&licensingReserved, "reserved", false, "price capacities at reservation rates")
	f.BoolVar(&licensingHidePro, "hide-pro", false, "hide the Pro-only baseline")
	f.BoolVar(&licensingHidePPU, "hide-ppu", false, "hide the PPU-only baseline")
	f.StringVarP(&licensingFormat, "format", "f", "", "output format (cli, json, markdown)")
	f.BoolVar(&licensingNoColor, "no-color", false, "disable colored output")
}

func runLicensing(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	in := comparison.ImpactInput{
		Viewers:  format.ClampCount(licensingViewers),
		Builders: format.ClampCount(licensingBuilders),
		ProCost:  cfg.ProCost(),
		PPUCost:  cfg.PPUCost(),
		Reserved: licensingReserved,
		HidePro:  licensingHidePro,
		HidePPU:  licensingHidePPU,
	}
	if cmd.Flags().Changed("pro-cost") {
		in.ProCost = format.ParseAmount(licensingPro)
	}
	if cmd.Flags().Changed("ppu-cost") {
		in.PPUCost = format.ParseAmount(licensingPPU)
	}

	engine := pricing.NewEngine(cfg.PricingConfig())
	table := comparison.BuildImpactTable(engine, in)
	logging.Named("licensing").Debug("impact table built",
		zap.Int("rows", len(table.Rows)),
		zap.Bool("reserved", table.Reserved))

	report := &output.Report{
		Impact:       &table,
		ImpactSymbol: referenceSymbol,
		Metadata:     newMetadata("licensing"),
	}
	return render(cmd, cfg, licensingFormat, licensingNoColor, report)
}
