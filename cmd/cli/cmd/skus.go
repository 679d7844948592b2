package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"capacity-cost/core/comparison"
	"capacity-cost/core/format"
	"capacity-cost/core/pricing"
	"capacity-cost/core/sku"
	"capacity-cost/core/types"
	"capacity-cost/core/ui"
	"capacity-cost/internal/config"
)

var skusNoColor bool

// skusCmd lists the SKU catalog
var skusCmd = &cobra.Command{
	Use:   "skus",
	Short: "List capacity SKUs with their viewer policy and reference prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		catalog, err := cfg.SKUCatalog()
		if err != nil {
			return err
		}
		policy := pricing.NewEngine(cfg.PricingConfig()).Policy()

		out := ui.NewWriter(cmd.OutOrStdout(), skusNoColor || cfg.Output.NoColor)
		out.Header("Capacity SKUs")
		table := out.NewTable("SKU", "Size", "Viewer Policy", "List / month", "Reserved / month", "Saving").
			AlignRight(1, 3, 4, 5)
		for _, name := range catalog.Names() {
			size, _ := sku.ExtractTierSize(name)
			policyText := comparison.PolicyLicensedViewers
			if policy.FreeViewers(name) {
				policyText = comparison.PolicyFreeViewers
			}
			list, reserved, saving := format.Missing, format.Missing, format.Missing
			if ref, ok := sku.LookupReference(name); ok {
				symbol := ref.Currency.Symbol()
				list = format.Rounded(symbol, ref.MonthlyCost)
				reserved = format.Rounded(symbol, ref.ReservedCost)
				saving = strconv.FormatInt(ref.ReservationDiscount(), 10) + "%"
			}
			cells := []string{name, strconv.Itoa(size), policyText, list, reserved, saving}
			if name == catalog.Default() {
				cells[0] += " (default)"
			}
			table.AddRow(cells...)
		}
		table.Render()
		out.Println("")
		out.Dim("Viewers are free from F%d. Reference prices are USD.", policy.FreeViewerThreshold)
		return nil
	},
}

// currenciesCmd lists the display currencies
var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported display currencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := ui.NewWriter(cmd.OutOrStdout(), skusNoColor || cfg.Output.NoColor)
		table := out.NewTable("Code", "Symbol")
		for _, c := range types.Currencies() {
			code := c.String()
			if c == cfg.Currency.Default {
				code += " (default)"
			}
			table.AddRow(code, c.Symbol())
		}
		table.Render()
		return nil
	},
}

func init() {
	skusCmd.Flags().BoolVar(&skusNoColor, "no-color", false, "disable colored output")
	currenciesCmd.Flags().BoolVar(&skusNoColor, "no-color", false, "disable colored output")
}
