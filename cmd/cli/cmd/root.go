// Package cmd provides the CLI commands for capacity-cost.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"capacity-cost/internal/config"
	"capacity-cost/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "capacity-cost",
	Short: "Compare capacity licensing against per-user licensing",
	Long: `capacity-cost compares the monthly cost of capacity tiers with licensing
every user individually.

Builders always need a per-user license. Viewers need one on small tiers
and are free from the free-viewer threshold (F64 by default) upwards.

Examples:
  capacity-cost compare
  capacity-cost compare --viewers 1200 --builders 25 --tier F32=2640 --tier F64=5280
  capacity-cost compare --file scenario.hcl --format markdown
  capacity-cost licensing --viewers 500 --builders 40 --reserved`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or YAML (default is $HOME/.capacity-cost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(licensingCmd)
	rootCmd.AddCommand(skusCmd)
	rootCmd.AddCommand(currenciesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".capacity-cost.yaml")
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "capacity-cost version %s\n", Version)
	},
}
