// Package main is the entry point for the capacity-cost CLI.
package main

import (
	"os"

	"capacity-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
