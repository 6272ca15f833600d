package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wheeljam/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective wheel configuration",
	Long: `Print the wheel configuration that 'play' and 'serve' would use, as YAML.

The output is a valid config file, so it can seed a custom one:
  wheeljam config > ~/.wheeljam/configs/wheel.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadWheel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Encode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Best-effort output
}
