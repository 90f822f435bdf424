package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stochvol/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write a default scenario config",
	Long: `Write a scenario configuration with default values to the given path,
as a starting point for batch runs.

Example:
  stochvol config --out scenario.yaml`,
	RunE: runConfig,
}

var configOut string

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configOut, "out", "o", "scenario.yaml", "output path (.yaml, .yml or .json)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configOut); err != nil {
		return err
	}

	fmt.Printf("Wrote default config to %s\n", configOut)
	return nil
}
