package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stochvol",
	Short: "Moment-matching option and variance-swap pricing under Heston",
	Long: `Stochvol prices European options and variance swaps under the Heston
stochastic-variance model using closed-form moment matching, with no
Fourier inversion or Monte Carlo.

It provides tools for:
  - Ball-Roma (1994) second-order option price approximations
  - Variance-swap fair strikes, continuous or discretely monitored
    (Bernard & Cui 2014)
  - Exact moments of the variance process and its time average
  - Realized variance from close-price series
  - Batch pricing runs journaled to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/stochvol`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
