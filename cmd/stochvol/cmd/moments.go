package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

var momentsCmd = &cobra.Command{
	Use:   "moments",
	Short: "Print variance and average-variance moments",
	Long: `Print the exact mean and variance of the instantaneous variance at the
horizon, and of the average variance over [0, horizon].

Example:
  stochvol moments --texp 1 --v0 0.09 --kappa 1.5`,
	RunE: runMoments,
}

var (
	momentsModel modelFlags
	momentsTexp  float64
)

func init() {
	rootCmd.AddCommand(momentsCmd)

	momentsModel.register(momentsCmd)
	momentsCmd.Flags().Float64VarP(&momentsTexp, "texp", "t", 1, "horizon in years")
}

func runMoments(cmd *cobra.Command, args []string) error {
	m, err := momentsModel.model()
	if err != nil {
		return err
	}
	if momentsTexp <= 0 {
		return fmt.Errorf("texp must be positive, got %g", momentsTexp)
	}

	vMean, vVar := m.VarMoments(m.V0, momentsTexp)
	aMean, aVar := m.AvgVarMoments(momentsTexp)

	fmt.Printf("Horizon T=%g, v0=%g\n", momentsTexp, m.V0)
	fmt.Printf("  V(T):    mean %.8f  variance %.3e\n", vMean, vVar)
	fmt.Printf("  avg var: mean %.8f  variance %.3e  (effective vol %.6f)\n",
		aMean, aVar, math.Sqrt(aMean))

	return nil
}
