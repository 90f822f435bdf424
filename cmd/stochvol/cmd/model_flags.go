package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/stochvol/heston"
)

// modelFlags carries the Heston parameters shared by the pricing
// subcommands.
type modelFlags struct {
	v0    float64
	kappa float64
	theta float64
	xi    float64
	rho   float64
	rate  float64
	div   float64
}

func (mf *modelFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&mf.v0, "v0", 0.04, "current variance level")
	c.Flags().Float64Var(&mf.kappa, "kappa", 1.5, "mean-reversion speed")
	c.Flags().Float64Var(&mf.theta, "theta", 0.04, "long-run mean variance")
	c.Flags().Float64Var(&mf.xi, "xi", 0.3, "volatility of variance")
	c.Flags().Float64Var(&mf.rho, "rho", 0.0, "asset/variance correlation")
	c.Flags().Float64Var(&mf.rate, "rate", 0.0, "risk-free rate")
	c.Flags().Float64Var(&mf.div, "div", 0.0, "dividend yield")
}

func (mf *modelFlags) model() (heston.Model, error) {
	m := heston.Model{
		V0:    mf.v0,
		Kappa: mf.kappa,
		Theta: mf.theta,
		Xi:    mf.xi,
		Rho:   mf.rho,
		Rate:  mf.rate,
		Div:   mf.div,
	}
	return m, m.Validate()
}
