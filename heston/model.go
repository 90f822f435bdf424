// Package heston prices European options and variance swaps under the
// Heston mean-reverting stochastic-variance model using moment matching,
// without Fourier inversion or Monte Carlo. It implements the exact first
// two moments of the variance process and its time average (Ball & Roma
// 1994, Appendix B), the discrete-monitoring variance-swap strike of
// Bernard & Cui (2014, Eq. 11), and the second-order Ball-Roma option
// approximation.
package heston

import "fmt"

// Model holds the Heston parameters. Construct once and treat as
// read-only; every pricing operation is a pure function of the model and
// its call inputs, so concurrent use needs no coordination.
//
// All formulas divide by Kappa, and the average-variance formulas divide by
// Kappa*texp. The Kappa -> 0 and texp -> 0 limits are removable
// singularities that are NOT special-cased: out-of-contract inputs surface
// as Inf/NaN. Validate enforces the preconditions at configuration
// boundaries.
type Model struct {
	V0    float64 // current (initial) variance level
	Kappa float64 // mean-reversion speed, > 0
	Theta float64 // long-run mean variance, >= 0
	Xi    float64 // volatility of variance, >= 0
	Rho   float64 // asset/variance shock correlation, in [-1, 1]
	Rate  float64 // continuously-compounded risk-free rate
	Div   float64 // continuously-compounded dividend yield
}

// Validate checks the parameter constraints the pricing formulas assume.
func (m Model) Validate() error {
	if m.V0 <= 0 {
		return fmt.Errorf("heston: v0 must be positive, got %g", m.V0)
	}
	if m.Kappa <= 0 {
		return fmt.Errorf("heston: kappa must be positive, got %g", m.Kappa)
	}
	if m.Theta < 0 {
		return fmt.Errorf("heston: theta must be non-negative, got %g", m.Theta)
	}
	if m.Xi < 0 {
		return fmt.Errorf("heston: xi must be non-negative, got %g", m.Xi)
	}
	if m.Rho < -1 || m.Rho > 1 {
		return fmt.Errorf("heston: rho must be in [-1, 1], got %g", m.Rho)
	}
	return nil
}
