package heston

import "math"

// VarSwapStrike returns the fair strike of a continuously-monitored
// variance swap expiring at texp. It equals the mean of the average
// variance over [0, texp].
func (m Model) VarSwapStrike(texp float64) float64 {
	a := m.Kappa * texp
	e := math.Exp(-a)
	x0 := m.V0 - m.Theta
	return m.Theta + x0*(1-e)/a
}

// VarSwapStrikeDiscrete returns the fair strike of a variance swap with
// obsPerYear observations per year, per Bernard & Cui (2014), Eq. (11).
// The discrete strike is the continuous strike plus four additive bias
// terms: rate level, vol-of-vol skew, correlation/mean-reversion
// interaction, and sampling convexity. obsPerYear must be > 0.
func (m Model) VarSwapStrikeDiscrete(texp, obsPerYear float64) float64 {
	a := m.Kappa * texp
	e := math.Exp(-a)
	x0 := m.V0 - m.Theta
	strike := m.Theta + x0*(1-e)/a

	aM := m.Kappa / obsPerYear
	eM := math.Exp(-aM)

	t1 := m.Theta - 2*m.Rate
	strike += t1 / (4 * obsPerYear) * (t1 + 2*x0*(1-e)/a)

	t2 := m.Xi / m.Kappa
	strike += m.Theta * t2 * (t2/4 - m.Rho) * (1 - (1-eM)/aM)
	strike += x0 * t2 * (t2/2 - m.Rho) * (1 - e) / a * (1 + aM/(1-1/eM))
	strike += (t2*t2*(m.Theta-2*m.V0) + 2*x0*x0/m.Kappa) * (1 - e*e) / (8 * a) * (1 - eM) / (1 + eM)

	return strike
}
