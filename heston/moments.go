package heston

import "math"

// VarMoments returns the mean and variance of the instantaneous variance
// V(dt) conditional on V(0) = v0. These are the exact first two moments of
// the square-root diffusion's transition law; dt must be >= 0, and the
// variance is non-negative whenever v0 and Theta are.
func (m Model) VarMoments(v0, dt float64) (mean, variance float64) {
	e := math.Exp(-m.Kappa * dt)
	mean = m.Theta + (v0-m.Theta)*e
	variance = (v0*e + m.Theta*(1-e)/2) * m.Xi * m.Xi * (1 - e) / m.Kappa
	return mean, variance
}

// AvgVarMoments returns the mean and variance of the average variance
// (1/texp) * integral of V(s) over [0, texp], starting from the model's
// current variance level. texp must be > 0.
func (m Model) AvgVarMoments(texp float64) (mean, variance float64) {
	return m.AvgVarMomentsFrom(m.V0, texp)
}

// AvgVarMomentsFrom is AvgVarMoments with an explicit starting variance.
// Discretization schemes that advance v0 across time steps use this
// variant; everything else wants AvgVarMoments.
//
// Ball & Roma (1994), Appendix B.
func (m Model) AvgVarMomentsFrom(v0, texp float64) (mean, variance float64) {
	a := m.Kappa * texp
	e := math.Exp(-a)
	x0 := v0 - m.Theta

	mean = m.Theta + x0*(1-e)/a
	raw := (m.Theta - 2*x0*e) + (1-e)*(v0-2.5*m.Theta+(v0-m.Theta/2)*e)/a
	variance = raw * (m.Xi / a) * (m.Xi / a) * texp
	return mean, variance
}
