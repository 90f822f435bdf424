// Package bsm implements the Black-Scholes-Merton model for European
// options: price, Greeks, the second variance-derivative used by
// moment-matching approximations, and implied-volatility inversion.
package bsm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PutCall selects the option direction: +1 call, -1 put.
type PutCall int

const (
	Call PutCall = 1
	Put  PutCall = -1
)

// Valid reports whether cp is one of the two supported directions.
func (cp PutCall) Valid() bool {
	return cp == Call || cp == Put
}

func (cp PutCall) String() string {
	switch cp {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("PutCall(%d)", int(cp))
	}
}

// Implied-volatility solver limits.
const (
	ivMaxIter = 100
	ivTol     = 1e-10
)

// ErrNoConvergence is returned when the implied-volatility solver fails to
// converge within its iteration budget.
var ErrNoConvergence = errors.New("bsm: implied volatility did not converge")

// Model is a Black-Scholes-Merton pricer with volatility Sigma, risk-free
// rate Rate and continuous dividend yield Div. The zero value prices a
// zero-volatility, zero-rate world; construct with the fields you need.
type Model struct {
	Sigma float64 // volatility (annualized)
	Rate  float64 // continuously-compounded risk-free rate
	Div   float64 // continuously-compounded dividend yield
}

// stdNormal is the N(0,1) distribution used for all CDF/PDF evaluations.
var stdNormal = distuv.UnitNormal

// d1d2 returns the two Black-Scholes quantiles for the given contract.
func (m Model) d1d2(strike, spot, texp float64) (d1, d2 float64) {
	sigT := m.Sigma * math.Sqrt(texp)
	d1 = (math.Log(spot/strike) + (m.Rate-m.Div+0.5*m.Sigma*m.Sigma)*texp) / sigT
	d2 = d1 - sigT
	return d1, d2
}

// Price returns the European option price for the given strike, spot,
// time to expiry (years) and direction.
func (m Model) Price(strike, spot, texp float64, cp PutCall) float64 {
	df := math.Exp(-m.Rate * texp)
	dq := math.Exp(-m.Div * texp)

	if m.Sigma*math.Sqrt(texp) < 1e-12 {
		// Degenerate: no volatility left, price is discounted intrinsic.
		return math.Max(float64(cp)*(spot*dq-strike*df), 0)
	}

	d1, d2 := m.d1d2(strike, spot, texp)
	s := float64(cp)
	return s * (spot*dq*stdNormal.CDF(s*d1) - strike*df*stdNormal.CDF(s*d2))
}

// Delta returns dPrice/dSpot.
func (m Model) Delta(strike, spot, texp float64, cp PutCall) float64 {
	d1, _ := m.d1d2(strike, spot, texp)
	dq := math.Exp(-m.Div * texp)
	if cp == Call {
		return dq * stdNormal.CDF(d1)
	}
	return dq * (stdNormal.CDF(d1) - 1)
}

// Gamma returns d2Price/dSpot2 (direction-free).
func (m Model) Gamma(strike, spot, texp float64) float64 {
	d1, _ := m.d1d2(strike, spot, texp)
	dq := math.Exp(-m.Div * texp)
	return dq * stdNormal.Prob(d1) / (spot * m.Sigma * math.Sqrt(texp))
}

// Vega returns dPrice/dSigma (direction-free).
func (m Model) Vega(strike, spot, texp float64) float64 {
	d1, _ := m.d1d2(strike, spot, texp)
	dq := math.Exp(-m.Div * texp)
	return spot * dq * stdNormal.Prob(d1) * math.Sqrt(texp)
}

// Theta returns dPrice/dt, the (negative) time decay per year.
func (m Model) Theta(strike, spot, texp float64, cp PutCall) float64 {
	d1, d2 := m.d1d2(strike, spot, texp)
	df := math.Exp(-m.Rate * texp)
	dq := math.Exp(-m.Div * texp)
	s := float64(cp)

	decay := -spot * dq * stdNormal.Prob(d1) * m.Sigma / (2 * math.Sqrt(texp))
	carry := s * (m.Div*spot*dq*stdNormal.CDF(s*d1) - m.Rate*strike*df*stdNormal.CDF(s*d2))
	return decay + carry
}

// D2PriceDVar returns the second partial derivative of the option price
// with respect to variance (sigma^2). It is the curvature term consumed by
// second-order moment-matching approximations and is the same for calls
// and puts.
func (m Model) D2PriceDVar(strike, spot, texp float64, cp PutCall) float64 {
	d1, d2 := m.d1d2(strike, spot, texp)
	sig3 := m.Sigma * m.Sigma * m.Sigma
	return m.Vega(strike, spot, texp) * (d1*d2 - 1) / (4 * sig3)
}

// ImpliedVol inverts Price for the volatility that reproduces the observed
// price, using Newton-Raphson on vega from the given initial guess (a guess
// <= 0 starts from 0.2). Returns ErrNoConvergence if the iteration does not
// settle within the solver limits.
func ImpliedVol(price, strike, spot, texp float64, cp PutCall, guess, rate, div float64) (float64, error) {
	if guess <= 0 {
		guess = 0.2
	}

	sigma := guess
	for i := 0; i < ivMaxIter; i++ {
		m := Model{Sigma: sigma, Rate: rate, Div: div}
		diff := m.Price(strike, spot, texp, cp) - price
		if math.Abs(diff) < ivTol {
			return sigma, nil
		}

		vega := m.Vega(strike, spot, texp)
		if vega < 1e-14 {
			return 0, fmt.Errorf("%w: vega vanished at sigma=%g", ErrNoConvergence, sigma)
		}

		sigma -= diff / vega
		if sigma <= 0 {
			sigma = guess / float64(i+2)
		}
	}
	return 0, ErrNoConvergence
}
