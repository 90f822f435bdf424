// Package varswap values variance-swap contracts against the Heston
// moment-matching fair strike. Monetary amounts use decimals so valuations
// survive aggregation without float drift; the model quantities stay
// float64.
package varswap

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/stochvol/heston"
)

// Contract is a variance swap: the holder receives
// VarNotional * (realized variance - Strike) at expiry. Strike is in
// variance units (vol^2), not vol points. ObsPerYear = 0 means continuous
// monitoring.
type Contract struct {
	VarNotional decimal.Decimal // currency per variance point
	Strike      float64         // variance strike
	Texp        float64         // contract length in years
	ObsPerYear  float64         // monitoring frequency, 0 = continuous
}

// Validate checks the contract terms.
func (c Contract) Validate() error {
	if c.Texp <= 0 {
		return fmt.Errorf("varswap: texp must be positive, got %g", c.Texp)
	}
	if c.Strike < 0 {
		return fmt.Errorf("varswap: strike must be non-negative, got %g", c.Strike)
	}
	if c.ObsPerYear < 0 {
		return fmt.Errorf("varswap: obs_per_year must be non-negative, got %g", c.ObsPerYear)
	}
	return nil
}

// FairStrike returns the model fair strike for the contract's monitoring
// convention over a horizon of texp years.
func (c Contract) FairStrike(m heston.Model, texp float64) float64 {
	if c.ObsPerYear > 0 {
		return m.VarSwapStrikeDiscrete(texp, c.ObsPerYear)
	}
	return m.VarSwapStrike(texp)
}

// Value marks a running contract to market elapsed years into its life.
// realizedSoFar is the annualized variance realized over [0, elapsed]. The
// expected total variance blends realized-so-far with the model fair
// strike for the remaining window, time-weighted; the payoff against
// Strike is discounted at the model rate over the remaining time. Once
// elapsed reaches Texp the contract is settled and worth
// VarNotional * (realizedSoFar - Strike).
func (c Contract) Value(m heston.Model, elapsed, realizedSoFar float64) (decimal.Decimal, error) {
	if err := c.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := m.Validate(); err != nil {
		return decimal.Zero, err
	}
	if elapsed < 0 {
		return decimal.Zero, fmt.Errorf("varswap: elapsed must be non-negative, got %g", elapsed)
	}

	if elapsed >= c.Texp {
		return c.VarNotional.Mul(decimal.NewFromFloat(realizedSoFar - c.Strike)), nil
	}

	remaining := c.Texp - elapsed
	w := elapsed / c.Texp
	expected := w*realizedSoFar + (1-w)*c.FairStrike(m, remaining)

	df := math.Exp(-m.Rate * remaining)
	return c.VarNotional.Mul(decimal.NewFromFloat((expected - c.Strike) * df)), nil
}

// VolPoints converts a variance strike to the market vol-point quote,
// 100 * sqrt(strike).
func VolPoints(varStrike float64) float64 {
	return 100 * math.Sqrt(varStrike)
}

// VarNotionalFromVega converts a vega notional (currency per vol point) to
// the variance notional at the given vol-point strike, vega / (2 * K_vol).
func VarNotionalFromVega(vegaNotional decimal.Decimal, volStrike float64) decimal.Decimal {
	return vegaNotional.Div(decimal.NewFromFloat(2 * volStrike))
}
