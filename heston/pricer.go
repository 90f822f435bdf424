package heston

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/rustyeddy/stochvol/bsm"
)

// ErrUnsupportedOrder is returned for approximation orders outside {1, 2}.
var ErrUnsupportedOrder = errors.New("heston: unsupported approximation order")

// rhoTol is the threshold below which correlation is treated as zero for
// the purposes of the Ball-Roma warning.
const rhoTol = 1e-8

// BasePricer is the capability the approximation needs from its base
// model: a price and the second partial derivative of that price with
// respect to variance. bsm.Model satisfies it; substitute a forward-measure
// or otherwise adjusted variant without touching the moment-matching logic.
type BasePricer interface {
	Price(strike, spot, texp float64, cp bsm.PutCall) float64
	D2PriceDVar(strike, spot, texp float64, cp bsm.PutCall) float64
}

// BaseFactory builds a BasePricer for an effective volatility and the
// model's rates.
type BaseFactory func(sigma, rate, div float64) BasePricer

// Pricer prices European options with the Ball & Roma (1994)
// moment-matching approximation: a base price at the mean average variance,
// plus (at order 2) a curvature correction scaled by the average-variance's
// own variance. The approximation is derived for the uncorrelated (rho = 0)
// case only; a materially nonzero Rho triggers a warning on Logger, once
// per call, and the computation proceeds regardless.
type Pricer struct {
	Model Model
	Order int // 1 or 2

	// Logger receives the correlation warning. Nil suppresses it.
	Logger *zap.Logger

	// NewBase overrides the base pricer; nil means bsm.Model.
	NewBase BaseFactory
}

// NewPricer returns a Pricer after validating the model and the
// approximation order.
func NewPricer(m Model, order int) (*Pricer, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if order != 1 && order != 2 {
		return nil, ErrUnsupportedOrder
	}
	return &Pricer{Model: m, Order: order}, nil
}

// Price returns the approximate option price. Order is re-checked on every
// call since the fields are exported; any order outside {1, 2} fails with
// ErrUnsupportedOrder before any computation.
func (p *Pricer) Price(strike, spot, texp float64, cp bsm.PutCall) (float64, error) {
	if p.Order != 1 && p.Order != 2 {
		return 0, ErrUnsupportedOrder
	}

	if math.Abs(p.Model.Rho) > rhoTol && p.Logger != nil {
		p.Logger.Warn("pricing ignores correlation; approximation assumes rho = 0",
			zap.Float64("rho", p.Model.Rho))
	}

	avgVar, avgVarVar := p.Model.AvgVarMoments(texp)

	newBase := p.NewBase
	if newBase == nil {
		newBase = func(sigma, rate, div float64) BasePricer {
			return bsm.Model{Sigma: sigma, Rate: rate, Div: div}
		}
	}
	base := newBase(math.Sqrt(avgVar), p.Model.Rate, p.Model.Div)

	price := base.Price(strike, spot, texp, cp)
	if p.Order == 2 {
		price += 0.5 * avgVarVar * base.D2PriceDVar(strike, spot, texp, cp)
	}
	return price, nil
}
