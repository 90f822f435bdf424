package heston

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rustyeddy/stochvol/bsm"
)

func TestNewPricerValidatesOrder(t *testing.T) {
	t.Parallel()

	m := testModel()

	for _, order := range []int{1, 2} {
		p, err := NewPricer(m, order)
		require.NoError(t, err)
		assert.Equal(t, order, p.Order)
	}

	for _, order := range []int{0, 3, -1, 7} {
		_, err := NewPricer(m, order)
		assert.ErrorIs(t, err, ErrUnsupportedOrder)
	}
}

func TestNewPricerValidatesModel(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.Kappa = 0
	_, err := NewPricer(m, 2)
	assert.Error(t, err)
}

func TestPriceRejectsUnsupportedOrderAtCallTime(t *testing.T) {
	t.Parallel()

	// Fields are exported, so a bad order can appear after construction.
	p := &Pricer{Model: testModel(), Order: 3}
	_, err := p.Price(100, 100, 1, bsm.Call)
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}

func TestPriceOrder1IsBasePrice(t *testing.T) {
	t.Parallel()

	m := testModel()
	p, err := NewPricer(m, 1)
	require.NoError(t, err)

	got, err := p.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)

	avgVar, _ := m.AvgVarMoments(1)
	want := bsm.Model{Sigma: math.Sqrt(avgVar), Rate: m.Rate, Div: m.Div}.Price(100, 100, 1, bsm.Call)
	assert.InDelta(t, want, got, 1e-14)
}

func TestPriceOrder2CorrectionSign(t *testing.T) {
	t.Parallel()

	// The order-2 correction is 0.5*avgVarVar*d2P/dVar2, so its sign
	// follows the variance-convexity of the Black-Scholes price: concave
	// at the forward, convex in the wings.
	m := testModel()
	p1, err := NewPricer(m, 1)
	require.NoError(t, err)
	p2, err := NewPricer(m, 2)
	require.NoError(t, err)

	atm1, err := p1.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)
	atm2, err := p2.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)
	assert.Less(t, atm2, atm1)

	wing1, err := p1.Price(140, 100, 1, bsm.Call)
	require.NoError(t, err)
	wing2, err := p2.Price(140, 100, 1, bsm.Call)
	require.NoError(t, err)
	assert.Greater(t, wing2, wing1)
}

func TestPricePutCallParityBothOrders(t *testing.T) {
	t.Parallel()

	// The variance correction is direction-free, so parity holds exactly
	// at both orders.
	m := testModel()
	m.Rate = 0.03
	m.Div = 0.01

	for _, order := range []int{1, 2} {
		p, err := NewPricer(m, order)
		require.NoError(t, err)

		call, err := p.Price(110, 100, 1, bsm.Call)
		require.NoError(t, err)
		put, err := p.Price(110, 100, 1, bsm.Put)
		require.NoError(t, err)

		fwd := 100*math.Exp(-m.Div) - 110*math.Exp(-m.Rate)
		assert.InDelta(t, fwd, call-put, 1e-12, "order %d", order)
	}
}

func TestPriceWarnsOnCorrelationOncePerCall(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)

	m := testModel()
	m.Rho = 0.5
	p, err := NewPricer(m, 2)
	require.NoError(t, err)
	p.Logger = zap.New(core)

	price, err := p.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(price))
	assert.False(t, math.IsInf(price, 0))
	assert.Equal(t, 1, logs.Len())

	_, err = p.Price(90, 100, 1, bsm.Put)
	require.NoError(t, err)
	assert.Equal(t, 2, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, 0.5, entry.ContextMap()["rho"])
}

func TestPriceNoWarningWhenUncorrelated(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)

	p, err := NewPricer(testModel(), 2)
	require.NoError(t, err)
	p.Logger = zap.New(core)

	_, err = p.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

type spyBase struct {
	sigma, rate, div float64
	priced           int
	curved           int
}

func (s *spyBase) Price(strike, spot, texp float64, cp bsm.PutCall) float64 {
	s.priced++
	return 42
}

func (s *spyBase) D2PriceDVar(strike, spot, texp float64, cp bsm.PutCall) float64 {
	s.curved++
	return 0
}

func TestPriceUsesInjectedBaseFactory(t *testing.T) {
	t.Parallel()

	m := testModel()
	p, err := NewPricer(m, 2)
	require.NoError(t, err)

	spy := &spyBase{}
	p.NewBase = func(sigma, rate, div float64) BasePricer {
		spy.sigma, spy.rate, spy.div = sigma, rate, div
		return spy
	}

	got, err := p.Price(100, 100, 1, bsm.Call)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	avgVar, _ := m.AvgVarMoments(1)
	assert.InDelta(t, math.Sqrt(avgVar), spy.sigma, 1e-14)
	assert.Equal(t, m.Rate, spy.rate)
	assert.Equal(t, m.Div, spy.div)
	assert.Equal(t, 1, spy.priced)
	assert.Equal(t, 1, spy.curved)
}
