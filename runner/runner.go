// Package runner expands a scenario configuration into a pricing grid and
// journals the results.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/stochvol/config"
	"github.com/rustyeddy/stochvol/heston"
	"github.com/rustyeddy/stochvol/journal"
	"github.com/rustyeddy/stochvol/pkg/id"
	"github.com/rustyeddy/stochvol/varswap"
)

// Result summarizes a completed run.
type Result struct {
	RunID   string
	Options int // option cells priced
	Swaps   int // swap strikes computed
	Elapsed time.Duration
}

// Runner prices every (strike, expiry) cell and every swap expiry of a
// configuration and records them under a single run ID.
type Runner struct {
	Config  *config.Config
	Journal journal.Journal
	Logger  *zap.Logger // nil means no logging
}

// New returns a Runner for a validated configuration.
func New(cfg *config.Config, j journal.Journal, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Config: cfg, Journal: j, Logger: logger}, nil
}

// Run executes the full grid. Cancellation is honored between cells; a
// canceled run returns ctx.Err() with whatever was journaled so far.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: id.New()}

	model := r.Config.Model.Model()
	cp, err := r.Config.Pricing.PutCall()
	if err != nil {
		return nil, err
	}

	pricer, err := heston.NewPricer(model, r.Config.Pricing.Order)
	if err != nil {
		return nil, fmt.Errorf("build pricer: %w", err)
	}
	pricer.Logger = r.Logger

	r.Logger.Info("run started",
		zap.String("run_id", res.RunID),
		zap.Int("strikes", len(r.Config.Pricing.Strikes)),
		zap.Int("option_expiries", len(r.Config.Pricing.Expiries)),
		zap.Int("swap_expiries", len(r.Config.VarSwap.Expiries)))

	for _, texp := range r.Config.Pricing.Expiries {
		for _, strike := range r.Config.Pricing.Strikes {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			price, err := pricer.Price(strike, r.Config.Pricing.Spot, texp, cp)
			if err != nil {
				return res, fmt.Errorf("price strike=%g texp=%g: %w", strike, texp, err)
			}

			rec := journal.OptionRecord{
				RunID:  res.RunID,
				Strike: strike,
				Spot:   r.Config.Pricing.Spot,
				Texp:   texp,
				CP:     cp.String(),
				Order:  r.Config.Pricing.Order,
				Price:  price,
				Time:   time.Now().UTC(),
			}
			if err := r.Journal.RecordOption(rec); err != nil {
				return res, fmt.Errorf("journal option: %w", err)
			}
			res.Options++
		}
	}

	for _, texp := range r.Config.VarSwap.Expiries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		var strike float64
		if n := r.Config.VarSwap.ObsPerYear; n > 0 {
			strike = model.VarSwapStrikeDiscrete(texp, n)
		} else {
			strike = model.VarSwapStrike(texp)
		}

		rec := journal.SwapRecord{
			RunID:      res.RunID,
			Texp:       texp,
			ObsPerYear: r.Config.VarSwap.ObsPerYear,
			Strike:     strike,
			VolPoints:  varswap.VolPoints(strike),
			Time:       time.Now().UTC(),
		}
		if err := r.Journal.RecordSwap(rec); err != nil {
			return res, fmt.Errorf("journal swap: %w", err)
		}
		res.Swaps++
	}

	res.Elapsed = time.Since(start)
	r.Logger.Info("run complete",
		zap.String("run_id", res.RunID),
		zap.Int("options", res.Options),
		zap.Int("swaps", res.Swaps),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// OpenJournal builds the journal backend named by the configuration.
func OpenJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.OptionsFile, cfg.Journal.SwapsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}
