// Package journal records pricing-run results to CSV files or SQLite.
package journal

import "time"

// OptionRecord is one priced option cell of a run grid.
type OptionRecord struct {
	RunID  string
	Strike float64
	Spot   float64
	Texp   float64
	CP     string // "call" or "put"
	Order  int
	Price  float64
	Time   time.Time
}

// SwapRecord is one variance-swap fair strike of a run.
type SwapRecord struct {
	RunID      string
	Texp       float64
	ObsPerYear float64 // 0 = continuous monitoring
	Strike     float64
	VolPoints  float64
	Time       time.Time
}

// Journal persists run records.
type Journal interface {
	RecordOption(OptionRecord) error
	RecordSwap(SwapRecord) error
	Close() error
}
