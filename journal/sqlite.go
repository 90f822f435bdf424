package journal

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordOption(r OptionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO options
		(run_id, strike, spot, texp, cp, approx_order, price, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Strike, r.Spot, r.Texp, r.CP, r.Order, r.Price, r.Time,
	)
	return err
}

func (j *SQLite) RecordSwap(r SwapRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO swaps
		(run_id, texp, obs_per_year, strike, vol_points, time)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Texp, r.ObsPerYear, r.Strike, r.VolPoints, r.Time,
	)
	return err
}

// ListOptionsByRun returns every option record of a run in insertion order.
func (j *SQLite) ListOptionsByRun(ctx context.Context, runID string) ([]OptionRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, strike, spot, texp, cp, approx_order, price, time
		FROM options WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []OptionRecord
	for rows.Next() {
		var r OptionRecord
		if err := rows.Scan(&r.RunID, &r.Strike, &r.Spot, &r.Texp, &r.CP, &r.Order, &r.Price, &r.Time); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ListSwapsByRun returns every swap record of a run in insertion order.
func (j *SQLite) ListSwapsByRun(ctx context.Context, runID string) ([]SwapRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, texp, obs_per_year, strike, vol_points, time
		FROM swaps WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []SwapRecord
	for rows.Next() {
		var r SwapRecord
		if err := rows.Scan(&r.RunID, &r.Texp, &r.ObsPerYear, &r.Strike, &r.VolPoints, &r.Time); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
