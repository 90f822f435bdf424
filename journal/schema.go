package journal

const Schema = `
CREATE TABLE IF NOT EXISTS options (
	run_id TEXT NOT NULL,
	strike REAL NOT NULL,
	spot REAL NOT NULL,
	texp REAL NOT NULL,
	cp TEXT NOT NULL,
	approx_order INTEGER NOT NULL,
	price REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS swaps (
	run_id TEXT NOT NULL,
	texp REAL NOT NULL,
	obs_per_year REAL NOT NULL,
	strike REAL NOT NULL,
	vol_points REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_options_run ON options(run_id);
CREATE INDEX IF NOT EXISTS idx_swaps_run ON swaps(run_id);
`
