package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSV(t *testing.T) (*CSV, string, string) {
	t.Helper()

	dir := t.TempDir()
	optionsPath := filepath.Join(dir, "options.csv")
	swapsPath := filepath.Join(dir, "swaps.csv")

	j, err := NewCSV(optionsPath, swapsPath)
	require.NoError(t, err)

	return j, optionsPath, swapsPath
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVHeaders(t *testing.T) {
	t.Parallel()

	j, optionsPath, swapsPath := newTestCSV(t)
	require.NoError(t, j.Close())

	options := readAll(t, optionsPath)
	require.NotEmpty(t, options)
	assert.Equal(t, []string{"run_id", "strike", "spot", "texp", "cp", "order", "price", "time"}, options[0])

	swaps := readAll(t, swapsPath)
	require.NotEmpty(t, swaps)
	assert.Equal(t, []string{"run_id", "texp", "obs_per_year", "strike", "vol_points", "time"}, swaps[0])
}

func TestCSVRecordOption(t *testing.T) {
	t.Parallel()

	j, optionsPath, _ := newTestCSV(t)

	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordOption(OptionRecord{
		RunID:  "01RUN",
		Strike: 100,
		Spot:   105.5,
		Texp:   0.75,
		CP:     "call",
		Order:  2,
		Price:  9.125,
		Time:   when,
	}))
	require.NoError(t, j.Close())

	rows := readAll(t, optionsPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"01RUN", "100", "105.5", "0.75", "call", "2", "9.125", "2026-03-01T12:00:00Z"}, rows[1])
}

func TestCSVRecordSwap(t *testing.T) {
	t.Parallel()

	j, _, swapsPath := newTestCSV(t)

	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordSwap(SwapRecord{
		RunID:      "01RUN",
		Texp:       1,
		ObsPerYear: 252,
		Strike:     0.0659,
		VolPoints:  25.67,
		Time:       when,
	}))
	require.NoError(t, j.Close())

	rows := readAll(t, swapsPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"01RUN", "1", "252", "0.0659", "25.67", "2026-03-01T12:00:00Z"}, rows[1])
}
