package realized

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestVarianceConstantSeriesIsZero(t *testing.T) {
	t.Parallel()

	rv, err := Variance([]float64{100, 100, 100, 100}, 252)
	require.NoError(t, err)
	assert.Zero(t, rv)
}

func TestVarianceKnownSeries(t *testing.T) {
	t.Parallel()

	// Two returns of +/- r contribute 2*r^2; annualized by 252/2.
	r := 0.01
	closes := []float64{100, 100 * math.Exp(r), 100}
	rv, err := Variance(closes, 252)
	require.NoError(t, err)
	assert.InDelta(t, 252*r*r, rv, 1e-12)
}

func TestVarianceInputErrors(t *testing.T) {
	t.Parallel()

	_, err := Variance([]float64{100}, 252)
	assert.Error(t, err)

	_, err = Variance([]float64{100, 101}, 0)
	assert.Error(t, err)

	_, err = Variance([]float64{100, -1, 101}, 252)
	assert.Error(t, err)
}

func TestReadClosesCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "closes.csv")
	data := "date,close\n2026-01-02,100.5\n2026-01-03,101.25\n2026-01-04,99.8\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	closes, err := ReadCloses(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{100.5, 101.25, 99.8}, closes)
}

func TestReadClosesNoHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "closes.csv")
	require.NoError(t, os.WriteFile(path, []byte("2026-01-02,100\n2026-01-03,101\n"), 0644))

	closes, err := ReadCloses(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101}, closes)
}

func TestReadClosesXZMatchesPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := "date,close\n2026-01-02,100.5\n2026-01-03,101.25\n"

	plain := filepath.Join(dir, "closes.csv")
	require.NoError(t, os.WriteFile(plain, []byte(data), 0644))

	packed := filepath.Join(dir, "closes.csv.xz")
	f, err := os.Create(packed)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	want, err := ReadCloses(plain)
	require.NoError(t, err)
	got, err := ReadCloses(packed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadClosesErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadCloses(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,close\n2026-01-02,abc\n"), 0644))
	_, err = ReadCloses(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("date,close\n"), 0644))
	_, err = ReadCloses(empty)
	assert.Error(t, err)
}
