// Package realized computes annualized realized variance from close-price
// series, the floating leg that variance-swap strikes settle against.
package realized

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// Variance returns the annualized realized variance of a close-price
// series sampled obsPerYear times per year, using the zero-mean log-return
// convention of variance-swap settlement:
//
//	RV = (obsPerYear / n) * sum over i of ln(S_i / S_{i-1})^2
//
// where n is the number of returns. Needs at least two closes, all
// positive.
func Variance(closes []float64, obsPerYear float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("realized: need at least 2 closes, got %d", len(closes))
	}
	if obsPerYear <= 0 {
		return 0, fmt.Errorf("realized: obs_per_year must be positive, got %g", obsPerYear)
	}

	sum := 0.0
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("realized: non-positive close at index %d", i)
		}
		r := math.Log(closes[i] / closes[i-1])
		sum += r * r
	}
	return obsPerYear / float64(len(closes)-1) * sum, nil
}

// ReadCloses loads a date,close CSV file and returns the close column in
// file order. A header row is skipped when the close field does not parse
// as a number. Files ending in .xz are decompressed transparently.
func ReadCloses(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open closes file: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		src = xr
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	var closes []float64
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read closes row %d: %w", row, err)
		}
		row++
		if len(rec) < 2 {
			return nil, fmt.Errorf("bad closes row %d (need date,close): %v", row, rec)
		}

		c, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if row == 1 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("bad close %q at row %d: %w", rec[1], row, err)
		}
		closes = append(closes, c)
	}

	if len(closes) == 0 {
		return nil, fmt.Errorf("no closes found in %s", path)
	}
	return closes, nil
}
