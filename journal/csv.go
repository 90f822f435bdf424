package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	options *csv.Writer
	swaps   *csv.Writer
	of, sf  *os.File
}

func NewCSV(optionsPath, swapsPath string) (*CSV, error) {
	of, err := os.Create(optionsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(swapsPath)
	if err != nil {
		of.Close()
		return nil, err
	}

	ow := csv.NewWriter(of)
	sw := csv.NewWriter(sf)

	if err := ow.Write([]string{"run_id", "strike", "spot", "texp", "cp", "order", "price", "time"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"run_id", "texp", "obs_per_year", "strike", "vol_points", "time"}); err != nil {
		return nil, err
	}

	ow.Flush()
	if err := ow.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSV{ow, sw, of, sf}, nil
}

func (j *CSV) RecordOption(r OptionRecord) error {
	err := j.options.Write([]string{
		r.RunID,
		f(r.Strike),
		f(r.Spot),
		f(r.Texp),
		r.CP,
		strconv.Itoa(r.Order),
		f(r.Price),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.options.Flush()
	return j.options.Error()
}

func (j *CSV) RecordSwap(r SwapRecord) error {
	err := j.swaps.Write([]string{
		r.RunID,
		f(r.Texp),
		f(r.ObsPerYear),
		f(r.Strike),
		f(r.VolPoints),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.swaps.Flush()
	return j.swaps.Error()
}

func (j *CSV) Close() error {
	j.options.Flush()
	if err := j.options.Error(); err != nil {
		return err
	}
	j.swaps.Flush()
	if err := j.swaps.Error(); err != nil {
		return err
	}

	if err := j.of.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
