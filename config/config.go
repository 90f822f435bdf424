// Package config loads and validates scenario configurations for batch
// pricing runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/stochvol/bsm"
	"github.com/rustyeddy/stochvol/heston"
)

// Config is the complete configuration of a pricing run.
type Config struct {
	Model   ModelConfig   `json:"model" yaml:"model"`
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`
	VarSwap VarSwapConfig `json:"varswap" yaml:"varswap"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// ModelConfig holds the Heston parameters.
type ModelConfig struct {
	V0    float64 `json:"v0" yaml:"v0"`
	Kappa float64 `json:"kappa" yaml:"kappa"`
	Theta float64 `json:"theta" yaml:"theta"`
	Xi    float64 `json:"xi" yaml:"xi"`
	Rho   float64 `json:"rho" yaml:"rho"`
	Rate  float64 `json:"rate" yaml:"rate"`
	Div   float64 `json:"div,omitempty" yaml:"div,omitempty"`
}

// Model converts the configuration into a heston.Model.
func (mc ModelConfig) Model() heston.Model {
	return heston.Model{
		V0:    mc.V0,
		Kappa: mc.Kappa,
		Theta: mc.Theta,
		Xi:    mc.Xi,
		Rho:   mc.Rho,
		Rate:  mc.Rate,
		Div:   mc.Div,
	}
}

// PricingConfig describes the option grid to price.
type PricingConfig struct {
	Order    int       `json:"order" yaml:"order"`
	Spot     float64   `json:"spot" yaml:"spot"`
	CP       string    `json:"cp" yaml:"cp"` // "call" or "put"
	Strikes  []float64 `json:"strikes" yaml:"strikes"`
	Expiries []float64 `json:"expiries" yaml:"expiries"`
}

// PutCall parses the configured direction.
func (pc PricingConfig) PutCall() (bsm.PutCall, error) {
	switch strings.ToLower(strings.TrimSpace(pc.CP)) {
	case "call", "c", "":
		return bsm.Call, nil
	case "put", "p":
		return bsm.Put, nil
	default:
		return 0, fmt.Errorf("pricing.cp must be 'call' or 'put', got %q", pc.CP)
	}
}

// VarSwapConfig describes the variance-swap strikes to compute.
type VarSwapConfig struct {
	Expiries   []float64 `json:"expiries" yaml:"expiries"`
	ObsPerYear float64   `json:"obs_per_year,omitempty" yaml:"obs_per_year,omitempty"` // 0 = continuous
}

// JournalConfig selects where run results are recorded.
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "csv" or "sqlite"
	OptionsFile string `json:"options_file,omitempty" yaml:"options_file,omitempty"`
	SwapsFile   string `json:"swaps_file,omitempty" yaml:"swaps_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Model.Model().Validate(); err != nil {
		return err
	}

	if c.Pricing.Order != 1 && c.Pricing.Order != 2 {
		return fmt.Errorf("pricing.order must be 1 or 2, got %d", c.Pricing.Order)
	}
	if c.Pricing.Spot <= 0 {
		return fmt.Errorf("pricing.spot must be positive")
	}
	if _, err := c.Pricing.PutCall(); err != nil {
		return err
	}
	if len(c.Pricing.Strikes) == 0 {
		return fmt.Errorf("pricing.strikes is required")
	}
	for _, k := range c.Pricing.Strikes {
		if k <= 0 {
			return fmt.Errorf("pricing.strikes must be positive, got %g", k)
		}
	}
	if len(c.Pricing.Expiries) == 0 {
		return fmt.Errorf("pricing.expiries is required")
	}
	for _, texp := range c.Pricing.Expiries {
		if texp <= 0 {
			return fmt.Errorf("pricing.expiries must be positive, got %g", texp)
		}
	}

	for _, texp := range c.VarSwap.Expiries {
		if texp <= 0 {
			return fmt.Errorf("varswap.expiries must be positive, got %g", texp)
		}
	}
	if c.VarSwap.ObsPerYear < 0 {
		return fmt.Errorf("varswap.obs_per_year must be non-negative")
	}

	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.OptionsFile == "" || c.Journal.SwapsFile == "") {
		return fmt.Errorf("journal options_file and swaps_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			V0:    0.04,
			Kappa: 1.5,
			Theta: 0.04,
			Xi:    0.3,
			Rho:   0.0,
			Rate:  0.0,
		},
		Pricing: PricingConfig{
			Order:    2,
			Spot:     100,
			CP:       "call",
			Strikes:  []float64{80, 90, 100, 110, 120},
			Expiries: []float64{0.25, 0.5, 1, 2},
		},
		VarSwap: VarSwapConfig{
			Expiries:   []float64{0.25, 0.5, 1, 2},
			ObsPerYear: 252,
		},
		Journal: JournalConfig{
			Type:        "csv",
			OptionsFile: "./options.csv",
			SwapsFile:   "./swaps.csv",
		},
	}
}
