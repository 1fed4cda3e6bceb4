// Package config provides the behavioral calibration settings and the
// process environment for the behavesim CLI. Calibration values are
// loaded once and passed through call boundaries as an immutable value;
// nothing in here is a process-wide singleton.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Calibration holds the tunable constants of the behavioral engine.
// Defaults come from DefaultCalibration; a YAML file may override any
// subset of them.
type Calibration struct {
	// Phase base expense-reduction fractions.
	ShockReduction      float64 `yaml:"shock_reduction"`
	AdaptationReduction float64 `yaml:"adaptation_reduction"`
	SurvivalReduction   float64 `yaml:"survival_reduction"`

	// ReductionCeiling is the hard cap on any applied expense reduction.
	ReductionCeiling float64 `yaml:"reduction_ceiling"`

	// Stress composite weights. Must sum to 1; Normalize enforces it.
	DebtWeight        float64 `yaml:"debt_weight"`
	LiquidityWeight   float64 `yaml:"liquidity_weight"`
	UncertaintyWeight float64 `yaml:"uncertainty_weight"`

	// StressAccrual is the per-month cumulative stress increment per
	// unit of stress score.
	StressAccrual float64 `yaml:"stress_accrual"`

	// HelpRelief is the cumulative stress subtracted after successful
	// support, and HelpDamping scales how much support reduces the
	// need to cut expenses.
	HelpRelief  float64 `yaml:"help_relief"`
	HelpDamping float64 `yaml:"help_damping"`

	// TargetHorizonMonths is the survival horizon the optimizer
	// personality plans against.
	TargetHorizonMonths float64 `yaml:"target_horizon_months"`

	// Cognitive bias defaults.
	LossAversion       float64 `yaml:"loss_aversion"`
	PresentBias        float64 `yaml:"present_bias"`
	OptimismInflation  float64 `yaml:"optimism_inflation"`
	PessimismDeflation float64 `yaml:"pessimism_deflation"`
}

// DefaultCalibration returns the calibration used when no overrides are
// supplied. Constants follow the behavioral-finance literature values
// the product ships with.
func DefaultCalibration() Calibration {
	return Calibration{
		ShockReduction:      0.15,
		AdaptationReduction: 0.25,
		SurvivalReduction:   0.35,
		ReductionCeiling:    0.60,
		DebtWeight:          0.40,
		LiquidityWeight:     0.35,
		UncertaintyWeight:   0.25,
		StressAccrual:       0.08,
		HelpRelief:          0.20,
		HelpDamping:         0.50,
		TargetHorizonMonths: 6,
		LossAversion:        2.1,
		PresentBias:         0.7,
		OptimismInflation:   0.30,
		PessimismDeflation:  0.20,
	}
}

// Load reads a YAML calibration file over the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (Calibration, error) {
	cal := DefaultCalibration()
	if path == "" {
		return cal, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cal, nil
		}
		return cal, fmt.Errorf("read calibration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return cal, fmt.Errorf("parse calibration: %w", err)
	}
	cal.Normalize()
	return cal, nil
}

// Normalize rescales the stress weights to sum to 1 so hand-edited
// files cannot break the stress score's [0,1] range.
func (c *Calibration) Normalize() {
	sum := c.DebtWeight + c.LiquidityWeight + c.UncertaintyWeight
	if sum <= 0 {
		def := DefaultCalibration()
		c.DebtWeight = def.DebtWeight
		c.LiquidityWeight = def.LiquidityWeight
		c.UncertaintyWeight = def.UncertaintyWeight
		return
	}
	c.DebtWeight /= sum
	c.LiquidityWeight /= sum
	c.UncertaintyWeight /= sum
}

// Env holds process-level settings for the behavesim CLI.
type Env struct {
	LogLevel        string `env:"BEHAVESIM_LOG_LEVEL" envDefault:"info"`
	DBPath          string `env:"BEHAVESIM_DB" envDefault:""`
	CalibrationPath string `env:"BEHAVESIM_CALIBRATION" envDefault:""`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
