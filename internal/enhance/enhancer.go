// Package enhance orchestrates the behavioral Monte Carlo enhancement:
// it takes a base outcome matrix from the external simulator, runs each
// trajectory through the behavioral crisis model, and aggregates batch
// metrics. The transform is parallel across samples and strictly
// sequential across months within a sample.
package enhance

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Aisprintone/Sparrow-sub006/internal/behavior"
	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// Matrix is an iterations × months outcome grid. Rows are independent
// Monte Carlo samples; columns are consecutive months.
type Matrix [][]float64

// Shape returns (rows, cols). Ragged matrices report cols of the first
// row; Validate rejects raggedness.
func (m Matrix) Shape() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// ShapeMismatchError is the single fatal error class: the base outcomes
// and random factors disagree on shape, or a matrix is ragged.
type ShapeMismatchError struct {
	BaseRows, BaseCols     int
	FactorRows, FactorCols int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: base %dx%d, factors %dx%d",
		e.BaseRows, e.BaseCols, e.FactorRows, e.FactorCols)
}

// Enhancer applies behavioral enhancement to simulated outcome
// matrices. Construct once per (demographic, overrides) pair; safe for
// concurrent use since every call builds its own per-trajectory state.
type Enhancer struct {
	params behavior.Parameters
	bias   behavior.BiasEngine
	cal    config.Calibration
}

// New builds an Enhancer from a demographic, calibration, and optional
// behavioral overrides.
func New(demo profile.Demographic, cal config.Calibration, ov behavior.Overrides) *Enhancer {
	params := behavior.NewParameters(demo, cal, ov)
	return &Enhancer{
		params: params,
		bias:   behavior.NewBiasEngine(params, cal.OptimismInflation, cal.PessimismDeflation),
		cal:    cal,
	}
}

// Parameters exposes the resolved behavioral parameters of this
// enhancer, mainly for run records and logs.
func (e *Enhancer) Parameters() behavior.Parameters { return e.params }

// EnhanceEmergencyFund transforms a batch of emergency expense
// trajectories. base holds monthly expense levels per sample; factors
// is a matching-shape matrix of uniform [0,1) draws supplied by the
// caller. The returned matrix has the same shape as base, every cell
// derived from exactly one base cell. Identical inputs produce
// bit-identical outputs.
func (e *Enhancer) EnhanceEmergencyFund(base Matrix, snap profile.Snapshot, factors Matrix) (Matrix, Metrics, error) {
	if err := validateShapes(base, factors); err != nil {
		return nil, Metrics{}, err
	}

	snap, degraded := snap.Resolve()
	rows, cols := base.Shape()

	// The scenario type selects which bias families distort this batch.
	model := behavior.NewEmergencyModel(e.params, snap, e.cal, e.bias,
		behavior.BiasesFor(behavior.ScenarioEmergencyFund))

	out := make(Matrix, rows)
	partials := make([]samplePartial, rows)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < rows; i++ {
		g.Go(func() error {
			out[i], partials[i] = e.enhanceSample(model, i, base[i], snap, factors[i])
			return nil
		})
	}
	// Workers only report anomalies through partials, never errors.
	_ = g.Wait()

	metrics := e.reduce(partials, cols, snap)
	metrics.DegradedConfidence = degraded

	slog.Info("enhancement complete",
		"scenario", behavior.ScenarioEmergencyFund,
		"personality", e.params.Personality,
		"samples", rows,
		"months", cols,
		"skipped", metrics.SamplesSkipped,
		"mean_reduction", fmt.Sprintf("%.4f", metrics.MeanExpenseReduction),
		"help_rate", fmt.Sprintf("%.4f", metrics.HelpSeekingRate),
	)
	return out, metrics, nil
}

// enhanceSample runs one trajectory through the crisis model. Anomalies
// mark the sample skipped and pass the base values through unchanged,
// so the output shape contract holds even for excluded samples.
func (e *Enhancer) enhanceSample(model behavior.ScenarioModel, sample int, base []float64, snap profile.Snapshot, factors []float64) ([]float64, samplePartial) {
	out := make([]float64, len(base))
	var p samplePartial

	state := behavior.NewCrisisState()
	for m := 0; m < len(base); m++ {
		expense := base[m]
		if math.IsNaN(expense) || math.IsInf(expense, 0) || expense < 0 {
			return e.skipSample(sample, m, base, fmt.Errorf("expense %v out of range", expense))
		}

		res, err := model.Step(&state, m+1, expense, factors[m])
		if err != nil {
			return e.skipSample(sample, m, base, err)
		}

		out[m] = res.AdjustedExpense
		p.reductionSum += res.Reduction
		p.cells++
		if res.SoughtHelp {
			p.soughtHelp = true
		}
	}

	p.extensionGain = monthsUntilDepletion(snap.LiquidBalance, out) -
		monthsUntilDepletion(snap.LiquidBalance, base)
	return out, p
}

// skipSample records a per-sample anomaly: the offending trajectory is
// returned untouched and excluded from aggregates.
func (e *Enhancer) skipSample(sample, month int, base []float64, err error) ([]float64, samplePartial) {
	slog.Warn("trajectory skipped",
		"sample", sample,
		"month", month+1,
		"error", err,
	)
	out := make([]float64, len(base))
	copy(out, base)
	return out, samplePartial{skipped: true}
}

// reduce folds per-sample partials into batch metrics, iterating in
// sample order for deterministic aggregation.
func (e *Enhancer) reduce(partials []samplePartial, months int, snap profile.Snapshot) Metrics {
	var m Metrics
	reductionSum := 0.0
	cells := 0
	helped := 0
	extensionSum := 0.0

	for _, p := range partials {
		if p.skipped {
			m.SamplesSkipped++
			continue
		}
		m.SamplesProcessed++
		reductionSum += p.reductionSum
		cells += p.cells
		extensionSum += p.extensionGain
		if p.soughtHelp {
			helped++
		}
	}

	if cells > 0 {
		m.MeanExpenseReduction = reductionSum / float64(cells)
	}
	if m.SamplesProcessed > 0 {
		m.HelpSeekingRate = float64(helped) / float64(m.SamplesProcessed)
		m.SurvivalExtensionMonths = extensionSum / float64(m.SamplesProcessed)
	}

	// Hyperbolic discounting shaves savings propensity relative to the
	// rational baseline; price each future month's surplus at its
	// felt value and sum the shortfall over the horizon.
	surplus := snap.MonthlyIncome - snap.MonthlyExpenses
	if surplus > 0 {
		for d := 1; d <= months; d++ {
			m.PresentBiasSavingsCost += surplus - e.bias.DiscountFutureBenefit(surplus, d)
		}
	}
	return m
}

// validateShapes rejects shape disagreement and ragged rows up front;
// this is the only fatal failure mode of an enhancement call.
func validateShapes(base, factors Matrix) error {
	br, bc := base.Shape()
	fr, fc := factors.Shape()
	if br != fr || bc != fc {
		return &ShapeMismatchError{BaseRows: br, BaseCols: bc, FactorRows: fr, FactorCols: fc}
	}
	for i := range base {
		if len(base[i]) != bc || len(factors[i]) != fc {
			return &ShapeMismatchError{BaseRows: br, BaseCols: bc, FactorRows: fr, FactorCols: fc}
		}
	}
	return nil
}
