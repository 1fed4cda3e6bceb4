// Batch metrics aggregation for enhancement runs.
package enhance

// Metrics summarizes one enhancement call. Always well-formed: a call
// either returns a complete Metrics or a fatal error, never a partial
// record.
type Metrics struct {
	// MeanExpenseReduction is the mean applied reduction fraction over
	// all processed cells, in [0, ceiling].
	MeanExpenseReduction float64 `json:"mean_expense_reduction"`

	// HelpSeekingRate is the fraction of processed trajectories that
	// sought help at least once, in [0,1].
	HelpSeekingRate float64 `json:"help_seeking_rate"`

	// SurvivalExtensionMonths is the mean gain in months-until-depletion
	// of the enhanced trajectories over their base counterparts.
	SurvivalExtensionMonths float64 `json:"survival_extension_months"`

	// PresentBiasSavingsCost estimates the dollars of savings the
	// household forgoes over the horizon due to hyperbolic discounting.
	PresentBiasSavingsCost float64 `json:"present_bias_savings_cost"`

	// SamplesProcessed and SamplesSkipped partition the batch; skipped
	// trajectories are excluded from every aggregate above.
	SamplesProcessed int `json:"samples_processed"`
	SamplesSkipped   int `json:"samples_skipped"`

	// DegradedConfidence is set when profile fields were resolved from
	// demographic defaults instead of real data.
	DegradedConfidence bool `json:"degraded_confidence"`
}

// Flat returns the metrics as a flat name→value mapping for the
// reporting layer. Booleans and counts are encoded as floats.
func (m Metrics) Flat() map[string]float64 {
	degraded := 0.0
	if m.DegradedConfidence {
		degraded = 1.0
	}
	return map[string]float64{
		"mean_expense_reduction":    m.MeanExpenseReduction,
		"help_seeking_rate":         m.HelpSeekingRate,
		"survival_extension_months": m.SurvivalExtensionMonths,
		"present_bias_savings_cost": m.PresentBiasSavingsCost,
		"samples_processed":         float64(m.SamplesProcessed),
		"samples_skipped":           float64(m.SamplesSkipped),
		"degraded_confidence":       degraded,
	}
}

// samplePartial is the per-trajectory contribution to the aggregates.
// Workers fill one partial per sample; the reducer folds them in sample
// order so aggregation stays deterministic under any scheduling.
type samplePartial struct {
	reductionSum  float64
	cells         int
	soughtHelp    bool
	extensionGain float64
	skipped       bool
}

// monthsUntilDepletion returns the 1-based month in which cumulative
// expenses first exceed the starting liquid balance. Trajectories that
// never deplete within the horizon report horizon+1.
func monthsUntilDepletion(liquidBalance float64, expenses []float64) float64 {
	spent := 0.0
	for m, e := range expenses {
		spent += e
		if spent > liquidBalance {
			return float64(m + 1)
		}
	}
	return float64(len(expenses) + 1)
}
