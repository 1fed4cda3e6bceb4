package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthsUntilDepletion(t *testing.T) {
	expenses := []float64{1000, 1000, 1000, 1000}

	assert.Equal(t, 3.0, monthsUntilDepletion(2500, expenses))
	assert.Equal(t, 1.0, monthsUntilDepletion(500, expenses))
	// Never depleting reports horizon+1.
	assert.Equal(t, 5.0, monthsUntilDepletion(10000, expenses))
}

func TestFlatMetrics(t *testing.T) {
	m := Metrics{
		MeanExpenseReduction: 0.21,
		HelpSeekingRate:      0.4,
		SamplesProcessed:     100,
		DegradedConfidence:   true,
	}
	flat := m.Flat()

	assert.InDelta(t, 0.21, flat["mean_expense_reduction"], 1e-9)
	assert.InDelta(t, 0.4, flat["help_seeking_rate"], 1e-9)
	assert.InDelta(t, 100, flat["samples_processed"], 1e-9)
	assert.InDelta(t, 1, flat["degraded_confidence"], 1e-9)
}
