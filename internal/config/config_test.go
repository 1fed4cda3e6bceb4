package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalibration(t *testing.T) {
	cal := DefaultCalibration()

	assert.InDelta(t, 0.15, cal.ShockReduction, 1e-9)
	assert.InDelta(t, 0.25, cal.AdaptationReduction, 1e-9)
	assert.InDelta(t, 0.35, cal.SurvivalReduction, 1e-9)
	assert.InDelta(t, 0.60, cal.ReductionCeiling, 1e-9)
	assert.InDelta(t, 1.0, cal.DebtWeight+cal.LiquidityWeight+cal.UncertaintyWeight, 1e-9)
	assert.InDelta(t, 2.1, cal.LossAversion, 1e-9)
	assert.InDelta(t, 0.7, cal.PresentBias, 1e-9)
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cal, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibration(), cal)

	cal, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCalibration(), cal)
}

func TestLoadOverridesSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shock_reduction: 0.18\npresent_bias: 0.8\n"), 0644))

	cal, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.18, cal.ShockReduction, 1e-9)
	assert.InDelta(t, 0.8, cal.PresentBias, 1e-9)
	// Untouched fields keep their defaults.
	assert.InDelta(t, 0.25, cal.AdaptationReduction, 1e-9)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shock_reduction: [not a number"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalizeRescalesWeights(t *testing.T) {
	cal := DefaultCalibration()
	cal.DebtWeight = 2
	cal.LiquidityWeight = 1
	cal.UncertaintyWeight = 1
	cal.Normalize()

	assert.InDelta(t, 1.0, cal.DebtWeight+cal.LiquidityWeight+cal.UncertaintyWeight, 1e-9)
	assert.InDelta(t, 0.5, cal.DebtWeight, 1e-9)

	// Degenerate weights fall back to the defaults.
	cal.DebtWeight, cal.LiquidityWeight, cal.UncertaintyWeight = 0, 0, 0
	cal.Normalize()
	assert.InDelta(t, 0.40, cal.DebtWeight, 1e-9)
}
