package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

func baseSnapshot() profile.Snapshot {
	return profile.Snapshot{
		MonthlyIncome:    5000,
		MonthlyExpenses:  4000,
		TotalDebt:        20000,
		LiquidBalance:    12000,
		IncomeVolatility: 0.2,
	}
}

func TestStressScoreBounds(t *testing.T) {
	cal := config.DefaultCalibration()

	cases := []profile.Snapshot{
		{},
		baseSnapshot(),
		{MonthlyIncome: 1000, MonthlyExpenses: 5000, TotalDebt: 500000, IncomeVolatility: 1},
		{MonthlyIncome: 50000, MonthlyExpenses: 1000, LiquidBalance: 1e6},
	}
	for _, snap := range cases {
		score := StressScore(snap, cal)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestStressScoreMonotoneInDebt(t *testing.T) {
	cal := config.DefaultCalibration()

	snap := baseSnapshot()
	low := StressScore(snap, cal)

	snap.TotalDebt *= 2
	high := StressScore(snap, cal)

	assert.Greater(t, high, low)
}

func TestStressScoreMonotoneInRunway(t *testing.T) {
	cal := config.DefaultCalibration()

	snap := baseSnapshot()
	withBuffer := StressScore(snap, cal)

	snap.LiquidBalance = 1000
	withoutBuffer := StressScore(snap, cal)

	assert.Greater(t, withoutBuffer, withBuffer)
}

func TestStressScoreMonotoneInVolatility(t *testing.T) {
	cal := config.DefaultCalibration()

	snap := baseSnapshot()
	steady := StressScore(snap, cal)

	snap.IncomeVolatility = 0.9
	gig := StressScore(snap, cal)

	assert.Greater(t, gig, steady)
}

func TestEffectiveStress(t *testing.T) {
	assert.GreaterOrEqual(t, EffectiveStress(0, 0), 0.0)
	assert.LessOrEqual(t, EffectiveStress(1, 1), 1.0)

	// Accumulated crisis stress raises pressure for the same profile.
	assert.Greater(t, EffectiveStress(0.5, 0.8), EffectiveStress(0.5, 0.1))
}
