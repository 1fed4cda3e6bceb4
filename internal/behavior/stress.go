// Composite financial-stress scoring. Pure functions of the profile
// snapshot and accumulated crisis state; no side effects.
package behavior

import (
	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// Stress saturation points: debt-to-income at or above this ratio
// contributes maximal debt stress, and runway at or above this many
// months contributes zero liquidity stress.
const (
	dtiSaturation    = 0.60
	runwaySaturation = 6.0
)

// StressScore computes the composite financial-stress score in [0,1]
// from debt load, liquidity runway, and income uncertainty. Strictly
// increasing in debt-to-income and strictly decreasing in runway until
// their saturation points.
func StressScore(snap profile.Snapshot, cal config.Calibration) float64 {
	debt := clamp01(snap.DebtToIncome() / dtiSaturation)
	liquidity := 1 - clamp01(snap.RunwayMonths()/runwaySaturation)
	uncertainty := clamp01(snap.IncomeVolatility)

	score := cal.DebtWeight*debt +
		cal.LiquidityWeight*liquidity +
		cal.UncertaintyWeight*uncertainty
	return clamp01(score)
}

// EffectiveStress blends the profile-derived score with the stress a
// trajectory has accumulated so far. The blend keeps the profile as the
// dominant signal while letting a long crisis raise pressure month over
// month.
func EffectiveStress(score, cumulative float64) float64 {
	return clamp01(0.7*score + 0.3*cumulative)
}
