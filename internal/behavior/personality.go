// Personality strategies — the five behavioral archetypes that scale
// phase base reductions. The set is closed: every archetype is listed
// here and dispatched through StrategyFor.
package behavior

import (
	"github.com/Aisprintone/Sparrow-sub006/internal/config"
)

// Strategy maps (phase, stress) to an aggressiveness multiplier applied
// to the phase's base expense reduction. Implementations are stateless
// once constructed and safe for concurrent use.
type Strategy interface {
	// Modifier returns the multiplier for the phase's base reduction.
	// stress is the effective stress in [0,1]. The returned multiplier
	// is raw; final reductions are clamped by the caller.
	Modifier(phase Phase, stress float64) float64
}

// StrategyFor returns the strategy implementation for a personality.
// The optimizer needs the profile-derived runway and the calibrated
// target horizon; the others ignore both.
func StrategyFor(p Parameters, runwayMonths float64, cal config.Calibration) Strategy {
	switch p.Personality {
	case PersonalityPlanner:
		return plannerStrategy{}
	case PersonalityAvoider:
		return avoiderStrategy{}
	case PersonalityPanicker:
		return panickerStrategy{}
	case PersonalityOptimizer:
		return optimizerStrategy{
			runwayMonths: runwayMonths,
			targetMonths: cal.TargetHorizonMonths,
			cal:          cal,
		}
	default:
		return survivorStrategy{}
	}
}

// phaseMultipliers holds one multiplier per phase for the table-driven
// strategies.
type phaseMultipliers struct {
	shock, adaptation, survival float64
}

func (m phaseMultipliers) at(phase Phase) float64 {
	switch phase {
	case PhaseShock:
		return m.shock
	case PhaseAdaptation:
		return m.adaptation
	default:
		return m.survival
	}
}

// plannerStrategy front-loads cuts: aggressive in shock, tapering as
// the plan takes hold.
type plannerStrategy struct{}

func (plannerStrategy) Modifier(phase Phase, stress float64) float64 {
	return phaseMultipliers{shock: 1.3, adaptation: 1.1, survival: 0.9}.at(phase)
}

// avoiderStrategy delays cuts: barely reacts in shock, forced to
// over-correct by survival phase.
type avoiderStrategy struct{}

func (avoiderStrategy) Modifier(phase Phase, stress float64) float64 {
	return phaseMultipliers{shock: 0.6, adaptation: 0.85, survival: 1.15}.at(phase)
}

// survivorStrategy is the undistorted baseline.
type survivorStrategy struct{}

func (survivorStrategy) Modifier(Phase, float64) float64 { return 1.0 }

// panickerStrategy swings with stress: over-corrects in shock and
// survival, under-corrects during adaptation burnout. The swing grows
// quadratically with stress and may exceed rational bounds; the crisis
// model's ceiling clamp reins it in.
type panickerStrategy struct{}

func (panickerStrategy) Modifier(phase Phase, stress float64) float64 {
	swing := 1.2 * stress * stress
	if phase == PhaseAdaptation {
		return 1 - swing
	}
	return 1 + swing
}

// optimizerStrategy cuts the minimum needed to stretch the current
// runway to the target survival horizon, never below the phase
// baseline.
type optimizerStrategy struct {
	runwayMonths float64
	targetMonths float64
	cal          config.Calibration
}

func (o optimizerStrategy) Modifier(phase Phase, stress float64) float64 {
	base := phaseBaseReduction(phase, o.cal)
	if base <= 0 {
		return 1
	}
	if o.targetMonths <= 0 || o.runwayMonths <= 0 || o.runwayMonths >= o.targetMonths {
		// Horizon already met; the smallest admissible response is the
		// phase baseline itself.
		return 1
	}
	// Cutting expenses by r stretches runway by 1/(1-r); solve for the
	// smallest r reaching the target.
	needed := 1 - o.runwayMonths/o.targetMonths
	m := needed / base
	if m < 1 {
		m = 1
	}
	return m
}
