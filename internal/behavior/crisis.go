// Emergency crisis model — the phase state machine that drives monthly
// expense-reduction and help-seeking decisions during a financial
// emergency.
package behavior

import (
	"fmt"

	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// Phase enumerates the emergency-response phases. Transitions are a
// pure function of elapsed months, nothing else.
type Phase uint8

const (
	PhaseShock      Phase = iota // month 1
	PhaseAdaptation              // months 2–3
	PhaseSurvival                // month 4 onward
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseShock:
		return "shock"
	case PhaseAdaptation:
		return "adaptation"
	default:
		return "survival"
	}
}

// PhaseForMonth returns the phase for a 1-based month count.
func PhaseForMonth(month int) Phase {
	switch {
	case month <= 1:
		return PhaseShock
	case month <= 3:
		return PhaseAdaptation
	default:
		return PhaseSurvival
	}
}

// phaseBaseReduction returns the calibrated base expense-reduction
// fraction for a phase, before personality modifiers.
func phaseBaseReduction(p Phase, cal config.Calibration) float64 {
	switch p {
	case PhaseShock:
		return cal.ShockReduction
	case PhaseAdaptation:
		return cal.AdaptationReduction
	default:
		return cal.SurvivalReduction
	}
}

// CrisisState is the per-trajectory state carried forward month to
// month. Create one per trajectory; never share across trajectories.
type CrisisState struct {
	Month            int     // months elapsed, 1-based
	CumulativeStress float64 // [0,1], non-decreasing except via help relief
	HasSoughtHelp    bool
	Phase            Phase
}

// NewCrisisState returns the month-zero state for a fresh trajectory.
func NewCrisisState() CrisisState {
	return CrisisState{Phase: PhaseShock}
}

// StepResult is the outcome of one month of crisis behavior.
type StepResult struct {
	AdjustedExpense float64
	Reduction       float64 // applied fraction in [0, ceiling]
	SoughtHelp      bool
	HelpSucceeded   bool
}

// ScenarioModel is the per-step adjustment contract all scenario
// behavior models implement. The emergency model below is the primary
// implementation; sibling scenario models (student-loan decision trees)
// plug in through the same contract.
type ScenarioModel interface {
	// Step advances the trajectory one month, mutating state and
	// returning the adjusted outcome value for that cell. u is the
	// externally supplied uniform draw for this (sample, month).
	Step(state *CrisisState, month int, value float64, u float64) (StepResult, error)
}

// EmergencyModel implements the emergency-fund crisis behavior: phase
// base reductions scaled by a personality strategy, distorted by the
// scenario's cognitive biases, damped by social support when help
// arrives.
type EmergencyModel struct {
	strategy      Strategy
	social        SocialAdjuster
	bias          BiasEngine
	biases        BiasSet
	cal           config.Calibration
	profileStress float64
}

// NewEmergencyModel wires a model for one trajectory batch. The caller
// selects which biases apply via the bias set; all inputs are immutable
// for the duration of an enhancement call.
func NewEmergencyModel(params Parameters, snap profile.Snapshot, cal config.Calibration, bias BiasEngine, biases BiasSet) *EmergencyModel {
	return &EmergencyModel{
		strategy:      StrategyFor(params, snap.RunwayMonths(), cal),
		social:        NewSocialAdjuster(params.Demographic, params.Culture),
		bias:          bias,
		biases:        biases,
		cal:           cal,
		profileStress: StressScore(snap, cal),
	}
}

// Step advances one month. Out-of-domain inputs return an error so the
// orchestrator can skip the offending trajectory without aborting the
// batch.
func (m *EmergencyModel) Step(state *CrisisState, month int, expense float64, u float64) (StepResult, error) {
	if month < 1 {
		return StepResult{}, fmt.Errorf("month %d out of range", month)
	}
	if u < 0 || u >= 1 {
		return StepResult{}, fmt.Errorf("random factor %v outside [0,1)", u)
	}
	if state.CumulativeStress < 0 || state.CumulativeStress > 1 {
		return StepResult{}, fmt.Errorf("cumulative stress %v outside [0,1]", state.CumulativeStress)
	}

	state.Month = month
	state.Phase = PhaseForMonth(month)

	stress := EffectiveStress(m.profileStress, state.CumulativeStress)

	base := phaseBaseReduction(state.Phase, m.cal)
	modifier := m.strategy.Modifier(state.Phase, stress)
	reduction := clamp(base*modifier, 0, m.cal.ReductionCeiling)

	// Stress accrues with sustained pressure.
	state.CumulativeStress = clamp01(state.CumulativeStress + m.cal.StressAccrual*stress)

	res := StepResult{}
	support := m.social.Support(stress)

	// Asking for help carries a λ-weighted loss of standing.
	helpProb := support.HelpSeekProbability
	if m.biases.LossAversion {
		helpProb = clamp01(helpProb / m.bias.HelpSeekReluctance())
	}

	if helpProb > 0 && u < helpProb {
		res.SoughtHelp = true
		state.HasSoughtHelp = true

		// Conditioned on u < p, u/p is again uniform on [0,1); reuse it
		// as the availability draw so one factor per cell keeps the
		// whole transform reproducible.
		draw := u / helpProb

		// Optimists overestimate how reliably their network comes
		// through, and the expectation partly self-fulfils: they keep
		// asking until something lands.
		avail := m.social.AvailabilityProbability()
		if m.biases.Optimism {
			avail = m.bias.InflateGoodOutcome(avail)
		}
		if draw < avail {
			res.HelpSucceeded = true
			state.CumulativeStress = clamp01(state.CumulativeStress - m.cal.HelpRelief)

			// Supported households need to cut less. Under mental
			// accounting the aid lands in the windfall bucket, so only
			// its spendable share offsets the cuts.
			damp := m.cal.HelpDamping * support.SupportMagnitude
			if m.biases.MentalAccounting {
				damp *= m.bias.SpendPropensity(SourceGift)
			}
			reduction *= 1 - damp
		}
	}

	res.Reduction = clamp(reduction, 0, m.cal.ReductionCeiling)
	res.AdjustedExpense = expense * (1 - res.Reduction)
	return res, nil
}
