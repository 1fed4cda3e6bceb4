// Cognitive bias transforms — stateless pure functions distorting
// financial quantities the way people (not spreadsheets) weigh them.
// Each transform affects decision weighting only; it never rewrites the
// literal cash values in a trajectory.
package behavior

import "math"

// BiasEngine bundles the bias transforms with their calibrated
// magnitudes. Zero cost to copy; construct with NewBiasEngine.
type BiasEngine struct {
	lossAversion       float64 // λ ≥ 1
	presentBias        float64 // β ∈ (0,1]
	optimismInflation  float64 // good-outcome probability inflation
	pessimismDeflation float64 // bad-outcome probability deflation
}

// NewBiasEngine builds a bias engine from run parameters. Magnitudes
// follow the parameters, which are already clamped to their domains.
func NewBiasEngine(p Parameters, optimismInflation, pessimismDeflation float64) BiasEngine {
	return BiasEngine{
		lossAversion:       p.LossAversion,
		presentBias:        p.PresentBias,
		optimismInflation:  optimismInflation,
		pessimismDeflation: pessimismDeflation,
	}
}

// PerceivedLoss returns the decision weight of a loss relative to an
// equivalent gain. A $100 loss feels like losing λ×$100.
func (b BiasEngine) PerceivedLoss(loss float64) float64 {
	if loss <= 0 {
		return 0
	}
	return loss * b.lossAversion
}

// DiscountFutureBenefit applies hyperbolic-style devaluation to a
// benefit arriving monthsAhead from now: V·β^D. With the default
// β=0.7 a benefit twelve months out retains under 2% of its face
// value, which is why modeled savings propensity collapses versus the
// rational exponential baseline.
func (b BiasEngine) DiscountFutureBenefit(value float64, monthsAhead int) float64 {
	if monthsAhead <= 0 {
		return value
	}
	return value * math.Pow(b.presentBias, float64(monthsAhead))
}

// TransactionSource tags where money came from for mental accounting.
type TransactionSource uint8

const (
	SourceEarned TransactionSource = iota
	SourceRefund
	SourceBonus
	SourceGift
)

// Spend propensities per mental-accounting bucket: windfalls land in
// the discretionary bucket and get spent far more readily than earned
// income of equal size.
const (
	earnedSpendPropensity   = 0.30
	windfallSpendPropensity = 0.68
)

// SpendPropensity returns the fraction of an inflow the model expects
// to be spent rather than saved, by source bucket.
func (BiasEngine) SpendPropensity(src TransactionSource) float64 {
	switch src {
	case SourceRefund, SourceBonus, SourceGift:
		return windfallSpendPropensity
	default:
		return earnedSpendPropensity
	}
}

// ExpectedSpend applies mental accounting to an inflow, returning the
// modeled discretionary spend out of it.
func (b BiasEngine) ExpectedSpend(amount float64, src TransactionSource) float64 {
	if amount <= 0 {
		return 0
	}
	return amount * b.SpendPropensity(src)
}

// helpSeekLossShare is how much of the λ-amplified social cost of
// admitting need carries into the help-seeking decision.
const helpSeekLossShare = 0.25

// HelpSeekReluctance returns the divisor loss aversion puts on the
// help-seek probability. Asking for help is felt as a loss of
// standing, weighted λ× like any other loss, so loss-averse households
// under-seek relative to the raw social model.
func (b BiasEngine) HelpSeekReluctance() float64 {
	return 1 + helpSeekLossShare*(b.lossAversion-1)
}

// InflateGoodOutcome applies optimism bias to a good-outcome
// probability, clamped back into [0,1].
func (b BiasEngine) InflateGoodOutcome(p float64) float64 {
	return clamp01(p * (1 + b.optimismInflation))
}

// DeflateBadOutcome applies optimism bias to a bad-outcome probability,
// clamped back into [0,1].
func (b BiasEngine) DeflateBadOutcome(p float64) float64 {
	return clamp01(p * (1 - b.pessimismDeflation))
}

// Anchoring: real decisions close only part of the gap toward a
// rational target per cycle.
const (
	minAnchorAdjustment = 0.20
	maxAnchorAdjustment = 0.40
)

// AnchoredAdjustment pulls a value from its anchor toward target,
// closing only rate of the gap. rate is clamped to the documented
// insufficiency band [0.20, 0.40].
func (BiasEngine) AnchoredAdjustment(anchor, target, rate float64) float64 {
	rate = clamp(rate, minAnchorAdjustment, maxAnchorAdjustment)
	return anchor + rate*(target-anchor)
}

// ScenarioKind selects which biases an enhancement scenario applies.
type ScenarioKind uint8

const (
	ScenarioEmergencyFund ScenarioKind = iota
	ScenarioRetirement
	ScenarioStudentLoan
)

// String returns the snake_case scenario name used in run records.
func (s ScenarioKind) String() string {
	switch s {
	case ScenarioEmergencyFund:
		return "emergency_fund"
	case ScenarioRetirement:
		return "retirement"
	case ScenarioStudentLoan:
		return "student_loan"
	default:
		return "unknown"
	}
}

// BiasSet flags which bias families a scenario exercises.
type BiasSet struct {
	LossAversion     bool
	PresentBias      bool
	MentalAccounting bool
	Optimism         bool
	Anchoring        bool
}

// BiasesFor returns the bias set a scenario applies. Emergency
// scenarios are dominated by loss aversion and optimism about recovery;
// long-horizon scenarios are dominated by present bias and anchoring.
func BiasesFor(kind ScenarioKind) BiasSet {
	switch kind {
	case ScenarioRetirement:
		return BiasSet{PresentBias: true, Anchoring: true, MentalAccounting: true}
	case ScenarioStudentLoan:
		return BiasSet{PresentBias: true, LossAversion: true, Anchoring: true}
	default:
		return BiasSet{LossAversion: true, Optimism: true, MentalAccounting: true}
	}
}
