// Package behavior implements the behavioral enhancement models: the
// stress scorer, personality strategies, cognitive bias transforms,
// social/cultural support adjustment, and the emergency-crisis state
// machine they feed.
package behavior

import (
	"log/slog"

	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// PersonalityType enumerates the five behavioral archetypes.
type PersonalityType uint8

const (
	PersonalityPlanner PersonalityType = iota
	PersonalityAvoider
	PersonalitySurvivor
	PersonalityPanicker
	PersonalityOptimizer
)

// String returns the snake_case archetype name.
func (p PersonalityType) String() string {
	switch p {
	case PersonalityPlanner:
		return "planner"
	case PersonalityAvoider:
		return "avoider"
	case PersonalitySurvivor:
		return "survivor"
	case PersonalityPanicker:
		return "panicker"
	case PersonalityOptimizer:
		return "optimizer"
	default:
		return "unknown"
	}
}

// ParsePersonality maps an archetype name to its PersonalityType.
// Unknown names fall back to survivor, the no-distortion baseline.
func ParsePersonality(s string) PersonalityType {
	switch s {
	case "planner":
		return PersonalityPlanner
	case "avoider":
		return PersonalityAvoider
	case "survivor":
		return PersonalitySurvivor
	case "panicker":
		return PersonalityPanicker
	case "optimizer":
		return PersonalityOptimizer
	default:
		return PersonalitySurvivor
	}
}

// Parameters is the immutable behavioral profile for one enhancement
// run. Build it with NewParameters; fields outside their domain are
// clamped there, never rejected.
type Parameters struct {
	Personality       PersonalityType
	FinancialLiteracy float64 // 0.0–1.0
	LossAversion      float64 // ≥ 1.0
	PresentBias       float64 // β in (0,1]
	Culture           profile.CulturalBackground
	Demographic       profile.Demographic
}

// Overrides carries optional caller-supplied parameter overrides.
// Nil pointers mean "use the demographic default".
type Overrides struct {
	Personality       *PersonalityType
	FinancialLiteracy *float64
	LossAversion      *float64
	PresentBias       *float64
	Culture           *profile.CulturalBackground
}

// demographicParams are the default behavioral profiles per cohort.
var demographicParams = map[profile.Demographic]Parameters{
	profile.DemographicGenZ: {
		Personality:       PersonalityAvoider,
		FinancialLiteracy: 0.35,
		Culture:           profile.CultureWesternIndividualist,
	},
	profile.DemographicMillennial: {
		Personality:       PersonalitySurvivor,
		FinancialLiteracy: 0.50,
		Culture:           profile.CultureWesternIndividualist,
	},
	profile.DemographicGenX: {
		Personality:       PersonalityPlanner,
		FinancialLiteracy: 0.60,
		Culture:           profile.CultureWesternIndividualist,
	},
	profile.DemographicBoomer: {
		Personality:       PersonalityPlanner,
		FinancialLiteracy: 0.55,
		Culture:           profile.CultureWesternIndividualist,
	},
}

// NewParameters builds the behavioral profile for a run: demographic
// defaults first, explicit overrides on top, then domain clamping.
// Out-of-domain values are clamped to the nearest bound and logged,
// per the invalid-parameter policy.
func NewParameters(demo profile.Demographic, cal config.Calibration, ov Overrides) Parameters {
	p, ok := demographicParams[demo]
	if !ok {
		p = demographicParams[profile.DemographicMillennial]
	}
	p.Demographic = demo
	p.LossAversion = cal.LossAversion
	p.PresentBias = cal.PresentBias

	if ov.Personality != nil {
		p.Personality = *ov.Personality
	}
	if ov.FinancialLiteracy != nil {
		p.FinancialLiteracy = *ov.FinancialLiteracy
	}
	if ov.LossAversion != nil {
		p.LossAversion = *ov.LossAversion
	}
	if ov.PresentBias != nil {
		p.PresentBias = *ov.PresentBias
	}
	if ov.Culture != nil {
		p.Culture = *ov.Culture
	}

	return p.clamped()
}

// clamped forces every field into its declared domain, logging each
// correction.
func (p Parameters) clamped() Parameters {
	if p.FinancialLiteracy < 0 || p.FinancialLiteracy > 1 {
		clamped := clamp01(p.FinancialLiteracy)
		slog.Warn("financial literacy out of range, clamped",
			"value", p.FinancialLiteracy, "clamped", clamped)
		p.FinancialLiteracy = clamped
	}
	if p.LossAversion < 1 {
		slog.Warn("loss aversion below 1, clamped", "value", p.LossAversion)
		p.LossAversion = 1
	}
	if p.PresentBias <= 0 {
		slog.Warn("present bias outside (0,1], clamped", "value", p.PresentBias)
		p.PresentBias = 0.01
	}
	if p.PresentBias > 1 {
		slog.Warn("present bias outside (0,1], clamped", "value", p.PresentBias)
		p.PresentBias = 1
	}
	return p
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp clamps v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
