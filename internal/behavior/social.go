// Social and cultural support adjustment — lookup-table-driven model of
// who asks for help under financial stress, and how much help arrives
// when they do.
package behavior

import (
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// SupportProfile is the adjuster's output: the probability of seeking
// help this month and the magnitude of support if it arrives, both in
// [0,1] (magnitude as a fraction of a reference support amount).
type SupportProfile struct {
	HelpSeekProbability float64
	SupportMagnitude    float64
}

// culturalSupport holds the per-background table entries.
type culturalSupport struct {
	// probMultiplier scales the stress-driven base probability.
	probMultiplier float64
	// magnitude is the support fraction once help is actually sought.
	magnitude float64
	// stressThreshold gates help-seeking entirely below it (threshold
	// effect, not a smooth curve). Zero means no gate.
	stressThreshold float64
}

var culturalTable = map[profile.CulturalBackground]culturalSupport{
	profile.CultureWesternIndividualist: {probMultiplier: 0.80, magnitude: 0.35},
	profile.CultureEasternCollectivist:  {probMultiplier: 1.40, magnitude: 0.60},
	profile.CultureLatinFamilial:        {probMultiplier: 1.25, magnitude: 0.55},
	// Help is rarely asked for, but once the family is asked the
	// response is substantial.
	profile.CultureImmigrantConservative: {probMultiplier: 0.60, magnitude: 0.50, stressThreshold: 0.55},
}

// demographicProbMultiplier scales help-seeking by cohort; younger
// cohorts normalize asking for help, older ones do not.
var demographicProbMultiplier = map[profile.Demographic]float64{
	profile.DemographicGenZ:       1.20,
	profile.DemographicMillennial: 1.00,
	profile.DemographicGenX:       0.85,
	profile.DemographicBoomer:     0.70,
}

// SocialAdjuster produces support profiles for one demographic/cultural
// context. Construct with NewSocialAdjuster; safe for concurrent use.
type SocialAdjuster struct {
	culture culturalSupport
	demoMul float64
}

// NewSocialAdjuster builds the adjuster for a context. Unknown
// backgrounds or cohorts fall back to the individualist/millennian
// baseline rather than failing.
func NewSocialAdjuster(demo profile.Demographic, culture profile.CulturalBackground) SocialAdjuster {
	cs, ok := culturalTable[culture]
	if !ok {
		cs = culturalTable[profile.CultureWesternIndividualist]
	}
	dm, ok := demographicProbMultiplier[demo]
	if !ok {
		dm = 1.0
	}
	return SocialAdjuster{culture: cs, demoMul: dm}
}

// Support returns the help-seeking probability and support magnitude
// for the given effective stress. Probability grows with stress from a
// small floor; cultural and demographic multipliers scale it; both
// outputs are clamped to [0,1].
func (s SocialAdjuster) Support(stress float64) SupportProfile {
	stress = clamp01(stress)
	if stress < s.culture.stressThreshold {
		return SupportProfile{HelpSeekProbability: 0, SupportMagnitude: s.culture.magnitude}
	}

	base := 0.10 + 0.50*stress
	return SupportProfile{
		HelpSeekProbability: clamp01(base * s.culture.probMultiplier * s.demoMul),
		SupportMagnitude:    clamp01(s.culture.magnitude),
	}
}

// AvailabilityProbability is the chance sought support actually
// materializes; richer support networks also answer more reliably.
func (s SocialAdjuster) AvailabilityProbability() float64 {
	return clamp01(0.45 + 0.40*s.culture.magnitude)
}
