package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

func TestCollectivistSeeksMoreHelp(t *testing.T) {
	collectivist := NewSocialAdjuster(profile.DemographicMillennial, profile.CultureEasternCollectivist)
	individualist := NewSocialAdjuster(profile.DemographicMillennial, profile.CultureWesternIndividualist)

	cs := collectivist.Support(0.6)
	is := individualist.Support(0.6)

	assert.Greater(t, cs.HelpSeekProbability, is.HelpSeekProbability)
	assert.Greater(t, cs.SupportMagnitude, is.SupportMagnitude)
}

func TestImmigrantConservativeThresholdEffect(t *testing.T) {
	adj := NewSocialAdjuster(profile.DemographicGenX, profile.CultureImmigrantConservative)

	// Below the threshold nobody asks.
	below := adj.Support(0.4)
	assert.Zero(t, below.HelpSeekProbability)

	// Above it, help-seeking switches on and support is meaningful.
	above := adj.Support(0.6)
	assert.Greater(t, above.HelpSeekProbability, 0.0)
	assert.GreaterOrEqual(t, above.SupportMagnitude, 0.5)
}

func TestYoungerCohortsAskMore(t *testing.T) {
	genZ := NewSocialAdjuster(profile.DemographicGenZ, profile.CultureWesternIndividualist)
	boomer := NewSocialAdjuster(profile.DemographicBoomer, profile.CultureWesternIndividualist)

	assert.Greater(t, genZ.Support(0.5).HelpSeekProbability, boomer.Support(0.5).HelpSeekProbability)
}

func TestSupportBounds(t *testing.T) {
	for _, demo := range []profile.Demographic{
		profile.DemographicGenZ, profile.DemographicMillennial,
		profile.DemographicGenX, profile.DemographicBoomer,
	} {
		for _, culture := range []profile.CulturalBackground{
			profile.CultureWesternIndividualist, profile.CultureEasternCollectivist,
			profile.CultureImmigrantConservative, profile.CultureLatinFamilial,
		} {
			adj := NewSocialAdjuster(demo, culture)
			for _, stress := range []float64{-0.5, 0, 0.3, 0.7, 1, 1.5} {
				sp := adj.Support(stress)
				assert.GreaterOrEqual(t, sp.HelpSeekProbability, 0.0)
				assert.LessOrEqual(t, sp.HelpSeekProbability, 1.0)
				assert.GreaterOrEqual(t, sp.SupportMagnitude, 0.0)
				assert.LessOrEqual(t, sp.SupportMagnitude, 1.0)
			}
			avail := adj.AvailabilityProbability()
			assert.GreaterOrEqual(t, avail, 0.0)
			assert.LessOrEqual(t, avail, 1.0)
		}
	}
}

func TestHelpSeekingGrowsWithStress(t *testing.T) {
	adj := NewSocialAdjuster(profile.DemographicMillennial, profile.CultureLatinFamilial)

	assert.Greater(t, adj.Support(0.8).HelpSeekProbability, adj.Support(0.2).HelpSeekProbability)
}
