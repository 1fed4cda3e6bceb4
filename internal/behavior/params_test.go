package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

func TestNewParametersDefaults(t *testing.T) {
	cal := config.DefaultCalibration()

	p := NewParameters(profile.DemographicMillennial, cal, Overrides{})

	assert.Equal(t, PersonalitySurvivor, p.Personality)
	assert.Equal(t, profile.DemographicMillennial, p.Demographic)
	assert.InDelta(t, 2.1, p.LossAversion, 1e-9)
	assert.InDelta(t, 0.7, p.PresentBias, 1e-9)
	assert.InDelta(t, 0.5, p.FinancialLiteracy, 1e-9)
}

func TestNewParametersOverrides(t *testing.T) {
	cal := config.DefaultCalibration()

	pt := PersonalityPanicker
	lit := 0.9
	beta := 0.5
	culture := profile.CultureLatinFamilial

	p := NewParameters(profile.DemographicGenX, cal, Overrides{
		Personality:       &pt,
		FinancialLiteracy: &lit,
		PresentBias:       &beta,
		Culture:           &culture,
	})

	assert.Equal(t, PersonalityPanicker, p.Personality)
	assert.InDelta(t, 0.9, p.FinancialLiteracy, 1e-9)
	assert.InDelta(t, 0.5, p.PresentBias, 1e-9)
	assert.Equal(t, profile.CultureLatinFamilial, p.Culture)
}

func TestNewParametersClampsOutOfDomain(t *testing.T) {
	cal := config.DefaultCalibration()

	lit := 1.5
	loss := 0.4
	beta := 1.7

	p := NewParameters(profile.DemographicBoomer, cal, Overrides{
		FinancialLiteracy: &lit,
		LossAversion:      &loss,
		PresentBias:       &beta,
	})

	assert.Equal(t, 1.0, p.FinancialLiteracy)
	assert.Equal(t, 1.0, p.LossAversion)
	assert.Equal(t, 1.0, p.PresentBias)

	beta = -0.3
	p = NewParameters(profile.DemographicBoomer, cal, Overrides{PresentBias: &beta})
	assert.Greater(t, p.PresentBias, 0.0)
}

func TestParsePersonality(t *testing.T) {
	assert.Equal(t, PersonalityPlanner, ParsePersonality("planner"))
	assert.Equal(t, PersonalityOptimizer, ParsePersonality("optimizer"))
	// Unknown names land on the no-distortion baseline.
	assert.Equal(t, PersonalitySurvivor, ParsePersonality("chaotic"))
}
