package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFillsMissingFields(t *testing.T) {
	snap, degraded := Snapshot{Demographic: DemographicMillennial, LiquidBalance: -1}.Resolve()

	assert.True(t, degraded)
	assert.Greater(t, snap.MonthlyIncome, 0.0)
	assert.Greater(t, snap.MonthlyExpenses, 0.0)
	assert.Greater(t, snap.LiquidBalance, 0.0)
	assert.Greater(t, snap.IncomeVolatility, 0.0)
}

func TestResolveKeepsZeroBalance(t *testing.T) {
	// A broke household stays broke: zero is a reported balance, not a
	// missing one.
	snap, degraded := Snapshot{
		MonthlyIncome:    3000,
		MonthlyExpenses:  2900,
		TotalDebt:        15000,
		LiquidBalance:    0,
		IncomeVolatility: 0.4,
		Demographic:      DemographicGenZ,
	}.Resolve()

	assert.False(t, degraded)
	assert.Zero(t, snap.LiquidBalance)
	assert.Zero(t, snap.RunwayMonths())
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot(DemographicGenX, CultureLatinFamilial)

	assert.Equal(t, DemographicGenX, snap.Demographic)
	assert.Equal(t, CultureLatinFamilial, snap.Culture)
	assert.Greater(t, snap.MonthlyIncome, 0.0)
	assert.Greater(t, snap.LiquidBalance, 0.0)

	resolved, degraded := snap.Resolve()
	assert.False(t, degraded)
	assert.Equal(t, snap, resolved)
}

func TestResolveKeepsProvidedFields(t *testing.T) {
	in := Snapshot{
		MonthlyIncome:    7000,
		MonthlyExpenses:  5000,
		TotalDebt:        10000,
		LiquidBalance:    20000,
		IncomeVolatility: 0.3,
		Demographic:      DemographicGenX,
	}
	snap, degraded := in.Resolve()

	assert.False(t, degraded)
	assert.Equal(t, in, snap)
}

func TestResolveRejectsBadVolatility(t *testing.T) {
	snap, degraded := Snapshot{
		MonthlyIncome:    5000,
		MonthlyExpenses:  4000,
		LiquidBalance:    9000,
		IncomeVolatility: 1.8,
		Demographic:      DemographicGenZ,
	}.Resolve()

	assert.True(t, degraded)
	assert.LessOrEqual(t, snap.IncomeVolatility, 1.0)
}

func TestRatios(t *testing.T) {
	snap := Snapshot{
		MonthlyIncome:   5000,
		MonthlyExpenses: 4000,
		TotalDebt:       30000,
		LiquidBalance:   12000,
	}

	assert.InDelta(t, 0.5, snap.DebtToIncome(), 1e-9)
	assert.InDelta(t, 3.0, snap.RunwayMonths(), 1e-9)

	assert.Zero(t, Snapshot{TotalDebt: 1000}.DebtToIncome())
	assert.Zero(t, Snapshot{LiquidBalance: 1000}.RunwayMonths())
}

func TestParsers(t *testing.T) {
	assert.Equal(t, DemographicGenZ, ParseDemographic("gen_z"))
	assert.Equal(t, DemographicMillennial, ParseDemographic("nope"))
	assert.Equal(t, "gen_x", DemographicGenX.String())

	assert.Equal(t, CultureEasternCollectivist, ParseCulturalBackground("eastern_collectivist"))
	assert.Equal(t, CultureWesternIndividualist, ParseCulturalBackground("nope"))
	assert.Equal(t, "immigrant_conservative", CultureImmigrantConservative.String())
}
