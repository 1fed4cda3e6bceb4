// Package profile holds the financial snapshot consumed from the base
// Monte Carlo simulator. The enhancement engine reads it, never writes it.
package profile

// Demographic enumerates the supported age cohorts.
type Demographic uint8

const (
	DemographicGenZ Demographic = iota
	DemographicMillennial
	DemographicGenX
	DemographicBoomer
)

// String returns the snake_case cohort name used in configs and reports.
func (d Demographic) String() string {
	switch d {
	case DemographicGenZ:
		return "gen_z"
	case DemographicMillennial:
		return "millennial"
	case DemographicGenX:
		return "gen_x"
	case DemographicBoomer:
		return "boomer"
	default:
		return "unknown"
	}
}

// ParseDemographic maps a cohort name to its Demographic. Unknown names
// fall back to millennial, the median cohort.
func ParseDemographic(s string) Demographic {
	switch s {
	case "gen_z":
		return DemographicGenZ
	case "millennial":
		return DemographicMillennial
	case "gen_x":
		return DemographicGenX
	case "boomer":
		return DemographicBoomer
	default:
		return DemographicMillennial
	}
}

// CulturalBackground enumerates the cultural contexts the support model
// distinguishes.
type CulturalBackground uint8

const (
	CultureWesternIndividualist CulturalBackground = iota
	CultureEasternCollectivist
	CultureImmigrantConservative
	CultureLatinFamilial
)

// String returns the snake_case background name.
func (c CulturalBackground) String() string {
	switch c {
	case CultureWesternIndividualist:
		return "western_individualist"
	case CultureEasternCollectivist:
		return "eastern_collectivist"
	case CultureImmigrantConservative:
		return "immigrant_conservative"
	case CultureLatinFamilial:
		return "latin_familial"
	default:
		return "unknown"
	}
}

// ParseCulturalBackground maps a background name to its value. Unknown
// names fall back to western individualist.
func ParseCulturalBackground(s string) CulturalBackground {
	switch s {
	case "western_individualist":
		return CultureWesternIndividualist
	case "eastern_collectivist":
		return CultureEasternCollectivist
	case "immigrant_conservative":
		return CultureImmigrantConservative
	case "latin_familial":
		return CultureLatinFamilial
	default:
		return CultureWesternIndividualist
	}
}

// Snapshot is the per-user financial state at simulation start.
// Zero-valued flow fields (income, expenses) mean "not provided" and
// are resolved against demographic defaults by Resolve. LiquidBalance
// is different: zero is a real state (a broke household), so only a
// negative balance counts as missing. Use DefaultSnapshot when no user
// data exists at all.
type Snapshot struct {
	MonthlyIncome    float64 `json:"monthly_income"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	TotalDebt        float64 `json:"total_debt"`
	LiquidBalance    float64 `json:"liquid_balance"`
	IncomeVolatility float64 `json:"income_volatility"` // 0.0–1.0

	Demographic Demographic        `json:"demographic"`
	Culture     CulturalBackground `json:"culture"`
}

// cohortDefaults are rough median financials per cohort, used only when
// a snapshot field is missing.
var cohortDefaults = map[Demographic]Snapshot{
	DemographicGenZ:       {MonthlyIncome: 3200, MonthlyExpenses: 2800, TotalDebt: 18000, LiquidBalance: 2400, IncomeVolatility: 0.35},
	DemographicMillennial: {MonthlyIncome: 5200, MonthlyExpenses: 4300, TotalDebt: 42000, LiquidBalance: 7800, IncomeVolatility: 0.25},
	DemographicGenX:       {MonthlyIncome: 6800, MonthlyExpenses: 5500, TotalDebt: 61000, LiquidBalance: 16500, IncomeVolatility: 0.18},
	DemographicBoomer:     {MonthlyIncome: 5900, MonthlyExpenses: 4600, TotalDebt: 28000, LiquidBalance: 34000, IncomeVolatility: 0.12},
}

// DefaultSnapshot returns the cohort-median snapshot for a demographic,
// for callers with no user financials at all.
func DefaultSnapshot(demo Demographic, culture CulturalBackground) Snapshot {
	def, ok := cohortDefaults[demo]
	if !ok {
		def = cohortDefaults[DemographicMillennial]
	}
	def.Demographic = demo
	def.Culture = culture
	return def
}

// Resolve fills missing fields from the cohort defaults. It returns the
// resolved snapshot and whether any field was defaulted, which the
// caller surfaces as a degraded-confidence flag. A zero balance is kept
// as-is: an empty account is data, not absence of data.
func (s Snapshot) Resolve() (Snapshot, bool) {
	def := cohortDefaults[s.Demographic]
	degraded := false

	fill := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
			degraded = true
		}
	}
	fill(&s.MonthlyIncome, def.MonthlyIncome)
	fill(&s.MonthlyExpenses, def.MonthlyExpenses)
	if s.LiquidBalance < 0 {
		s.LiquidBalance = def.LiquidBalance
		degraded = true
	}
	if s.TotalDebt < 0 {
		s.TotalDebt = def.TotalDebt
		degraded = true
	}
	if s.IncomeVolatility <= 0 || s.IncomeVolatility > 1 {
		s.IncomeVolatility = def.IncomeVolatility
		degraded = true
	}
	return s, degraded
}

// DebtToIncome returns annualized debt-to-income, 0 when income is unknown.
func (s Snapshot) DebtToIncome() float64 {
	annual := s.MonthlyIncome * 12
	if annual <= 0 {
		return 0
	}
	return s.TotalDebt / annual
}

// RunwayMonths returns how many months the liquid balance covers at the
// current expense level, 0 when expenses are unknown.
func (s Snapshot) RunwayMonths() float64 {
	if s.MonthlyExpenses <= 0 {
		return 0
	}
	return s.LiquidBalance / s.MonthlyExpenses
}
