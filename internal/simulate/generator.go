// Package simulate generates stand-in base Monte Carlo batches for the
// CLI and tests. The production base simulator is an external actuarial
// system; this generator only has to produce plausible, fully
// deterministic emergency expense trajectories and the matching
// random-factor matrices.
package simulate

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Aisprintone/Sparrow-sub006/internal/enhance"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
)

// GenConfig holds batch generation parameters.
type GenConfig struct {
	Iterations int     // Monte Carlo samples
	Months     int     // simulation horizon
	Seed       int64   // deterministic seed (0 = random)
	ShockBump  float64 // expense spike at crisis onset, as a fraction
}

// DefaultGenConfig returns a batch sized like the production workloads.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Iterations: 10000,
		Months:     24,
		Seed:       0,
		ShockBump:  0.20,
	}
}

// SmallTestConfig returns a tiny batch for rapid iteration and tests.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Iterations: 50,
		Months:     12,
		Seed:       42,
		ShockBump:  0.20,
	}
}

// EmergencyExpenses generates monthly expense trajectories during an
// emergency: the snapshot's expense level bumped by the onset shock,
// textured with smooth simplex noise scaled by income volatility plus
// a little white noise per sample.
func EmergencyExpenses(cfg GenConfig, snap profile.Snapshot) enhance.Matrix {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	noise := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed + 1))

	out := make(enhance.Matrix, cfg.Iterations)
	for i := range out {
		row := make([]float64, cfg.Months)
		// Each sample walks its own track through the noise field.
		offset := rng.Float64() * 1000
		for m := range row {
			base := snap.MonthlyExpenses * (1 + cfg.ShockBump)
			// Smooth month-to-month drift, ±volatility around base.
			drift := (noise.Eval2(offset, float64(m)*0.35) - 0.5) * 2 * snap.IncomeVolatility * 0.3
			jitter := (rng.Float64() - 0.5) * 0.04
			row[m] = base * (1 + drift + jitter)
			if row[m] < 0 {
				row[m] = 0
			}
		}
		out[i] = row
	}
	return out
}

// RandomFactors draws the uniform [0,1) factor matrix the enhancement
// engine consumes. Drawn here, never inside the engine, so a batch is
// reproducible end to end from one seed.
func RandomFactors(cfg GenConfig) enhance.Matrix {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed + 2))

	out := make(enhance.Matrix, cfg.Iterations)
	for i := range out {
		row := make([]float64, cfg.Months)
		for m := range row {
			row[m] = rng.Float64()
		}
		out[i] = row
	}
	return out
}
