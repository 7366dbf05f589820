package validity

import (
	"math/rand"

	"github.com/katalvlaran/spnforge/ctmc"
)

// Default thresholds, matching the design's filter_spn signature.
const (
	DefaultPlaceBound = 10
	DefaultMarksUpper = 500
)

// Option configures FilterSPN.
type Option func(*config)

type config struct {
	solver ctmc.Solver
	rng    *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{solver: ctmc.ExactSolver{}}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSolver overrides the CTMC steady-state solver. Defaults to
// ctmc.ExactSolver{}.
func WithSolver(solver ctmc.Solver) Option {
	return func(cfg *config) {
		if solver != nil {
			cfg.solver = solver
		}
	}
}

// WithRand supplies the random source used to repair isolated nodes before
// the connectivity check. Repair is skipped (and a disconnected candidate
// is rejected as-is) if no source is supplied.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		cfg.rng = rng
	}
}
