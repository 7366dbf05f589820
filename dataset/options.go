package dataset

import (
	"log"

	"github.com/katalvlaran/spnforge/ctmc"
)

// Defaults matching the design's generate_dataset signature.
const (
	DefaultMiniBatchSize = 8
	DefaultWorkerCount   = 4
	DefaultMasterSeed    = 1
	DefaultDensity       = 0.15
	DefaultLambdaMax     = 5
	DefaultPlaceBound    = 10
	DefaultMarksUpper    = 500
)

// Option configures Generate.
type Option func(*config)

type config struct {
	workerCount   int
	miniBatchSize int
	masterSeed    int64
	solver        ctmc.Solver
	attemptCap    int
	logger        *log.Logger
	density       float64
	lambdaMax     int
	placeBound    int
	marksUpper    int
	sink          Sink
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		workerCount:   DefaultWorkerCount,
		miniBatchSize: DefaultMiniBatchSize,
		masterSeed:    DefaultMasterSeed,
		solver:        ctmc.ExactSolver{},
		density:       DefaultDensity,
		lambdaMax:     DefaultLambdaMax,
		placeBound:    DefaultPlaceBound,
		marksUpper:    DefaultMarksUpper,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWorkerCount sets the number of parallel workers driving the
// synthesize-through-validity pipeline. Values below 1 are ignored.
func WithWorkerCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workerCount = n
		}
	}
}

// WithMiniBatchSize sets how many candidates each worker synthesizes
// together per (P, T) draw, sharing the spanning-tree skeleton. Values
// below 1 are ignored.
func WithMiniBatchSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.miniBatchSize = n
		}
	}
}

// WithMasterSeed sets the seed every worker's RNG is deterministically
// derived from.
func WithMasterSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.masterSeed = seed
	}
}

// WithSolver overrides the CTMC solver used by FilterSPN for every
// candidate. Defaults to ctmc.ExactSolver{}.
func WithSolver(solver ctmc.Solver) Option {
	return func(cfg *config) {
		if solver != nil {
			cfg.solver = solver
		}
	}
}

// WithAttemptCap bounds the total number of candidates drawn across all
// workers. Zero (the default) means unbounded: Generate runs until every
// bin is full.
func WithAttemptCap(n int) Option {
	return func(cfg *config) {
		cfg.attemptCap = n
	}
}

// WithLogger enables one log line per rejected candidate's reason and one
// log line per filled or unfillable bin. No component logs by default.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithDensity sets the arc-densification probability passed to
// spn.Synthesize for every candidate. Defaults to DefaultDensity.
func WithDensity(prob float64) Option {
	return func(cfg *config) {
		if prob >= 0 && prob <= 1 {
			cfg.density = prob
		}
	}
}

// WithLambdaMax sets the firing-rate ceiling passed to spn.Synthesize.
// Defaults to DefaultLambdaMax.
func WithLambdaMax(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.lambdaMax = n
		}
	}
}

// WithPlaceBound and WithMarksUpper override the reachability explorer's
// limits, passed through to validity.FilterSPN for every candidate.
func WithPlaceBound(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.placeBound = n
		}
	}
}

func WithMarksUpper(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.marksUpper = n
		}
	}
}

// WithSink registers a Sink that receives every accepted Record as it is
// produced, e.g. to persist it.
func WithSink(sink Sink) Option {
	return func(cfg *config) {
		cfg.sink = sink
	}
}
