package spn

import "math/rand"

// SynthOption configures the random source used by Synthesize and
// SynthesizeMany. Exactly one of WithSeed or WithRand should be supplied;
// if neither is, synthesis fails with ErrNeedRandSource.
type SynthOption func(*synthConfig)

type synthConfig struct {
	rng *rand.Rand
}

func newSynthConfig(opts ...SynthOption) *synthConfig {
	cfg := &synthConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed seeds a fresh *rand.Rand deterministically. Two calls with the
// same seed produce bit-identical nets.
func WithSeed(seed int64) SynthOption {
	return func(cfg *synthConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned *rand.Rand, e.g. one derived per worker
// by the dataset package. A nil rng is ignored.
func WithRand(rng *rand.Rand) SynthOption {
	return func(cfg *synthConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}
