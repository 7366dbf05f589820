package reach

// defaultPlaceLimit and defaultMarkLimit match the design's documented
// defaults for the reachability explorer.
const (
	defaultPlaceLimit = 10
	defaultMarkLimit  = 500
)

// Option configures Explore's unboundedness detectors.
type Option func(*config)

type config struct {
	placeLimit int
	markLimit  int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		placeLimit: defaultPlaceLimit,
		markLimit:  defaultMarkLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithPlaceLimit overrides the per-place token ceiling: exploration aborts
// (Bounded=false) the moment any reachable marking exceeds it in any place.
func WithPlaceLimit(limit int) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.placeLimit = limit
		}
	}
}

// WithMarkLimit overrides the maximum number of distinct markings explore
// may record before aborting (Bounded=false).
func WithMarkLimit(limit int) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.markLimit = limit
		}
	}
}
