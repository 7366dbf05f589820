package reach

import "errors"

// Sentinel errors for reachability exploration.
var (
	// ErrNilNet is returned when Explore is given a nil *spn.Net.
	ErrNilNet = errors.New("reach: net is nil")

	// ErrInvalidLimit names a non-positive PlaceLimit or MarkLimit. Explore
	// does not return it: WithPlaceLimit and WithMarkLimit ignore
	// non-positive values and keep the defaults.
	ErrInvalidLimit = errors.New("reach: limit must be >= 1")
)
