package dataset

import "errors"

// ErrInvalidRange is returned when a P or T range is empty or inverted, or
// state_bins is not strictly ascending.
var ErrInvalidRange = errors.New("dataset: invalid range")

// ErrNoProgress is returned alongside a partial Report when Generate stops
// (attempt cap reached or ctx cancelled) with at least one bin still
// unfilled. The Report itself
// is still valid and usable; Report.UnfilledBins names what is missing.
var ErrNoProgress = errors.New("dataset: attempt cap reached with unfilled bins")
