// Package dataset implements the binning generator: a parallel-worker pool
// that repeatedly drives the synthesize-through-validity pipeline (package
// spn's Synthesize, package validity's FilterSPN) on independent random
// candidates, and accumulates survivors into bins keyed by (places,
// transitions, state-count bucket) until every bin reaches its target size
// or an attempt cap is hit.
//
// Generate is the package's single entry point, implementing the design's
// generate_dataset external interface. It does not speak any on-disk
// format; callers that need persistence supply a Sink.
package dataset
