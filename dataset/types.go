package dataset

import (
	"github.com/katalvlaran/spnforge/ctmc"
	"github.com/katalvlaran/spnforge/reach"
	"github.com/katalvlaran/spnforge/spn"
)

// BinKey identifies one cell of the (places, transitions, state-count
// bucket) Cartesian product. Bucket is the index returned by bucket: 0
// means "fewer than state_bins[0] states", len(state_bins) means "at
// least state_bins[len-1] states".
type BinKey struct {
	P      int
	T      int
	Bucket int
}

// Record is the full in-memory result for one accepted SPN: the matrix,
// its reachability graph, steady-state solution, and derived metrics. It
// is the in-memory analogue of the design's HDF5-like persistence layout;
// a Sink turns it into bytes.
type Record struct {
	Bin BinKey

	Net      *spn.Net
	Reach    *reach.Result
	Solution *ctmc.Solution
	Density  [][]float64
	Mu       []float64
	MuTotal  float64
}

// Report is the outcome of Generate: every accepted Record, the bins that
// never reached their target, and the total number of candidates drawn
// (accepted and rejected).
type Report struct {
	Accepted     []*Record
	UnfilledBins []BinKey
	Attempts     int
}

// Sink receives accepted records as they are produced, e.g. to persist
// them. The first WriteRecord error stops the workers, and Generate returns
// it once they have wound down: an I/O error during persistence is not a
// candidate rejection.
type Sink interface {
	WriteRecord(rec *Record) error
}
