package validity

import (
	"github.com/katalvlaran/spnforge/ctmc"
	"github.com/katalvlaran/spnforge/reach"
	"github.com/katalvlaran/spnforge/spn"
)

// State is a stage of the candidate validity state machine.
type State int

const (
	// StateInvalid is the failure state FilterSPN reports for a nil net;
	// Result.Reason explains why.
	StateInvalid State = iota
	// StateCandidate is the starting state, before any check has run.
	StateCandidate
	// StateConnected means has_no_isolated_nodes holds.
	StateConnected
	// StateBounded means the reachability exploration completed without
	// hitting place_limit or mark_limit.
	StateBounded
	// StateSolvable means the CTMC solver produced a steady-state solution.
	StateSolvable
	// StateValid is the terminal success state.
	StateValid
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateCandidate:
		return "CANDIDATE"
	case StateConnected:
		return "CONNECTED"
	case StateBounded:
		return "BOUNDED"
	case StateSolvable:
		return "SOLVABLE"
	case StateValid:
		return "VALID"
	default:
		return "INVALID"
	}
}

// Result is the outcome of FilterSPN: the final State reached, the Reason
// whenever it is not StateValid, and — on StateValid — the full derived record
// (matrix, reachability graph, steady-state solution, density, mean
// tokens).
type Result struct {
	State  State
	Reason string

	Net      *spn.Net
	Reach    *reach.Result
	Solution *ctmc.Solution
	Density  [][]float64
	Mu       []float64
	MuTotal  float64
}
