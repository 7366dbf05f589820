package validity

import (
	"fmt"

	"github.com/katalvlaran/spnforge/ctmc"
	"github.com/katalvlaran/spnforge/reach"
	"github.com/katalvlaran/spnforge/spn"
)

// FilterSPN runs the CANDIDATE -> CONNECTED -> BOUNDED -> SOLVABLE -> VALID
// state machine over net, implementing the design's filter_spn external
// interface.
//
// placeBound and marksUpper are passed through to the reachability explorer
// as its place_limit and mark_limit. marksLower is accepted for signature
// compatibility but is not consulted by any transition: no stage of the
// filter distinguishes a marking count below marksLower from one above it.
//
// On success the returned Result has State == StateValid and carries the
// reachability graph, steady-state solution, and derived metrics. On
// failure State is the last stage reached before rejection (StateInvalid if
// net itself is nil) and Reason names the failed check.
func FilterSPN(net *spn.Net, placeBound, marksLower, marksUpper int, opts ...Option) (*Result, error) {
	_ = marksLower // accepted, unused: see Design Note on marks_lower_limit

	if net == nil {
		return &Result{State: StateInvalid, Reason: "nil net"}, nil
	}

	cfg := newConfig(opts...)

	working := net
	if !spn.HasNoIsolatedNodes(working) {
		if cfg.rng == nil {
			return &Result{
				State:  StateCandidate,
				Reason: "isolated place or transition and no random source to repair it",
				Net:    working,
			}, nil
		}
		working = spn.AddEdgesToIsolatedNodes(working.Clone(), cfg.rng)
		if !spn.HasNoIsolatedNodes(working) {
			return &Result{
				State:  StateCandidate,
				Reason: "isolated place or transition persisted after repair",
				Net:    working,
			}, nil
		}
	}

	res, err := reach.Explore(working, reach.WithPlaceLimit(placeBound), reach.WithMarkLimit(marksUpper))
	if err != nil {
		return nil, fmt.Errorf("validity: FilterSPN: %w", err)
	}
	if !res.Bounded {
		return &Result{
			State:  StateConnected,
			Reason: "unbounded: exceeded place_limit or mark_limit during exploration",
			Net:    working,
			Reach:  res,
		}, nil
	}

	gen, err := ctmc.Assemble(res, working.Lambda)
	if err != nil {
		return nil, fmt.Errorf("validity: FilterSPN: %w", err)
	}
	sol, err := ctmc.Solve(gen, cfg.solver)
	if err != nil {
		return &Result{
			State:  StateBounded,
			Reason: fmt.Sprintf("CTMC solver failed: %v", err),
			Net:    working,
			Reach:  res,
		}, nil
	}

	density, mu, muTotal := ctmc.Density(res, sol.Pi)

	return &Result{
		State:    StateValid,
		Net:      working,
		Reach:    res,
		Solution: sol,
		Density:  density,
		Mu:       mu,
		MuTotal:  muTotal,
	}, nil
}
