// Package validity composes the structural filter (package spn), the
// reachability explorer (package reach), and the CTMC solver (package ctmc)
// into a single state machine that decides whether a candidate SPN is
// usable, and packages the derived metrics for survivors.
//
// A candidate moves through states in one direction:
//
//	CANDIDATE -> CONNECTED -> BOUNDED -> SOLVABLE -> VALID
//
// A failed check ends the run: the Result keeps the last state reached
// (CANDIDATE, CONNECTED or BOUNDED) and Reason names the check that failed.
// Such a Result does not move to INVALID; FilterSPN reports INVALID only for
// a nil net. FilterSPN is the package's single entry point, implementing the
// design's filter_spn external interface.
package validity
