package ctmc

import "errors"

// Sentinel errors for CTMC assembly and solving.
var (
	// ErrEmptyGraph is returned when Assemble is given a reachability
	// result with zero markings.
	ErrEmptyGraph = errors.New("ctmc: reachability graph has no markings")

	// ErrDimensionMismatch is returned when the reachability result names a
	// transition index that lambda has no rate for (negative or >= len(lambda)).
	ErrDimensionMismatch = errors.New("ctmc: lambda length does not match transition count")

	// ErrSingular is returned when the solver cannot produce a solution
	// (singular or numerically unstable generator matrix). This is not
	// fatal: callers treat it as ordinary candidate rejection.
	ErrSingular = errors.New("ctmc: generator matrix is singular or numerically unstable")

	// ErrNilGenerator is returned when Solve is given a nil *Generator.
	ErrNilGenerator = errors.New("ctmc: generator is nil")
)
