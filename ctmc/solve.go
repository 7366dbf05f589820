package ctmc

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Solver solves Q*pi = y for a CTMC generator matrix. Implementations may
// fail (singular matrix, numerical breakdown); callers treat a failed solve
// as an ordinary candidate rejection, never as a fatal error.
type Solver interface {
	Solve(g *Generator) (*Solution, error)
}

// ExactSolver is the reference direct solver: it builds a dense matrix from
// the generator's triplets and solves it via gonum/mat's LU-based Dense.Solve.
// It is appropriate for the small state spaces (n <= mark_limit) produced by
// the reachability explorer.
type ExactSolver struct{}

// Solve implements Solver.
func (ExactSolver) Solve(g *Generator) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}

	start := time.Now()

	a := mat.NewDense(g.N, g.N, nil)
	for _, tr := range g.Triplets {
		a.Set(tr.Row, tr.Col, tr.Val)
	}
	b := mat.NewDense(g.N, 1, append([]float64(nil), g.Y...))

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, fmt.Errorf("ctmc: ExactSolver.Solve: %w: %v", ErrSingular, err)
	}

	pi := make([]float64, g.N)
	for i := 0; i < g.N; i++ {
		pi[i] = x.At(i, 0)
	}

	return &Solution{
		Pi:       pi,
		Residual: residual(g.Original, pi, g.N),
		Elapsed:  time.Since(start),
	}, nil
}

// residual computes ||Q*pi||_inf using the original (pre-substitution)
// generator triplets, per the steady-state conservation property: a valid
// solution should satisfy Q*pi ~= 0.
func residual(original []Triplet, pi []float64, n int) float64 {
	rowSums := make([]float64, n)
	for _, tr := range original {
		rowSums[tr.Row] += tr.Val * pi[tr.Col]
	}

	var maxAbs float64
	for _, v := range rowSums {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs
}

// Solve is a convenience wrapper that solves an already assembled generator
// with the given Solver (ExactSolver{} if solver is nil).
func Solve(g *Generator, solver Solver) (*Solution, error) {
	if solver == nil {
		solver = ExactSolver{}
	}

	return solver.Solve(g)
}
