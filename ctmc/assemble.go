package ctmc

import (
	"fmt"

	"github.com/katalvlaran/spnforge/reach"
)

// Assemble builds the sparse generator matrix (as triplets, with the row-0
// constraint substitution already applied) and its companion vector y from
// a reachability result and the net's firing-rate vector.
//
// For every edge (i,j) with transition t, it accumulates
// Q[j,i] += lambda[t] (off-diagonal inflow) and Q[i,i] -= lambda[t]
// (diagonal outflow). Duplicate (row,col) triplets — multiple transitions
// linking the same ordered state pair — sum naturally via map accumulation.
// Row 0 is then discarded and replaced with all ones, and y is the unit
// vector e_0, yielding a nonsingular system whose unique solution is the
// steady-state distribution.
func Assemble(res *reach.Result, lambda []float64) (*Generator, error) {
	if res == nil || len(res.V) == 0 {
		return nil, ErrEmptyGraph
	}
	n := len(res.V)

	acc := make(map[[2]int]float64, len(res.E)*2)
	for i, e := range res.A {
		if e < 0 || e >= len(lambda) {
			return nil, fmt.Errorf("ctmc: Assemble: transition index %d: %w", e, ErrDimensionMismatch)
		}
		src, dst := res.E[i][0], res.E[i][1]
		rate := lambda[e]
		acc[[2]int{dst, src}] += rate
		acc[[2]int{src, src}] -= rate
	}

	original := make([]Triplet, 0, len(acc))
	for key, val := range acc {
		original = append(original, Triplet{Row: key[0], Col: key[1], Val: val})
	}

	// Constraint substitution: drop whatever row 0 accumulated and replace
	// it with an all-ones row; y becomes e_0.
	for key := range acc {
		if key[0] == 0 {
			delete(acc, key)
		}
	}
	for col := 0; col < n; col++ {
		acc[[2]int{0, col}] = 1
	}

	triplets := make([]Triplet, 0, len(acc))
	for key, val := range acc {
		triplets = append(triplets, Triplet{Row: key[0], Col: key[1], Val: val})
	}

	y := make([]float64, n)
	y[0] = 1

	return &Generator{N: n, Triplets: triplets, Y: y, Original: original}, nil
}
