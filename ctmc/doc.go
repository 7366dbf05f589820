// Package ctmc assembles the continuous-time Markov chain generator matrix
// induced by a reachability graph and solves it for the steady-state
// distribution.
//
// Assemble builds the sparse generator matrix Q (as triplets) and the
// constraint vector y from a reach.Result and a firing-rate vector: for
// every edge (i,j) with transition t, it accumulates Q[j,i] += lambda[t]
// and Q[i,i] -= lambda[t], summing duplicate (row,col) triplets (multiple
// transitions between the same state pair). Row 0 is then overwritten with
// all ones and y[0]=1, turning the rank-deficient Qpi=0 system into a
// nonsingular one whose unique solution is the steady-state vector.
//
// Solve dispatches to a pluggable Solver; ExactSolver is the reference
// direct (LU-based) solve via gonum/mat. A Solver may fail (singular,
// numerically unstable) without that being fatal to the caller: package
// validity treats a failed solve as ordinary candidate rejection.
//
// Density derives the per-place marking-density matrix, the mean-token
// vector and its total from a solved steady-state distribution.
package ctmc
