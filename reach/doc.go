// Package reach explores the reachable marking space of a Stochastic Petri
// Net by breadth-first search from the initial marking.
//
// Explore returns the ordered marking list V (V[0] == M0), the ordered edge
// list E (0-based indices into V) with a parallel transition-index list A,
// and a Bounded flag. Duplicate markings are detected via spn.Hash with
// exact vector-equality verification on hash collisions: the hash itself is
// never trusted as a complete answer. Exploration halts early, setting
// Bounded=false, if a marking's place count would exceed PlaceLimit or the
// number of distinct markings would exceed MarkLimit — the two independent
// unboundedness detectors required by the design.
//
// Edge emission order is deterministic: (BFS visit order of the source
// marking, ascending transition index), matching the design's ordering
// guarantee exactly.
package reach
