package reach

// Result is the outcome of a reachability exploration: the marking list V,
// the edge list E (0-based indices into V), the parallel transition-index
// list A, and the Bounded flag.
type Result struct {
	V       [][]int
	E       [][2]int
	A       []int
	Bounded bool
}
