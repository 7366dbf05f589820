package reach

import (
	"github.com/katalvlaran/spnforge/spn"
)

// walker encapsulates the mutable state of one breadth-first exploration.
type walker struct {
	net *spn.Net
	c   [][]int // incidence matrix, cached once
	cfg *config

	V       [][]int
	E       [][2]int
	A       []int
	buckets map[uint64][]int // hash -> indices into V sharing that hash
	queue   []int            // FIFO of marking indices pending expansion
	bounded bool
	stopped bool // set once a limit aborts exploration
}

// Explore performs a breadth-first search of the marking space reachable
// from net.M0, returning the ordered marking/edge/transition lists and a
// Bounded flag. Exploration halts (Bounded=false) the instant a place count
// would exceed PlaceLimit, or the distinct-marking count would exceed
// MarkLimit.
func Explore(net *spn.Net, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNet
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)

	w := &walker{
		net:     net,
		c:       net.Incidence(),
		cfg:     cfg,
		V:       make([][]int, 0, minInt(cfg.markLimit, 1024)),
		E:       make([][2]int, 0, minInt(cfg.markLimit, 1024)),
		A:       make([]int, 0, minInt(cfg.markLimit, 1024)),
		buckets: make(map[uint64][]int),
		bounded: true,
	}

	m0 := append([]int(nil), net.M0...)
	w.addMarking(m0)
	w.queue = append(w.queue, 0)

	w.loop()

	return &Result{
		V:       w.V,
		E:       w.E,
		A:       w.A,
		Bounded: w.bounded,
	}, nil
}

// addMarking appends m to V and registers it in the hash bucket table,
// returning its index.
func (w *walker) addMarking(m []int) int {
	idx := len(w.V)
	w.V = append(w.V, m)
	h := spn.Hash(m)
	w.buckets[h] = append(w.buckets[h], idx)

	return idx
}

// findMarking returns the index of m in V if present (verified by exact
// vector comparison against every bucketed candidate), or -1.
func (w *walker) findMarking(m []int) int {
	h := spn.Hash(m)
	for _, idx := range w.buckets[h] {
		if markingsEqual(w.V[idx], m) {
			return idx
		}
	}

	return -1
}

// loop drains the worklist, expanding each marking's enabled transitions in
// ascending transition-index order and emitting edges in
// (BFS visit order of source, ascending transition index).
func (w *walker) loop() {
	for len(w.queue) > 0 && !w.stopped {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.expand(cur)
	}
}

// expand computes every enabled transition's successor marking from the
// marking at index cur, applying the two unboundedness detectors in order.
func (w *walker) expand(cur int) {
	m := w.V[cur]
	t := w.net.T

	for ti := 0; ti < t; ti++ {
		if w.stopped {
			return
		}
		if !w.enabled(m, ti) {
			continue
		}

		next := fire(m, w.c, ti)

		if exceedsPlaceLimit(next, w.cfg.placeLimit) {
			w.bounded = false
			w.stopped = true
			return
		}

		j := w.findMarking(next)
		if j < 0 {
			if len(w.V)+1 > w.cfg.markLimit {
				w.bounded = false
				w.stopped = true
				return
			}
			j = w.addMarking(next)
			w.queue = append(w.queue, j)
		}

		w.E = append(w.E, [2]int{cur, j})
		w.A = append(w.A, ti)
	}
}

// enabled reports whether transition t is enabled in marking m: every
// place's token count must be at least that place's Tin requirement.
func (w *walker) enabled(m []int, t int) bool {
	for p := 0; p < w.net.P; p++ {
		if m[p] < w.net.Tin[p][t] {
			return false
		}
	}

	return true
}

// fire computes m + C[:,t] without mutating m.
func fire(m []int, c [][]int, t int) []int {
	out := make([]int, len(m))
	for p := range m {
		out[p] = m[p] + c[p][t]
	}

	return out
}

func exceedsPlaceLimit(m []int, limit int) bool {
	for _, v := range m {
		if v > limit {
			return true
		}
	}

	return false
}

func markingsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
