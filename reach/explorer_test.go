package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spnforge/reach"
	"github.com/katalvlaran/spnforge/spn"
)

// producerConsumer builds the design's concrete producer/consumer scenario:
// Tin = [[1,0],[0,1]], Tout = [[0,1],[1,0]], M0 = [1,0].
func producerConsumer(t *testing.T) *spn.Net {
	t.Helper()
	net, err := spn.NewNet(2, 2)
	require.NoError(t, err)
	net.Tin[0][0] = 1
	net.Tin[1][1] = 1
	net.Tout[0][1] = 1
	net.Tout[1][0] = 1
	net.M0 = []int{1, 0}
	net.Lambda = []float64{1, 1}

	return net
}

func TestExplore_ProducerConsumer(t *testing.T) {
	net := producerConsumer(t)

	res, err := reach.Explore(net)
	require.NoError(t, err)

	assert.True(t, res.Bounded)
	assert.Len(t, res.V, 2)
	assert.Len(t, res.E, 2)
	assert.Equal(t, []int{1, 0}, res.V[0])

	markings := map[[2]int]bool{}
	for _, m := range res.V {
		markings[[2]int{m[0], m[1]}] = true
	}
	assert.True(t, markings[[2]int{1, 0}])
	assert.True(t, markings[[2]int{0, 1}])
}

func TestExplore_InitialMarkingIsFirst(t *testing.T) {
	net := producerConsumer(t)
	res, err := reach.Explore(net)
	require.NoError(t, err)
	assert.Equal(t, net.M0, res.V[0])
}

func TestExplore_UnboundedByPlaceLimit(t *testing.T) {
	// A single place fed by a source transition with no inputs: always
	// enabled, grows the marking without bound.
	net, err := spn.NewNet(1, 1)
	require.NoError(t, err)
	net.Tout[0][0] = 1
	net.M0 = []int{0}
	net.Lambda = []float64{1}

	res, err := reach.Explore(net, reach.WithPlaceLimit(3))
	require.NoError(t, err)
	assert.False(t, res.Bounded)
}

func TestExplore_UnboundedByMarkLimit(t *testing.T) {
	// Five-place cyclic shifter: token moves p0->p1->p2->p3->p4->p0. With a
	// token sum fixed at 5 distributed across 5 places, the number of
	// reachable markings exceeds a tight mark limit.
	net, err := spn.NewNet(5, 5)
	require.NoError(t, err)
	for p := 0; p < 5; p++ {
		nxt := (p + 1) % 5
		net.Tin[p][p] = 1
		net.Tout[nxt][p] = 1
	}
	net.M0 = []int{5, 0, 0, 0, 0}
	net.Lambda = []float64{1, 1, 1, 1, 1}

	res, err := reach.Explore(net, reach.WithMarkLimit(5))
	require.NoError(t, err)
	assert.False(t, res.Bounded)
}

func TestExplore_HashCollisionsHandled(t *testing.T) {
	// Five-place cyclic shifter seeded with [1,4,0,0,0] (sum 5): every
	// reachable marking shares that same token total, and markings that
	// are permutations of each other (e.g. [1,4,0,0,0] vs [4,1,0,0,0]) are
	// a natural source of hash collisions. Every composition of 5 tokens
	// over 5 places is reachable (stars-and-bars: C(9,4) = 126), and they
	// must all be kept distinct despite any hash collisions along the way.
	net, err := spn.NewNet(5, 5)
	require.NoError(t, err)
	for p := 0; p < 5; p++ {
		nxt := (p + 1) % 5
		net.Tin[p][p] = 1
		net.Tout[nxt][p] = 1
	}
	net.M0 = []int{1, 4, 0, 0, 0}
	net.Lambda = []float64{1, 1, 1, 1, 1}

	res, err := reach.Explore(net, reach.WithMarkLimit(200))
	require.NoError(t, err)
	assert.True(t, res.Bounded)
	assert.Len(t, res.V, 126)
}

func TestExplore_RejectsNilNet(t *testing.T) {
	_, err := reach.Explore(nil)
	assert.ErrorIs(t, err, reach.ErrNilNet)
}

func TestExplore_EdgeOrderingIsDeterministic(t *testing.T) {
	net := producerConsumer(t)
	a, err := reach.Explore(net)
	require.NoError(t, err)
	b, err := reach.Explore(net)
	require.NoError(t, err)
	assert.Equal(t, a.E, b.E)
	assert.Equal(t, a.A, b.A)
}

func TestExplore_ReachabilityClosureAndUniqueness(t *testing.T) {
	net := producerConsumer(t)
	res, err := reach.Explore(net)
	require.NoError(t, err)

	c := net.Incidence()
	for i, e := range res.E {
		src, dst := e[0], e[1]
		tr := res.A[i]
		for p := 0; p < net.P; p++ {
			assert.GreaterOrEqual(t, res.V[src][p], net.Tin[p][tr])
			assert.Equal(t, res.V[src][p]+c[p][tr], res.V[dst][p])
		}
	}

	seen := map[[2]int]bool{}
	for _, m := range res.V {
		key := [2]int{m[0], m[1]}
		assert.False(t, seen[key], "duplicate marking in V")
		seen[key] = true
	}
}
