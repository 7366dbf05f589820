package validity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spnforge/spn"
	"github.com/katalvlaran/spnforge/validity"
)

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

func TestFilterSPN_ValidEndToEnd(t *testing.T) {
	net := producerConsumer(t)

	res, err := validity.FilterSPN(net, validity.DefaultPlaceBound, 4, validity.DefaultMarksUpper)
	require.NoError(t, err)
	require.Equal(t, validity.StateValid, res.State)
	require.NotNil(t, res.Solution)

	assert.InDelta(t, 0.5, res.Solution.Pi[0], 1e-9)
	assert.InDelta(t, 0.5, res.Solution.Pi[1], 1e-9)
	assert.InDelta(t, 1.0, res.MuTotal, 1e-9)
}

func TestFilterSPN_DisconnectedRejectedWithoutRand(t *testing.T) {
	net, err := spn.NewNet(3, 2)
	require.NoError(t, err)
	net.Tin[0][0] = 1
	net.Tout[1][0] = 1
	// place 2 has no incident arc at all.
	net.M0 = []int{1, 0, 0}
	net.Lambda = []float64{1, 1}

	res, err := validity.FilterSPN(net, validity.DefaultPlaceBound, 4, validity.DefaultMarksUpper)
	require.NoError(t, err)
	assert.Equal(t, validity.StateCandidate, res.State)
	assert.NotEmpty(t, res.Reason)
}

func TestFilterSPN_DisconnectedRepairedWithRand(t *testing.T) {
	net, err := spn.NewNet(3, 2)
	require.NoError(t, err)
	net.Tin[0][0] = 1
	net.Tout[1][0] = 1
	net.M0 = []int{1, 0, 0}
	net.Lambda = []float64{1, 1}

	rng := rand.New(rand.NewSource(7))
	res, err := validity.FilterSPN(net, validity.DefaultPlaceBound, 4, validity.DefaultMarksUpper, validity.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, validity.StateCandidate, res.State)
}

func TestFilterSPN_RejectsNilNet(t *testing.T) {
	res, err := validity.FilterSPN(nil, validity.DefaultPlaceBound, 4, validity.DefaultMarksUpper)
	require.NoError(t, err)
	assert.Equal(t, validity.StateInvalid, res.State)
}

func TestFilterSPN_UnboundedRejected(t *testing.T) {
	net, err := spn.NewNet(1, 1)
	require.NoError(t, err)
	// transition 0 has no input place, so it is always enabled and fires
	// without bound, growing the single place's token count forever.
	net.Tout[0][0] = 1
	net.M0 = []int{0}
	net.Lambda = []float64{1}

	res, err := validity.FilterSPN(net, 3, 4, 500)
	require.NoError(t, err)
	assert.Equal(t, validity.StateConnected, res.State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "VALID", validity.StateValid.String())
	assert.Equal(t, "INVALID", validity.StateInvalid.String())
}
