package ctmc

import "github.com/katalvlaran/spnforge/reach"

// Density computes the marking-density matrix and the mean-tokens vector
// from a reachability result and its steady-state distribution.
//
// density has shape P x (K+1), K = max observed place count over V; entry
// (p,k) is the steady-state probability that place p holds exactly k
// tokens. Each row sums to 1 by construction. mu[p] = sum_k k*density[p,k];
// muTotal = sum_p mu[p].
func Density(res *reach.Result, pi []float64) (density [][]float64, mu []float64, muTotal float64) {
	if res == nil || len(res.V) == 0 {
		return nil, nil, 0
	}
	p := len(res.V[0])

	k := 0
	for _, m := range res.V {
		for _, v := range m {
			if v > k {
				k = v
			}
		}
	}

	density = make([][]float64, p)
	for i := range density {
		density[i] = make([]float64, k+1)
	}

	for i, m := range res.V {
		prob := pi[i]
		for place, tokens := range m {
			density[place][tokens] += prob
		}
	}

	mu = make([]float64, p)
	for place := 0; place < p; place++ {
		for tokens, d := range density[place] {
			mu[place] += float64(tokens) * d
		}
		muTotal += mu[place]
	}

	return density, mu, muTotal
}
