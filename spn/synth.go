package spn

import "math/rand"

// Synthesize builds a random Net with P places and T transitions whose
// underlying bipartite place/transition graph is connected, following the
// spanning-tree-seeded construction:
//
//  1. Seed: connect a uniform-random place and transition.
//  2. Incremental connection: visit the remaining nodes in random order,
//     each one connecting to a uniform-random already-connected node of the
//     opposite kind.
//  3. Densification: every still-empty (place,transition) arc slot is set
//     independently with probability prob.
//  4. Initial marking: each place gets 0 or 1 tokens with equal probability,
//     redrawn until at least one place holds a token.
//  5. Firing rates: each transition gets a rate drawn uniformly from
//     {1, ..., lambdaMax}.
//
// A random source must be supplied via WithSeed or WithRand.
func Synthesize(p, t int, prob float64, lambdaMax int, opts ...SynthOption) (*Net, error) {
	if p < 1 {
		return nil, ErrInvalidPlaceCount
	}
	if t < 1 {
		return nil, ErrInvalidTransitionCount
	}
	if prob < 0 || prob > 1 {
		return nil, ErrInvalidProbability
	}
	if lambdaMax < 1 {
		return nil, ErrInvalidLambdaMax
	}

	cfg := newSynthConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	net, err := NewNet(p, t)
	if err != nil {
		return nil, err
	}

	seedAndGrow(net, cfg.rng)
	densify(net, prob, cfg.rng)
	sampleInitialMarking(net, cfg.rng)
	sampleFiringRates(net, lambdaMax, cfg.rng)

	return net, nil
}

// SynthesizeMany produces n independently-usable nets of the same shape.
// When sharedStructure is true, the spanning-tree skeleton (steps 1-2) is
// grown once and replicated across all n outputs; each output still draws
// its own independent densification, initial marking, and firing rates.
// When sharedStructure is false, every output is fully independent.
func SynthesizeMany(p, t int, prob float64, lambdaMax, n int, sharedStructure bool, opts ...SynthOption) ([]*Net, error) {
	if n < 1 {
		return nil, ErrInvalidBatchSize
	}
	if p < 1 {
		return nil, ErrInvalidPlaceCount
	}
	if t < 1 {
		return nil, ErrInvalidTransitionCount
	}
	if prob < 0 || prob > 1 {
		return nil, ErrInvalidProbability
	}
	if lambdaMax < 1 {
		return nil, ErrInvalidLambdaMax
	}

	cfg := newSynthConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	out := make([]*Net, n)

	if !sharedStructure {
		for i := 0; i < n; i++ {
			net, err := NewNet(p, t)
			if err != nil {
				return nil, err
			}
			seedAndGrow(net, cfg.rng)
			densify(net, prob, cfg.rng)
			sampleInitialMarking(net, cfg.rng)
			sampleFiringRates(net, lambdaMax, cfg.rng)
			out[i] = net
		}

		return out, nil
	}

	skeleton, err := NewNet(p, t)
	if err != nil {
		return nil, err
	}
	seedAndGrow(skeleton, cfg.rng)

	for i := 0; i < n; i++ {
		net := skeleton.Clone()
		densify(net, prob, cfg.rng)
		sampleInitialMarking(net, cfg.rng)
		sampleFiringRates(net, lambdaMax, cfg.rng)
		out[i] = net
	}

	return out, nil
}

// seedAndGrow implements steps 1-2: spanning-tree seed plus incremental
// connection of every remaining place/transition node.
func seedAndGrow(net *Net, rng *rand.Rand) {
	p0 := rng.Intn(net.P)
	t0 := rng.Intn(net.T)
	connectArc(net, p0, t0, rng)

	placesInS := []int{p0}
	transInS := []int{t0}

	placeDone := make([]bool, net.P)
	transDone := make([]bool, net.T)
	placeDone[p0] = true
	transDone[t0] = true

	// Build the remaining node list: places first, then transitions, each
	// tagged so we can dispatch on kind after shuffling.
	type node struct {
		isPlace bool
		idx     int
	}
	remaining := make([]node, 0, net.P+net.T-2)
	for p := 0; p < net.P; p++ {
		if !placeDone[p] {
			remaining = append(remaining, node{true, p})
		}
	}
	for t := 0; t < net.T; t++ {
		if !transDone[t] {
			remaining = append(remaining, node{false, t})
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	for _, nd := range remaining {
		if nd.isPlace {
			t := transInS[rng.Intn(len(transInS))]
			connectArc(net, nd.idx, t, rng)
			placesInS = append(placesInS, nd.idx)
		} else {
			p := placesInS[rng.Intn(len(placesInS))]
			connectArc(net, p, nd.idx, rng)
			transInS = append(transInS, nd.idx)
		}
	}
}

// connectArc adds a single unit-weight arc between place p and transition t,
// choosing Tin or Tout by a fair coin flip. It is a no-op if that slot is
// already set (the spanning-tree growth never revisits a pair, so in
// practice this never triggers, but it keeps the invariant obviously safe).
func connectArc(net *Net, p, t int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		net.Tin[p][t] = 1
	} else {
		net.Tout[p][t] = 1
	}
}

// densify implements step 3: every still-zero arc slot becomes 1
// independently with probability prob.
func densify(net *Net, prob float64, rng *rand.Rand) {
	if prob <= 0 {
		return
	}
	for p := 0; p < net.P; p++ {
		for t := 0; t < net.T; t++ {
			if net.Tin[p][t] == 0 && rng.Float64() < prob {
				net.Tin[p][t] = 1
			}
			if net.Tout[p][t] == 0 && rng.Float64() < prob {
				net.Tout[p][t] = 1
			}
		}
	}
}

// sampleInitialMarking implements step 4: each place independently gets 0
// or 1 tokens with equal probability; an all-zero draw is repeated, so the
// marking always holds at least one token.
func sampleInitialMarking(net *Net, rng *rand.Rand) {
	for {
		total := 0
		for p := 0; p < net.P; p++ {
			net.M0[p] = rng.Intn(2)
			total += net.M0[p]
		}
		if total > 0 {
			return
		}
	}
}

// sampleFiringRates implements step 5: each transition's rate is drawn
// uniformly from the integers {1, ..., lambdaMax}.
func sampleFiringRates(net *Net, lambdaMax int, rng *rand.Rand) {
	for t := 0; t < net.T; t++ {
		net.Lambda[t] = float64(1 + rng.Intn(lambdaMax))
	}
}
