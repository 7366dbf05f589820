// Package spn implements the Stochastic Petri Net data model together with
// its two generative operations: random connected synthesis and structural
// repair of isolated nodes.
//
// A Net is the compound matrix [Tin | Tout | M0] described by the design:
// Tin and Tout are P×T binary matrices (arc presence, unit weight only),
// M0 is a length-P non-negative integer vector (the initial marking), and
// Lambda is a length-T vector of positive firing rates.
//
// Synthesize builds a Net whose underlying bipartite place/transition graph
// is guaranteed connected: a uniform-random spanning tree is grown first
// (Seed + incremental connection), then arcs are densified by independent
// Bernoulli trials, then the initial marking and firing rates are sampled.
// SynthesizeMany produces a batch, optionally sharing one spanning-tree
// skeleton (shared_structure) across independently-sampled dynamics.
//
// HasNoIsolatedNodes and AddEdgesToIsolatedNodes implement the structural
// filter: the first is a pure predicate, the second repairs a Net in place
// so the predicate holds afterward.
//
// Marking fingerprints for the reachability explorer (package reach) live
// here too: Hash computes a polynomial rolling hash of a marking vector.
// Collisions are expected and are resolved by exact comparison upstream;
// Hash only needs to be fast and reasonably spread.
package spn
