// Package spnforge generates labeled benchmark datasets of Stochastic Petri
// Nets (SPNs) together with their reachability graphs and steady-state
// distributions, for use as training/evaluation data by learning algorithms
// that approximate continuous-time Markov chain (CTMC) solutions.
//
// The generation pipeline is organized under dedicated subpackages:
//
//	spn/      — SPN data model, structural hashing, random synthesis
//	            (spanning-tree seeding + densification) and the structural
//	            (connectivity) filter
//	reach/    — reachability exploration: BFS over markings with duplicate
//	            detection (hash bucket + exact verification) and
//	            unboundedness detection
//	ctmc/     — sparse generator-matrix assembly and steady-state solving
//	            (gonum/mat direct solve, pluggable Solver strategy),
//	            plus derived marking-density / mean-token metrics
//	validity/ — the CANDIDATE→CONNECTED→BOUNDED→SOLVABLE→VALID state
//	            machine that decides whether a synthesized net is usable
//	dataset/  — the binning generator: a worker pool that fills
//	            (place-count, transition-count, state-count) bins with
//	            VALID nets, deterministically seeded per worker
//
// A net moves through the pipeline in one direction: spn.Synthesize produces
// a candidate, spn.HasNoIsolatedNodes/spn.AddEdgesToIsolatedNodes repair or
// flag disconnected structure, reach.Explore builds the reachability graph
// and classifies boundedness, ctmc.Assemble and ctmc.Solve produce the
// steady-state distribution, and validity.FilterSPN folds those outcomes
// into a single state. dataset.Generate drives many such attempts across a
// worker pool until every requested bin is full or exhausted.
package spnforge
