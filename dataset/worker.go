package dataset

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/spnforge/spn"
	"github.com/katalvlaran/spnforge/validity"
)

// workerMsg is one candidate outcome submitted to the coordinator: either
// Record is set (accepted by the local pipeline, pending the coordinator's
// bin-capacity decision) or Reason names why it was rejected.
type workerMsg struct {
	Record *Record
	Reason string
}

// runWorker repeatedly draws a random (P, T) in range, synthesizes a
// mini-batch sharing that skeleton, and runs each candidate through
// validity.FilterSPN, submitting every outcome to out. It returns when
// stop is closed or ctx is done, checked between batches and between
// individual candidates.
func runWorker(ctx context.Context, rng *rand.Rand, pRange, tRange [2]int, stateBins []int, cfg *config, out chan<- workerMsg, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		p := pRange[0] + rng.Intn(pRange[1]-pRange[0]+1)
		t := tRange[0] + rng.Intn(tRange[1]-tRange[0]+1)

		nets, err := spn.SynthesizeMany(p, t, cfg.density, cfg.lambdaMax, cfg.miniBatchSize, true, spn.WithRand(rng))
		if err != nil {
			continue
		}

		for _, net := range nets {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			default:
			}

			msg := evaluateCandidate(net, stateBins, cfg, rng)

			select {
			case out <- msg:
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

// evaluateCandidate runs one synthesized net through FilterSPN and builds
// the workerMsg describing the outcome.
func evaluateCandidate(net *spn.Net, stateBins []int, cfg *config, rng *rand.Rand) workerMsg {
	res, err := validity.FilterSPN(net, cfg.placeBound, 4, cfg.marksUpper,
		validity.WithSolver(cfg.solver), validity.WithRand(rng))
	if err != nil {
		return workerMsg{Reason: err.Error()}
	}
	if res.State != validity.StateValid {
		return workerMsg{Reason: res.Reason}
	}

	rec := &Record{
		Bin:      BinKey{P: net.P, T: net.T, Bucket: bucket(len(res.Reach.V), stateBins)},
		Net:      res.Net,
		Reach:    res.Reach,
		Solution: res.Solution,
		Density:  res.Density,
		Mu:       res.Mu,
		MuTotal:  res.MuTotal,
	}

	return workerMsg{Record: rec}
}
