package dataset

import (
	"context"
	"fmt"
	"sync"
)

// Generate runs the binning generator: a pool of workers independently
// drives the synthesize-filter pipeline until every bin in the
// (P, T, state-count-bucket) Cartesian product holds perBin accepted
// records, the attempt cap is reached, or ctx is cancelled.
//
// pRange and tRange are inclusive [min, max] pairs. stateBins must be
// strictly ascending; it defines len(stateBins)+1 buckets per (P, T) cell.
func Generate(ctx context.Context, pRange, tRange [2]int, stateBins []int, perBin int, opts ...Option) (*Report, error) {
	if pRange[0] < 1 || pRange[0] > pRange[1] {
		return nil, fmt.Errorf("dataset: Generate: P range: %w", ErrInvalidRange)
	}
	if tRange[0] < 1 || tRange[0] > tRange[1] {
		return nil, fmt.Errorf("dataset: Generate: T range: %w", ErrInvalidRange)
	}
	if perBin < 1 {
		return nil, fmt.Errorf("dataset: Generate: per_bin: %w", ErrInvalidRange)
	}
	for i := 1; i < len(stateBins); i++ {
		if stateBins[i] <= stateBins[i-1] {
			return nil, fmt.Errorf("dataset: Generate: state_bins must be strictly ascending: %w", ErrInvalidRange)
		}
	}

	cfg := newConfig(opts...)
	table := newBinTable(allBinKeys(pRange, tRange, stateBins), perBin)

	msgCh := make(chan workerMsg, cfg.workerCount*2)
	stop := make(chan struct{})
	var stopOnce sync.Once
	closeStop := func() { stopOnce.Do(func() { close(stop) }) }

	var wg sync.WaitGroup
	for i := 0; i < cfg.workerCount; i++ {
		rng := deriveRNG(cfg.masterSeed, i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker(ctx, rng, pRange, tRange, stateBins, cfg, msgCh, stop)
		}()
	}
	go func() {
		wg.Wait()
		close(msgCh)
	}()

	report := &Report{}
	var sinkErr error

	for msg := range msgCh {
		report.Attempts++

		if msg.Record == nil {
			if cfg.logger != nil {
				cfg.logger.Printf("candidate rejected: %s", msg.Reason)
			}
		} else {
			accepted, justFilled := table.tryAccept(msg.Record)
			if accepted {
				report.Accepted = append(report.Accepted, msg.Record)
				if cfg.sink != nil {
					if err := cfg.sink.WriteRecord(msg.Record); err != nil && sinkErr == nil {
						sinkErr = fmt.Errorf("dataset: Generate: %w", err)
						closeStop()
					}
				}
				if justFilled && cfg.logger != nil {
					cfg.logger.Printf("bin %+v filled", msg.Record.Bin)
				}
			}
		}

		if sinkErr != nil {
			continue
		}
		if table.full() {
			closeStop()
			continue
		}
		if cfg.attemptCap > 0 && report.Attempts >= cfg.attemptCap {
			closeStop()
			continue
		}
		select {
		case <-ctx.Done():
			closeStop()
		default:
		}
	}

	if sinkErr != nil {
		return report, sinkErr
	}

	report.UnfilledBins = table.unfilled()
	if len(report.UnfilledBins) > 0 {
		if cfg.logger != nil {
			for _, k := range report.UnfilledBins {
				cfg.logger.Printf("bin %+v unfilled after %d attempts", k, report.Attempts)
			}
		}

		return report, fmt.Errorf("dataset: Generate: %w", ErrNoProgress)
	}

	return report, nil
}
