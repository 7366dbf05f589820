package dataset

import "sync"

// bucket returns the state-count bucket index for n states against a
// sorted, strictly ascending stateBins vector: 0 for n < stateBins[0],
// i for stateBins[i-1] <= n < stateBins[i], and len(stateBins) for
// n >= stateBins[len(stateBins)-1].
func bucket(n int, stateBins []int) int {
	for i, b := range stateBins {
		if n < b {
			return i
		}
	}

	return len(stateBins)
}

// binTable is the mutex-protected bin-count table and accepted-record set
// shared by the coordinator across all workers. Only the coordinator
// goroutine touches it.
type binTable struct {
	mu       sync.Mutex
	target   int
	counts   map[BinKey]int
	accepted []*Record
}

func newBinTable(allBins []BinKey, target int) *binTable {
	counts := make(map[BinKey]int, len(allBins))
	for _, k := range allBins {
		counts[k] = 0
	}

	return &binTable{target: target, counts: counts}
}

// tryAccept accepts rec into its bin if that bin has not yet reached
// target, and reports whether the bin became full as a result. It returns
// accepted=false if the bin key is unknown (out of the declared range) or
// already full.
func (b *binTable) tryAccept(rec *Record) (accepted, justFilled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	count, known := b.counts[rec.Bin]
	if !known || count >= b.target {
		return false, false
	}

	b.counts[rec.Bin] = count + 1
	b.accepted = append(b.accepted, rec)

	return true, b.counts[rec.Bin] == b.target
}

func (b *binTable) full() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, count := range b.counts {
		if count < b.target {
			return false
		}
	}

	return true
}

func (b *binTable) unfilled() []BinKey {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []BinKey
	for k, count := range b.counts {
		if count < b.target {
			out = append(out, k)
		}
	}

	return out
}

func allBinKeys(pRange, tRange [2]int, stateBins []int) []BinKey {
	buckets := len(stateBins) + 1
	keys := make([]BinKey, 0, (pRange[1]-pRange[0]+1)*(tRange[1]-tRange[0]+1)*buckets)
	for p := pRange[0]; p <= pRange[1]; p++ {
		for t := tRange[0]; t <= tRange[1]; t++ {
			for bkt := 0; bkt < buckets; bkt++ {
				keys = append(keys, BinKey{P: p, T: t, Bucket: bkt})
			}
		}
	}

	return keys
}
