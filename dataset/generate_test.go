package dataset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spnforge/dataset"
)

func TestGenerate_BinningCorrectness(t *testing.T) {
	pRange := [2]int{2, 2}
	tRange := [2]int{2, 2}
	stateBins := []int{4, 8}

	report, err := dataset.Generate(context.Background(), pRange, tRange, stateBins, 2,
		dataset.WithMasterSeed(42),
		dataset.WithWorkerCount(2),
		dataset.WithMiniBatchSize(4),
		dataset.WithAttemptCap(20000),
	)
	if err != nil {
		require.ErrorIs(t, err, dataset.ErrNoProgress)
	}
	require.NotNil(t, report)

	for _, rec := range report.Accepted {
		assert.Equal(t, 2, rec.Bin.P)
		assert.Equal(t, 2, rec.Bin.T)

		n := len(rec.Reach.V)
		var want int
		switch {
		case n < 4:
			want = 0
		case n < 8:
			want = 1
		default:
			want = 2
		}
		assert.Equal(t, want, rec.Bin.Bucket)
	}
}

func TestGenerate_DeterminismUnderSeed(t *testing.T) {
	pRange := [2]int{2, 3}
	tRange := [2]int{2, 3}
	stateBins := []int{6}

	run := func() []dataset.BinKey {
		report, _ := dataset.Generate(context.Background(), pRange, tRange, stateBins, 1,
			dataset.WithMasterSeed(99),
			dataset.WithWorkerCount(1),
			dataset.WithMiniBatchSize(4),
			dataset.WithAttemptCap(5000),
		)

		bins := make([]dataset.BinKey, 0, len(report.Accepted))
		for _, rec := range report.Accepted {
			bins = append(bins, rec.Bin)
		}

		return bins
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}

func TestGenerate_RejectsInvalidRange(t *testing.T) {
	_, err := dataset.Generate(context.Background(), [2]int{3, 1}, [2]int{1, 1}, nil, 1)
	assert.ErrorIs(t, err, dataset.ErrInvalidRange)
}

func TestGenerate_RejectsNonAscendingBins(t *testing.T) {
	_, err := dataset.Generate(context.Background(), [2]int{1, 1}, [2]int{1, 1}, []int{5, 5}, 1)
	assert.ErrorIs(t, err, dataset.ErrInvalidRange)
}

func TestGenerate_AttemptCapReportsUnfilled(t *testing.T) {
	report, err := dataset.Generate(context.Background(), [2]int{2, 2}, [2]int{2, 2}, nil, 1000,
		dataset.WithMasterSeed(1),
		dataset.WithWorkerCount(1),
		dataset.WithMiniBatchSize(2),
		dataset.WithAttemptCap(5),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrNoProgress)
	assert.NotEmpty(t, report.UnfilledBins)
}

func TestGenerate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := dataset.Generate(ctx, [2]int{2, 2}, [2]int{2, 2}, nil, 1000,
		dataset.WithMasterSeed(1),
		dataset.WithWorkerCount(1),
		dataset.WithMiniBatchSize(2),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrNoProgress)
	assert.Less(t, report.Attempts, 1000)
}
