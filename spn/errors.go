package spn

import "errors"

// Sentinel errors for spn operations.
var (
	// ErrInvalidPlaceCount is returned when P < 1.
	ErrInvalidPlaceCount = errors.New("spn: place count must be >= 1")

	// ErrInvalidTransitionCount is returned when T < 1.
	ErrInvalidTransitionCount = errors.New("spn: transition count must be >= 1")

	// ErrInvalidProbability is returned when prob is outside [0,1].
	ErrInvalidProbability = errors.New("spn: densification probability must be in [0,1]")

	// ErrInvalidLambdaMax is returned when lambdaMax < 1.
	ErrInvalidLambdaMax = errors.New("spn: lambda_max must be >= 1")

	// ErrInvalidBatchSize is returned when SynthesizeMany is asked for n < 1.
	ErrInvalidBatchSize = errors.New("spn: batch size must be >= 1")

	// ErrNeedRandSource is returned when no *rand.Rand and no seed were supplied.
	ErrNeedRandSource = errors.New("spn: a random source is required (WithSeed or WithRand)")

	// ErrNilNet is returned by operations given a nil *Net.
	ErrNilNet = errors.New("spn: net is nil")

	// ErrDimensionMismatch is returned when a matrix's rows/columns disagree
	// with its declared P/T.
	ErrDimensionMismatch = errors.New("spn: matrix dimensions do not match P/T")
)
