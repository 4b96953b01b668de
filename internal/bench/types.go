package bench

import "pqcbench/internal/mechanism"

// Record is the flattened result for one benchmarked algorithm: its
// identity, the structural sizes read from the provider, and the mean
// wall-clock time of each timed step. Immutable once produced.
type Record struct {
	Algorithm string
	Category  mechanism.Category
	Details   mechanism.Details

	KeygenMs       float64
	EncapsSignMs   float64
	DecapsVerifyMs float64
}

// Samples holds the per-iteration timings of a run, in milliseconds,
// one sequence per timed step and in iteration order. Op is encapsulate
// for KEMs and sign for signature schemes; Final is decapsulate or verify.
type Samples struct {
	Keygen []float64
	Op     []float64
	Final  []float64
}
