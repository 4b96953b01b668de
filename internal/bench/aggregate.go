package bench

import (
	"fmt"

	"pqcbench/internal/mechanism"
)

// Mean returns the arithmetic mean of values. An empty input is a
// precondition violation, not a recoverable runtime condition.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean of zero samples is undefined")
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// aggregate reduces the three sample sequences to their means and combines
// them with the target's identity and size metadata into one Record.
func aggregate(name string, category mechanism.Category, details mechanism.Details, samples Samples) (Record, error) {
	keygen, err := Mean(samples.Keygen)
	if err != nil {
		return Record{}, fmt.Errorf("aggregate %s keygen: %w", name, err)
	}
	op, err := Mean(samples.Op)
	if err != nil {
		return Record{}, fmt.Errorf("aggregate %s op: %w", name, err)
	}
	final, err := Mean(samples.Final)
	if err != nil {
		return Record{}, fmt.Errorf("aggregate %s final: %w", name, err)
	}

	return Record{
		Algorithm:      name,
		Category:       category,
		Details:        details,
		KeygenMs:       keygen,
		EncapsSignMs:   op,
		DecapsVerifyMs: final,
	}, nil
}
