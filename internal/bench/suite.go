package bench

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pqcbench/internal/mechanism"
	"pqcbench/internal/telemetry"
)

// Suite drives timed benchmark runs against a mechanism provider.
// Execution is strictly sequential: timing wall-clock durations rules out
// any interleaving, so there are no contexts, timeouts or goroutines here.
// A stalled provider call stalls the whole run.
type Suite struct {
	Provider   mechanism.Provider
	Iterations int
	Message    []byte
	Progress   io.Writer

	now func() time.Time
}

// NewSuite returns a suite benchmarking iterations repetitions per target,
// signing message for signature schemes, and writing progress to progress.
func NewSuite(provider mechanism.Provider, iterations int, message []byte, progress io.Writer) *Suite {
	if progress == nil {
		progress = io.Discard
	}
	return &Suite{
		Provider:   provider,
		Iterations: iterations,
		Message:    message,
		Progress:   progress,
		now:        time.Now,
	}
}

// Run benchmarks every KEM and then every signature scheme in the given
// order, which is preserved in the returned records. Targets the provider
// build does not enable are logged and skipped; any other failure aborts
// the run with no partial results.
func (s *Suite) Run(kems, sigs []string) ([]Record, error) {
	var records []Record

	for _, name := range kems {
		rec, err := s.BenchmarkKEM(name)
		if err != nil {
			if errors.Is(err, mechanism.ErrNotEnabled) {
				slog.Warn("Mechanism not enabled in this provider build, skipping", "algorithm", name)
				telemetry.MechanismsSkipped.Inc()
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	for _, name := range sigs {
		rec, err := s.BenchmarkSignature(name)
		if err != nil {
			if errors.Is(err, mechanism.ErrNotEnabled) {
				slog.Warn("Mechanism not enabled in this provider build, skipping", "algorithm", name)
				telemetry.MechanismsSkipped.Inc()
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// BenchmarkKEM runs the keygen/encapsulate/decapsulate triple Iterations
// times for the named KEM. The shared secret derived by the encapsulating
// side must equal the one derived by the decapsulating side on every
// iteration; a mismatch is a fatal correctness failure.
func (s *Suite) BenchmarkKEM(name string) (Record, error) {
	if s.Iterations <= 0 {
		return Record{}, fmt.Errorf("iteration count must be positive, got %d", s.Iterations)
	}

	fmt.Fprintf(s.Progress, "\n--- Benchmarking KEM: %s ---\n", name)

	k, err := s.Provider.KEM(name)
	if err != nil {
		return Record{}, err
	}

	fmt.Fprintf(s.Progress, "Running %d iterations...\n", s.Iterations)

	var samples Samples
	for i := 0; i < s.Iterations; i++ {
		var pk crypto.PublicKey
		var sk crypto.PrivateKey
		err := s.timed(&samples.Keygen, func() error {
			var err error
			pk, sk, err = k.GenerateKeyPair()
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "keygen").Inc()

		var ciphertext, encapSecret []byte
		err = s.timed(&samples.Op, func() error {
			var err error
			ciphertext, encapSecret, err = k.Encapsulate(pk)
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "encapsulate").Inc()

		var decapSecret []byte
		err = s.timed(&samples.Final, func() error {
			var err error
			decapSecret, err = k.Decapsulate(sk, ciphertext)
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "decapsulate").Inc()

		if !bytes.Equal(encapSecret, decapSecret) {
			return Record{}, fmt.Errorf("kem %s: shared secret mismatch on iteration %d", name, i)
		}
	}

	return aggregate(name, mechanism.CategoryKEM, k.Details(), samples)
}

// BenchmarkSignature runs the keygen/sign/verify triple Iterations times
// for the named signature scheme, signing the suite's fixed message. A
// signature that fails verification is a fatal correctness failure.
func (s *Suite) BenchmarkSignature(name string) (Record, error) {
	if s.Iterations <= 0 {
		return Record{}, fmt.Errorf("iteration count must be positive, got %d", s.Iterations)
	}

	fmt.Fprintf(s.Progress, "\n--- Benchmarking Signature: %s ---\n", name)

	sig, err := s.Provider.Signature(name)
	if err != nil {
		return Record{}, err
	}

	fmt.Fprintf(s.Progress, "Running %d iterations...\n", s.Iterations)

	var samples Samples
	for i := 0; i < s.Iterations; i++ {
		var pk crypto.PublicKey
		var sk crypto.PrivateKey
		err := s.timed(&samples.Keygen, func() error {
			var err error
			pk, sk, err = sig.GenerateKeyPair()
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "keygen").Inc()

		var signature []byte
		err = s.timed(&samples.Op, func() error {
			var err error
			signature, err = sig.Sign(sk, s.Message)
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "sign").Inc()

		var valid bool
		err = s.timed(&samples.Final, func() error {
			var err error
			valid, err = sig.Verify(pk, s.Message, signature)
			return err
		})
		if err != nil {
			return Record{}, err
		}
		telemetry.OperationsTotal.WithLabelValues(name, "verify").Inc()

		if !valid {
			return Record{}, fmt.Errorf("signature %s: verification failed on iteration %d", name, i)
		}
	}

	return aggregate(name, mechanism.CategorySignature, sig.Details(), samples)
}

// timed runs op, appending its wall-clock duration in milliseconds to dst.
func (s *Suite) timed(dst *[]float64, op func() error) error {
	start := s.now()
	err := op()
	elapsed := s.now().Sub(start)
	if err != nil {
		return err
	}
	*dst = append(*dst, float64(elapsed)/float64(time.Millisecond))
	return nil
}
