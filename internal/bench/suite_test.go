package bench

import (
	"bytes"
	"crypto"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pqcbench/internal/mechanism"
)

// fakeClock advances a fixed step on every reading, so each timed step
// observes exactly that duration.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type mockKEM struct {
	name     string
	details  mechanism.Details
	mismatch bool
}

func (m *mockKEM) Name() string               { return m.name }
func (m *mockKEM) Details() mechanism.Details { return m.details }

func (m *mockKEM) GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error) {
	return "pub", "priv", nil
}

func (m *mockKEM) Encapsulate(pk crypto.PublicKey) ([]byte, []byte, error) {
	return []byte("ciphertext"), []byte("shared"), nil
}

func (m *mockKEM) Decapsulate(sk crypto.PrivateKey, ct []byte) ([]byte, error) {
	if m.mismatch {
		return []byte("different"), nil
	}
	return []byte("shared"), nil
}

type mockSignature struct {
	name      string
	details   mechanism.Details
	badVerify bool
}

func (m *mockSignature) Name() string               { return m.name }
func (m *mockSignature) Details() mechanism.Details { return m.details }

func (m *mockSignature) GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error) {
	return "pub", "priv", nil
}

func (m *mockSignature) Sign(sk crypto.PrivateKey, message []byte) ([]byte, error) {
	return []byte("signature"), nil
}

func (m *mockSignature) Verify(pk crypto.PublicKey, message, signature []byte) (bool, error) {
	return !m.badVerify, nil
}

type mockProvider struct {
	kems map[string]mechanism.KEM
	sigs map[string]mechanism.Signature
}

func (p *mockProvider) KEM(name string) (mechanism.KEM, error) {
	k, ok := p.kems[name]
	if !ok {
		return nil, fmt.Errorf("kem %q: %w", name, mechanism.ErrNotEnabled)
	}
	return k, nil
}

func (p *mockProvider) Signature(name string) (mechanism.Signature, error) {
	s, ok := p.sigs[name]
	if !ok {
		return nil, fmt.Errorf("signature %q: %w", name, mechanism.ErrNotEnabled)
	}
	return s, nil
}

func (p *mockProvider) KEMNames() []string       { return nil }
func (p *mockProvider) SignatureNames() []string { return nil }

func newTestSuite(p mechanism.Provider, iterations int) (*Suite, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	s := NewSuite(p, iterations, []byte("test message"), buf)
	s.now = (&fakeClock{t: time.Unix(0, 0), step: 5 * time.Millisecond}).Now
	return s, buf
}

func TestSuiteRun(t *testing.T) {
	provider := &mockProvider{
		kems: map[string]mechanism.KEM{
			"MockKEM": &mockKEM{name: "MockKEM", details: mechanism.Details{PublicKeyBytes: 800, SecretKeyBytes: 1600, CiphertextBytes: 768}},
		},
		sigs: map[string]mechanism.Signature{
			"MockSig": &mockSignature{name: "MockSig", details: mechanism.Details{PublicKeyBytes: 32, SecretKeyBytes: 64, SignatureBytes: 2420}},
		},
	}

	s, buf := newTestSuite(provider, 3)
	records, err := s.Run([]string{"MockKEM"}, []string{"MockSig"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// KEMs first, then signatures, in configuration order.
	assert.Equal(t, "MockKEM", records[0].Algorithm)
	assert.Equal(t, mechanism.CategoryKEM, records[0].Category)
	assert.Equal(t, 768, records[0].Details.CiphertextBytes)
	assert.Equal(t, "MockSig", records[1].Algorithm)
	assert.Equal(t, mechanism.CategorySignature, records[1].Category)
	assert.Equal(t, 2420, records[1].Details.SignatureBytes)

	// The fake clock makes each step exactly 5ms, so the mean is exact.
	for _, rec := range records {
		assert.Equal(t, 5.0, rec.KeygenMs)
		assert.Equal(t, 5.0, rec.EncapsSignMs)
		assert.Equal(t, 5.0, rec.DecapsVerifyMs)
	}

	output := buf.String()
	assert.Contains(t, output, "Benchmarking KEM: MockKEM")
	assert.Contains(t, output, "Benchmarking Signature: MockSig")
	assert.Contains(t, output, "Running 3 iterations...")
}

func TestSuiteRun_SkipsUnavailableMechanisms(t *testing.T) {
	provider := &mockProvider{
		kems: map[string]mechanism.KEM{
			"Present": &mockKEM{name: "Present"},
		},
	}

	s, _ := newTestSuite(provider, 1)
	records, err := s.Run([]string{"Absent", "Present"}, []string{"AlsoAbsent"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Present", records[0].Algorithm)
}

func TestSuiteRun_AllUnavailable(t *testing.T) {
	s, _ := newTestSuite(&mockProvider{}, 1)
	records, err := s.Run([]string{"A", "B"}, []string{"C"})
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSuiteRun_SharedSecretMismatchIsFatal(t *testing.T) {
	provider := &mockProvider{
		kems: map[string]mechanism.KEM{
			"Good": &mockKEM{name: "Good"},
			"Bad":  &mockKEM{name: "Bad", mismatch: true},
		},
	}

	s, _ := newTestSuite(provider, 2)
	records, err := s.Run([]string{"Good", "Bad"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shared secret mismatch")
	// Completed records are not delivered on a fatal failure.
	assert.Nil(t, records)
}

func TestSuiteRun_VerifyFailureIsFatal(t *testing.T) {
	provider := &mockProvider{
		sigs: map[string]mechanism.Signature{
			"Bad": &mockSignature{name: "Bad", badVerify: true},
		},
	}

	s, _ := newTestSuite(provider, 1)
	_, err := s.Run(nil, []string{"Bad"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "verification failed")
}

func TestBenchmarkKEM_InvalidIterations(t *testing.T) {
	s, _ := newTestSuite(&mockProvider{}, 0)
	_, err := s.BenchmarkKEM("Anything")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, mechanism.ErrNotEnabled)
}
