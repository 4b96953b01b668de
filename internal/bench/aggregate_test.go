package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pqcbench/internal/mechanism"
)

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestMean_SingleSample(t *testing.T) {
	got, err := Mean([]float64{7.25})
	assert.NoError(t, err)
	assert.Equal(t, 7.25, got)
}

func TestMean_Empty(t *testing.T) {
	_, err := Mean(nil)
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	details := mechanism.Details{
		PublicKeyBytes:  1184,
		SecretKeyBytes:  2400,
		CiphertextBytes: 1088,
	}
	samples := Samples{
		Keygen: []float64{1, 3},
		Op:     []float64{2, 4},
		Final:  []float64{5, 5},
	}

	rec, err := aggregate("ML-KEM-768", mechanism.CategoryKEM, details, samples)
	assert.NoError(t, err)
	assert.Equal(t, "ML-KEM-768", rec.Algorithm)
	assert.Equal(t, mechanism.CategoryKEM, rec.Category)
	assert.Equal(t, details, rec.Details)
	assert.Equal(t, 2.0, rec.KeygenMs)
	assert.Equal(t, 3.0, rec.EncapsSignMs)
	assert.Equal(t, 5.0, rec.DecapsVerifyMs)
}

func TestAggregate_EmptySamples(t *testing.T) {
	_, err := aggregate("X", mechanism.CategoryKEM, mechanism.Details{}, Samples{})
	assert.Error(t, err)
}
