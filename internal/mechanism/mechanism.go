package mechanism

import (
	"crypto"
	"errors"
)

// ErrNotEnabled is returned when an algorithm name is not present in the
// linked provider build. Callers are expected to treat it as skippable,
// unlike every other error coming out of this package.
var ErrNotEnabled = errors.New("mechanism not enabled in provider")

// Category tags a mechanism as a KEM or a signature scheme.
type Category string

const (
	CategoryKEM       Category = "KEM"
	CategorySignature Category = "Signature"
)

// Details holds the fixed structural sizes of a mechanism, in bytes.
// These are read from the scheme descriptor and never change within a run.
// CiphertextBytes is only meaningful for KEMs, SignatureBytes only for
// signature schemes; the inapplicable field is zero.
type Details struct {
	PublicKeyBytes  int
	SecretKeyBytes  int
	CiphertextBytes int
	SignatureBytes  int
}

// KEM is a handle to a single key encapsulation mechanism.
// Keys are opaque; they are only ever passed back into the same handle.
type KEM interface {
	Name() string
	Details() Details
	GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error)
	Encapsulate(pk crypto.PublicKey) (ciphertext, sharedSecret []byte, err error)
	Decapsulate(sk crypto.PrivateKey, ciphertext []byte) (sharedSecret []byte, err error)
}

// Signature is a handle to a single signature scheme.
type Signature interface {
	Name() string
	Details() Details
	GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error)
	Sign(sk crypto.PrivateKey, message []byte) ([]byte, error)
	Verify(pk crypto.PublicKey, message, signature []byte) (bool, error)
}

// Provider constructs mechanism handles by name and enumerates what the
// linked build supports.
type Provider interface {
	KEM(name string) (KEM, error)
	Signature(name string) (Signature, error)
	KEMNames() []string
	SignatureNames() []string
}
