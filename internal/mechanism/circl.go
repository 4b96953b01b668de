package mechanism

import (
	"crypto"
	"fmt"

	"github.com/cloudflare/circl/kem"
	kemschemes "github.com/cloudflare/circl/kem/schemes"
	"github.com/cloudflare/circl/sign"
	signschemes "github.com/cloudflare/circl/sign/schemes"
)

// CIRCLProvider exposes the CIRCL scheme registries through the Provider
// interface. The zero value is ready to use.
type CIRCLProvider struct{}

// NewCIRCLProvider returns a provider backed by the CIRCL registries.
func NewCIRCLProvider() *CIRCLProvider {
	return &CIRCLProvider{}
}

func (p *CIRCLProvider) KEM(name string) (KEM, error) {
	scheme := kemschemes.ByName(name)
	if scheme == nil {
		return nil, fmt.Errorf("kem %q: %w", name, ErrNotEnabled)
	}
	return &circlKEM{scheme: scheme}, nil
}

func (p *CIRCLProvider) Signature(name string) (Signature, error) {
	scheme := signschemes.ByName(name)
	if scheme == nil {
		return nil, fmt.Errorf("signature %q: %w", name, ErrNotEnabled)
	}
	return &circlSignature{scheme: scheme}, nil
}

func (p *CIRCLProvider) KEMNames() []string {
	var names []string
	for _, s := range kemschemes.All() {
		names = append(names, s.Name())
	}
	return names
}

func (p *CIRCLProvider) SignatureNames() []string {
	var names []string
	for _, s := range signschemes.All() {
		names = append(names, s.Name())
	}
	return names
}

type circlKEM struct {
	scheme kem.Scheme
}

func (k *circlKEM) Name() string { return k.scheme.Name() }

func (k *circlKEM) Details() Details {
	return Details{
		PublicKeyBytes:  k.scheme.PublicKeySize(),
		SecretKeyBytes:  k.scheme.PrivateKeySize(),
		CiphertextBytes: k.scheme.CiphertextSize(),
	}
}

func (k *circlKEM) GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error) {
	pk, sk, err := k.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("keygen %s: %w", k.scheme.Name(), err)
	}
	return pk, sk, nil
}

func (k *circlKEM) Encapsulate(pk crypto.PublicKey) ([]byte, []byte, error) {
	pub, ok := pk.(kem.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("encapsulate %s: foreign public key %T", k.scheme.Name(), pk)
	}
	ct, ss, err := k.scheme.Encapsulate(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("encapsulate %s: %w", k.scheme.Name(), err)
	}
	return ct, ss, nil
}

func (k *circlKEM) Decapsulate(sk crypto.PrivateKey, ciphertext []byte) ([]byte, error) {
	priv, ok := sk.(kem.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("decapsulate %s: foreign private key %T", k.scheme.Name(), sk)
	}
	ss, err := k.scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decapsulate %s: %w", k.scheme.Name(), err)
	}
	return ss, nil
}

type circlSignature struct {
	scheme sign.Scheme
}

func (s *circlSignature) Name() string { return s.scheme.Name() }

func (s *circlSignature) Details() Details {
	return Details{
		PublicKeyBytes: s.scheme.PublicKeySize(),
		SecretKeyBytes: s.scheme.PrivateKeySize(),
		SignatureBytes: s.scheme.SignatureSize(),
	}
}

func (s *circlSignature) GenerateKeyPair() (crypto.PublicKey, crypto.PrivateKey, error) {
	pk, sk, err := s.scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("keygen %s: %w", s.scheme.Name(), err)
	}
	return pk, sk, nil
}

func (s *circlSignature) Sign(sk crypto.PrivateKey, message []byte) ([]byte, error) {
	priv, ok := sk.(sign.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("sign %s: foreign private key %T", s.scheme.Name(), sk)
	}
	return s.scheme.Sign(priv, message, nil), nil
}

func (s *circlSignature) Verify(pk crypto.PublicKey, message, signature []byte) (bool, error) {
	pub, ok := pk.(sign.PublicKey)
	if !ok {
		return false, fmt.Errorf("verify %s: foreign public key %T", s.scheme.Name(), pk)
	}
	return s.scheme.Verify(pub, message, signature, nil), nil
}
