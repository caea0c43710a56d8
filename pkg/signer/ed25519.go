package signer

import (
	"crypto/ed25519"
)

// SeedSize is the size of an Ed25519 private key seed.
const SeedSize = ed25519.SeedSize

// Ed25519 signs payloads with an Ed25519 key pair.
// A verifier-only instance holds just the public key.
type Ed25519 struct {
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// NewEd25519 returns a signer for the key pair generated from seed.
func NewEd25519(seed []byte) (*Ed25519, error) {
	if len(seed) == 0 {
		return nil, ErrMissingKey
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidKey
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Ed25519{
		private: priv,
		public:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// NewEd25519Verifier returns an instance that can verify but not sign.
func NewEd25519Verifier(pub ed25519.PublicKey) (*Ed25519, error) {
	if len(pub) == 0 {
		return nil, ErrMissingKey
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, ErrInvalidKey
	}
	return &Ed25519{public: append(ed25519.PublicKey(nil), pub...)}, nil
}

// PublicKey returns the verification key to hand to verifier-only nodes.
func (s *Ed25519) PublicKey() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), s.public...)
}

// Sign returns an empty token when the instance has no private key.
func (s *Ed25519) Sign(payload []byte) string {
	if s.private == nil {
		return ""
	}
	return encodeToken(ed25519.Sign(s.private, payload))
}

func (s *Ed25519) Verify(payload []byte, token string) bool {
	sig, ok := decodeToken(token)
	if !ok || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(s.public, payload, sig)
}
