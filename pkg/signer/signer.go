package signer

import (
	"encoding/base64"
	"fmt"
)

// Supported algorithm names.
const (
	AlgorithmHMAC    = "hmac-sha256"
	AlgorithmBLAKE2b = "blake2b"
	AlgorithmEd25519 = "ed25519"
)

// Signer produces and checks tokens over arbitrary payloads.
// Implementations must be safe for concurrent use.
type Signer interface {
	// Sign returns the token for payload.
	Sign(payload []byte) string
	// Verify reports whether token was produced by Sign for payload.
	Verify(payload []byte, token string) bool
}

// encoding rejects non-zero padding bits so each token has exactly one textual form.
var encoding = base64.RawURLEncoding.Strict()

func encodeToken(b []byte) string {
	return encoding.EncodeToString(b)
}

func decodeToken(token string) ([]byte, bool) {
	if token == "" {
		return nil, false
	}
	b, err := encoding.DecodeString(token)
	if err != nil {
		return nil, false
	}
	return b, true
}

// New builds a Signer for the named algorithm, deriving its key from secret.
// An empty algorithm selects HMAC-SHA256.
func New(algorithm string, secret []byte) (Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingKey
	}

	switch algorithm {
	case "", AlgorithmHMAC:
		key, err := DeriveKey(secret, AlgorithmHMAC, KeySize)
		if err != nil {
			return nil, err
		}
		return NewHMAC(key)
	case AlgorithmBLAKE2b:
		key, err := DeriveKey(secret, AlgorithmBLAKE2b, KeySize)
		if err != nil {
			return nil, err
		}
		return NewBLAKE2b(key)
	case AlgorithmEd25519:
		seed, err := DeriveKey(secret, AlgorithmEd25519, SeedSize)
		if err != nil {
			return nil, err
		}
		return NewEd25519(seed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
