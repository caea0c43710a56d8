package signer

import (
	"crypto/subtle"

	"golang.org/x/crypto/blake2b"
)

// BLAKE2b signs payloads with keyed BLAKE2b-256.
type BLAKE2b struct {
	key []byte
}

// NewBLAKE2b returns a keyed BLAKE2b-256 signer. Keys longer than 64 bytes are rejected.
func NewBLAKE2b(key []byte) (*BLAKE2b, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}
	if len(key) > blake2b.Size {
		return nil, ErrInvalidKey
	}
	return &BLAKE2b{key: append([]byte(nil), key...)}, nil
}

func (s *BLAKE2b) mac(payload []byte) []byte {
	// New256 only fails for keys over 64 bytes, which the constructor rejects.
	h, _ := blake2b.New256(s.key)
	h.Write(payload)
	return h.Sum(nil)
}

func (s *BLAKE2b) Sign(payload []byte) string {
	return encodeToken(s.mac(payload))
}

func (s *BLAKE2b) Verify(payload []byte, token string) bool {
	sig, ok := decodeToken(token)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(sig, s.mac(payload)) == 1
}
