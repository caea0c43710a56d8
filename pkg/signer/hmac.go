package signer

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMAC signs payloads with HMAC-SHA256.
type HMAC struct {
	key []byte
}

// NewHMAC returns an HMAC-SHA256 signer. The key is copied.
func NewHMAC(key []byte) (*HMAC, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}
	return &HMAC{key: append([]byte(nil), key...)}, nil
}

func (s *HMAC) mac(payload []byte) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write(payload)
	return h.Sum(nil)
}

func (s *HMAC) Sign(payload []byte) string {
	return encodeToken(s.mac(payload))
}

func (s *HMAC) Verify(payload []byte, token string) bool {
	sig, ok := decodeToken(token)
	if !ok {
		return false
	}
	return hmac.Equal(sig, s.mac(payload))
}
