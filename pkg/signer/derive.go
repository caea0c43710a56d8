package signer

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the size of derived MAC keys.
const KeySize = 32

// saltInfo separates keys derived here from any other HKDF use of the same secret.
const saltInfo = "verifyemail-signer-v1"

// DeriveKey expands secret into a key of the given size bound to purpose.
// Different purposes yield unrelated keys from the same secret.
func DeriveKey(secret []byte, purpose string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrMissingKey
	}
	if size <= 0 {
		return nil, ErrInvalidKey
	}

	r := hkdf.New(sha256.New, secret, []byte(saltInfo), []byte(purpose))
	key := make([]byte, size)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}
