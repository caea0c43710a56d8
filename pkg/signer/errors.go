package signer

import "errors"

var (
	ErrMissingKey          = errors.New("signer: missing key material")
	ErrInvalidKey          = errors.New("signer: invalid key material")
	ErrUnknownAlgorithm    = errors.New("signer: unknown algorithm")
	ErrKeyDerivationFailed = errors.New("signer: key derivation failed")
)
