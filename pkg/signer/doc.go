// Package signer provides interchangeable signing backends for short opaque tokens.
//
// A Signer turns an arbitrary payload into a compact, URL-safe token and checks
// that a presented token was produced for the same payload. Callers depend on
// the Signer interface only, so the cryptographic backend can be swapped
// without touching the code that builds or verifies payloads.
//
// # Backends
//
//   - HMAC-SHA256 (NewHMAC) is the default and the right choice for a single
//     service that both issues and checks tokens.
//   - Keyed BLAKE2b-256 (NewBLAKE2b) is a faster MAC with the same properties.
//   - Ed25519 (NewEd25519, NewEd25519Verifier) splits issuing from checking:
//     nodes that only verify hold the public key and cannot mint tokens.
//
// Tokens are unpadded base64url. Decoding is strict, so a token that differs in
// any character never verifies. All comparisons are constant time.
//
// # Key derivation
//
// DeriveKey expands a configured application secret into a per-purpose key with
// HKDF-SHA256. New uses it so the same secret never keys two different
// algorithms directly.
//
// # Usage
//
//	import "github.com/dmitrymomot/verifyemail/pkg/signer"
//
//	s, err := signer.New(signer.AlgorithmHMAC, []byte(os.Getenv("APP_SECRET")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok := s.Sign([]byte("payload"))
//	ok := s.Verify([]byte("payload"), tok) // true
//
// # Error Handling
//
// Constructors return ErrMissingKey for empty key material, ErrUnknownAlgorithm
// for unsupported algorithm names and ErrKeyDerivationFailed when HKDF cannot
// produce a key. Verify never returns an error; any mismatch or malformed
// token is simply false.
package signer
