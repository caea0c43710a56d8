package verifyemail

import "errors"

// Verification errors
var (
	ErrExpiredSignature = errors.New("verifyemail: the link to verify your email has expired")
	ErrInvalidSignature = errors.New("verifyemail: the link to verify your email is invalid")
)

// Generation errors
var (
	ErrInvalidInput  = errors.New("verifyemail: route, user id and email are required")
	ErrReservedParam = errors.New("verifyemail: query parameter name is reserved")
	ErrSigningFailed = errors.New("verifyemail: signer produced no signature")
)

// Setup errors
var (
	ErrMissingRouter   = errors.New("verifyemail: router is required")
	ErrMissingSigner   = errors.New("verifyemail: signer is required")
	ErrInvalidLifetime = errors.New("verifyemail: lifetime must be at least one second")
	ErrParsingConfig   = errors.New("verifyemail: failed to parse configuration")
)
