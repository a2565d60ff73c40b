package mayo

import "errors"

// Error kinds surfaced by the core. Callers get a wrapped sentinel they
// can match with errors.Is, never a panic for a recoverable condition.
var (
	// ErrInputLength is returned when a byte buffer does not match the
	// parameter-set-declared size for the value being parsed.
	ErrInputLength = errors.New("mayo: input length mismatch")

	// ErrRandomness is returned when the caller-supplied random source
	// failed. Signing and key generation do not retry on this error.
	ErrRandomness = errors.New("mayo: randomness source failed")

	// ErrSigningExhausted is returned when the signer's retry cap is
	// reached without finding a consistent, full-rank linear system.
	ErrSigningExhausted = errors.New("mayo: signing retries exhausted")
)
