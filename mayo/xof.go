package mayo

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// xofExpand is the single extendable-output function behind every
// deterministic expansion in the scheme: a SHAKE256 sponge absorbing the
// concatenation of parts and squeezing exactly outLen bytes. Every call
// site starts its input with a single-byte label; the message and
// public-key digests share labelDigest, and every other call site has a
// label of its own.
func xofExpand(outLen int, parts ...[]byte) []byte {
	if outLen <= 0 {
		panic("mayo: xofExpand outLen must be > 0")
	}
	h := sha3.NewShake256()
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("mayo: xof write: %w", err))
		}
	}
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("mayo: xof read: %w", err))
	}
	return out
}

// domain-separation labels for the fixed XOF call sites. Each is a single
// byte prepended to the expansion input. labelDigest serves both digests;
// each other label belongs to exactly one call site.
const (
	labelSKSeed   byte = 0x01 // sk_seed -> pk_seed || O_bytes
	labelPKSeed   byte = 0x02 // pk_seed -> P1_bytes || P2_bytes
	labelTarget   byte = 0x03 // msg_digest || salt || pk_digest -> target t
	labelVinegar  byte = 0x04 // sk_seed || msg_digest || salt || ctr || block index -> V[a]
	labelDigest   byte = 0x05 // message -> msg_digest, pk_bytes -> pk_digest
	labelWhip     byte = 0x06 // parameter identity -> whip table E
	labelRetrySlt byte = 0x07 // salt0 || ctr -> per-attempt salt
)
