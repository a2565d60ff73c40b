package mayo

import "fmt"

// Set identifies one of the four standardized parameter bundles.
type Set int

const (
	Mayo1 Set = iota
	Mayo2
	Mayo3
	Mayo5
)

func (s Set) String() string {
	switch s {
	case Mayo1:
		return "Mayo1"
	case Mayo2:
		return "Mayo2"
	case Mayo3:
		return "Mayo3"
	case Mayo5:
		return "Mayo5"
	default:
		return fmt.Sprintf("Set(%d)", int(s))
	}
}

// Params is the immutable record attached to a parameter set. All sizes
// are derived deterministically from (N, M, O, K) plus the fixed
// seed/salt/digest lengths; the accessors below exist so no call site
// hand-computes a packed size.
type Params struct {
	Set Set

	N int // total variables, N = V+O
	M int // equations
	O int // oil dimension
	V int // vinegar dimension, V = N-O
	K int // whipping dimension
	Q int // field size, always 16 for GF(16)

	SKSeedLen int // secret seed length in bytes
	PKSeedLen int // public seed length in bytes (always 16)
	SaltLen   int // salt length in bytes
	DigestLen int // XOF digest length used for msg/pk digests and target

	RetryCap int // signer retry bound, default 256
}

// presetTable holds the four NIST-category parameter bundles from the
// MAYO draft submission.
var presetTable = map[Set]Params{
	Mayo1: {Set: Mayo1, N: 86, M: 78, O: 8, V: 86 - 8, K: 10, Q: 16, SKSeedLen: 24, PKSeedLen: 16, SaltLen: 24, DigestLen: 32, RetryCap: 256},
	Mayo2: {Set: Mayo2, N: 81, M: 64, O: 17, V: 81 - 17, K: 4, Q: 16, SKSeedLen: 24, PKSeedLen: 16, SaltLen: 24, DigestLen: 32, RetryCap: 256},
	Mayo3: {Set: Mayo3, N: 118, M: 108, O: 10, V: 118 - 10, K: 11, Q: 16, SKSeedLen: 32, PKSeedLen: 16, SaltLen: 32, DigestLen: 32, RetryCap: 256},
	Mayo5: {Set: Mayo5, N: 154, M: 142, O: 12, V: 154 - 12, K: 12, Q: 16, SKSeedLen: 40, PKSeedLen: 16, SaltLen: 40, DigestLen: 32, RetryCap: 256},
}

// ParamsFor returns the immutable bundle for a parameter set. Panics on an
// unknown Set: that is a programming-error assertion, never reachable from
// caller-controlled input (which goes through Config.Validate first).
func ParamsFor(s Set) Params {
	p, ok := presetTable[s]
	if !ok {
		panic(fmt.Sprintf("mayo: unknown parameter set %v", s))
	}
	return p
}

// nibblesToBytes returns ceil(nibbles/2), the packed-byte length of a
// nibble stream of the given length.
func nibblesToBytes(nibbles int) int {
	return (nibbles + 1) / 2
}

// triNibbles returns the nibble count of the upper triangle (diagonal
// included) of a d x d matrix: d*(d+1)/2.
func triNibbles(d int) int {
	return d * (d + 1) / 2
}

// P1Len returns the packed byte length of the concatenated, equation-major
// nibble stream for all M upper-triangular V x V matrices P1[0..M).
func (p Params) P1Len() int { return nibblesToBytes(p.M * triNibbles(p.V)) }

// P2Len returns the packed byte length of the concatenated nibble stream
// for all M full V x O matrices P2[0..M).
func (p Params) P2Len() int { return nibblesToBytes(p.M * p.V * p.O) }

// P3Len returns the packed byte length of the concatenated, equation-major
// nibble stream for all M upper-triangular O x O matrices P3[0..M). The
// packing is continuous across equations (no per-equation byte padding):
// e.g. Mayo2 has 64 equations * 153 upper-triangle nibbles = 9792 nibbles
// = 4896 bytes, which plus the 16-byte pk_seed gives the 4912-byte key.
func (p Params) P3Len() int { return nibblesToBytes(p.M * triNibbles(p.O)) }

// OLen returns the packed byte length of the single V x O oil-basis matrix.
func (p Params) OLen() int { return nibblesToBytes(p.V * p.O) }

// LLen returns the packed byte length of the concatenated nibble stream
// for all M full V x O matrices L[0..M) (same shape as P2).
func (p Params) LLen() int { return nibblesToBytes(p.M * p.V * p.O) }

// SigSLen returns the packed byte length of the n*k nibble signature body
// (excluding the salt prefix).
func (p Params) SigSLen() int { return nibblesToBytes(p.N * p.K) }

// PKLen returns the full encoded public-key length: pk_seed || P3_bytes.
func (p Params) PKLen() int { return p.PKSeedLen + p.P3Len() }

// SigLen returns the full encoded signature length: salt || s_bytes.
func (p Params) SigLen() int { return p.SaltLen + p.SigSLen() }

// SKLen returns the compact secret-key length: just sk_seed.
func (p Params) SKLen() int { return p.SKSeedLen }

// ESKLen returns the length of the optional expanded-secret-key encoding:
// pk_seed || O_bytes || P1_bytes || L_bytes.
func (p Params) ESKLen() int { return p.PKSeedLen + p.OLen() + p.P1Len() + p.LLen() }

// retryCapOrDefault returns p's retry cap, defaulting to 256 on a
// zero-valued field.
func (p Params) retryCapOrDefault() int {
	if p.RetryCap <= 0 {
		return 256
	}
	return p.RetryCap
}
