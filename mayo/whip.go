package mayo

import (
	"encoding/binary"

	"mayo/gf16"
)

// WhipTable holds the public whipping coefficients E[i][a][b], a <= b,
// that combine the k oil-vinegar blocks of a signature into the m public
// equations. Entry (i,a,b) weights the contribution of the block pair
// (a,b) to equation i: the self term s_a^T P s_a when a == b, and the
// symmetric cross term s_a^T P s_b + s_b^T P s_a when a < b. The tensor
// values are derived from a parameter-set-fixed XOF expansion rather than
// the extension-ring structure constants of the MAYO draft (see
// DESIGN.md for what that does and does not preserve).
//
// The table is entirely public: it depends only on the parameter set,
// never on a key or a message, so it is safe to compute once and share.
type WhipTable struct {
	m, k int
	e    []gf16.Elem // m * k*(k+1)/2 entries, upper-triangular pair order
}

// paramDomain encodes the fields that make one parameter set's derived
// public data (whip tables, and nothing secret) distinct from another's.
func paramDomain(p Params) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.N))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.M))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(p.O))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(p.K))
	return buf
}

// BuildWhipTable deterministically derives the pairwise whip tensor for p.
// Because the inputs are public and fixed per parameter set, every caller
// (signer and verifier alike) reconstructs the identical table without
// needing to transmit or store it.
func BuildWhipTable(p Params) *WhipTable {
	nibbles := p.M * triNibbles(p.K)
	raw := xofExpand(nibblesToBytes(nibbles), []byte{labelWhip}, paramDomain(p))
	r := NewNibbleReader(raw)
	e := make([]gf16.Elem, nibbles)
	for idx := range e {
		v := r.Next()
		if v == 0 {
			// Force nonzero so every block pair actually contributes to
			// every equation; the exact nonzero value carries no meaning
			// beyond that.
			v = 1
		}
		e[idx] = v
	}
	return &WhipTable{m: p.M, k: p.K, e: e}
}

// At returns E[i][a][b]. The tensor is symmetric in (a,b); only the
// a <= b half is stored, row-major over the upper triangle of a k x k
// index grid.
func (w *WhipTable) At(i, a, b int) gf16.Elem {
	if a > b {
		a, b = b, a
	}
	off := a*w.k - a*(a-1)/2 + (b - a)
	return w.e[i*triNibbles(w.k)+off]
}
