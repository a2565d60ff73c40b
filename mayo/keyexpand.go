package mayo

// ExpandedSecretKey holds every value derived from an sk_seed that the
// signer needs on the hot path: the public seed, the oil-basis matrix O,
// the public P1 equations (regenerated from pk_seed, not secret by
// themselves) and the derived linear part L. Keeping these together lets
// callers who sign many messages under one key pay the expansion cost
// once.
type ExpandedSecretKey struct {
	Params  Params
	SKSeed  []byte // kept only to derive per-attempt vinegar
	PKSeed  []byte
	O       *Matrix   // V x O
	P1      []*Matrix // len M, each V x V upper-triangular
	L       []*Matrix // len M, each V x O
	P3      []*Matrix // len M, each O x O upper-triangular (public)
	PKBytes []byte    // pk_seed || P3_bytes, public, cached for pk_digest
}

// Release zeroizes every secret-bearing buffer in esk. Callers that hold an
// ExpandedSecretKey across multiple Sign calls should defer Release when
// they are done with it.
func (esk *ExpandedSecretKey) Release() {
	if esk == nil {
		return
	}
	for i := range esk.SKSeed {
		esk.SKSeed[i] = 0
	}
	for i := range esk.PKSeed {
		esk.PKSeed[i] = 0
	}
	if esk.O != nil {
		esk.O.Zero()
	}
	for _, m := range esk.L {
		m.Zero()
	}
}

// expandSKSeed derives (pk_seed, O) from sk_seed.
func expandSKSeed(p Params, skSeed []byte) (pkSeed []byte, o *Matrix) {
	oNibbles := p.V * p.O
	raw := xofExpand(p.PKSeedLen+nibblesToBytes(oNibbles), []byte{labelSKSeed}, skSeed)
	pkSeed = append([]byte(nil), raw[:p.PKSeedLen]...)
	r := NewNibbleReader(raw[p.PKSeedLen:])
	o = NewMatrix(p.V, p.O)
	o.ReadFull(r)
	return pkSeed, o
}

// expandPKSeed derives the public P1/P2 equation matrices from pk_seed.
// The two families are packed as one continuous nibble stream: every P1
// matrix's upper triangle (equation-major), followed by every P2 matrix in
// full (equation-major).
func expandPKSeed(p Params, pkSeed []byte) (p1, p2 []*Matrix) {
	p1Nibbles := p.M * triNibbles(p.V)
	p2Nibbles := p.M * p.V * p.O
	raw := xofExpand(nibblesToBytes(p1Nibbles+p2Nibbles), []byte{labelPKSeed}, pkSeed)
	r := NewNibbleReader(raw)

	p1 = make([]*Matrix, p.M)
	for i := range p1 {
		p1[i] = NewMatrix(p.V, p.V)
		p1[i].ReadUpperTriangle(r)
	}
	p2 = make([]*Matrix, p.M)
	for i := range p2 {
		p2[i] = NewMatrix(p.V, p.O)
		p2[i].ReadFull(r)
	}
	return p1, p2
}

// deriveLAndP3 computes, per equation i, L[i] = (P1[i]+P1[i]^T)*O + P2[i]
// and P3[i] = Symmetrize(O^T*P1[i]*O + O^T*P2[i]). The char-2 cancellation
// that makes the signer's linearized system exact depends on P3
// representing exactly the quadratic form O^T*P1[i]*O + O^T*P2[i] in
// upper-triangular storage, which requires folding (not discarding) the
// strictly-lower half; see sign.go.
func deriveLAndP3(o *Matrix, p1, p2 []*Matrix) (l, p3 []*Matrix) {
	oT := o.Transpose()
	l = make([]*Matrix, len(p1))
	p3 = make([]*Matrix, len(p1))
	for i := range p1 {
		l[i] = p1[i].Add(p1[i].Transpose()).Mul(o).Add(p2[i])
		p3[i] = oT.Mul(p1[i]).Mul(o).Add(oT.Mul(p2[i])).Symmetrize()
	}
	return l, p3
}

// ExpandSK rebuilds the full signer-side material from a compact sk_seed:
// pk_seed, the oil-basis matrix O, the public P1 equations, and the derived
// L matrices used to linearize the signing equations.
func ExpandSK(p Params, skSeed []byte) *ExpandedSecretKey {
	if len(skSeed) != p.SKSeedLen {
		panic("mayo: ExpandSK requires an sk_seed of exactly SKSeedLen bytes")
	}
	pkSeed, o := expandSKSeed(p, skSeed)
	p1, p2 := expandPKSeed(p, pkSeed)
	l, p3 := deriveLAndP3(o, p1, p2)
	pkBytes := make([]byte, 0, p.PKLen())
	pkBytes = append(pkBytes, pkSeed...)
	pkBytes = append(pkBytes, packUpperMatrices(p3, p.O)...)
	return &ExpandedSecretKey{
		Params:  p,
		SKSeed:  append([]byte(nil), skSeed...),
		PKSeed:  pkSeed,
		O:       o,
		P1:      p1,
		L:       l,
		P3:      p3,
		PKBytes: pkBytes,
	}
}

// ExpandedPublicKey holds the material the verifier needs to evaluate the
// public quadratic map: the regenerated P1/P2 equations plus the P3
// equations read back from the encoded public key.
type ExpandedPublicKey struct {
	Params Params
	PKSeed []byte
	P1     []*Matrix // V x V upper-triangular
	P2     []*Matrix // V x O
	P3     []*Matrix // O x O upper-triangular
}

// Full assembles the N x N coefficient matrix for equation i, combining
// P1[i] (top-left), P2[i] (top-right) and P3[i] (bottom-right); the
// bottom-left block is zero.
func (epk *ExpandedPublicKey) Full(i int) *Matrix {
	v, o := epk.Params.V, epk.Params.O
	n := v + o
	out := NewMatrix(n, n)
	for r := 0; r < v; r++ {
		for c := 0; c < v; c++ {
			out.Set(r, c, epk.P1[i].Get(r, c))
		}
		for c := 0; c < o; c++ {
			out.Set(r, v+c, epk.P2[i].Get(r, c))
		}
	}
	for r := 0; r < o; r++ {
		for c := 0; c < o; c++ {
			out.Set(v+r, v+c, epk.P3[i].Get(r, c))
		}
	}
	return out
}

// ExpandPK rebuilds the verifier-side material from an encoded public
// key's pk_seed and P3 byte block.
func ExpandPK(p Params, pkSeed, p3Bytes []byte) *ExpandedPublicKey {
	if len(pkSeed) != p.PKSeedLen {
		panic("mayo: ExpandPK requires a pk_seed of exactly PKSeedLen bytes")
	}
	if len(p3Bytes) != p.P3Len() {
		panic("mayo: ExpandPK requires a P3 block of exactly P3Len() bytes")
	}
	p1, p2 := expandPKSeed(p, pkSeed)
	r := NewNibbleReader(p3Bytes)
	p3 := make([]*Matrix, p.M)
	for i := range p3 {
		p3[i] = NewMatrix(p.O, p.O)
		p3[i].ReadUpperTriangle(r)
	}
	return &ExpandedPublicKey{Params: p, PKSeed: append([]byte(nil), pkSeed...), P1: p1, P2: p2, P3: p3}
}

// DerivePK computes the encoded public key (pk_seed || P3_bytes) for an
// sk_seed without retaining the rest of the expanded secret material.
func DerivePK(p Params, skSeed []byte) []byte {
	esk := ExpandSK(p, skSeed)
	defer esk.Release()
	return esk.PKBytes
}

// packUpperMatrices concatenates the upper-triangular nibble streams of a
// slice of equal-sized square matrices, equation-major.
func packUpperMatrices(ms []*Matrix, d int) []byte {
	w := NewNibbleWriter(len(ms) * triNibbles(d))
	for _, m := range ms {
		m.WriteUpperTriangle(w)
	}
	return w.Bytes()
}
