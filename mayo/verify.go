package mayo

import (
	"fmt"

	"mayo/gf16"
)

// Verify checks sig against msg under the encoded public key. It returns
// (true, nil) when the signature is valid, (false, nil) when it is
// well-formed but does not satisfy the public equations, and a non-nil
// error when pkBytes or sig is structurally malformed.
func Verify(p Params, pkBytes, msg, sig []byte) (bool, error) {
	if len(pkBytes) != p.PKLen() {
		return false, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInputLength, len(pkBytes), p.PKLen())
	}
	if len(sig) != p.SigLen() {
		return false, fmt.Errorf("%w: signature is %d bytes, want %d", ErrInputLength, len(sig), p.SigLen())
	}

	pkSeed := pkBytes[:p.PKSeedLen]
	p3Bytes := pkBytes[p.PKSeedLen:]
	epk := ExpandPK(p, pkSeed, p3Bytes)

	salt := sig[:p.SaltLen]
	sBytes := sig[p.SaltLen:]

	msgDigest := xofExpand(p.DigestLen, []byte{labelDigest}, msg)
	pkDigest := xofExpand(p.DigestLen, []byte{labelDigest}, pkBytes)
	target := xofExpand(nibblesToBytes(p.M), []byte{labelTarget}, msgDigest, salt, pkDigest)
	t := readNibbleVector(target, p.M)

	blocks := make([][]gf16.Elem, p.K)
	r := NewNibbleReader(sBytes)
	for a := 0; a < p.K; a++ {
		blocks[a] = make([]gf16.Elem, p.N)
		for i := 0; i < p.N; i++ {
			blocks[a][i] = r.Next()
		}
	}

	whip := BuildWhipTable(p)
	got := make([]gf16.Elem, p.M)
	for i := 0; i < p.M; i++ {
		full := epk.Full(i)
		var acc gf16.Elem
		for a := 0; a < p.K; a++ {
			acc = gf16.Add(acc, gf16.Mul(whip.At(i, a, a), full.QuadraticForm(blocks[a])))
			for b := a + 1; b < p.K; b++ {
				cross := gf16.Add(
					full.Bilinear(blocks[a], blocks[b]),
					full.Bilinear(blocks[b], blocks[a]),
				)
				acc = gf16.Add(acc, gf16.Mul(whip.At(i, a, b), cross))
			}
		}
		got[i] = acc
	}

	for i := range got {
		if got[i] != t[i] {
			return false, nil
		}
	}
	return true, nil
}
