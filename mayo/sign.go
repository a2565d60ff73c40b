package mayo

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"mayo/gf16"
	"mayo/internal/metrics"
)

// Sign produces a detached signature over msg under the secret key
// identified by skSeed, reading the initial salt's randomness from rng.
// It expands skSeed once and releases the derived material before
// returning.
func Sign(p Params, skSeed, msg []byte, rng io.Reader) ([]byte, error) {
	if len(skSeed) != p.SKLen() {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d", ErrInputLength, len(skSeed), p.SKLen())
	}
	esk := ExpandSK(p, skSeed)
	defer esk.Release()
	return SignExpanded(esk, msg, rng)
}

// SignExpanded signs msg using an already-expanded secret key, amortizing
// the key-expansion cost across repeated Sign calls under the same key.
func SignExpanded(esk *ExpandedSecretKey, msg []byte, rng io.Reader) ([]byte, error) {
	p := esk.Params

	salt0 := make([]byte, p.SaltLen)
	if _, err := io.ReadFull(rng, salt0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}

	msgDigest := xofExpand(p.DigestLen, []byte{labelDigest}, msg)
	pkDigest := xofExpand(p.DigestLen, []byte{labelDigest}, esk.PKBytes)
	whip := BuildWhipTable(p)

	// L applied from the left to a vinegar vector is what the linearized
	// system needs, so transpose each equation's L once up front.
	lT := make([]*Matrix, p.M)
	for i := range lT {
		lT[i] = esk.L[i].Transpose()
	}
	defer func() {
		for _, m := range lT {
			m.Zero()
		}
	}()

	retryCap := p.retryCapOrDefault()
	for ctr := 0; ctr < retryCap; ctr++ {
		ctrBytes := make([]byte, 4)
		binary.LittleEndian.PutUint32(ctrBytes, uint32(ctr))

		salt := xofExpand(p.SaltLen, []byte{labelRetrySlt}, salt0, ctrBytes)
		target := xofExpand(nibblesToBytes(p.M), []byte{labelTarget}, msgDigest, salt, pkDigest)
		t := readNibbleVector(target, p.M)

		vinegar := make([][]gf16.Elem, p.K)
		for a := 0; a < p.K; a++ {
			raw := xofExpand(nibblesToBytes(p.V), []byte{labelVinegar}, esk.SKSeed, msgDigest, salt, ctrBytes, []byte{byte(a)})
			vinegar[a] = readNibbleVector(raw, p.V)
		}

		a := NewMatrix(p.M, p.K*p.O)
		y := make([]gf16.Elem, p.M)
		copy(y, t)
		lv := NewMatrix(p.K, p.O)
		for row := 0; row < p.M; row++ {
			for blk := 0; blk < p.K; blk++ {
				for c := 0; c < p.O; c++ {
					var acc gf16.Elem
					for j := 0; j < p.V; j++ {
						acc = gf16.Add(acc, gf16.Mul(lT[row].Get(c, j), vinegar[blk][j]))
					}
					lv.Set(blk, c, acc)
				}
			}
			// Accumulate every block pair (ai <= bi). The self pair
			// contributes V[ai]^T P1 V[ai] and weights block ai's oil
			// unknowns by L^T V[ai]; a cross pair contributes the symmetric
			// form V[ai]^T (P1+P1^T) V[bi] and weights block bi's unknowns
			// by L^T V[ai] and block ai's by L^T V[bi]. In both cases the
			// oil-quadratic remainder cancels against P3 in characteristic
			// 2, which is what keeps the system linear in x.
			for ai := 0; ai < p.K; ai++ {
				for bi := ai; bi < p.K; bi++ {
					e := whip.At(row, ai, bi)
					if ai == bi {
						self := esk.P1[row].QuadraticForm(vinegar[ai])
						y[row] = gf16.Add(y[row], gf16.Mul(e, self))
						for c := 0; c < p.O; c++ {
							col := ai*p.O + c
							a.Set(row, col, gf16.Add(a.Get(row, col), gf16.Mul(e, lv.Get(ai, c))))
						}
						continue
					}
					cross := gf16.Add(
						esk.P1[row].Bilinear(vinegar[ai], vinegar[bi]),
						esk.P1[row].Bilinear(vinegar[bi], vinegar[ai]),
					)
					y[row] = gf16.Add(y[row], gf16.Mul(e, cross))
					for c := 0; c < p.O; c++ {
						col := bi*p.O + c
						a.Set(row, col, gf16.Add(a.Get(row, col), gf16.Mul(e, lv.Get(ai, c))))
						col = ai*p.O + c
						a.Set(row, col, gf16.Add(a.Get(row, col), gf16.Mul(e, lv.Get(bi, c))))
					}
				}
			}
		}

		x, ok := solveLinearSystem(a, y)
		if !ok {
			dbg(os.Stderr, "mayo: sign: rank-deficient system at ctr=%d, retrying\n", ctr)
			scrubAttempt(a, lv, y, vinegar, nil)
			continue
		}
		dbg(os.Stderr, "mayo: sign: solved at ctr=%d\n", ctr)

		sig := make([]byte, 0, p.SigLen())
		sig = append(sig, salt...)

		w := NewNibbleWriter(p.N * p.K)
		for blk := 0; blk < p.K; blk++ {
			xBlk := x[blk*p.O : (blk+1)*p.O]
			ox := esk.O.MulVec(xBlk)
			for i := 0; i < p.V; i++ {
				w.Push(gf16.Add(vinegar[blk][i], ox[i]))
			}
			for i := 0; i < p.O; i++ {
				w.Push(xBlk[i])
			}
		}
		sig = append(sig, w.Bytes()...)
		scrubAttempt(a, lv, y, vinegar, x)
		metrics.Add("sig_bytes", uint64(len(sig)))
		metrics.Add("sign_attempts", uint64(ctr+1))
		return sig, nil
	}
	return nil, ErrSigningExhausted
}

// scrubAttempt zeroizes one attempt's secret-derived scratch: the system
// matrix, the L-applied-to-vinegar buffer, the right-hand side, the
// vinegar vectors, and (when the attempt succeeded) the oil solution.
func scrubAttempt(a, lv *Matrix, y []gf16.Elem, vinegar [][]gf16.Elem, x []gf16.Elem) {
	a.Zero()
	lv.Zero()
	for i := range y {
		y[i] = 0
	}
	for _, v := range vinegar {
		for i := range v {
			v[i] = 0
		}
	}
	for i := range x {
		x[i] = 0
	}
}

// readNibbleVector unpacks the first count nibbles of data into a vector.
func readNibbleVector(data []byte, count int) []gf16.Elem {
	r := NewNibbleReader(data)
	out := make([]gf16.Elem, count)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}
