package mayo

import "mayo/gf16"

// nzMask returns 0xFF if x is nonzero and 0x00 if x is zero, computed
// without a data-dependent branch (x | -x keeps the sign bit set iff x!=0;
// an arithmetic shift by 7 then replicates that bit across the byte).
func nzMask(x byte) byte {
	v := int8(x)
	return byte((v | -v) >> 7)
}

// condSwapRow swaps rows i and j of aug when mask is 0xFF and leaves both
// untouched when mask is 0x00, as a masked XOR exchange over the full rows
// so the work done is identical either way.
func condSwapRow(aug *Matrix, i, j int, mask byte) {
	cols := aug.cols
	for c := 0; c < cols; c++ {
		a := aug.Get(i, c)
		b := aug.Get(j, c)
		x := (a ^ b) & mask
		aug.Set(i, c, a^x)
		aug.Set(j, c, b^x)
	}
}

// solveLinearSystem solves A*x = y over GF(16) for a possibly
// non-square A (m x n, with y of length m) via Gauss-Jordan elimination.
// It reports ok=false whenever the coefficient matrix does not have full
// row rank m; the signer discards and retries such systems rather than
// accept a solution with free variables.
//
// The matrix contents are secret-derived, so every per-entry decision is
// mask-driven: pivot rows are brought into place with condSwapRow, the
// pivot-row normalization and the elimination of every other row are
// gated by multiplying with masked factors (a no-op when the column held
// no pivot), and the solution is read back by a first-nonzero mask scan
// over each row instead of tracking pivot columns in a data-dependent
// index list. The running pivot count (i.e. the rank) does shape a few
// loop bounds; rank is the one quantity that is allowed to surface, since
// it already leaks through the signer's public retry count.
func solveLinearSystem(a *Matrix, y []gf16.Elem) (x []gf16.Elem, ok bool) {
	m, n := a.rows, a.cols
	if len(y) != m {
		panic("mayo: solveLinearSystem shape mismatch")
	}
	aug := NewMatrix(m, n+1)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.Get(i, j))
		}
		aug.Set(i, n, y[i])
	}

	pivotRow := 0
	for col := 0; col < n && pivotRow < m; col++ {
		found := byte(0)
		for r := pivotRow; r < m; r++ {
			take := nzMask(aug.Get(r, col)) &^ found
			condSwapRow(aug, pivotRow, r, take)
			found |= take
		}

		// Normalize the pivot row. scale collapses to 1 when the column
		// held no pivot, leaving the row as it was.
		inv := gf16.Inv(aug.Get(pivotRow, col))
		scale := (inv & found) | (1 &^ found)
		for c := col; c <= n; c++ {
			aug.Set(pivotRow, c, gf16.Mul(aug.Get(pivotRow, c), scale))
		}

		// Clear the column everywhere else. The masked factor is zero for
		// rows that need no change and for the no-pivot case, so each row
		// receives the same multiply-and-XOR sweep regardless.
		for r := 0; r < m; r++ {
			if r == pivotRow {
				continue
			}
			factor := aug.Get(r, col) & found
			for c := col; c <= n; c++ {
				aug.Set(r, c, gf16.Add(aug.Get(r, c), gf16.Mul(factor, aug.Get(pivotRow, c))))
			}
		}

		pivotRow += int(found & 1)
	}

	// Read the solution off the reduced rows. Each surviving row's first
	// nonzero coefficient is a pivot normalized to 1, so its right-hand
	// side is the value of that variable; free columns stay zero. The scan
	// touches every (row, column) pair so no access depends on contents.
	x = make([]gf16.Elem, n)
	fullRank := byte(0xFF)
	for r := 0; r < m; r++ {
		seen := byte(0)
		for col := 0; col < n; col++ {
			lead := nzMask(aug.Get(r, col)) &^ seen
			x[col] ^= aug.Get(r, n) & lead
			seen |= lead
		}
		fullRank &= seen
	}
	aug.Zero()
	if fullRank == 0 {
		for i := range x {
			x[i] = 0
		}
		return nil, false
	}
	return x, true
}
