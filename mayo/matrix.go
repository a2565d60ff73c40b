package mayo

import "mayo/gf16"

// Matrix is a row-major matrix over GF(16), one field element per byte in
// memory. The low nibble carries the value; the packed two-nibbles-per-byte
// wire format only exists at the serialization boundary (see
// NibbleWriter/NibbleReader below). Keeping one element per byte keeps
// every loop in this file a plain nibble-at-a-time scalar pass.
type Matrix struct {
	rows, cols int
	data       []gf16.Elem
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]gf16.Elem, rows*cols)}
}

// Rows and Cols report the matrix shape.
func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Get returns the element at (i,j).
func (m *Matrix) Get(i, j int) gf16.Elem {
	return m.data[i*m.cols+j]
}

// Set writes the element at (i,j).
func (m *Matrix) Set(i, j int, v gf16.Elem) {
	m.data[i*m.cols+j] = v & 0xF
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Zero overwrites every entry with 0, used to scrub secret-bearing scratch
// buffers before they are released.
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Add returns a+b (element-wise XOR). Panics on shape mismatch: a shape
// mismatch is an implementation bug, not caller input.
func (a *Matrix) Add(b *Matrix) *Matrix {
	if a.rows != b.rows || a.cols != b.cols {
		panic("mayo: matrix shape mismatch in Add")
	}
	out := NewMatrix(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = gf16.Add(a.data[i], b.data[i])
	}
	return out
}

// Transpose returns the cols x rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.Get(i, j))
		}
	}
	return out
}

// Mul returns a*b, an a.rows x b.cols matrix. The loop ordering (i, k, j)
// keeps the inner loop walking both operands row-major for cache locality.
// There is deliberately no skip-on-zero fast path: operands here routinely
// carry secret material (the oil basis, the derived L equations), and a
// zero-dependent branch would leak their sparsity through timing.
func (a *Matrix) Mul(b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic("mayo: matrix shape mismatch in Mul")
	}
	out := NewMatrix(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.Get(i, k)
			for j := 0; j < b.cols; j++ {
				out.Set(i, j, gf16.Add(out.Get(i, j), gf16.Mul(aik, b.Get(k, j))))
			}
		}
	}
	return out
}

// MulVec returns m*v for a column vector v of length m.cols.
func (m *Matrix) MulVec(v []gf16.Elem) []gf16.Elem {
	if len(v) != m.cols {
		panic("mayo: matrix/vector shape mismatch in MulVec")
	}
	out := make([]gf16.Elem, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc gf16.Elem
		for j := 0; j < m.cols; j++ {
			acc = gf16.Add(acc, gf16.Mul(m.Get(i, j), v[j]))
		}
		out[i] = acc
	}
	return out
}

// QuadraticForm returns u^T * m * u for a square matrix m and vector u of
// matching length. m need not be symmetric: the sum
// sum_{i,j} m[i][j]*u[i]*u[j] is taken directly, which is the convention
// the upper-triangular packing assumes (only entries with i<=j are ever
// nonzero in a well-formed P1/P3). Like Mul, no entry is skipped on zero;
// u is the signer's secret vinegar on the hot path.
func (m *Matrix) QuadraticForm(u []gf16.Elem) gf16.Elem {
	if len(u) != m.rows || m.rows != m.cols {
		panic("mayo: QuadraticForm requires a square matrix matching u")
	}
	var acc gf16.Elem
	for i := 0; i < m.rows; i++ {
		ui := u[i]
		for j := 0; j < m.cols; j++ {
			acc = gf16.Add(acc, gf16.Mul(gf16.Mul(ui, u[j]), m.Get(i, j)))
		}
	}
	return acc
}

// Bilinear returns u^T * m * w for a square matrix m.
func (m *Matrix) Bilinear(u, w []gf16.Elem) gf16.Elem {
	if len(u) != m.rows || len(w) != m.cols {
		panic("mayo: Bilinear shape mismatch")
	}
	var acc gf16.Elem
	for i := 0; i < m.rows; i++ {
		ui := u[i]
		for j := 0; j < m.cols; j++ {
			acc = gf16.Add(acc, gf16.Mul(gf16.Mul(ui, w[j]), m.Get(i, j)))
		}
	}
	return acc
}

// UpperTriangle returns a copy of m with every strictly-lower entry forced
// to zero, leaving the upper triangle (diagonal included) untouched.
func (m *Matrix) UpperTriangle() *Matrix {
	if m.rows != m.cols {
		panic("mayo: UpperTriangle requires a square matrix")
	}
	out := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			out.Set(i, j, m.Get(i, j))
		}
	}
	return out
}

// Symmetrize folds an arbitrary square matrix into the upper-triangular
// form that represents the same quadratic form x^T*m*x: the diagonal is
// kept as-is and each
// strictly-lower entry is added into its mirrored upper entry, so
// out[i][i] = m[i][i] and out[i][j] = m[i][j]+m[j][i] for i<j. Simply
// taking UT(m+m^T) would double (and so, in characteristic 2, zero) the
// diagonal and discard whatever the strictly-lower half carried.
func (m *Matrix) Symmetrize() *Matrix {
	if m.rows != m.cols {
		panic("mayo: Symmetrize requires a square matrix")
	}
	out := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		out.Set(i, i, m.Get(i, i))
		for j := i + 1; j < m.cols; j++ {
			out.Set(i, j, gf16.Add(m.Get(i, j), m.Get(j, i)))
		}
	}
	return out
}

// IsUpperTriangular reports whether every strictly-lower entry is zero.
func (m *Matrix) IsUpperTriangular() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 1; i < m.rows; i++ {
		for j := 0; j < i; j++ {
			if m.Get(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// NibbleWriter accumulates a stream of GF(16) elements and packs them two
// per byte, low nibble first, zero-padding the final odd nibble. Multiple
// matrices can share a single writer so that their nibble streams
// concatenate without per-matrix byte padding; the encoded key and
// signature lengths (see params.go) assume exactly that.
type NibbleWriter struct {
	out     []byte
	pending bool
	low     gf16.Elem
}

// NewNibbleWriter allocates a writer with capacity for capNibbles nibbles.
func NewNibbleWriter(capNibbles int) *NibbleWriter {
	return &NibbleWriter{out: make([]byte, 0, nibblesToBytes(capNibbles))}
}

// Push appends one field element to the stream.
func (w *NibbleWriter) Push(v gf16.Elem) {
	if w.pending {
		w.out = append(w.out, (v&0xF)<<4|w.low)
		w.pending = false
	} else {
		w.low = v & 0xF
		w.pending = true
	}
}

// Bytes finalizes the stream, zero-padding a trailing half-byte, and
// returns the packed buffer. The writer may continue to be used afterward;
// Bytes always reflects the state at the moment it was called by copying.
func (w *NibbleWriter) Bytes() []byte {
	out := append([]byte(nil), w.out...)
	if w.pending {
		out = append(out, w.low)
	}
	return out
}

// NibbleReader walks a packed byte buffer two nibbles at a time, low
// nibble first.
type NibbleReader struct {
	data []byte
	pos  int // byte index
	high bool
}

// NewNibbleReader wraps data for sequential nibble reads.
func NewNibbleReader(data []byte) *NibbleReader {
	return &NibbleReader{data: data}
}

// Next returns the next field element in the stream. Panics if the
// underlying buffer is exhausted: callers size their reads from Params
// accessors and should never overrun (an overrun is an implementation bug,
// not malformed caller input, which is rejected earlier by a length check).
func (r *NibbleReader) Next() gf16.Elem {
	if r.pos >= len(r.data) {
		panic("mayo: NibbleReader exhausted")
	}
	b := r.data[r.pos]
	if !r.high {
		r.high = true
		return gf16.Elem(b & 0xF)
	}
	r.high = false
	r.pos++
	return gf16.Elem(b >> 4)
}

// WriteFull appends every entry of m, row-major, to w.
func (m *Matrix) WriteFull(w *NibbleWriter) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			w.Push(m.Get(i, j))
		}
	}
}

// ReadFull fills every entry of m, row-major, from r.
func (m *Matrix) ReadFull(r *NibbleReader) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.Set(i, j, r.Next())
		}
	}
}

// WriteUpperTriangle appends the upper-triangular entries (i<=j) of a
// square matrix to w, row-major.
func (m *Matrix) WriteUpperTriangle(w *NibbleWriter) {
	if m.rows != m.cols {
		panic("mayo: WriteUpperTriangle requires a square matrix")
	}
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			w.Push(m.Get(i, j))
		}
	}
}

// ReadUpperTriangle fills the upper-triangular entries (i<=j) of a square
// matrix from r, leaving the strictly-lower entries at their zero value.
func (m *Matrix) ReadUpperTriangle(r *NibbleReader) {
	if m.rows != m.cols {
		panic("mayo: ReadUpperTriangle requires a square matrix")
	}
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			m.Set(i, j, r.Next())
		}
	}
}
