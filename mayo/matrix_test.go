package mayo

import "testing"

func TestNibbleRoundTrip(t *testing.T) {
	w := NewNibbleWriter(5)
	vals := []byte{1, 2, 3, 15, 9}
	for _, v := range vals {
		w.Push(v)
	}
	data := w.Bytes()
	if len(data) != 3 {
		t.Fatalf("packed length = %d, want 3 (5 nibbles, odd tail padded)", len(data))
	}
	if data[2]>>4 != 0 {
		t.Fatalf("padding nibble = %d, want 0", data[2]>>4)
	}
	r := NewNibbleReader(data)
	for i, want := range vals {
		if got := r.Next(); got != want {
			t.Fatalf("nibble %d = %d, want %d", i, got, want)
		}
	}
}

func TestNibbleStreamIsContinuousAcrossMatrices(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)
	b := NewMatrix(1, 3)
	b.Set(0, 0, 5)
	b.Set(0, 1, 6)
	b.Set(0, 2, 7)

	w := NewNibbleWriter(7)
	a.WriteFull(w)
	b.WriteFull(w)
	data := w.Bytes()
	if len(data) != 4 {
		t.Fatalf("packed length = %d, want 4", len(data))
	}

	r := NewNibbleReader(data)
	a2 := NewMatrix(2, 2)
	a2.ReadFull(r)
	b2 := NewMatrix(1, 3)
	b2.ReadFull(r)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if a2.Get(i, j) != a.Get(i, j) {
				t.Fatalf("a2[%d][%d] = %d, want %d", i, j, a2.Get(i, j), a.Get(i, j))
			}
		}
	}
	for j := 0; j < 3; j++ {
		if b2.Get(0, j) != b.Get(0, j) {
			t.Fatalf("b2[0][%d] = %d, want %d", j, b2.Get(0, j), b.Get(0, j))
		}
	}
}

func TestUpperTriangleRoundTrip(t *testing.T) {
	m := NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			m.Set(i, j, byte((i+1)*(j+1)%15))
		}
	}
	w := NewNibbleWriter(triNibbles(3))
	m.WriteUpperTriangle(w)
	r := NewNibbleReader(w.Bytes())
	m2 := NewMatrix(3, 3)
	m2.ReadUpperTriangle(r)
	if !m2.IsUpperTriangular() {
		t.Fatal("round-tripped matrix is not upper triangular")
	}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			if m2.Get(i, j) != m.Get(i, j) {
				t.Fatalf("m2[%d][%d] = %d, want %d", i, j, m2.Get(i, j), m.Get(i, j))
			}
		}
	}
}

func TestSymmetrizeIsUpperTriangular(t *testing.T) {
	m := NewMatrix(4, 4)
	v := byte(1)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, v)
			v = (v + 1) % 16
		}
	}
	sym := m.Symmetrize()
	if !sym.IsUpperTriangular() {
		t.Fatal("Symmetrize did not produce an upper-triangular matrix")
	}
}

// TestSymmetrizePreservesQuadraticForm checks that folding an arbitrary
// square matrix (nonzero diagonal included) into upper-triangular form
// leaves x^T*m*x unchanged — the property key expansion relies on when it
// folds O^T*P1[i]*O + O^T*P2[i] into the public P3 equations.
func TestSymmetrizePreservesQuadraticForm(t *testing.T) {
	m := NewMatrix(3, 3)
	v := byte(1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, v)
			v = (v + 3) % 16
		}
	}
	u := []byte{1, 2, 3}
	want := m.QuadraticForm(u)
	got := m.Symmetrize().QuadraticForm(u)
	if got != want {
		t.Fatalf("Symmetrize changed the quadratic form: got %d, want %d", got, want)
	}
}

func TestMulAndTransposeShapes(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(3, 4)
	c := a.Mul(b)
	if c.Rows() != 2 || c.Cols() != 4 {
		t.Fatalf("Mul shape = (%d,%d), want (2,4)", c.Rows(), c.Cols())
	}
	tr := a.Transpose()
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("Transpose shape = (%d,%d), want (3,2)", tr.Rows(), tr.Cols())
	}
}
