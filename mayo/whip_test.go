package mayo

import "testing"

func TestWhipTableIsDeterministicAndNonzero(t *testing.T) {
	p := ParamsFor(Mayo1)
	w1 := BuildWhipTable(p)
	w2 := BuildWhipTable(p)
	for i := 0; i < p.M; i++ {
		for a := 0; a < p.K; a++ {
			for b := a; b < p.K; b++ {
				v1, v2 := w1.At(i, a, b), w2.At(i, a, b)
				if v1 != v2 {
					t.Fatalf("whip table not deterministic at (%d,%d,%d): %d != %d", i, a, b, v1, v2)
				}
				if v1 == 0 {
					t.Fatalf("whip table entry (%d,%d,%d) is zero", i, a, b)
				}
			}
		}
	}
}

func TestWhipTableIsSymmetricInBlockIndices(t *testing.T) {
	p := ParamsFor(Mayo5)
	w := BuildWhipTable(p)
	for i := 0; i < p.M; i++ {
		for a := 0; a < p.K; a++ {
			for b := 0; b < p.K; b++ {
				if w.At(i, a, b) != w.At(i, b, a) {
					t.Fatalf("whip table not symmetric at (%d,%d,%d)", i, a, b)
				}
			}
		}
	}
}
