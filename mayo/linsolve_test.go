package mayo

import (
	"testing"

	"mayo/gf16"
)

func TestSolveLinearSystemIdentity(t *testing.T) {
	a := NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		a.Set(i, i, 1)
	}
	y := []gf16.Elem{4, 7, 2}
	x, ok := solveLinearSystem(a, y)
	if !ok {
		t.Fatal("identity system reported unsolvable")
	}
	for i, want := range y {
		if x[i] != want {
			t.Fatalf("x[%d] = %d, want %d", i, x[i], want)
		}
	}
}

func TestSolveLinearSystemKnownSolution(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 3)
	a.Set(0, 1, 5)
	a.Set(1, 0, 2)
	a.Set(1, 1, 9)
	xWant := []gf16.Elem{6, 11}
	y := a.MulVec(xWant)
	x, ok := solveLinearSystem(a, y)
	if !ok {
		t.Fatal("expected a solvable system")
	}
	for i := range xWant {
		if x[i] != xWant[i] {
			t.Fatalf("x[%d] = %d, want %d", i, x[i], xWant[i])
		}
	}
}

func TestSolveLinearSystemRankDeficientFails(t *testing.T) {
	a := NewMatrix(2, 2)
	// Both rows identical: rank 1, not full row rank 2.
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 1)
	a.Set(1, 1, 2)
	_, ok := solveLinearSystem(a, []gf16.Elem{1, 1})
	if ok {
		t.Fatal("expected rank-deficient system to be rejected")
	}
}

func TestSolveLinearSystemWideMatrix(t *testing.T) {
	// 2 equations, 4 unknowns: under-determined column-wise but still
	// full row rank, which is all the signer requires.
	a := NewMatrix(2, 4)
	a.Set(0, 0, 1)
	a.Set(0, 2, 3)
	a.Set(1, 1, 1)
	a.Set(1, 3, 5)
	y := []gf16.Elem{7, 2}
	x, ok := solveLinearSystem(a, y)
	if !ok {
		t.Fatal("expected full row-rank wide system to be solvable")
	}
	got := a.MulVec(x)
	for i := range y {
		if got[i] != y[i] {
			t.Fatalf("A*x mismatch at %d: got %d, want %d", i, got[i], y[i])
		}
	}
}
