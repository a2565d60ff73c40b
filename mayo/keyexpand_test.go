package mayo

import (
	"bytes"
	"testing"
)

func testSeed(p Params, fill byte) []byte {
	seed := make([]byte, p.SKSeedLen)
	for i := range seed {
		seed[i] = fill
	}
	return seed
}

func TestExpandedMatricesAreUpperTriangular(t *testing.T) {
	for _, set := range allSets() {
		set := set
		t.Run(set.String(), func(t *testing.T) {
			p := ParamsFor(set)
			esk := ExpandSK(p, testSeed(p, 0x5a))
			defer esk.Release()
			for i := 0; i < p.M; i++ {
				if !esk.P1[i].IsUpperTriangular() {
					t.Fatalf("P1[%d] is not upper triangular", i)
				}
				if !esk.P3[i].IsUpperTriangular() {
					t.Fatalf("P3[%d] is not upper triangular", i)
				}
			}
		})
	}
}

func TestExpandPKAgreesWithExpandSK(t *testing.T) {
	p := ParamsFor(Mayo1)
	esk := ExpandSK(p, testSeed(p, 0x11))
	defer esk.Release()

	pk := esk.PKBytes
	epk := ExpandPK(p, pk[:p.PKSeedLen], pk[p.PKSeedLen:])
	for i := 0; i < p.M; i++ {
		for r := 0; r < p.O; r++ {
			for c := r; c < p.O; c++ {
				if epk.P3[i].Get(r, c) != esk.P3[i].Get(r, c) {
					t.Fatalf("P3[%d][%d][%d] mismatch between signer and verifier expansion", i, r, c)
				}
			}
		}
	}
	for i := 0; i < p.M; i++ {
		for r := 0; r < p.V; r++ {
			for c := 0; c < p.V; c++ {
				if epk.P1[i].Get(r, c) != esk.P1[i].Get(r, c) {
					t.Fatalf("P1[%d][%d][%d] mismatch between signer and verifier expansion", i, r, c)
				}
			}
		}
	}
}

func TestDerivePKIsDeterministic(t *testing.T) {
	p := ParamsFor(Mayo2)
	seed := testSeed(p, 0x33)
	pk1 := DerivePK(p, seed)
	pk2 := DerivePK(p, seed)
	if !bytes.Equal(pk1, pk2) {
		t.Fatal("DerivePK produced different keys for the same seed")
	}
	if len(pk1) != p.PKLen() {
		t.Fatalf("DerivePK length = %d, want %d", len(pk1), p.PKLen())
	}
}

func TestReleaseZeroizesSecrets(t *testing.T) {
	p := ParamsFor(Mayo1)
	esk := ExpandSK(p, testSeed(p, 0x77))
	esk.Release()
	for i := range esk.SKSeed {
		if esk.SKSeed[i] != 0 {
			t.Fatal("sk_seed not zeroized by Release")
		}
	}
	for r := 0; r < p.V; r++ {
		for c := 0; c < p.O; c++ {
			if esk.O.Get(r, c) != 0 {
				t.Fatal("oil basis not zeroized by Release")
			}
		}
	}
	for _, l := range esk.L {
		for r := 0; r < p.V; r++ {
			for c := 0; c < p.O; c++ {
				if l.Get(r, c) != 0 {
					t.Fatal("L not zeroized by Release")
				}
			}
		}
	}
}
