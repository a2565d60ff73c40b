package mayo

import "testing"

func TestParameterSetSizes(t *testing.T) {
	cases := []struct {
		set           Set
		n, m, o, k    int
		pkLen, sigLen int
		saltLen       int
	}{
		{Mayo1, 86, 78, 8, 10, 1420, 454, 24},
		{Mayo2, 81, 64, 17, 4, 4912, 186, 24},
		{Mayo3, 118, 108, 10, 11, 2986, 681, 32},
		{Mayo5, 154, 142, 12, 12, 5554, 964, 40},
	}
	for _, c := range cases {
		p := ParamsFor(c.set)
		if p.N != c.n || p.M != c.m || p.O != c.o || p.K != c.k {
			t.Fatalf("%v: dims = (%d,%d,%d,%d), want (%d,%d,%d,%d)", c.set, p.N, p.M, p.O, p.K, c.n, c.m, c.o, c.k)
		}
		if p.V != c.n-c.o {
			t.Fatalf("%v: V=%d want %d", c.set, p.V, c.n-c.o)
		}
		if p.PKLen() != c.pkLen {
			t.Fatalf("%v: PKLen=%d want %d", c.set, p.PKLen(), c.pkLen)
		}
		if p.SigLen() != c.sigLen {
			t.Fatalf("%v: SigLen=%d want %d", c.set, p.SigLen(), c.sigLen)
		}
		if p.SaltLen != c.saltLen {
			t.Fatalf("%v: SaltLen=%d want %d", c.set, p.SaltLen, c.saltLen)
		}
		if p.K*p.O < p.M {
			t.Fatalf("%v: invariant k*o >= m violated: %d*%d < %d", c.set, p.K, p.O, p.M)
		}
	}
}

func TestParamsForUnknownSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown parameter set")
		}
	}()
	_ = ParamsFor(Set(99))
}
