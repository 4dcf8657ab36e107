package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewRNG(3)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := r.IntRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntRange(2,5) = %d", v)
		}
		seenLo = seenLo || v == 2
		seenHi = seenHi || v == 5
	}
	if !seenLo || !seenHi {
		t.Fatal("IntRange never produced an endpoint")
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) must be 0")
	}
}
