package core

import "testing"

func draw(r *RNG, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(1000)
	}
	return out
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := draw(NewRNG(7), 32), draw(NewRNG(7), 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestStreamsDiffer(t *testing.T) {
	r := NewRNG(7)
	a, b := draw(r.Stream(0), 32), draw(r.Stream(1), 32)
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Fatal("streams produced identical sequences")
	}
	if r.Stream(3).Seed() != 7 {
		t.Fatal("stream lost its seed")
	}
}

func TestIntNNonPositive(t *testing.T) {
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
}
