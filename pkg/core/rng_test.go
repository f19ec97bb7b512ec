package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}

	ones := 0
	for _, v := range a {
		if v > 1 {
			t.Fatalf("FillBinary produced non-binary value %d", v)
		}
		ones += int(v)
	}
	if ones == 0 || ones == len(a) {
		t.Fatalf("fill is degenerate: %d live of %d", ones, len(a))
	}
}
