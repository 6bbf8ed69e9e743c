package bits

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for width := uint(1); width <= MaxWidth; width++ {
		for offset := uint(0); offset+width <= Capacity; offset += 5 {
			f := MustField(width, offset)
			var before Vector
			before[0] = rng.Uint64()
			before[1] = rng.Uint64()

			value := rng.Uint64() & f.Max()
			after := before
			after.Write(f, value)

			if got := after.Read(f); got != value {
				t.Fatalf("%s: read %#x, wrote %#x", f, got, value)
			}
			if !after.EqualOutside(before, f) {
				t.Fatalf("%s: bits outside the field changed: before %s after %s", f, before, after)
			}
		}
	}
}

func TestWriteTruncatesOverflow(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value uint64
		want  uint64
	}{
		{"three bits", Field{Width: 3, Offset: 32}, 9, 1},
		{"four bits at limit", Field{Width: 4, Offset: 36}, 16, 0},
		{"four bits wraps", Field{Width: 4, Offset: 36}, 0x1f, 0xf},
		{"straddles words", Field{Width: 8, Offset: 60}, 0x1ab, 0xab},
		{"single bit", Field{Width: 1, Offset: 127}, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Vector
			v.Write(tt.field, tt.value)
			if got := v.Read(tt.field); got != tt.want {
				t.Fatalf("Read = %#x, want %#x", got, tt.want)
			}
			if got := v.Read(tt.field); got != tt.value%(tt.field.Max()+1) {
				t.Fatalf("truncation law broken: %#x != %#x mod 2^%d", got, tt.value, tt.field.Width)
			}
			var untouched Vector
			if !v.EqualOutside(untouched, tt.field) {
				t.Fatalf("overflow leaked outside %s: %s", tt.field, v)
			}
		})
	}
}

func TestWriteLeavesNeighbours(t *testing.T) {
	low := MustField(4, 32)
	mid := MustField(3, 36)
	high := MustField(4, 39)

	var v Vector
	v.Write(low, 0xf)
	v.Write(high, 0xf)
	v.Write(mid, 0)
	v.Write(mid, 0x5)

	if got := v.Read(low); got != 0xf {
		t.Fatalf("low = %#x, want 0xf", got)
	}
	if got := v.Read(high); got != 0xf {
		t.Fatalf("high = %#x, want 0xf", got)
	}
	if got := v.Read(mid); got != 0x5 {
		t.Fatalf("mid = %#x, want 0x5", got)
	}
}

func TestFullWidthField(t *testing.T) {
	f := MustField(64, 32)
	var v Vector
	v.Write(f, ^uint64(0))
	if got := v.Read(f); got != ^uint64(0) {
		t.Fatalf("Read = %#x", got)
	}
	if v[0] != 0xffffffff00000000 || v[1] != 0x00000000ffffffff {
		t.Fatalf("unexpected layout %s", v)
	}
}

func TestNewFieldRejectsMalformed(t *testing.T) {
	cases := []struct{ width, offset uint }{
		{0, 0},
		{65, 0},
		{8, 121},
		{1, Capacity},
	}
	for _, c := range cases {
		if _, err := NewField(c.width, c.offset); !errors.Is(err, ErrFieldRange) {
			t.Fatalf("NewField(%d, %d) err = %v, want ErrFieldRange", c.width, c.offset, err)
		}
	}
}

func TestReadPanicsOnMalformedField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed field")
		}
	}()
	var v Vector
	v.Read(Field{Width: 10, Offset: 120})
}

func TestCheckLayout(t *testing.T) {
	if err := CheckLayout(MustField(4, 32), MustField(3, 36), MustField(4, 39)); err != nil {
		t.Fatalf("adjacent fields rejected: %v", err)
	}
	err := CheckLayout(MustField(4, 32), MustField(3, 35))
	if !errors.Is(err, ErrFieldOverlap) {
		t.Fatalf("err = %v, want ErrFieldOverlap", err)
	}
	err = CheckLayout(MustField(4, 32), Field{Width: 0, Offset: 40})
	if !errors.Is(err, ErrFieldRange) {
		t.Fatalf("err = %v, want ErrFieldRange", err)
	}
}
