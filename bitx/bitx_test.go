package bitx

import (
	"math/rand"
	"strings"
	"testing"
)

func TestMaskBits(t *testing.T) {
	if got := MaskBits(0b1100, 0b1010); got != 0b1000 {
		t.Errorf("got %#b; want 0b1000", got)
	}
	if got := MaskBits(0xdeadbeef, 0xffff0000); got != 0xdead0000 {
		t.Errorf("got %#x; want 0xdead0000", got)
	}
}

func TestReverseBits(t *testing.T) {
	if got := ReverseBits(0b11010010); got != 0b01001011 {
		t.Errorf("got %#08b; want 0b01001011", got)
	}
	for v := uint32(0); v < 256; v++ {
		if got := ReverseBits(ReverseBits(v)); got != v {
			t.Errorf("ReverseBits not an involution on low byte: %#x -> %#x", v, got)
		}
		if got, want := ReverseBits(v), ReverseBits32(v)>>24; got != want {
			t.Errorf("ReverseBits(%#x) = %#x; want %#x", v, got, want)
		}
	}
	// Only the low byte participates.
	if got := ReverseBits(0xffffff00); got != 0 {
		t.Errorf("high bits leaked into result: %#x", got)
	}
	if got := ReverseBits(0x1234_5601); got != 0x80 {
		t.Errorf("got %#x; want 0x80", got)
	}
}

func TestReverseBits32(t *testing.T) {
	if got := ReverseBits32(1); got != 1<<31 {
		t.Errorf("got %#x; want %#x", got, uint32(1<<31))
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		v := rng.Uint32()
		if ReverseBits32(ReverseBits32(v)) != v {
			t.Fatalf("ReverseBits32 round trip failed for %#x", v)
		}
	}
}

func TestDecToBin(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{got: DecToBin16(5), want: "0000000000000101"},
		{got: DecToBin16(0), want: "0000000000000000"},
		{got: DecToBin16(-1), want: strings.Repeat("1", 16)},
		{got: DecToBin16(-32768), want: "1000000000000000"},
		{got: DecToBin32(-1), want: strings.Repeat("1", 32)},
		{got: DecToBin32(5), want: "00000000000000000000000000000101"},
		{got: DecToBin32(-2147483648), want: "1" + strings.Repeat("0", 31)},
		{got: DecToBin32(0x7fffffff), want: "0" + strings.Repeat("1", 31)},
	}
	for i, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("case %d: got %q; want %q", i, tc.got, tc.want)
		}
	}
}

func TestAppendBin(t *testing.T) {
	dst := []byte("x=")
	dst = AppendBin16(dst, 0b1010)
	dst = append(dst, ' ')
	dst = AppendBin32(dst, 1)
	want := "x=0000000000001010 " + strings.Repeat("0", 31) + "1"
	if string(dst) != want {
		t.Errorf("got %q; want %q", dst, want)
	}
}
