// Package bitx implements small bit manipulation and formatting helpers for
// fixed width integers. Bit 0 is the least significant bit.
package bitx

import "math/bits"

// MaskBits clears the bits of a not set in mask,
// i.e. 0b1100 with mask 0b1010 results in 0b1000.
func MaskBits(a, mask uint32) uint32 {
	return a & mask
}

// ReverseBits reverses the order of the low 8 bits of a,
// i.e. 0b11010010 becomes 0b01001011. Bits above bit 7 are discarded.
// Use [ReverseBits32] to reverse all 32 bits.
func ReverseBits(a uint32) uint32 {
	a = (a&0xF0)>>4 | (a&0x0F)<<4
	a = (a&0xCC)>>2 | (a&0x33)<<2
	a = (a&0xAA)>>1 | (a&0x55)<<1
	return a
}

// ReverseBits32 reverses the order of all 32 bits of a.
func ReverseBits32(a uint32) uint32 {
	return bits.Reverse32(a)
}

// DecToBin32 returns the 32 character binary representation of v, most
// significant bit first. Negative values render their two's complement.
func DecToBin32(v int32) string {
	var buf [32]byte
	return string(AppendBin32(buf[:0], v))
}

// DecToBin16 returns the 16 character binary representation of v, most
// significant bit first. Negative values render their two's complement.
func DecToBin16(v int16) string {
	var buf [16]byte
	return string(AppendBin16(buf[:0], v))
}

// AppendBin32 appends the 32 character binary representation of v to dst.
func AppendBin32(dst []byte, v int32) []byte {
	return appendBin(dst, uint64(uint32(v)), 32)
}

// AppendBin16 appends the 16 character binary representation of v to dst.
func AppendBin16(dst []byte, v int16) []byte {
	return appendBin(dst, uint64(uint16(v)), 16)
}

func appendBin(dst []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, '0'+byte(v>>i&1))
	}
	return dst
}
