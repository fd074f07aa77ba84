package bitmix

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Bit addressing shared by the accumulator, the generators and the mixers' tests. Bit i lives in
// byte i/8 under the mask 1<<(i%8); an index past the end of buf panics like any slice access.

// GetBit reports whether bit i of buf is set.
func GetBit(buf []byte, i int) bool { return buf[i>>3]&(1<<(i&7)) != 0 }

// SetBit sets bit i of buf to v.
func SetBit(buf []byte, i int, v bool) {
	if v {
		buf[i>>3] |= 1 << (i & 7)
	} else {
		buf[i>>3] &^= 1 << (i & 7)
	}
}

// FlipBit inverts bit i of buf.
func FlipBit(buf []byte, i int) { buf[i>>3] ^= 1 << (i & 7) }

// Flipped reports whether bit i differs between a and b.
func Flipped(a, b []byte, i int) bool { return (a[i>>3]^b[i>>3])&(1<<(i&7)) != 0 }
