package mixers

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Single-block accumulators of non-cryptographic hashes. Where the real hash would go on to absorb
// further blocks, these stop after the first so only its diffusion is measured.

// Murmur3 is the MurmurHash3 x64-128 block accumulator.
func Murmur3(in, out []byte) {
	check("Murmur3", in, out, 16, 16)
	const c1, c2, seed = 0x87c37b91114253d5, 0x4cf5ad432745937f, 0xe9e58282f1c2287e

	h1, h2 := uint64(seed), uint64(seed)
	k1, k2 := fetch64(in, 0), fetch64(in, 8)

	k1 *= c1
	k1 = bits.RotateLeft64(k1, 31)
	k1 *= c2
	h1 ^= k1
	h1 = bits.RotateLeft64(h1, 27)
	h1 += h2
	h1 = h1*5 + 0x52dce729

	k2 *= c2
	k2 = bits.RotateLeft64(k2, 33)
	k2 *= c1
	h2 ^= k2
	h2 = bits.RotateLeft64(h2, 31)
	h2 += h1
	h2 = h2*5 + 0x38495ab5

	store64(out, h2, h1)
}

// MetroHash128 is the MetroHash128 block accumulator.
func MetroHash128(in, out []byte) {
	check("MetroHash128", in, out, 32, 32)
	const k0, k1, k2, k3 = 0xC83A91E1, 0x8648DBDB, 0x7BDEC03B, 0x2F5870A5

	var s [4]uint64
	s[0] += fetch64(in, 0) * k0
	s[0] = bits.RotateLeft64(s[0], -29) + s[2]
	s[1] += fetch64(in, 8) * k1
	s[1] = bits.RotateLeft64(s[1], -29) + s[3]
	s[2] += fetch64(in, 16) * k2
	s[2] = bits.RotateLeft64(s[2], -29) + s[0]
	s[3] += fetch64(in, 24) * k3
	s[3] = bits.RotateLeft64(s[3], -29) + s[1]

	store64(out, s[:]...)
}

// CityHash128 is the CityHash128 block accumulator, which FarmHash128 shares. The reference loop
// is unrolled over two blocks; only the first is kept here.
func CityHash128(in, out []byte) {
	check("CityHash128", in, out, 64, 56)
	const k1, seed1, seed2 = 0xb492b66fbe98f273, 0x6cfd5fc33eb025ed, 0x22db8460f81d5fea
	ror := func(v uint64, n int) uint64 { return bits.RotateLeft64(v, -n) }

	/* Hashes in[i:i+32] along with a and b into 16 bytes. */
	weak := func(i int, a, b uint64) (uint64, uint64) {
		w, x, y, z := fetch64(in, i), fetch64(in, i+8), fetch64(in, i+16), fetch64(in, i+24)
		a += w
		b = ror(b+a+z, 21)
		c := a
		a += x + y
		b += ror(a, 44)
		return a + z, b + c
	}

	x, y, z := uint64(seed1), uint64(seed2), uint64(k1)
	z *= 16 /* Block length in bytes times k1. */
	var v, w [2]uint64
	v[0] = ror(y^k1, 49)*k1 + fetch64(in, 0)
	v[1] = ror(v[0], 42)*k1 + fetch64(in, 8)
	w[0] = ror(y+z, 35)*k1 + x
	w[1] = ror(x+fetch64(in, 88), 53) * k1

	x = ror(x+y+v[0]+fetch64(in, 8), 37) * k1
	y = ror(y+v[1]+fetch64(in, 48), 42) * k1
	x ^= w[1]
	y += v[0] + fetch64(in, 40)
	z = ror(z+w[0], 33) * k1
	v[0], v[1] = weak(0, v[1]*k1, x+w[0])
	w[0], w[1] = weak(32, z+w[1], y+fetch64(in, 16))
	z, x = x, z

	store64(out, v[0], v[1], w[0], w[1], x, y, z)
}

var spookyRotations = [12]int{11, 32, 43, 31, 17, 28, 39, 57, 55, 54, 22, 46}

// SpookyHash2 is the SpookyHash V2 block absorber over its twelve-word state.
func SpookyHash2(in, out []byte) {
	check("SpookyHash2", in, out, 96, 96)
	var s [12]uint64
	for i := range s {
		s[i] += fetch64(in, i<<3)
		s[(i+2)%12] ^= s[(i+10)%12]
		s[(i+11)%12] ^= s[i]
		s[i] = bits.RotateLeft64(s[i], spookyRotations[i])
		s[(i+11)%12] += s[(i+1)%12]
	}
	store64(out, s[:]...)
}

var xxh3Secret = [8]uint64{
	0xb8fe6c3923a44bbe, 0x7c01812cf721ad1c, 0xded46de9839097db, 0x7240a4a4b7b3671f,
	0xcb79e64eccc0e578, 0x825ad07dccff7221, 0xb8084674f743248e, 0xe03590e6813a264c,
}

// XXHash3 is the large-input xxHash3 accumulator applied to one 64-byte stripe.
func XXHash3(in, out []byte) {
	check("XXHash3", in, out, 64, 64)
	const (
		prime32_1, prime32_2, prime32_3 = 0x9E3779B1, 0x85EBCA77, 0xC2B2AE3D
		prime64_1, prime64_2, prime64_3 = 0x9E3779B185EBCA87, 0xC2B2AE3D27D4EB4F, 0x165667B19E3779F9
		prime64_4, prime64_5            = 0x85EBCA77C2B2AE63, 0x27D4EB2F165667C5
	)
	acc := [8]uint64{prime32_3, prime64_1, prime64_2, prime64_3, prime64_4, prime32_2, prime64_5, prime32_1}

	var stripe [8]uint64
	load64(stripe[:], in)
	for i, lane := range stripe {
		v := lane ^ xxh3Secret[i]
		acc[i^1] += lane
		acc[i] += (v & 0xffffffff) * (v >> 32)
	}
	store64(out, acc[:]...)
}

// FNV1a128 is 128-bit FNV-1a over a 16-byte block. FNV is not block-based; the block size only
// sets how many bytes are folded in before diffusion is measured.
func FNV1a128(in, out []byte) {
	check("FNV1a128", in, out, 16, 16)
	/* The prime is 2^88 + 0x13b, so its high word is 1<<24. */
	const primeHi, primeLo = 1 << 24, 0x13b

	hi, lo := uint64(0x6c62272e07bb0142), uint64(0x62b821756295c58d)
	for _, b := range in {
		lo ^= uint64(b)
		h, l := bits.Mul64(lo, primeLo)
		hi, lo = h+lo*primeHi+hi*primeLo, l
	}
	store64(out, lo, hi)
}
