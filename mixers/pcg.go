package mixers

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Output functions built from PCG's 128-bit multiplier: three chained MCG steps, each reduced with
// an XSL-RR permutation, then folded together JSF-style.

const pcgHi, pcgLo = 2549297995355413924, 4865540595714422341

/* One 128-bit MCG step over hi:lo, returning the advanced state and its XSL-RR output. */
func pcgStep(hi, lo uint64) (uint64, uint64, uint64) {
	h, l := bits.Mul64(lo, pcgLo)
	h += pcgHi*lo + pcgLo*hi
	return h, l, bits.RotateLeft64(h^l, int(h>>58))
}

func pcgForward(hi, lo uint64) uint64 {
	hi, lo, a := pcgStep(hi, lo)
	hi, lo, b := pcgStep(hi, lo)
	_, _, c := pcgStep(hi, lo)
	a = a - bits.RotateLeft64(b, 7) + b ^ bits.RotateLeft64(c, 13)
	return bits.RotateLeft64(a*5, 7) * 9
}

/* xoroshiro128 steps first, then a single MCG step at the end. */
func pcgBackward(hi, lo uint64) uint64 {
	next := func(hi, lo uint64) (uint64, uint64, uint64) {
		return bits.RotateLeft64(hi, 24) ^ lo ^ hi ^ (hi^lo)<<16, bits.RotateLeft64(lo, 37),
			bits.RotateLeft64(hi*5, 7) * 9
	}
	c, d, aa := next(hi, lo)
	e, f, bb := next(c, d)
	g, _, cc := next(e, f)
	dd := bits.RotateLeft64(g*5, 7) * 9

	a := bb ^ bits.RotateLeft64(cc, 13)
	b := cc + bits.RotateLeft64(dd, 37)
	c = aa - bits.RotateLeft64(bb, 7) + dd
	d = aa - bits.RotateLeft64(bb, 7) + bb ^ bits.RotateLeft64(cc, 13)
	e = a - bits.RotateLeft64(b, 7) + b ^ bits.RotateLeft64(c, 13)

	_, _, out := pcgStep(d, e)
	return out
}

// PCGForward maps a 128-bit state, low word first, through the forward output function. Both
// output words come from the same state so the avalanche of each can be compared.
func PCGForward(in, out []byte) {
	check("PCGForward", in, out, 16, 16)
	hi, lo := fetch64(in, 8), fetch64(in, 0)
	store64(out, pcgForward(hi, lo), pcgBackward(hi, lo))
}
