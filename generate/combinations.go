package generate

import (
	"math"
	"math/bits"

	"github.com/p7r0x7/bitmix"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Unranking over the ordering "every pattern with 0 bits set, then every pattern with 1, then 2,
// ..." where patterns of equal weight follow the combinatorial number system. Early trials feed a
// mixer sparse inputs and later ones dense inputs.

// Binomial returns C(n, k). ok is false when the result does not fit in 64 bits.
func Binomial(n, k uint64) (c uint64, ok bool) {
	if k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}
	c = 1
	for i := uint64(1); i <= k; i++ {
		/* C(n-k+i, i) = (n-k+i) * C(n-k+i-1, i-1) / i; the product is held in 128 bits and the
		division is exact. The sequence never shrinks, so one overflow means the result overflows. */
		hi, lo := bits.Mul64(c, n-k+i)
		if hi >= i {
			return 0, false
		}
		c, _ = bits.Div64(hi, lo, i)
	}
	return c, true
}

// Combinations fills out with the pattern at rank index. Over a buffer of L < 64 bits the index
// wraps modulo 2^L, so every run of 2^L consecutive indices yields each pattern exactly once.
func Combinations(index uint64, out []byte) {
	width := len(out) << 3
	if width < 64 {
		index &= 1<<width - 1
	}
	zero(out)

	/* Find the population count, leaving index as the rank within that group. */
	k := 0
	for ; k <= width; k++ {
		c, ok := Binomial(uint64(width), uint64(k))
		if !ok || index < c {
			break
		}
		index -= c
	}

	/* The largest position t-1 with C(t-1, k) <= index is the highest set bit. */
	for t := width; t > 0 && k > 0; t-- {
		if y, ok := Binomial(uint64(t-1), uint64(k)); ok && index >= y {
			bitmix.SetBit(out, t-1, true)
			index -= y
			k--
		}
	}
}

// CombinationIndex returns the rank of the first pattern over width bits with k bits set, i.e. the
// sum of C(width, j) for j < k. It saturates at math.MaxUint64.
func CombinationIndex(width, k int) uint64 {
	var sum uint64
	for j := 0; j < k && j <= width; j++ {
		c, ok := Binomial(uint64(width), uint64(j))
		if !ok || sum+c < sum {
			return math.MaxUint64
		}
		sum += c
	}
	return sum
}

// CombinationsFrom returns Combinations shifted so that trial 0 is the first pattern with k bits
// set, whatever the width of the buffer it is asked to fill.
func CombinationsFrom(k int) bitmix.Generator {
	return func(index uint64, out []byte) {
		Combinations(index+CombinationIndex(len(out)<<3, k), out)
	}
}
