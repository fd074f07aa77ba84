// Package generate provides the deterministic input patterns that drive bitmix trials. Every
// generator is a pure function of the trial index and the length of the buffer it fills.
package generate

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
	"github.com/p7r0x7/bitmix"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Pattern is a named generator with its default trial count. Rounds of 0 means one trial per input
// bit, which suits generators that cycle through the input width.
type Pattern struct {
	Name   string
	Gen    bitmix.Generator
	Rounds int
}

// Patterns lists the input patterns in the order the command-line tools run them.
var Patterns = []Pattern{
	{"random", Random, 1 << 16},
	{"counting", Counting, 1 << 16},
	{"gray code", GrayCode, 1 << 16},
	{"bit combinations", Combinations, 1 << 16},
	{"bit combinations starting at 8 bits", CombinationsFrom(8), 1 << 16},
	{"8 random bits", RandomBits(8), 1 << 16},
	/* Even a very good mixer is unlikely to look perfect here: there are too few trials to
	shrink the variance. */
	{"single-bit", Single1Bit, 0},
}

// RoundsFor resolves p.Rounds against a mixer's input size in bytes.
func (p Pattern) RoundsFor(inputSize int) int {
	if p.Rounds == 0 {
		return inputSize << 3
	}
	return p.Rounds
}

const streamRounds = 8

var nonce [chacha.NonceSize]byte

// mix64 is a bijective 64-bit mixer (Stafford's Mix13) with zero sensitivity broken by a leading
// XOR, so index 0 does not seed a degenerate stream.
func mix64(n uint64) uint64 {
	n ^= 0x7be355f7c2e736d2
	n ^= n >> 30
	n *= 0xbf58476d1ce4e5b9
	n ^= n >> 27
	n *= 0x94d049bb133111eb
	n ^= n >> 31
	return n
}

// stream returns a ChaCha8 keystream keyed by seed.
func stream(seed uint64) *chacha.Cipher {
	var key [chacha.KeySize]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	c, err := chacha.NewCipher(nonce[:], key[:], streamRounds)
	if err != nil {
		panic(err) /* Unreachable: key, nonce and round count are fixed. */
	}
	return c
}

func zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// Random fills out with a pseudo-random stream seeded by mix64(index).
func Random(index uint64, out []byte) {
	zero(out)
	stream(mix64(index)).XORKeyStream(out, out)
}

// Counting writes index as a little-endian integer into the first 8 bytes of out and zeroes the
// rest. Buffers shorter than 8 bytes receive the low-order bytes only.
func Counting(index uint64, out []byte) {
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], index)
	zero(out[copy(out, word[:]):])
}

// GrayCode is Counting over the reflected binary code of index, so consecutive trials differ in
// exactly one bit.
func GrayCode(index uint64, out []byte) { Counting(index^index>>1, out) }

// Single1Bit zeroes out and sets only bit index mod the buffer's bit length.
func Single1Bit(index uint64, out []byte) {
	zero(out)
	bitmix.SetBit(out, int(index%(uint64(len(out))<<3)), true)
}

// RandomBits returns a generator that zeroes the buffer and sets n pseudo-randomly chosen bits.
// Positions are drawn with replacement, so fewer than n bits may end up set.
func RandomBits(n int) bitmix.Generator {
	salt := mix64(uint64(n))
	return func(index uint64, out []byte) {
		zero(out)
		c, width := stream(mix64(index^salt)), uint64(len(out))<<3
		var word [8]byte
		for i := n; i > 0; i-- {
			zero(word[:])
			c.XORKeyStream(word[:], word[:])
			bitmix.SetBit(out, int(binary.LittleEndian.Uint64(word[:])%width), true)
		}
	}
}

// Offset returns g with every trial index shifted forward by n.
func Offset(g bitmix.Generator, n uint64) bitmix.Generator {
	return func(index uint64, out []byte) { g(index+n, out) }
}
