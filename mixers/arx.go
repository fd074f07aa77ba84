package mixers

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Add-rotate-xor permutations. The rotation schedules are read-only and belong to their mixer.

var goodhartRotations = [...]int{12, 39, 21, 13, 32, 11, 24, 53, 17, 27, 57, 13, 50, 8, 52, 8}

const goodhartRounds = 12

// Goodhart is the mix function from "Hash Design and Goodhart's Law".
func Goodhart(in, out []byte) {
	check("Goodhart", in, out, 16, 16)
	var s [2]uint64
	load64(s[:], in)

	for _, rot := range goodhartRotations[:goodhartRounds] {
		s[0] += s[1] + 1
		s[1] = bits.RotateLeft64(s[1], rot) ^ s[0]
	}
	store64(out, s[:]...)
}

var tentRotations = [...][2]int{{16, 28}, {14, 57}, {11, 22}, {35, 34}, {57, 16}, {59, 40}, {44, 13}}

// TentHash is TentHash's full-state mixing function.
func TentHash(in, out []byte) {
	check("TentHash", in, out, 32, 32)
	var s [4]uint64
	load64(s[:], in)

	for _, rot := range tentRotations {
		s[0] += s[2]
		s[1] += s[3]
		s[2] = bits.RotateLeft64(s[2], rot[0]) ^ s[0]
		s[3] = bits.RotateLeft64(s[3], rot[1]) ^ s[1]
		s[0], s[1] = s[1], s[0]
	}
	store64(out, s[:]...)
}

var skeinRotations = [...][2]int{{14, 16}, {52, 57}, {23, 40}, {5, 37}, {25, 33}, {46, 12}, {58, 22}, {32, 32}}

const skeinRounds = 7

// Skein is Threefish-256's mix over 7 rounds, far fewer than Skein actually uses. It is kept for
// comparison with TentHash, which shares the construction with constants tuned for fewer rounds.
func Skein(in, out []byte) {
	check("Skein", in, out, 32, 32)
	var s [4]uint64
	load64(s[:], in)

	for _, rot := range skeinRotations[:skeinRounds] {
		s[0] += s[1]
		s[1] = bits.RotateLeft64(s[1], rot[0]) ^ s[0]
		s[2] += s[3]
		s[3] = bits.RotateLeft64(s[3], rot[1]) ^ s[2]
		s[1], s[3] = s[3], s[1]
	}
	store64(out, s[:]...)
}
