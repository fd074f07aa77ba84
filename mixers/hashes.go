package mixers

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Complete, properly-vetted functions measured as a baseline: every one of them should come out
// indistinguishable from ideal.

// BLAKE3 hashes a 64-byte message to a 32-byte digest.
func BLAKE3(in, out []byte) {
	check("BLAKE3", in, out, 64, 32)
	sum := blake3.Sum256(in)
	copy(out, sum[:])
}

// SHA256 hashes a 64-byte message to a 32-byte digest.
func SHA256(in, out []byte) {
	check("SHA256", in, out, 64, 32)
	sum := sha256.Sum256(in)
	copy(out, sum[:])
}

// XXH3 hashes a 16-byte message to XXH3's 128-bit digest, low word first.
func XXH3(in, out []byte) {
	check("XXH3", in, out, 16, 16)
	sum := xxh3.Hash128(in)
	binary.LittleEndian.PutUint64(out, sum.Lo)
	binary.LittleEndian.PutUint64(out[8:], sum.Hi)
}

var chachaNonce [chacha.NonceSize]byte

// ChaCha8 treats its input as a ChaCha key and outputs the first 64-byte keystream block under a
// zero nonce and counter.
func ChaCha8(in, out []byte) {
	check("ChaCha8", in, out, 32, 64)
	for i := range out {
		out[i] = 0
	}
	chacha.XORKeyStream(out, out, chachaNonce[:], in, 8)
}
