package mixers

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// A portable single AES encryption round, byte-for-byte equal to x86's AESENC: ShiftRows, SubBytes,
// MixColumns, then a XOR with the round key. The state is column-major, byte i at row i%4 of
// column i/4.

var sbox = func() (s [256]byte) {
	/* Walk GF(2^8) by powers of 3 while tracking the inverse, then apply the affine transform. */
	p, q := byte(1), byte(1)
	for {
		if p&0x80 != 0 {
			p ^= p<<1 ^ 0x1b
		} else {
			p ^= p << 1
		}
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}
		s[p] = 0x63 ^ q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4)
		if p == 1 {
			break
		}
	}
	s[0] = 0x63
	return s
}()

func rotl8(b byte, n int) byte { return b<<n | b>>(8-n) }

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

func aesEnc(state, key *[16]byte) {
	var t [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r+c<<2] = sbox[state[r+(c+r)&3<<2]]
		}
	}
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := t[c], t[c+1], t[c+2], t[c+3]
		state[c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3 ^ key[c]
		state[c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3 ^ key[c+1]
		state[c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3 ^ key[c+2]
		state[c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3) ^ key[c+3]
	}
}

/* Random 128-bit round keys, low word first. */
var aesKeys = [...][2]uint64{
	{0x4dd19917b03fb552, 0x5aee66ffbc9d5f25},
	{0xf7007e2431b3c833, 0xb625245574d76546},
	{0xd25e2a5875e2debc, 0x1896c105404b2ea0},
	{0xeae6bbd2d5eec448, 0x06805b053507e7f3},
}

const aesRounds = 2

// AES runs two full AES rounds over a 16-byte block. Hashes built on AES instructions need at
// least three for full 128-bit diffusion, which this mixer makes visible.
func AES(in, out []byte) {
	check("AES", in, out, 16, 16)
	var state, key [16]byte
	copy(state[:], in)
	for _, k := range aesKeys[:aesRounds] {
		binary.LittleEndian.PutUint64(key[:], k[0])
		binary.LittleEndian.PutUint64(key[8:], k[1])
		aesEnc(&state, &key)
	}
	copy(out, state[:])
}

var aquaSeed = [4][2]uint64{
	{0xa11202c9b468bea1, 0xd75157a01452495b},
	{0xb1293b3305418592, 0xd210d232c6429b69},
	{0xbd3dc2b7b87c4715, 0x6a6c9527ac2e0e4e},
	{0xcc96ed1674eaaa03, 0x1e863f24b2a8316a},
}

const aquaRounds = 2

// AquaHash is the AquaHash block accumulator. Input enters each AES round only as the round key,
// so a block is not really mixed until the following round; two rounds are run, the second over
// zeroes.
func AquaHash(in, out []byte) {
	check("AquaHash", in, out, 64, 64)
	var state [4][16]byte
	for i, seed := range aquaSeed {
		binary.LittleEndian.PutUint64(state[i][:], seed[0])
		binary.LittleEndian.PutUint64(state[i][8:], seed[1])
	}

	for round, offset := 0, 0; round < aquaRounds; round++ {
		for i := range state {
			var key [16]byte
			if offset+16 <= len(in) {
				copy(key[:], in[offset:])
			}
			aesEnc(&state[i], &key)
			offset += 16
		}
	}
	for i := range state {
		copy(out[i<<4:], state[i][:])
	}
}
