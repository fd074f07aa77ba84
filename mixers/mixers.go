// Package mixers collects the mixing functions measured by bitmix: the block accumulators and
// absorbers of well-known hashes, each cut down to a single block so only its diffusion is seen,
// alongside a few complete hashes for reference.
package mixers

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Mixer describes a mixing function and the fixed sizes, in bytes, of its input and output. Digest
// is the digest size of the hash the mixer belongs to and is informational only.
type Mixer struct {
	Name                   string
	Mix                    func(in, out []byte)
	InSize, OutSize, Digest int

	/* Hidden mixers are only run when a filter names them. */
	Hidden bool
}

// All is the registry of mixers, ordered by name.
var All = []Mixer{
	{Name: "AES, 2 rounds", Mix: AES, InSize: 16, OutSize: 16, Digest: 16},
	{Name: "AquaHash accumulator", Mix: AquaHash, InSize: 64, OutSize: 64, Digest: 16},
	{Name: "BLAKE3 (full hash)", Mix: BLAKE3, InSize: 64, OutSize: 32, Digest: 32},
	{Name: "ChaCha8 block", Mix: ChaCha8, InSize: 32, OutSize: 64, Digest: 64},
	{Name: "CityHash128 accumulator", Mix: CityHash128, InSize: 64, OutSize: 56, Digest: 16},
	{Name: "FNV1a (128-bit) accumulator", Mix: FNV1a128, InSize: 16, OutSize: 16, Digest: 16},
	{Name: "Goodhart mixer, 12 rounds", Mix: Goodhart, InSize: 16, OutSize: 16, Digest: 16},
	{Name: "MetroHash128 accumulator", Mix: MetroHash128, InSize: 32, OutSize: 32, Digest: 16},
	{Name: "Murmur3 accumulator", Mix: Murmur3, InSize: 16, OutSize: 16, Digest: 16},
	{Name: "PCG forward and backward output", Mix: PCGForward, InSize: 16, OutSize: 16, Digest: 8},
	{Name: "SHA-256 (full hash)", Mix: SHA256, InSize: 64, OutSize: 32, Digest: 32},
	{Name: "Skein, 7 rounds (not representative of actual Skein)", Mix: Skein, InSize: 32,
		OutSize: 32, Digest: 32, Hidden: true},
	{Name: "SpookyHash 2", Mix: SpookyHash2, InSize: 96, OutSize: 96, Digest: 16},
	{Name: "TentHash", Mix: TentHash, InSize: 32, OutSize: 32, Digest: 20},
	{Name: "XXH3-128 (full hash)", Mix: XXH3, InSize: 16, OutSize: 16, Digest: 16},
	{Name: "xxhash3 accumulator", Mix: XXHash3, InSize: 64, OutSize: 64, Digest: 16},
}

// Find returns the mixers whose names contain any of filters, ignoring case. Without filters it
// returns every mixer that is not hidden.
func Find(filters ...string) []Mixer {
	var found []Mixer
	for _, m := range All {
		if len(filters) == 0 {
			if !m.Hidden {
				found = append(found, m)
			}
			continue
		}
		name := strings.ToLower(m.Name)
		for _, f := range filters {
			if strings.Contains(name, strings.ToLower(f)) {
				found = append(found, m)
				break
			}
		}
	}
	return found
}

func check(name string, in, out []byte, inSize, outSize int) {
	if len(in) != inSize || len(out) != outSize {
		panic(fmt.Errorf("mixers: %s: got %d/%d byte buffers, want %d/%d",
			name, len(in), len(out), inSize, outSize))
	}
}

/* Reads the 64-bit little-endian word at byte offset i, or 0 past the end of b; extra rounds
then see a stream of zeroes instead of foreign data. */
func fetch64(b []byte, i int) uint64 {
	if i+8 > len(b) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[i:])
}

func load64(dst []uint64, b []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[i<<3:])
	}
}

func store64(b []byte, src ...uint64) {
	for i, v := range src {
		binary.LittleEndian.PutUint64(b[i<<3:], v)
	}
}
