package generate

import (
	"bytes"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func popcount(b []byte) (n int) {
	for _, v := range b {
		n += bits.OnesCount8(v)
	}
	return n
}

func TestDeterministic(t *testing.T) {
	for _, p := range Patterns {
		t.Run(p.Name, func(t *testing.T) {
			a, b := make([]byte, 24), make([]byte, 24)
			for _, index := range []uint64{0, 1, 77, 1 << 40} {
				for i := range b {
					b[i] = 0xa5
				}
				p.Gen(index, a)
				p.Gen(index, b)
				require.Equal(t, a, b, "index %d", index)
			}
		})
	}
}

func TestRandom(t *testing.T) {
	a, b := make([]byte, 32), make([]byte, 32)
	Random(0, a)
	Random(1, b)
	require.NotEqual(t, a, b)
	require.NotEqual(t, make([]byte, 32), a)

	/* A longer buffer extends the same stream. */
	long := make([]byte, 64)
	Random(0, long)
	require.Equal(t, a, long[:32])
}

func TestCounting(t *testing.T) {
	buf := bytes.Repeat([]byte{0xff}, 16)
	Counting(5, buf)
	require.Equal(t, append([]byte{5}, make([]byte, 15)...), buf)

	short := make([]byte, 2)
	Counting(0x030201, short)
	require.Equal(t, []byte{1, 2}, short)
}

func TestGrayCode(t *testing.T) {
	prev, cur := make([]byte, 8), make([]byte, 8)
	GrayCode(0, prev)
	require.Equal(t, make([]byte, 8), prev)
	for index := uint64(1); index < 1<<12; index++ {
		GrayCode(index, cur)
		diff := 0
		for i := range cur {
			diff += bits.OnesCount8(cur[i] ^ prev[i])
		}
		require.Equal(t, 1, diff, "index %d", index)
		copy(prev, cur)
	}
}

func TestSingle1Bit(t *testing.T) {
	buf := make([]byte, 4)
	Single1Bit(9, buf)
	require.Equal(t, []byte{0, 0b10, 0, 0}, buf)

	Single1Bit(32+9, buf)
	require.Equal(t, []byte{0, 0b10, 0, 0}, buf)
	require.Equal(t, 32, Patterns[len(Patterns)-1].RoundsFor(4))
	require.Equal(t, 1<<16, Patterns[0].RoundsFor(4))
}

func TestRandomBits(t *testing.T) {
	gen := RandomBits(8)
	buf := make([]byte, 16)
	seen := 0
	for index := uint64(0); index < 256; index++ {
		gen(index, buf)
		n := popcount(buf)
		require.LessOrEqual(t, n, 8)
		require.Greater(t, n, 0)
		seen += n
	}
	/* Collisions among 8 draws from 128 positions are rare. */
	require.Greater(t, seen, 256*7)

	other := make([]byte, 16)
	RandomBits(9)(0, other)
	gen(0, buf)
	require.NotEqual(t, buf, other)
}

func TestOffset(t *testing.T) {
	a, b := make([]byte, 8), make([]byte, 8)
	Offset(Counting, 10)(5, a)
	Counting(15, b)
	require.Equal(t, b, a)
}

func TestBinomial(t *testing.T) {
	for n := uint64(0); n <= 80; n++ {
		for k := uint64(0); k <= n+1; k++ {
			want := new(big.Int).Binomial(int64(n), int64(k))
			if k > n {
				want.SetUint64(0)
			}
			got, ok := Binomial(n, k)
			require.Equal(t, want.IsUint64(), ok, "C(%d, %d)", n, k)
			if ok {
				require.Equal(t, want.Uint64(), got, "C(%d, %d)", n, k)
			}
		}
	}
	_, ok := Binomial(1024, 512)
	require.False(t, ok)
	c, ok := Binomial(1024, 1)
	require.True(t, ok)
	require.Equal(t, uint64(1024), c)
}

func TestCombinationsComplete(t *testing.T) {
	buf := make([]byte, 1)
	seen := map[byte]bool{}
	prev := 0
	for index := uint64(0); index < 256; index++ {
		Combinations(index, buf)
		require.False(t, seen[buf[0]], "pattern %08b repeated at %d", buf[0], index)
		seen[buf[0]] = true

		n := popcount(buf)
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
	require.Len(t, seen, 256)

	/* The index wraps at 2^8. */
	Combinations(256+3, buf)
	again := make([]byte, 1)
	Combinations(3, again)
	require.Equal(t, again, buf)
}

func TestCombinationsOrder(t *testing.T) {
	buf := make([]byte, 2)
	for index, want := range []uint16{0, 1, 2, 4, 8} {
		Combinations(uint64(index), buf)
		require.Equal(t, want, uint16(buf[0])|uint16(buf[1])<<8)
	}
	Combinations(17, buf) /* 1 + 16: the first pattern with two bits set. */
	require.Equal(t, []byte{3, 0}, buf)

	wide := make([]byte, 16)
	Combinations(0, wide)
	require.Zero(t, popcount(wide))
	Combinations(1<<63, wide)
	require.Equal(t, 15, popcount(wide)) /* 2^63 falls between the sums of C(128, j) for j < 15 and j <= 15. */
}

func TestCombinationIndex(t *testing.T) {
	require.Equal(t, uint64(0), CombinationIndex(16, 0))
	require.Equal(t, uint64(1), CombinationIndex(16, 1))
	require.Equal(t, uint64(1+16+120), CombinationIndex(16, 3))
	require.Equal(t, uint64(1<<16), CombinationIndex(16, 17))
	require.Equal(t, ^uint64(0), CombinationIndex(1024, 100))

	gen, buf := CombinationsFrom(8), make([]byte, 16)
	for index := uint64(0); index < 64; index++ {
		gen(index, buf)
		require.Equal(t, 8, popcount(buf))
	}
}

func BenchmarkCombinations(b *testing.B) {
	buf := make([]byte, 64)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Combinations(uint64(i)*0x9e3779b97f4a7c15, buf)
	}
}

func BenchmarkRandom(b *testing.B) {
	buf := make([]byte, 64)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Random(uint64(i), buf)
	}
}
