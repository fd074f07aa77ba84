package bitmix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitAddressing(t *testing.T) {
	buf := make([]byte, 4)
	SetBit(buf, 9, true)
	require.Equal(t, []byte{0, 0b10, 0, 0}, buf)
	require.True(t, GetBit(buf, 9))
	require.False(t, GetBit(buf, 8))

	SetBit(buf, 31, true)
	require.Equal(t, byte(0x80), buf[3])
	SetBit(buf, 9, false)
	require.Equal(t, []byte{0, 0, 0, 0x80}, buf)

	FlipBit(buf, 0)
	FlipBit(buf, 31)
	require.Equal(t, []byte{1, 0, 0, 0}, buf)
}

func TestFlipped(t *testing.T) {
	a, b := []byte{0x0f, 0xf0}, []byte{0x0e, 0xf0}
	require.True(t, Flipped(a, b, 0))
	for i := 1; i < 16; i++ {
		require.False(t, Flipped(a, b, i), "bit %d", i)
	}
}

func TestBitOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { GetBit(make([]byte, 2), 16) })
}
