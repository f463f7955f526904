package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor_WriteReadUint(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteUint(0x1F, 5))
	require.NoError(t, w.WriteUint(0x3, 2))
	require.NoError(t, w.AlignToByte())

	r := NewReader(w.Bytes())
	v, err := r.ReadUint(5)
	require.NoError(t, err)
	require.EqualValues(t, 0x1F, v)

	v, err = r.ReadUint(2)
	require.NoError(t, err)
	require.EqualValues(t, 0x3, v)
}

func TestCursor_WriteReadInt_SignExtend(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteInt(-1, 13))
	require.NoError(t, w.WriteInt(4094, 13))

	r := NewReader(w.Bytes())
	v, err := r.ReadInt(13)
	require.NoError(t, err)
	require.EqualValues(t, -1, v)

	v, err = r.ReadInt(13)
	require.NoError(t, err)
	require.EqualValues(t, 4094, v)
}

func TestCursor_WriteInt_OutOfRange(t *testing.T) {
	w := NewWriter(0)
	err := w.WriteInt(4096, 13)
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestCursor_MisalignedByteWrite(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteUint(1, 3))
	err := w.WriteBytes([]byte{0xAB})
	require.ErrorIs(t, err, ErrMisaligned)
}

func TestCursor_ShortInput(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadUint(9)
	require.ErrorIs(t, err, ErrShortInput)
}

func TestCursor_ArbitraryOffsetRoundTrip(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteUint(1, 1))   // units flag
	require.NoError(t, w.WriteUint(1, 1))   // full_update flag
	require.NoError(t, w.WriteInt(-42, 12)) // some field
	require.ErrorIs(t, w.WriteBytes(nil), ErrMisaligned) // empty byte run still checks alignment
	require.NoError(t, w.AlignToByte())

	r := NewReader(w.Bytes())
	units, err := r.ReadUint(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, units)

	full, err := r.ReadUint(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, full)

	v, err := r.ReadInt(12)
	require.NoError(t, err)
	require.EqualValues(t, -42, v)
}
