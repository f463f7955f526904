package varint

import (
	"testing"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/stretchr/testify/require"
)

func TestUVarInt_CompactRoundTrip(t *testing.T) {
	v := NewUVarInt(UVInt8Kind, 5)
	require.Equal(t, 1+3, v.BitSize())

	w := bitio.NewWriter(0)
	require.NoError(t, v.Encode(w))

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeUVarInt(r, UVInt8Kind)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestUVarInt_FullWidthRoundTrip(t *testing.T) {
	v := NewUVarInt(UVInt16Kind, 1000)
	require.Equal(t, 1+16, v.BitSize())

	w := bitio.NewWriter(0)
	require.NoError(t, v.Encode(w))

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeUVarInt(r, UVInt16Kind)
	require.NoError(t, err)
	require.Equal(t, uint32(1000), got.Value)
}

func TestUVarInt_SaturatesOnConstruction(t *testing.T) {
	v := NewUVarInt(UVInt8Kind, 1<<20)
	require.Equal(t, uint32(255), v.Value)
}

func TestSVarInt_SaturatesOnConstruction(t *testing.T) {
	v := NewSVarInt(13, 10000)
	require.Equal(t, int32(4095), v.Value)

	v = NewSVarInt(13, -10000)
	require.Equal(t, int32(-4096), v.Value)
}

func TestSVarInt_RoundTrip(t *testing.T) {
	v := NewSVarInt(12, -42)
	w := bitio.NewWriter(0)
	require.NoError(t, v.Encode(w))

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeSVarInt(r, 12)
	require.NoError(t, err)
	require.Equal(t, v.Value, got.Value)
}

func TestFloatCodec_QuantizeReconstruct(t *testing.T) {
	f := ParameterValueFloat.Quantize(12.5)
	got := ParameterValueFloat.Reconstruct(f)
	require.InDelta(t, 12.5, got, 1e-6)
}

func TestFloatCodec_EncodeDecodeRoundTrip(t *testing.T) {
	f := ParameterValueFloat.Quantize(-340.0)
	w := bitio.NewWriter(0)
	require.NoError(t, ParameterValueFloat.Encode(w, f))

	r := bitio.NewReader(w.Bytes())
	got, err := ParameterValueFloat.Decode(r)
	require.NoError(t, err)
	require.Equal(t, f, got)
}
