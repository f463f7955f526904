package record

import (
	"math"
	"testing"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/varint"
	"github.com/stretchr/testify/require"
)

func TestEntityID_RoundTrip(t *testing.T) {
	id := NewEntityID(7, 127, 255)
	w := bitio.NewWriter(0)
	require.NoError(t, id.Encode(w))

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeEntityID(r)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestEntityType_RoundTrip(t *testing.T) {
	et := NewEntityType(1, 2, 153, 10, 0, 5, 0)
	w := bitio.NewWriter(0)
	require.NoError(t, et.Encode(w))
	require.Equal(t, et.BitLength(), w.PositionBits())

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeEntityType(r)
	require.NoError(t, err)
	require.Equal(t, et, got)
}

func TestOrientation_PiClampsTo4094(t *testing.T) {
	v := EncodeOrientation(math.Pi, 0, 0)
	require.EqualValues(t, 4094, v.X)

	psi, _, _ := DecodeOrientation(v)
	require.InDelta(t, 3.14082550, psi, 1e-6)
}

func TestLinearVelocity_RoundTripExact(t *testing.T) {
	v := EncodeLinearVelocity(11.1, -22.2, 33.3)
	require.EqualValues(t, 111, v.X)
	require.EqualValues(t, -222, v.Y)
	require.EqualValues(t, 333, v.Z)

	x, y, z := DecodeLinearVelocity(v)
	require.InDelta(t, 11.1, x, 1e-9)
	require.InDelta(t, -22.2, y, 1e-9)
	require.InDelta(t, 33.3, z, 1e-9)
}

func TestAngularVelocity_SaturatesAtFourPi(t *testing.T) {
	v := EncodeAngularVelocity(4*math.Pi, 0, 0, false)
	require.EqualValues(t, 2047, v.X)

	x, _, _ := DecodeAngularVelocity(v, false)
	require.InDelta(t, 4*math.Pi, x, 0.01)
}

func TestWorldCoordinates_EncodeDecodeBitLengthMatchesConsumed(t *testing.T) {
	wc, units := EncodeWorldCoordinates(scale.ECEF{X: 3919999, Y: 342955, Z: 5002819})
	w := bitio.NewWriter(0)
	require.NoError(t, wc.Encode(w))
	require.Equal(t, wc.BitLength(), w.PositionBits())

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeWorldCoordinatesRecord(r)
	require.NoError(t, err)

	ecef := got.Decode(units)
	require.InDelta(t, 3919999, ecef.X, 1.0)
	require.InDelta(t, 342955, ecef.Y, 1.0)
	require.InDelta(t, 5002819, ecef.Z, 1.0)
}

func TestMarking_RoundTrip5Bit(t *testing.T) {
	m := NewMarking("TEST")
	require.Equal(t, scale.MarkingCharSet5Bit, m.CharSet)

	w := bitio.NewWriter(0)
	require.NoError(t, m.Encode(w))
	require.Equal(t, m.BitLength(), w.PositionBits())

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeMarking(r)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestMarking_6BitWhenCharOutsideAlphabet(t *testing.T) {
	m := NewMarking("ABCDEJ")
	require.Equal(t, scale.MarkingCharSet6Bit, m.CharSet)
}

func TestMarking_TruncatesTo11Chars(t *testing.T) {
	m := NewMarking("ABCDEFGHIJKL")
	require.Len(t, m.Text, scale.MaxMarkingChars)
}

func TestVariableParameter_ArticulatedPartRoundTrip(t *testing.T) {
	p := ArticulatedPart{
		ChangeIndicator: varint.NewUVarInt(varint.UVInt8Kind, 1),
		AttachmentID:    varint.NewUVarInt(varint.UVInt16Kind, 12),
		ParameterType:   varint.NewUVarInt(varint.UVInt32Kind, 4096),
		ParameterValue:  varint.ParameterValueFloat.Quantize(45.0),
	}
	w := bitio.NewWriter(0)
	require.NoError(t, p.Encode(w))
	require.Equal(t, p.BitLength(), w.PositionBits())

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeVariableParameter(r)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestVariableParameter_UnknownDiscriminatorErrors(t *testing.T) {
	w := bitio.NewWriter(0)
	require.NoError(t, w.WriteUint(7, 4))
	for i := 0; i < unspecifiedPayloadBits/8; i++ {
		require.NoError(t, w.WriteUint(0, 8))
	}
	r := bitio.NewReader(w.Bytes())
	_, err := DecodeVariableParameter(r)
	require.ErrorIs(t, err, bitio.ErrInvalidDiscriminator)
}
