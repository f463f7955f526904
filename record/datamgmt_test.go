package record

import (
	"testing"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
	"github.com/stretchr/testify/require"
)

func TestDatumSpecification_RoundTrip(t *testing.T) {
	spec := DatumSpecification{
		FixedDatums: []FixedDatum{
			{ID: varint.NewUVarInt(varint.UVInt32Kind, 1), Value: varint.ParameterValueFloat.Quantize(2.5)},
		},
		VariableDatums: []VariableDatum{
			{ID: varint.NewUVarInt(varint.UVInt32Kind, 2), Payload: []byte("hello")},
		},
	}

	w := bitio.NewWriter(0)
	require.NoError(t, spec.Encode(w))
	require.Equal(t, spec.BitLength(), w.PositionBits())

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeDatumSpecification(r)
	require.NoError(t, err)
	require.Equal(t, spec.FixedDatums[0].ID.Value, got.FixedDatums[0].ID.Value)
	require.Equal(t, spec.VariableDatums[0].Payload, got.VariableDatums[0].Payload)
}

func TestDatumSpecification_EmptyRoundTrip(t *testing.T) {
	spec := DatumSpecification{}

	w := bitio.NewWriter(0)
	require.NoError(t, spec.Encode(w))

	r := bitio.NewReader(w.Bytes())
	got, err := DecodeDatumSpecification(r)
	require.NoError(t, err)
	require.Empty(t, got.FixedDatums)
	require.Empty(t, got.VariableDatums)
}
