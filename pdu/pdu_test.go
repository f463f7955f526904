package pdu

import (
	"testing"
	"time"

	"github.com/rob-gra/cdis-codec/entitystate"
	"github.com/rob-gra/cdis-codec/enum"
	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/state"
	"github.com/rob-gra/cdis-codec/varint"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCompactPDU_EntityState(t *testing.T) {
	enc := state.NewEncoderState()
	body := entitystate.Body{
		EntityID:   record.NewEntityID(7, 127, 255),
		ForceID:    8,
		EntityType: record.NewEntityType(1, 2, 153, 0, 0, 0, 0),
		Marking:    "TEST",
	}
	compact, _, err := entitystate.Encode(body, enc, entitystate.NewFullUpdateOptions(), time.Unix(0, 0))
	require.NoError(t, err)

	header := NewCompactHeader(enum.BodyEntityState, 1)
	header, buf, err := EncodeCompactPDU(header, compact)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	gotHeader, gotBody, err := DecodePDU(buf)
	require.NoError(t, err)
	require.Equal(t, header.BodyType, gotHeader.BodyType)
	require.NotNil(t, gotBody.EntityState)
	require.Equal(t, compact.EntityID, gotBody.EntityState.EntityID)
}

func TestEncodeDecodeCompactPDU_DataQuery(t *testing.T) {
	body := DatumBody{
		OriginatingEntityID: record.NewEntityID(1, 1, 1),
		ReceivingEntityID:   record.NewEntityID(1, 1, 2),
		RequestID:           varint.NewUVarInt(varint.UVInt32Kind, 42),
		Datums: record.DatumSpecification{
			FixedDatums: []record.FixedDatum{
				{ID: varint.NewUVarInt(varint.UVInt32Kind, 7), Value: varint.ParameterValueFloat.Quantize(1.5)},
			},
		},
	}

	header := NewCompactHeader(enum.BodyDataQuery, 1)
	_, buf, err := EncodeCompactPDU(header, body)
	require.NoError(t, err)

	gotHeader, gotBody, err := DecodePDU(buf)
	require.NoError(t, err)
	require.Equal(t, enum.BodyDataQuery, gotHeader.BodyType)
	require.NotNil(t, gotBody.Datum)
	require.Equal(t, body.OriginatingEntityID, gotBody.Datum.OriginatingEntityID)
	require.Equal(t, body.RequestID.Value, gotBody.Datum.RequestID.Value)
	require.Len(t, gotBody.Datum.Datums.FixedDatums, 1)
}

func TestDecodePDU_UnknownBodyTypeDecodesAsUnsupported(t *testing.T) {
	header := NewCompactHeader(enum.BodyTypeFromInt(250), 1)
	body := UnsupportedBody{PayloadBits: 16, Payload: []byte{0xAB, 0xCD}}
	_, buf, err := EncodeCompactPDU(header, body)
	require.NoError(t, err)

	_, gotBody, err := DecodePDU(buf)
	require.NoError(t, err)
	require.NotNil(t, gotBody.Unsupported)
	require.Equal(t, []byte{0xAB, 0xCD}, gotBody.Unsupported.Payload)
}
