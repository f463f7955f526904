package pdu

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/varint"
)

// DatumBody is the shared frame for the eight datum-management PDU
// bodies named but not detailed by §4.7: Comment, Data, Set Data, Data
// Query, Event Report, Action Request, Action Response and
// Acknowledge. All eight carry an originating entity, a receiving
// entity, and the datum specification sub-record (record/datamgmt.go);
// Comment and Acknowledge carry no request id on the wire, so this
// frame always encodes one (zero for those two) to keep a single
// decode path for all eight types.
type DatumBody struct {
	OriginatingEntityID record.EntityID
	ReceivingEntityID   record.EntityID
	RequestID           varint.UVarInt
	Datums              record.DatumSpecification
}

// BitLength sums the datum body's component widths.
func (b DatumBody) BitLength() int {
	return b.OriginatingEntityID.BitLength() + b.ReceivingEntityID.BitLength() +
		b.RequestID.BitSize() + b.Datums.BitLength()
}

// Encode writes originating entity, receiving entity, request id, then
// the datum specification.
func (b DatumBody) Encode(c *bitio.Cursor) error {
	if err := b.OriginatingEntityID.Encode(c); err != nil {
		return fmt.Errorf("pdu: datum body originating entity id: %w", err)
	}
	if err := b.ReceivingEntityID.Encode(c); err != nil {
		return fmt.Errorf("pdu: datum body receiving entity id: %w", err)
	}
	if err := b.RequestID.Encode(c); err != nil {
		return fmt.Errorf("pdu: datum body request id: %w", err)
	}
	if err := b.Datums.Encode(c); err != nil {
		return fmt.Errorf("pdu: datum body datums: %w", err)
	}
	return nil
}

// DecodeDatumBody reads a DatumBody.
func DecodeDatumBody(c *bitio.Cursor) (DatumBody, error) {
	origin, err := record.DecodeEntityID(c)
	if err != nil {
		return DatumBody{}, fmt.Errorf("pdu: datum body originating entity id: %w", err)
	}
	receiving, err := record.DecodeEntityID(c)
	if err != nil {
		return DatumBody{}, fmt.Errorf("pdu: datum body receiving entity id: %w", err)
	}
	requestID, err := varint.DecodeUVarInt(c, varint.UVInt32Kind)
	if err != nil {
		return DatumBody{}, fmt.Errorf("pdu: datum body request id: %w", err)
	}
	datums, err := record.DecodeDatumSpecification(c)
	if err != nil {
		return DatumBody{}, fmt.Errorf("pdu: datum body datums: %w", err)
	}
	return DatumBody{OriginatingEntityID: origin, ReceivingEntityID: receiving, RequestID: requestID, Datums: datums}, nil
}
