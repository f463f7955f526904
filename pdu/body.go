package pdu

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/entitystate"
	"github.com/rob-gra/cdis-codec/record"
)

// Body is a decoded PDU's payload: exactly one of the fields below is
// meaningful, selected by the enclosing PDU's BodyType. This is a sum
// type over compile-time-known variants plus an opaque escape hatch,
// matching §9's "tagged union match, not virtual dispatch" note.
type Body struct {
	EntityState *entitystate.CompactBody
	IFF         *IFFBody
	Datum       *DatumBody
	Unsupported *UnsupportedBody
}

// IFFBody is the Identification Friend-or-Foe PDU body: an emitting
// entity, the event this report answers (or zeroes, for an
// unsolicited report), the system's operational status, and one
// fundamental-parameter layer. Grounded on dis-rs's IFF parser/builder
// pair (§4 supplement); always a full encode/decode, never touching
// the Entity State caches.
type IFFBody struct {
	EntityID    record.EntityID
	EventID     record.EntityID
	Operational record.IFFFundamentalOperationalData
	Layer       record.IFFLayer
}

// BitLength sums the IFF body's component widths.
func (b IFFBody) BitLength() int {
	return b.EntityID.BitLength() + b.EventID.BitLength() + b.Operational.BitLength() + b.Layer.BitLength()
}

// Encode writes entity id, event id, operational data, then the layer.
func (b IFFBody) Encode(c *bitio.Cursor) error {
	if err := b.EntityID.Encode(c); err != nil {
		return fmt.Errorf("pdu: iff entity id: %w", err)
	}
	if err := b.EventID.Encode(c); err != nil {
		return fmt.Errorf("pdu: iff event id: %w", err)
	}
	if err := b.Operational.Encode(c); err != nil {
		return fmt.Errorf("pdu: iff operational data: %w", err)
	}
	if err := b.Layer.Encode(c); err != nil {
		return fmt.Errorf("pdu: iff layer: %w", err)
	}
	return nil
}

// DecodeIFFBody reads an IFFBody.
func DecodeIFFBody(c *bitio.Cursor) (IFFBody, error) {
	entityID, err := record.DecodeEntityID(c)
	if err != nil {
		return IFFBody{}, fmt.Errorf("pdu: iff entity id: %w", err)
	}
	eventID, err := record.DecodeEntityID(c)
	if err != nil {
		return IFFBody{}, fmt.Errorf("pdu: iff event id: %w", err)
	}
	operational, err := record.DecodeIFFFundamentalOperationalData(c)
	if err != nil {
		return IFFBody{}, fmt.Errorf("pdu: iff operational data: %w", err)
	}
	layer, err := record.DecodeIFFLayer(c)
	if err != nil {
		return IFFBody{}, fmt.Errorf("pdu: iff layer: %w", err)
	}
	return IFFBody{EntityID: entityID, EventID: eventID, Operational: operational, Layer: layer}, nil
}

// UnsupportedBody carries the raw payload of a body-type code this
// module does not decode into a structured record, per §4.7/§7: such a
// PDU decodes cleanly rather than erroring, and never participates in
// state updates.
type UnsupportedBody struct {
	// PayloadBits is the exact bit length declared by the header for
	// this body, needed because the payload may not be byte-aligned in
	// the compact wire format.
	PayloadBits int
	Payload     []byte
}

// BitLength returns the declared payload width.
func (b UnsupportedBody) BitLength() int { return b.PayloadBits }

// Encode writes the opaque payload bit-by-bit, since the cursor is not
// guaranteed to be byte-aligned when an Unsupported body starts.
func (b UnsupportedBody) Encode(c *bitio.Cursor) error {
	remaining := b.PayloadBits
	for i := 0; remaining > 0; i++ {
		n := 8
		if remaining < 8 {
			n = remaining
		}
		var v byte
		if i < len(b.Payload) {
			v = b.Payload[i]
		}
		if err := c.WriteUint(uint64(v)>>uint(8-n), n); err != nil {
			return fmt.Errorf("pdu: unsupported body byte %d: %w", i, err)
		}
		remaining -= n
	}
	return nil
}

// DecodeUnsupportedBody reads bitLength bits of opaque payload.
func DecodeUnsupportedBody(c *bitio.Cursor, bitLength int) (UnsupportedBody, error) {
	out := UnsupportedBody{PayloadBits: bitLength}
	remaining := bitLength
	for remaining > 0 {
		n := 8
		if remaining < 8 {
			n = remaining
		}
		v, err := c.ReadUint(n)
		if err != nil {
			return UnsupportedBody{}, fmt.Errorf("pdu: unsupported body: %w", err)
		}
		out.Payload = append(out.Payload, byte(v)<<uint(8-n))
		remaining -= n
	}
	return out, nil
}
