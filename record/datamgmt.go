package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// FixedDatum is a (datum id, value) pair with a fixed-width value, used
// by Comment/Data/SetData/DataQuery/EventReport/ActionRequest/
// ActionResponse/Acknowledge bodies.
type FixedDatum struct {
	ID    varint.UVarInt
	Value varint.Float
}

// BitLength sums the id selector+value width and the fixed float width.
func (d FixedDatum) BitLength() int {
	return d.ID.BitSize() + varint.ParameterValueFloat.MantissaBits + varint.ParameterValueFloat.ExponentBits
}

// Encode writes id then value.
func (d FixedDatum) Encode(c *bitio.Cursor) error {
	if err := d.ID.Encode(c); err != nil {
		return fmt.Errorf("record: fixed datum id: %w", err)
	}
	return varint.ParameterValueFloat.Encode(c, d.Value)
}

// DecodeFixedDatum reads a FixedDatum.
func DecodeFixedDatum(c *bitio.Cursor) (FixedDatum, error) {
	id, err := varint.DecodeUVarInt(c, varint.UVInt32Kind)
	if err != nil {
		return FixedDatum{}, fmt.Errorf("record: fixed datum id: %w", err)
	}
	v, err := varint.ParameterValueFloat.Decode(c)
	if err != nil {
		return FixedDatum{}, err
	}
	return FixedDatum{ID: id, Value: v}, nil
}

// VariableDatum is a (datum id, opaque byte payload) pair whose length in
// bytes is carried as a UVINT16 ahead of the payload.
type VariableDatum struct {
	ID      varint.UVarInt
	Payload []byte
}

// BitLength sums the id width, a 16-bit-varint-framed length, and the
// payload itself (byte-aligned).
func (d VariableDatum) BitLength() int {
	lengthField := varint.NewUVarInt(varint.UVInt16Kind, uint32(len(d.Payload)))
	return d.ID.BitSize() + lengthField.BitSize() + len(d.Payload)*8
}

// Encode writes id, byte length, then the payload bytes.
func (d VariableDatum) Encode(c *bitio.Cursor) error {
	if err := d.ID.Encode(c); err != nil {
		return fmt.Errorf("record: variable datum id: %w", err)
	}
	length := varint.NewUVarInt(varint.UVInt16Kind, uint32(len(d.Payload)))
	if err := length.Encode(c); err != nil {
		return fmt.Errorf("record: variable datum length: %w", err)
	}
	for _, b := range d.Payload {
		if err := c.WriteUint(uint64(b), 8); err != nil {
			return fmt.Errorf("record: variable datum payload: %w", err)
		}
	}
	return nil
}

// DecodeVariableDatum reads a VariableDatum.
func DecodeVariableDatum(c *bitio.Cursor) (VariableDatum, error) {
	id, err := varint.DecodeUVarInt(c, varint.UVInt32Kind)
	if err != nil {
		return VariableDatum{}, fmt.Errorf("record: variable datum id: %w", err)
	}
	length, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
	if err != nil {
		return VariableDatum{}, fmt.Errorf("record: variable datum length: %w", err)
	}
	payload := make([]byte, length.Value)
	for i := range payload {
		b, err := c.ReadUint(8)
		if err != nil {
			return VariableDatum{}, fmt.Errorf("record: variable datum payload: %w", err)
		}
		payload[i] = byte(b)
	}
	return VariableDatum{ID: id, Payload: payload}, nil
}

// DatumSpecification is the shared sub-record carried by every datum-
// management PDU body: counts of fixed and variable datums followed by
// the datums themselves.
type DatumSpecification struct {
	FixedDatums    []FixedDatum
	VariableDatums []VariableDatum
}

// fixedCountKind and variableCountKind frame the two datum-count fields.
var fixedCountKind = varint.UVInt8Kind
var variableCountKind = varint.UVInt8Kind

// BitLength sums both count fields and every datum's own bit length.
func (s DatumSpecification) BitLength() int {
	total := varint.NewUVarInt(fixedCountKind, uint32(len(s.FixedDatums))).BitSize() +
		varint.NewUVarInt(variableCountKind, uint32(len(s.VariableDatums))).BitSize()
	for _, d := range s.FixedDatums {
		total += d.BitLength()
	}
	for _, d := range s.VariableDatums {
		total += d.BitLength()
	}
	return total
}

// Encode writes both counts, then every fixed datum, then every variable
// datum.
func (s DatumSpecification) Encode(c *bitio.Cursor) error {
	if err := varint.NewUVarInt(fixedCountKind, uint32(len(s.FixedDatums))).Encode(c); err != nil {
		return fmt.Errorf("record: datum spec fixed count: %w", err)
	}
	if err := varint.NewUVarInt(variableCountKind, uint32(len(s.VariableDatums))).Encode(c); err != nil {
		return fmt.Errorf("record: datum spec variable count: %w", err)
	}
	for i, d := range s.FixedDatums {
		if err := d.Encode(c); err != nil {
			return fmt.Errorf("record: datum spec fixed datum %d: %w", i, err)
		}
	}
	for i, d := range s.VariableDatums {
		if err := d.Encode(c); err != nil {
			return fmt.Errorf("record: datum spec variable datum %d: %w", i, err)
		}
	}
	return nil
}

// DecodeDatumSpecification reads a DatumSpecification.
func DecodeDatumSpecification(c *bitio.Cursor) (DatumSpecification, error) {
	fixedCount, err := varint.DecodeUVarInt(c, fixedCountKind)
	if err != nil {
		return DatumSpecification{}, fmt.Errorf("record: datum spec fixed count: %w", err)
	}
	variableCount, err := varint.DecodeUVarInt(c, variableCountKind)
	if err != nil {
		return DatumSpecification{}, fmt.Errorf("record: datum spec variable count: %w", err)
	}
	fixed := make([]FixedDatum, fixedCount.Value)
	for i := range fixed {
		d, err := DecodeFixedDatum(c)
		if err != nil {
			return DatumSpecification{}, fmt.Errorf("record: datum spec fixed datum %d: %w", i, err)
		}
		fixed[i] = d
	}
	variable := make([]VariableDatum, variableCount.Value)
	for i := range variable {
		d, err := DecodeVariableDatum(c)
		if err != nil {
			return DatumSpecification{}, fmt.Errorf("record: datum spec variable datum %d: %w", i, err)
		}
		variable[i] = d
	}
	return DatumSpecification{FixedDatums: fixed, VariableDatums: variable}, nil
}
