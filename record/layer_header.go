package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// LayerHeader precedes each additional-information layer appended after
// the core fields of a layered PDU body (e.g. an IFF PDU's fundamental
// parameter layer). LayerNumber and LayerSpecificInformation are UVINT8
// and Length is UVINT16; the payload bit
// length is Length bytes' worth, tracked by the caller.
type LayerHeader struct {
	LayerNumber    varint.UVarInt
	LayerSpecificInformation varint.UVarInt
	Length         varint.UVarInt
}

// NewLayerHeader builds a LayerHeader from standard-format fields.
func NewLayerHeader(layerNumber, layerSpecificInfo, length uint32) LayerHeader {
	return LayerHeader{
		LayerNumber:              varint.NewUVarInt(varint.UVInt8Kind, layerNumber),
		LayerSpecificInformation: varint.NewUVarInt(varint.UVInt8Kind, layerSpecificInfo),
		Length:                   varint.NewUVarInt(varint.UVInt16Kind, length),
	}
}

// BitLength sums the three UVarInt selector+value widths.
func (h LayerHeader) BitLength() int {
	return h.LayerNumber.BitSize() + h.LayerSpecificInformation.BitSize() + h.Length.BitSize()
}

// Encode writes layer number, layer-specific information, then length.
func (h LayerHeader) Encode(c *bitio.Cursor) error {
	if err := h.LayerNumber.Encode(c); err != nil {
		return fmt.Errorf("record: layer header number: %w", err)
	}
	if err := h.LayerSpecificInformation.Encode(c); err != nil {
		return fmt.Errorf("record: layer header info: %w", err)
	}
	if err := h.Length.Encode(c); err != nil {
		return fmt.Errorf("record: layer header length: %w", err)
	}
	return nil
}

// DecodeLayerHeader reads a LayerHeader.
func DecodeLayerHeader(c *bitio.Cursor) (LayerHeader, error) {
	num, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return LayerHeader{}, fmt.Errorf("record: layer header number: %w", err)
	}
	info, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return LayerHeader{}, fmt.Errorf("record: layer header info: %w", err)
	}
	length, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
	if err != nil {
		return LayerHeader{}, fmt.Errorf("record: layer header length: %w", err)
	}
	return LayerHeader{LayerNumber: num, LayerSpecificInformation: info, Length: length}, nil
}
