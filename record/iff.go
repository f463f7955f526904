package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// IFFFundamentalOperationalData is the system-status part of an IFF PDU
// body, carried ahead of any fundamental-parameter layers.
type IFFFundamentalOperationalData struct {
	SystemType   varint.UVarInt
	SystemName   varint.UVarInt
	SystemMode   varint.UVarInt
	ChangeOptions varint.UVarInt
}

// BitLength sums the four UVINT8 fields.
func (d IFFFundamentalOperationalData) BitLength() int {
	return d.SystemType.BitSize() + d.SystemName.BitSize() + d.SystemMode.BitSize() + d.ChangeOptions.BitSize()
}

// Encode writes system type, name, mode, then change options.
func (d IFFFundamentalOperationalData) Encode(c *bitio.Cursor) error {
	if err := d.SystemType.Encode(c); err != nil {
		return fmt.Errorf("record: iff system type: %w", err)
	}
	if err := d.SystemName.Encode(c); err != nil {
		return fmt.Errorf("record: iff system name: %w", err)
	}
	if err := d.SystemMode.Encode(c); err != nil {
		return fmt.Errorf("record: iff system mode: %w", err)
	}
	if err := d.ChangeOptions.Encode(c); err != nil {
		return fmt.Errorf("record: iff change options: %w", err)
	}
	return nil
}

// DecodeIFFFundamentalOperationalData reads the operational-data block.
func DecodeIFFFundamentalOperationalData(c *bitio.Cursor) (IFFFundamentalOperationalData, error) {
	systemType, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return IFFFundamentalOperationalData{}, fmt.Errorf("record: iff system type: %w", err)
	}
	systemName, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return IFFFundamentalOperationalData{}, fmt.Errorf("record: iff system name: %w", err)
	}
	systemMode, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return IFFFundamentalOperationalData{}, fmt.Errorf("record: iff system mode: %w", err)
	}
	changeOptions, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return IFFFundamentalOperationalData{}, fmt.Errorf("record: iff change options: %w", err)
	}
	return IFFFundamentalOperationalData{
		SystemType: systemType, SystemName: systemName, SystemMode: systemMode, ChangeOptions: changeOptions,
	}, nil
}

// IFFLayer is a single fundamental-parameter layer: a header describing
// its length, followed by the beam data it carries.
type IFFLayer struct {
	Header LayerHeader
	Beam   BeamData
}

// BitLength sums the header and beam data widths.
func (l IFFLayer) BitLength() int { return l.Header.BitLength() + l.Beam.BitLength() }

// Encode writes the header then the beam data.
func (l IFFLayer) Encode(c *bitio.Cursor) error {
	if err := l.Header.Encode(c); err != nil {
		return fmt.Errorf("record: iff layer header: %w", err)
	}
	if err := l.Beam.Encode(c); err != nil {
		return fmt.Errorf("record: iff layer beam data: %w", err)
	}
	return nil
}

// DecodeIFFLayer reads an IFFLayer.
func DecodeIFFLayer(c *bitio.Cursor) (IFFLayer, error) {
	h, err := DecodeLayerHeader(c)
	if err != nil {
		return IFFLayer{}, fmt.Errorf("record: iff layer header: %w", err)
	}
	b, err := DecodeBeamData(c)
	if err != nil {
		return IFFLayer{}, fmt.Errorf("record: iff layer beam data: %w", err)
	}
	return IFFLayer{Header: h, Beam: b}, nil
}
