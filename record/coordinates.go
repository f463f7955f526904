package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/scale"
)

// Bit widths for the coordinate records, per §6.
const (
	WorldCoordinateLatLonBits = 32
	WorldCoordinateAltBits    = 24
	EntityCoordinateBits      = 16
)

// WorldCoordinates is a compact (latitude, longitude, altitude) location
// whose altitude unit (centimeters vs dekameters) is carried in the
// parent Entity State frame's units flag, not in this record.
type WorldCoordinates struct {
	LatScaled, LonScaled int32
	Altitude             int32
}

// BitLength is fixed for WorldCoordinates.
func (WorldCoordinates) BitLength() int {
	return WorldCoordinateLatLonBits*2 + WorldCoordinateAltBits
}

// EncodeWorldCoordinates converts an ECEF position to the compact form
// and the units flag that must be threaded into the parent frame.
func EncodeWorldCoordinates(e scale.ECEF) (WorldCoordinates, scale.AltitudeUnits) {
	lat, lon, alt, units := scale.EncodeWorldCoordinates(e)
	return WorldCoordinates{LatScaled: lat, LonScaled: lon, Altitude: alt}, units
}

// Decode reconstructs the ECEF position given the parent frame's units
// flag.
func (w WorldCoordinates) Decode(units scale.AltitudeUnits) scale.ECEF {
	return scale.DecodeWorldCoordinates(w.LatScaled, w.LonScaled, w.Altitude, units)
}

// Encode writes latitude, longitude, altitude in that order.
func (w WorldCoordinates) Encode(c *bitio.Cursor) error {
	if err := c.WriteInt(int64(w.LatScaled), WorldCoordinateLatLonBits); err != nil {
		return fmt.Errorf("record: world coordinates latitude: %w", err)
	}
	if err := c.WriteInt(int64(w.LonScaled), WorldCoordinateLatLonBits); err != nil {
		return fmt.Errorf("record: world coordinates longitude: %w", err)
	}
	if err := c.WriteInt(int64(w.Altitude), WorldCoordinateAltBits); err != nil {
		return fmt.Errorf("record: world coordinates altitude: %w", err)
	}
	return nil
}

// DecodeWorldCoordinatesRecord reads a WorldCoordinates record.
func DecodeWorldCoordinatesRecord(c *bitio.Cursor) (WorldCoordinates, error) {
	lat, err := c.ReadInt(WorldCoordinateLatLonBits)
	if err != nil {
		return WorldCoordinates{}, fmt.Errorf("record: world coordinates latitude: %w", err)
	}
	lon, err := c.ReadInt(WorldCoordinateLatLonBits)
	if err != nil {
		return WorldCoordinates{}, fmt.Errorf("record: world coordinates longitude: %w", err)
	}
	alt, err := c.ReadInt(WorldCoordinateAltBits)
	if err != nil {
		return WorldCoordinates{}, fmt.Errorf("record: world coordinates altitude: %w", err)
	}
	return WorldCoordinates{LatScaled: int32(lat), LonScaled: int32(lon), Altitude: int32(alt)}, nil
}

// EntityCoordinateVector is a compact (x, y, z) offset attached to the
// entity separation variable parameter, whose units flag (meters vs
// centimeters) is carried alongside it.
type EntityCoordinateVector struct {
	X, Y, Z int32
}

// BitLength is fixed for EntityCoordinateVector.
func (EntityCoordinateVector) BitLength() int { return EntityCoordinateBits * 3 }

// EncodeEntityCoordinateVector picks meters or centimeters per §4.3 and
// returns the compact vector plus the chosen units flag.
func EncodeEntityCoordinateVector(x, y, z float64) (EntityCoordinateVector, scale.EntityCoordinateUnits) {
	vx, vy, vz, units := scale.EncodeEntityCoordinateVector(x, y, z)
	return EntityCoordinateVector{X: vx, Y: vy, Z: vz}, units
}

// Decode reconstructs meter components given the associated units flag.
func (v EntityCoordinateVector) Decode(units scale.EntityCoordinateUnits) (x, y, z float64) {
	return scale.DecodeEntityCoordinateVector(v.X, v.Y, v.Z, units)
}

// Encode writes x, y, z in that order.
func (v EntityCoordinateVector) Encode(c *bitio.Cursor) error {
	if err := c.WriteInt(int64(v.X), EntityCoordinateBits); err != nil {
		return fmt.Errorf("record: entity coordinate vector x: %w", err)
	}
	if err := c.WriteInt(int64(v.Y), EntityCoordinateBits); err != nil {
		return fmt.Errorf("record: entity coordinate vector y: %w", err)
	}
	if err := c.WriteInt(int64(v.Z), EntityCoordinateBits); err != nil {
		return fmt.Errorf("record: entity coordinate vector z: %w", err)
	}
	return nil
}

// DecodeEntityCoordinateVectorRecord reads an EntityCoordinateVector.
func DecodeEntityCoordinateVectorRecord(c *bitio.Cursor) (EntityCoordinateVector, error) {
	x, err := c.ReadInt(EntityCoordinateBits)
	if err != nil {
		return EntityCoordinateVector{}, fmt.Errorf("record: entity coordinate vector x: %w", err)
	}
	y, err := c.ReadInt(EntityCoordinateBits)
	if err != nil {
		return EntityCoordinateVector{}, fmt.Errorf("record: entity coordinate vector y: %w", err)
	}
	z, err := c.ReadInt(EntityCoordinateBits)
	if err != nil {
		return EntityCoordinateVector{}, fmt.Errorf("record: entity coordinate vector z: %w", err)
	}
	return EntityCoordinateVector{X: int32(x), Y: int32(y), Z: int32(z)}, nil
}
