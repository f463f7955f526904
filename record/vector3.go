// Package record implements the structured records carried inside a
// compact Entity State body (and the handful of other PDU bodies that
// reuse them): identifiers, kinematic vectors, coordinates, marking and
// variable parameters. Every record type exposes Encode/Decode against a
// bitio.Cursor and a BitLength method, per the wire layout in §6.
package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// Vector3 is three fixed-width signed components sharing one bit width,
// the shape used by orientation, linear velocity, linear acceleration and
// angular velocity.
type Vector3 struct {
	Bits    int
	X, Y, Z int32
}

// NewVector3 constructs a Vector3, saturating each component to the
// signed range of bits.
func NewVector3(bits int, x, y, z int32) Vector3 {
	return Vector3{
		Bits: bits,
		X:    varint.NewSVarInt(bits, x).Value,
		Y:    varint.NewSVarInt(bits, y).Value,
		Z:    varint.NewSVarInt(bits, z).Value,
	}
}

// BitLength is three times the shared component width.
func (v Vector3) BitLength() int { return 3 * v.Bits }

// Encode writes the three components in X, Y, Z order.
func (v Vector3) Encode(c *bitio.Cursor) error {
	for _, comp := range [3]int32{v.X, v.Y, v.Z} {
		if err := varint.NewSVarInt(v.Bits, comp).Encode(c); err != nil {
			return fmt.Errorf("record: vector3 component: %w", err)
		}
	}
	return nil
}

// DecodeVector3 reads a Vector3 of the given component width.
func DecodeVector3(c *bitio.Cursor, bits int) (Vector3, error) {
	var comps [3]int32
	for i := range comps {
		sv, err := varint.DecodeSVarInt(c, bits)
		if err != nil {
			return Vector3{}, fmt.Errorf("record: vector3 component: %w", err)
		}
		comps[i] = sv.Value
	}
	return Vector3{Bits: bits, X: comps[0], Y: comps[1], Z: comps[2]}, nil
}
