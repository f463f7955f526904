// Package varint implements the C-DIS fixed-width integer types ("variable"
// refers to the type being narrower than a machine word, not to a
// run-length encoding) and the compact mantissa/exponent float.
//
// Unsigned varint fields (entity id components, entity type components)
// carry a 1-bit selector choosing between a compact and a full predefined
// width; signed fields used elsewhere in the protocol have a single fixed
// width and no selector.
package varint

import (
	"fmt"
	"math"

	"github.com/rob-gra/cdis-codec/bitio"
)

// UVarIntKind names a predefined (compact-width, full-width) pair for an
// unsigned varint field.
type UVarIntKind struct {
	name                  string
	compactBits, fullBits int
}

// The three unsigned varint kinds used by entity identifier and entity
// type fields.
var (
	UVInt8Kind  = UVarIntKind{"UVINT8", 3, 8}
	UVInt16Kind = UVarIntKind{"UVINT16", 7, 16}
	UVInt32Kind = UVarIntKind{"UVINT32", 11, 32}
)

// UVarInt is an unsigned value of one of the kinds above, framed as a
// 1-bit selector followed by the selected width's value bits.
type UVarInt struct {
	Kind  UVarIntKind
	Value uint32
}

// NewUVarInt constructs a UVarInt, clamping value to the kind's full-width
// maximum.
func NewUVarInt(kind UVarIntKind, value uint32) UVarInt {
	max := uint32(1)<<uint(kind.fullBits) - 1
	if value > max {
		value = max
	}
	return UVarInt{Kind: kind, Value: value}
}

// BitSize returns the exact number of bits this value will occupy: the
// 1-bit selector plus whichever width the value fits.
func (v UVarInt) BitSize() int {
	if v.fitsCompact() {
		return 1 + v.Kind.compactBits
	}
	return 1 + v.Kind.fullBits
}

func (v UVarInt) fitsCompact() bool {
	max := uint32(1)<<uint(v.Kind.compactBits) - 1
	return v.Value <= max
}

// Encode writes the selector bit and value to c.
func (v UVarInt) Encode(c *bitio.Cursor) error {
	if v.fitsCompact() {
		if err := c.WriteUint(0, 1); err != nil {
			return err
		}
		return c.WriteUint(uint64(v.Value), v.Kind.compactBits)
	}
	if err := c.WriteUint(1, 1); err != nil {
		return err
	}
	return c.WriteUint(uint64(v.Value), v.Kind.fullBits)
}

// DecodeUVarInt reads a selector bit followed by the selected width's
// value bits.
func DecodeUVarInt(c *bitio.Cursor, kind UVarIntKind) (UVarInt, error) {
	sel, err := c.ReadUint(1)
	if err != nil {
		return UVarInt{}, err
	}
	bits := kind.compactBits
	if sel == 1 {
		bits = kind.fullBits
	}
	v, err := c.ReadUint(bits)
	if err != nil {
		return UVarInt{}, err
	}
	return UVarInt{Kind: kind, Value: uint32(v)}, nil
}

// SVarInt is a fixed-width two's complement signed value: 8, 12, 13, 14,
// 16 or 24 bits. Construction out of range saturates to the signed
// max/min of the configured width, matching the source's sentinel-
// preserving convention.
type SVarInt struct {
	Bits  int
	Value int32
}

// NewSVarInt constructs a SVarInt of the given width, saturating value to
// the representable range.
func NewSVarInt(bits int, value int32) SVarInt {
	lo := int32(-1) << uint(bits-1)
	hi := int32(1)<<uint(bits-1) - 1
	if value < lo {
		value = lo
	} else if value > hi {
		value = hi
	}
	return SVarInt{Bits: bits, Value: value}
}

// BitSize returns the fixed bit width.
func (v SVarInt) BitSize() int { return v.Bits }

// Encode writes the two's complement value to c.
func (v SVarInt) Encode(c *bitio.Cursor) error {
	return c.WriteInt(int64(v.Value), v.Bits)
}

// DecodeSVarInt reads a bits-wide two's complement value.
func DecodeSVarInt(c *bitio.Cursor, bits int) (SVarInt, error) {
	v, err := c.ReadInt(bits)
	if err != nil {
		return SVarInt{}, err
	}
	return SVarInt{Bits: bits, Value: int32(v)}, nil
}

// Float is the compact (mantissa, exponent) form of a CdisFloat.
type Float struct {
	Mantissa int32
	Exponent int32
}

// FloatCodec describes one instantiation of the compact float: the bit
// widths of its mantissa and exponent, and the base of the exponent
// (10 for parameter values; other instantiations may redefine it).
type FloatCodec struct {
	MantissaBits int
	ExponentBits int
	Base         float64
}

// ParameterValueFloat is the 15-bit-mantissa/3-bit-exponent/base-10
// instantiation used by variable parameter and datum records.
var ParameterValueFloat = FloatCodec{MantissaBits: 15, ExponentBits: 3, Base: 10}

func (fc FloatCodec) mantissaRange() (lo, hi int32) {
	hi = int32(1)<<uint(fc.MantissaBits-1) - 1
	lo = -hi - 1
	return
}

func (fc FloatCodec) exponentRange() (lo, hi int32) {
	hi = int32(1)<<uint(fc.ExponentBits-1) - 1
	lo = -hi - 1
	return
}

// Quantize finds the smallest exponent such that value's mantissa fits
// the configured mantissa width, per §4.2.
func (fc FloatCodec) Quantize(value float64) Float {
	if value == 0 {
		return Float{}
	}
	mLo, mHi := fc.mantissaRange()
	eLo, eHi := fc.exponentRange()
	for exp := eLo; exp <= eHi; exp++ {
		scaled := value / math.Pow(fc.Base, float64(exp))
		m := int64(math.Round(scaled))
		if m >= int64(mLo) && m <= int64(mHi) {
			return Float{Mantissa: int32(m), Exponent: exp}
		}
	}
	// Value too large to represent even at the widest exponent: saturate.
	if value > 0 {
		return Float{Mantissa: mHi, Exponent: eHi}
	}
	return Float{Mantissa: mLo, Exponent: eHi}
}

// Reconstruct computes mantissa * base^exponent.
func (fc FloatCodec) Reconstruct(f Float) float64 {
	return float64(f.Mantissa) * math.Pow(fc.Base, float64(f.Exponent))
}

// Encode writes the compact (mantissa, exponent) form to c.
func (fc FloatCodec) Encode(c *bitio.Cursor, f Float) error {
	if err := c.WriteInt(int64(f.Mantissa), fc.MantissaBits); err != nil {
		return fmt.Errorf("varint: float mantissa: %w", err)
	}
	if err := c.WriteInt(int64(f.Exponent), fc.ExponentBits); err != nil {
		return fmt.Errorf("varint: float exponent: %w", err)
	}
	return nil
}

// Decode reads the compact (mantissa, exponent) form from c.
func (fc FloatCodec) Decode(c *bitio.Cursor) (Float, error) {
	m, err := c.ReadInt(fc.MantissaBits)
	if err != nil {
		return Float{}, err
	}
	e, err := c.ReadInt(fc.ExponentBits)
	if err != nil {
		return Float{}, err
	}
	return Float{Mantissa: int32(m), Exponent: int32(e)}, nil
}
