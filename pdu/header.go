// Package pdu composes the record and entitystate packages into full
// PDUs: the standard (byte-aligned) and compact (bit-packed) headers,
// and the body-type dispatcher that routes a decoded header to the
// matching body codec or an opaque Unsupported fallthrough (§4.7, §6).
package pdu

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/enum"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/varint"
)

// ProtocolVersion is the standard header's protocol-version byte. Both
// historical shapes (dis_lib's v6 and v7 model trees) share the same
// byte position; only the protocol-family byte's interpretation and the
// presence of a meaningful PDU-status semantics differ downstream, which
// callers branch on via the Version field rather than a second header
// shape.
type ProtocolVersion uint8

const (
	ProtocolVersionV6 ProtocolVersion = 6
	ProtocolVersionV7 ProtocolVersion = 7
)

// StandardHeaderBytes is the fixed size of a standard PDU header.
const StandardHeaderBytes = 12

// StandardHeader is the byte-aligned, big-endian 12-byte PDU header.
type StandardHeader struct {
	Version           ProtocolVersion
	ExerciseID        uint8
	BodyType          enum.BodyType
	ProtocolFamily    uint8
	TimestampUnits    uint32 // units-past-the-hour, DIS timebase
	TimestampAbsolute bool
	TotalLengthBytes  uint16
	Status            uint8
}

// Encode writes the 12-byte standard header, including one padding
// byte, at the cursor's current (byte-aligned) position.
func (h StandardHeader) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(h.Version), 8); err != nil {
		return fmt.Errorf("pdu: standard header version: %w", err)
	}
	if err := c.WriteUint(uint64(h.ExerciseID), 8); err != nil {
		return fmt.Errorf("pdu: standard header exercise id: %w", err)
	}
	if err := c.WriteUint(uint64(h.BodyType.Int()), 8); err != nil {
		return fmt.Errorf("pdu: standard header body type: %w", err)
	}
	if err := c.WriteUint(uint64(h.ProtocolFamily), 8); err != nil {
		return fmt.Errorf("pdu: standard header protocol family: %w", err)
	}
	ts := scale.EncodeTimestamp(h.TimestampUnits, h.TimestampAbsolute)
	if err := c.WriteUint(uint64(ts), 32); err != nil {
		return fmt.Errorf("pdu: standard header timestamp: %w", err)
	}
	if err := c.WriteUint(uint64(h.TotalLengthBytes), 16); err != nil {
		return fmt.Errorf("pdu: standard header total length: %w", err)
	}
	if err := c.WriteUint(uint64(h.Status), 8); err != nil {
		return fmt.Errorf("pdu: standard header status: %w", err)
	}
	return c.WriteUint(0, 8) // padding byte
}

// DecodeStandardHeader reads a 12-byte standard header.
func DecodeStandardHeader(c *bitio.Cursor) (StandardHeader, error) {
	var h StandardHeader
	v, err := c.ReadUint(8)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header version: %w", err)
	}
	h.Version = ProtocolVersion(v)

	ex, err := c.ReadUint(8)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header exercise id: %w", err)
	}
	h.ExerciseID = uint8(ex)

	bt, err := c.ReadUint(8)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header body type: %w", err)
	}
	h.BodyType = enum.BodyTypeFromInt(uint8(bt))

	pf, err := c.ReadUint(8)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header protocol family: %w", err)
	}
	h.ProtocolFamily = uint8(pf)

	ts, err := c.ReadUint(32)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header timestamp: %w", err)
	}
	h.TimestampUnits, h.TimestampAbsolute = scale.DecodeTimestamp(uint32(ts))

	total, err := c.ReadUint(16)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header total length: %w", err)
	}
	h.TotalLengthBytes = uint16(total)

	status, err := c.ReadUint(8)
	if err != nil {
		return StandardHeader{}, fmt.Errorf("pdu: standard header status: %w", err)
	}
	h.Status = uint8(status)

	if _, err := c.ReadUint(8); err != nil { // padding byte
		return StandardHeader{}, fmt.Errorf("pdu: standard header padding: %w", err)
	}
	return h, nil
}

// CompactProtocolVersion is the compact header's 2-bit version tag.
type CompactProtocolVersion uint8

const (
	// CompactVersionShim marks a standard PDU carried through a
	// compact-capable transport unmodified.
	CompactVersionShim CompactProtocolVersion = 0
	// CompactVersionV1 is the bit-packed C-DIS wire format this module
	// implements.
	CompactVersionV1 CompactProtocolVersion = 1
)

const (
	compactVersionBits       = 2
	compactTimestampUnitBits = 26
	compactLengthBits        = 14
	compactExerciseIDKind    = varint.UVInt8Kind
)

// CompactHeader is the bit-packed C-DIS PDU header.
type CompactHeader struct {
	Version           CompactProtocolVersion
	ExerciseID        varint.UVarInt
	BodyType          enum.BodyType
	TimestampUnits    uint32 // units-past-the-hour, C-DIS timebase
	TimestampAbsolute bool
	TotalLengthBits   uint16
	Status            uint8
}

// NewCompactHeader builds a CompactHeader, saturating exercise id into
// its varint kind.
func NewCompactHeader(bodyType enum.BodyType, exerciseID uint32) CompactHeader {
	return CompactHeader{
		Version:    CompactVersionV1,
		ExerciseID: varint.NewUVarInt(compactExerciseIDKind, exerciseID),
		BodyType:   bodyType,
	}
}

// BitLength returns the header's exact encoded width.
func (h CompactHeader) BitLength() int {
	return compactVersionBits + h.ExerciseID.BitSize() + 8 + compactTimestampUnitBits + 1 + compactLengthBits + 8
}

// Encode writes the compact header.
func (h CompactHeader) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(h.Version), compactVersionBits); err != nil {
		return fmt.Errorf("pdu: compact header version: %w", err)
	}
	if err := h.ExerciseID.Encode(c); err != nil {
		return fmt.Errorf("pdu: compact header exercise id: %w", err)
	}
	if err := c.WriteUint(uint64(h.BodyType.Int()), 8); err != nil {
		return fmt.Errorf("pdu: compact header body type: %w", err)
	}
	if err := c.WriteUint(uint64(h.TimestampUnits), compactTimestampUnitBits); err != nil {
		return fmt.Errorf("pdu: compact header timestamp units: %w", err)
	}
	abs := uint64(0)
	if h.TimestampAbsolute {
		abs = 1
	}
	if err := c.WriteUint(abs, 1); err != nil {
		return fmt.Errorf("pdu: compact header timestamp flag: %w", err)
	}
	if err := c.WriteUint(uint64(h.TotalLengthBits), compactLengthBits); err != nil {
		return fmt.Errorf("pdu: compact header total length: %w", err)
	}
	return c.WriteUint(uint64(h.Status), 8)
}

// DecodeCompactHeader reads a CompactHeader. The caller must check
// Version before interpreting the body; a version this module does not
// implement should be surfaced as ErrUnsupportedVersion rather than
// attempting to decode the body.
func DecodeCompactHeader(c *bitio.Cursor) (CompactHeader, error) {
	var h CompactHeader
	v, err := c.ReadUint(compactVersionBits)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header version: %w", err)
	}
	h.Version = CompactProtocolVersion(v)

	h.ExerciseID, err = varint.DecodeUVarInt(c, compactExerciseIDKind)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header exercise id: %w", err)
	}

	bt, err := c.ReadUint(8)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header body type: %w", err)
	}
	h.BodyType = enum.BodyTypeFromInt(uint8(bt))

	units, err := c.ReadUint(compactTimestampUnitBits)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header timestamp units: %w", err)
	}
	h.TimestampUnits = uint32(units)

	flag, err := c.ReadUint(1)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header timestamp flag: %w", err)
	}
	h.TimestampAbsolute = flag == 1

	total, err := c.ReadUint(compactLengthBits)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header total length: %w", err)
	}
	h.TotalLengthBits = uint16(total)

	status, err := c.ReadUint(8)
	if err != nil {
		return CompactHeader{}, fmt.Errorf("pdu: compact header status: %w", err)
	}
	h.Status = uint8(status)
	return h, nil
}
