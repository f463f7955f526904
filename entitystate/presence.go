package entitystate

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/varint"
)

// Presence is the fixed-width bitmap of which optional Entity State
// fields are carried in a particular compact frame, per §6.
type Presence uint16

// Presence bit positions, one per optional field named in §4.6 step 1.
const (
	PresenceForceID Presence = 1 << iota
	PresenceEntityType
	PresenceAltEntityType
	PresenceLinearVelocity
	PresenceLocation
	PresenceOrientation
	PresenceAppearance
	PresenceDeadReckoning
	PresenceMarking
	PresenceCapabilities
	PresenceVariableParameters

	// PresenceBits is the number of flags the bitmap carries.
	PresenceBits = 11
)

// Has reports whether flag is set.
func (p Presence) Has(flag Presence) bool { return p&flag != 0 }

// CompactBody is the bit-packed Entity State body.
type CompactBody struct {
	FullUpdate bool
	Units      scale.AltitudeUnits
	Presence   Presence
	EntityID   record.EntityID

	ForceID       varint.UVarInt
	EntityType    record.EntityType
	AltEntityType record.EntityType

	LinearVelocity record.Vector3
	Location       record.WorldCoordinates
	Orientation    record.Vector3
	Appearance     uint32
	DeadReckoning  record.DeadReckoningParameters
	Marking        record.Marking
	Capabilities   varint.UVarInt

	VariableParameters []record.VariableParameter
}

const appearanceBits = 32

// variableParameterCountKind frames the variable-parameter list's count.
var variableParameterCountKind = varint.UVInt8Kind

// BitLength computes the exact bit length this body will consume,
// summing the fixed header bits and every present optional field.
func (b CompactBody) BitLength() int {
	total := 1 + 1 + PresenceBits + b.EntityID.BitLength()
	if b.Presence.Has(PresenceForceID) {
		total += b.ForceID.BitSize()
	}
	if b.Presence.Has(PresenceEntityType) {
		total += b.EntityType.BitLength()
	}
	if b.Presence.Has(PresenceAltEntityType) {
		total += b.AltEntityType.BitLength()
	}
	if b.Presence.Has(PresenceLinearVelocity) {
		total += b.LinearVelocity.BitLength()
	}
	if b.Presence.Has(PresenceLocation) {
		total += b.Location.BitLength()
	}
	if b.Presence.Has(PresenceOrientation) {
		total += b.Orientation.BitLength()
	}
	if b.Presence.Has(PresenceAppearance) {
		total += appearanceBits
	}
	if b.Presence.Has(PresenceDeadReckoning) {
		total += b.DeadReckoning.BitLength()
	}
	if b.Presence.Has(PresenceMarking) {
		total += b.Marking.BitLength()
	}
	if b.Presence.Has(PresenceCapabilities) {
		total += b.Capabilities.BitSize()
	}
	if b.Presence.Has(PresenceVariableParameters) {
		total += varint.NewUVarInt(variableParameterCountKind, uint32(len(b.VariableParameters))).BitSize()
		for _, vp := range b.VariableParameters {
			total += vp.BitLength()
		}
	}
	return total
}

// Encode writes the units flag, full_update flag, presence bitmap,
// entity id, and every present optional field, in presence-bit order.
func (b CompactBody) Encode(c *bitio.Cursor) error {
	units := uint64(0)
	if b.Units == scale.AltitudeDekameters {
		units = 1
	}
	if err := c.WriteUint(units, 1); err != nil {
		return fmt.Errorf("entitystate: units flag: %w", err)
	}
	full := uint64(0)
	if b.FullUpdate {
		full = 1
	}
	if err := c.WriteUint(full, 1); err != nil {
		return fmt.Errorf("entitystate: full update flag: %w", err)
	}
	if err := c.WriteUint(uint64(b.Presence), PresenceBits); err != nil {
		return fmt.Errorf("entitystate: presence bitmap: %w", err)
	}
	if err := b.EntityID.Encode(c); err != nil {
		return fmt.Errorf("entitystate: entity id: %w", err)
	}
	if b.Presence.Has(PresenceForceID) {
		if err := b.ForceID.Encode(c); err != nil {
			return fmt.Errorf("entitystate: force id: %w", err)
		}
	}
	if b.Presence.Has(PresenceEntityType) {
		if err := b.EntityType.Encode(c); err != nil {
			return fmt.Errorf("entitystate: entity type: %w", err)
		}
	}
	if b.Presence.Has(PresenceAltEntityType) {
		if err := b.AltEntityType.Encode(c); err != nil {
			return fmt.Errorf("entitystate: alt entity type: %w", err)
		}
	}
	if b.Presence.Has(PresenceLinearVelocity) {
		if err := b.LinearVelocity.Encode(c); err != nil {
			return fmt.Errorf("entitystate: linear velocity: %w", err)
		}
	}
	if b.Presence.Has(PresenceLocation) {
		if err := b.Location.Encode(c); err != nil {
			return fmt.Errorf("entitystate: location: %w", err)
		}
	}
	if b.Presence.Has(PresenceOrientation) {
		if err := b.Orientation.Encode(c); err != nil {
			return fmt.Errorf("entitystate: orientation: %w", err)
		}
	}
	if b.Presence.Has(PresenceAppearance) {
		if err := c.WriteUint(uint64(b.Appearance), appearanceBits); err != nil {
			return fmt.Errorf("entitystate: appearance: %w", err)
		}
	}
	if b.Presence.Has(PresenceDeadReckoning) {
		if err := b.DeadReckoning.Encode(c); err != nil {
			return fmt.Errorf("entitystate: dead reckoning: %w", err)
		}
	}
	if b.Presence.Has(PresenceMarking) {
		if err := b.Marking.Encode(c); err != nil {
			return fmt.Errorf("entitystate: marking: %w", err)
		}
	}
	if b.Presence.Has(PresenceCapabilities) {
		if err := b.Capabilities.Encode(c); err != nil {
			return fmt.Errorf("entitystate: capabilities: %w", err)
		}
	}
	if b.Presence.Has(PresenceVariableParameters) {
		count := varint.NewUVarInt(variableParameterCountKind, uint32(len(b.VariableParameters)))
		if err := count.Encode(c); err != nil {
			return fmt.Errorf("entitystate: variable parameter count: %w", err)
		}
		for i, vp := range b.VariableParameters {
			if err := vp.Encode(c); err != nil {
				return fmt.Errorf("entitystate: variable parameter %d: %w", i, err)
			}
		}
	}
	return nil
}

// DecodeCompactBody reads a CompactBody.
func DecodeCompactBody(c *bitio.Cursor) (CompactBody, error) {
	var b CompactBody

	unitsBit, err := c.ReadUint(1)
	if err != nil {
		return CompactBody{}, fmt.Errorf("entitystate: units flag: %w", err)
	}
	if unitsBit == 1 {
		b.Units = scale.AltitudeDekameters
	} else {
		b.Units = scale.AltitudeCentimeters
	}

	fullBit, err := c.ReadUint(1)
	if err != nil {
		return CompactBody{}, fmt.Errorf("entitystate: full update flag: %w", err)
	}
	b.FullUpdate = fullBit == 1

	presence, err := c.ReadUint(PresenceBits)
	if err != nil {
		return CompactBody{}, fmt.Errorf("entitystate: presence bitmap: %w", err)
	}
	b.Presence = Presence(presence)

	b.EntityID, err = record.DecodeEntityID(c)
	if err != nil {
		return CompactBody{}, fmt.Errorf("entitystate: entity id: %w", err)
	}

	if b.Presence.Has(PresenceForceID) {
		b.ForceID, err = varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: force id: %w", err)
		}
	}
	if b.Presence.Has(PresenceEntityType) {
		b.EntityType, err = record.DecodeEntityType(c)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: entity type: %w", err)
		}
	}
	if b.Presence.Has(PresenceAltEntityType) {
		b.AltEntityType, err = record.DecodeEntityType(c)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: alt entity type: %w", err)
		}
	}
	if b.Presence.Has(PresenceLinearVelocity) {
		b.LinearVelocity, err = record.DecodeVector3(c, record.LinearVelocityBits)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: linear velocity: %w", err)
		}
	}
	if b.Presence.Has(PresenceLocation) {
		b.Location, err = record.DecodeWorldCoordinatesRecord(c)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: location: %w", err)
		}
	}
	if b.Presence.Has(PresenceOrientation) {
		b.Orientation, err = record.DecodeVector3(c, record.OrientationBits)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: orientation: %w", err)
		}
	}
	if b.Presence.Has(PresenceAppearance) {
		v, err := c.ReadUint(appearanceBits)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: appearance: %w", err)
		}
		b.Appearance = uint32(v)
	}
	if b.Presence.Has(PresenceDeadReckoning) {
		b.DeadReckoning, err = record.DecodeDeadReckoningParameters(c)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: dead reckoning: %w", err)
		}
	}
	if b.Presence.Has(PresenceMarking) {
		b.Marking, err = record.DecodeMarking(c)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: marking: %w", err)
		}
	}
	if b.Presence.Has(PresenceCapabilities) {
		b.Capabilities, err = varint.DecodeUVarInt(c, varint.UVInt32Kind)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: capabilities: %w", err)
		}
	}
	if b.Presence.Has(PresenceVariableParameters) {
		count, err := varint.DecodeUVarInt(c, variableParameterCountKind)
		if err != nil {
			return CompactBody{}, fmt.Errorf("entitystate: variable parameter count: %w", err)
		}
		b.VariableParameters = make([]record.VariableParameter, count.Value)
		for i := range b.VariableParameters {
			vp, err := record.DecodeVariableParameter(c)
			if err != nil {
				return CompactBody{}, fmt.Errorf("entitystate: variable parameter %d: %w", i, err)
			}
			b.VariableParameters[i] = vp
		}
	}
	return b, nil
}
