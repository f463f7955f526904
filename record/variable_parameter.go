package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/varint"
)

// Variable parameter discriminators, 4 bits wide per §4.4.
const (
	VPDiscriminatorArticulatedPart uint8 = 0
	VPDiscriminatorAttachedPart    uint8 = 1
	VPDiscriminatorEntitySeparation uint8 = 2
	VPDiscriminatorEntityTypeAssoc  uint8 = 3
	VPDiscriminatorEntityAssociation uint8 = 4
	VPDiscriminatorUnspecified      uint8 = 15

	vpDiscriminatorBits = 4
	// unspecifiedPayloadBits mirrors the standard 16-byte variable
	// parameter record minus its 1-byte type field.
	unspecifiedPayloadBits = 120
)

// VariableParameter is one arm of the variable-parameter tagged union
// attached to Entity State.
type VariableParameter interface {
	Discriminator() uint8
	BitLength() int
	Encode(c *bitio.Cursor) error
}

// ArticulatedPart describes a moving sub-part (turret, gun barrel, ...).
type ArticulatedPart struct {
	ChangeIndicator varint.UVarInt
	AttachmentID    varint.UVarInt
	ParameterType   varint.UVarInt
	ParameterValue  varint.Float
}

func (ArticulatedPart) Discriminator() uint8 { return VPDiscriminatorArticulatedPart }

func (p ArticulatedPart) BitLength() int {
	return vpDiscriminatorBits + p.ChangeIndicator.BitSize() + p.AttachmentID.BitSize() +
		p.ParameterType.BitSize() + varint.ParameterValueFloat.MantissaBits + varint.ParameterValueFloat.ExponentBits
}

func (p ArticulatedPart) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	if err := p.ChangeIndicator.Encode(c); err != nil {
		return fmt.Errorf("record: articulated part change indicator: %w", err)
	}
	if err := p.AttachmentID.Encode(c); err != nil {
		return fmt.Errorf("record: articulated part attachment id: %w", err)
	}
	if err := p.ParameterType.Encode(c); err != nil {
		return fmt.Errorf("record: articulated part parameter type: %w", err)
	}
	if err := varint.ParameterValueFloat.Encode(c, p.ParameterValue); err != nil {
		return fmt.Errorf("record: articulated part parameter value: %w", err)
	}
	return nil
}

// AttachedPart describes an entity attached as a sub-part (e.g. a
// mounted weapon), carrying a full nested entity type whose own bit
// length is content-dependent.
type AttachedPart struct {
	Station         varint.UVarInt
	AttachedPartType EntityType
}

func (AttachedPart) Discriminator() uint8 { return VPDiscriminatorAttachedPart }

func (p AttachedPart) BitLength() int {
	return vpDiscriminatorBits + p.Station.BitSize() + p.AttachedPartType.BitLength()
}

func (p AttachedPart) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	if err := p.Station.Encode(c); err != nil {
		return fmt.Errorf("record: attached part station: %w", err)
	}
	if err := p.AttachedPartType.Encode(c); err != nil {
		return fmt.Errorf("record: attached part type: %w", err)
	}
	return nil
}

// EntitySeparation describes an entity splitting off a new one.
type EntitySeparation struct {
	Reason      varint.UVarInt
	Station     varint.UVarInt
	EntityType  EntityType
	Location    EntityCoordinateVector
	LocationUnits scale.EntityCoordinateUnits
}

func (EntitySeparation) Discriminator() uint8 { return VPDiscriminatorEntitySeparation }

func (p EntitySeparation) BitLength() int {
	return vpDiscriminatorBits + p.Reason.BitSize() + p.Station.BitSize() +
		p.EntityType.BitLength() + p.Location.BitLength() + 1
}

func (p EntitySeparation) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	if err := p.Reason.Encode(c); err != nil {
		return fmt.Errorf("record: entity separation reason: %w", err)
	}
	if err := p.Station.Encode(c); err != nil {
		return fmt.Errorf("record: entity separation station: %w", err)
	}
	if err := p.EntityType.Encode(c); err != nil {
		return fmt.Errorf("record: entity separation entity type: %w", err)
	}
	units := uint64(0)
	if p.LocationUnits == scale.EntityCoordinateMeters {
		units = 1
	}
	if err := c.WriteUint(units, 1); err != nil {
		return fmt.Errorf("record: entity separation location units: %w", err)
	}
	if err := p.Location.Encode(c); err != nil {
		return fmt.Errorf("record: entity separation location: %w", err)
	}
	return nil
}

// EntityTypeAssociation carries an alternative entity type for an
// entity's variable-parameter list.
type EntityTypeAssociation struct {
	EntityType EntityType
}

func (EntityTypeAssociation) Discriminator() uint8 { return VPDiscriminatorEntityTypeAssoc }

func (p EntityTypeAssociation) BitLength() int {
	return vpDiscriminatorBits + p.EntityType.BitLength()
}

func (p EntityTypeAssociation) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	return p.EntityType.Encode(c)
}

// EntityAssociation links this entity to another (towing, carrying,
// mounting).
type EntityAssociation struct {
	ChangeIndicator   varint.UVarInt
	AssociationStatus varint.UVarInt
	AssociationType   varint.UVarInt
	EntityID          EntityID
	OwnStationLocation varint.UVarInt
	PhysicalConnectionType varint.UVarInt
	GroupMemberType   varint.UVarInt
	GroupNumber       varint.UVarInt
}

func (EntityAssociation) Discriminator() uint8 { return VPDiscriminatorEntityAssociation }

func (p EntityAssociation) BitLength() int {
	return vpDiscriminatorBits + p.ChangeIndicator.BitSize() + p.AssociationStatus.BitSize() +
		p.AssociationType.BitSize() + p.EntityID.BitLength() + p.OwnStationLocation.BitSize() +
		p.PhysicalConnectionType.BitSize() + p.GroupMemberType.BitSize() + p.GroupNumber.BitSize()
}

func (p EntityAssociation) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	fields := [...]varint.UVarInt{
		p.ChangeIndicator, p.AssociationStatus, p.AssociationType,
	}
	for _, f := range fields {
		if err := f.Encode(c); err != nil {
			return fmt.Errorf("record: entity association: %w", err)
		}
	}
	if err := p.EntityID.Encode(c); err != nil {
		return fmt.Errorf("record: entity association entity id: %w", err)
	}
	tail := [...]varint.UVarInt{
		p.OwnStationLocation, p.PhysicalConnectionType, p.GroupMemberType, p.GroupNumber,
	}
	for _, f := range tail {
		if err := f.Encode(c); err != nil {
			return fmt.Errorf("record: entity association: %w", err)
		}
	}
	return nil
}

// UnspecifiedVariableParameter preserves an unrecognized or not-yet-
// modeled variable parameter as an opaque fixed-width payload.
type UnspecifiedVariableParameter struct {
	Payload [unspecifiedPayloadBits / 8]byte
}

func (UnspecifiedVariableParameter) Discriminator() uint8 { return VPDiscriminatorUnspecified }

func (UnspecifiedVariableParameter) BitLength() int {
	return vpDiscriminatorBits + unspecifiedPayloadBits
}

func (p UnspecifiedVariableParameter) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(p.Discriminator()), vpDiscriminatorBits); err != nil {
		return err
	}
	for _, b := range p.Payload {
		if err := c.WriteUint(uint64(b), 8); err != nil {
			return fmt.Errorf("record: unspecified variable parameter payload: %w", err)
		}
	}
	return nil
}

// DecodeVariableParameter reads the 4-bit discriminator and dispatches
// to the matching variant.
func DecodeVariableParameter(c *bitio.Cursor) (VariableParameter, error) {
	d, err := c.ReadUint(vpDiscriminatorBits)
	if err != nil {
		return nil, fmt.Errorf("record: variable parameter discriminator: %w", err)
	}
	switch uint8(d) {
	case VPDiscriminatorArticulatedPart:
		ci, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		at, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
		if err != nil {
			return nil, err
		}
		pt, err := varint.DecodeUVarInt(c, varint.UVInt32Kind)
		if err != nil {
			return nil, err
		}
		pv, err := varint.ParameterValueFloat.Decode(c)
		if err != nil {
			return nil, err
		}
		return ArticulatedPart{ChangeIndicator: ci, AttachmentID: at, ParameterType: pt, ParameterValue: pv}, nil

	case VPDiscriminatorAttachedPart:
		station, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
		if err != nil {
			return nil, err
		}
		et, err := DecodeEntityType(c)
		if err != nil {
			return nil, err
		}
		return AttachedPart{Station: station, AttachedPartType: et}, nil

	case VPDiscriminatorEntitySeparation:
		reason, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		station, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		et, err := DecodeEntityType(c)
		if err != nil {
			return nil, err
		}
		unitsBit, err := c.ReadUint(1)
		if err != nil {
			return nil, err
		}
		units := scale.EntityCoordinateCentimeters
		if unitsBit == 1 {
			units = scale.EntityCoordinateMeters
		}
		loc, err := DecodeEntityCoordinateVectorRecord(c)
		if err != nil {
			return nil, err
		}
		return EntitySeparation{Reason: reason, Station: station, EntityType: et, Location: loc, LocationUnits: units}, nil

	case VPDiscriminatorEntityTypeAssoc:
		et, err := DecodeEntityType(c)
		if err != nil {
			return nil, err
		}
		return EntityTypeAssociation{EntityType: et}, nil

	case VPDiscriminatorEntityAssociation:
		ci, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		status, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		atype, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		eid, err := DecodeEntityID(c)
		if err != nil {
			return nil, err
		}
		ownStation, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
		if err != nil {
			return nil, err
		}
		connType, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		groupMember, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
		if err != nil {
			return nil, err
		}
		groupNumber, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
		if err != nil {
			return nil, err
		}
		return EntityAssociation{
			ChangeIndicator: ci, AssociationStatus: status, AssociationType: atype, EntityID: eid,
			OwnStationLocation: ownStation, PhysicalConnectionType: connType,
			GroupMemberType: groupMember, GroupNumber: groupNumber,
		}, nil

	case VPDiscriminatorUnspecified:
		var up UnspecifiedVariableParameter
		for i := range up.Payload {
			b, err := c.ReadUint(8)
			if err != nil {
				return nil, fmt.Errorf("record: unspecified variable parameter payload: %w", err)
			}
			up.Payload[i] = byte(b)
		}
		return up, nil

	default:
		return nil, fmt.Errorf("record: variable parameter: %w: discriminator %d", bitio.ErrInvalidDiscriminator, d)
	}
}
