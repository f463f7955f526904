package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// otherParametersBits mirrors the standard DIS dead-reckoning parameters
// record's 15-byte "other parameters" field, whose internal layout
// depends on the DR algorithm in use and is carried opaque here.
const otherParametersBits = 15 * 8

// DeadReckoningParameters is the full dead-reckoning parameter block: the
// algorithm selector, its algorithm-specific opaque parameters, and the
// linear acceleration / angular velocity vectors used to extrapolate
// position between updates.
type DeadReckoningParameters struct {
	Algorithm          varint.UVarInt
	OtherParameters    [otherParametersBits / 8]byte
	LinearAcceleration Vector3
	AngularVelocity    Vector3
}

// NewDeadReckoningParameters builds a block from standard-format fields.
func NewDeadReckoningParameters(algorithm uint32, linAccelX, linAccelY, linAccelZ, angVelX, angVelY, angVelZ float64, useXORAngularVelocityScale bool) DeadReckoningParameters {
	return DeadReckoningParameters{
		Algorithm:          varint.NewUVarInt(varint.UVInt8Kind, algorithm),
		LinearAcceleration: EncodeLinearAcceleration(linAccelX, linAccelY, linAccelZ),
		AngularVelocity:    EncodeAngularVelocity(angVelX, angVelY, angVelZ, useXORAngularVelocityScale),
	}
}

// BitLength sums the algorithm selector, opaque parameters and both
// kinematic vectors.
func (p DeadReckoningParameters) BitLength() int {
	return p.Algorithm.BitSize() + otherParametersBits + p.LinearAcceleration.BitLength() + p.AngularVelocity.BitLength()
}

// Encode writes algorithm, other parameters, linear acceleration, then
// angular velocity.
func (p DeadReckoningParameters) Encode(c *bitio.Cursor) error {
	if err := p.Algorithm.Encode(c); err != nil {
		return fmt.Errorf("record: dead reckoning algorithm: %w", err)
	}
	for _, b := range p.OtherParameters {
		if err := c.WriteUint(uint64(b), 8); err != nil {
			return fmt.Errorf("record: dead reckoning other parameters: %w", err)
		}
	}
	if err := p.LinearAcceleration.Encode(c); err != nil {
		return fmt.Errorf("record: dead reckoning linear acceleration: %w", err)
	}
	if err := p.AngularVelocity.Encode(c); err != nil {
		return fmt.Errorf("record: dead reckoning angular velocity: %w", err)
	}
	return nil
}

// DecodeDeadReckoningParameters reads a DeadReckoningParameters block.
func DecodeDeadReckoningParameters(c *bitio.Cursor) (DeadReckoningParameters, error) {
	algo, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return DeadReckoningParameters{}, fmt.Errorf("record: dead reckoning algorithm: %w", err)
	}
	var other [otherParametersBits / 8]byte
	for i := range other {
		b, err := c.ReadUint(8)
		if err != nil {
			return DeadReckoningParameters{}, fmt.Errorf("record: dead reckoning other parameters: %w", err)
		}
		other[i] = byte(b)
	}
	linAccel, err := DecodeVector3(c, LinearAccelerationBits)
	if err != nil {
		return DeadReckoningParameters{}, fmt.Errorf("record: dead reckoning linear acceleration: %w", err)
	}
	angVel, err := DecodeVector3(c, AngularVelocityBits)
	if err != nil {
		return DeadReckoningParameters{}, fmt.Errorf("record: dead reckoning angular velocity: %w", err)
	}
	return DeadReckoningParameters{Algorithm: algo, OtherParameters: other, LinearAcceleration: linAccel, AngularVelocity: angVel}, nil
}
