package entitystate

import (
	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/scale"
)

// Body is the standard-format Entity State PDU body: the structured,
// byte-aligned representation the codec converts to and from the
// compact wire form.
type Body struct {
	EntityID      record.EntityID
	ForceID       uint32
	EntityType    record.EntityType
	AltEntityType record.EntityType

	LinearVelocityX, LinearVelocityY, LinearVelocityZ float64
	LocationECEF                                      scale.ECEF
	OrientationPsi, OrientationTheta, OrientationPhi   float64

	Appearance    record.Appearance
	DeadReckoning record.DeadReckoningParameters
	Marking       string
	Capabilities  uint32

	VariableParameters []record.VariableParameter
}
