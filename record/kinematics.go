package record

import "github.com/rob-gra/cdis-codec/scale"

// Bit widths for the fixed-shape kinematic vectors, per §3/§6.
const (
	OrientationBits        = 13
	LinearVelocityBits     = 16
	LinearAccelerationBits = 14
	AngularVelocityBits    = 12
)

// EncodeOrientation converts three Euler angles (radians) to a compact
// orientation Vector3.
func EncodeOrientation(psi, theta, phi float64) Vector3 {
	return NewVector3(OrientationBits,
		scale.EncodeAngle13Bit(psi),
		scale.EncodeAngle13Bit(theta),
		scale.EncodeAngle13Bit(phi),
	)
}

// DecodeOrientation is the inverse of EncodeOrientation.
func DecodeOrientation(v Vector3) (psi, theta, phi float64) {
	return scale.DecodeAngle13Bit(v.X), scale.DecodeAngle13Bit(v.Y), scale.DecodeAngle13Bit(v.Z)
}

// EncodeLinearVelocity converts meters/second components to compact
// decimeters/second.
func EncodeLinearVelocity(x, y, z float64) Vector3 {
	return NewVector3(LinearVelocityBits,
		scale.MetersToDecimeters(x),
		scale.MetersToDecimeters(y),
		scale.MetersToDecimeters(z),
	)
}

// DecodeLinearVelocity is the inverse of EncodeLinearVelocity.
func DecodeLinearVelocity(v Vector3) (x, y, z float64) {
	return scale.DecimetersToMeters(v.X), scale.DecimetersToMeters(v.Y), scale.DecimetersToMeters(v.Z)
}

// EncodeLinearAcceleration converts meters/s^2 components to compact
// decimeters/s^2.
func EncodeLinearAcceleration(x, y, z float64) Vector3 {
	return NewVector3(LinearAccelerationBits,
		scale.MetersToDecimeters(x),
		scale.MetersToDecimeters(y),
		scale.MetersToDecimeters(z),
	)
}

// DecodeLinearAcceleration is the inverse of EncodeLinearAcceleration.
func DecodeLinearAcceleration(v Vector3) (x, y, z float64) {
	return scale.DecimetersToMeters(v.X), scale.DecimetersToMeters(v.Y), scale.DecimetersToMeters(v.Z)
}

// EncodeAngularVelocity converts radians/second components to the
// compact 12-bit scaled form, using AngularVelocityScale unless useXOR
// requests the legacy XOR-misreading compatibility constant.
func EncodeAngularVelocity(x, y, z float64, useXOR bool) Vector3 {
	s := scale.AngularVelocityScale
	if useXOR {
		s = scale.AngularVelocityScaleXORCompat
	}
	return NewVector3(AngularVelocityBits,
		int32(scale.EncodeAngularVelocityComponent(x, s)),
		int32(scale.EncodeAngularVelocityComponent(y, s)),
		int32(scale.EncodeAngularVelocityComponent(z, s)),
	)
}

// DecodeAngularVelocity is the inverse of EncodeAngularVelocity.
func DecodeAngularVelocity(v Vector3, useXOR bool) (x, y, z float64) {
	s := scale.AngularVelocityScale
	if useXOR {
		s = scale.AngularVelocityScaleXORCompat
	}
	return scale.DecodeAngularVelocityComponent(v.X, s),
		scale.DecodeAngularVelocityComponent(v.Y, s),
		scale.DecodeAngularVelocityComponent(v.Z, s)
}
