// Package enum provides opaque enumeration wrappers for the integer
// codes the core codec consumes but does not interpret: PDU body type,
// entity kind/domain/country, force id and dead-reckoning algorithm.
//
// Per §6, the core only needs encode(from(integer)) == integer to hold
// for known values, and must preserve the original integer for unknown
// ones via an Unspecified(u) carrier. A real symbolic-constant table is
// an external generator's job; this package supplies the carrier type
// and the handful of named constants the codec itself branches on.
package enum

import "fmt"

// BodyType identifies the kind of PDU body a header's body-type-code
// byte selects.
type BodyType uint8

// Named body types the dispatcher (pdu package) switches on explicitly.
// Values match DIS's standard enumeration; everything else round-trips
// through Unspecified.
const (
	BodyEntityState          BodyType = 1
	BodyFire                 BodyType = 2
	BodyDetonation           BodyType = 3
	BodyCollision            BodyType = 4
	BodyCreateEntity         BodyType = 11
	BodyRemoveEntity         BodyType = 12
	BodyStartResume          BodyType = 13
	BodyStopFreeze           BodyType = 14
	BodyAcknowledge          BodyType = 15
	BodyActionRequest        BodyType = 16
	BodyActionResponse       BodyType = 17
	BodyDataQuery            BodyType = 18
	BodySetData              BodyType = 19
	BodyData                 BodyType = 20
	BodyEventReport          BodyType = 21
	BodyComment              BodyType = 22
	BodyIFF                  BodyType = 28
)

// Int returns the wire integer for t.
func (t BodyType) Int() uint8 { return uint8(t) }

// Named reports whether t is one of the constants above rather than a
// value only reachable via FromInt's Unspecified fallback.
func (t BodyType) Named() bool {
	switch t {
	case BodyEntityState, BodyFire, BodyDetonation, BodyCollision,
		BodyCreateEntity, BodyRemoveEntity, BodyStartResume, BodyStopFreeze,
		BodyAcknowledge, BodyActionRequest, BodyActionResponse,
		BodyDataQuery, BodySetData, BodyData, BodyEventReport, BodyComment,
		BodyIFF:
		return true
	}
	return false
}

// BodyTypeFromInt wraps any byte value, named or not; Int() always
// round-trips the original value.
func BodyTypeFromInt(v uint8) BodyType { return BodyType(v) }

func (t BodyType) String() string {
	if t.Named() {
		return fmt.Sprintf("BodyType(%d)", uint8(t))
	}
	return fmt.Sprintf("Unspecified(%d)", uint8(t))
}

// ForceID is DIS's friendly/opposing/neutral/other classification.
type ForceID uint32

const (
	ForceOther     ForceID = 0
	ForceFriendly  ForceID = 1
	ForceOpposing  ForceID = 2
	ForceNeutral   ForceID = 3
)

// DeadReckoningAlgorithm names the motion-extrapolation model a dead
// reckoning parameters record selects.
type DeadReckoningAlgorithm uint32

const (
	DRAOther                  DeadReckoningAlgorithm = 0
	DRAStatic                 DeadReckoningAlgorithm = 1
	DRAFPW                    DeadReckoningAlgorithm = 2
	DRARPW                    DeadReckoningAlgorithm = 3
	DRARVW                    DeadReckoningAlgorithm = 4
	DRAFVW                    DeadReckoningAlgorithm = 5
	DRAFPB                    DeadReckoningAlgorithm = 6
	DRARPB                    DeadReckoningAlgorithm = 7
	DRARVB                    DeadReckoningAlgorithm = 8
	DRAFVB                    DeadReckoningAlgorithm = 9
)

// EntityKind is the top-level split of an entity type record (platform,
// munition, life form, environmental, culturally-identified, ...).
type EntityKind uint32

const (
	EntityKindOther        EntityKind = 0
	EntityKindPlatform     EntityKind = 1
	EntityKindMunition     EntityKind = 2
	EntityKindLifeForm     EntityKind = 3
	EntityKindEnvironmental EntityKind = 4
	EntityKindCultural     EntityKind = 5
	EntityKindSupply       EntityKind = 6
	EntityKindRadio        EntityKind = 7
	EntityKindExpendable   EntityKind = 8
	EntityKindSensorEmitter EntityKind = 9
)

// Domain is the platform domain an entity type record specifies when
// Kind == EntityKindPlatform (air/land/surface/subsurface/space).
type Domain uint32

const (
	DomainOther      Domain = 0
	DomainLand       Domain = 1
	DomainAir        Domain = 2
	DomainSurface    Domain = 3
	DomainSubsurface Domain = 4
	DomainSpace      Domain = 5
)

// Country is the country-code component of an entity type record; the
// codec stores it as an opaque 9-bit value (§3) and never validates it
// against a table, so no named constants are needed here beyond the
// wrapper itself.
type Country uint32
