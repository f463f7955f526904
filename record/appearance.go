package record

// Appearance wraps the opaque 32-bit DIS appearance bitmask with typed
// accessors for the subfields the codec and its callers care about. The
// wire form is always just the raw uint32; these accessors exist so
// application code doesn't have to hand-roll bit masks.
type Appearance uint32

const (
	appearancePaintworkBit  = 1 << 0
	appearanceDamageShift   = 3
	appearanceDamageMask    = 0x3
	appearanceSmokeShift    = 5
	appearanceSmokeMask     = 0x3
	appearanceFlamesBit     = 1 << 15
	appearanceFrozenStatusBit = 1 << 21
	appearanceStateBit      = 1 << 23
)

// DamageState enumerates the 2-bit damage subfield.
type DamageState uint32

const (
	DamageNone DamageState = iota
	DamageSlight
	DamageModerate
	DamageDestroyed
)

// IsPaintworkDamaged reports bit 0.
func (a Appearance) IsPaintworkDamaged() bool { return a&appearancePaintworkBit != 0 }

// Damage extracts the 2-bit damage subfield (bits 3-4).
func (a Appearance) Damage() DamageState {
	return DamageState((uint32(a) >> appearanceDamageShift) & appearanceDamageMask)
}

// WithDamage returns a copy of a with the damage subfield replaced.
func (a Appearance) WithDamage(d DamageState) Appearance {
	cleared := uint32(a) &^ (appearanceDamageMask << appearanceDamageShift)
	return Appearance(cleared | (uint32(d)&appearanceDamageMask)<<appearanceDamageShift)
}

// SmokeState enumerates the 2-bit smoke subfield.
type SmokeState uint32

const (
	SmokeNone SmokeState = iota
	SmokeEngineSmoke
	SmokeEmittingEngineSmokeAndDamageSmoke
	_ // reserved
)

// Smoke extracts the 2-bit smoke subfield (bits 5-6).
func (a Appearance) Smoke() SmokeState {
	return SmokeState((uint32(a) >> appearanceSmokeShift) & appearanceSmokeMask)
}

// IsFlaming reports bit 15.
func (a Appearance) IsFlaming() bool { return a&appearanceFlamesBit != 0 }

// IsFrozen reports bit 21 (frozen / exercising status).
func (a Appearance) IsFrozen() bool { return a&appearanceFrozenStatusBit != 0 }

// IsActive reports bit 23 (0 = active, 1 = deactivated).
func (a Appearance) IsActive() bool { return a&appearanceStateBit == 0 }

// Raw returns the underlying uint32 for wire encoding.
func (a Appearance) Raw() uint32 { return uint32(a) }
