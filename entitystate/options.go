// Package entitystate implements the Entity State codec (§4.6): the
// full/partial update decision, presence-bitmap construction, unit-flag
// selection and heartbeat logic that compose the lower-level record and
// scale packages into the one message type that carries continuous
// per-entity telemetry.
package entitystate

import "time"

// CodecUpdateMode selects whether every field is always emitted or only
// the fields that changed since the cached value.
type CodecUpdateMode int

const (
	// FullUpdate always emits every field.
	FullUpdate CodecUpdateMode = iota
	// PartialUpdate omits fields equal to the cached value, subject to
	// heartbeat escalation.
	PartialUpdate
)

// CodecOptimizeMode biases unit-flag selection when a value is equally
// well represented either way. It only affects the world-coordinate
// altitude units; it does not change whether an update is full or partial.
type CodecOptimizeMode int

const (
	// OptimizeBandwidth prefers centimeters.
	OptimizeBandwidth CodecOptimizeMode = iota
	// OptimizeCompleteness prefers dekameters, even when the altitude fits
	// in centimeters.
	OptimizeCompleteness
)

// BaselineHeartbeatInterval is the protocol-defined heartbeat period that
// HeartbeatMultiplier scales.
const BaselineHeartbeatInterval = 5 * time.Second

// DefaultHeartbeatMultiplier is the default value of CodecOptions.HeartbeatMultiplier.
const DefaultHeartbeatMultiplier = 2.4

// CodecOptions configures one Entity State encode or decode call.
type CodecOptions struct {
	UpdateMode   CodecUpdateMode
	OptimizeMode CodecOptimizeMode

	// UseGuise bypasses alt-entity-type change detection: the field is
	// always marked present when true.
	UseGuise bool

	// HeartbeatMultiplier multiplies BaselineHeartbeatInterval; once the
	// time since last-send/received exceeds the product, a partial-mode
	// encode is escalated to a full update.
	HeartbeatMultiplier float64

	// UseXORAngularVelocityScale names the source's literal misreading of
	// "2^11 - 1" as an XOR (yielding 9) instead of the power-of-two value
	// 2047. Encode and Decode do not read it: Body.DeadReckoning already
	// holds angular velocity in compact form, and the scale is chosen where
	// that block is built (the last argument of
	// record.NewDeadReckoningParameters or record.EncodeAngularVelocity).
	UseXORAngularVelocityScale bool
}

// NewFullUpdateOptions returns options for always-full-update encoding.
func NewFullUpdateOptions() CodecOptions {
	return CodecOptions{UpdateMode: FullUpdate, HeartbeatMultiplier: DefaultHeartbeatMultiplier}
}

// NewPartialUpdateOptions returns options for change-suppressing encoding.
func NewPartialUpdateOptions() CodecOptions {
	return CodecOptions{UpdateMode: PartialUpdate, HeartbeatMultiplier: DefaultHeartbeatMultiplier}
}

// heartbeatInterval is the effective heartbeat timeout for opts.
func (opts CodecOptions) heartbeatInterval() time.Duration {
	mult := opts.HeartbeatMultiplier
	if mult == 0 {
		mult = DefaultHeartbeatMultiplier
	}
	return time.Duration(float64(BaselineHeartbeatInterval) * mult)
}

// CodecStateResult reports whether a codec call advanced the state cache.
type CodecStateResult int

const (
	// StateUnaffected means the call reports no cache update. Encode still
	// creates the cache entry on the first encode for an entity id and
	// returns StateUnaffected for that call; in every other case the cache
	// entry was not modified.
	StateUnaffected CodecStateResult = iota
	// StateUpdateEntityState means the cache entry was created or
	// replaced.
	StateUpdateEntityState
)
