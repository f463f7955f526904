package entitystate

import (
	"fmt"
	"reflect"
	"time"

	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/state"
	"github.com/rob-gra/cdis-codec/varint"
)

// ErrMissingState is surfaced when a partial update arrives for an
// entity id with no prior full update on this side.
var ErrMissingState = state.ErrMissingState

// Encode converts body to its compact form against enc, per §4.6's
// encode contract.
//
// A first-ever encode for an entity id returns StateUnaffected rather
// than StateUpdateEntityState, reproducing the source's documented
// result value for that case (§9 open question, scenario 1 in §8).
// Unlike the source, the encoder cache is still populated on this first
// call: a literal non-population would make the first call permanently
// indistinguishable from every later one, which contradicts the
// idempotence and heartbeat properties in §8 that depend on the cache
// holding real values after the first emit.
func Encode(body Body, enc *state.EncoderState, opts CodecOptions, now time.Time) (CompactBody, CodecStateResult, error) {
	cached, hasState := enc.Lookup(body.EntityID)
	firstEmit := !hasState

	heartbeatElapsed := hasState && now.Sub(cached.Timestamp) > opts.heartbeatInterval()
	fullUpdate := opts.UpdateMode == FullUpdate || firstEmit || heartbeatElapsed

	presence := computePresence(body, cached.Fields, fullUpdate, hasState, opts)

	out := CompactBody{FullUpdate: fullUpdate, Presence: presence, EntityID: body.EntityID}

	lat, lon, alt, units := encodeWorldCoordinates(body.LocationECEF, opts)
	out.Units = units
	out.Location = record.WorldCoordinates{LatScaled: lat, LonScaled: lon, Altitude: alt}

	if presence.Has(PresenceForceID) {
		out.ForceID = varint.NewUVarInt(varint.UVInt8Kind, body.ForceID)
	}
	// Entity types and the dead-reckoning block are rebuilt with their
	// wire kinds and widths, so zero-valued body fields still encode.
	if presence.Has(PresenceEntityType) {
		t := body.EntityType
		out.EntityType = record.NewEntityType(t.Kind, t.Domain, t.Country, t.Category.Value, t.Subcategory.Value, t.Specific.Value, t.Extra.Value)
	}
	if presence.Has(PresenceAltEntityType) {
		t := body.AltEntityType
		out.AltEntityType = record.NewEntityType(t.Kind, t.Domain, t.Country, t.Category.Value, t.Subcategory.Value, t.Specific.Value, t.Extra.Value)
	}
	if presence.Has(PresenceLinearVelocity) {
		out.LinearVelocity = record.EncodeLinearVelocity(body.LinearVelocityX, body.LinearVelocityY, body.LinearVelocityZ)
	}
	if presence.Has(PresenceOrientation) {
		out.Orientation = record.EncodeOrientation(body.OrientationPsi, body.OrientationTheta, body.OrientationPhi)
	}
	if presence.Has(PresenceAppearance) {
		out.Appearance = body.Appearance.Raw()
	}
	if presence.Has(PresenceDeadReckoning) {
		dr := body.DeadReckoning
		out.DeadReckoning = record.DeadReckoningParameters{
			Algorithm:          varint.NewUVarInt(varint.UVInt8Kind, dr.Algorithm.Value),
			OtherParameters:    dr.OtherParameters,
			LinearAcceleration: record.NewVector3(record.LinearAccelerationBits, dr.LinearAcceleration.X, dr.LinearAcceleration.Y, dr.LinearAcceleration.Z),
			AngularVelocity:    record.NewVector3(record.AngularVelocityBits, dr.AngularVelocity.X, dr.AngularVelocity.Y, dr.AngularVelocity.Z),
		}
	}
	if presence.Has(PresenceMarking) {
		out.Marking = record.NewMarking(body.Marking)
	}
	if presence.Has(PresenceCapabilities) {
		out.Capabilities = varint.NewUVarInt(varint.UVInt32Kind, body.Capabilities)
	}
	if presence.Has(PresenceVariableParameters) {
		out.VariableParameters = body.VariableParameters
	}

	result := StateUnaffected
	if fieldsWereTransmitted(presence) {
		result = StateUpdateEntityState
	}

	if firstEmit {
		// Populate the cache with the real field values so a subsequent
		// identical encode has something to compare against, but report
		// StateUnaffected for this call regardless, matching scenario 1
		// in §8.
		enc.Update(body.EntityID, bodyToFields(body, opts), now)
		return out, StateUnaffected, nil
	}

	if result == StateUpdateEntityState {
		enc.Update(body.EntityID, bodyToFields(body, opts), now)
	}
	return out, result, nil
}

// encodeWorldCoordinates dispatches to the unit-flag tie-break scale
// offers for OptimizeCompleteness, or the default centimeters-preferring
// one otherwise.
func encodeWorldCoordinates(loc scale.ECEF, opts CodecOptions) (lat, lon, alt int32, units scale.AltitudeUnits) {
	if opts.OptimizeMode == OptimizeCompleteness {
		return scale.EncodeWorldCoordinatesPreferDekameters(loc)
	}
	return scale.EncodeWorldCoordinates(loc)
}

// computePresence builds the presence bitmap for one encode call.
func computePresence(body Body, cached state.EntityStateFields, fullUpdate, hasState bool, opts CodecOptions) Presence {
	if fullUpdate || !hasState {
		p := Presence(1<<PresenceBits - 1)
		if len(body.VariableParameters) == 0 {
			p &^= PresenceVariableParameters
		}
		return p
	}

	var p Presence
	if body.ForceID != cached.ForceID {
		p |= PresenceForceID
	}
	if body.EntityType != cached.EntityType {
		p |= PresenceEntityType
	}
	if opts.UseGuise || body.AltEntityType != cached.AltEntityType {
		p |= PresenceAltEntityType
	}
	if lv := record.EncodeLinearVelocity(body.LinearVelocityX, body.LinearVelocityY, body.LinearVelocityZ); lv != cached.LinearVelocity {
		p |= PresenceLinearVelocity
	}
	lat, lon, alt, _ := encodeWorldCoordinates(body.LocationECEF, opts)
	loc := record.WorldCoordinates{LatScaled: lat, LonScaled: lon, Altitude: alt}
	if loc != cached.Location {
		p |= PresenceLocation
	}
	if ori := record.EncodeOrientation(body.OrientationPsi, body.OrientationTheta, body.OrientationPhi); ori != cached.Orientation {
		p |= PresenceOrientation
	}
	if body.Appearance != cached.Appearance {
		p |= PresenceAppearance
	}
	if body.DeadReckoning != cached.DeadReckoning {
		p |= PresenceDeadReckoning
	}
	if marking := record.NewMarking(body.Marking); marking != cached.Marking {
		p |= PresenceMarking
	}
	if body.Capabilities != cached.Capabilities {
		p |= PresenceCapabilities
	}
	if !reflect.DeepEqual(body.VariableParameters, cached.VariableParameters) {
		p |= PresenceVariableParameters
	}
	return p
}

// fieldsWereTransmitted reports whether presence carries any of the
// fields that count toward a StateUpdateEntityState result, per §4.6
// step 4 (variable parameters alone do not count).
func fieldsWereTransmitted(p Presence) bool {
	const counted = PresenceForceID | PresenceEntityType | PresenceAltEntityType |
		PresenceLocation | PresenceOrientation | PresenceAppearance |
		PresenceDeadReckoning | PresenceMarking | PresenceCapabilities
	return p&counted != 0
}

func bodyToFields(body Body, opts CodecOptions) state.EntityStateFields {
	lat, lon, alt, _ := encodeWorldCoordinates(body.LocationECEF, opts)
	return state.EntityStateFields{
		ForceID:            body.ForceID,
		EntityType:         body.EntityType,
		AltEntityType:      body.AltEntityType,
		LinearVelocity:     record.EncodeLinearVelocity(body.LinearVelocityX, body.LinearVelocityY, body.LinearVelocityZ),
		Location:           record.WorldCoordinates{LatScaled: lat, LonScaled: lon, Altitude: alt},
		Orientation:        record.EncodeOrientation(body.OrientationPsi, body.OrientationTheta, body.OrientationPhi),
		Appearance:         body.Appearance,
		DeadReckoning:      body.DeadReckoning,
		Marking:            record.NewMarking(body.Marking),
		Capabilities:       body.Capabilities,
		VariableParameters: body.VariableParameters,
	}
}

// Decode reconstructs the standard-format body from compact, filling
// absent fields from dec's cache, per §4.6's decode contract.
func Decode(compact CompactBody, dec *state.DecoderState, opts CodecOptions, now time.Time) (Body, CodecStateResult, error) {
	cached, hasState := dec.Lookup(compact.EntityID)
	if !hasState && !compact.FullUpdate {
		return Body{}, StateUnaffected, fmt.Errorf("entitystate: decode %v: %w", compact.EntityID, ErrMissingState)
	}

	fields := cached.Fields
	out := Body{EntityID: compact.EntityID}

	if compact.Presence.Has(PresenceForceID) {
		fields.ForceID = compact.ForceID.Value
	}
	if compact.Presence.Has(PresenceEntityType) {
		fields.EntityType = compact.EntityType
	}
	if compact.Presence.Has(PresenceAltEntityType) {
		fields.AltEntityType = compact.AltEntityType
	}
	if compact.Presence.Has(PresenceLinearVelocity) {
		fields.LinearVelocity = compact.LinearVelocity
	}
	if compact.Presence.Has(PresenceLocation) {
		fields.Location = compact.Location
	}
	if compact.Presence.Has(PresenceOrientation) {
		fields.Orientation = compact.Orientation
	}
	if compact.Presence.Has(PresenceAppearance) {
		fields.Appearance = record.Appearance(compact.Appearance)
	}
	if compact.Presence.Has(PresenceDeadReckoning) {
		fields.DeadReckoning = compact.DeadReckoning
	}
	if compact.Presence.Has(PresenceMarking) {
		fields.Marking = compact.Marking
	}
	if compact.Presence.Has(PresenceCapabilities) {
		fields.Capabilities = compact.Capabilities.Value
	}
	if compact.Presence.Has(PresenceVariableParameters) {
		fields.VariableParameters = compact.VariableParameters
	}

	out.ForceID = fields.ForceID
	out.EntityType = fields.EntityType
	out.AltEntityType = fields.AltEntityType
	x, y, z := record.DecodeLinearVelocity(fields.LinearVelocity)
	out.LinearVelocityX, out.LinearVelocityY, out.LinearVelocityZ = x, y, z
	out.LocationECEF = fields.Location.Decode(compact.Units)
	psi, theta, phi := record.DecodeOrientation(fields.Orientation)
	out.OrientationPsi, out.OrientationTheta, out.OrientationPhi = psi, theta, phi
	out.Appearance = fields.Appearance
	out.DeadReckoning = fields.DeadReckoning
	out.Marking = fields.Marking.Text
	out.Capabilities = fields.Capabilities
	out.VariableParameters = fields.VariableParameters

	result := StateUnaffected
	if compact.FullUpdate {
		result = StateUpdateEntityState
		dec.Update(compact.EntityID, fields, now)
	}
	return out, result, nil
}
