package entitystate

import (
	"testing"
	"time"

	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/scale"
	"github.com/rob-gra/cdis-codec/state"
	"github.com/stretchr/testify/require"
)

func sampleBody() Body {
	return Body{
		EntityID:   record.NewEntityID(7, 127, 255),
		ForceID:    8,
		EntityType: record.NewEntityType(1, 2, 153, 0, 0, 0, 0),
		Marking:    "TEST",
	}
}

func TestEncode_FirstEmitReturnsStateUnaffectedButPopulatesCache(t *testing.T) {
	enc := state.NewEncoderState()
	body := sampleBody()

	compact, result, err := Encode(body, enc, NewFullUpdateOptions(), time.Unix(0, 0))
	require.NoError(t, err)
	require.Equal(t, StateUnaffected, result)
	require.True(t, compact.FullUpdate)
	require.True(t, compact.Presence.Has(PresenceForceID))
	require.False(t, compact.Presence.Has(PresenceVariableParameters))

	cached, hasState := enc.Lookup(body.EntityID)
	require.True(t, hasState)
	require.Equal(t, body.ForceID, cached.Fields.ForceID)
	require.Equal(t, record.NewMarking(body.Marking), cached.Fields.Marking)
}

func TestEncodeDecode_RoundTripFullUpdate(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	body := sampleBody()
	body.LocationECEF = scale.ECEF{X: 3919999, Y: 342955, Z: 5002819}

	// Prime the encoder cache with a first emit so the second encode
	// (the one actually checked) is in steady state.
	_, _, err := Encode(body, enc, NewFullUpdateOptions(), time.Unix(0, 0))
	require.NoError(t, err)

	compact, result, err := Encode(body, enc, NewFullUpdateOptions(), time.Unix(1, 0))
	require.NoError(t, err)
	require.Equal(t, StateUpdateEntityState, result)

	got, decResult, err := Decode(compact, dec, NewFullUpdateOptions(), time.Unix(1, 0))
	require.NoError(t, err)
	require.Equal(t, StateUpdateEntityState, decResult)
	require.Equal(t, body.EntityID, got.EntityID)
	require.Equal(t, body.ForceID, got.ForceID)
	require.Equal(t, body.Marking, got.Marking)
	require.InDelta(t, body.LocationECEF.X, got.LocationECEF.X, 1.0)
}

func TestDecode_PartialUpdateWithoutPriorStateFails(t *testing.T) {
	dec := state.NewDecoderState()
	compact := CompactBody{FullUpdate: false, EntityID: record.NewEntityID(1, 1, 1)}

	_, _, err := Decode(compact, dec, NewPartialUpdateOptions(), time.Unix(0, 0))
	require.ErrorIs(t, err, ErrMissingState)
}

func TestPartialUpdate_IdempotentCycleYieldsEmptyPresence(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	body := sampleBody()
	opts := NewPartialUpdateOptions()

	// First emit: unaffected per §8 scenario 1, but the cache is now
	// populated with body's real values, so the decoder needs a full
	// update to reach the same steady state before the idempotence check.
	first, _, err := Encode(body, enc, opts, time.Unix(0, 0))
	require.NoError(t, err)
	require.True(t, first.FullUpdate)

	_, _, err = Decode(first, dec, opts, time.Unix(0, 0))
	require.NoError(t, err)

	second, result, err := Encode(body, enc, opts, time.Unix(1, 0))
	require.NoError(t, err)
	require.Equal(t, StateUnaffected, result)
	require.False(t, second.FullUpdate)
	require.EqualValues(t, 0, second.Presence)

	got, decResult, err := Decode(second, dec, opts, time.Unix(1, 0))
	require.NoError(t, err)
	require.Equal(t, StateUnaffected, decResult)
	require.Equal(t, body.ForceID, got.ForceID)
	require.Equal(t, body.Marking, got.Marking)
}

func TestPartialUpdate_CapabilitiesOnlyChangeCountsAsUpdate(t *testing.T) {
	enc := state.NewEncoderState()
	body := sampleBody()
	opts := NewPartialUpdateOptions()

	_, _, err := Encode(body, enc, opts, time.Unix(0, 0))
	require.NoError(t, err)

	body.Capabilities = body.Capabilities + 1
	compact, result, err := Encode(body, enc, opts, time.Unix(1, 0))
	require.NoError(t, err)
	require.Equal(t, StateUpdateEntityState, result)
	require.True(t, compact.Presence.Has(PresenceCapabilities))

	cached, hasState := enc.Lookup(body.EntityID)
	require.True(t, hasState)
	require.Equal(t, body.Capabilities, cached.Fields.Capabilities)
}

func TestEncode_OptimizeCompletenessPrefersDekametersOnTie(t *testing.T) {
	enc := state.NewEncoderState()
	body := sampleBody()
	// An altitude well within the centimeters range, so the only thing
	// distinguishing the two modes is the tie-break itself.
	body.LocationECEF = scale.LLAToECEF(scale.LLA{LatRad: 0.9, LonRad: 0.2, AltMeters: 500})

	bandwidth := NewFullUpdateOptions()
	bandwidth.OptimizeMode = OptimizeBandwidth
	compact, _, err := Encode(body, enc, bandwidth, time.Unix(0, 0))
	require.NoError(t, err)
	require.Equal(t, scale.AltitudeCentimeters, compact.Units)

	completeness := NewFullUpdateOptions()
	completeness.OptimizeMode = OptimizeCompleteness
	compact, _, err = Encode(body, state.NewEncoderState(), completeness, time.Unix(0, 0))
	require.NoError(t, err)
	require.Equal(t, scale.AltitudeDekameters, compact.Units)
}

func TestPartialUpdate_HeartbeatEscalatesToFullUpdate(t *testing.T) {
	enc := state.NewEncoderState()
	body := sampleBody()
	opts := NewPartialUpdateOptions()

	_, _, err := Encode(body, enc, opts, time.Unix(0, 0))
	require.NoError(t, err)

	elapsed := time.Unix(0, 0).Add(opts.heartbeatInterval() + time.Second)
	compact, result, err := Encode(body, enc, opts, elapsed)
	require.NoError(t, err)
	require.True(t, compact.FullUpdate)
	require.Equal(t, StateUpdateEntityState, result)
}

func TestUseGuise_AltEntityTypeAlwaysPresent(t *testing.T) {
	enc := state.NewEncoderState()
	body := sampleBody()
	opts := NewPartialUpdateOptions()
	opts.UseGuise = true

	_, _, err := Encode(body, enc, opts, time.Unix(0, 0))
	require.NoError(t, err)

	compact, _, err := Encode(body, enc, opts, time.Unix(1, 0))
	require.NoError(t, err)
	require.True(t, compact.Presence.Has(PresenceAltEntityType))
}
