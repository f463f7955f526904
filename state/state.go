// Package state implements the per-peer codec state cache: one map kept
// by the encoder and one kept by the decoder, each from entity id to the
// last-known Entity State field values. A single codec session owns
// exactly one of each; no synchronization is provided because §5 assumes
// no concurrent access within a session.
package state

import (
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rob-gra/cdis-codec/record"
)

// ErrMissingState is returned when a partial Entity State update
// references an entity id that has no prior cache entry.
var ErrMissingState = errors.New("state: no cached entry for entity id")

// EntityStateFields is the subset of an Entity State body subject to
// partial-update suppression: force id, entity type, alt entity type,
// linear velocity, location, orientation, appearance, dead-reckoning
// algorithm+parameters, marking, capabilities and variable parameters.
type EntityStateFields struct {
	ForceID             uint32
	EntityType          record.EntityType
	AltEntityType       record.EntityType
	LinearVelocity      record.Vector3
	Location            record.WorldCoordinates
	Orientation         record.Vector3
	Appearance          record.Appearance
	DeadReckoning       record.DeadReckoningParameters
	Marking             record.Marking
	Capabilities        uint32
	VariableParameters  []record.VariableParameter
}

// Entry is one cached Entity State, plus the session-local timestamp of
// when it was last sent (encoder side) or received (decoder side).
type Entry struct {
	Timestamp time.Time
	Fields    EntityStateFields
}

// cacheKey hashes a record.CacheKey down to a uint64 bucket key via
// xxhash, so the state maps scale past simple small-program sizes
// without per-lookup allocation of a composite struct key's hash.
func cacheKey(k record.CacheKey) uint64 {
	var buf [12]byte
	buf[0] = byte(k.Site)
	buf[1] = byte(k.Site >> 8)
	buf[2] = byte(k.Site >> 16)
	buf[3] = byte(k.Site >> 24)
	buf[4] = byte(k.Application)
	buf[5] = byte(k.Application >> 8)
	buf[6] = byte(k.Application >> 16)
	buf[7] = byte(k.Application >> 24)
	buf[8] = byte(k.Entity)
	buf[9] = byte(k.Entity >> 8)
	buf[10] = byte(k.Entity >> 16)
	buf[11] = byte(k.Entity >> 24)
	return xxhash.Sum64(buf[:])
}

// bucket pairs the original key with its entry, so hash collisions can be
// disambiguated without widening the map's value type.
type bucket struct {
	key   record.CacheKey
	entry Entry
}

// EncoderState is the encoder-side cache, keyed by entity id.
type EncoderState struct {
	entries map[uint64]bucket
}

// NewEncoderState constructs an empty encoder state cache.
func NewEncoderState() *EncoderState {
	return &EncoderState{entries: make(map[uint64]bucket)}
}

// Lookup returns the cached entry for id, if any.
func (s *EncoderState) Lookup(id record.EntityID) (Entry, bool) {
	b, ok := s.entries[cacheKey(id.Key())]
	if !ok || b.key != id.Key() {
		return Entry{}, false
	}
	return b.entry, true
}

// Update replaces the cached entry for id and refreshes its timestamp.
func (s *EncoderState) Update(id record.EntityID, fields EntityStateFields, now time.Time) {
	s.entries[cacheKey(id.Key())] = bucket{key: id.Key(), entry: Entry{Timestamp: now, Fields: fields}}
}

// DecoderState is the decoder-side cache, keyed by entity id.
type DecoderState struct {
	entries map[uint64]bucket
}

// NewDecoderState constructs an empty decoder state cache.
func NewDecoderState() *DecoderState {
	return &DecoderState{entries: make(map[uint64]bucket)}
}

// Lookup returns the cached entry for id, if any.
func (s *DecoderState) Lookup(id record.EntityID) (Entry, bool) {
	b, ok := s.entries[cacheKey(id.Key())]
	if !ok || b.key != id.Key() {
		return Entry{}, false
	}
	return b.entry, true
}

// Update replaces the cached entry for id and refreshes its timestamp.
func (s *DecoderState) Update(id record.EntityID, fields EntityStateFields, now time.Time) {
	s.entries[cacheKey(id.Key())] = bucket{key: id.Key(), entry: Entry{Timestamp: now, Fields: fields}}
}

// Session bundles the one EncoderState and one DecoderState a codec
// session owns (§5: a session owns exactly one of each), tagged with a
// UUID so log lines from concurrent sessions in the same process can be
// correlated back to the cache they mutated.
type Session struct {
	ID      uuid.UUID
	Encoder *EncoderState
	Decoder *DecoderState
}

// NewSession constructs a fresh, empty session.
func NewSession() Session {
	return Session{ID: uuid.New(), Encoder: NewEncoderState(), Decoder: NewDecoderState()}
}
