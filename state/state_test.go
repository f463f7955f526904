package state

import (
	"testing"
	"time"

	"github.com/rob-gra/cdis-codec/record"
	"github.com/stretchr/testify/require"
)

func TestEncoderState_LookupMissing(t *testing.T) {
	s := NewEncoderState()
	_, ok := s.Lookup(record.NewEntityID(1, 2, 3))
	require.False(t, ok)
}

func TestEncoderState_UpdateThenLookup(t *testing.T) {
	s := NewEncoderState()
	id := record.NewEntityID(1, 2, 3)
	now := time.Unix(1000, 0)

	s.Update(id, EntityStateFields{ForceID: 8}, now)

	got, ok := s.Lookup(id)
	require.True(t, ok)
	require.Equal(t, uint32(8), got.Fields.ForceID)
	require.Equal(t, now, got.Timestamp)
}

func TestNewSession_OwnsIndependentEncoderAndDecoder(t *testing.T) {
	a := NewSession()
	b := NewSession()
	require.NotEqual(t, a.ID, b.ID)

	id := record.NewEntityID(1, 2, 3)
	a.Encoder.Update(id, EntityStateFields{ForceID: 8}, time.Unix(0, 0))
	_, ok := a.Decoder.Lookup(id)
	require.False(t, ok)
	_, ok = b.Encoder.Lookup(id)
	require.False(t, ok)
}

func TestDecoderState_DistinctEntitiesDoNotCollide(t *testing.T) {
	s := NewDecoderState()
	a := record.NewEntityID(1, 1, 1)
	b := record.NewEntityID(1, 1, 2)

	s.Update(a, EntityStateFields{ForceID: 1}, time.Unix(0, 0))
	s.Update(b, EntityStateFields{ForceID: 2}, time.Unix(0, 0))

	gotA, ok := s.Lookup(a)
	require.True(t, ok)
	require.Equal(t, uint32(1), gotA.Fields.ForceID)

	gotB, ok := s.Lookup(b)
	require.True(t, ok)
	require.Equal(t, uint32(2), gotB.Fields.ForceID)
}
