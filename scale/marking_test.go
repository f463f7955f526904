package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectMarkingCharSet_PlainTextUses5Bit(t *testing.T) {
	m := PrepareMarking("unit 12")
	require.Equal(t, MarkingCharSet5Bit, SelectMarkingCharSet(m))
}

func TestSelectMarkingCharSet_ExcludedLetterForces6Bit(t *testing.T) {
	m := PrepareMarking("JAXON")
	require.Equal(t, MarkingCharSet6Bit, SelectMarkingCharSet(m))
}

func TestPrepareMarking_TruncatesAndUppercases(t *testing.T) {
	m := PrepareMarking("callsign-too-long")
	require.Len(t, m, MaxMarkingChars)
	require.Equal(t, "CALLSIGN-TO", m)
}

func TestMarkingChar_RoundTrip5Bit(t *testing.T) {
	for _, r := range []rune("ABC 0123456789") {
		code := EncodeMarkingChar(MarkingCharSet5Bit, r)
		got := DecodeMarkingChar(MarkingCharSet5Bit, code)
		require.Equal(t, r, got)
	}
}

func TestMarkingChar_RoundTrip6Bit(t *testing.T) {
	for _, r := range []rune("TEST-123 !") {
		code := EncodeMarkingChar(MarkingCharSet6Bit, r)
		got := DecodeMarkingChar(MarkingCharSet6Bit, code)
		require.Equal(t, r, got)
	}
}
