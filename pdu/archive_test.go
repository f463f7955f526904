package pdu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressUnsupported_RoundTrip(t *testing.T) {
	body := UnsupportedBody{PayloadBits: 64, Payload: []byte("abcdefgh")}

	compressed, err := CompressUnsupported(body)
	require.NoError(t, err)

	got, err := DecompressUnsupported(compressed, body.PayloadBits)
	require.NoError(t, err)
	require.Equal(t, body.Payload, got.Payload)
	require.Equal(t, body.PayloadBits, got.PayloadBits)
}
