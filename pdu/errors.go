package pdu

import (
	"errors"

	"github.com/rob-gra/cdis-codec/bitio"
)

// Error kinds the dispatcher and header codecs can return, layered over
// bitio's lower-level ones via %w wrapping.
var (
	// ErrUnsupportedVersion means a header declared a protocol version
	// this codec cannot handle.
	ErrUnsupportedVersion = errors.New("pdu: unsupported protocol version")
	// ErrInvalidDiscriminator is bitio's shared sentinel, re-exported
	// here so pdu callers can match it without importing bitio
	// themselves. Every PDU body-type code is legal at this layer
	// (unrecognized ones fall through to UnsupportedBody); this is the
	// variant record's variable-parameter decoder returns, since both
	// packages need to compare against the same error.
	ErrInvalidDiscriminator = bitio.ErrInvalidDiscriminator
)
