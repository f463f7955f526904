package bitio

import "errors"

// Error kinds returned by Cursor operations. Callers compare with
// errors.Is; the codec layers wrap these with field context via %w.
var (
	// ErrShortInput means the buffer was exhausted before a field could
	// be read.
	ErrShortInput = errors.New("bitio: short input")
	// ErrOutOfSpace means the output buffer is too small for the write.
	ErrOutOfSpace = errors.New("bitio: out of space")
	// ErrValueOutOfRange means a value does not fit the configured bit
	// width and no saturation rule applies.
	ErrValueOutOfRange = errors.New("bitio: value out of range")
	// ErrMisaligned means a byte-run operation was attempted at a
	// non-byte-aligned cursor position.
	ErrMisaligned = errors.New("bitio: cursor not byte-aligned")
	// ErrInvalidDiscriminator means a tag value (body type, variable
	// parameter type, marking character set, ...) read off the wire is
	// reserved or unknown in a context that requires a recognized one.
	// Lives here, below every codec-layer package, so both record and
	// pdu can return it without creating an import cycle between them.
	ErrInvalidDiscriminator = errors.New("bitio: invalid discriminator")
)
