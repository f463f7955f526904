package pdu

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// CompressUnsupported zstd-compresses b's opaque payload for archival
// storage. This never runs on the wire path — PDUs are never compressed
// in transit — it is a convenience for an external capture store that
// wants to keep large runs of Unsupported bodies (e.g. unrecognized
// vendor extensions) without paying full size on disk.
func CompressUnsupported(b UnsupportedBody) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("pdu: zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(b.Payload, nil), nil
}

// DecompressUnsupported is the inverse of CompressUnsupported, restoring
// an UnsupportedBody of the given declared bit length.
func DecompressUnsupported(compressed []byte, bitLength int) (UnsupportedBody, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return UnsupportedBody{}, fmt.Errorf("pdu: zstd reader: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return UnsupportedBody{}, fmt.Errorf("pdu: zstd decode: %w", err)
	}
	return UnsupportedBody{PayloadBits: bitLength, Payload: payload}, nil
}
