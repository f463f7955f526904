package pdu

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/clog"
	"github.com/rob-gra/cdis-codec/entitystate"
	"github.com/rob-gra/cdis-codec/enum"
)

// compactBody is satisfied by every compact body variant this module
// knows how to frame: its exact bit length (for the header's length
// field) and a cursor encoder.
type compactBody interface {
	BitLength() int
	Encode(c *bitio.Cursor) error
}

// EncodeCompactPDU composes h and body into one PDU: it fills in h's
// TotalLengthBits from body's own BitLength, encodes the header, then
// the body, and returns the packed bytes (zero-padded to a byte
// boundary). Per §4.7, the length field can only be known once the body
// has been sized, so callers pass an unsized header and get the framed
// one back.
func EncodeCompactPDU(h CompactHeader, body compactBody) (CompactHeader, []byte, error) {
	h.TotalLengthBits = uint16(h.BitLength() + body.BitLength())
	c := bitio.NewWriter(0)
	if err := h.Encode(c); err != nil {
		return h, nil, fmt.Errorf("pdu: encode header: %w", err)
	}
	if err := body.Encode(c); err != nil {
		return h, nil, fmt.Errorf("pdu: encode body: %w", err)
	}
	if err := c.AlignToByte(); err != nil {
		return h, nil, fmt.Errorf("pdu: align trailing byte: %w", err)
	}
	return h, c.Bytes(), nil
}

// DecodePDU reads a header and dispatches its body to the matching
// codec by BodyType, or to UnsupportedBody for any code this module
// does not implement, per §4.7/§7. It never errors on an unrecognized
// body type.
func DecodePDU(buf []byte) (CompactHeader, Body, error) {
	c := bitio.NewReader(buf)
	h, err := DecodeCompactHeader(c)
	if err != nil {
		return CompactHeader{}, Body{}, fmt.Errorf("pdu: decode header: %w", err)
	}
	if h.Version != CompactVersionV1 {
		return h, Body{}, fmt.Errorf("pdu: version %d: %w", h.Version, ErrUnsupportedVersion)
	}

	payloadBits := int(h.TotalLengthBits) - h.BitLength()
	if payloadBits < 0 {
		return h, Body{}, fmt.Errorf("pdu: declared total length %d shorter than header", h.TotalLengthBits)
	}

	var body Body
	switch h.BodyType {
	case enum.BodyEntityState:
		entityBody, err := entitystate.DecodeCompactBody(c)
		if err != nil {
			return h, Body{}, fmt.Errorf("pdu: decode entity state body: %w", err)
		}
		body.EntityState = &entityBody
	case enum.BodyIFF:
		iffBody, err := DecodeIFFBody(c)
		if err != nil {
			return h, Body{}, fmt.Errorf("pdu: decode iff body: %w", err)
		}
		body.IFF = &iffBody
	case enum.BodyComment, enum.BodyData, enum.BodySetData, enum.BodyDataQuery,
		enum.BodyEventReport, enum.BodyActionRequest, enum.BodyActionResponse, enum.BodyAcknowledge:
		datumBody, err := DecodeDatumBody(c)
		if err != nil {
			return h, Body{}, fmt.Errorf("pdu: decode datum body: %w", err)
		}
		body.Datum = &datumBody
	default:
		unsupported, err := DecodeUnsupportedBody(c, payloadBits)
		if err != nil {
			return h, Body{}, fmt.Errorf("pdu: decode unsupported body: %w", err)
		}
		body.Unsupported = &unsupported
	}
	return h, body, nil
}

// DecodePDULogged is DecodePDU with session-tagged logging of the body
// type dispatched and any decode failure, for callers (the CLI) that
// want visibility without threading a logger through every call site.
func DecodePDULogged(buf []byte, sess clog.Session) (CompactHeader, Body, error) {
	h, body, err := DecodePDU(buf)
	if err != nil {
		sess.Error("decode failed: %v", err)
		return h, body, err
	}
	if body.Unsupported != nil {
		sess.Warn("body type %v decoded as unsupported (%d payload bits)", h.BodyType, body.Unsupported.PayloadBits)
	} else {
		sess.Debug("decoded body type %v", h.BodyType)
	}
	return h, body, nil
}
