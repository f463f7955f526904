package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/scale"
)

// MarkingCharCountBits holds the character count; characters themselves
// are 5 or 6 bits each depending on the character set tag.
const MarkingCharCountBits = 4

// Marking is the compact entity marking record: a character-set tag
// followed by a count and that many character codes.
type Marking struct {
	CharSet scale.MarkingCharSet
	Text    string
}

// NewMarking prepares (uppercase, truncate) and selects the narrowest
// character set for text, per §4.3/§4.4.
func NewMarking(text string) Marking {
	prepared := scale.PrepareMarking(text)
	return Marking{CharSet: scale.SelectMarkingCharSet(prepared), Text: prepared}
}

// BitLength is 1 (char-set tag) + 4 (count) + len(Text) * per-char width.
func (m Marking) BitLength() int {
	return 1 + MarkingCharCountBits + len(m.Text)*scale.MarkingCharBits(m.CharSet)
}

// Encode writes the char-set tag, character count and character codes.
func (m Marking) Encode(c *bitio.Cursor) error {
	tag := uint64(0)
	if m.CharSet == scale.MarkingCharSet6Bit {
		tag = 1
	}
	if err := c.WriteUint(tag, 1); err != nil {
		return fmt.Errorf("record: marking char set tag: %w", err)
	}
	if err := c.WriteUint(uint64(len(m.Text)), MarkingCharCountBits); err != nil {
		return fmt.Errorf("record: marking char count: %w", err)
	}
	bits := scale.MarkingCharBits(m.CharSet)
	for _, r := range m.Text {
		code := scale.EncodeMarkingChar(m.CharSet, r)
		if err := c.WriteUint(uint64(code), bits); err != nil {
			return fmt.Errorf("record: marking char: %w", err)
		}
	}
	return nil
}

// DecodeMarking reads a Marking record.
func DecodeMarking(c *bitio.Cursor) (Marking, error) {
	tag, err := c.ReadUint(1)
	if err != nil {
		return Marking{}, fmt.Errorf("record: marking char set tag: %w", err)
	}
	cs := scale.MarkingCharSet5Bit
	if tag == 1 {
		cs = scale.MarkingCharSet6Bit
	}
	count, err := c.ReadUint(MarkingCharCountBits)
	if err != nil {
		return Marking{}, fmt.Errorf("record: marking char count: %w", err)
	}
	bits := scale.MarkingCharBits(cs)
	runes := make([]rune, count)
	for i := range runes {
		code, err := c.ReadUint(bits)
		if err != nil {
			return Marking{}, fmt.Errorf("record: marking char: %w", err)
		}
		runes[i] = scale.DecodeMarkingChar(cs, uint32(code))
	}
	return Marking{CharSet: cs, Text: string(runes)}, nil
}
