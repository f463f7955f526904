package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// Fixed bit widths for the enum-coded entity type fields, per §3.
const (
	EntityKindBits    = 4
	EntityDomainBits  = 4
	EntityCountryBits = 9
)

// EntityType is (kind, domain, country, category, subcategory, specific,
// extra). Kind/domain/country are fixed-width enum codes; the remaining
// four are variable-width unsigned integers.
type EntityType struct {
	Kind, Domain, Country                  uint32
	Category, Subcategory, Specific, Extra varint.UVarInt
}

// NewEntityType builds an EntityType, masking the fixed-width fields and
// saturating the varint fields.
func NewEntityType(kind, domain, country, category, subcategory, specific, extra uint32) EntityType {
	return EntityType{
		Kind:        kind & (1<<EntityKindBits - 1),
		Domain:      domain & (1<<EntityDomainBits - 1),
		Country:     country & (1<<EntityCountryBits - 1),
		Category:    varint.NewUVarInt(varint.UVInt8Kind, category),
		Subcategory: varint.NewUVarInt(varint.UVInt8Kind, subcategory),
		Specific:    varint.NewUVarInt(varint.UVInt8Kind, specific),
		Extra:       varint.NewUVarInt(varint.UVInt8Kind, extra),
	}
}

// BitLength is the sum of the three fixed widths and the four varints'
// selector+value widths.
func (t EntityType) BitLength() int {
	return EntityKindBits + EntityDomainBits + EntityCountryBits +
		t.Category.BitSize() + t.Subcategory.BitSize() + t.Specific.BitSize() + t.Extra.BitSize()
}

// Encode writes the seven fields in kind, domain, country, category,
// subcategory, specific, extra order.
func (t EntityType) Encode(c *bitio.Cursor) error {
	if err := c.WriteUint(uint64(t.Kind), EntityKindBits); err != nil {
		return fmt.Errorf("record: entity type kind: %w", err)
	}
	if err := c.WriteUint(uint64(t.Domain), EntityDomainBits); err != nil {
		return fmt.Errorf("record: entity type domain: %w", err)
	}
	if err := c.WriteUint(uint64(t.Country), EntityCountryBits); err != nil {
		return fmt.Errorf("record: entity type country: %w", err)
	}
	fields := [4]struct {
		name string
		v    varint.UVarInt
	}{
		{"category", t.Category}, {"subcategory", t.Subcategory}, {"specific", t.Specific}, {"extra", t.Extra},
	}
	for _, f := range fields {
		if err := f.v.Encode(c); err != nil {
			return fmt.Errorf("record: entity type %s: %w", f.name, err)
		}
	}
	return nil
}

// DecodeEntityType reads an EntityType.
func DecodeEntityType(c *bitio.Cursor) (EntityType, error) {
	kind, err := c.ReadUint(EntityKindBits)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type kind: %w", err)
	}
	domain, err := c.ReadUint(EntityDomainBits)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type domain: %w", err)
	}
	country, err := c.ReadUint(EntityCountryBits)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type country: %w", err)
	}
	category, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type category: %w", err)
	}
	subcategory, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type subcategory: %w", err)
	}
	specific, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type specific: %w", err)
	}
	extra, err := varint.DecodeUVarInt(c, varint.UVInt8Kind)
	if err != nil {
		return EntityType{}, fmt.Errorf("record: entity type extra: %w", err)
	}
	return EntityType{
		Kind: uint32(kind), Domain: uint32(domain), Country: uint32(country),
		Category: category, Subcategory: subcategory, Specific: specific, Extra: extra,
	}, nil
}
