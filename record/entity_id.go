package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// EntityID is a (site, application, entity) triple, each a UVINT16 per
// §3/§6.
type EntityID struct {
	Site, Application, Entity varint.UVarInt
}

// NewEntityID builds an EntityID from standard-format uint16 fields,
// saturating each component into a UVarInt.
func NewEntityID(site, application, entity uint32) EntityID {
	return EntityID{
		Site:        varint.NewUVarInt(varint.UVInt16Kind, site),
		Application: varint.NewUVarInt(varint.UVInt16Kind, application),
		Entity:      varint.NewUVarInt(varint.UVInt16Kind, entity),
	}
}

// BitLength sums the three components' selector+value widths.
func (id EntityID) BitLength() int {
	return id.Site.BitSize() + id.Application.BitSize() + id.Entity.BitSize()
}

// Encode writes site, application, entity in that order.
func (id EntityID) Encode(c *bitio.Cursor) error {
	if err := id.Site.Encode(c); err != nil {
		return fmt.Errorf("record: entity id site: %w", err)
	}
	if err := id.Application.Encode(c); err != nil {
		return fmt.Errorf("record: entity id application: %w", err)
	}
	if err := id.Entity.Encode(c); err != nil {
		return fmt.Errorf("record: entity id entity: %w", err)
	}
	return nil
}

// DecodeEntityID reads an EntityID.
func DecodeEntityID(c *bitio.Cursor) (EntityID, error) {
	site, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
	if err != nil {
		return EntityID{}, fmt.Errorf("record: entity id site: %w", err)
	}
	app, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
	if err != nil {
		return EntityID{}, fmt.Errorf("record: entity id application: %w", err)
	}
	entity, err := varint.DecodeUVarInt(c, varint.UVInt16Kind)
	if err != nil {
		return EntityID{}, fmt.Errorf("record: entity id entity: %w", err)
	}
	return EntityID{Site: site, Application: app, Entity: entity}, nil
}

// CacheKey is a comparable value suitable for use as a map key in the
// per-peer state cache.
type CacheKey struct {
	Site, Application, Entity uint32
}

// Key returns id's cache key.
func (id EntityID) Key() CacheKey {
	return CacheKey{Site: id.Site.Value, Application: id.Application.Value, Entity: id.Entity.Value}
}
