package card

import "time"

// MetadataKey enumerates the fields the Normalizer extracts from a raw
// card before constructing a typed variant.
type MetadataKey string

const (
	MetaID          MetadataKey = "id"
	MetaCreatedAt   MetadataKey = "created_at"
	MetaDismissible MetadataKey = "dismissible"
	MetaExtras      MetadataKey = "extras"
	MetaImage       MetadataKey = "image"
	MetaTitle       MetadataKey = "title"
	MetaDescription MetadataKey = "description"
	MetaTags        MetadataKey = "tags"
)

// Metadata is the loosely-typed intermediate representation built per
// card during normalization. It exists only for the duration of a
// single conversion and is never persisted.
type Metadata map[MetadataKey]any

func (m Metadata) str(key MetadataKey) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func (m Metadata) timestamp(key MetadataKey) time.Time {
	if v, ok := m[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func (m Metadata) flag(key MetadataKey) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func (m Metadata) extras() map[string]string {
	if v, ok := m[MetaExtras].(map[string]string); ok {
		return v
	}
	return nil
}

func (m Metadata) extra(name string) string {
	return m.extras()[name]
}
