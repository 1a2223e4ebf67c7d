package feed

import "github.com/mercato-app/homefeed/app/card"

// Presentation types

type SectionKind string

const (
	SectionAd   SectionKind = "ad"
	SectionTile SectionKind = "tile"
)

type Section struct {
	Kind  SectionKind `json:"kind"`
	Ads   []card.Ad   `json:"ads,omitempty"`
	Tiles []card.Tile `json:"tiles,omitempty"`
}

// Snapshot is the ordered, sectioned presentation model consumed by
// rendering clients. Section order is fixed: ads first, then tiles,
// both always present even when empty.
type Snapshot struct {
	Sections []Section `json:"sections"`
}

func (s Snapshot) Ads() []card.Ad {
	for _, section := range s.Sections {
		if section.Kind == SectionAd {
			return section.Ads
		}
	}
	return nil
}

func (s Snapshot) Tiles() []card.Tile {
	for _, section := range s.Sections {
		if section.Kind == SectionTile {
			return section.Tiles
		}
	}
	return nil
}

// HasCard reports whether any item in the snapshot is backed by the
// given vendor card.
func (s Snapshot) HasCard(id string) bool {
	for _, ad := range s.Ads() {
		if ad.Data != nil && ad.Data.ID == id {
			return true
		}
	}
	for _, tile := range s.Tiles() {
		if tile.Data != nil && tile.Data.ID == id {
			return true
		}
	}
	return false
}

// ExperienceMode selects which tiles populate the tile section.
type ExperienceMode string

const (
	// ModeDefault shows only locally configured tiles.
	ModeDefault ExperienceMode = "default"
	// ModeContentCard appends vendor card tiles after the local ones.
	ModeContentCard ExperienceMode = "content_card"
)

// Configuration types

// TileConfig is one locally defined tile, loaded from a YAML file.
// Local tiles are synthetic: they have no backing vendor card.
type TileConfig struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Detail string   `yaml:"detail"`
	Price  string   `yaml:"price"`
	Image  string   `yaml:"image"`
	Tags   []string `yaml:"tags"`
}
