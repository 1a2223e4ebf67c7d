package feed

import "github.com/mercato-app/homefeed/app/card"

// AnalyticsLogger is the vendor analytics boundary the assembler needs.
type AnalyticsLogger interface {
	CardDismissed(id string)
}

// Assembler combines ad and tile variants into the two-section
// presentation snapshot.
type Assembler struct {
	orderer   *Orderer
	analytics AnalyticsLogger
}

func NewAssembler(orderer *Orderer, analytics AnalyticsLogger) *Assembler {
	return &Assembler{
		orderer:   orderer,
		analytics: analytics,
	}
}

// Build produces a fresh snapshot. The tile list is ordered by the
// priority hint first; sections are always emitted in ad, tile order.
func (a *Assembler) Build(ads []card.Ad, tiles []card.Tile, hint string) Snapshot {
	return Snapshot{
		Sections: []Section{
			{Kind: SectionAd, Ads: ads},
			{Kind: SectionTile, Tiles: a.orderer.Run(tiles, hint)},
		},
	}
}

// Reorder re-derives the tile order from the snapshot's own tile items
// and replaces only the tile section. Used when a priority hint arrives
// without new card data; the ad section is untouched.
func (a *Assembler) Reorder(s Snapshot, hint string) Snapshot {
	sections := make([]Section, len(s.Sections))
	copy(sections, s.Sections)

	for i, section := range sections {
		if section.Kind == SectionTile {
			sections[i].Tiles = a.orderer.Run(section.Tiles, hint)
		}
	}

	return Snapshot{Sections: sections}
}

// Reset records a dismissed analytics event for every card-backed tile
// in the snapshot. No structural change. Runs when the presentation
// surface is being torn down, so the vendor knows the user no longer
// sees those cards.
func (a *Assembler) Reset(s Snapshot) {
	for _, tile := range s.Tiles() {
		if tile.Card() != nil {
			a.analytics.CardDismissed(tile.Card().ID)
		}
	}
}
