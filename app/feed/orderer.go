package feed

import (
	"strings"

	"github.com/mercato-app/homefeed/app/card"
)

// Orderer reorders tiles according to a persisted priority hint: a
// comma-space-separated list of tag tokens, most important first.
type Orderer struct{}

func NewOrderer() *Orderer {
	return &Orderer{}
}

// Run returns the tiles reordered by the hint. An empty hint is the
// identity operation and returns the input unchanged.
//
// For each token, in hint order, the remaining tiles are scanned from
// the end toward the start. Every match is removed and moved into the
// priority list: card-backed tiles are inserted at the front, synthetic
// tiles are appended at the end. A tile matching several tokens moves
// only once. The result is the priority list followed by the remaining
// tiles in their original relative order.
func (o *Orderer) Run(tiles []card.Tile, hint string) []card.Tile {
	if strings.TrimSpace(hint) == "" {
		return tiles
	}

	tokens := strings.Split(hint, ", ")
	priority := make([]card.Tile, 0, len(tiles))
	remaining := make([]card.Tile, len(tiles))
	copy(remaining, tiles)

	for _, token := range tokens {
		for i := len(remaining) - 1; i >= 0; i-- {
			tile := remaining[i]
			if !tile.HasTag(token) {
				continue
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
			if tile.Card() != nil {
				priority = append([]card.Tile{tile}, priority...)
			} else {
				priority = append(priority, tile)
			}
		}
	}

	return append(priority, remaining...)
}
