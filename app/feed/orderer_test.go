package feed

import (
	"testing"

	"github.com/mercato-app/homefeed/app/card"
)

func cardTile(id string, tags ...string) card.Tile {
	return card.Tile{
		ID:    id,
		Data:  &card.CardData{ID: id, ClassType: card.ClassTile},
		Title: "Tile " + id,
		Tags:  tags,
	}
}

func localTile(id string, tags ...string) card.Tile {
	return card.Tile{ID: id, Title: "Tile " + id, Tags: tags}
}

func assertOrder(t *testing.T, got []card.Tile, expected ...string) {
	t.Helper()
	if len(got) != len(expected) {
		ids := make([]string, len(got))
		for i, tile := range got {
			ids[i] = tile.ID
		}
		t.Fatalf("Expected %d tiles %v, got %v", len(expected), expected, ids)
	}
	for i, id := range expected {
		if got[i].ID != id {
			ids := make([]string, len(got))
			for j, tile := range got {
				ids[j] = tile.ID
			}
			t.Fatalf("Expected order %v, got %v", expected, ids)
		}
	}
}

func TestOrderer_EmptyHintIsIdentity(t *testing.T) {
	orderer := NewOrderer()
	tiles := []card.Tile{localTile("a", "x"), cardTile("b", "y"), localTile("c")}

	for _, hint := range []string{"", "   ", "\t"} {
		result := orderer.Run(tiles, hint)
		assertOrder(t, result, "a", "b", "c")
	}
}

func TestOrderer_EmptyHintIdempotent(t *testing.T) {
	orderer := NewOrderer()
	tiles := []card.Tile{localTile("a", "x"), cardTile("b", "y")}

	once := orderer.Run(tiles, "")
	twice := orderer.Run(once, "")

	assertOrder(t, twice, "a", "b")
}

func TestOrderer_PriorityClustering(t *testing.T) {
	orderer := NewOrderer()

	// A matches "x" without a backing card, B matches nothing, C and D
	// are card-backed and match "y" and "x" respectively.
	tiles := []card.Tile{
		localTile("A", "x"),
		localTile("B"),
		cardTile("C", "y"),
		cardTile("D", "x"),
	}

	result := orderer.Run(tiles, "x, y")

	// Token "x": reverse scan finds D (card, front) then A (no card,
	// back) giving [D A]. Token "y": C (card) goes to the front giving
	// [C D A]. B keeps its natural place at the tail.
	assertOrder(t, result, "C", "D", "A", "B")
}

func TestOrderer_CardTilesKeepRelativeOrderWithinToken(t *testing.T) {
	orderer := NewOrderer()

	tiles := []card.Tile{
		cardTile("E", "x"),
		localTile("B"),
		cardTile("D", "x"),
	}

	result := orderer.Run(tiles, "x")

	// Reverse scan prepends D first, then E, restoring input order
	// among card-backed matches of the same token.
	assertOrder(t, result, "E", "D", "B")
}

func TestOrderer_NonCardMatchesAppendInScanOrder(t *testing.T) {
	orderer := NewOrderer()

	tiles := []card.Tile{
		localTile("A", "x"),
		localTile("B", "x"),
		localTile("C"),
	}

	result := orderer.Run(tiles, "x")

	// Reverse scan appends B then A.
	assertOrder(t, result, "B", "A", "C")
}

func TestOrderer_TileMatchingMultipleTokensMovesOnce(t *testing.T) {
	orderer := NewOrderer()

	tiles := []card.Tile{
		cardTile("A", "x", "y"),
		localTile("B", "y"),
	}

	result := orderer.Run(tiles, "x, y")

	// A is removed on its first match ("x") and cannot match "y" again.
	assertOrder(t, result, "A", "B")
}

func TestOrderer_UnmatchedTokenIsNoOp(t *testing.T) {
	orderer := NewOrderer()

	tiles := []card.Tile{localTile("a"), localTile("b")}

	result := orderer.Run(tiles, "nonexistent")
	assertOrder(t, result, "a", "b")
}

func TestOrderer_EmptyTileList(t *testing.T) {
	orderer := NewOrderer()

	result := orderer.Run(nil, "x, y")
	if len(result) != 0 {
		t.Errorf("Expected empty result, got %d tiles", len(result))
	}
}
