package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mercato-app/homefeed/app/card"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "homefeed_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestCardRepo_ReplaceAndLoadBatch(t *testing.T) {
	repo := NewCardRepo(testDB(t))

	batch := []card.RawCard{
		{ID: "c1", Classification: "tile", Kind: card.KindClassic, Title: "First",
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "c2", Classification: "ad", Kind: card.KindBanner, ImageURL: "https://cdn.example.com/a.png"},
	}

	if err := repo.ReplaceBatch(batch); err != nil {
		t.Fatalf("Failed to store batch: %v", err)
	}

	loaded, err := repo.GetLatestBatch()
	if err != nil {
		t.Fatalf("Failed to load batch: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(loaded))
	}
	if loaded[0].ID != "c1" || loaded[1].ID != "c2" {
		t.Errorf("Expected batch order preserved, got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Title != "First" || !loaded[0].CreatedAt.Equal(batch[0].CreatedAt) {
		t.Errorf("Card fields not round-tripped: %+v", loaded[0])
	}

	// Replacing with a smaller batch drops the old rows.
	if err := repo.ReplaceBatch(batch[1:]); err != nil {
		t.Fatalf("Failed to replace batch: %v", err)
	}

	count, err := repo.GetCardCount()
	if err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 card after replace, got %d", count)
	}
}

func TestCardRepo_EmptyBatch(t *testing.T) {
	repo := NewCardRepo(testDB(t))

	loaded, err := repo.GetLatestBatch()
	if err != nil {
		t.Fatalf("Unexpected error for empty table: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty batch, got %d cards", len(loaded))
	}
}

func TestEventRepo_InsertAndCount(t *testing.T) {
	repo := NewEventRepo(testDB(t))

	now := time.Now()
	events := []struct{ name, cardID string }{
		{"content_card_clicked", "c1"},
		{"content_card_clicked", "c2"},
		{"content_card_impression", "c1"},
		{"spring_sale_opened", ""},
	}
	for _, e := range events {
		if err := repo.Insert(e.name, e.cardID, now); err != nil {
			t.Fatalf("Failed to insert event %s: %v", e.name, err)
		}
	}

	counts, err := repo.CountByName()
	if err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	if counts["content_card_clicked"] != 2 {
		t.Errorf("Expected 2 clicks, got %d", counts["content_card_clicked"])
	}
	if counts["content_card_impression"] != 1 {
		t.Errorf("Expected 1 impression, got %d", counts["content_card_impression"])
	}
	if counts["spring_sale_opened"] != 1 {
		t.Errorf("Expected 1 custom event, got %d", counts["spring_sale_opened"])
	}
}
