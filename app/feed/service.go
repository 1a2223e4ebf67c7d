package feed

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mercato-app/homefeed/app/card"
	"github.com/mercato-app/homefeed/app/database"
	"github.com/mercato-app/homefeed/app/store"
)

// Service owns the current presentation snapshot and the last ingested
// vendor batch. All mutating methods are invoked from the single task
// worker, one event at a time; the mutex only guards concurrent HTTP
// reads against those writes.
type Service struct {
	normalizer Normalizer
	assembler  *Assembler
	tiles      *TileCache
	priorities store.PriorityStore
	cardRepo   database.CardRepository

	mu       sync.RWMutex
	snapshot Snapshot
	mode     ExperienceMode
	batch    []card.RawCard
}

// Normalizer converts raw vendor cards into domain variants.
type Normalizer interface {
	Run(raw []card.RawCard, wanted card.TypeSet) []card.Variant
}

func NewService(normalizer Normalizer, assembler *Assembler, tiles *TileCache,
	priorities store.PriorityStore, cardRepo database.CardRepository) *Service {
	return &Service{
		normalizer: normalizer,
		assembler:  assembler,
		tiles:      tiles,
		priorities: priorities,
		cardRepo:   cardRepo,
		mode:       ModeContentCard,
	}
}

// Restore loads the last persisted vendor batch and rebuilds the
// snapshot, so the feed survives a restart without waiting for the
// next vendor sync.
func (s *Service) Restore() error {
	batch, err := s.cardRepo.GetLatestBatch()
	if err != nil {
		return fmt.Errorf("failed to load persisted batch: %w", err)
	}

	s.mu.Lock()
	s.batch = batch
	s.mu.Unlock()

	return s.Rebuild()
}

// Ingest replaces the current vendor batch and rebuilds the snapshot.
func (s *Service) Ingest(batch []card.RawCard) error {
	if err := s.cardRepo.ReplaceBatch(batch); err != nil {
		return fmt.Errorf("failed to persist batch: %w", err)
	}

	s.mu.Lock()
	s.batch = batch
	s.mu.Unlock()

	slog.Info("Vendor batch ingested", "cards", len(batch))
	return s.Rebuild()
}

// Rebuild constructs a fresh snapshot from the current batch, the
// local tiles and the persisted priority hint.
func (s *Service) Rebuild() error {
	hint := s.priorityHint()

	s.mu.Lock()
	defer s.mu.Unlock()

	variants := s.normalizer.Run(s.batch, card.NewTypeSet(card.ClassAd, card.ClassTile))

	var ads []card.Ad
	var vendorTiles []card.Tile
	for _, v := range variants {
		switch v := v.(type) {
		case card.Ad:
			ads = append(ads, v)
		case card.Tile:
			vendorTiles = append(vendorTiles, v)
		}
	}

	tiles := s.tiles.GetTiles()
	if s.mode == ModeContentCard {
		tiles = append(tiles, vendorTiles...)
	}

	s.snapshot = s.assembler.Build(ads, tiles, hint)
	slog.Debug("Snapshot rebuilt", "mode", s.mode, "ads", len(ads), "tiles", len(tiles))
	return nil
}

// Reorder re-derives the tile order from the snapshot's current items
// without touching the ad section or re-reading the batch.
func (s *Service) Reorder() error {
	hint := s.priorityHint()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = s.assembler.Reorder(s.snapshot, hint)
	slog.Debug("Snapshot reordered", "hint", hint)
	return nil
}

// SwitchMode changes the experience mode and rebuilds.
func (s *Service) SwitchMode(mode ExperienceMode) error {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	slog.Info("Experience switched", "mode", mode)
	return s.Rebuild()
}

// Reset emits a dismissed analytics event for every card-backed tile
// currently presented. The snapshot itself is unchanged.
func (s *Service) Reset() {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	s.assembler.Reset(snapshot)
}

func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) Mode() ExperienceMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// HasCard reports whether the given vendor card is currently presented.
func (s *Service) HasCard(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.HasCard(id)
}

// Coupons returns the coupon variants from the current batch.
func (s *Service) Coupons() []card.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	variants := s.normalizer.Run(s.batch, card.NewTypeSet(card.ClassCoupon))
	coupons := make([]card.Coupon, 0, len(variants))
	for _, v := range variants {
		if coupon, ok := v.(card.Coupon); ok {
			coupons = append(coupons, coupon)
		}
	}
	return coupons
}

func (s *Service) BatchSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batch)
}

// priorityHint reads the persisted hint; a store failure degrades to
// natural ordering rather than surfacing an error.
func (s *Service) priorityHint() string {
	hint, err := s.priorities.Get()
	if err != nil {
		slog.Error("Failed to read priority hint", "error", err)
		return ""
	}
	return hint
}
