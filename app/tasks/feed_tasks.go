package tasks

import (
	"context"
	"log/slog"

	"github.com/mercato-app/homefeed/app/card"
	"github.com/mercato-app/homefeed/app/feed"
)

// IngestCardsTask replaces the vendor batch and rebuilds the snapshot.
type IngestCardsTask struct {
	Task
	Batch   []card.RawCard
	service *feed.Service
}

func NewIngestCardsTask(batch []card.RawCard, service *feed.Service) *IngestCardsTask {
	return &IngestCardsTask{
		Task:    NewTask(TaskTypeIngestCards),
		Batch:   batch,
		service: service,
	}
}

func (t *IngestCardsTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.service.Ingest(t.Batch); err != nil {
		return err
	}

	slog.Info("Task completed", "type", "IngestCards", "cards", len(t.Batch), "duration", t.GetDuration())
	return nil
}

// RebuildFeedTask rebuilds the snapshot from the current batch.
type RebuildFeedTask struct {
	Task
	service *feed.Service
}

func NewRebuildFeedTask(service *feed.Service) *RebuildFeedTask {
	return &RebuildFeedTask{
		Task:    NewTask(TaskTypeRebuildFeed),
		service: service,
	}
}

func (t *RebuildFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return t.service.Rebuild()
}

// ReorderFeedTask re-derives tile order from the current snapshot
// without re-fetching data.
type ReorderFeedTask struct {
	Task
	service *feed.Service
}

func NewReorderFeedTask(service *feed.Service) *ReorderFeedTask {
	return &ReorderFeedTask{
		Task:    NewTask(TaskTypeReorderFeed),
		service: service,
	}
}

func (t *ReorderFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return t.service.Reorder()
}

// SwitchExperienceTask changes the experience mode and rebuilds.
type SwitchExperienceTask struct {
	Task
	Mode    feed.ExperienceMode
	service *feed.Service
}

func NewSwitchExperienceTask(mode feed.ExperienceMode, service *feed.Service) *SwitchExperienceTask {
	return &SwitchExperienceTask{
		Task:    NewTask(TaskTypeSwitchExperience),
		Mode:    mode,
		service: service,
	}
}

func (t *SwitchExperienceTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return t.service.SwitchMode(t.Mode)
}

// SyncTilesTask reloads the local tile configurations and rebuilds.
type SyncTilesTask struct {
	Task
	tiles   *feed.TileCache
	service *feed.Service
}

func NewSyncTilesTask(tiles *feed.TileCache, service *feed.Service) *SyncTilesTask {
	return &SyncTilesTask{
		Task:    NewTask(TaskTypeSyncTiles),
		tiles:   tiles,
		service: service,
	}
}

func (t *SyncTilesTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.tiles.Run(); err != nil {
		return err
	}

	slog.Info("Task completed", "type", "SyncTiles", "tiles", t.tiles.GetTileCount(), "duration", t.GetDuration())
	return t.service.Rebuild()
}
