package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mercato-app/homefeed/app/analytics"
	"github.com/mercato-app/homefeed/app/card"
	"github.com/mercato-app/homefeed/app/database"
	"github.com/mercato-app/homefeed/app/directive"
	"github.com/mercato-app/homefeed/app/feed"
	"github.com/mercato-app/homefeed/app/store"
	"github.com/mercato-app/homefeed/app/tasks"
)

func NewHandler(service *feed.Service, tiles *feed.TileCache,
	directives *directive.Handler, applier *directive.Applier,
	analyticsLogger *analytics.Logger, priorities store.PriorityStore,
	events database.EventRepository, scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		service:    service,
		tiles:      tiles,
		directives: directives,
		applier:    applier,
		analytics:  analyticsLogger,
		priorities: priorities,
		events:     events,
		scheduler:  scheduler,
	}
}

// GetFeed returns the current presentation snapshot.
func (h *Handler) GetFeed(c *gin.Context) {
	snapshot := h.service.Snapshot()

	c.Header("X-Feed-Mode", string(h.service.Mode()))
	c.JSON(http.StatusOK, snapshot)
}

// GetCoupons returns the coupon variants from the current batch.
func (h *Handler) GetCoupons(c *gin.Context) {
	coupons := h.service.Coupons()
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// PostPush receives a push-notification payload and applies the
// directives it carries. Unknown fields and unrecognized values are
// ignored without error.
func (h *Handler) PostPush(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	effects := h.directives.Run(payload)
	h.applier.Run(effects)

	slog.Info("Push payload handled", "effects", len(effects))
	c.JSON(http.StatusOK, gin.H{"effects": effects})
}

// SyncCards ingests a fresh vendor card batch. The rebuild happens on
// the task worker; the request returns as soon as it is queued.
func (h *Handler) SyncCards(c *gin.Context) {
	var batch []card.RawCard
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card batch"})
		return
	}

	if !h.scheduler.Enqueue(tasks.NewIngestCardsTask(batch, h.service)) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "task queue full"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"queued": len(batch)})
}

// ReloadTiles reloads the local tile configurations.
func (h *Handler) ReloadTiles(c *gin.Context) {
	if !h.scheduler.Enqueue(tasks.NewSyncTilesTask(h.tiles, h.service)) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "task queue full"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// Card event pass-throughs. A card that is no longer presented is a
// silent no-op, not an error: the data may simply have changed since
// the client rendered it.

func (h *Handler) CardClicked(c *gin.Context) {
	h.cardEvent(c, h.analytics.CardClicked)
}

func (h *Handler) CardImpression(c *gin.Context) {
	h.cardEvent(c, h.analytics.CardImpression)
}

func (h *Handler) CardDismissed(c *gin.Context) {
	h.cardEvent(c, h.analytics.CardDismissed)
}

func (h *Handler) cardEvent(c *gin.Context, log func(id string)) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card id required"})
		return
	}

	if !h.service.HasCard(id) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	log(id)
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"cards":     h.service.BatchSize(),
		"tiles":     h.tiles.GetTileCount(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"mode":  h.service.Mode(),
		"cards": h.service.BatchSize(),
		"tiles": h.tiles.GetTileCount(),
	}

	if hint, err := h.priorities.Get(); err == nil {
		stats["priority_hint"] = hint
	}

	if counts, err := h.events.CountByName(); err == nil {
		stats["events"] = counts
	} else {
		slog.Error("Failed to load event stats", "error", err)
	}

	c.JSON(http.StatusOK, stats)
}
