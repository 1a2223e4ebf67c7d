package analytics

import (
	"log/slog"
	"time"

	"github.com/mercato-app/homefeed/app/database"
)

// Vendor analytics event names, forwarded verbatim.
const (
	EventCardClicked    = "content_card_clicked"
	EventCardImpression = "content_card_impression"
	EventCardDismissed  = "content_card_dismissed"
)

// Logger forwards analytics events to the vendor boundary. Events are
// logged structurally and appended to the event table; a storage
// failure never propagates to the caller.
type Logger struct {
	events database.EventRepository
}

func NewLogger(events database.EventRepository) *Logger {
	return &Logger{events: events}
}

func (l *Logger) CardClicked(id string) {
	l.log(EventCardClicked, id)
}

func (l *Logger) CardImpression(id string) {
	l.log(EventCardImpression, id)
}

func (l *Logger) CardDismissed(id string) {
	l.log(EventCardDismissed, id)
}

func (l *Logger) CustomEvent(name string) {
	l.log(name, "")
}

func (l *Logger) log(name, cardID string) {
	slog.Info("Analytics event", "event", name, "card", cardID)

	if l.events == nil {
		return
	}
	if err := l.events.Insert(name, cardID, time.Now()); err != nil {
		slog.Error("Failed to store analytics event", "event", name, "error", err)
	}
}
