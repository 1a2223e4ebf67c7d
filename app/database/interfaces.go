package database

import (
	"time"

	"github.com/mercato-app/homefeed/app/card"
)

// CardRepository persists the most recent vendor card batch so the
// feed can be rebuilt after a restart without a fresh vendor sync.
type CardRepository interface {
	ReplaceBatch(batch []card.RawCard) error
	GetLatestBatch() ([]card.RawCard, error)
	GetCardCount() (int, error)
}

// EventRepository is the append-only analytics event log.
type EventRepository interface {
	Insert(name, cardID string, occurredAt time.Time) error
	CountByName() (map[string]int, error)
}
