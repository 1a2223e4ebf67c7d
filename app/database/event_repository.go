package database

import (
	"fmt"
	"time"
)

var _ EventRepository = (*EventRepo)(nil)

type EventRepo struct {
	db *DB
}

func NewEventRepo(db *DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) Insert(name, cardID string, occurredAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO analytics_events (name, card_id, occurred_at)
		VALUES ($1, $2, $3)
	`, name, cardID, occurredAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}
	return nil
}

func (r *EventRepo) CountByName() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT name, COUNT(*) FROM analytics_events GROUP BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		counts[name] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return counts, nil
}
