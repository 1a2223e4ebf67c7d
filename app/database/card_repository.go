package database

import (
	"encoding/json"
	"fmt"

	"github.com/mercato-app/homefeed/app/card"
)

var _ CardRepository = (*CardRepo)(nil)

// CardRepo stores the latest vendor batch, one row per card with its
// raw JSON and position in the batch.
type CardRepo struct {
	db *DB
}

func NewCardRepo(db *DB) *CardRepo {
	return &CardRepo{db: db}
}

// ReplaceBatch swaps the stored batch for the given one atomically.
func (r *CardRepo) ReplaceBatch(batch []card.RawCard) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cards`); err != nil {
		return fmt.Errorf("failed to clear previous batch: %w", err)
	}

	for i, rc := range batch {
		raw, err := json.Marshal(rc)
		if err != nil {
			return fmt.Errorf("failed to marshal card %s: %w", rc.ID, err)
		}

		_, err = tx.Exec(`
			INSERT INTO cards (id, position, raw)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				raw = EXCLUDED.raw
		`, rc.ID, i, string(raw))
		if err != nil {
			return fmt.Errorf("failed to store card %s: %w", rc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// GetLatestBatch returns the stored batch in its original order. An
// empty table yields an empty batch, not an error.
func (r *CardRepo) GetLatestBatch() ([]card.RawCard, error) {
	rows, err := r.db.Query(`SELECT raw FROM cards ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var batch []card.RawCard
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}

		var rc card.RawCard
		if err := json.Unmarshal([]byte(raw), &rc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card: %w", err)
		}
		batch = append(batch, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return batch, nil
}

func (r *CardRepo) GetCardCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}
