package store

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the pair_results table when absent. Safe to run on
// every startup.
func InitSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS pair_results (
		id BIGSERIAL PRIMARY KEY,
		name_a TEXT NOT NULL,
		name_b TEXT NOT NULL,
		lat_a DOUBLE PRECISION NOT NULL,
		lon_a DOUBLE PRECISION NOT NULL,
		lat_b DOUBLE PRECISION NOT NULL,
		lon_b DOUBLE PRECISION NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		distance_miles DOUBLE PRECISION NOT NULL,
		nearly_both BOOLEAN NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS pair_results_computed_at_idx
		ON pair_results (computed_at DESC);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create pair_results: %w", err)
	}

	return nil
}
