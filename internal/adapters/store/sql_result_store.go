package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"geo-distance-service/internal/platform/obs"
	"geo-distance-service/internal/ports"
)

// SQLResultStore persists computed pair results in Postgres.
type SQLResultStore struct {
	DB *sql.DB
}

func NewSQLResultStore(db *sql.DB) *SQLResultStore {
	return &SQLResultStore{DB: db}
}

// Save records one computed pair result.
func (s *SQLResultStore) Save(ctx context.Context, r ports.PairResult) (err error) {
	defer obs.Time(ctx, "store.Save")(&err)

	if s.DB == nil {
		return errors.New("result store: db is nil")
	}

	q := `
	INSERT INTO pair_results (
		name_a, name_b,
		lat_a, lon_a, lat_b, lon_b,
		distance_km, distance_miles, nearly_both
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		r.NameA, r.NameB,
		r.LatA, r.LonA, r.LatB, r.LonB,
		r.DistanceKm, r.DistanceMiles, r.NearlyBoth,
	); err != nil {
		return fmt.Errorf("save pair result %q -> %q: %w", r.NameA, r.NameB, err)
	}

	return nil
}

// Recent returns up to limit persisted results, newest first.
func (s *SQLResultStore) Recent(ctx context.Context, limit int) (_ []ports.PairResult, err error) {
	defer obs.Time(ctx, "store.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("result store: db is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	q := `
	SELECT name_a, name_b,
		lat_a, lon_a, lat_b, lon_b,
		distance_km, distance_miles, nearly_both,
		computed_at
	FROM pair_results
	ORDER BY computed_at DESC, id DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent pair results: query: %w", err)
	}
	defer rows.Close()

	out := make([]ports.PairResult, 0, limit)
	for rows.Next() {
		var r ports.PairResult
		if err := rows.Scan(
			&r.NameA, &r.NameB,
			&r.LatA, &r.LonA, &r.LatB, &r.LonB,
			&r.DistanceKm, &r.DistanceMiles, &r.NearlyBoth,
			&r.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("recent pair results: scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent pair results: row iteration: %w", err)
	}

	return out, nil
}
