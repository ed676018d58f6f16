package ports

import (
	"context"
	"time"

	"geo-distance-service/internal/domain"
)

// PairResult is a persisted distance computation.
type PairResult struct {
	NameA         string
	NameB         string
	LatA          float64
	LonA          float64
	LatB          float64
	LonB          float64
	DistanceKm    float64
	DistanceMiles float64
	NearlyBoth    bool
	ComputedAt    time.Time
}

// ResultStore persists computed pair results for later retrieval.
type ResultStore interface {
	Save(ctx context.Context, r PairResult) error
	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]PairResult, error)
}

// ResultCache is a short-lived cache of computed metrics keyed by the
// normalized pair. A miss is reported with ok=false, not an error.
type ResultCache interface {
	Get(ctx context.Context, pair domain.PointPair) (m domain.DistanceMetrics, ok bool, err error)
	Put(ctx context.Context, pair domain.PointPair, m domain.DistanceMetrics) error
}
