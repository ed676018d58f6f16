package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/ports"
)

// BatchOptions configures one batch run.
type BatchOptions struct {
	Format    Format
	Strict    bool
	Tolerance geomath.Tolerance
}

// BatchResult summarizes a completed run.
type BatchResult struct {
	Written uint64
	Skipped uint64
}

// ProcessBatch reads rows from src, normalizes and enriches each one
// and writes the result to sink.
//
// Row-level failures (unreadable row, unparsable coordinate, failed
// write) are counted and skipped in permissive mode and abort the run
// in strict mode. Distance computation failures are internal-invariant
// violations and always abort.
func ProcessBatch(ctx context.Context, src ports.RowSource, sink ports.RowSink, opts BatchOptions) (BatchResult, error) {
	var res BatchResult
	id := uint64(1)

	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("process batch: %w", err)
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if opts.Strict {
				return res, fmt.Errorf("line %d: read row: %w", row.Line, err)
			}
			res.Skipped++
			continue
		}

		pair, err := NormalizeRow(row, opts.Format)
		if err != nil {
			if opts.Strict {
				return res, fmt.Errorf("line %d: invalid %s row: %w", row.Line, opts.Format, err)
			}
			res.Skipped++
			continue
		}

		metrics, err := ComputeMetrics(pair, opts.Tolerance)
		if err != nil {
			return res, fmt.Errorf("line %d: %w", row.Line, err)
		}

		rec := domain.EnrichedRow{ID: id, Pair: pair, Metrics: metrics}
		if err := sink.Write(rec); err != nil {
			if opts.Strict {
				return res, fmt.Errorf("line %d: write row: %w", row.Line, err)
			}
			res.Skipped++
			continue
		}

		id++
		res.Written++
	}

	if err := sink.Flush(); err != nil {
		return res, fmt.Errorf("process batch: flush output: %w", err)
	}

	return res, nil
}
