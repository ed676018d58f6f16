package services

import (
	"context"
	"io"
	"math"
	"strings"
	"testing"

	"geo-distance-service/internal/adapters/csvio"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/ports"
)

// In-memory source/sink fakes for exercising the batch loop.
type sliceSource struct {
	rows []ports.RawRow
	errs []error
	next int
}

func (s *sliceSource) Next() (ports.RawRow, error) {
	if s.next >= len(s.rows) {
		return ports.RawRow{}, io.EOF
	}
	row := s.rows[s.next]
	var err error
	if s.next < len(s.errs) {
		err = s.errs[s.next]
	}
	s.next++
	return row, err
}

type captureSink struct {
	rows    []domain.EnrichedRow
	flushed bool
}

func (s *captureSink) Write(rec domain.EnrichedRow) error {
	s.rows = append(s.rows, rec)
	return nil
}

func (s *captureSink) Flush() error {
	s.flushed = true
	return nil
}

func validRow(name string) ports.RawRow {
	return ports.RawRow{
		NameA: name + "-a", LatA: `48°51'29"N`, LonA: `2°17'40"E`,
		NameB: name + "-b", LatB: `40°41'21"N`, LonB: `74°2'40"W`,
	}
}

func TestProcessBatchPermissiveSkipsBadRows(t *testing.T) {
	bad := validRow("bad")
	bad.LatA = `91°0'0"N`

	src := &sliceSource{rows: []ports.RawRow{validRow("r1"), bad, validRow("r2")}}
	sink := &captureSink{}

	res, err := ProcessBatch(context.Background(), src, sink, BatchOptions{
		Format:    FormatDMS,
		Tolerance: geomath.DefaultTolerance,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Written != 2 || res.Skipped != 1 {
		t.Fatalf("written=%d skipped=%d, want 2/1", res.Written, res.Skipped)
	}
	if len(sink.rows) != 2 {
		t.Fatalf("sink received %d rows, want 2", len(sink.rows))
	}
	// IDs stay sequential across skipped rows.
	if sink.rows[0].ID != 1 || sink.rows[1].ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", sink.rows[0].ID, sink.rows[1].ID)
	}
	if !sink.flushed {
		t.Fatal("sink was not flushed")
	}
}

func TestProcessBatchStrictAbortsOnBadRow(t *testing.T) {
	bad := validRow("bad")
	bad.LonB = "nonsense"

	src := &sliceSource{rows: []ports.RawRow{validRow("r1"), bad, validRow("r2")}}
	sink := &captureSink{}

	_, err := ProcessBatch(context.Background(), src, sink, BatchOptions{
		Format:    FormatDMS,
		Strict:    true,
		Tolerance: geomath.DefaultTolerance,
	})
	if err == nil {
		t.Fatal("expected strict mode to abort")
	}
	if len(sink.rows) != 1 {
		t.Fatalf("sink received %d rows before abort, want 1", len(sink.rows))
	}
}

func TestProcessBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &sliceSource{rows: []ports.RawRow{validRow("r1")}}
	_, err := ProcessBatch(ctx, src, &captureSink{}, BatchOptions{
		Format:    FormatDMS,
		Tolerance: geomath.DefaultTolerance,
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

// Full pipeline over the CSV adapter: DDM input for the Eiffel Tower
// and the Statue of Liberty must come out roughly 5837 km apart.
func TestProcessBatchDDMDistanceIntegration(t *testing.T) {
	input := strings.Join([]string{
		"name_a,lat_a,lon_a,name_b,lat_b,lon_b",
		`Eiffel Tower,48° 51.492' N,2° 17.652' E,Statue of Liberty,40° 41.358' N,74° 2.646' W`,
	}, "\n")

	src, err := csvio.NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	sink := &captureSink{}

	res, err := ProcessBatch(context.Background(), src, sink, BatchOptions{
		Format:    FormatDDM,
		Tolerance: geomath.DefaultTolerance,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Written != 1 {
		t.Fatalf("written = %d, want 1", res.Written)
	}

	rec := sink.rows[0]
	if rec.Pair.A.Lat.DD <= 0 || rec.Pair.B.Lon.DD >= 0 {
		t.Fatalf("unexpected signs: lat_a=%v lon_b=%v", rec.Pair.A.Lat.DD, rec.Pair.B.Lon.DD)
	}
	if math.Abs(rec.Metrics.Km-5837.0) > 5.0 {
		t.Fatalf("distance = %v km, want 5837 ± 5", rec.Metrics.Km)
	}
	wantMiles := geomath.Round(rec.Metrics.Km*geomath.KmToMiles, 2)
	if rec.Metrics.Miles != wantMiles {
		t.Fatalf("miles = %v, want %v", rec.Metrics.Miles, wantMiles)
	}
	if rec.Metrics.Nearly.Both {
		t.Fatal("points an ocean apart reported nearly equal")
	}
}
