package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"geo-distance-service/internal/domain"
)

var outputHeader = []string{
	"id",
	"name_a", "lat_a_in", "lon_a_in", "lat_a_dd", "lon_a_dd", "lat_a_dms", "lon_a_dms",
	"name_b", "lat_b_in", "lon_b_in", "lat_b_dd", "lon_b_dd", "lat_b_dms", "lon_b_dms",
	"distance_km", "distance_miles",
	"nearly_lat", "nearly_lon", "nearly_both",
}

// Writer emits enriched rows as CSV. It implements ports.RowSink.
type Writer struct {
	csv *csv.Writer
}

// NewWriter writes the output header immediately so that an empty batch
// still produces a well-formed file.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Writer{csv: cw}, nil
}

func (w *Writer) Write(rec domain.EnrichedRow) error {
	row := []string{
		strconv.FormatUint(rec.ID, 10),
	}
	row = append(row, pointColumns(rec.Pair.A)...)
	row = append(row, pointColumns(rec.Pair.B)...)
	row = append(row,
		formatFloat(rec.Metrics.Km),
		formatFloat(rec.Metrics.Miles),
		strconv.FormatBool(rec.Metrics.Nearly.Lat),
		strconv.FormatBool(rec.Metrics.Nearly.Lon),
		strconv.FormatBool(rec.Metrics.Nearly.Both),
	)

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("write row %d: %w", rec.ID, err)
	}
	return nil
}

func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func pointColumns(p domain.NormalizedPoint) []string {
	return []string{
		p.Name,
		p.Lat.Input,
		p.Lon.Input,
		formatFloat(p.Lat.DD),
		formatFloat(p.Lon.DD),
		p.Lat.DMS,
		p.Lon.DMS,
	}
}

// Shortest representation that round-trips the float.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
