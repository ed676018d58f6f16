package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"geo-distance-service/internal/ports"
)

// Required input columns, order-independent. Extra columns are ignored.
var requiredHeaders = []string{"name_a", "lat_a", "lon_a", "name_b", "lat_b", "lon_b"}

// ErrInvalidHeader reports a missing or unreadable header line.
var ErrInvalidHeader = errors.New("invalid header (missing or unreadable)")

// MissingHeaderError names a required column absent from the header.
type MissingHeaderError struct {
	Field string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing header field %q", e.Field)
}

// Reader validates the CSV header once and then yields raw rows.
// It implements ports.RowSource.
type Reader struct {
	csv  *csv.Reader
	idx  map[string]int
	line int
}

func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ErrInvalidHeader
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, h := range requiredHeaders {
		if _, ok := idx[h]; !ok {
			return nil, &MissingHeaderError{Field: h}
		}
	}

	return &Reader{csv: cr, idx: idx, line: 1}, nil
}

// Next returns the next raw row. io.EOF marks the end of input; any
// other error is scoped to the returned row's line and the caller may
// keep reading.
func (r *Reader) Next() (ports.RawRow, error) {
	r.line++

	rec, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return ports.RawRow{}, io.EOF
	}
	if err != nil {
		return ports.RawRow{Line: r.line}, fmt.Errorf("read row: %w", err)
	}

	return ports.RawRow{
		Line:  r.line,
		NameA: rec[r.idx["name_a"]],
		LatA:  rec[r.idx["lat_a"]],
		LonA:  rec[r.idx["lon_a"]],
		NameB: rec[r.idx["name_b"]],
		LatB:  rec[r.idx["lat_b"]],
		LonB:  rec[r.idx["lon_b"]],
	}, nil
}
