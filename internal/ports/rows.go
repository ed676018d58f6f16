package ports

import "geo-distance-service/internal/domain"

// RawRow is one unparsed input row. Coordinates stay textual until the
// normalization service parses them according to the batch format.
type RawRow struct {
	Line  int
	NameA string
	LatA  string
	LonA  string
	NameB string
	LatB  string
	LonB  string
}

// RowSource yields input rows in file order. Next returns io.EOF once
// the source is exhausted; any other error concerns the current row
// only and reading may continue.
type RowSource interface {
	Next() (RawRow, error)
}

// RowSink receives enriched output rows.
type RowSink interface {
	Write(rec domain.EnrichedRow) error
	Flush() error
}
