package services

import (
	"errors"
	"strings"
	"testing"

	"geo-distance-service/internal/geo"
	"geo-distance-service/internal/ports"
)

func TestNormalizeRowDMS(t *testing.T) {
	row := ports.RawRow{
		Line:  2,
		NameA: "Eiffel Tower",
		LatA:  `48°51'29"N`,
		LonA:  `2°17'40"E`,
		NameB: "Notre-Dame",
		LatB:  `48°51'11"N`,
		LonB:  `2°20'59"E`,
	}

	pair, err := NormalizeRow(row, FormatDMS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.A.Lat.DD != 48.858056 {
		t.Fatalf("lat_a dd = %v, want 48.858056", pair.A.Lat.DD)
	}
	if pair.A.Lat.Input != `48°51'29"N` {
		t.Fatalf("lat_a input = %q, original text must be preserved", pair.A.Lat.Input)
	}
	if pair.A.Lat.DMS != `48°51'29.00"N` {
		t.Fatalf("lat_a dms = %q, want 48°51'29.00\"N", pair.A.Lat.DMS)
	}
	if pair.B.Name != "Notre-Dame" {
		t.Fatalf("name_b = %q", pair.B.Name)
	}
}

func TestNormalizeRowDD(t *testing.T) {
	row := ports.RawRow{
		NameA: "A", LatA: "48.8580556", LonA: "2.2944444",
		NameB: "B", LatB: "40.689300", LonB: "-74.044100",
	}

	pair, err := NormalizeRow(row, FormatDD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Decimal values are rounded to 6 places during normalization.
	if pair.A.Lat.DD != 48.858056 {
		t.Fatalf("lat_a dd = %v, want 48.858056", pair.A.Lat.DD)
	}
	if pair.B.Lon.DD != -74.0441 {
		t.Fatalf("lon_b dd = %v, want -74.0441", pair.B.Lon.DD)
	}
	if pair.B.Lon.DMS != `74°2'38.76"W` {
		t.Fatalf("lon_b dms = %q", pair.B.Lon.DMS)
	}
}

// DD inputs carry no geographic validation; the value passes through
// numeric parsing only.
func TestNormalizeRowDDSkipsValidation(t *testing.T) {
	row := ports.RawRow{
		NameA: "A", LatA: "200.0", LonA: "0",
		NameB: "B", LatB: "0", LonB: "0",
	}
	pair, err := NormalizeRow(row, FormatDD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.A.Lat.DD != 200.0 {
		t.Fatalf("lat_a dd = %v, want 200.0 (unvalidated)", pair.A.Lat.DD)
	}
}

// Parsing stops at the first failing coordinate, and the error names
// the offending column.
func TestNormalizeRowStopsAtFirstFailure(t *testing.T) {
	row := ports.RawRow{
		NameA: "A", LatA: `48°51'29"N`, LonA: `2°17'40"X`,
		NameB: "B", LatB: "not even parsed", LonB: "ditto",
	}

	_, err := NormalizeRow(row, FormatDMS)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "lon_a:") {
		t.Fatalf("error = %v, want lon_a prefix", err)
	}

	var coordErr *geo.CoordError
	if !errors.As(err, &coordErr) || coordErr.Kind != geo.InvalidDirection {
		t.Fatalf("error = %v, want wrapped InvalidDirection", err)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"dd": FormatDD, "dms": FormatDMS, "ddm": FormatDDM} {
		got, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseFormat("utm"); err == nil {
		t.Fatal("ParseFormat(\"utm\") should fail")
	}
}
