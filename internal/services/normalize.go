package services

import (
	"fmt"
	"strconv"
	"strings"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geo"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/ports"
)

// Decimal places kept on normalized decimal degrees (~11 cm).
const ddDecimals = 6

// parseCoord parses one textual coordinate according to the batch
// format. DD inputs are plain floats and carry no validation beyond
// numeric parsing; DMS/DDM inputs go through the full grammar and
// geographic validation.
func parseCoord(input string, kind geo.Kind, format Format) (float64, error) {
	switch format {
	case FormatDD:
		v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return 0, fmt.Errorf("parse decimal %s %q: %w", kind, input, err)
		}
		return v, nil
	case FormatDMS:
		return geo.ParseDMS(input, kind)
	case FormatDDM:
		return geo.ParseDDM(input, kind)
	default:
		return 0, fmt.Errorf("unknown coordinate format %d", format)
	}
}

// NormalizeRow parses the four coordinates of a row in fixed order
// (lat A, lon A, lat B, lon B), stopping at the first failure, then
// rounds each decimal value to 6 places and derives the DMS display
// strings.
func NormalizeRow(row ports.RawRow, format Format) (domain.PointPair, error) {
	latA, err := parseCoord(row.LatA, geo.Latitude, format)
	if err != nil {
		return domain.PointPair{}, fmt.Errorf("lat_a: %w", err)
	}
	lonA, err := parseCoord(row.LonA, geo.Longitude, format)
	if err != nil {
		return domain.PointPair{}, fmt.Errorf("lon_a: %w", err)
	}
	latB, err := parseCoord(row.LatB, geo.Latitude, format)
	if err != nil {
		return domain.PointPair{}, fmt.Errorf("lat_b: %w", err)
	}
	lonB, err := parseCoord(row.LonB, geo.Longitude, format)
	if err != nil {
		return domain.PointPair{}, fmt.Errorf("lon_b: %w", err)
	}

	return domain.PointPair{
		A: normalizedPoint(row.NameA, row.LatA, row.LonA, latA, lonA),
		B: normalizedPoint(row.NameB, row.LatB, row.LonB, latB, lonB),
	}, nil
}

func normalizedPoint(name, latIn, lonIn string, lat, lon float64) domain.NormalizedPoint {
	lat = geomath.Round(lat, ddDecimals)
	lon = geomath.Round(lon, ddDecimals)

	return domain.NormalizedPoint{
		Name: name,
		Lat: domain.NormalizedCoord{
			Input: latIn,
			DD:    lat,
			DMS:   geo.FormatDMS(lat, geo.Latitude),
		},
		Lon: domain.NormalizedCoord{
			Input: lonIn,
			DD:    lon,
			DMS:   geo.FormatDMS(lon, geo.Longitude),
		},
	}
}
