package domain

import "geo-distance-service/internal/geomath"

// NormalizedCoord holds a single coordinate in every representation the
// output carries: the original input text, the decimal degrees rounded
// to 6 places and the formatted sexagesimal display string.
type NormalizedCoord struct {
	Input string
	DD    float64
	DMS   string
}

// NormalizedPoint is one named location of an input row.
type NormalizedPoint struct {
	Name string
	Lat  NormalizedCoord
	Lon  NormalizedCoord
}

// Coords returns the point's decimal-degree coordinates.
func (p NormalizedPoint) Coords() Coordinates {
	return Coordinates{Lat: p.Lat.DD, Lon: p.Lon.DD}
}

// PointPair is a fully normalized input row.
type PointPair struct {
	A NormalizedPoint
	B NormalizedPoint
}

// DistanceMetrics carries the distance and proximity outputs for one
// pair of points.
type DistanceMetrics struct {
	Km     float64        `json:"distance_km"`
	Miles  float64        `json:"distance_miles"`
	Nearly geomath.Nearly `json:"nearly"`
}

// EnrichedRow is one fully processed output row.
type EnrichedRow struct {
	ID      uint64
	Pair    PointPair
	Metrics DistanceMetrics
}
