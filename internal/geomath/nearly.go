package geomath

import "math"

// Tolerance is an angular comparison threshold in decimal degrees.
type Tolerance struct {
	Deg float64
}

// DefaultTolerance is roughly 11 cm at the equator.
var DefaultTolerance = Tolerance{Deg: 1e-6}

// Nearly is the structured result of a proximity comparison. Each axis
// is evaluated independently; Both is the conjunction.
type Nearly struct {
	Lat  bool `json:"lat"`
	Lon  bool `json:"lon"`
	Both bool `json:"both"`
}

func nearlyEqualDeg(a, b float64, tol Tolerance) bool {
	return math.Abs(a-b) <= tol.Deg
}

// ComputeNearly compares two geographic positions with the given
// tolerance. Pure function, no failure modes.
func ComputeNearly(latA, lonA, latB, lonB float64, tol Tolerance) Nearly {
	lat := nearlyEqualDeg(latA, latB, tol)
	lon := nearlyEqualDeg(lonA, lonB, tol)

	return Nearly{
		Lat:  lat,
		Lon:  lon,
		Both: lat && lon,
	}
}
