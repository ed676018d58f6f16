package geomath

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Numerical precision used for the defensive sign check below.
	geoPrecision = 1e-10
	// Mean Earth radius in kilometers (spherical model).
	earthRadiusKm = 6371.0
)

// KmToMiles converts kilometers to miles.
const KmToMiles = 0.621371

// ErrInvalidDistance reports a non-finite haversine result.
var ErrInvalidDistance = errors.New("invalid distance")

// NegativeDistanceError reports a spuriously negative haversine result.
// Mathematically unreachable with the current formula; kept as an
// internal-invariant guard.
type NegativeDistanceError struct {
	Dist float64
}

func (e *NegativeDistanceError) Error() string {
	return fmt.Sprintf("negative distance %v", e.Dist)
}

// Haversine computes the great-circle distance between two points given
// in decimal degrees, in kilometers, over a spherical Earth.
func Haversine(lat1Deg, lon1Deg, lat2Deg, lon2Deg float64) (float64, error) {
	lat1 := radians(lat1Deg)
	lon1 := radians(lon1Deg)
	lat2 := radians(lat2Deg)
	lon2 := radians(lon2Deg)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)

	distance := 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	if math.IsInf(distance, 0) || math.IsNaN(distance) {
		return 0, ErrInvalidDistance
	}
	if distance < -geoPrecision {
		return 0, &NegativeDistanceError{Dist: distance}
	}

	return distance, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
