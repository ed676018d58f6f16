package services

import (
	"fmt"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geomath"
)

// ComputeMetrics derives the distance and proximity outputs for one
// normalized pair. Distance is rounded to 2 decimal places in both
// units; proximity uses the supplied tolerance.
func ComputeMetrics(pair domain.PointPair, tol geomath.Tolerance) (domain.DistanceMetrics, error) {
	a, b := pair.A.Coords(), pair.B.Coords()

	km, err := geomath.Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
	if err != nil {
		return domain.DistanceMetrics{}, fmt.Errorf("compute metrics: %w", err)
	}
	km = geomath.Round(km, 2)

	nearly := geomath.ComputeNearly(a.Lat, a.Lon, b.Lat, b.Lon, tol)

	return domain.DistanceMetrics{
		Km:     km,
		Miles:  geomath.Round(km*geomath.KmToMiles, 2),
		Nearly: nearly,
	}, nil
}
