package dto

import (
	"time"

	"geo-distance-service/internal/geomath"
)

type PointRequest struct {
	Name string `json:"name"`
	Lat  string `json:"lat"`
	Lon  string `json:"lon"`
}

type DistanceRequest struct {
	Format       string       `json:"format"` // "dd", "dms" or "ddm"
	A            PointRequest `json:"a"`
	B            PointRequest `json:"b"`
	ToleranceDeg *float64     `json:"tolerance_deg,omitempty"`
}

type PointResponse struct {
	Name   string  `json:"name"`
	LatDD  float64 `json:"lat_dd"`
	LonDD  float64 `json:"lon_dd"`
	LatDMS string  `json:"lat_dms"`
	LonDMS string  `json:"lon_dms"`
}

type DistanceResponse struct {
	A             PointResponse  `json:"a"`
	B             PointResponse  `json:"b"`
	DistanceKm    float64        `json:"distance_km"`
	DistanceMiles float64        `json:"distance_miles"`
	Nearly        geomath.Nearly `json:"nearly"`
	Cached        bool           `json:"cached"`
}

type ResultResponse struct {
	NameA         string    `json:"name_a"`
	NameB         string    `json:"name_b"`
	LatA          float64   `json:"lat_a"`
	LonA          float64   `json:"lon_a"`
	LatB          float64   `json:"lat_b"`
	LonB          float64   `json:"lon_b"`
	DistanceKm    float64   `json:"distance_km"`
	DistanceMiles float64   `json:"distance_miles"`
	NearlyBoth    bool      `json:"nearly_both"`
	ComputedAt    time.Time `json:"computed_at"`
}

type ListResultsResponse struct {
	Results []ResultResponse `json:"results"`
}
