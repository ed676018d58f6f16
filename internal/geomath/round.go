package geomath

import "math"

// Maximum supported decimal places; larger requests are silently
// clamped to keep the scaling factor representable.
const maxDecimals = 10

// Round returns value rounded to the given number of decimal places,
// half away from zero. Deterministic and side-effect-free.
func Round(value float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > maxDecimals {
		decimals = maxDecimals
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
