package geo

import "math"

// Internal normalized representation of a parsed coordinate.
// Built by the parsers, consumed by decimal, never exposed.
type coordinate struct {
	deg float64
	min float64
	sec float64
	dir rune
}

// Epsilon absorbing floating-point noise on the 90°/180° boundary checks.
const boundaryEpsilon = 1e-12

// decimal validates the coordinate against the rules for kind and
// converts it to signed decimal degrees. This is the single source of
// truth for geographic rules; the first violated check wins.
func (c coordinate) decimal(kind Kind) (float64, error) {
	if c.deg < 0 {
		return 0, &CoordError{Kind: InvalidDegree, Value: c.deg}
	}
	if c.min < 0 || c.min >= 60 {
		return 0, &CoordError{Kind: InvalidMinutes, Value: c.min}
	}
	if c.sec < 0 || c.sec >= 60 {
		return 0, &CoordError{Kind: InvalidSeconds, Value: c.sec}
	}

	// Geographic boundaries. 90°00'00" (resp. 180°00'00") is the only
	// valid notation at the pole (resp. antimeridian).
	limit := 90.0
	if kind == Longitude {
		limit = 180.0
	}
	if c.deg > limit+boundaryEpsilon {
		return 0, &CoordError{Kind: OutOfRange, Value: c.deg}
	}
	if math.Abs(c.deg-limit) < boundaryEpsilon && (c.min > 0 || c.sec > 0) {
		return 0, &CoordError{Kind: OutOfRange, Value: c.deg}
	}

	if kind == Latitude {
		if c.dir != 'N' && c.dir != 'S' {
			return 0, &CoordError{Kind: InvalidDirection, Direction: c.dir}
		}
	} else {
		// 'O' is the French spelling for West (Ouest).
		if c.dir != 'E' && c.dir != 'W' && c.dir != 'O' {
			return 0, &CoordError{Kind: InvalidDirection, Direction: c.dir}
		}
	}

	value := c.deg + c.min/60 + c.sec/3600
	if c.dir == 'S' || c.dir == 'W' || c.dir == 'O' {
		value = -value
	}

	return value, nil
}
