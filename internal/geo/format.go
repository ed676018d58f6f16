package geo

import (
	"fmt"
	"math"
)

// FormatDMS renders a decimal-degree value as a D°M'S.SS"X display
// string. The direction letter is derived from the sign alone (N/S for
// latitudes, E/W for longitudes; the French "O" spelling never round
// trips). No bounds validation is performed: any finite value is
// formatted as-is. Callers are expected to guard non-finite inputs.
func FormatDMS(value float64, kind Kind) string {
	var dir rune
	if kind == Latitude {
		dir = 'N'
		if value < 0 {
			dir = 'S'
		}
	} else {
		dir = 'E'
		if value < 0 {
			dir = 'W'
		}
	}

	abs := math.Abs(value)
	deg := math.Floor(abs)
	minF := (abs - deg) * 60
	min := math.Floor(minF)
	sec := (minF - min) * 60

	return fmt.Sprintf("%d°%d'%.2f\"%c", int(deg), int(min), sec, dir)
}
