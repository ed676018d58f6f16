package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Grammar for the degrees/minutes/seconds notation. Accepts ASCII and
// Unicode minute/second marks and arbitrary whitespace between
// components. Compiled once on first use and shared read-only.
var dmsPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\s*(.+?)\s*°\s*(.+?)\s*['′]\s*(.+?)\s*["″]\s*(.)\s*$`)
})

// ParseDMS parses a degrees/minutes/seconds string ("48°51'29\"N") and
// converts it to decimal degrees.
//
// Failures are reported on three distinct levels: *SyntaxError when the
// string does not match the grammar, *FieldError when a component is
// not numeric, and a wrapped *CoordError when the components violate a
// geographic rule.
func ParseDMS(input string, kind Kind) (float64, error) {
	m := dmsPattern().FindStringSubmatch(input)
	if m == nil {
		return 0, &SyntaxError{Notation: "DMS"}
	}

	deg, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return 0, &FieldError{Notation: "DMS", Field: FieldDegrees}
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
	if err != nil {
		return 0, &FieldError{Notation: "DMS", Field: FieldMinutes}
	}
	sec, err := strconv.ParseFloat(strings.TrimSpace(m[3]), 64)
	if err != nil {
		return 0, &FieldError{Notation: "DMS", Field: FieldSeconds}
	}
	dir := unicode.ToUpper([]rune(m[4])[0])

	// ParseFloat accepts "Inf" and "NaN" literals; reject them here.
	if !isFinite(deg) || !isFinite(min) || !isFinite(sec) {
		return 0, &SyntaxError{Notation: "DMS"}
	}

	c := coordinate{deg: deg, min: min, sec: sec, dir: dir}
	value, err := c.decimal(kind)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate: %w", err)
	}

	return value, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
