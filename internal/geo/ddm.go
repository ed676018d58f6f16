package geo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Grammar for the degrees/decimal-minutes notation. Seconds are
// implicitly zero.
var ddmPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\s*(.+?)\s*°\s*(.+?)\s*['′]\s*(.)\s*$`)
})

// ParseDDM parses a degrees/decimal-minutes string ("48° 51.492' N")
// and converts it to decimal degrees. Same failure taxonomy as
// ParseDMS, with field errors restricted to degrees and minutes.
func ParseDDM(input string, kind Kind) (float64, error) {
	m := ddmPattern().FindStringSubmatch(input)
	if m == nil {
		return 0, &SyntaxError{Notation: "DDM"}
	}

	deg, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return 0, &FieldError{Notation: "DDM", Field: FieldDegrees}
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
	if err != nil {
		return 0, &FieldError{Notation: "DDM", Field: FieldMinutes}
	}
	dir := unicode.ToUpper([]rune(m[3])[0])

	if !isFinite(deg) || !isFinite(min) {
		return 0, &SyntaxError{Notation: "DDM"}
	}

	c := coordinate{deg: deg, min: min, sec: 0, dir: dir}
	value, err := c.decimal(kind)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate: %w", err)
	}

	return value, nil
}
