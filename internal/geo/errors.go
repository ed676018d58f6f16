package geo

import "fmt"

// ErrorKind classifies validation failures on a well-formed coordinate.
type ErrorKind int

const (
	OutOfRange ErrorKind = iota
	InvalidDegree
	InvalidMinutes
	InvalidSeconds
	InvalidDirection
)

// CoordError reports a coordinate whose components parsed correctly but
// violate a numeric or geographic rule. It carries the offending value
// for diagnostics.
type CoordError struct {
	Kind      ErrorKind
	Value     float64
	Direction rune
}

func (e *CoordError) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("coordinate out of range (deg=%v)", e.Value)
	case InvalidDegree:
		return fmt.Sprintf("invalid degree value (deg=%v)", e.Value)
	case InvalidMinutes:
		return fmt.Sprintf("invalid minutes value (min=%v)", e.Value)
	case InvalidSeconds:
		return fmt.Sprintf("invalid seconds value (sec=%v)", e.Value)
	case InvalidDirection:
		return fmt.Sprintf("invalid direction %q", e.Direction)
	default:
		return "invalid coordinate"
	}
}

// SyntaxError reports an input string that does not match the expected
// component grammar at all. It is not attributable to a single field.
type SyntaxError struct {
	Notation string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s format", e.Notation)
}

// FieldError reports that the overall shape matched but one named
// component failed to parse as a number.
type FieldError struct {
	Notation string
	Field    Field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s field: %s", e.Notation, e.Field)
}
