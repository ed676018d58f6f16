package geo

// Kind indicates whether a coordinate is a latitude or a longitude.
// It selects which bounds and direction letters apply during validation.
type Kind int

const (
	Latitude Kind = iota
	Longitude
)

func (k Kind) String() string {
	if k == Latitude {
		return "latitude"
	}
	return "longitude"
}

// Field identifies which textual component of a coordinate failed to
// parse. Used as error payload for precise reporting.
type Field int

const (
	FieldDegrees Field = iota
	FieldMinutes
	FieldSeconds
	FieldDirection
)

func (f Field) String() string {
	switch f {
	case FieldDegrees:
		return "degrees"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	case FieldDirection:
		return "direction"
	default:
		return "unknown"
	}
}
