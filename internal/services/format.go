package services

import "fmt"

// Format selects how textual coordinates are interpreted. The format is
// fixed per batch; rows never mix notations.
type Format int

const (
	FormatDD Format = iota
	FormatDMS
	FormatDDM
)

func (f Format) String() string {
	switch f {
	case FormatDD:
		return "dd"
	case FormatDMS:
		return "dms"
	case FormatDDM:
		return "ddm"
	default:
		return "unknown"
	}
}

// ParseFormat maps a CLI/API format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "dd":
		return FormatDD, nil
	case "dms":
		return FormatDMS, nil
	case "ddm":
		return FormatDDM, nil
	default:
		return 0, fmt.Errorf("unknown coordinate format %q (expected dd, dms or ddm)", s)
	}
}
