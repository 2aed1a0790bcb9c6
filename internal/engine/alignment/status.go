// Package alignment classifies how the sun and moon line up.
package alignment

import "fmt"

// Status is the sun–moon alignment at one instant.
type Status int

const (
	// None means the bodies are not near opposition.
	None Status = iota

	// Opposition means the bodies face each other across the axis but their
	// light spots are at least one spot size apart.
	Opposition

	// PartialEclipse means the spots overlap by less than half a spot.
	PartialEclipse

	// FullEclipse means the spots are within half a spot of each other.
	FullEclipse
)

var statusNames = [...]string{
	None:           "none",
	Opposition:     "opposition",
	PartialEclipse: "partial_eclipse",
	FullEclipse:    "full_eclipse",
}

// String returns the machine name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Label returns the text shown in the info panel. None has no label.
func (s Status) Label() string {
	switch s {
	case FullEclipse:
		return "FULL ECLIPSE!"
	case PartialEclipse:
		return "Partial eclipse"
	case Opposition:
		return "Opposition (eclipse possible)"
	default:
		return ""
	}
}

// ParseStatus returns the status with the given machine name.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return None, fmt.Errorf("unknown alignment status %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
