package model

// Bilingual is a display string in English and Hindi. The engine never
// branches on it; it is carried through to the presentation layer as-is.
type Bilingual struct {
	En string `json:"en" yaml:"en"`
	Hi string `json:"hi" yaml:"hi"`
}

// Severity ranks how strongly an affliction applies.
type Severity int

const (
	SeverityNone     Severity = 0
	SeverityMild     Severity = 1
	SeverityModerate Severity = 2
	SeveritySevere   Severity = 3
)

func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "none"
	}
}

// MarshalText encodes the tier by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a tier name; unknown names decode to none.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "mild":
		*s = SeverityMild
	case "moderate":
		*s = SeverityModerate
	case "severe":
		*s = SeveritySevere
	default:
		*s = SeverityNone
	}
	return nil
}

// Max returns the stronger of two severities.
func (s Severity) Max(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}
