package model

import (
	"fmt"
	"strings"
)

// Graha is one of the nine classical "planets": the seven visible bodies
// plus the lunar nodes Rahu and Ketu.
type Graha int

const (
	Sun Graha = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// ClassicalGrahas are the seven physical bodies in their traditional order.
var ClassicalGrahas = []Graha{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// AllGrahas lists every graha, nodes last.
var AllGrahas = []Graha{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

var grahaNames = [...]Bilingual{
	Sun:     {En: "Sun", Hi: "सूर्य"},
	Moon:    {En: "Moon", Hi: "चंद्र"},
	Mars:    {En: "Mars", Hi: "मंगल"},
	Mercury: {En: "Mercury", Hi: "बुध"},
	Jupiter: {En: "Jupiter", Hi: "गुरु"},
	Venus:   {En: "Venus", Hi: "शुक्र"},
	Saturn:  {En: "Saturn", Hi: "शनि"},
	Rahu:    {En: "Rahu", Hi: "राहु"},
	Ketu:    {En: "Ketu", Hi: "केतु"},
}

// Valid reports whether g is one of the nine known grahas.
func (g Graha) Valid() bool {
	return g >= Sun && g <= Ketu
}

// IsNode reports whether g is Rahu or Ketu.
func (g Graha) IsNode() bool {
	return g == Rahu || g == Ketu
}

// Name returns the bilingual display name.
func (g Graha) Name() Bilingual {
	if !g.Valid() {
		return Bilingual{En: "Unknown", Hi: "अज्ञात"}
	}
	return grahaNames[g]
}

func (g Graha) String() string {
	if !g.Valid() {
		return fmt.Sprintf("graha(%d)", int(g))
	}
	return strings.ToLower(grahaNames[g].En)
}

// MarshalText encodes the graha as its lowercase English name so it can be
// used as a map key in JSON, YAML and TOML documents.
func (g Graha) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid graha %d", int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText accepts the English name in any case.
func (g *Graha) UnmarshalText(text []byte) error {
	parsed, err := ParseGraha(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGraha resolves an English graha name, case-insensitively.
func ParseGraha(s string) (Graha, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, g := range AllGrahas {
		if g.String() == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown graha %q", ErrInvalidInput, s)
}
