package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Sign is a zodiac sign (rashi) index, 0 = Aries through 11 = Pisces.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of signs on the zodiac ring.
const SignCount = 12

var signNames = [SignCount]Bilingual{
	{En: "Aries", Hi: "मेष"},
	{En: "Taurus", Hi: "वृषभ"},
	{En: "Gemini", Hi: "मिथुन"},
	{En: "Cancer", Hi: "कर्क"},
	{En: "Leo", Hi: "सिंह"},
	{En: "Virgo", Hi: "कन्या"},
	{En: "Libra", Hi: "तुला"},
	{En: "Scorpio", Hi: "वृश्चिक"},
	{En: "Sagittarius", Hi: "धनु"},
	{En: "Capricorn", Hi: "मकर"},
	{En: "Aquarius", Hi: "कुंभ"},
	{En: "Pisces", Hi: "मीन"},
}

// Valid reports whether s is in [0,11].
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Add moves n signs forward around the zodiac. Negative n moves backward.
func (s Sign) Add(n int) Sign {
	return Sign(((int(s)+n)%SignCount + SignCount) % SignCount)
}

// Name returns the bilingual sign name.
func (s Sign) Name() Bilingual {
	if !s.Valid() {
		return Bilingual{En: "Unknown", Hi: "अज्ञात"}
	}
	return signNames[s]
}

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("sign(%d)", int(s))
	}
	return signNames[s].En
}

// MarshalYAML writes the sign by name in configuration files.
func (s Sign) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalText accepts either the numeric index or the English name.
// Range checking is left to chart validation.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (s *Sign) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Sign(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: sign must be a number or a name", ErrInvalidInput)
	}
	return s.UnmarshalText([]byte(name))
}

// ParseSign resolves "0".."11" or an English sign name, case-insensitively.
func ParseSign(raw string) (Sign, error) {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Sign(n), nil
	}
	for i, name := range signNames {
		if strings.EqualFold(name.En, trimmed) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sign %q", ErrInvalidInput, raw)
}
