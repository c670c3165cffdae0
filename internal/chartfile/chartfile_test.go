package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const yamlSigns = `subject: Asha
date: 2024-05-01
ascendant: leo
planets:
  sun: {sign: virgo}
  moon: {sign: leo}
  mars: {sign: libra}
  mercury: {sign: libra}
  jupiter: {sign: virgo}
  venus: {sign: sagittarius}
  saturn: {sign: cancer}
  rahu: {sign: scorpio}
  ketu: {sign: taurus}
`

func TestLoad_YAMLSignsDeriveHouses(t *testing.T) {
	in, err := Load(writeFile(t, "asha.yaml", yamlSigns), fixedNow)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if in.Subject != "Asha" {
		t.Errorf("expected subject Asha, got %q", in.Subject)
	}
	if !in.ReferenceDate.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected reference date %v", in.ReferenceDate)
	}
	if in.Chart.Ascendant != model.Leo {
		t.Errorf("expected Leo ascendant, got %v", in.Chart.Ascendant)
	}

	want := map[model.Graha]int{
		model.Sun: 2, model.Moon: 1, model.Mars: 3, model.Mercury: 3,
		model.Jupiter: 2, model.Venus: 5, model.Saturn: 12,
		model.Rahu: 4, model.Ketu: 10,
	}
	for g, h := range want {
		if got := in.Chart.House(g); got != h {
			t.Errorf("%s: expected house %d, got %d", g, h, got)
		}
	}
	if in.MoonNakshatra != nil {
		t.Errorf("expected no nakshatra without a Moon longitude, got %d", *in.MoonNakshatra)
	}
}

const jsonHouses = `{
  "ascendant": 0,
  "moon_nakshatra": 23,
  "planets": {
    "sun": {"house": 2}, "moon": {"house": 1}, "mars": {"house": 3},
    "mercury": {"house": 3}, "jupiter": {"house": 2}, "venus": {"house": 5},
    "saturn": {"house": 11}, "rahu": {"house": 4}, "ketu": {"house": 10}
  }
}`

func TestLoad_JSONHousesDeriveSigns(t *testing.T) {
	in, err := Load(writeFile(t, "ravi.json", jsonHouses), fixedNow)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if in.Subject != "ravi" {
		t.Errorf("expected subject from file name, got %q", in.Subject)
	}
	if !in.ReferenceDate.Equal(fixedNow) {
		t.Errorf("expected reference date to default to now, got %v", in.ReferenceDate)
	}
	if got := in.Chart.SignOf(model.Saturn); got != model.Aquarius {
		t.Errorf("expected Saturn in Aquarius, got %v", got)
	}
	if got := in.Chart.SignOf(model.Ketu); got != model.Capricorn {
		t.Errorf("expected Ketu in Capricorn, got %v", got)
	}
	if in.MoonNakshatra == nil || *in.MoonNakshatra != 23 {
		t.Errorf("expected explicit nakshatra 23, got %v", in.MoonNakshatra)
	}
}

const tomlLongitudes = `subject = "Meera"
date = "2025-01-10T06:30:00+05:30"
ascendant_longitude = 95.5

[planets.sun]
longitude = 150.2
[planets.moon]
longitude = 301.0
[planets.mars]
longitude = 200.0
[planets.mercury]
longitude = 185.0
[planets.jupiter]
longitude = 160.0
[planets.venus]
longitude = 250.0
[planets.saturn]
longitude = 100.0
[planets.rahu]
longitude = 215.0
[planets.ketu]
longitude = 35.0
`

func TestLoad_TOMLLongitudes(t *testing.T) {
	in, err := Load(writeFile(t, "meera.toml", tomlLongitudes), fixedNow)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if in.Chart.Ascendant != model.Cancer {
		t.Errorf("expected Cancer ascendant, got %v", in.Chart.Ascendant)
	}
	if got := in.Chart.Planets[model.Moon]; got.Sign != model.Aquarius || got.House != 8 {
		t.Errorf("expected Moon in Aquarius, house 8; got %v house %d", got.Sign, got.House)
	}
	if got := in.Chart.Planets[model.Saturn]; got.Sign != model.Cancer || got.House != 1 {
		t.Errorf("expected Saturn in Cancer, house 1; got %v house %d", got.Sign, got.House)
	}
	if in.MoonNakshatra == nil || *in.MoonNakshatra != 22 {
		t.Errorf("expected Dhanishta (22) from the Moon longitude, got %v", in.MoonNakshatra)
	}
	want := time.Date(2025, time.January, 10, 1, 0, 0, 0, time.UTC)
	if !in.ReferenceDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, in.ReferenceDate)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		kind    model.ErrorKind
	}{
		{"unsupported extension", "chart.txt", "sun: 1", model.KindInvalidInput},
		{"malformed yaml", "chart.yaml", "planets: [", model.KindInvalidInput},
		{"unknown json field", "chart.json", `{"ascendant": 0, "houses": {}}`, model.KindInvalidInput},
		{"unknown toml key", "chart.toml", "ascendant = 0\nextra = 1\n", model.KindInvalidInput},
		{"missing ascendant", "chart.yaml", "planets:\n  sun: {house: 1}\n", model.KindInvalidChart},
		{"unknown graha", "chart.yaml", "ascendant: 0\nplanets:\n  pluto: {house: 1}\n", model.KindInvalidChart},
		{"empty placement", "chart.yaml", "ascendant: 0\nplanets:\n  sun: {}\n", model.KindInvalidChart},
		{"bad date", "chart.yaml", "ascendant: 0\ndate: tomorrow\n", model.KindInvalidChart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content), fixedNow)
			if err == nil {
				t.Fatal("expected error")
			}
			if !model.IsKind(err, tt.kind) {
				t.Errorf("expected kind %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), fixedNow)
	if !model.IsKind(err, model.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestSignFromLongitude(t *testing.T) {
	tests := []struct {
		lon  float64
		want model.Sign
	}{
		{0, model.Aries},
		{29.999, model.Aries},
		{30, model.Taurus},
		{359.9, model.Pisces},
		{360, model.Aries},
		{-15, model.Pisces},
		{395, model.Taurus},
	}

	for _, tt := range tests {
		if got := SignFromLongitude(tt.lon); got != tt.want {
			t.Errorf("SignFromLongitude(%v) = %v, want %v", tt.lon, got, tt.want)
		}
	}
}
