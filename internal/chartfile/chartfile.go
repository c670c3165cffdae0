// Package chartfile reads natal charts from YAML, JSON or TOML documents and
// resolves them into model.ChartInput.
//
// A document gives either sign/house placements with an ascendant sign, or
// sidereal longitudes with an ascendant longitude. Houses and signs may each
// be omitted when the other is given; the missing half follows from the
// Whole-Sign system.
package chartfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vastucartapps/jyotish/internal/calendar"
	"github.com/vastucartapps/jyotish/internal/model"
)

// Format is a chart document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Document is the on-disk shape of a chart.
type Document struct {
	Subject            string                 `json:"subject" yaml:"subject" toml:"subject"`
	Date               string                 `json:"date" yaml:"date" toml:"date"` // YYYY-MM-DD or RFC 3339
	Ascendant          *model.Sign            `json:"ascendant" yaml:"ascendant" toml:"ascendant"`
	AscendantLongitude *float64               `json:"ascendant_longitude" yaml:"ascendant_longitude" toml:"ascendant_longitude"`
	MoonNakshatra      *int                   `json:"moon_nakshatra" yaml:"moon_nakshatra" toml:"moon_nakshatra"`
	Planets            map[string]PlanetEntry `json:"planets" yaml:"planets" toml:"planets"` // keyed by graha name
}

// PlanetEntry is one graha as written in a document. Any subset may be set.
type PlanetEntry struct {
	House     *int        `json:"house" yaml:"house" toml:"house"`
	Sign      *model.Sign `json:"sign" yaml:"sign" toml:"sign"`
	Longitude *float64    `json:"longitude" yaml:"longitude" toml:"longitude"`
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported chart file extension %q", model.ErrInvalidInput, filepath.Ext(path))
	}
}

// Load reads and resolves the chart at path. now supplies the reference date
// when the document has none.
func Load(path string, now time.Time) (model.ChartInput, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return model.ChartInput{}, &model.OpError{Op: "chartfile.load", Kind: model.KindInvalidInput, Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.ChartInput{}, &model.OpError{Op: "chartfile.load", Kind: model.KindIO, Path: path, Err: err}
	}

	doc, err := Decode(data, format)
	if err != nil {
		return model.ChartInput{}, &model.OpError{Op: "chartfile.decode", Kind: model.KindInvalidInput, Path: path, Err: err}
	}

	in, err := Resolve(doc, now)
	if err != nil {
		return model.ChartInput{}, &model.OpError{Op: "chartfile.resolve", Kind: model.KindInvalidChart, Path: path, Err: err}
	}
	in.SourcePath = path
	if in.Subject == "" {
		in.Subject = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return in, nil
}

// Decode parses a document in the given format.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("parse json: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Document{}, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Document{}, fmt.Errorf("parse toml: unknown keys %v", undecoded)
		}
	default:
		return Document{}, fmt.Errorf("%w: unknown format %q", model.ErrInvalidInput, format)
	}
	return doc, nil
}

// Resolve turns a document into a chart. Range and consistency checks are
// left to validate.Chart; Resolve only fails when a placement cannot be
// derived at all.
func Resolve(doc Document, now time.Time) (model.ChartInput, error) {
	ref, err := referenceDate(doc.Date, now)
	if err != nil {
		return model.ChartInput{}, err
	}

	in := model.ChartInput{
		Subject:       doc.Subject,
		ReferenceDate: ref,
		MoonNakshatra: doc.MoonNakshatra,
	}

	var asc model.Sign
	switch {
	case doc.AscendantLongitude != nil:
		asc = SignFromLongitude(*doc.AscendantLongitude)
	case doc.Ascendant != nil:
		asc = *doc.Ascendant
	default:
		return model.ChartInput{}, fmt.Errorf("%w: ascendant or ascendant_longitude is required", model.ErrInvalidChart)
	}

	planets := make(map[model.Graha]model.Placement, len(doc.Planets))
	var moonLongitude *float64
	for name, entry := range doc.Planets {
		g, err := model.ParseGraha(name)
		if err != nil {
			return model.ChartInput{}, err
		}
		if _, dup := planets[g]; dup {
			return model.ChartInput{}, fmt.Errorf("%w: %s listed twice", model.ErrInvalidChart, g)
		}
		p, err := resolvePlacement(asc, entry)
		if err != nil {
			return model.ChartInput{}, fmt.Errorf("%s: %w", g, err)
		}
		planets[g] = p
		if g == model.Moon {
			moonLongitude = entry.Longitude
		}
	}
	in.Chart = model.Chart{Ascendant: asc, Planets: planets}

	if in.MoonNakshatra == nil && moonLongitude != nil {
		idx := calendar.NakshatraFromLongitude(*moonLongitude).Index
		in.MoonNakshatra = &idx
	}
	return in, nil
}

func resolvePlacement(asc model.Sign, e PlanetEntry) (model.Placement, error) {
	switch {
	case e.Longitude != nil:
		sign := SignFromLongitude(*e.Longitude)
		return model.Placement{House: model.WholeSignHouse(asc, sign), Sign: sign}, nil
	case e.House != nil && e.Sign != nil:
		return model.Placement{House: *e.House, Sign: *e.Sign}, nil
	case e.Sign != nil:
		return model.Placement{House: model.WholeSignHouse(asc, *e.Sign), Sign: *e.Sign}, nil
	case e.House != nil:
		return model.Placement{House: *e.House, Sign: asc.Add(*e.House - 1)}, nil
	default:
		return model.Placement{}, fmt.Errorf("%w: needs a house, a sign or a longitude", model.ErrInvalidChart)
	}
}

// SignFromLongitude reduces a sidereal longitude to its sign.
func SignFromLongitude(lon float64) model.Sign {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return model.Sign(int(lon/30) % model.SignCount)
}

func referenceDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is neither YYYY-MM-DD nor RFC 3339", model.ErrInvalidInput, raw)
	}
	return t.UTC(), nil
}
