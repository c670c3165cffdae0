// Package calendar converts dates to the Vikram Samvat era and flags the
// Panchak window of the lunar month.
package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

const (
	// NakshatraSpan is the width of one lunar mansion in degrees (13°20′).
	NakshatraSpan = 360.0 / model.NakshatraCount
	// PadaSpan is a quarter of a mansion (3°20′).
	PadaSpan = NakshatraSpan / 4

	// PanchakFirst is the first mansion of the Panchak (Dhanishta).
	PanchakFirst = 22
)

// VikramSamvat returns the Vikram Samvat year for date. The era year turns in
// April, approximating the Chaitra new moon.
func VikramSamvat(date time.Time) int {
	if date.Month() >= time.April {
		return date.Year() + 57
	}
	return date.Year() + 56
}

var nakshatraNames = [model.NakshatraCount]model.Bilingual{
	{En: "Ashwini", Hi: "अश्विनी"},
	{En: "Bharani", Hi: "भरणी"},
	{En: "Krittika", Hi: "कृत्तिका"},
	{En: "Rohini", Hi: "रोहिणी"},
	{En: "Mrigashira", Hi: "मृगशिरा"},
	{En: "Ardra", Hi: "आर्द्रा"},
	{En: "Punarvasu", Hi: "पुनर्वसु"},
	{En: "Pushya", Hi: "पुष्य"},
	{En: "Ashlesha", Hi: "आश्लेषा"},
	{En: "Magha", Hi: "मघा"},
	{En: "Purva Phalguni", Hi: "पूर्वा फाल्गुनी"},
	{En: "Uttara Phalguni", Hi: "उत्तरा फाल्गुनी"},
	{En: "Hasta", Hi: "हस्त"},
	{En: "Chitra", Hi: "चित्रा"},
	{En: "Swati", Hi: "स्वाति"},
	{En: "Vishakha", Hi: "विशाखा"},
	{En: "Anuradha", Hi: "अनुराधा"},
	{En: "Jyeshtha", Hi: "ज्येष्ठा"},
	{En: "Mula", Hi: "मूल"},
	{En: "Purva Ashadha", Hi: "पूर्वाषाढ़ा"},
	{En: "Uttara Ashadha", Hi: "उत्तराषाढ़ा"},
	{En: "Shravana", Hi: "श्रवण"},
	{En: "Dhanishta", Hi: "धनिष्ठा"},
	{En: "Shatabhisha", Hi: "शतभिषा"},
	{En: "Purva Bhadrapada", Hi: "पूर्वा भाद्रपद"},
	{En: "Uttara Bhadrapada", Hi: "उत्तरा भाद्रपद"},
	{En: "Revati", Hi: "रेवती"},
}

var panchakWarnings = []model.Bilingual{
	{En: "Avoid collecting wood or fuel", Hi: "लकड़ी या ईंधन इकट्ठा करने से बचें"},
	{En: "Avoid roofing or laying a house foundation", Hi: "छत डालने या नींव रखने से बचें"},
	{En: "Avoid travel towards the south", Hi: "दक्षिण दिशा की यात्रा से बचें"},
	{En: "Avoid making or buying a bed", Hi: "चारपाई या पलंग बनवाने या खरीदने से बचें"},
	{En: "Perform last rites only with the prescribed remedies", Hi: "अंतिम संस्कार केवल विधिपूर्वक उपाय के साथ करें"},
}

// NakshatraName returns the bilingual name of mansion idx.
func NakshatraName(idx int) (model.Bilingual, error) {
	if idx < 0 || idx >= model.NakshatraCount {
		return model.Bilingual{}, fmt.Errorf("%w: nakshatra index %d out of range 0..%d",
			model.ErrInvalidInput, idx, model.NakshatraCount-1)
	}
	return nakshatraNames[idx], nil
}

// NakshatraFromLongitude places a sidereal longitude in its mansion and
// pada. Longitudes outside [0, 360) are wrapped.
func NakshatraFromLongitude(lon float64) model.Nakshatra {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}

	idx := int(lon / NakshatraSpan)
	if idx >= model.NakshatraCount {
		idx = model.NakshatraCount - 1
	}
	pada := int((lon-float64(idx)*NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}

	return model.Nakshatra{Index: idx, Pada: pada, Name: nakshatraNames[idx]}
}

// IsPanchak reports whether mansion idx is one of the last five.
func IsPanchak(idx int) bool {
	return idx >= PanchakFirst && idx < model.NakshatraCount
}

// PanchakStatus flags the Panchak for the Moon's mansion idx.
func PanchakStatus(idx int) (model.PanchakStatus, error) {
	name, err := NakshatraName(idx)
	if err != nil {
		return model.PanchakStatus{}, &model.OpError{Op: "calendar.panchak", Kind: model.KindInvalidInput, Err: err}
	}
	if !IsPanchak(idx) {
		return model.PanchakStatus{}, nil
	}

	warnings := make([]model.Bilingual, len(panchakWarnings))
	copy(warnings, panchakWarnings)

	return model.PanchakStatus{
		Active:    true,
		Nakshatra: &model.Nakshatra{Index: idx, Name: name},
		Warnings:  warnings,
	}, nil
}

// PanchakKind names a Panchak by the weekday it begins on.
func PanchakKind(start time.Weekday) model.PanchakKind {
	switch start {
	case time.Sunday:
		return model.PanchakRoga
	case time.Monday:
		return model.PanchakRaja
	case time.Tuesday:
		return model.PanchakAgni
	case time.Friday:
		return model.PanchakChora
	case time.Saturday:
		return model.PanchakMrityu
	default:
		return model.PanchakPlain
	}
}
