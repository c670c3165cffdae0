package model

// KalsarpStatus classifies the Rahu–Ketu axis pattern.
type KalsarpStatus string

const (
	KalsarpNone    KalsarpStatus = "none"
	KalsarpFull    KalsarpStatus = "full"
	KalsarpPartial KalsarpStatus = "partial"
)

// ArcDirection names one side of the Rahu–Ketu axis.
type ArcDirection string

const (
	DirectionAscending  ArcDirection = "ascending"  // Rahu forward to Ketu
	DirectionDescending ArcDirection = "descending" // Ketu forward to Rahu
)

// KalsarpType is one entry of the twelve named Kalsarp patterns, keyed by
// Rahu's house.
type KalsarpType struct {
	ID        string    `json:"id"`
	Name      Bilingual `json:"name"`
	RahuHouse int       `json:"rahu_house"`
	KetuHouse int       `json:"ketu_house"`
	Effects   Bilingual `json:"effects"`
	Intensity Severity  `json:"intensity"`
}

// KalsarpResult is the verdict for the nodal-axis affliction.
type KalsarpResult struct {
	Status            KalsarpStatus `json:"status"`
	IsKalsarp         bool          `json:"is_kalsarp"`
	IsPartial         bool          `json:"is_partial"`
	Direction         ArcDirection  `json:"direction,omitempty"`
	Type              *KalsarpType  `json:"type,omitempty"`
	RahuHouse         int           `json:"rahu_house"`
	KetuHouse         int           `json:"ketu_house"`
	AscendingPlanets  []Graha       `json:"ascending_planets"`
	DescendingPlanets []Graha       `json:"descending_planets"`
	OutsidePlanets    []Graha       `json:"outside_planets,omitempty"`
	Name              Bilingual     `json:"name"`
	Description       Bilingual     `json:"description"`
}

// PitraIndicatorType tags one Pitra Dosha rule.
type PitraIndicatorType string

const (
	PitraNone                 PitraIndicatorType = "none"
	PitraSunRahu              PitraIndicatorType = "sun_rahu"
	PitraSunKetu              PitraIndicatorType = "sun_ketu"
	PitraSunSaturn            PitraIndicatorType = "sun_saturn"
	PitraNinthHouseAffliction PitraIndicatorType = "ninth_house_affliction"
	PitraNinthLordAfflicted   PitraIndicatorType = "ninth_lord_afflicted"
)

// PitraIndicator is one matched rule with the planets and houses behind it.
type PitraIndicator struct {
	Type        PitraIndicatorType `json:"type"`
	Name        Bilingual          `json:"name"`
	Description Bilingual          `json:"description"`
	Severity    Severity           `json:"severity"`
	Planets     []Graha            `json:"planets,omitempty"`
	Houses      []int              `json:"houses,omitempty"`
}

// PitraResult accumulates every matched indicator. When nothing matched,
// Indicators holds the single "none" sentinel.
type PitraResult struct {
	HasDosha       bool             `json:"has_dosha"`
	Severity       Severity         `json:"severity"`
	Indicators     []PitraIndicator `json:"indicators"`
	NinthHouseSign Sign             `json:"ninth_house_sign"`
	NinthLord      Graha            `json:"ninth_lord"`
}

// DoshaReport bundles both dosha verdicts for one chart.
type DoshaReport struct {
	Kalsarp KalsarpResult `json:"kalsarp"`
	Pitra   PitraResult   `json:"pitra"`
}
