package model

// YogaType tags one auspicious combination.
type YogaType string

const (
	YogaRuchaka      YogaType = "ruchaka"
	YogaBhadra       YogaType = "bhadra"
	YogaHamsa        YogaType = "hamsa"
	YogaMalavya      YogaType = "malavya"
	YogaShasha       YogaType = "shasha"
	YogaGajaKesari   YogaType = "gaja_kesari"
	YogaBudhaditya   YogaType = "budhaditya"
	YogaLakshmi      YogaType = "lakshmi"
	YogaViparitaRaja YogaType = "viparita_raja"
	YogaNeechaBhanga YogaType = "neecha_bhanga"
	YogaDhana        YogaType = "dhana"
)

// YogaCategory groups yoga types into the families they are evaluated in.
type YogaCategory string

const (
	CategoryMahapurusha  YogaCategory = "panch_mahapurusha"
	CategoryGajaKesari   YogaCategory = "gaja_kesari"
	CategoryBudhaditya   YogaCategory = "budhaditya"
	CategoryLakshmi      YogaCategory = "lakshmi"
	CategoryViparita     YogaCategory = "viparita_raja"
	CategoryNeechaBhanga YogaCategory = "neecha_bhanga"
	CategoryDhana        YogaCategory = "dhana"
)

// Intensity is the strength label attached to a yoga.
type Intensity string

const (
	IntensityPowerful Intensity = "powerful"
	IntensityStrong   Intensity = "strong"
	IntensityModerate Intensity = "moderate"
)

// Yoga is one fired combination together with the planets and houses that
// formed it.
type Yoga struct {
	Type        YogaType     `json:"type"`
	Category    YogaCategory `json:"category"`
	Name        Bilingual    `json:"name"`
	Description Bilingual    `json:"description"`
	Effects     Bilingual    `json:"effects"`
	Intensity   Intensity    `json:"intensity"`
	Planets     []Graha      `json:"planets"`
	Houses      []int        `json:"houses"`
}

// YogaTier buckets the number of yogas found.
type YogaTier string

const (
	TierNoYoga   YogaTier = "none"
	TierPresent  YogaTier = "present"
	TierMultiple YogaTier = "multiple"
)

// Interpretation is the narrative attached to a YogaTier.
type Interpretation struct {
	Tier    YogaTier  `json:"tier"`
	Title   Bilingual `json:"title"`
	Summary Bilingual `json:"summary"`
}

// YogaSummary is the full yoga evaluation for one chart.
type YogaSummary struct {
	Yogas          []Yoga         `json:"yogas"`
	Count          int            `json:"count"`
	Interpretation Interpretation `json:"interpretation"`
}
