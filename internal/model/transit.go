package model

import "time"

// SadeSatiPhase is where Saturn stands relative to the natal Moon.
type SadeSatiPhase string

const (
	PhaseRising  SadeSatiPhase = "rising"  // 12th from Moon
	PhasePeak    SadeSatiPhase = "peak"    // over the Moon sign
	PhaseSetting SadeSatiPhase = "setting" // 2nd from Moon
	PhaseNone    SadeSatiPhase = "none"
)

// Panoti is the "small Panoti" (dhaiya) Saturn transit.
type Panoti string

const (
	PanotiNone    Panoti = "none"
	PanotiKantak  Panoti = "kantak_shani" // 4th from Moon
	PanotiAshtama Panoti = "ashtam_shani" // 8th from Moon
)

// IngressEntry is Saturn's stay in one sign over the half-open interval
// [Start, End).
type IngressEntry struct {
	Sign  Sign      `json:"sign"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies in [Start, End).
func (e IngressEntry) Contains(t time.Time) bool {
	return !t.Before(e.Start) && t.Before(e.End)
}

// SignLookup is the answer to "which sign is Saturn in". Approximate is set
// when the date fell outside the generated ingress table and the sign was
// extrapolated from the anchor.
type SignLookup struct {
	Sign        Sign `json:"sign"`
	Approximate bool `json:"approximate"`
}

// TransitWindow bounds one Sade Sati occurrence:
// rising [Start, PeakStart), peak [PeakStart, PeakEnd), setting [PeakEnd, End).
type TransitWindow struct {
	Start       time.Time     `json:"start"`
	PeakStart   time.Time     `json:"peak_start"`
	PeakEnd     time.Time     `json:"peak_end"`
	End         time.Time     `json:"end"`
	Phase       SadeSatiPhase `json:"phase"`
	RisingSign  Sign          `json:"rising_sign"`
	Approximate bool          `json:"approximate"`
}

// PhaseAt reports which part of the window t falls in.
func (w TransitWindow) PhaseAt(t time.Time) SadeSatiPhase {
	switch {
	case t.Before(w.Start) || !t.Before(w.End):
		return PhaseNone
	case t.Before(w.PeakStart):
		return PhaseRising
	case t.Before(w.PeakEnd):
		return PhasePeak
	default:
		return PhaseSetting
	}
}

// SadeSatiStatus is the full Saturn-transit picture for a Moon sign on a date.
type SadeSatiStatus struct {
	MoonSign      Sign           `json:"moon_sign"`
	Date          time.Time      `json:"date"`
	Saturn        SignLookup     `json:"saturn"`
	HouseFromMoon int            `json:"house_from_moon"`
	Phase         SadeSatiPhase  `json:"phase"`
	Panoti        Panoti         `json:"panoti"`
	Current       *TransitWindow `json:"current,omitempty"`
	Next          TransitWindow  `json:"next"`
}
