package model

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

// Nakshatra is a lunar mansion index 0..26 with its pada 1..4.
type Nakshatra struct {
	Index int       `json:"index"`
	Pada  int       `json:"pada"`
	Name  Bilingual `json:"name"`
}

// PanchakKind names a Panchak by the weekday it begins on.
type PanchakKind string

const (
	PanchakRoga   PanchakKind = "roga"   // Sunday
	PanchakRaja   PanchakKind = "raja"   // Monday
	PanchakAgni   PanchakKind = "agni"   // Tuesday
	PanchakChora  PanchakKind = "chora"  // Friday
	PanchakMrityu PanchakKind = "mrityu" // Saturday
	PanchakPlain  PanchakKind = "plain"  // Wednesday, Thursday
)

// PanchakStatus flags the inauspicious five-nakshatra window. Nakshatra and
// Warnings are only populated while Active.
type PanchakStatus struct {
	Active    bool        `json:"active"`
	Nakshatra *Nakshatra  `json:"nakshatra,omitempty"`
	Warnings  []Bilingual `json:"warnings,omitempty"`
}
