package model

import "time"

// Report is the complete evaluation of one chart
type Report struct {
	ID            string    `json:"id"`                    // Unique report identifier (UUID)
	Subject       string    `json:"subject"`               // Whose chart this is
	SourcePath    string    `json:"source_path,omitempty"` // Chart file the report was built from
	GeneratedAt   time.Time `json:"generated_at"`          // When the evaluation ran
	ReferenceDate time.Time `json:"reference_date"`        // Date used for transit and calendar checks

	Chart Chart `json:"chart"`

	Doshas DoshaReport `json:"doshas"`
	Yogas  YogaSummary `json:"yogas"`

	SadeSati     *SadeSatiStatus `json:"sade_sati,omitempty"` // Saturn transit from the natal Moon
	Panchak      *PanchakStatus  `json:"panchak,omitempty"`   // Only when a Moon nakshatra is known
	VikramSamvat int             `json:"vikram_samvat"`

	Cached bool `json:"-"` // Served from the report cache
}

// Highlights are the one-line flags shown in summaries
func (r *Report) Highlights() []string {
	var out []string
	if r.Doshas.Kalsarp.Status != KalsarpNone {
		out = append(out, "kalsarp:"+string(r.Doshas.Kalsarp.Status))
	}
	if r.Doshas.Pitra.HasDosha {
		out = append(out, "pitra:"+r.Doshas.Pitra.Severity.String())
	}
	for _, y := range r.Yogas.Yogas {
		out = append(out, "yoga:"+string(y.Type))
	}
	if r.SadeSati != nil && r.SadeSati.Phase != PhaseNone {
		out = append(out, "sade_sati:"+string(r.SadeSati.Phase))
	}
	if r.Panchak != nil && r.Panchak.Active {
		out = append(out, "panchak")
	}
	return out
}
