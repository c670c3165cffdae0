package transit

import (
	"math"
	"testing"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

func TestSadeSatiPhase_AllSignPairs(t *testing.T) {
	for moon := model.Aries; moon <= model.Pisces; moon++ {
		for saturn := model.Aries; saturn <= model.Pisces; saturn++ {
			house := ((int(saturn) - int(moon) + 12) % 12) + 1
			phase := SadeSatiPhase(moon, saturn)

			var want model.SadeSatiPhase
			switch house {
			case 12:
				want = model.PhaseRising
			case 1:
				want = model.PhasePeak
			case 2:
				want = model.PhaseSetting
			default:
				want = model.PhaseNone
			}
			if phase != want {
				t.Errorf("moon=%v saturn=%v: expected %v, got %v", moon, saturn, want, phase)
			}
		}
	}
}

func TestSadeSatiPhase_Examples(t *testing.T) {
	if got := SadeSatiPhase(model.Cancer, model.Cancer); got != model.PhasePeak {
		t.Errorf("Saturn over the Moon: expected peak, got %v", got)
	}
	if got := HouseFromMoon(model.Aries, model.Pisces); got != 12 {
		t.Errorf("Pisces from an Aries Moon: expected house 12, got %d", got)
	}
	if got := SadeSatiPhase(model.Aries, model.Pisces); got != model.PhaseRising {
		t.Errorf("expected rising, got %v", got)
	}
	if got := SadeSatiPhase(model.Aries, model.Taurus); got != model.PhaseSetting {
		t.Errorf("expected setting, got %v", got)
	}
}

func TestSmallPanoti(t *testing.T) {
	tests := []struct {
		moon, saturn model.Sign
		want         model.Panoti
	}{
		{model.Aries, model.Cancer, model.PanotiKantak},
		{model.Aries, model.Scorpio, model.PanotiAshtama},
		{model.Aries, model.Aries, model.PanotiNone},
		{model.Capricorn, model.Aries, model.PanotiKantak},
	}

	for _, tt := range tests {
		if got := SmallPanoti(tt.moon, tt.saturn); got != tt.want {
			t.Errorf("SmallPanoti(%v, %v) = %v, want %v", tt.moon, tt.saturn, got, tt.want)
		}
	}
}

func TestCurrentWindow_Peak(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()

	// Saturn in Pisces over a Pisces Moon; the period began with the
	// anchor's Aquarius ingress.
	w, ok := e.CurrentWindow(model.Pisces, date(2026, time.October, 19))
	if !ok {
		t.Fatal("expected a Sade Sati window for a Pisces Moon")
	}

	if w.Phase != model.PhasePeak {
		t.Errorf("expected peak, got %v", w.Phase)
	}
	if w.RisingSign != model.Aquarius {
		t.Errorf("expected Aquarius as rising sign, got %v", w.RisingSign)
	}
	if !w.Start.Equal(table[0].Start) || !w.PeakStart.Equal(table[1].Start) ||
		!w.PeakEnd.Equal(table[2].Start) || !w.End.Equal(table[3].Start) {
		t.Errorf("window boundaries do not follow the ingress table: %+v", w)
	}
	if w.Approximate {
		t.Error("window inside the table should not be approximate")
	}
}

func TestCurrentWindow_Rising(t *testing.T) {
	e := NewEngine(DefaultAnchor())

	w, ok := e.CurrentWindow(model.Aries, date(2026, time.October, 19))
	if !ok {
		t.Fatal("expected a Sade Sati window for an Aries Moon")
	}
	if w.Phase != model.PhaseRising {
		t.Errorf("expected rising, got %v", w.Phase)
	}
	if w.RisingSign != model.Pisces {
		t.Errorf("expected Pisces as rising sign, got %v", w.RisingSign)
	}
}

func TestCurrentWindow_None(t *testing.T) {
	e := NewEngine(DefaultAnchor())

	if _, ok := e.CurrentWindow(model.Cancer, date(2026, time.October, 19)); ok {
		t.Error("expected no Sade Sati for a Cancer Moon")
	}
}

func TestNextWindow(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()

	// Cancer Moon: Sade Sati starts when Saturn enters Gemini, table entry 4.
	w := e.NextWindow(model.Cancer, date(2026, time.October, 19))
	if !w.Start.Equal(table[4].Start) {
		t.Errorf("expected start %v, got %v", table[4].Start, w.Start)
	}
	if !w.PeakStart.Equal(table[5].Start) {
		t.Errorf("expected peak start %v, got %v", table[5].Start, w.PeakStart)
	}
	if w.Phase != model.PhaseNone {
		t.Errorf("a future window has no phase, got %v", w.Phase)
	}
	if w.Approximate {
		t.Error("window inside the table should not be approximate")
	}

	// Pisces Moon is already in Sade Sati; the next one is a full cycle on.
	next := e.NextWindow(model.Pisces, date(2026, time.October, 19))
	if !next.Start.Equal(table[11].End) {
		t.Errorf("expected start %v, got %v", table[11].End, next.Start)
	}
	if !next.Approximate {
		t.Error("windows past the table are extrapolated")
	}
}

func TestWindows(t *testing.T) {
	e := NewEngine(DefaultAnchor())

	windows := e.Windows(model.Pisces, date(2000, time.January, 1), date(2060, time.January, 1))
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}

	cycle := daysToDuration(DaysPerSign * 12)
	for i, w := range windows {
		if !w.Start.Before(w.PeakStart) || !w.PeakStart.Before(w.PeakEnd) || !w.PeakEnd.Before(w.End) {
			t.Errorf("window %d out of order: %+v", i, w)
		}
		if i > 0 {
			gap := w.Start.Sub(windows[i-1].Start)
			if math.Abs(cycle.Seconds()-gap.Seconds()) > 1 {
				t.Errorf("window %d: expected a gap of %v, got %v", i, cycle, gap)
			}
		}
	}
	if !windows[1].Start.Equal(DefaultAnchor().Date) {
		t.Errorf("expected the second window to start at the anchor, got %v", windows[1].Start)
	}

	if got := e.Windows(model.Pisces, date(2060, time.January, 1), date(2000, time.January, 1)); len(got) != 0 {
		t.Errorf("expected no windows for an inverted range, got %d", len(got))
	}
}

func TestStatus(t *testing.T) {
	e := NewEngine(DefaultAnchor())

	s := e.Status(model.Aries, date(2026, time.October, 19))
	if s.Saturn.Sign != model.Pisces {
		t.Errorf("expected Saturn in Pisces, got %v", s.Saturn.Sign)
	}
	if s.HouseFromMoon != 12 {
		t.Errorf("expected house 12 from the Moon, got %d", s.HouseFromMoon)
	}
	if s.Phase != model.PhaseRising {
		t.Errorf("expected rising, got %v", s.Phase)
	}
	if s.Panoti != model.PanotiNone {
		t.Errorf("expected no Panoti, got %v", s.Panoti)
	}
	if s.Current == nil {
		t.Fatal("expected a current window")
	}
	if s.Current.Phase != s.Phase {
		t.Errorf("current window phase %v differs from status phase %v", s.Current.Phase, s.Phase)
	}
	if !s.Next.Start.After(s.Current.Start) {
		t.Errorf("next window %v should start after the current one %v", s.Next.Start, s.Current.Start)
	}

	quiet := e.Status(model.Cancer, date(2026, time.October, 19))
	if quiet.Current != nil {
		t.Errorf("expected no current window, got %+v", quiet.Current)
	}
	if quiet.HouseFromMoon != 9 {
		t.Errorf("expected house 9 from the Moon, got %d", quiet.HouseFromMoon)
	}
}
