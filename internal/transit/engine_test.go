package transit

import (
	"math"
	"testing"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIngressTable(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()

	if len(table) != 12 {
		t.Fatalf("expected 12 ingress windows, got %d", len(table))
	}
	if table[0].Sign != model.Aquarius {
		t.Errorf("expected the table to open in Aquarius, got %v", table[0].Sign)
	}
	if !table[0].Start.Equal(DefaultAnchor().Date) {
		t.Errorf("expected the first window to start at the anchor, got %v", table[0].Start)
	}

	for i := 1; i < len(table); i++ {
		if !table[i-1].End.Equal(table[i].Start) {
			t.Errorf("window %d not contiguous", i)
		}
		if want := table[i-1].Sign.Add(1); table[i].Sign != want {
			t.Errorf("window %d: expected %v, got %v", i, want, table[i].Sign)
		}
		if !table[i].Start.Before(table[i].End) {
			t.Errorf("window %d is empty", i)
		}
	}

	span := table[11].End.Sub(table[0].Start)
	want := daysToDuration(DaysPerSign * 12)
	if math.Abs(want.Seconds()-span.Seconds()) > 1 {
		t.Errorf("table should span one orbital period: want %v, got %v", want, span)
	}
}

func TestIngressTable_IsCopy(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()
	table[0].Sign = model.Leo

	if got := e.IngressTable()[0].Sign; got != model.Aquarius {
		t.Errorf("engine table was modified through a copy: %v", got)
	}
}

func TestCurrentSign(t *testing.T) {
	e := NewEngine(DefaultAnchor())

	tests := []struct {
		name        string
		at          time.Time
		sign        model.Sign
		approximate bool
	}{
		{"anchor instant", DefaultAnchor().Date, model.Aquarius, false},
		{"inside first window", date(2024, time.June, 1), model.Aquarius, false},
		{"second window", date(2026, time.October, 19), model.Pisces, false},
		{"before anchor", date(1990, time.January, 1), model.Sagittarius, true},
		{"just before anchor", DefaultAnchor().Date.Add(-time.Hour), model.Capricorn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.CurrentSign(tt.at)
			if got.Sign != tt.sign {
				t.Errorf("expected %v, got %v", tt.sign, got.Sign)
			}
			if got.Approximate != tt.approximate {
				t.Errorf("expected approximate=%v, got %v", tt.approximate, got.Approximate)
			}
		})
	}
}

func TestCurrentSign_BeyondHorizon(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()

	got := e.CurrentSign(table[11].End.Add(24 * time.Hour))

	if !got.Approximate {
		t.Error("expected an extrapolated position past the table")
	}
	if got.Sign != model.Aquarius {
		t.Errorf("one full cycle later Saturn is back in the anchor sign, got %v", got.Sign)
	}
}

func TestCurrentSign_BoundaryBelongsToNextWindow(t *testing.T) {
	e := NewEngine(DefaultAnchor())
	table := e.IngressTable()

	for i := 1; i < len(table); i++ {
		if got := e.CurrentSign(table[i].Start).Sign; got != table[i].Sign {
			t.Errorf("start of window %d: expected %v, got %v", i, table[i].Sign, got)
		}
		if got := e.CurrentSign(table[i].Start.Add(-time.Nanosecond)).Sign; got != table[i-1].Sign {
			t.Errorf("end of window %d: expected %v, got %v", i-1, table[i-1].Sign, got)
		}
	}
}

func TestAnchorFromConfig(t *testing.T) {
	a, err := AnchorFromConfig(model.TransitConfig{})
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if a != DefaultAnchor() {
		t.Errorf("expected the default anchor, got %+v", a)
	}

	a, err = AnchorFromConfig(model.TransitConfig{AnchorSign: model.Pisces, AnchorDate: "2025-03-29"})
	if err != nil {
		t.Fatalf("explicit anchor: %v", err)
	}
	if a.Sign != model.Pisces {
		t.Errorf("expected Pisces, got %v", a.Sign)
	}
	if !a.Date.Equal(date(2025, time.March, 29)) {
		t.Errorf("expected 2025-03-29, got %v", a.Date)
	}

	_, err = AnchorFromConfig(model.TransitConfig{AnchorSign: model.Pisces, AnchorDate: "29/03/2025"})
	if err == nil {
		t.Fatal("expected an error for a non-ISO date")
	}
	if !model.IsKind(err, model.KindInvalidInput) {
		t.Errorf("expected an invalid input error, got %v", err)
	}

	if _, err := AnchorFromConfig(model.TransitConfig{AnchorSign: 14, AnchorDate: "2025-03-29"}); err == nil {
		t.Error("expected an error for an out-of-range sign")
	}
}
