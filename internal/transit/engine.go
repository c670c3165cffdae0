// Package transit models Saturn's slow walk through the zodiac and the
// Sade Sati periods it creates over a natal Moon sign.
//
// Ingress dates are not ephemeris-accurate. Saturn is assumed to spend
// exactly DaysPerSign in every sign, counted from one known ingress (the
// Anchor). Real ingresses drift by roughly ±20 days because of retrograde
// loops; DaysPerSign is the single place a precise source would plug in.
package transit

import (
	"fmt"
	"math"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

const (
	// SaturnPeriodYears is Saturn's sidereal orbital period.
	SaturnPeriodYears = 29.4571
	// DaysPerYear is the Julian year used for all conversions.
	DaysPerYear = 365.25
	// DaysPerSign is the assumed dwell time in each sign.
	DaysPerSign = SaturnPeriodYears * DaysPerYear / model.SignCount

	secondsPerDay = 86400
)

// Anchor is one known Saturn ingress.
type Anchor struct {
	Sign model.Sign
	Date time.Time
}

// DefaultAnchor is Saturn's ingress into Aquarius on 17 January 2023.
func DefaultAnchor() Anchor {
	return Anchor{
		Sign: model.Aquarius,
		Date: time.Date(2023, time.January, 17, 0, 0, 0, 0, time.UTC),
	}
}

// AnchorFromConfig parses the configured anchor. An empty date falls back to
// DefaultAnchor.
func AnchorFromConfig(cfg model.TransitConfig) (Anchor, error) {
	if cfg.AnchorDate == "" {
		return DefaultAnchor(), nil
	}
	if !cfg.AnchorSign.Valid() {
		return Anchor{}, &model.OpError{Op: "transit.anchor", Kind: model.KindInvalidInput,
			Err: fmt.Errorf("anchor sign %d out of range", int(cfg.AnchorSign))}
	}
	date, err := time.Parse(time.DateOnly, cfg.AnchorDate)
	if err != nil {
		return Anchor{}, &model.OpError{Op: "transit.anchor", Kind: model.KindInvalidInput, Err: err}
	}
	return Anchor{Sign: cfg.AnchorSign, Date: date.UTC()}, nil
}

// Engine answers Saturn transit questions from a fixed anchor. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	anchor Anchor
	table  []model.IngressEntry
}

// NewEngine builds an engine and its ingress table.
func NewEngine(anchor Anchor) *Engine {
	e := &Engine{anchor: anchor}
	e.table = e.generateIngressTable()
	return e
}

// Anchor returns the ingress the engine counts from.
func (e *Engine) Anchor() Anchor {
	return e.anchor
}

// IngressTable returns one full orbital cycle of half-open windows, one per
// sign, starting at the anchor. The slice is a copy.
func (e *Engine) IngressTable() []model.IngressEntry {
	out := make([]model.IngressEntry, len(e.table))
	copy(out, e.table)
	return out
}

func (e *Engine) generateIngressTable() []model.IngressEntry {
	table := make([]model.IngressEntry, model.SignCount)
	for k := range table {
		table[k] = e.computedEntry(k)
	}
	return table
}

// CurrentSign returns the sign Saturn occupies on date. Dates inside the
// ingress table are answered from it; anything else is extrapolated from the
// anchor and flagged Approximate.
func (e *Engine) CurrentSign(date time.Time) model.SignLookup {
	for _, entry := range e.table {
		if entry.Contains(date) {
			return model.SignLookup{Sign: entry.Sign}
		}
	}
	return model.SignLookup{Sign: e.signAt(e.index(date)), Approximate: true}
}

// entry returns dwell window k (0 = the anchor's), from the table when it is
// covered and computed otherwise. inTable reports which.
func (e *Engine) entry(k int) (entry model.IngressEntry, inTable bool) {
	if k >= 0 && k < len(e.table) {
		return e.table[k], true
	}
	return e.computedEntry(k), false
}

func (e *Engine) computedEntry(k int) model.IngressEntry {
	return model.IngressEntry{
		Sign:  e.signAt(k),
		Start: e.start(k),
		End:   e.start(k + 1),
	}
}

func (e *Engine) signAt(k int) model.Sign {
	return e.anchor.Sign.Add(k)
}

// start is the beginning of dwell window k.
func (e *Engine) start(k int) time.Time {
	days := float64(k) * DaysPerSign
	whole := math.Floor(days)
	return e.anchor.Date.AddDate(0, 0, int(whole)).Add(daysToDuration(days - whole))
}

// index is the dwell window containing date.
func (e *Engine) index(date time.Time) int {
	k := int(math.Floor(daysBetween(e.anchor.Date, date) / DaysPerSign))
	// Floating-point error can land a boundary instant one window off.
	if date.Before(e.start(k)) {
		k--
	} else if !date.Before(e.start(k + 1)) {
		k++
	}
	return k
}

func daysBetween(from, to time.Time) float64 {
	secs := float64(to.Unix() - from.Unix())
	nanos := float64(to.Nanosecond() - from.Nanosecond())
	return (secs + nanos/1e9) / secondsPerDay
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * float64(24*time.Hour))
}
