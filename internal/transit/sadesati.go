package transit

import (
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

// HouseFromMoon counts Saturn's sign from the Moon sign, inclusively: the
// same sign is 1, the sign before the Moon is 12.
func HouseFromMoon(moon, saturn model.Sign) int {
	return ((int(saturn)-int(moon))%model.SignCount+model.SignCount)%model.SignCount + 1
}

// SadeSatiPhase classifies Saturn's position relative to the Moon sign.
func SadeSatiPhase(moon, saturn model.Sign) model.SadeSatiPhase {
	switch HouseFromMoon(moon, saturn) {
	case 12:
		return model.PhaseRising
	case 1:
		return model.PhasePeak
	case 2:
		return model.PhaseSetting
	default:
		return model.PhaseNone
	}
}

// SmallPanoti reports the 4th (Kantak) and 8th (Ashtam) Saturn transits.
func SmallPanoti(moon, saturn model.Sign) model.Panoti {
	switch HouseFromMoon(moon, saturn) {
	case 4:
		return model.PanotiKantak
	case 8:
		return model.PanotiAshtama
	default:
		return model.PanotiNone
	}
}

// risingSign is the sign 12th from the Moon, where Sade Sati begins.
func risingSign(moon model.Sign) model.Sign {
	return moon.Add(-1)
}

// window chains four consecutive dwell windows starting at k: rising, peak,
// setting, and the window after setting whose start closes the period.
func (e *Engine) window(moon model.Sign, k int) model.TransitWindow {
	rising, inRising := e.entry(k)
	peak, inPeak := e.entry(k + 1)
	setting, inSetting := e.entry(k + 2)
	after, inAfter := e.entry(k + 3)

	return model.TransitWindow{
		Start:       rising.Start,
		PeakStart:   peak.Start,
		PeakEnd:     setting.Start,
		End:         after.Start,
		Phase:       model.PhaseNone,
		RisingSign:  risingSign(moon),
		Approximate: !(inRising && inPeak && inSetting && inAfter),
	}
}

// CurrentWindow returns the Sade Sati period that contains date, if any.
// Its Phase is the phase on date.
func (e *Engine) CurrentWindow(moon model.Sign, date time.Time) (model.TransitWindow, bool) {
	k := e.index(date)
	rising := risingSign(moon)
	for back := 0; back < 3; back++ {
		if e.signAt(k-back) == rising {
			w := e.window(moon, k-back)
			w.Phase = w.PhaseAt(date)
			return w, true
		}
	}
	return model.TransitWindow{}, false
}

// NextWindow returns the first Sade Sati period that starts after date.
func (e *Engine) NextWindow(moon model.Sign, date time.Time) model.TransitWindow {
	k := e.index(date)
	ahead := int(risingSign(moon).Add(-int(e.signAt(k))))
	if ahead == 0 {
		ahead = model.SignCount
	}
	return e.window(moon, k+ahead)
}

// Windows lists every Sade Sati period overlapping [from, to).
func (e *Engine) Windows(moon model.Sign, from, to time.Time) []model.TransitWindow {
	var out []model.TransitWindow
	if !from.Before(to) {
		return out
	}

	// Step back to the most recent rising window at or before from.
	k := e.index(from)
	k -= int(e.signAt(k).Add(-int(risingSign(moon))))

	for ; e.start(k).Before(to); k += model.SignCount {
		w := e.window(moon, k)
		if w.End.After(from) {
			out = append(out, w)
		}
	}
	return out
}

// Status bundles everything known about Saturn's transit over the Moon sign
// on date.
func (e *Engine) Status(moon model.Sign, date time.Time) model.SadeSatiStatus {
	saturn := e.CurrentSign(date)
	status := model.SadeSatiStatus{
		MoonSign:      moon,
		Date:          date,
		Saturn:        saturn,
		HouseFromMoon: HouseFromMoon(moon, saturn.Sign),
		Phase:         SadeSatiPhase(moon, saturn.Sign),
		Panoti:        SmallPanoti(moon, saturn.Sign),
		Next:          e.NextWindow(moon, date),
	}
	if w, ok := e.CurrentWindow(moon, date); ok {
		status.Current = &w
	}
	return status
}
