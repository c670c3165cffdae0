// Package yoga detects Raj Yoga combinations in a natal chart.
package yoga

import (
	"github.com/vastucartapps/jyotish/internal/dignity"
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/ring"
)

var dusthanas = []int{6, 8, 12}

// Evaluator finds every yoga a chart forms. It holds no state.
type Evaluator struct{}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs all yoga checks. Fired yogas accumulate in check order and
// are never collapsed across categories.
func (e *Evaluator) Evaluate(chart model.Chart) model.YogaSummary {
	var yogas []model.Yoga

	yogas = append(yogas, e.mahapurusha(chart)...)

	checks := []func(model.Chart) (model.Yoga, bool){
		e.gajaKesari,
		e.budhaditya,
		e.lakshmi,
		e.viparitaRaja,
		e.neechaBhanga,
		e.dhana,
	}
	for _, check := range checks {
		if y, ok := check(chart); ok {
			yogas = append(yogas, y)
		}
	}

	if yogas == nil {
		yogas = []model.Yoga{}
	}

	return model.YogaSummary{
		Yogas:          yogas,
		Count:          len(yogas),
		Interpretation: Interpret(len(yogas)),
	}
}

// mahapurusha runs the five Panch Mahapurusha checks independently.
func (e *Evaluator) mahapurusha(chart model.Chart) []model.Yoga {
	var out []model.Yoga
	for _, m := range mahapurushaOrder {
		p := chart.Planets[m.graha]
		if !ring.IsKendra(p.House) {
			continue
		}
		if dignity.IsOwnSign(m.graha, p.Sign) || dignity.IsExalted(m.graha, p.Sign) {
			out = append(out, newYoga(m.yoga, []model.Graha{m.graha}, []int{p.House}))
		}
	}
	return out
}

// gajaKesari: Jupiter in a Kendra counted from the Moon.
func (e *Evaluator) gajaKesari(chart model.Chart) (model.Yoga, bool) {
	jup, moon := chart.House(model.Jupiter), chart.House(model.Moon)
	if !ring.IsKendraOffset(jup, moon) {
		return model.Yoga{}, false
	}
	return newYoga(model.YogaGajaKesari, []model.Graha{model.Jupiter, model.Moon}, []int{jup, moon}), true
}

// budhaditya: Sun and Mercury share a house.
func (e *Evaluator) budhaditya(chart model.Chart) (model.Yoga, bool) {
	sun, merc := chart.House(model.Sun), chart.House(model.Mercury)
	if sun != merc {
		return model.Yoga{}, false
	}
	return newYoga(model.YogaBudhaditya, []model.Graha{model.Sun, model.Mercury}, []int{sun}), true
}

// lakshmi is the simplified form: Venus and Jupiter conjunct, or six houses
// apart as a proxy for mutual opposition.
func (e *Evaluator) lakshmi(chart model.Chart) (model.Yoga, bool) {
	ven, jup := chart.House(model.Venus), chart.House(model.Jupiter)
	if ven != jup && ring.Advance(ven, 6) != jup {
		return model.Yoga{}, false
	}
	houses := []int{ven}
	if ven != jup {
		houses = append(houses, jup)
	}
	return newYoga(model.YogaLakshmi, []model.Graha{model.Venus, model.Jupiter}, houses), true
}

// viparitaRaja fires when any lord of 6, 8 or 12 sits in any of 6, 8 or 12.
func (e *Evaluator) viparitaRaja(chart model.Chart) (model.Yoga, bool) {
	var planets []model.Graha
	var houses []int
	seen := make(map[model.Graha]bool)
	for _, h := range dusthanas {
		lord := dignity.HouseLord(chart.Ascendant, h)
		if seen[lord] {
			continue
		}
		seen[lord] = true
		if isDusthana(chart.House(lord)) {
			planets = append(planets, lord)
			houses = append(houses, chart.House(lord))
		}
	}
	if len(planets) == 0 {
		return model.Yoga{}, false
	}
	return newYoga(model.YogaViparitaRaja, planets, houses), true
}

// neechaBhanga records at most one cancellation: the first classical body,
// in Sun-to-Saturn order, that is debilitated while the lord of its
// debilitation sign stands in a Kendra from the ascendant.
func (e *Evaluator) neechaBhanga(chart model.Chart) (model.Yoga, bool) {
	for _, g := range model.ClassicalGrahas {
		p := chart.Planets[g]
		if !dignity.IsDebilitated(g, p.Sign) {
			continue
		}
		lord := dignity.SignLord(p.Sign)
		lordHouse := chart.House(lord)
		if ring.IsKendraOffset(lordHouse, 1) {
			return newYoga(model.YogaNeechaBhanga, []model.Graha{g, lord}, []int{p.House, lordHouse}), true
		}
	}
	return model.Yoga{}, false
}

// dhana: the lords of the 2nd and 11th occupy the same house. When one
// planet rules both, the condition holds trivially.
func (e *Evaluator) dhana(chart model.Chart) (model.Yoga, bool) {
	second := dignity.HouseLord(chart.Ascendant, 2)
	eleventh := dignity.HouseLord(chart.Ascendant, 11)
	if chart.House(second) != chart.House(eleventh) {
		return model.Yoga{}, false
	}
	planets := []model.Graha{second}
	if eleventh != second {
		planets = append(planets, eleventh)
	}
	return newYoga(model.YogaDhana, planets, []int{chart.House(second)}), true
}

func isDusthana(h int) bool {
	for _, d := range dusthanas {
		if h == d {
			return true
		}
	}
	return false
}
