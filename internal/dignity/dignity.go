// Package dignity holds the classical sign tables: which graha rules each
// sign, and where each of the seven bodies is at home, exalted or debilitated.
package dignity

import "github.com/vastucartapps/jyotish/internal/model"

var signLords = [model.SignCount]model.Graha{
	model.Aries:       model.Mars,
	model.Taurus:      model.Venus,
	model.Gemini:      model.Mercury,
	model.Cancer:      model.Moon,
	model.Leo:         model.Sun,
	model.Virgo:       model.Mercury,
	model.Libra:       model.Venus,
	model.Scorpio:     model.Mars,
	model.Sagittarius: model.Jupiter,
	model.Capricorn:   model.Saturn,
	model.Aquarius:    model.Saturn,
	model.Pisces:      model.Jupiter,
}

type strength struct {
	own   []model.Sign
	exalt model.Sign
}

// Only the seven classical bodies carry dignities here.
var strengths = map[model.Graha]strength{
	model.Sun:     {own: []model.Sign{model.Leo}, exalt: model.Aries},
	model.Moon:    {own: []model.Sign{model.Cancer}, exalt: model.Taurus},
	model.Mars:    {own: []model.Sign{model.Aries, model.Scorpio}, exalt: model.Capricorn},
	model.Mercury: {own: []model.Sign{model.Gemini, model.Virgo}, exalt: model.Virgo},
	model.Jupiter: {own: []model.Sign{model.Sagittarius, model.Pisces}, exalt: model.Cancer},
	model.Venus:   {own: []model.Sign{model.Taurus, model.Libra}, exalt: model.Pisces},
	model.Saturn:  {own: []model.Sign{model.Capricorn, model.Aquarius}, exalt: model.Libra},
}

// SignLord returns the ruler of a sign. Rulers are always classical bodies.
func SignLord(s model.Sign) model.Graha {
	return signLords[s.Add(0)]
}

// HouseLord returns the ruler of the given house for an ascendant sign.
func HouseLord(ascendant model.Sign, house int) model.Graha {
	return SignLord(ascendant.Add(house - 1))
}

// OwnSigns returns the signs g rules. Nodes have none.
func OwnSigns(g model.Graha) []model.Sign {
	return strengths[g].own
}

// Exaltation returns g's exaltation sign; ok is false for the nodes.
func Exaltation(g model.Graha) (model.Sign, bool) {
	st, ok := strengths[g]
	return st.exalt, ok
}

// Debilitation is the sign opposite exaltation; ok is false for the nodes.
func Debilitation(g model.Graha) (model.Sign, bool) {
	st, ok := strengths[g]
	if !ok {
		return 0, false
	}
	return st.exalt.Add(6), true
}

// IsOwnSign reports whether g occupies one of its own signs.
func IsOwnSign(g model.Graha, s model.Sign) bool {
	for _, own := range OwnSigns(g) {
		if own == s {
			return true
		}
	}
	return false
}

// IsExalted reports whether s is g's exaltation sign.
func IsExalted(g model.Graha, s model.Sign) bool {
	ex, ok := Exaltation(g)
	return ok && ex == s
}

// IsDebilitated reports whether s is g's debilitation sign.
func IsDebilitated(g model.Graha, s model.Sign) bool {
	deb, ok := Debilitation(g)
	return ok && deb == s
}
