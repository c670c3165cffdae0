package dosha

import (
	"github.com/vastucartapps/jyotish/internal/dignity"
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/ring"
)

type pitraRule struct {
	name        model.Bilingual
	description model.Bilingual
	severity    model.Severity
}

var pitraRules = map[model.PitraIndicatorType]pitraRule{
	model.PitraNone: {
		name:        model.Bilingual{En: "No Pitra Dosha", Hi: "पितृ दोष नहीं"},
		description: model.Bilingual{En: "No ancestral affliction indicators were found.", Hi: "पितृ दोष के कोई संकेत नहीं मिले।"},
		severity:    model.SeverityNone,
	},
	model.PitraSunRahu: {
		name:        model.Bilingual{En: "Sun–Rahu affliction", Hi: "सूर्य–राहु पीड़ा"},
		description: model.Bilingual{En: "Rahu joins or aspects the Sun, the karaka of father and ancestors.", Hi: "राहु पिता और पूर्वजों के कारक सूर्य से युति या दृष्टि संबंध बनाता है।"},
		severity:    model.SeveritySevere,
	},
	model.PitraSunKetu: {
		name:        model.Bilingual{En: "Sun–Ketu affliction", Hi: "सूर्य–केतु पीड़ा"},
		description: model.Bilingual{En: "Ketu joins or aspects the Sun.", Hi: "केतु सूर्य से युति या दृष्टि संबंध बनाता है।"},
		severity:    model.SeverityModerate,
	},
	model.PitraSunSaturn: {
		name:        model.Bilingual{En: "Sun–Saturn affliction", Hi: "सूर्य–शनि पीड़ा"},
		description: model.Bilingual{En: "Saturn joins or aspects the Sun.", Hi: "शनि सूर्य से युति या दृष्टि संबंध बनाता है।"},
		severity:    model.SeverityModerate,
	},
	model.PitraNinthHouseAffliction: {
		name:        model.Bilingual{En: "9th-house affliction", Hi: "नवम भाव पीड़ा"},
		description: model.Bilingual{En: "A malefic (Saturn, Rahu or Ketu) occupies the 9th house of ancestors.", Hi: "पूर्वजों के नवम भाव में पाप ग्रह (शनि, राहु या केतु) स्थित है।"},
		severity:    model.SeverityModerate,
	},
	model.PitraNinthLordAfflicted: {
		name:        model.Bilingual{En: "9th lord afflicted", Hi: "नवमेश पीड़ित"},
		description: model.Bilingual{En: "The lord of the 9th house is joined or aspected by Saturn or Rahu.", Hi: "नवम भाव का स्वामी शनि या राहु से युति या दृष्टि में है।"},
		severity:    model.SeverityMild,
	},
}

var ninthHouseMalefics = []model.Graha{model.Saturn, model.Rahu, model.Ketu}

const ninthHouse = 9

// Pitra evaluates every Pitra Dosha indicator. Rules do not short-circuit:
// each one that matches is recorded.
func (e *Evaluator) Pitra(chart model.Chart) model.PitraResult {
	ninthSign := chart.HouseSign(ninthHouse)
	ninthLord := dignity.SignLord(ninthSign)

	var indicators []model.PitraIndicator
	fired := make(map[model.PitraIndicatorType]bool)
	add := func(t model.PitraIndicatorType, planets []model.Graha, houses []int) {
		fired[t] = true
		indicators = append(indicators, newIndicator(t, planets, houses))
	}

	sun := chart.House(model.Sun)
	for _, c := range []struct {
		t        model.PitraIndicatorType
		afflicts model.Graha
	}{
		{model.PitraSunRahu, model.Rahu},
		{model.PitraSunKetu, model.Ketu},
		{model.PitraSunSaturn, model.Saturn},
	} {
		if h := chart.House(c.afflicts); ring.Influences(c.afflicts, h, sun) {
			add(c.t, []model.Graha{model.Sun, c.afflicts}, []int{sun, h})
		}
	}

	var inNinth []model.Graha
	for _, g := range ninthHouseMalefics {
		if chart.House(g) == ninthHouse {
			inNinth = append(inNinth, g)
		}
	}
	if len(inNinth) > 0 {
		add(model.PitraNinthHouseAffliction, inNinth, []int{ninthHouse})
	}

	if !fired[model.PitraSunRahu] && !fired[model.PitraSunSaturn] {
		if afflicting := ninthLordAfflictions(chart, ninthLord); len(afflicting) > 0 {
			lordHouse := chart.House(ninthLord)
			houses := []int{lordHouse}
			for _, g := range afflicting {
				houses = append(houses, chart.House(g))
			}
			add(model.PitraNinthLordAfflicted, append([]model.Graha{ninthLord}, afflicting...), houses)
		}
	}

	result := model.PitraResult{
		HasDosha:       len(indicators) > 0,
		Severity:       model.SeverityNone,
		NinthHouseSign: ninthSign,
		NinthLord:      ninthLord,
	}
	for _, ind := range indicators {
		result.Severity = result.Severity.Max(ind.Severity)
	}
	if len(indicators) == 0 {
		indicators = []model.PitraIndicator{newIndicator(model.PitraNone, nil, nil)}
	}
	result.Indicators = indicators

	return result
}

// ninthLordAfflictions returns which of Saturn and Rahu join or aspect the
// 9th lord. A planet does not afflict itself, so when Saturn rules the 9th it
// only has to contend with Rahu.
func ninthLordAfflictions(chart model.Chart, lord model.Graha) []model.Graha {
	lordHouse := chart.House(lord)
	var out []model.Graha
	for _, g := range []model.Graha{model.Saturn, model.Rahu} {
		if g == lord {
			continue
		}
		if ring.Influences(g, chart.House(g), lordHouse) {
			out = append(out, g)
		}
	}
	return out
}

func newIndicator(t model.PitraIndicatorType, planets []model.Graha, houses []int) model.PitraIndicator {
	rule := pitraRules[t]
	return model.PitraIndicator{
		Type:        t,
		Name:        rule.name,
		Description: rule.description,
		Severity:    rule.severity,
		Planets:     planets,
		Houses:      houses,
	}
}
