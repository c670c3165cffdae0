package dosha

import (
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/ring"
)

var (
	kalsarpNoneName = model.Bilingual{En: "No Kalsarp Dosha", Hi: "कालसर्प दोष नहीं"}
	kalsarpNoneText = model.Bilingual{
		En: "The seven planets are spread on both sides of the Rahu–Ketu axis.",
		Hi: "सातों ग्रह राहु–केतु अक्ष के दोनों ओर फैले हुए हैं।",
	}
	partialName = model.Bilingual{En: "Partial Kalsarp Dosha", Hi: "आंशिक कालसर्प दोष"}
	partialText = model.Bilingual{
		En: "Most planets are hemmed between Rahu and Ketu; the planets outside the axis soften the effect.",
		Hi: "अधिकांश ग्रह राहु और केतु के बीच हैं; अक्ष से बाहर के ग्रह प्रभाव को कम करते हैं।",
	}
	fullText = model.Bilingual{
		En: "All seven planets lie on one side of the Rahu–Ketu axis.",
		Hi: "सातों ग्रह राहु–केतु अक्ष के एक ही ओर स्थित हैं।",
	}
)

// Kalsarp classifies the chart as full, partial or no Kalsarp Dosha.
//
// The ascending arc runs forward from Rahu to Ketu with both ends included,
// so a planet conjunct either node counts as ascending. Everything else is
// descending.
func (e *Evaluator) Kalsarp(chart model.Chart) model.KalsarpResult {
	rahu := chart.House(model.Rahu)
	ketu := chart.House(model.Ketu)

	var ascending, descending []model.Graha
	for _, g := range model.ClassicalGrahas {
		if ring.InArc(chart.House(g), rahu, ketu) {
			ascending = append(ascending, g)
		} else {
			descending = append(descending, g)
		}
	}

	result := model.KalsarpResult{
		Status:            model.KalsarpNone,
		RahuHouse:         rahu,
		KetuHouse:         ketu,
		AscendingPlanets:  ascending,
		DescendingPlanets: descending,
		Name:              kalsarpNoneName,
		Description:       kalsarpNoneText,
	}

	direction, majority, minority := model.DirectionAscending, ascending, descending
	if len(descending) > len(ascending) {
		direction, majority, minority = model.DirectionDescending, descending, ascending
	}

	switch n := len(majority); {
	case n == len(model.ClassicalGrahas):
		kt, _ := KalsarpType(rahu)
		result.Status = model.KalsarpFull
		result.IsKalsarp = true
		result.Direction = direction
		result.Type = &kt
		result.Name = kt.Name
		result.Description = fullText
	case n >= 5:
		result.Status = model.KalsarpPartial
		result.IsPartial = true
		result.Direction = direction
		result.OutsidePlanets = minority
		result.Name = partialName
		result.Description = partialText
	}

	return result
}
