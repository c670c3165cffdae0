package dosha

import (
	"testing"

	"github.com/vastucartapps/jyotish/internal/model"
)

func indicatorTypes(r model.PitraResult) []model.PitraIndicatorType {
	out := make([]model.PitraIndicatorType, len(r.Indicators))
	for i, ind := range r.Indicators {
		out[i] = ind.Type
	}
	return out
}

func TestPitra(t *testing.T) {
	tests := []struct {
		name     string
		asc      model.Sign
		houses   map[model.Graha]int
		want     []model.PitraIndicatorType
		severity model.Severity
	}{
		{
			name: "no indicators",
			asc:  model.Aries,
			houses: map[model.Graha]int{
				model.Sun: 5, model.Moon: 4, model.Mars: 3, model.Mercury: 5,
				model.Jupiter: 3, model.Venus: 4, model.Saturn: 11,
				model.Rahu: 1, model.Ketu: 7,
			},
			want:     []model.PitraIndicatorType{model.PitraNone},
			severity: model.SeverityNone,
		},
		{
			name: "sun conjunct rahu",
			asc:  model.Aries,
			houses: map[model.Graha]int{
				model.Sun: 1, model.Moon: 4, model.Mars: 3, model.Mercury: 2,
				model.Jupiter: 3, model.Venus: 2, model.Saturn: 5,
				model.Rahu: 1, model.Ketu: 7,
			},
			want:     []model.PitraIndicatorType{model.PitraSunRahu},
			severity: model.SeveritySevere,
		},
		{
			name: "rahu and saturn both aspect the sun",
			asc:  model.Aries,
			houses: map[model.Graha]int{
				model.Sun: 6, model.Moon: 4, model.Mars: 3, model.Mercury: 5,
				model.Jupiter: 1, model.Venus: 5, model.Saturn: 3,
				model.Rahu: 1, model.Ketu: 7,
			},
			want:     []model.PitraIndicatorType{model.PitraSunRahu, model.PitraSunSaturn},
			severity: model.SeveritySevere,
		},
		{
			name: "ketu in ninth and ninth lord aspected by saturn",
			asc:  model.Aries,
			houses: map[model.Graha]int{
				model.Sun: 5, model.Moon: 4, model.Mars: 3, model.Mercury: 5,
				model.Jupiter: 7, model.Venus: 4, model.Saturn: 12,
				model.Rahu: 3, model.Ketu: 9,
			},
			want:     []model.PitraIndicatorType{model.PitraNinthHouseAffliction, model.PitraNinthLordAfflicted},
			severity: model.SeverityModerate,
		},
		{
			name: "ninth lord rule suppressed once sun-saturn fired",
			asc:  model.Aries,
			houses: map[model.Graha]int{
				model.Sun: 4, model.Moon: 5, model.Mars: 6, model.Mercury: 5,
				model.Jupiter: 4, model.Venus: 3, model.Saturn: 1,
				model.Rahu: 2, model.Ketu: 8,
			},
			want:     []model.PitraIndicatorType{model.PitraSunSaturn},
			severity: model.SeverityModerate,
		},
		{
			name: "saturn ruling the ninth does not afflict itself",
			asc:  model.Taurus,
			houses: map[model.Graha]int{
				model.Sun: 11, model.Moon: 4, model.Mars: 3, model.Mercury: 10,
				model.Jupiter: 3, model.Venus: 10, model.Saturn: 5,
				model.Rahu: 1, model.Ketu: 7,
			},
			want:     []model.PitraIndicatorType{model.PitraNone},
			severity: model.SeverityNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewEvaluator().Pitra(chartOf(tt.asc, tt.houses))

			got := indicatorTypes(result)
			if len(got) != len(tt.want) {
				t.Fatalf("expected indicators %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("indicator %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
			if result.Severity != tt.severity {
				t.Errorf("expected severity %s, got %s", tt.severity, result.Severity)
			}
			if result.HasDosha != (tt.severity != model.SeverityNone) {
				t.Errorf("HasDosha=%v inconsistent with severity %s", result.HasDosha, result.Severity)
			}
		})
	}
}

func TestPitra_NinthHouseLord(t *testing.T) {
	chart := chartOf(model.Aries, map[model.Graha]int{
		model.Sun: 5, model.Moon: 4, model.Mars: 3, model.Mercury: 5,
		model.Jupiter: 3, model.Venus: 4, model.Saturn: 11,
		model.Rahu: 1, model.Ketu: 7,
	})

	result := NewEvaluator().Pitra(chart)

	if result.NinthHouseSign != model.Sagittarius {
		t.Errorf("expected Sagittarius on the 9th, got %v", result.NinthHouseSign)
	}
	if result.NinthLord != model.Jupiter {
		t.Errorf("expected Jupiter as 9th lord, got %v", result.NinthLord)
	}
}

func TestPitra_SaturnRulingNinth(t *testing.T) {
	tests := []struct {
		name       string
		asc        model.Sign
		houses     map[model.Graha]int
		ninthSign  model.Sign
		wantLord   bool
		wantHouses []int
	}{
		{
			// Taurus rising puts Capricorn on the 9th. Saturn sits alone and
			// does not count as afflicting itself.
			name: "taurus, saturn alone",
			asc:  model.Taurus,
			houses: map[model.Graha]int{
				model.Sun: 11, model.Moon: 4, model.Mars: 3, model.Mercury: 10,
				model.Jupiter: 3, model.Venus: 10, model.Saturn: 5,
				model.Rahu: 1, model.Ketu: 7,
			},
			ninthSign: model.Capricorn,
		},
		{
			// Rahu conjunct Saturn in the 5th still afflicts the 9th lord.
			name: "taurus, rahu joins saturn",
			asc:  model.Taurus,
			houses: map[model.Graha]int{
				model.Sun: 1, model.Moon: 4, model.Mars: 3, model.Mercury: 2,
				model.Jupiter: 3, model.Venus: 2, model.Saturn: 5,
				model.Rahu: 5, model.Ketu: 11,
			},
			ninthSign:  model.Capricorn,
			wantLord:   true,
			wantHouses: []int{5, 5},
		},
		{
			// Gemini rising puts Aquarius, also Saturn's, on the 9th.
			name: "gemini, saturn alone",
			asc:  model.Gemini,
			houses: map[model.Graha]int{
				model.Sun: 3, model.Moon: 5, model.Mars: 6, model.Mercury: 3,
				model.Jupiter: 2, model.Venus: 2, model.Saturn: 4,
				model.Rahu: 1, model.Ketu: 7,
			},
			ninthSign: model.Aquarius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewEvaluator().Pitra(chartOf(tt.asc, tt.houses))

			if result.NinthHouseSign != tt.ninthSign {
				t.Errorf("expected %v on the 9th, got %v", tt.ninthSign, result.NinthHouseSign)
			}
			if result.NinthLord != model.Saturn {
				t.Fatalf("expected Saturn as 9th lord, got %v", result.NinthLord)
			}

			if !tt.wantLord {
				if result.HasDosha {
					t.Errorf("expected no dosha, got %v", indicatorTypes(result))
				}
				return
			}

			if len(result.Indicators) != 1 || result.Indicators[0].Type != model.PitraNinthLordAfflicted {
				t.Fatalf("expected only the 9th lord indicator, got %v", indicatorTypes(result))
			}
			ind := result.Indicators[0]
			if len(ind.Planets) != 2 || ind.Planets[0] != model.Saturn || ind.Planets[1] != model.Rahu {
				t.Errorf("expected planets [Saturn Rahu], got %v", ind.Planets)
			}
			if len(ind.Houses) != len(tt.wantHouses) {
				t.Fatalf("expected houses %v, got %v", tt.wantHouses, ind.Houses)
			}
			for i := range tt.wantHouses {
				if ind.Houses[i] != tt.wantHouses[i] {
					t.Errorf("expected houses %v, got %v", tt.wantHouses, ind.Houses)
					break
				}
			}
			if result.Severity != model.SeverityMild {
				t.Errorf("expected mild severity, got %v", result.Severity)
			}
		})
	}
}

func TestEvaluate_RunsBothChecks(t *testing.T) {
	chart := chartOf(model.Aries, map[model.Graha]int{
		model.Rahu: 1, model.Ketu: 7,
		model.Sun: 1, model.Moon: 3, model.Mars: 4, model.Mercury: 5,
		model.Jupiter: 6, model.Venus: 2, model.Saturn: 3,
	})

	report := NewEvaluator().Evaluate(chart)

	if report.Kalsarp.Status != model.KalsarpFull {
		t.Errorf("expected full Kalsarp, got %s", report.Kalsarp.Status)
	}
	if !report.Pitra.HasDosha {
		t.Error("expected Pitra Dosha from Sun conjunct Rahu")
	}
}
