// Package validate rejects malformed charts before any evaluator sees them.
//
// Beyond range checks on houses and signs, a chart is also rejected when a
// planet's sign disagrees with its Whole-Sign house (house h must hold the
// sign ascendant+h-1) or when Rahu and Ketu are not 6 houses apart. The
// evaluators work from houses alone and would otherwise accept such charts.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vastucartapps/jyotish/internal/model"
)

// chartValidate is shared by all callers; validator caches struct metadata.
var chartValidate *validator.Validate

func init() {
	chartValidate = validator.New()
	_ = chartValidate.RegisterValidation("graha", validateGraha)
}

func validateGraha(fl validator.FieldLevel) bool {
	return model.Graha(fl.Field().Int()).Valid()
}

// chartInput mirrors model.Chart with the key constraint the model cannot
// express in its own tags.
type chartInput struct {
	Ascendant model.Sign                      `validate:"min=0,max=11"`
	Planets   map[model.Graha]model.Placement `validate:"required,dive,keys,graha,endkeys"`
}

// Chart checks that every graha is present with an in-range house and sign,
// that each sign agrees with its Whole-Sign house, and that Rahu and Ketu sit
// opposite each other. All problems are reported together.
func Chart(c model.Chart) error {
	var problems []string

	err := chartValidate.Struct(chartInput{Ascendant: c.Ascendant, Planets: c.Planets})
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	} else if err != nil {
		problems = append(problems, err.Error())
	}

	for _, g := range model.AllGrahas {
		if _, ok := c.Planets[g]; !ok {
			problems = append(problems, fmt.Sprintf("%s is missing", g))
		}
	}

	if len(problems) == 0 {
		problems = append(problems, consistency(c)...)
	}

	if len(problems) > 0 {
		return &model.OpError{
			Op:   "validate.chart",
			Kind: model.KindInvalidChart,
			Err:  fmt.Errorf("%w: %s", model.ErrInvalidChart, strings.Join(problems, "; ")),
		}
	}
	return nil
}

// consistency runs only on charts whose fields are individually in range.
func consistency(c model.Chart) []string {
	var problems []string
	for _, g := range model.AllGrahas {
		p := c.Planets[g]
		if want := model.WholeSignHouse(c.Ascendant, p.Sign); want != p.House {
			problems = append(problems, fmt.Sprintf("%s in %s must be in house %d, not %d", g, p.Sign, want, p.House))
		}
	}

	rahu, ketu := c.House(model.Rahu), c.House(model.Ketu)
	if ((rahu-ketu)%12+12)%12 != 6 {
		problems = append(problems, fmt.Sprintf("rahu (house %d) and ketu (house %d) must be 6 houses apart", rahu, ketu))
	}
	return problems
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "chartInput.")
	switch fe.Tag() {
	case "min", "max":
		return fmt.Sprintf("%s=%v out of range (%s %s)", field, fe.Value(), fe.Tag(), fe.Param())
	case "graha":
		return fmt.Sprintf("%s: unknown graha %v", field, fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
