// Package dosha evaluates affliction patterns: Kalsarp Dosha along the
// Rahu–Ketu axis and the Pitra Dosha indicator rules.
package dosha

import (
	"github.com/vastucartapps/jyotish/internal/model"
)

// Evaluator computes dosha verdicts. It holds no state and is safe for
// concurrent use.
type Evaluator struct{}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs every dosha check against a validated chart
func (e *Evaluator) Evaluate(chart model.Chart) model.DoshaReport {
	return model.DoshaReport{
		Kalsarp: e.Kalsarp(chart),
		Pitra:   e.Pitra(chart),
	}
}
