package model

import "time"

// Placement is where one graha sits: a Whole-Sign house and a sign.
type Placement struct {
	House int  `json:"house" yaml:"house" toml:"house" validate:"min=1,max=12"`
	Sign  Sign `json:"sign" yaml:"sign" toml:"sign" validate:"min=0,max=11"`
}

// Chart is a fully resolved natal chart as produced by the upstream chart
// builder. Evaluators assume it passed validate.Chart.
type Chart struct {
	Ascendant Sign                `json:"ascendant" yaml:"ascendant" validate:"min=0,max=11"`
	Planets   map[Graha]Placement `json:"planets" yaml:"planets" validate:"required,dive"`
}

// House returns the house of g, or 0 if g is missing.
func (c Chart) House(g Graha) int {
	return c.Planets[g].House
}

// SignOf returns the sign occupied by g.
func (c Chart) SignOf(g Graha) Sign {
	return c.Planets[g].Sign
}

// HouseSign is the sign on the given house under the Whole-Sign system.
func (c Chart) HouseSign(house int) Sign {
	return c.Ascendant.Add(house - 1)
}

// Occupants lists the grahas in house h, in AllGrahas order.
func (c Chart) Occupants(h int) []Graha {
	var out []Graha
	for _, g := range AllGrahas {
		if p, ok := c.Planets[g]; ok && p.House == h {
			out = append(out, g)
		}
	}
	return out
}

// WholeSignHouse is the house a sign falls in for the given ascendant.
func WholeSignHouse(ascendant, sign Sign) int {
	return int(sign.Add(-int(ascendant))) + 1
}

// ChartInput is a resolved chart plus the context it is evaluated in.
type ChartInput struct {
	Subject       string
	SourcePath    string
	Chart         Chart
	ReferenceDate time.Time
	MoonNakshatra *int // 0..26 when known
}
