// Package ring implements arithmetic on the twelve-house ring: forward arcs,
// angular (Kendra) relations and the classical aspect (drishti) rules.
//
// Houses are numbered 1..12 and every walk goes forward, wrapping from 12
// back to 1.
package ring

import "github.com/vastucartapps/jyotish/internal/model"

// Houses is the number of houses on the ring.
const Houses = 12

// kendraOffsets are the angular positions counted inclusively from a house.
var kendraOffsets = [...]int{1, 4, 7, 10}

// aspect offsets per graha; grahas absent from the map aspect +7 only.
var specialAspects = map[model.Graha][]int{
	model.Saturn: {3, 7, 10},
	model.Rahu:   {5, 7, 9},
	model.Ketu:   {5, 7, 9},
}

var defaultAspect = []int{7}

// Normalize maps any integer onto 1..12.
func Normalize(h int) int {
	return ((h-1)%Houses+Houses)%Houses + 1
}

// Advance steps n houses forward from house, wrapping past 12.
func Advance(house, n int) int {
	return Normalize(house + n)
}

// Offset is the inclusive forward count from h2 to h1: the same house is 1,
// the next house is 2, and so on up to 12.
func Offset(h1, h2 int) int {
	return ((h1-h2)%Houses+Houses)%Houses + 1
}

// Arc returns the houses met walking forward from `from` to `to`, both ends
// included. Arc(h, h) is the single house h.
func Arc(from, to int) []int {
	from, to = Normalize(from), Normalize(to)
	out := make([]int, 0, Offset(to, from))
	for h := from; ; h = Advance(h, 1) {
		out = append(out, h)
		if h == to {
			return out
		}
	}
}

// InArc reports whether h lies on the forward walk from `from` to `to`,
// endpoints included. It is the list-free equivalent of searching Arc.
func InArc(h, from, to int) bool {
	return Offset(h, from) <= Offset(to, from)
}

// IsKendraOffset reports whether h1 is 1st, 4th, 7th or 10th counted from h2.
func IsKendraOffset(h1, h2 int) bool {
	off := Offset(h1, h2)
	for _, k := range kendraOffsets {
		if off == k {
			return true
		}
	}
	return false
}

// IsKendra reports whether a house is angular from the ascendant.
func IsKendra(h int) bool {
	return IsKendraOffset(h, 1)
}

// AspectedHouses returns the houses g casts drishti on from sourceHouse.
// Offsets are added to the source house and wrapped onto the ring.
func AspectedHouses(g model.Graha, sourceHouse int) []int {
	offsets, ok := specialAspects[g]
	if !ok {
		offsets = defaultAspect
	}
	out := make([]int, len(offsets))
	for i, n := range offsets {
		out[i] = Advance(sourceHouse, n)
	}
	return out
}

// DoesAspect reports whether g in sourceHouse aspects targetHouse.
func DoesAspect(g model.Graha, sourceHouse, targetHouse int) bool {
	target := Normalize(targetHouse)
	for _, h := range AspectedHouses(g, sourceHouse) {
		if h == target {
			return true
		}
	}
	return false
}

// Influences reports whether g, sitting in sourceHouse, is conjunct with or
// aspects targetHouse.
func Influences(g model.Graha, sourceHouse, targetHouse int) bool {
	return Normalize(sourceHouse) == Normalize(targetHouse) || DoesAspect(g, sourceHouse, targetHouse)
}
