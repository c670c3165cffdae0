package ring

import (
	"reflect"
	"testing"

	"github.com/vastucartapps/jyotish/internal/model"
)

func TestArc(t *testing.T) {
	tests := []struct {
		from, to int
		want     []int
	}{
		{1, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{10, 4, []int{10, 11, 12, 1, 2, 3, 4}},
		{5, 5, []int{5}},
		{12, 1, []int{12, 1}},
	}

	for _, tt := range tests {
		got := Arc(tt.from, tt.to)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Arc(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestInArcMatchesArc(t *testing.T) {
	for from := 1; from <= 12; from++ {
		for to := 1; to <= 12; to++ {
			members := make(map[int]bool)
			for _, h := range Arc(from, to) {
				members[h] = true
			}
			for h := 1; h <= 12; h++ {
				if InArc(h, from, to) != members[h] {
					t.Fatalf("InArc(%d, %d, %d) = %v, Arc says %v", h, from, to, !members[h], members[h])
				}
			}
		}
	}
}

func TestOppositeArcsPartitionRing(t *testing.T) {
	for rahu := 1; rahu <= 12; rahu++ {
		ketu := Advance(rahu, 6)
		ascending := Arc(rahu, ketu)
		descending := Arc(Advance(ketu, 1), Advance(rahu, -1))

		if len(ascending)+len(descending) != 12 {
			t.Fatalf("rahu=%d: arcs cover %d houses", rahu, len(ascending)+len(descending))
		}
		seen := make(map[int]bool)
		for _, h := range append(ascending, descending...) {
			if seen[h] {
				t.Fatalf("rahu=%d: house %d in both arcs", rahu, h)
			}
			seen[h] = true
		}
	}
}

func TestIsKendraOffset(t *testing.T) {
	tests := []struct {
		h1, h2 int
		want   bool
	}{
		{1, 1, true},
		{4, 1, true},
		{7, 1, true},
		{10, 1, true},
		{2, 1, false},
		{1, 10, true},  // 4th from 10
		{3, 12, true},  // 4th from 12
		{6, 12, true},  // 7th from 12
		{5, 12, false}, // 6th from 12
		{9, 3, true},
	}

	for _, tt := range tests {
		if got := IsKendraOffset(tt.h1, tt.h2); got != tt.want {
			t.Errorf("IsKendraOffset(%d, %d) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestAspectedHouses(t *testing.T) {
	tests := []struct {
		name   string
		graha  model.Graha
		source int
		want   []int
	}{
		{"saturn", model.Saturn, 1, []int{4, 8, 11}},
		{"saturn wraps", model.Saturn, 10, []int{1, 5, 8}},
		{"rahu", model.Rahu, 1, []int{6, 8, 10}},
		{"ketu wraps", model.Ketu, 7, []int{12, 2, 4}},
		{"sun", model.Sun, 3, []int{10}},
		{"jupiter wraps", model.Jupiter, 8, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AspectedHouses(tt.graha, tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AspectedHouses(%v, %d) = %v, want %v", tt.graha, tt.source, got, tt.want)
			}
		})
	}
}

func TestDoesAspect(t *testing.T) {
	if !DoesAspect(model.Mars, 2, 9) {
		t.Error("expected Mars in 2 to aspect 9")
	}
	if DoesAspect(model.Mars, 2, 5) {
		t.Error("Mars has no +3 aspect")
	}
	if !DoesAspect(model.Saturn, 2, 5) {
		t.Error("expected Saturn in 2 to aspect 5")
	}
	if DoesAspect(model.Rahu, 1, 1) {
		t.Error("aspect never lands on the source house")
	}
}

func TestInfluences(t *testing.T) {
	if !Influences(model.Rahu, 4, 4) {
		t.Error("conjunction should count as influence")
	}
	if !Influences(model.Rahu, 4, 9) {
		t.Error("expected Rahu in 4 to aspect 9")
	}
	if Influences(model.Sun, 4, 9) {
		t.Error("Sun in 4 only aspects 11")
	}
}

func TestNormalize(t *testing.T) {
	for in, want := range map[int]int{0: 12, 1: 1, 12: 12, 13: 1, -1: 11, 25: 1} {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%d) = %d, want %d", in, got, want)
		}
	}
}
