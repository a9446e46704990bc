// Package core_test verifies the value types: Criterion, Weight and Path sentinels.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// TestCriterion_ParseAndString VERIFIES round-trip naming and rejection of unknown names.
func TestCriterion_ParseAndString(t *testing.T) {
	for _, c := range core.Criteria() {
		got, err := core.ParseCriterion(" " + c.String() + " ")
		if err != nil || got != c {
			t.Fatalf("ParseCriterion(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, _ := core.ParseCriterion("TIME"); got != core.Time {
		t.Fatalf("ParseCriterion(TIME) = %v", got)
	}
	if _, err := core.ParseCriterion("speed"); !errors.Is(err, core.ErrUnknownCriterion) {
		t.Fatalf("ParseCriterion(speed) err = %v", err)
	}
	if core.Criterion(9).Valid() || core.Criterion(9).String() != "criterion(9)" {
		t.Fatalf("Criterion(9) should be invalid")
	}
}

// TestWeight_By VERIFIES dimension selection and the +Inf fallback.
func TestWeight_By(t *testing.T) {
	w := core.Weight{Distance: 1, Time: 2, Cost: 3.5}
	if w.By(core.Distance) != 1 || w.By(core.Time) != 2 || w.By(core.Cost) != 3.5 {
		t.Fatalf("Weight.By mismatch for %+v", w)
	}
	if !math.IsInf(w.By(core.Criterion(-1)), 1) {
		t.Fatalf("Weight.By(unknown) should be +Inf")
	}
	if !w.Valid() || (core.Weight{Cost: math.Inf(1)}).Valid() {
		t.Fatalf("Weight.Valid mismatch")
	}
}

// TestPath_Sentinels VERIFIES that the two empty sentinels and a one-vertex path are distinguishable.
func TestPath_Sentinels(t *testing.T) {
	none := core.NoPath(core.Time)
	bad := core.InvalidPath(core.Time)
	one := core.Path{Vertices: []*core.Vertex{{Key: VertexA}}, Criterion: core.Time}

	if none.Found() || none.Invalid() || !math.IsInf(none.Weight, 1) {
		t.Fatalf("NoPath = %+v", none)
	}
	if bad.Found() || !bad.Invalid() || bad.Weight != core.InvalidWeight {
		t.Fatalf("InvalidPath = %+v", bad)
	}
	if !one.Found() || one.Invalid() || one.Weight != 0 || one.Len() != 0 {
		t.Fatalf("single-vertex path = %+v", one)
	}
	if none.String() != "no path" || one.String() != "A (0 time)" {
		t.Fatalf("String() = %q / %q", none.String(), one.String())
	}
}
