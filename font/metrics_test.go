// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font_test

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/font/latex"
)

// TestAdvanceWidthScalesWithSize checks that AdvanceWidth grows
// (within floating-point tolerance) in proportion to the requested
// point size, the property a line-breaking or box-packing caller
// relies on to avoid re-deriving a face's metrics at every size it
// meets.
func TestAdvanceWidthScalesWithSize(t *testing.T) {
	coll := latex.Collection()
	face, ok := coll.Lookup(font.Font{Typeface: "LatinModern", Variant: "Serif"})
	if !ok {
		t.Fatal("font: default Latin Modern roman face not found in collection")
	}

	const r = 'M'
	small := face.AdvanceWidth(r, 10)
	big := face.AdvanceWidth(r, 20)
	if small <= 0 || big <= 0 {
		t.Fatalf("AdvanceWidth(%q, ...) = %v, %v, want both > 0", r, small, big)
	}

	want := small * 2
	if !floats.EqualWithinAbsOrRel(big, want, 1e-6, 1e-3) {
		t.Errorf("AdvanceWidth(%q, 20) = %v, want ~%v (2x the size-10 advance)", r, big, want)
	}
}

// TestExtentsNonNegative checks that ascent and descent, reported in
// points, never come back negative for a real embedded face — a
// mis-parsed units-per-em scale is the usual way that regresses.
func TestExtentsNonNegative(t *testing.T) {
	coll := latex.Collection()
	face, ok := coll.Lookup(font.Font{Typeface: "LatinModern", Variant: "Serif"})
	if !ok {
		t.Fatal("font: default Latin Modern roman face not found in collection")
	}

	ascent, descent, lineGap := face.Extents(10)
	for name, v := range map[string]float64{"ascent": ascent, "descent": descent, "lineGap": lineGap} {
		if v < 0 {
			t.Errorf("Extents(10) %s = %v, want >= 0", name, v)
		}
	}
}
