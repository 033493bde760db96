// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/srcref"
)

func TestHPackNatural(t *testing.T) {
	children := []HNode{
		Kern{Width: dimen.Pt(1)},
		Kern{Width: dimen.Pt(2)},
	}
	b := HPack(srcref.Span{}, children, Natural, 0)
	if got, want := b.Width, dimen.Pt(3); got != want {
		t.Errorf("Width = %v, want %v", got, want)
	}
	if b.GlueSign != dimen.GlueNormal {
		t.Errorf("GlueSign = %v, want GlueNormal", b.GlueSign)
	}
}

func TestHPackToStretches(t *testing.T) {
	children := []HNode{
		Kern{Width: dimen.Pt(10)},
		Glue{Width: dimen.Pt(0), Stretch: dimen.Pt(5), StretchOrder: dimen.Finite},
	}
	b := HPack(srcref.Span{}, children, To, dimen.Pt(15))
	if got, want := b.Width, dimen.Pt(15); got != want {
		t.Errorf("Width = %v, want %v", got, want)
	}
	if b.GlueSign != dimen.GlueStretching {
		t.Errorf("GlueSign = %v, want GlueStretching", b.GlueSign)
	}
	if got, want := b.GlueRatio, 1.0; got != want {
		t.Errorf("GlueRatio = %v, want %v", got, want)
	}
}

func TestHPackToShrinks(t *testing.T) {
	children := []HNode{
		Kern{Width: dimen.Pt(10)},
		Glue{Width: dimen.Pt(0), Shrink: dimen.Pt(5), ShrinkOrder: dimen.Finite},
	}
	b := HPack(srcref.Span{}, children, To, dimen.Pt(7))
	if b.GlueSign != dimen.GlueShrinking {
		t.Errorf("GlueSign = %v, want GlueShrinking", b.GlueSign)
	}
	if got, want := b.GlueRatio, 3.0/5.0; got != want {
		t.Errorf("GlueRatio = %v, want %v", got, want)
	}
}

func TestHPackHigherOrderWins(t *testing.T) {
	children := []HNode{
		Glue{Stretch: dimen.Pt(1), StretchOrder: dimen.Finite},
		Glue{Stretch: dimen.Pt(1), StretchOrder: dimen.Fil},
	}
	b := HPack(srcref.Span{}, children, To, dimen.Pt(100))
	if b.GlueOrder != dimen.Fil {
		t.Errorf("GlueOrder = %v, want Fil", b.GlueOrder)
	}
}

func TestVPackHeightDepth(t *testing.T) {
	children := []VNode{
		&Box{Fam: HBox, Height: dimen.Pt(10), Depth: dimen.Pt(2)},
		&Box{Fam: HBox, Height: dimen.Pt(5), Depth: dimen.Pt(1)},
	}
	b := VPack(srcref.Span{}, children, Natural, 0)
	// height accumulates: first box's height, then prev depth + next
	// height for the second.
	want := dimen.Pt(10) + dimen.Pt(2) + dimen.Pt(5)
	if b.Height != want {
		t.Errorf("Height = %v, want %v", b.Height, want)
	}
	if b.Depth != dimen.Pt(1) {
		t.Errorf("Depth = %v, want %v", b.Depth, dimen.Pt(1))
	}
}
