// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/ttoken"
)

// Glue is stretchable/shrinkable space. It is valid in both horizontal
// and vertical lists; the direction it measures along depends on
// which list it was appended to.
type Glue struct {
	Width        dimen.SP
	Stretch      dimen.SP
	StretchOrder dimen.GlueOrder
	Shrink       dimen.SP
	ShrinkOrder  dimen.GlueOrder
}

func (Glue) isHNode() {}
func (Glue) isVNode() {}

func (g Glue) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*width += g.Width
	stretch[g.StretchOrder] += g.Stretch
	shrink[g.ShrinkOrder] += g.Shrink
}

func (g Glue) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*height += *depth
	*depth = 0
	*height += g.Width
	stretch[g.StretchOrder] += g.Stretch
	shrink[g.ShrinkOrder] += g.Shrink
}

// Fil-style glue constructors, matching TeX's \hfil, \hfill, \hfilll
// and their negative and "ss" (centering) counterparts.
func Fil() Glue      { return Glue{Stretch: 1, StretchOrder: dimen.Fil} }
func Fill() Glue     { return Glue{Stretch: 1, StretchOrder: dimen.Fill} }
func Filll() Glue    { return Glue{Stretch: 1, StretchOrder: dimen.Filll} }
func NegFil() Glue   { return Glue{Shrink: 1, ShrinkOrder: dimen.Fil} }
func NegFill() Glue  { return Glue{Shrink: 1, ShrinkOrder: dimen.Fill} }
func NegFilll() Glue { return Glue{Shrink: 1, ShrinkOrder: dimen.Filll} }
func SS() Glue       { return Glue{Stretch: 1, StretchOrder: dimen.Fil, Shrink: 1, ShrinkOrder: dimen.Fil} }

// Kern is a fixed (usually small, sometimes negative) amount of
// spacing that is never stretched or shrunk.
type Kern struct {
	Width dimen.SP
}

func (Kern) isHNode() {}
func (Kern) isVNode() {}

func (k Kern) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*width += k.Width
}

func (k Kern) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*height += *depth + k.Width
	*depth = 0
}

// Penalty is a breakpoint desirability marker. A value <= -10000 is a
// forced break; a value >= 10000 forbids breaking here.
type Penalty struct {
	Value int
}

func (Penalty) isHNode() {}
func (Penalty) isVNode() {}

func (Penalty) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}
func (Penalty) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

// Forced reports whether the penalty forces a break (value <= -10000).
func (p Penalty) Forced() bool { return p.Value <= -10000 }

// Rule is a solid black rectangle. Any of its three dimensions may be
// Inf (a "running dimension"), meaning it is resolved to the boundary
// of the innermost enclosing box when that box is packaged; width is
// never running in an HList, height/depth are never running in a
// VList.
type Rule struct {
	W, H, D dimen.SP
}

func (*Rule) isHNode() {}
func (*Rule) isVNode() {}

func (r *Rule) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*width += r.W
	if dimen.IsInf(r.H) || dimen.IsInf(r.D) {
		return
	}
	*height = dimen.Max(*height, r.H)
	*depth = dimen.Max(*depth, r.D)
}

func (r *Rule) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*height += *depth + r.H
	*depth = r.D
	if dimen.IsInf(r.W) {
		return
	}
	*width = dimen.Max(*width, r.W)
}

// HRule returns a horizontal rule of the given thickness (height and
// depth each half of it), running infinitely wide.
func HRule(thickness dimen.SP) *Rule {
	return &Rule{W: dimen.Inf, H: thickness / 2, D: thickness / 2}
}

// VRule returns a vertical rule of the given thickness, running
// infinitely tall.
func VRule(thickness dimen.SP) *Rule {
	return &Rule{W: thickness, H: dimen.Inf, D: dimen.Inf}
}

// Mark records a token list at a point in the vertical (or, pending
// paragraph close, horizontal) list, retrievable during the output
// routine as \topmark, \firstmark, \botmark (keyed by mark class).
type Mark struct {
	Class int
	Text  ttoken.List
}

func (Mark) isHNode() {}
func (Mark) isVNode() {}

func (Mark) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}
func (Mark) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

// Insert is class-tagged vertical material routed to a footnote-like
// region at output time, e.g. \insert0{...}.
type Insert struct {
	Class int
	Body  []VNode
}

func (Insert) isHNode() {}
func (Insert) isVNode() {}

func (Insert) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}
func (Insert) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

// panicUnknown mirrors the teacher's own invariant-violation idiom
// (tex.go: panic(fmt.Errorf("unknown node type %T", node))) for the
// handful of internal switches below that must be exhaustive.
func panicUnknown(node any) {
	panic(fmt.Errorf("node: unknown node type %T", node))
}
