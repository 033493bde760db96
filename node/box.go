// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/srcref"
)

// Family distinguishes a Box's interior list kind.
type Family int

const (
	// HBox holds HNode children laid out left to right.
	HBox Family = iota
	// VBox holds VNode children stacked top to bottom.
	VBox
)

// Sizing directs how hpack/vpack sets a Box's natural size against a
// caller-requested one: kept as measured, forced to an exact target,
// or grown/shrunk by a fixed additional amount.
type Sizing int

const (
	// Natural keeps the box at its measured size; no glue is set.
	Natural Sizing = iota
	// To forces the box to an exact requested size, setting glue to
	// make up the difference.
	To
	// Spread grows the box's natural size by a fixed additional
	// amount, setting glue to supply it.
	Spread
)

// Box is a packaged H or V list: a Node in its own right (it may
// appear inside another list), carrying its own computed size and the
// glue-setting ratio chosen when it was packaged.
type Box struct {
	Fam Family
	Ref srcref.Span

	HList []HNode
	VList []VNode

	Width, Height, Depth dimen.SP

	// Shift displaces the box perpendicular to its packing direction:
	// downward for an HBox, rightward for a VBox.
	Shift dimen.SP

	GlueSign  dimen.GlueSign
	GlueOrder dimen.GlueOrder
	GlueRatio float64
}

func (*Box) isHNode() {}
func (*Box) isVNode() {}

func (b *Box) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*width += b.Width
	*height = dimen.Max(*height, b.Height-b.Shift)
	*depth = dimen.Max(*depth, b.Depth+b.Shift)
}

func (b *Box) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*height += *depth + b.Height
	*depth = b.Depth
	*width = dimen.Max(*width, b.Width+b.Shift)
}

// HPack packages children into an HBox, following the sizing
// directive. It mirrors the teacher's HList.hpack: a single
// accumulation pass over the children's hpackDims, followed by a
// glue-setting decision against the requested target.
func HPack(ref srcref.Span, children []HNode, sizing Sizing, target dimen.SP) *Box {
	b := &Box{Fam: HBox, Ref: ref, HList: children}

	var width, height, depth dimen.SP
	var stretch, shrink [4]dimen.SP
	for _, c := range children {
		if p, ok := c.(hpacker); ok {
			p.hpackDims(&width, &height, &depth, &stretch, &shrink)
		}
	}
	b.Height, b.Depth = height, depth

	switch sizing {
	case Natural:
		b.Width = width
	case To:
		b.Width = target
	case Spread:
		b.Width = width + target
	}
	setGlue(b, width, stretch, shrink)
	return b
}

// VPack packages children into a VBox the same way HPack does for
// HBoxes, but measuring height/depth instead of width.
func VPack(ref srcref.Span, children []VNode, sizing Sizing, target dimen.SP) *Box {
	b := &Box{Fam: VBox, Ref: ref, VList: children}

	var width, height, depth dimen.SP
	var stretch, shrink [4]dimen.SP
	for _, c := range children {
		if p, ok := c.(vpacker); ok {
			p.vpackDims(&width, &height, &depth, &stretch, &shrink)
		}
	}
	b.Width = width

	natural := height
	switch sizing {
	case Natural:
		b.Height = natural
	case To:
		b.Height = target
	case Spread:
		b.Height = natural + target
	}
	b.Depth = depth
	setGlue(b, natural, stretch, shrink)
	return b
}

// setGlue chooses the glue sign, order and ratio that make up the gap
// between the box's natural size and its packaged size, the way TeX's
// own hpack/vpack do: the highest nonzero order of stretch or shrink
// wins, and lower orders are left untouched.
func setGlue(b *Box, natural dimen.SP, stretch, shrink [4]dimen.SP) {
	diff := b.sizeAlongPack() - natural
	switch {
	case diff == 0:
		b.GlueSign = dimen.GlueNormal
	case diff > 0:
		order, total := highestOrder(stretch)
		b.GlueSign = dimen.GlueStretching
		b.GlueOrder = order
		if total != 0 {
			b.GlueRatio = float64(diff) / float64(total)
		}
	default:
		order, total := highestOrder(shrink)
		b.GlueSign = dimen.GlueShrinking
		b.GlueOrder = order
		if total != 0 {
			b.GlueRatio = float64(-diff) / float64(total)
		}
	}
}

func (b *Box) sizeAlongPack() dimen.SP {
	if b.Fam == HBox {
		return b.Width
	}
	return b.Height
}

func highestOrder(amounts [4]dimen.SP) (dimen.GlueOrder, dimen.SP) {
	for order := dimen.Filll; order >= dimen.Fil; order-- {
		if amounts[order] != 0 {
			return order, amounts[order]
		}
	}
	return dimen.Finite, amounts[dimen.Finite]
}
