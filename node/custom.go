// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "github.com/go-tex/stomach/dimen"

// CustomNode is the capability a renderer-specific payload must
// implement to be wrapped in a Whatsit. It mirrors the teacher's own
// RusTeXNode roster: a fixed, closed set of concerns (font changes,
// paragraph/align markers, page boundaries, PDF annotations, SVG
// embeds, opaque literals) that all report a size and a display name,
// without the node package needing to know about any renderer's
// concrete types.
type CustomNode interface {
	// Dims reports the box the custom node occupies; most whatsits
	// (markers, annotations) are zero-sized.
	Dims() (width, height, depth dimen.SP)

	// NodeType names the custom node's kind for diagnostics, e.g.
	// "pdf-annot-begin" or "font-change".
	NodeType() string
}

// Whatsit wraps a CustomNode so it can sit in either an H or V list,
// the way the teacher's RusTeXNode unifies what upstream TeX keeps as
// separate "whatsit" subtypes.
type Whatsit struct {
	Node CustomNode
}

func (Whatsit) isHNode() {}
func (Whatsit) isVNode() {}

func (w Whatsit) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	ww, hh, dd := w.Node.Dims()
	*width += ww
	*height = dimen.Max(*height, hh)
	*depth = dimen.Max(*depth, dd)
}

func (w Whatsit) vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	ww, hh, dd := w.Node.Dims()
	*height += *depth + hh
	*depth = dd
	*width = dimen.Max(*width, ww)
}

var (
	_ hpacker = Whatsit{}
	_ vpacker = Whatsit{}
)

// Disc is a discretionary break: material to typeset if a line breaks
// here (PreBreak/PostBreak) versus if it does not (NoBreak), e.g. a
// hyphenation point.
type Disc struct {
	PreBreak, PostBreak, NoBreak []HNode
}

func (Disc) isHNode() {}

func (d Disc) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	for _, c := range d.NoBreak {
		if p, ok := c.(hpacker); ok {
			p.hpackDims(width, height, depth, stretch, shrink)
		}
	}
}

var _ hpacker = Disc{}

// Adjust carries vertical material (e.g. from \vadjust) discovered
// inside a horizontal list; it is sizeless in the H list itself and
// is spliced into the enclosing vertical list when the paragraph
// containing it is split into lines.
type Adjust struct {
	Body []VNode
}

func (Adjust) isHNode() {}

func (Adjust) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

var _ hpacker = Adjust{}

// MathOn and MathOff bracket a run of raw math-list content
// (Nucleus/MathNode) embedded inline in a horizontal list, e.g. a
// formula whose mlist-to-hlist conversion has not yet happened.
// Neither contributes to the enclosing HList's packed size on its
// own; the MathNode family they bracket carries its own sizing.
type MathOn struct {
	Style StyleVariant
}

type MathOff struct{}

func (MathOn) isHNode()  {}
func (MathOff) isHNode() {}

func (MathOn) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP)  {}
func (MathOff) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

var (
	_ hpacker = MathOn{}
	_ hpacker = MathOff{}
)

// InlineMath is the raw math-list content bracketed by a MathOn/
// MathOff pair (§9's design notes: mlist-to-hlist conversion is not
// performed here, so the formula's nodes ride along inside the
// horizontal list unconverted, for a later pass or back end to turn
// into sized H-list material). It reports zero size for the same
// reason — a faithful width/height/depth requires the conversion this
// package does not perform.
type InlineMath struct {
	Style StyleVariant
	MList []MathNode
}

func (InlineMath) isHNode() {}

func (InlineMath) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {}

var _ hpacker = InlineMath{}
