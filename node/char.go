// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/font"
)

// Char is a single typeset glyph: a font face, a point size, and the
// character it renders, with its box dimensions resolved against the
// face's metrics at creation time so later packing never re-queries
// the font.
type Char struct {
	Face font.Face
	Size dimen.SP
	Rune rune

	// Math marks a Char produced while converting a math list to a
	// horizontal list (e.g. a MathChar's glyph); it affects italic
	// correction handling in the enclosing Atom, not packing here.
	Math bool

	width, height, depth dimen.SP
}

// NewChar resolves r's box dimensions against face at the given size
// and returns the packed Char.
func NewChar(face font.Face, size dimen.SP, r rune) Char {
	ascent, descent, _ := face.Extents(size.Points())
	return Char{
		Face:   face,
		Size:   size,
		Rune:   r,
		width:  dimen.Pt(face.AdvanceWidth(r, size.Points())),
		height: dimen.Pt(ascent),
		depth:  dimen.Pt(descent),
	}
}

// Width, Height and Depth report the Char's resolved box dimensions.
func (c Char) Width() dimen.SP  { return c.width }
func (c Char) Height() dimen.SP { return c.height }
func (c Char) Depth() dimen.SP  { return c.depth }

func (Char) isHNode() {}

func (c Char) hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP) {
	*width += c.width
	*height = dimen.Max(*height, c.height)
	*depth = dimen.Max(*depth, c.depth)
}

var _ hpacker = Char{}
