// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/font"
)

// MathClass is TeX's atom classification, governing inter-atom
// spacing when a math list is converted to a horizontal list.
type MathClass int

const (
	ClassOrd MathClass = iota
	ClassOp
	ClassBin
	ClassRel
	ClassOpen
	ClassClose
	ClassPunct
	ClassInner
)

// StyleVariant is TeX's math display style (display, text, script,
// scriptscript), each with a cramped variant.
type StyleVariant int

const (
	StyleDisplay StyleVariant = iota
	StyleDisplayCramped
	StyleText
	StyleTextCramped
	StyleScript
	StyleScriptCramped
	StyleScriptScript
	StyleScriptScriptCramped
)

// Delimiter names a (possibly absent) growable bracket character used
// by a Delimited nucleus or a \left...\right pair.
type Delimiter struct {
	Present bool
	Rune    rune
	Face    font.Face
}

// MathNucleus is the sum type of what an Atom's nucleus/superscript/
// subscript field may hold.
type MathNucleus interface {
	isNucleus()
}

// SimpleNucleus is a nucleus consisting of a single math character.
type SimpleNucleus struct {
	Char  rune
	Face  font.Face
	Class MathClass
}

// VCenterNucleus vertically centers a sub-box around the math axis,
// e.g. a fraction or \vcenter'd box.
type VCenterNucleus struct {
	Box *Box
}

// DelimitedNucleus wraps a sub-list in growable left/right delimiters.
type DelimitedNucleus struct {
	Left, Right Delimiter
	Inner       []MathNode
}

// OperatorNucleus is a "big operator" nucleus (\sum, \int, ...),
// which may grow in display style and carries its own limits
// placement flag.
type OperatorNucleus struct {
	Char       rune
	Face       font.Face
	LimitsSet  bool
	LimitsEnum int // 0 = default, 1 = \limits, 2 = \nolimits
}

func (SimpleNucleus) isNucleus()    {}
func (VCenterNucleus) isNucleus()   {}
func (DelimitedNucleus) isNucleus() {}
func (OperatorNucleus) isNucleus()  {}

// Atom is TeX's basic math list element: a required nucleus plus
// optional superscript and subscript sub-lists.
type Atom struct {
	Class       MathClass
	Nucleus     MathNucleus
	Superscript []MathNode
	Subscript   []MathNode
}

func (Atom) isMathNode() {}

// MathChar is a bare math character not yet wrapped in an Atom, the
// shape the Stomach appends before the math list is atomized.
type MathChar struct {
	Char  rune
	Face  font.Face
	Class MathClass
}

func (MathChar) isMathNode() {}

// MathKern, MathGlue and MathRule are the math-list analogues of
// Kern, Glue and Rule; they are kept distinct from the H/V versions
// because math spacing (mu units) is resolved against the current
// style before conversion, not against dimen.SP directly.
type MathKern struct {
	Width dimen.SP
}

type MathGlue struct {
	Width, Stretch, Shrink dimen.SP
}

type MathRule struct {
	W, H, D dimen.SP
}

func (MathKern) isMathNode() {}
func (MathGlue) isMathNode() {}
func (MathRule) isMathNode() {}

// StyleChange records a \displaystyle, \textstyle, \scriptstyle or
// \scriptscriptstyle switch at a point in the math list.
type StyleChange struct {
	Style StyleVariant
}

func (StyleChange) isMathNode() {}

// Choice holds four alternative sub-lists, one of which is selected
// during mlist-to-hlist conversion based on the style in effect
// (\mathchoice).
type Choice struct {
	Display, Text, Script, ScriptScript []MathNode
}

func (Choice) isMathNode() {}

// Boundary marks a \left or \right delimiter boundary inside a
// DelimitedNucleus's inner list, or a null delimiter when none was
// given.
type Boundary struct {
	Delim Delimiter
	Open  bool
}

func (Boundary) isMathNode() {}

// MathWhatsit lets a Whatsit-wrapped custom node sit inside a math
// list as well as an H or V list.
type MathWhatsit struct {
	Node CustomNode
}

func (MathWhatsit) isMathNode() {}
