// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package font provides the metrics the node package needs to size a
// Char: typeface/style/weight identity and, through a Face, glyph
// advance width, ascent and descent at a requested size.
package font

import (
	"golang.org/x/image/font"
)

// Style re-exports golang.org/x/image/font's slant classification so
// callers never need to import both packages for a single enum.
type Style = font.Style

// Weight re-exports golang.org/x/image/font's weight classification.
type Weight = font.Weight

const (
	StyleNormal = font.StyleNormal
	StyleItalic = font.StyleItalic

	WeightNormal = font.WeightNormal
	WeightBold   = font.WeightBold
)

// Font identifies a font face by family name, style variant (e.g.
// "Math", "Mono", "Sans" — empty means the family's default "Serif"
// text variant), slant and weight. It carries no glyph data; Face
// pairs a Font with the parsed face that does.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	Weight   Weight
}

// Typeface names a font family, e.g. "Liberation Sans".
type Typeface string

// Variant names a sub-family within a Typeface, e.g. "Math" or "Mono".
// The empty Variant means the family's default text variant.
type Variant string

// Collection is a set of Faces, searched by (near) Font match.
type Collection []Face

// Lookup returns the Face in c whose Font field matches fnt most
// closely: an exact match if one exists, otherwise the first Face
// with the same Typeface and Variant, ignoring Style/Weight.
func (c Collection) Lookup(fnt Font) (Face, bool) {
	for _, f := range c {
		if f.Font == fnt {
			return f, true
		}
	}
	for _, f := range c {
		if f.Font.Typeface == fnt.Typeface && f.Font.Variant == fnt.Variant {
			return f, true
		}
	}
	return Face{}, false
}
