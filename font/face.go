// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"fmt"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// dpi is the resolution Extents and AdvanceWidth assume when turning
// a requested point size into the hinted pixels-per-em opentype.NewFace
// wants; it matches the DPI the vg backends render at.
const dpi = 72

// Face pairs a Font identity with the parsed, but not yet
// size-instantiated, outline data backing it. A concrete font.Face at
// a given point size is created on demand by newFace.
type Face struct {
	Font Font
	Face *opentype.Font
}

// Extents reports the face's ascent, descent and line gap at the
// given point size, in points.
func (f Face) Extents(size float64) (ascent, descent, lineGap float64) {
	face, err := f.newFace(size)
	if err != nil {
		return 0, 0, 0
	}
	defer face.Close()
	m := face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent),
		fixedToFloat(m.Height - m.Ascent - m.Descent)
}

// AdvanceWidth reports the advance width of r at the given point
// size, or 0 if the face has no glyph for r.
func (f Face) AdvanceWidth(r rune, size float64) float64 {
	face, err := f.newFace(size)
	if err != nil {
		return 0
	}
	defer face.Close()
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat(adv)
}

func (f Face) newFace(size float64) (xfont.Face, error) {
	if f.Face == nil {
		return nil, fmt.Errorf("font: face has no parsed font data")
	}
	return opentype.NewFace(f.Face, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: xfont.HintingNone,
	})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// faceFrom parses raw OpenType/TrueType font data and derives its
// Font identity (typeface, style, weight) from the font's name table,
// the way the teacher's font/latex package feeds embedded TTFs
// straight into a font.Collection.
func faceFrom(raw []byte) (Face, error) {
	parsed, err := opentype.Parse(raw)
	if err != nil {
		return Face{}, fmt.Errorf("font: could not parse font: %w", err)
	}

	sf, err := sfnt.Parse(raw)
	if err != nil {
		return Face{}, fmt.Errorf("font: could not parse font metadata: %w", err)
	}

	var buf sfnt.Buffer
	family, _ := sf.Name(&buf, sfnt.NameIDFamily)
	subfamily, _ := sf.Name(&buf, sfnt.NameIDSubfamily)

	fnt := Font{
		Typeface: Typeface(family),
		Style:    styleFrom(subfamily),
		Weight:   weightFrom(subfamily),
	}
	return Face{Font: fnt, Face: parsed}, nil
}

func styleFrom(subfamily string) Style {
	lower := strings.ToLower(subfamily)
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		return StyleItalic
	}
	return StyleNormal
}

func weightFrom(subfamily string) Weight {
	if strings.Contains(strings.ToLower(subfamily), "bold") {
		return WeightBold
	}
	return WeightNormal
}
