// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/go-tex/stomach/dimen"
)

// SVGEmbed wraps a self-contained run of SVG-producing commands (a
// \pgfsvg-style escape) with an explicit bounding box the node model
// needs without re-executing the SVG commands to measure them.
type SVGEmbed struct {
	MinX, MinY, MaxX, MaxY dimen.SP
	Draw                   func(*svg.SVG)
}

func (s SVGEmbed) Dims() (w, h, d dimen.SP) {
	return s.MaxX - s.MinX, s.MaxY - s.MinY, 0
}

func (SVGEmbed) NodeType() string { return "svg-embed" }

// Emit writes the embedded SVG fragment to w at the given canvas
// size, letting s.Draw issue whatever shape/text calls it needs
// against the svg.SVG writer.
func (s SVGEmbed) Emit(w io.Writer, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	if s.Draw != nil {
		s.Draw(canvas)
	}
	canvas.End()
}
