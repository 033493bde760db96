// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/go-pdf/fpdf"

	"github.com/go-tex/stomach/dimen"
)

// PDFAnnotBegin opens a PDF link or text annotation at the point it
// appears in the node tree; Emit lays it down on pdf at (x, y) in
// points, the way vgpdf.Canvas's own fpdf.Fpdf usage draws text and
// shapes directly against the document.
type PDFAnnotBegin struct {
	Tag     string
	Attrs   map[string]string
	Classes []string
	Width   dimen.SP
	Height  dimen.SP
}

func (a PDFAnnotBegin) Dims() (w, h, d dimen.SP) { return a.Width, a.Height, 0 }
func (PDFAnnotBegin) NodeType() string           { return "pdf-annot-begin" }

// Emit adds a PDF annotation to pdf at (x, y), sized to Width/Height.
func (a PDFAnnotBegin) Emit(pdf *fpdf.Fpdf, x, y float64) {
	link := ""
	if a.Attrs != nil {
		link = a.Attrs["href"]
	}
	pdf.LinkString(x, y, a.Width.Points(), a.Height.Points(), link)
}

// PDFAnnotEnd closes the scope a PDFAnnotBegin opened.
type PDFAnnotEnd struct {
	Tag string
}

func (PDFAnnotEnd) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (PDFAnnotEnd) NodeType() string         { return "pdf-annot-end" }
