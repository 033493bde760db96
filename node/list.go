// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/srcref"
)

// Kind names the sort of open list frame the root package's frame
// stack holds.
type Kind int

const (
	// TopLevel is the outermost vertical list (the "main vertical
	// list" / "page builder" frame).
	TopLevel Kind = iota
	// VBoxFrame is the interior of an explicit \vbox.
	VBoxFrame
	// HBoxFrame is the interior of an explicit \hbox.
	HBoxFrame
	// ParagraphFrame is an open paragraph's horizontal list.
	ParagraphFrame
	// HAlignFrame is the interior of a \halign cell (horizontal).
	HAlignFrame
	// VAlignFrame is the interior of a \valign cell (vertical).
	VAlignFrame
	// MathFrame is an open inline or display math list.
	MathFrame
	// InsertFrame is the body of an open \insert.
	InsertFrame
	// VAdjustFrame is the body of an open \vadjust.
	VAdjustFrame
)

// List is an open or closed node list together with the source
// reference of the token that opened it. A List under construction
// (on the root package's frame stack) only ever has one of HList/
// VList/MList populated, matching its Kind; after closing, boxed
// content is typically repackaged into a Box rather than kept as a
// bare List.
type List struct {
	Kind Kind
	Ref  srcref.Span

	HList []HNode
	VList []VNode
	MList []MathNode

	// Display records whether a MathFrame is \[...\]/\$\$...\$\$
	// display math rather than inline $...$.
	Display bool
}

// LineSkip resolves the vertical glue TeX inserts between two
// baselines according to \baselineskip/\lineskip/\lineskiplimit: if
// baselineskip minus the previous box's depth minus the next box's
// height is at least lineskiplimit, a Glue of that adjusted
// baselineskip is used; otherwise the (usually small, often zero)
// lineskip glue is used instead. The caller is responsible for
// skipping this call entirely when prevDepth is TeX's "ignore depth"
// sentinel (-1000pt) — there is no previous box to skip from in that
// case, and Resolve does not special-case it.
type LineSkip struct {
	BaselineSkip  Glue
	LineSkip      Glue
	LineSkipLimit dimen.SP
}

// Resolve returns the glue to insert before a box of the given height
// following a box of the given depth.
func (l LineSkip) Resolve(prevDepth, nextHeight dimen.SP) Glue {
	gap := l.BaselineSkip.Width - prevDepth - nextHeight
	if gap >= l.LineSkipLimit {
		g := l.BaselineSkip
		g.Width = gap
		return g
	}
	return l.LineSkip
}
