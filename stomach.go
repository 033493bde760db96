// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stomach is the execution core of a TeX-family typesetting
// engine: it consumes already-expanded command tokens and produces a
// tree of typeset nodes (character boxes, rules, glue, penalties,
// whatsits) assembled into horizontal lists, vertical lists, math
// lists and pages. It holds the engine's mode state machine, manages
// the stack of in-progress node lists, mediates assignments against
// the grouped State it is handed per call, orchestrates paragraph
// line-breaking, and triggers the output routine when the page is
// full.
//
// Tokenization (Mouth), macro expansion and number parsing (Gullet)
// and the grouped symbol table (State) are supplied by the caller
// through engine.Refs for the duration of each call; the Stomach owns
// only the page, the open-list stack, and the afterassignment slot.
package stomach

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/mode"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/ttoken"
)

// prevDepthIgnore is TeX's sentinel meaning "no previous box on this
// list to skip from" (−1000pt in scaled points).
const prevDepthIgnore = dimen.SP(-1000 * 65536)

// Insert is a class-tagged block of vertical material routed to a
// footnote-like region at output time.
type Insert struct {
	Class int
	Body  []node.VNode
}

// Data is the mutable, per-document execution state the Stomach
// owns exclusively: the page, the stack of open list frames, page
// dimensions, and the handful of counters and mark tables every
// primitive's effect is measured against.
type Data struct {
	Page      []node.VNode
	OpenLists []node.List

	PageGoal          dimen.SP
	PageTotal         dimen.SP
	PageStretch       dimen.SP
	PageFilStretch    dimen.SP
	PageFillStretch   dimen.SP
	PageFilllStretch  dimen.SP
	PageShrink        dimen.SP
	PageDepth         dimen.SP
	PageContainsBoxes bool

	PrevDepth   dimen.SP
	SpaceFactor int
	LastPenalty int

	PrevGraf   int
	DeadCycles int
	InOutput   bool

	TopMarks        map[int]ttoken.List
	FirstMarks      map[int]ttoken.List
	BotMarks        map[int]ttoken.List
	SplitFirstMarks map[int]ttoken.List
	SplitBotMarks   map[int]ttoken.List

	VAdjusts []node.VNode
	Inserts  []Insert

	// PendingBoxes mirrors the tail of OpenLists that was pushed by
	// DoBox: one entry per open box frame, holding the sizing
	// directive and deposit target CloseBox needs once that frame's
	// children are packaged.
	PendingBoxes []*BoxInfo

	// PendingMathGroups mirrors the tail of OpenLists pushed by
	// ReadCharOrMathGroup for a "{"-opened math sub-formula: one
	// continuation per open frame, invoked with the frame's finished
	// MList by CloseMathGroup. This is the synchronous "asynchronous"
	// math sub-list of §9's design notes: the continuation is captured
	// at open time and run at close, never truly deferred.
	PendingMathGroups []engine.ListTarget[[]node.MathNode]

	// OutputRoutine is invoked by DoOutput with the page packaged as
	// box255; running the user's output-routine token list through
	// the main command loop is out of the Stomach's own scope (the
	// Stomach does not recursively drive dispatch), so this is the
	// caller's hook into that loop. It reports whether it shipped a
	// page out.
	OutputRoutine func(d *Data, refs *engine.Refs, box255 *node.Box) bool

	Afterassignment *ttoken.Token
}

// New returns a Data initialized the way a fresh document starts:
// \pagegoal at its maximum, prevdepth "ignore", spacefactor 1000, and
// every mark table empty.
func New() *Data {
	return &Data{
		PageGoal:    dimen.Inf,
		PrevDepth:   prevDepthIgnore,
		SpaceFactor: 1000,

		TopMarks:        make(map[int]ttoken.List),
		FirstMarks:      make(map[int]ttoken.List),
		BotMarks:        make(map[int]ttoken.List),
		SplitFirstMarks: make(map[int]ttoken.List),
		SplitBotMarks:   make(map[int]ttoken.List),
	}
}

// Mode derives the current processing mode from the open-list stack.
// It is never cached: every call re-walks the stack, which is the
// invariant the mode package doc describes.
func (d *Data) Mode() mode.Mode {
	if len(d.OpenLists) == 0 {
		return mode.Vertical
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	switch top.Kind {
	case node.ParagraphFrame:
		return mode.Horizontal
	case node.HBoxFrame, node.HAlignFrame:
		return mode.RestrictedHorizontal
	case node.VBoxFrame, node.VAlignFrame, node.InsertFrame, node.VAdjustFrame:
		return mode.InternalVertical
	case node.MathFrame:
		return d.mathMode()
	}
	return mode.InternalVertical
}

// mathMode scans toward the base of the stack for the outermost math
// frame, whose Display flag distinguishes inline from display math;
// per the open-lists invariant, at least one such frame exists
// whenever any math frame does. It returns on the first (base-most)
// match rather than the last: a nested math sub-list opened by
// ReadCharOrMathGroup has its own Display left at the zero value, and
// letting that overwrite the outer formula's flag would misreport a
// display formula's sub/superscript interior as inline.
func (d *Data) mathMode() mode.Mode {
	for _, fr := range d.OpenLists {
		if fr.Kind == node.MathFrame {
			if fr.Display {
				return mode.DisplayMath
			}
			return mode.InlineMath
		}
	}
	return mode.InlineMath
}

// top returns a pointer to the innermost open frame, or nil if
// open_lists is empty (top-level vertical mode).
func (d *Data) top() *node.List {
	if len(d.OpenLists) == 0 {
		return nil
	}
	return &d.OpenLists[len(d.OpenLists)-1]
}

// insertAfterassignment requeues the pending afterassignment token,
// if any, and clears the slot. Only assignment entry points call
// this; non-assignments must never insert.
func insertAfterassignment(d *Data, refs *engine.Refs) {
	if d.Afterassignment == nil {
		return
	}
	refs.Mouth.Push(*d.Afterassignment)
	d.Afterassignment = nil
}

// SetAfterassignment records tok to be requeued immediately after the
// next assignment completes. At most one token is ever queued;
// setting again overwrites rather than stacking, matching TeX's own
// single-slot \afterassignment.
func (d *Data) SetAfterassignment(tok ttoken.Token) {
	t := tok
	d.Afterassignment = &t
}

// addNodeH appends n to the innermost horizontal list. Calling this
// outside a horizontal-family frame (Paragraph, HBoxFrame, an Align
// frame holding an HList, or a math frame via its bracketing
// MathOn/MathOff) is a caller-contract violation; panicking surfaces
// it immediately rather than silently corrupting an unrelated list.
func (d *Data) addNodeH(n node.HNode) {
	top := d.top()
	if top == nil {
		panic("stomach: add_node_h called outside a horizontal frame")
	}
	switch top.Kind {
	case node.ParagraphFrame, node.HBoxFrame, node.HAlignFrame, node.MathFrame:
	default:
		panic("stomach: add_node_h called outside a horizontal frame")
	}
	if p, ok := n.(node.Penalty); ok {
		d.LastPenalty = p.Value
	}
	top.HList = append(top.HList, n)
}

// addNodeM appends n to the innermost math list.
func (d *Data) addNodeM(n node.MathNode) {
	top := d.top()
	if top == nil || top.Kind != node.MathFrame {
		panic("stomach: add_node_m called outside a math frame")
	}
	top.MList = append(top.MList, n)
}

// addNodeV appends n either to the innermost open vertical-family
// frame, or — if no frame is open — to the page itself, updating the
// page-builder totals and offering the output routine a chance to
// fire. Whether n forces the output routine is decided from n itself,
// not from any persistent "last penalty" field: Data.LastPenalty
// tracks the last *horizontal* penalty for \lastpenalty and survives
// across pages, so consulting it here would misfire on every page
// after the first one a forcing penalty shipped.
func (d *Data) addNodeV(refs *engine.Refs, n node.VNode) {
	top := d.top()
	if top != nil {
		top.VList = append(top.VList, n)
		return
	}
	d.Page = append(d.Page, n)
	d.updatePageTotals(n)
	forced := false
	if p, ok := n.(node.Penalty); ok {
		forced = p.Forced()
	}
	d.maybeDoOutput(refs, forced)
}

func (d *Data) updatePageTotals(n node.VNode) {
	switch v := n.(type) {
	case node.Glue:
		d.PageTotal += v.Width
		switch v.StretchOrder {
		case dimen.Finite:
			d.PageStretch += v.Stretch
		case dimen.Fil:
			d.PageFilStretch += v.Stretch
		case dimen.Fill:
			d.PageFillStretch += v.Stretch
		case dimen.Filll:
			d.PageFilllStretch += v.Stretch
		}
		d.PageShrink += v.Shrink
	case node.Kern:
		d.PageTotal += v.Width
	case *node.Box:
		d.PageTotal += d.PageDepth + v.Height
		d.PageDepth = v.Depth
		d.PageContainsBoxes = true
	case node.Penalty:
		d.LastPenalty = v.Value
	}
}
