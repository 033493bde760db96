// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/srcref"
)

// forcedPenalty is TeX's break-here-unconditionally penalty value.
const forcedPenalty = -10000

// maybeDoOutput fires run (the caller-supplied output routine) iff
// not already in_output, no list is open, the page is non-empty, and
// either the page total has reached pagegoal or forcedBreak reports
// that the node just added to the page was a forcing penalty.
// forcedBreak is computed fresh by the caller for the node just
// appended, mirroring stomach.rs's maybe_do_output(engine, penalty:
// Option<i32>) — it is not read from any persistent field, since
// Data.LastPenalty tracks the last *horizontal* penalty for \lastpenalty
// and is neither reset by DoOutput nor scoped to the page builder.
func (d *Data) maybeDoOutput(refs *engine.Refs, forcedBreak bool) {
	if d.InOutput || len(d.OpenLists) != 0 || len(d.Page) == 0 {
		return
	}
	if d.PageTotal >= d.PageGoal || forcedBreak {
		d.DoOutput(refs)
	}
}

// DoOutput runs d.OutputRoutine (if set) against box255 (the page
// packaged as a VBox), then clears the page. Dispatching the output
// routine's own token list back through the main command loop is out
// of the Stomach's scope — OutputRoutine is the caller's hook into
// that loop; it reports whether it shipped anything out, and
// deadcycles is incremented when it did not, the same guard real TeX
// uses to detect an output routine stuck in a loop.
func (d *Data) DoOutput(refs *engine.Refs) {
	d.InOutput = true
	box255 := node.VPack(srcref.Span{Start: srcref.None, End: srcref.None}, d.Page, node.Natural, 0)

	shipped := false
	if d.OutputRoutine != nil {
		shipped = d.OutputRoutine(d, refs, box255)
	}
	if shipped {
		d.DeadCycles = 0
	} else {
		d.DeadCycles++
	}

	d.Page = nil
	d.PageTotal = 0
	d.PageStretch = 0
	d.PageFilStretch = 0
	d.PageFillStretch = 0
	d.PageFilllStretch = 0
	d.PageShrink = 0
	d.PageDepth = 0
	d.PageContainsBoxes = false
	d.InOutput = false
}

// Flush runs at end of document: it warns about any groups still
// open (via Diag), pops them, forces a final break with a -10000
// penalty, and clears the page, mirroring the teacher source's own
// end-of-document cleanup rather than leaving unclosed frames to rot.
func (d *Data) Flush(refs *engine.Refs) {
	for len(d.OpenLists) > 0 {
		refs.Diag.Warningf("stomach: group ended by end of input (%d still open)", len(d.OpenLists))
		d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]
		refs.State.PopGroup()
	}
	d.addNodeV(refs, node.Penalty{Value: forcedPenalty})
	d.Page = nil
}

// SplitResult is what SplitVertical returns: the nodes kept before the
// break, the nodes left over after it, and the penalty value observed
// at the break point (0 if the break was forced by reaching target
// with no explicit penalty node there).
type SplitResult struct {
	First        []node.VNode
	Rest         []node.VNode
	SplitPenalty int
}

// SplitVertical implements §4.8's rough \vsplit: it walks vlist
// accumulating height+depth and stops at the first legal break point
// (glue following a non-discardable node, a penalty under the
// forbid-break threshold, or a kern immediately followed by glue)
// whose accumulated height first meets or exceeds target. It also
// records the first and last marks encountered before the break into
// d.SplitFirstMarks / d.SplitBotMarks.
func SplitVertical(d *Data, vlist []node.VNode, target dimen.SP) SplitResult {
	seenFirstMark := false

	isLegal := func(i int) bool {
		switch n := vlist[i].(type) {
		case node.Glue:
			return i > 0 && !isVDiscardable(vlist[i-1])
		case node.Penalty:
			return n.Value < 10000
		case node.Kern:
			return i+1 < len(vlist) && isVGlue(vlist[i+1])
		}
		return false
	}

	for i, n := range vlist {
		if mk, ok := n.(node.Mark); ok {
			if !seenFirstMark {
				d.SplitFirstMarks[mk.Class] = mk.Text
				seenFirstMark = true
			}
			d.SplitBotMarks[mk.Class] = mk.Text
		}

		if isLegal(i) && vDimsThrough(vlist[:i+1]) >= target {
			penalty := 0
			if p, ok := n.(node.Penalty); ok {
				penalty = p.Value
			}
			return SplitResult{First: vlist[:i], Rest: vlist[i+1:], SplitPenalty: penalty}
		}
	}
	return SplitResult{First: vlist, Rest: nil}
}

func vDimsThrough(nodes []node.VNode) dimen.SP {
	return node.VPack(srcref.Span{Start: srcref.None, End: srcref.None}, nodes, node.Natural, 0).Height
}

func isVDiscardable(n node.VNode) bool {
	switch n.(type) {
	case node.Glue, node.Kern, node.Penalty:
		return true
	}
	return false
}

func isVGlue(n node.VNode) bool {
	_, ok := n.(node.Glue)
	return ok
}
