// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/srcref"
	"github.com/go-tex/stomach/ttoken"
)

// ParLineSpec is one line's worth of layout parameters: the target
// width to break to, and the skips appended at either end of the
// line box. A paragraph's full \parshape produces one of these per
// line; a paragraph with no \parshape set reuses \hsize/\leftskip/
// \rightskip for every line, which is the only case this
// implementation resolves: \parshape and \hangindent/\hangafter are
// never read here, so every line gets the same spec; CloseParagraph
// only resets them when the paragraph is empty.
type ParLineSpec struct {
	Width               dimen.SP
	LeftSkip, RightSkip node.Glue
}

// OpenParagraph implements §4.5's open half: it records the
// paragraph's start reference, resets prevgraf, pushes a Paragraph
// frame, and handles the triggering token's indent behavior before
// pushing \everypar. Per §4.5, \indent and \noindent are both
// consumed here (neither primitive has any meaning once a paragraph
// is open); any other token has no defined paragraph-opening meaning
// of its own and is requeued so it re-dispatches in horizontal mode —
// the single requeue belongs here, not in the caller, so that \indent
// and \noindent are never redispatched a second time.
func (d *Data) OpenParagraph(refs *engine.Refs, ref srcref.Span, tok ttoken.Token, parindent dimen.SP) {
	d.PrevGraf = 0
	d.OpenLists = append(d.OpenLists, node.List{Kind: node.ParagraphFrame, Ref: ref})

	switch {
	case tok.Kind == ttoken.Primitive && tok.Name == "noindent":
		// consumed; no indent box
	case tok.Kind == ttoken.Primitive && tok.Name == "indent":
		// consumed; indent box
		d.addNodeH(indentBox(ref, parindent))
	default:
		refs.Mouth.Push(tok)
		d.addNodeH(indentBox(ref, parindent))
	}

	every := refs.State.Toks("everypar")
	pushList(refs.Mouth, every)
}

// openParagraph is maybeSwitchMode's internal entry point: it adds no
// behavior of its own beyond reading \parindent fresh from State, and
// delegates tok's indent/noindent/requeue handling entirely to
// OpenParagraph.
func (d *Data) openParagraph(refs *engine.Refs, tok ttoken.Token) {
	d.OpenParagraph(refs, srcref.Span{Start: srcref.None, End: srcref.None}, tok, refs.State.Dimen("parindent"))
}

// closeParagraph is maybeSwitchMode's counterpart to openParagraph;
// it discards any triggering-token handling (there is none to do on
// close) and delegates to CloseParagraph.
func (d *Data) closeParagraph(refs *engine.Refs) {
	d.CloseParagraph(refs)
}

func indentBox(ref srcref.Span, width dimen.SP) *node.Box {
	return node.HPack(ref, nil, node.To, width)
}

// pushList pushes a token list to m in reverse order, so that Next
// yields it front-to-back.
func pushList(m engine.Mouth, toks ttoken.List) {
	for i := len(toks) - 1; i >= 0; i-- {
		m.Push(toks[i])
	}
}

// CloseParagraph implements §4.5's close half. An empty paragraph
// silently discards \parshape and resets \hangafter/\hangindent — the
// open question recorded in DESIGN.md confirms this against the
// original source rather than treating it as underspecified.
func (d *Data) CloseParagraph(refs *engine.Refs) {
	if len(d.OpenLists) == 0 || d.OpenLists[len(d.OpenLists)-1].Kind != node.ParagraphFrame {
		panic("stomach: close_paragraph called but innermost frame is not a paragraph")
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]

	if len(top.HList) == 0 {
		refs.State.SetToks("parshape", nil, false)
		refs.State.SetInt("hangafter", 1, false)
		refs.State.SetDimen("hangindent", 0, false)
		return
	}

	spec := ParLineSpec{
		Width:     refs.State.Dimen("hsize"),
		LeftSkip:  glueFromState(refs.State, "leftskip"),
		RightSkip: glueFromState(refs.State, "rightskip"),
	}

	if parskip := refs.State.Dimen("parskip"); parskip != 0 {
		d.addNodeV(refs, node.Glue{Width: parskip})
	}

	items := splitParagraphRoughly(top.HList, spec, refs.State, d)
	lines := 0
	for _, it := range items {
		d.addNodeV(refs, it.node)
		if _, ok := it.node.(*node.Box); ok {
			lines++
		}
	}
	d.PrevGraf = lines
}

func glueFromState(s engine.State, name string) node.Glue {
	w, st, sh, so, sho := s.Glue(name)
	return node.Glue{Width: w, Stretch: st, StretchOrder: so, Shrink: sh, ShrinkOrder: sho}
}

// lineItem is one output item from splitParagraphRoughly, appended to
// the enclosing vertical list as-is: a line's leading baseline-skip
// glue, the line's packaged box, or a pass-through adjust (vertical
// material discovered via \vadjust inside the paragraph).
type lineItem struct {
	node node.VNode
}

// isDiscardable reports whether n may be dropped from the end of a
// line at a break, matching TeX's own rule that glue, kern and
// penalties do not survive at a line's trailing edge.
func isDiscardable(n node.HNode) bool {
	switch n.(type) {
	case node.Glue, node.Kern, node.Penalty:
		return true
	}
	return false
}

// isLegalBreak reports whether a break is allowed immediately after
// hlist[i]: at a discretionary, at a penalty under the forbid-break
// threshold, or at glue immediately following a non-discardable node.
func isLegalBreak(hlist []node.HNode, i int) bool {
	switch n := hlist[i].(type) {
	case node.Disc:
		return true
	case node.Penalty:
		return n.Value < 10000
	case node.Glue:
		return i > 0 && !isDiscardable(hlist[i-1])
	}
	return false
}

// isForcedBreak reports whether a break at hlist[i] must happen
// regardless of fit: a penalty of -10000 or less.
func isForcedBreak(n node.HNode) bool {
	p, ok := n.(node.Penalty)
	return ok && p.Forced()
}

// naturalWidth measures nodes as an HBox at natural size without
// constructing the final line box, for the first-fit width check.
func naturalWidth(nodes []node.HNode) dimen.SP {
	return node.HPack(srcref.Span{Start: srcref.None, End: srcref.None}, nodes, node.Natural, 0).Width
}

// splitParagraphRoughly implements §4.6: a first-fit, no-backtracking
// split of hlist into lines against spec, pulling any Adjust nodes out
// as separate pass-through items in source order and resolving
// inter-line baseline glue via LineSkip.
func splitParagraphRoughly(hlist []node.HNode, spec ParLineSpec, state engine.State, d *Data) []lineItem {
	var out []lineItem
	lineStart := 0
	lastFit := -1
	prevDepth := d.PrevDepth

	emit := func(end int) {
		content := withSkips(hlist[lineStart:end], spec)
		box := node.HPack(srcref.Span{Start: srcref.None, End: srcref.None}, content, node.To, spec.Width)
		if prevDepth != prevDepthIgnore {
			ls := lineSkipFromState(state)
			out = append(out, lineItem{node: ls.Resolve(prevDepth, box.Height)})
		}
		out = append(out, lineItem{node: box})
		prevDepth = box.Depth
	}

	for i := 0; i < len(hlist); i++ {
		if adj, ok := hlist[i].(node.Adjust); ok {
			for _, v := range adj.Body {
				out = append(out, lineItem{node: v})
			}
			continue
		}

		if isLegalBreak(hlist, i) {
			if naturalWidth(hlist[lineStart:i]) <= spec.Width {
				lastFit = i
			} else {
				breakAt := lastFit
				if breakAt == -1 {
					breakAt = i
				}
				emit(breakAt)
				lineStart = breakAt
				lastFit = -1
			}
		}

		if isForcedBreak(hlist[i]) {
			emit(i)
			lineStart = i + 1
			lastFit = -1
		}
	}
	if lineStart < len(hlist) {
		emit(len(hlist))
	}

	d.PrevDepth = prevDepth
	return out
}

// withSkips appends the line's leftskip/rightskip glue around its
// content; either may be the zero Glue if unset.
func withSkips(content []node.HNode, spec ParLineSpec) []node.HNode {
	out := make([]node.HNode, 0, len(content)+2)
	out = append(out, spec.LeftSkip)
	out = append(out, content...)
	out = append(out, spec.RightSkip)
	return out
}

func lineSkipFromState(state engine.State) node.LineSkip {
	return node.LineSkip{
		BaselineSkip:  glueFromState(state, "baselineskip"),
		LineSkip:      glueFromState(state, "lineskip"),
		LineSkipLimit: state.Dimen("lineskiplimit"),
	}
}
