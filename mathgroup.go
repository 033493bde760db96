// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/ttoken"
)

// EveryTop is RusTeX's Stomach::every_top (§13): called once before
// each unexpandable command is dispatched, it moves the Mouth's
// notion of "where the current command began" up to the present read
// position, so a later diagnostic or source reference reports the
// command that is actually running rather than a stale one.
func (d *Data) EveryTop(refs *engine.Refs) {
	refs.Mouth.UpdateStartRef()
}

// OpenMath pushes the top-level math frame a `$`/`$$`/`\[` entry
// point opens, brackets it with a MathOn marker in the enclosing
// horizontal (or math, for a nested display inside text) list, and
// records display so Mode's scan toward the base of the stack reports
// display-math or inline-math correctly for everything nested inside.
func (d *Data) OpenMath(refs *engine.Refs, display bool, style node.StyleVariant) {
	d.addNodeH(node.MathOn{Style: style})
	d.OpenLists = append(d.OpenLists, node.List{Kind: node.MathFrame, Display: display})
}

// CloseMath pops the top-level math frame OpenMath pushed, deposits
// its MList as an InlineMath node (unconverted — mlist-to-hlist is out
// of scope here, per the node package doc) and closes the bracket with
// a MathOff marker.
func (d *Data) CloseMath(refs *engine.Refs, style node.StyleVariant) {
	if len(d.OpenLists) == 0 || d.OpenLists[len(d.OpenLists)-1].Kind != node.MathFrame {
		panic("stomach: close_math called but innermost frame is not a math frame")
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]
	d.addNodeH(node.InlineMath{Style: style, MList: top.MList})
	d.addNodeH(node.MathOff{})
}

// activeMathcharClass unpacks the class nibble of an encoded mathchar
// or \delimiter value the way DoMathchar does.
func activeMathcharClass(code int) node.MathClass {
	return node.MathClass((code >> 12) & 0x7)
}

// ReadCharOrMathGroup implements read_char_or_math_group (§13 / §6):
// given the token that triggered a nucleus read (e.g. the body of
// \mathbin, the left side of a fraction), it resolves an explicit
// character, a \mathchar- or \delimiter-valued primitive straight to a
// MathChar passed to fChar; a begin-group token instead pushes a fresh
// math sub-list frame and records fGroup as the continuation
// CloseMathGroup invokes once that frame closes. Any other token is
// requeued, matching real TeX's refusal to guess at a missing nucleus.
func (d *Data) ReadCharOrMathGroup(refs *engine.Refs, tok ttoken.Token, fChar func(node.MathChar), fGroup engine.ListTarget[[]node.MathNode]) {
	switch {
	case tok.Kind == ttoken.Character:
		fChar(node.MathChar{Char: tok.Char, Face: refs.State.CurrentFont(), Class: node.ClassOrd})

	case tok.Kind == ttoken.Primitive && (tok.Name == "mathchar" || tok.Name == "delimiter"):
		code, err := refs.Gullet.ScanInt(refs.Mouth)
		if err != nil {
			refs.Diag.Errorf("%v", err)
			return
		}
		fChar(node.MathChar{
			Char:  rune(code & 0xFF),
			Face:  refs.State.CurrentFont(),
			Class: activeMathcharClass(code),
		})

	case tok.Kind == ttoken.Primitive && tok.Name == "{":
		d.OpenLists = append(d.OpenLists, node.List{Kind: node.MathFrame})
		d.PendingMathGroups = append(d.PendingMathGroups, fGroup)

	default:
		refs.Mouth.Push(tok)
	}
}

// CloseMathGroup pops the innermost frame, which must be a math
// sub-list frame opened by ReadCharOrMathGroup, and invokes its
// recorded continuation with the finished MList.
func (d *Data) CloseMathGroup(refs *engine.Refs) {
	if len(d.OpenLists) == 0 || d.OpenLists[len(d.OpenLists)-1].Kind != node.MathFrame || len(d.PendingMathGroups) == 0 {
		panic("stomach: close_math_group called with no open math sub-list frame")
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]
	target := d.PendingMathGroups[len(d.PendingMathGroups)-1]
	d.PendingMathGroups = d.PendingMathGroups[:len(d.PendingMathGroups)-1]
	target(top.MList)
}
