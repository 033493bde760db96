// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"testing"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/engine/memstate"
	"github.com/go-tex/stomach/engine/strmouth"
	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/mode"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/ttoken"
)

type recordingDiag struct {
	warnings, errors []string
}

func (d *recordingDiag) Warningf(format string, args ...any) {
	d.warnings = append(d.warnings, format)
}
func (d *recordingDiag) Errorf(format string, args ...any) {
	d.errors = append(d.errors, format)
}

func newRefs(toks ttoken.List) (*Data, *engine.Refs, *recordingDiag) {
	st := memstate.New()
	st.SetDimen("parindent", dimen.Pt(20), true)
	st.SetDimen("hsize", dimen.Pt(345), true)
	st.SetGlue("baselineskip", dimen.Pt(12), 0, 0, dimen.Finite, dimen.Finite, true)

	diag := &recordingDiag{}
	refs := &engine.Refs{
		Mouth:  strmouth.New(toks),
		Gullet: strmouth.Gullet{},
		State:  st,
		Diag:   diag,
	}
	return New(), refs, diag
}

func TestModeStartsVertical(t *testing.T) {
	d, _, _ := newRefs(nil)
	if got := d.Mode(); got != mode.Vertical {
		t.Errorf("Mode() = %s, want vertical", got)
	}
}

// dispatchNextChar mimics the driving loop a real Mouth/Gullet caller
// runs: it reads the next token from refs.Mouth itself (so a
// maybeSwitchMode requeue is visible to the next read, exactly as it
// would be for a real caller), and re-dispatches up to once more if
// the first attempt only opened or closed a paragraph.
func dispatchNextChar(t *testing.T, d *Data, refs *engine.Refs, face font.Face) {
	t.Helper()
	for i := 0; i < 2; i++ {
		tok, ok := refs.Mouth.Next()
		if !ok {
			t.Fatal("Mouth.Next(): no more tokens")
		}
		ran := false
		err := d.DoUnexpandable(refs, "char", mode.SwitchesToHorizontalOrMath, tok, func(d *Data, refs *engine.Refs) {
			ran = true
			d.DoChar(face, dimen.Pt(10), tok.Char, 1000)
		})
		if err != nil {
			t.Fatalf("DoUnexpandable: %v", err)
		}
		if ran {
			return
		}
	}
	t.Fatal("DoChar never ran after requeue")
}

func TestCharOpensParagraphAndCloseParagraphShipsPage(t *testing.T) {
	d, refs, _ := newRefs(ttoken.List{{Kind: ttoken.Character, Char: 'A'}})
	face := font.Face{}

	dispatchNextChar(t, d, refs, face)
	if got := d.Mode(); got != mode.Horizontal {
		t.Fatalf("Mode() after a bare character = %s, want horizontal", got)
	}

	var shipped *node.Box
	d.OutputRoutine = func(d *Data, refs *engine.Refs, box255 *node.Box) bool {
		shipped = box255
		return true
	}
	d.CloseParagraph(refs)
	d.Flush(refs)

	if shipped == nil {
		t.Fatal("OutputRoutine was never invoked")
	}
	if got := d.Mode(); got != mode.Vertical {
		t.Errorf("Mode() after CloseParagraph+Flush = %s, want vertical", got)
	}
	if d.PrevGraf == 0 {
		t.Error("PrevGraf was not updated by CloseParagraph")
	}
}

func TestIndentAndNoindentAreConsumedNotRequeued(t *testing.T) {
	// \indent, 'A': \indent must be consumed by OpenParagraph (one
	// indent box, no second dispatch of \indent itself), leaving 'A'
	// as the very next token off the Mouth.
	toks := ttoken.List{
		{Kind: ttoken.Primitive, Name: "indent"},
		{Kind: ttoken.Character, Char: 'A'},
	}
	d, refs, _ := newRefs(toks)

	indentTok, _ := refs.Mouth.Next()
	ran := false
	err := d.DoUnexpandable(refs, "indent", mode.SwitchesToHorizontal, indentTok, func(d *Data, refs *engine.Refs) {
		ran = true
	})
	if err != nil {
		t.Fatalf("DoUnexpandable(\\indent): %v", err)
	}
	if ran {
		t.Error("\\indent's apply body ran; it should only open the paragraph")
	}

	top := d.OpenLists[len(d.OpenLists)-1]
	if len(top.HList) != 1 {
		t.Fatalf("paragraph HList after \\indent = %d nodes, want exactly 1 (the indent box)", len(top.HList))
	}
	if _, ok := top.HList[0].(*node.Box); !ok {
		t.Errorf("paragraph HList[0] = %T, want *node.Box", top.HList[0])
	}

	next, ok := refs.Mouth.Next()
	if !ok || next.Kind != ttoken.Character || next.Char != 'A' {
		t.Errorf("Mouth.Next() after \\indent = %v, %v, want the following 'A' (no \\indent requeue)", next, ok)
	}

	// \noindent on a fresh paragraph: consumed, no indent box at all.
	d2, refs2, _ := newRefs(ttoken.List{
		{Kind: ttoken.Primitive, Name: "noindent"},
		{Kind: ttoken.Character, Char: 'B'},
	})
	noindentTok, _ := refs2.Mouth.Next()
	if err := d2.DoUnexpandable(refs2, "noindent", mode.SwitchesToHorizontal, noindentTok, func(d *Data, refs *engine.Refs) {
		t.Error("\\noindent's apply body ran; it should only open the paragraph")
	}); err != nil {
		t.Fatalf("DoUnexpandable(\\noindent): %v", err)
	}
	top2 := d2.OpenLists[len(d2.OpenLists)-1]
	if len(top2.HList) != 0 {
		t.Errorf("paragraph HList after \\noindent = %d nodes, want 0", len(top2.HList))
	}
	next2, ok := refs2.Mouth.Next()
	if !ok || next2.Kind != ttoken.Character || next2.Char != 'B' {
		t.Errorf("Mouth.Next() after \\noindent = %v, %v, want the following 'B' (no \\noindent requeue)", next2, ok)
	}
}

func TestMaybeDoOutputIgnoresStaleLastPenalty(t *testing.T) {
	// A forced penalty that shipped a page must not leave the next
	// page's very first node triggering output again: the decision has
	// to come from the node just added, not from the persistent
	// Data.LastPenalty field (which \lastpenalty still needs to read
	// the last horizontal penalty from, independent of page ships).
	d, refs, _ := newRefs(nil)
	d.PageGoal = dimen.Pt(1000)
	d.LastPenalty = -10000 // simulates a prior forced page ship

	shipped := 0
	d.OutputRoutine = func(d *Data, refs *engine.Refs, box255 *node.Box) bool {
		shipped++
		return true
	}

	d.addNodeV(refs, node.Kern{Width: dimen.Pt(1)})

	if shipped != 0 {
		t.Errorf("OutputRoutine invoked %d times on a single small Kern with a stale LastPenalty; want 0", shipped)
	}
	if d.PageTotal != dimen.Pt(1) {
		t.Errorf("PageTotal = %v, want 1pt (the Kern should still be on the page)", d.PageTotal)
	}
}

func TestMathOnlyCommandInVerticalModeIsRejected(t *testing.T) {
	d, refs, diag := newRefs(nil)
	tok := ttoken.Token{Kind: ttoken.Primitive, Name: "kern"}

	ran := false
	err := d.DoUnexpandable(refs, "kern", mode.MathOnly, tok, func(d *Data, refs *engine.Refs) {
		ran = true
	})
	if err == nil {
		t.Fatal("DoUnexpandable: want an error for a math-only command in vertical mode")
	}
	if ran {
		t.Error("apply ran despite maybeSwitchMode rejecting the command")
	}
	if len(diag.errors) != 1 {
		t.Errorf("Diag.Errorf called %d times, want 1", len(diag.errors))
	}
}

func TestAfterassignmentRequeuesOnce(t *testing.T) {
	d, refs, _ := newRefs(nil)
	marker := ttoken.Token{Kind: ttoken.Primitive, Name: "marker"}
	d.SetAfterassignment(marker)

	err := d.DoAssignment(refs, func(global bool) error {
		refs.State.SetInt("count0", 1, global)
		return nil
	}, false)
	if err != nil {
		t.Fatalf("DoAssignment: %v", err)
	}

	tok, ok := refs.Mouth.Next()
	if !ok || tok.Name != "marker" {
		t.Fatalf("Mouth.Next() = %v, %v, want the requeued afterassignment token", tok, ok)
	}
	if d.Afterassignment != nil {
		t.Error("Afterassignment slot not cleared after requeuing")
	}
}

func TestEveryTopUpdatesMouthStartRef(t *testing.T) {
	toks := ttoken.List{
		{Kind: ttoken.Character, Char: 'a'},
		{Kind: ttoken.Character, Char: 'b'},
	}
	d, refs, _ := newRefs(toks)
	refs.Mouth.Next() // consume 'a'

	// Dispatching 'b' opens the paragraph and requeues it (mode starts
	// vertical); EveryTop runs again on the redispatch, so StartRef
	// tracks the position of that second read, not the first.
	dispatchNextChar(t, d, refs, font.Face{})
	if got := refs.Mouth.StartRef().Offset; got != 2 {
		t.Errorf("StartRef().Offset = %d, want 2 (EveryTop moved it to the redispatched command)", got)
	}
}
