// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"fmt"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/mode"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/ttoken"
)

// notAllowedInMode is the mode-violation error maybe_switch_mode
// surfaces for a command with no defined meaning in the current mode.
func notAllowedInMode(name string, m mode.Mode) error {
	return fmt.Errorf("stomach: %s not allowed in %s mode", name, m)
}

// switchDecision is what maybeSwitchMode tells the caller to do with
// the triggering token.
type switchDecision int

const (
	proceed switchDecision = iota
	suppress
)

// maybeSwitchMode implements the §4.3 decision table: given the scope
// a command declares and the mode it was dispatched in, decide
// whether to run it now, open or close a paragraph and requeue it for
// later, or reject it outright.
func (d *Data) maybeSwitchMode(refs *engine.Refs, scope mode.Scope, tok ttoken.Token, name string) (switchDecision, error) {
	m := d.Mode()
	switch scope {
	case mode.Any:
		return proceed, nil

	case mode.MathOnly:
		if m.IsMath() {
			return proceed, nil
		}
		return suppress, notAllowedInMode(name, m)

	case mode.SwitchesToVertical:
		if m.IsVertical() {
			return proceed, nil
		}
		if m.IsHorizontal() {
			refs.Mouth.Push(tok)
			d.closeParagraph(refs)
			return suppress, nil
		}
		return suppress, notAllowedInMode(name, m)

	case mode.SwitchesToHorizontal:
		if m.IsVertical() {
			d.openParagraph(refs, tok)
			return suppress, nil
		}
		if m.IsHorizontal() {
			return proceed, nil
		}
		return suppress, notAllowedInMode(name, m)

	case mode.SwitchesToHorizontalOrMath:
		if m.IsVertical() {
			d.openParagraph(refs, tok)
			return suppress, nil
		}
		return proceed, nil
	}
	return suppress, notAllowedInMode(name, m)
}

// DoUnexpandable runs apply if the command is permitted in the
// current mode, first letting maybeSwitchMode open or close a
// paragraph and requeue the token if the mode calls for it.
func (d *Data) DoUnexpandable(refs *engine.Refs, name string, scope mode.Scope, tok ttoken.Token, apply func(*Data, *engine.Refs)) error {
	d.EveryTop(refs)
	decision, err := d.maybeSwitchMode(refs, scope, tok, name)
	if err != nil {
		refs.Diag.Errorf("%v", err)
		return err
	}
	if decision == suppress {
		return nil
	}
	apply(d, refs)
	return nil
}

// DoAssignment runs assign, then inserts the pending afterassignment
// token (if any). Non-assignment entry points must never call this.
func (d *Data) DoAssignment(refs *engine.Refs, assign func(global bool) error, global bool) error {
	if err := assign(global); err != nil {
		return err
	}
	insertAfterassignment(d, refs)
	return nil
}

// AssignFont sets the current font in State.
func (d *Data) AssignFont(refs *engine.Refs, f font.Face, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		refs.State.SetCurrentFont(f, global)
		return nil
	}, global)
}

// registerName builds the State key for a numbered register, e.g.
// "count3" for \count3, matching how memstate keys its maps.
func registerName(kind string, idx int) string { return fmt.Sprintf("%s%d", kind, idx) }

// AssignIntRegister parses an integer via the Gullet and stores it in
// \countN.
func (d *Data) AssignIntRegister(refs *engine.Refs, idx int, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanInt(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetInt(registerName("count", idx), v, global)
		return nil
	}, global)
}

// AssignDimRegister parses a dimension via the Gullet and stores it
// in \dimenN.
func (d *Data) AssignDimRegister(refs *engine.Refs, idx int, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanDimen(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetDimen(registerName("dimen", idx), v, global)
		return nil
	}, global)
}

// AssignSkipRegister parses a glue via the Gullet and stores it in
// \skipN.
func (d *Data) AssignSkipRegister(refs *engine.Refs, idx int, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		w, st, sh, so, sho, err := refs.Gullet.ScanGlue(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetGlue(registerName("skip", idx), w, st, sh, so, sho, global)
		return nil
	}, global)
}

// AssignMuskipRegister is AssignSkipRegister's \muskipN counterpart;
// mu-unit resolution against the current math font happens in the
// Gullet, not here.
func (d *Data) AssignMuskipRegister(refs *engine.Refs, idx int, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		w, st, sh, so, sho, err := refs.Gullet.ScanGlue(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetGlue(registerName("muskip", idx), w, st, sh, so, sho, global)
		return nil
	}, global)
}

// AssignToksRegister parses a balanced token list via the Gullet and
// stores it in \toksN.
func (d *Data) AssignToksRegister(refs *engine.Refs, idx int, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanTokenList(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetToks(registerName("toks", idx), v, global)
		return nil
	}, global)
}

// AssignPrimitiveInt, AssignPrimitiveDim, AssignPrimitiveSkip,
// AssignPrimitiveMuskip and AssignPrimitiveToks are AssignIntRegister
// and friends' counterparts for named primitive parameters (e.g.
// \hsize, \parindent) rather than numbered registers.
func (d *Data) AssignPrimitiveInt(refs *engine.Refs, name string, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanInt(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetInt(name, v, global)
		return nil
	}, global)
}

func (d *Data) AssignPrimitiveDim(refs *engine.Refs, name string, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanDimen(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetDimen(name, v, global)
		return nil
	}, global)
}

func (d *Data) AssignPrimitiveSkip(refs *engine.Refs, name string, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		w, st, sh, so, sho, err := refs.Gullet.ScanGlue(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetGlue(name, w, st, sh, so, sho, global)
		return nil
	}, global)
}

func (d *Data) AssignPrimitiveMuskip(refs *engine.Refs, name string, global bool) error {
	return d.AssignPrimitiveSkip(refs, name, global)
}

func (d *Data) AssignPrimitiveToks(refs *engine.Refs, name string, global bool) error {
	return d.DoAssignment(refs, func(global bool) error {
		v, err := refs.Gullet.ScanTokenList(refs.Mouth)
		if err != nil {
			return err
		}
		refs.State.SetToks(name, v, global)
		return nil
	}, global)
}

// DoWhatsit calls read to produce a custom node, then appends it
// wrapped as a Whatsit through whichever family variant matches the
// current mode.
func (d *Data) DoWhatsit(refs *engine.Refs, read func(*engine.Refs) (node.CustomNode, bool, error)) error {
	cn, ok, err := read(refs)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	w := node.Whatsit{Node: cn}
	switch {
	case d.Mode().IsMath():
		d.addNodeM(node.MathWhatsit{Node: cn})
	case d.Mode().HOrM():
		d.addNodeH(w)
	default:
		d.addNodeV(refs, w)
	}
	return nil
}

// DoChar appends a Char node sized against face, updating spacefactor
// from the font's \sfcode for the character when that code is
// nonzero — \sfcode lookup itself is a Gullet/State concern and is
// passed in already resolved as sfCode. Full plain-TeX spacefactor
// handling (resetting to 1000 for ordinary letters, ligature/kern
// interaction) is out of scope here per §4.2's "V2" deferral.
func (d *Data) DoChar(face font.Face, size dimen.SP, r rune, sfCode int) {
	d.addNodeH(node.NewChar(face, size, r))
	if sfCode != 0 {
		d.SpaceFactor = sfCode
	}
}

// DoKern appends a fixed-width Kern to whichever list the current
// mode points at, the way \kern's apply body does once maybeSwitchMode
// has let it proceed.
func (d *Data) DoKern(refs *engine.Refs, width dimen.SP) {
	k := node.Kern{Width: width}
	if d.Mode().HOrM() {
		d.addNodeH(k)
		return
	}
	d.addNodeV(refs, k)
}

// DoCharInMath wraps r as an ordinary (class Ord) atom with a simple
// nucleus at family 0 and appends it to the innermost math list.
func (d *Data) DoCharInMath(face font.Face, r rune) {
	d.addNodeM(node.Atom{
		Class:   node.ClassOrd,
		Nucleus: node.SimpleNucleus{Char: r, Face: face, Class: node.ClassOrd},
	})
}

// activeCharRequeueCode is TeX's sentinel \mathcode value (0x8000)
// meaning "this character is active; look it up as a command instead
// of a math character".
const activeCharRequeueCode = 0x8000

// DoMathchar implements do_mathchar: if code is the active-character
// sentinel, the character is requeued as an active token for the
// Gullet to re-resolve; otherwise the class is unpacked from the
// encoded (class, family, slot) triple and a MathChar for ch in face
// is appended to the math list. The family and slot bits are not
// stored; the character is ch, not the slot.
func (d *Data) DoMathchar(refs *engine.Refs, code int, ch rune, face font.Face) {
	if code == activeCharRequeueCode {
		refs.Mouth.Push(ttoken.Token{Kind: ttoken.Active, Char: ch})
		return
	}
	class := node.MathClass((code >> 12) & 0x7)
	d.addNodeM(node.MathChar{Char: ch, Face: face, Class: class})
}
