// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strmouth provides a default engine.Mouth and engine.Gullet
// pair that drive the Stomach from a pre-tokenized ttoken.List rather
// than raw input text: the full tokenization and macro-expansion
// pipeline these stand in for is out of scope, but a command stream
// still has to come from somewhere to exercise the Stomach end to
// end, and a straight ttoken.List is the narrowest thing that can
// play that role honestly.
package strmouth

import (
	"fmt"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/srcref"
	"github.com/go-tex/stomach/ttoken"
)

// Mouth reads tokens off a fixed ttoken.List, supporting Push for the
// single-token pushback the Stomach needs (e.g. requeuing an active
// character at a different catcode). Source positions are synthesized
// from the slice index: there is no real file or line data behind a
// pre-tokenized stream, so File is always 0 and Line tracks the index
// one-for-one, which is enough for a diagnostic to point at "the n-th
// token" without claiming a fidelity this Mouth cannot offer.
type Mouth struct {
	tokens []ttoken.Token
	pos    int
	pushed []ttoken.Token

	start srcref.Ref
}

// New returns a Mouth that yields toks in order.
func New(toks ttoken.List) *Mouth {
	return &Mouth{tokens: toks}
}

func (m *Mouth) Next() (ttoken.Token, bool) {
	if n := len(m.pushed); n > 0 {
		t := m.pushed[n-1]
		m.pushed = m.pushed[:n-1]
		return t, true
	}
	if m.pos >= len(m.tokens) {
		return ttoken.Token{}, false
	}
	t := m.tokens[m.pos]
	m.pos++
	return t, true
}

func (m *Mouth) Push(t ttoken.Token) {
	m.pushed = append(m.pushed, t)
}

// CurrentSourceRef reports the position of the token Next will return,
// net of any pushed-back tokens: the index one-past the last consumed
// token, minus whatever has been pushed back onto it.
func (m *Mouth) CurrentSourceRef() srcref.Ref {
	pos := m.pos - len(m.pushed)
	return srcref.Ref{File: 0, Offset: pos, Line: pos}
}

// StartRef reports the position UpdateStartRef last recorded.
func (m *Mouth) StartRef() srcref.Ref {
	return m.start
}

// UpdateStartRef moves StartRef to the current read position.
func (m *Mouth) UpdateStartRef() {
	m.start = m.CurrentSourceRef()
}

// LineNumber reports CurrentSourceRef's synthesized line.
func (m *Mouth) LineNumber() int {
	return m.CurrentSourceRef().Line
}

// Gullet is a no-expansion engine.Gullet: every primitive it is asked
// to expand is returned unexpanded, and its scanners read a single
// token's worth of already-resolved value, the way a fully expanded
// command stream would present one (a real Gullet would macro-expand
// and then parse a run of digit/unit tokens; that parsing is out of
// scope, so this Gullet expects the Mouth to already hand it one
// token per scanned quantity).
type Gullet struct{}

// Expand returns the next token from m unchanged: this Gullet never
// macro-expands, since the command stream strmouth drives the Stomach
// from is assumed already expanded.
func (Gullet) Expand(m engine.Mouth) (ttoken.Token, bool) {
	return m.Next()
}

// ScanInt reads one token and requires it to be a primitive named
// like "42" or "-3" (i.e. carrying its decimal value as its Name),
// the simplest encoding that lets a hand-built command stream supply
// an integer without a real number scanner.
func (Gullet) ScanInt(m engine.Mouth) (int, error) {
	t, ok := m.Next()
	if !ok {
		return 0, fmt.Errorf("strmouth: ScanInt: end of input")
	}
	var v int
	if _, err := fmt.Sscanf(t.Name, "%d", &v); err != nil {
		return 0, fmt.Errorf("strmouth: ScanInt: %q is not an integer: %w", t.Name, err)
	}
	return v, nil
}

// ScanDimen reads one token whose Name is a point-size literal like
// "12.0" and returns it as dimen.Pt of that value.
func (Gullet) ScanDimen(m engine.Mouth) (dimen.SP, error) {
	t, ok := m.Next()
	if !ok {
		return 0, fmt.Errorf("strmouth: ScanDimen: end of input")
	}
	var v float64
	if _, err := fmt.Sscanf(t.Name, "%g", &v); err != nil {
		return 0, fmt.Errorf("strmouth: ScanDimen: %q is not a dimension: %w", t.Name, err)
	}
	return dimen.Pt(v), nil
}

// ScanGlue reads a plain dimension and reports it as fixed (non
// stretching/shrinking) glue; stretch/shrink-bearing glue literals are
// out of scope for this minimal Gullet.
func (g Gullet) ScanGlue(m engine.Mouth) (width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder, err error) {
	width, err = g.ScanDimen(m)
	return width, 0, 0, dimen.Finite, dimen.Finite, err
}

// ScanTokenList reads tokens until an Rbrace-kinded marker (Name
// "}") and returns everything in between; it is a minimal stand-in
// for a real Gullet's balanced-group reader.
func (Gullet) ScanTokenList(m engine.Mouth) (ttoken.List, error) {
	var out ttoken.List
	for {
		t, ok := m.Next()
		if !ok {
			return out, fmt.Errorf("strmouth: ScanTokenList: end of input before closing brace")
		}
		if t.Kind == ttoken.Primitive && t.Name == "}" {
			return out, nil
		}
		out = append(out, t)
	}
}

// ScanKeyword consumes and reports whether the next token is the
// primitive named kw, pushing it back (unconsumed) if not.
func (Gullet) ScanKeyword(m engine.Mouth, kw string) bool {
	t, ok := m.Next()
	if !ok {
		return false
	}
	if t.Kind == ttoken.Primitive && t.Name == kw {
		return true
	}
	m.Push(t)
	return false
}
