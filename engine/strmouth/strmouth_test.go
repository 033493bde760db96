// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strmouth

import (
	"testing"

	"github.com/go-tex/stomach/ttoken"
)

func TestNextInOrder(t *testing.T) {
	m := New(ttoken.List{
		{Kind: ttoken.Character, Char: 'a'},
		{Kind: ttoken.Character, Char: 'b'},
	})
	tok, ok := m.Next()
	if !ok || tok.Char != 'a' {
		t.Fatalf("Next() = %v, %v, want 'a', true", tok, ok)
	}
	tok, ok = m.Next()
	if !ok || tok.Char != 'b' {
		t.Fatalf("Next() = %v, %v, want 'b', true", tok, ok)
	}
	if _, ok := m.Next(); ok {
		t.Fatal("Next() at end of input reported ok")
	}
}

func TestPushReturnsMostRecentFirst(t *testing.T) {
	m := New(ttoken.List{{Kind: ttoken.Character, Char: 'x'}})
	m.Push(ttoken.Token{Kind: ttoken.Character, Char: 'z'})
	m.Push(ttoken.Token{Kind: ttoken.Character, Char: 'y'})

	tok, _ := m.Next()
	if tok.Char != 'y' {
		t.Errorf("Next() = %q, want 'y' (most recently pushed)", tok.Char)
	}
	tok, _ = m.Next()
	if tok.Char != 'z' {
		t.Errorf("Next() = %q, want 'z'", tok.Char)
	}
	tok, _ = m.Next()
	if tok.Char != 'x' {
		t.Errorf("Next() = %q, want 'x' (original stream resumes)", tok.Char)
	}
}

func TestUpdateStartRefTracksPosition(t *testing.T) {
	m := New(ttoken.List{
		{Kind: ttoken.Character, Char: 'a'},
		{Kind: ttoken.Character, Char: 'b'},
	})
	m.Next()
	m.UpdateStartRef()
	m.Next()

	start := m.StartRef()
	if start.Offset != 1 {
		t.Errorf("StartRef().Offset = %d, want 1", start.Offset)
	}
	if got := m.CurrentSourceRef().Offset; got != 2 {
		t.Errorf("CurrentSourceRef().Offset = %d, want 2", got)
	}
}

func TestGulletScanInt(t *testing.T) {
	m := New(ttoken.List{{Kind: ttoken.Primitive, Name: "42"}})
	g := Gullet{}
	v, err := g.ScanInt(m)
	if err != nil {
		t.Fatalf("ScanInt: %v", err)
	}
	if v != 42 {
		t.Errorf("ScanInt = %d, want 42", v)
	}
}

func TestGulletScanKeywordPushesBackOnMismatch(t *testing.T) {
	m := New(ttoken.List{{Kind: ttoken.Primitive, Name: "to"}})
	g := Gullet{}
	if g.ScanKeyword(m, "spread") {
		t.Fatal("ScanKeyword matched the wrong keyword")
	}
	tok, ok := m.Next()
	if !ok || tok.Name != "to" {
		t.Fatalf("token not pushed back after mismatch: %v, %v", tok, ok)
	}
}

func TestGulletScanTokenList(t *testing.T) {
	m := New(ttoken.List{
		{Kind: ttoken.Character, Char: 'a'},
		{Kind: ttoken.Character, Char: 'b'},
		{Kind: ttoken.Primitive, Name: "}"},
		{Kind: ttoken.Character, Char: 'c'},
	})
	g := Gullet{}
	toks, err := g.ScanTokenList(m)
	if err != nil {
		t.Fatalf("ScanTokenList: %v", err)
	}
	if len(toks) != 2 || toks[0].Char != 'a' || toks[1].Char != 'b' {
		t.Errorf("ScanTokenList = %v, want [a b]", toks)
	}
	tok, ok := m.Next()
	if !ok || tok.Char != 'c' {
		t.Errorf("token after closing brace not left in stream: %v, %v", tok, ok)
	}
}
