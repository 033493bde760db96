// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texmath

import (
	"testing"

	"github.com/go-tex/stomach/ttoken"
)

func TestScannerKinds(t *testing.T) {
	sc := newScanner(`\sigma_1 = 22x`)
	var got []Kind
	for {
		tok := sc.Next()
		if tok.Kind == EOF {
			break
		}
		got = append(got, tok.Kind)
	}
	want := []Kind{Macro, Underscore, Digit, Other, Digit, Letter}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScannerComment(t *testing.T) {
	sc := newScanner("a % boo is 42\nb")
	first := sc.Next()
	second := sc.Next()
	if first.Kind != Letter || first.Text != "a" {
		t.Fatalf("first token = %+v, want Letter \"a\"", first)
	}
	if second.Kind != Letter || second.Text != "b" {
		t.Fatalf("second token = %+v, want Letter \"b\" (comment not skipped)", second)
	}
}

func TestParseMacroWithArgs(t *testing.T) {
	list, err := Parse(`\frac{a}{b}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(list))
	}
	m, ok := list[0].(*Macro)
	if !ok {
		t.Fatalf("top-level node is %T, want *Macro", list[0])
	}
	if m.Name != "frac" {
		t.Errorf("macro name = %q, want %q", m.Name, "frac")
	}
	if len(m.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(m.Args))
	}
}

func TestParseSuperscript(t *testing.T) {
	list, err := Parse(`x^{2n}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(list))
	}
	sup, ok := list[0].(*Sup)
	if !ok {
		t.Fatalf("top-level node is %T, want *Sup", list[0])
	}
	inner, ok := sup.Node.(List)
	if !ok || len(inner) != 2 {
		t.Fatalf("Sup.Node = %#v, want a 2-element List", sup.Node)
	}
}

func TestParseUnclosedGroup(t *testing.T) {
	if _, err := Parse(`\sqrt{x`); err == nil {
		t.Fatal("Parse succeeded on an unclosed group, want error")
	}
}

func TestTokensFlattensCharactersAndMacros(t *testing.T) {
	toks, err := Tokens(`x^2`)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := ttoken.List{
		{Kind: ttoken.Character, Char: 'x'},
		{Kind: ttoken.Primitive, Name: "^"},
		{Kind: ttoken.Character, Char: '2'},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(toks), toks, len(want), want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokensMacroArgsBracketed(t *testing.T) {
	toks, err := Tokens(`\frac{a}{b}`)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := ttoken.List{
		{Kind: ttoken.Primitive, Name: "frac"},
		{Kind: ttoken.Primitive, Name: "{"},
		{Kind: ttoken.Character, Char: 'a'},
		{Kind: ttoken.Primitive, Name: "}"},
		{Kind: ttoken.Primitive, Name: "{"},
		{Kind: ttoken.Character, Char: 'b'},
		{Kind: ttoken.Primitive, Name: "}"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d:\ngot:  %v\nwant: %v", len(toks), len(want), toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}
