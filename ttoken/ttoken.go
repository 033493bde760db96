// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ttoken defines the minimal resolved-token value the Stomach
// exchanges with its Mouth/Gullet collaborators. The Mouth and Gullet
// themselves — tokenization, macro expansion, catcode resolution — are
// out of scope for this module; ttoken.Token is the narrow shape the
// Stomach needs to requeue a token or record one in a token list
// (\toks registers, \everypar, marks).
package ttoken

// Kind classifies a resolved token the way a Mouth/Gullet would report
// it after catcode lookup, without this module needing to know how
// that lookup happened.
type Kind int

const (
	Other Kind = iota
	Character
	Primitive
	Active
)

// Token is a single resolved token: either a character with a command
// code, or a reference to a named primitive.
type Token struct {
	Kind Kind
	Char rune
	Name string
}

func (t Token) String() string {
	if t.Kind == Primitive {
		return `\` + t.Name
	}
	return string(t.Char)
}

// List is a balanced token list, e.g. the contents of a \toks register
// or a mark.
type List []Token

func (l List) String() string {
	s := ""
	for _, t := range l {
		s += t.String()
	}
	return s
}
