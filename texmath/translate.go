// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texmath

import "github.com/go-tex/stomach/ttoken"

// Tokens parses src and flattens it into a resolved ttoken.List: the
// shape a strmouth-style pre-tokenized Mouth expects, so math source
// text can feed cmd/texdemo or a test without hand-building a token
// slice. Each rune of an Atom becomes a Character token; each Macro
// becomes a Primitive token followed by its arguments, each wrapped in
// Lbrace/Rbrace Primitive markers the same way a real Mouth reports
// `{`/`}`; Sub/Sup become Primitive("_")/Primitive("^") immediately
// followed by their flattened argument.
func Tokens(src string) (ttoken.List, error) {
	list, err := Parse(src)
	if err != nil {
		return nil, err
	}
	var out ttoken.List
	flattenList(&out, list)
	return out, nil
}

func flattenList(out *ttoken.List, list List) {
	for _, n := range list {
		flattenNode(out, n)
	}
}

func flattenNode(out *ttoken.List, n Node) {
	switch v := n.(type) {
	case *Atom:
		for _, r := range v.Text {
			*out = append(*out, ttoken.Token{Kind: ttoken.Character, Char: r})
		}
	case *Macro:
		*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: v.Name})
		for _, arg := range v.Args {
			*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "{"})
			flattenList(out, arg)
			*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "}"})
		}
	case *Group:
		*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "{"})
		flattenList(out, v.List)
		*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "}"})
	case *Sup:
		*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "^"})
		flattenNode(out, v.Node)
	case *Sub:
		*out = append(*out, ttoken.Token{Kind: ttoken.Primitive, Name: "_"})
		flattenNode(out, v.Node)
	case List:
		flattenList(out, v)
	}
}
