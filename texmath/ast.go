// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texmath

import "fmt"

// Node is one parsed element of a math formula, narrowed from the
// teacher's internal/latex/ast.Node (which also covers macro
// arguments, optional arguments, running text and free-standing
// identifiers) down to what a math-only grammar needs: macros with
// brace-delimited arguments, bare groups, atoms, and sub/superscripts.
type Node interface {
	isNode()
}

// List is a sequence of sibling nodes, e.g. a formula's top-level
// content or a group's interior.
type List []Node

func (List) isNode() {}

// Macro is a control sequence together with the brace-delimited
// arguments immediately following it (`\frac{a}{b}`, `\sigma` with
// zero arguments).
type Macro struct {
	Name string
	Args []List
}

func (*Macro) isNode() {}

// Group is a bare `{...}` not immediately preceded by a macro name,
// e.g. the body of a `$...$` region or an explicit grouping for
// precedence.
type Group struct {
	List List
}

func (*Group) isNode() {}

// Atom is a single non-macro character: a letter, digit run, or other
// symbol, the math-list nucleus a character or digit token resolves
// to once the Stomach's DoCharInMath takes over.
type Atom struct {
	Text string
}

func (*Atom) isNode() {}

// Sup and Sub wrap the node immediately following `^`/`_`: a bare atom
// if unbraced (`x^2`), or a Group's contents if braced (`x^{2n}`).
type Sup struct{ Node Node }
type Sub struct{ Node Node }

func (*Sup) isNode() {}
func (*Sub) isNode() {}

// Print writes a debug rendering of node to a string, in the
// teacher's ast.Print style; nothing else in this module calls it.
func Print(node Node) string {
	switch n := node.(type) {
	case List:
		s := "List{"
		for i, c := range n {
			if i > 0 {
				s += ", "
			}
			s += Print(c)
		}
		return s + "}"
	case *Macro:
		s := fmt.Sprintf("Macro{%q", n.Name)
		for _, a := range n.Args {
			s += ", " + Print(a)
		}
		return s + "}"
	case *Group:
		return "Group{" + Print(n.List) + "}"
	case *Atom:
		return fmt.Sprintf("Atom{%q}", n.Text)
	case *Sup:
		return "Sup{" + Print(n.Node) + "}"
	case *Sub:
		return "Sub{" + Print(n.Node) + "}"
	default:
		panic(fmt.Errorf("texmath: unknown node %T", node))
	}
}
