// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texmath

import "fmt"

// Parse lexes and parses src (the content between a pair of `$` or
// `$$` delimiters, not including them) into a List of top-level
// nodes.
func Parse(src string) (List, error) {
	p := &parser{sc: newScanner(src)}
	p.advance()
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EOF {
		return nil, fmt.Errorf("texmath: unexpected %v %q at %d", p.tok.Kind, p.tok.Text, p.tok.Pos)
	}
	return list, nil
}

type parser struct {
	sc  *scanner
	tok Token
}

func (p *parser) advance() { p.tok = p.sc.Next() }

// parseList parses a run of sibling nodes until EOF or an unmatched
// Rbrace, which the caller (parseGroup) consumes itself.
func (p *parser) parseList() (List, error) {
	var out List
	for {
		switch p.tok.Kind {
		case EOF, Rbrace:
			return out, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

// parseNode parses one atom/macro/group and then folds in any
// immediately following `_`/`^` as a Sub/Sup wrapping it, matching
// TeX's own left-to-right attachment of sub/superscripts to the
// preceding nucleus.
func (p *parser) parseNode() (Node, error) {
	var n Node
	switch p.tok.Kind {
	case Macro:
		m, err := p.parseMacro()
		if err != nil {
			return nil, err
		}
		n = m
	case Lbrace:
		g, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		n = g
	case Digit, Letter, Other:
		n = &Atom{Text: p.tok.Text}
		p.advance()
	default:
		return nil, fmt.Errorf("texmath: unexpected %v %q at %d", p.tok.Kind, p.tok.Text, p.tok.Pos)
	}

	for p.tok.Kind == Underscore || p.tok.Kind == Hat {
		sup := p.tok.Kind == Hat
		p.advance()
		arg, err := p.parseScriptArg()
		if err != nil {
			return nil, err
		}
		if sup {
			n = &Sup{Node: n}
			n.(*Sup).Node = arg
		} else {
			n = &Sub{Node: n}
			n.(*Sub).Node = arg
		}
	}
	return n, nil
}

// parseScriptArg parses the single node a `_`/`^` attaches to: a
// braced group's contents if present, otherwise the one following
// atom/macro.
func (p *parser) parseScriptArg() (Node, error) {
	if p.tok.Kind == Lbrace {
		g, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		return g.List, nil
	}
	return p.parseAtomOrMacro()
}

func (p *parser) parseAtomOrMacro() (Node, error) {
	switch p.tok.Kind {
	case Macro:
		return p.parseMacro()
	case Digit, Letter, Other:
		n := &Atom{Text: p.tok.Text}
		p.advance()
		return n, nil
	default:
		return nil, fmt.Errorf("texmath: expected an atom after sub/superscript, got %v at %d", p.tok.Kind, p.tok.Pos)
	}
}

// parseMacro reads a control sequence and greedily consumes any
// immediately following `{...}` groups as its arguments; with no
// macro-argument-count table, any number of trailing brace groups
// attach, which is enough to parse `\frac{a}{b}`-shaped input without
// needing to know \frac takes exactly two arguments.
func (p *parser) parseMacro() (*Macro, error) {
	name := p.tok.Text
	p.advance()
	m := &Macro{Name: name}
	for p.tok.Kind == Lbrace {
		g, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		m.Args = append(m.Args, g.List)
	}
	return m, nil
}

func (p *parser) parseGroup() (*Group, error) {
	p.advance() // consume '{'
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != Rbrace {
		return nil, fmt.Errorf("texmath: unclosed group")
	}
	p.advance() // consume '}'
	return &Group{List: list}, nil
}
