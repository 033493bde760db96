// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command texdemo drives the Stomach from a small, hand-built command
// stream to demonstrate paragraph opening, indentation and the
// paragraph-opening mode switch a \kern triggers in vertical mode end
// to end, without a real Mouth/Gullet
// pipeline in front of it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-tex/stomach"
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/engine/memstate"
	"github.com/go-tex/stomach/engine/strmouth"
	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/mode"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/ttoken"
)

type stderrDiag struct{}

func (stderrDiag) Warningf(format string, args ...any) { fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...) }
func (stderrDiag) Errorf(format string, args ...any)   { fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...) }

func main() {
	scenario := flag.String("scenario", "s1", "demo scenario to run: s1 (open/close paragraph) or s4 (mode rejection)")
	flag.Parse()

	st := memstate.New()
	st.SetDimen("parindent", dimen.Pt(20), true)
	st.SetDimen("hsize", dimen.Pt(345), true)
	st.SetDimen("baselineskip", dimen.Pt(12), true)
	st.SetGlue("baselineskip", dimen.Pt(12), 0, 0, dimen.Finite, dimen.Finite, true)

	var toks ttoken.List
	switch *scenario {
	case "s1":
		toks = ttoken.List{
			{Kind: ttoken.Primitive, Name: "noindent"},
			{Kind: ttoken.Character, Char: 'A'},
			{Kind: ttoken.Primitive, Name: "par"},
		}
	case "s4":
		toks = ttoken.List{
			{Kind: ttoken.Primitive, Name: "kern"},
		}
	default:
		log.Fatalf("unknown scenario %q", *scenario)
	}

	m := strmouth.New(toks)
	refs := &engine.Refs{
		Mouth:  m,
		Gullet: strmouth.Gullet{},
		State:  st,
		Diag:   stderrDiag{},
	}

	data := stomach.New()
	face := font.Face{}

	data.OutputRoutine = func(d *stomach.Data, refs *engine.Refs, box255 *node.Box) bool {
		fmt.Println("--- shipout box255 ---")
		printBox(box255, 1)
		return true
	}

	for {
		tok, ok := m.Next()
		if !ok {
			break
		}
		switch {
		case tok.Kind == ttoken.Character:
			// A bare character in vertical mode opens a paragraph
			// (SwitchesToHorizontalOrMath), the way plain text does.
			data.DoUnexpandable(refs, "char", mode.SwitchesToHorizontalOrMath, tok, func(d *stomach.Data, refs *engine.Refs) {
				d.DoChar(face, dimen.Pt(10), tok.Char, 1000)
			})
		case tok.Name == "par":
			data.CloseParagraph(refs)
		case tok.Name == "noindent" || tok.Name == "indent":
			// maybeSwitchMode's peek at this very token (inside
			// OpenParagraph) is what decides indent-box behavior; the
			// apply body itself has nothing left to do once dispatched
			// back in horizontal mode.
			data.DoUnexpandable(refs, tok.Name, mode.SwitchesToHorizontal, tok, func(d *stomach.Data, refs *engine.Refs) {})
		case tok.Name == "kern":
			data.DoUnexpandable(refs, "kern", mode.SwitchesToHorizontal, tok, func(d *stomach.Data, refs *engine.Refs) {
				d.DoKern(refs, dimen.Pt(1))
			})
		default:
			log.Fatalf("texdemo: no dispatch rule for token %v", tok)
		}
	}
	data.Flush(refs)

	// Flush's forced penalty ships whatever accumulated on the page
	// through OutputRoutine above, leaving data.Page empty by the time
	// control returns here; the shipped box is what matters to report.
	fmt.Printf("mode: %s\n", data.Mode())
	fmt.Printf("prevgraf: %d\n", data.PrevGraf)
}

// printBox prints n's node types and, for boxes, their packaged
// dimensions, recursing into nested H/V lists at increasing indent.
func printBox(b *node.Box, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	fmt.Printf("%sbox width=%.2fpt height=%.2fpt depth=%.2fpt\n", pad, b.Width.Points(), b.Height.Points(), b.Depth.Points())
	for _, n := range b.VList {
		if inner, ok := n.(*node.Box); ok {
			printBox(inner, indent+1)
			continue
		}
		fmt.Printf("%s  %T\n", pad, n)
	}
	for _, n := range b.HList {
		if inner, ok := n.(*node.Box); ok {
			printBox(inner, indent+1)
			continue
		}
		fmt.Printf("%s  %T\n", pad, n)
	}
}
