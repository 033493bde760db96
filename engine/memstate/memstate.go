// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memstate provides a default, in-memory engine.State: a
// grouped symbol table backed by plain maps, snapshotted on
// PushGroup and restored on PopGroup for every assignment that was
// not made with \global.
package memstate

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/ttoken"
)

type glueVal struct {
	width, stretch, shrink    dimen.SP
	stretchOrder, shrinkOrder dimen.GlueOrder
}

// snapshot is the state of every register table as of a PushGroup
// call, restored verbatim by the matching PopGroup unless a \global
// assignment inside the group wrote through to it.
type snapshot struct {
	ints   map[string]int
	dimens map[string]dimen.SP
	glues  map[string]glueVal
	toks   map[string]ttoken.List
	font   font.Face
}

// State is a memstate-backed engine.State. Use New to construct one;
// the zero value has nil register tables and panics on its first
// assignment. PopGroup with no open group is a no-op.
type State struct {
	ints    map[string]int
	dimens  map[string]dimen.SP
	glues   map[string]glueVal
	toks    map[string]ttoken.List
	curFont font.Face

	groups []snapshot
}

// New returns a State with empty register tables and no open groups
// beyond the implicit outermost one.
func New() *State {
	return &State{
		ints:   make(map[string]int),
		dimens: make(map[string]dimen.SP),
		glues:  make(map[string]glueVal),
		toks:   make(map[string]ttoken.List),
	}
}

func (s *State) PushGroup() {
	s.groups = append(s.groups, snapshot{
		ints:   maps.Clone(s.ints),
		dimens: maps.Clone(s.dimens),
		glues:  maps.Clone(s.glues),
		toks:   maps.Clone(s.toks),
		font:   s.curFont,
	})
}

// PopGroup restores every register table to its value as of the
// matching PushGroup, except for keys a \global assignment inside the
// group wrote through to this snapshot (see writeThrough).
func (s *State) PopGroup() {
	if len(s.groups) == 0 {
		return
	}
	top := s.groups[len(s.groups)-1]
	s.groups = s.groups[:len(s.groups)-1]

	s.ints = top.ints
	s.dimens = top.dimens
	s.glues = top.glues
	s.toks = top.toks
	s.curFont = top.font
}

// writeThrough applies a \global assignment to every snapshot on the
// group stack as well as the live table, so that a later PopGroup
// restores the global value instead of reverting past it.
func writeThrough[V any](groups []snapshot, table func(*snapshot) map[string]V, name string, v V) {
	for i := range groups {
		table(&groups[i])[name] = v
	}
}

func (s *State) Int(name string) int { return s.ints[name] }

func (s *State) SetInt(name string, v int, global bool) {
	s.ints[name] = v
	if global {
		writeThrough(s.groups, func(sn *snapshot) map[string]int { return sn.ints }, name, v)
	}
}

func (s *State) Dimen(name string) dimen.SP { return s.dimens[name] }

func (s *State) SetDimen(name string, v dimen.SP, global bool) {
	s.dimens[name] = v
	if global {
		writeThrough(s.groups, func(sn *snapshot) map[string]dimen.SP { return sn.dimens }, name, v)
	}
}

func (s *State) Glue(name string) (width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder) {
	g := s.glues[name]
	return g.width, g.stretch, g.shrink, g.stretchOrder, g.shrinkOrder
}

func (s *State) SetGlue(name string, width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder, global bool) {
	g := glueVal{width, stretch, shrink, stretchOrder, shrinkOrder}
	s.glues[name] = g
	if global {
		writeThrough(s.groups, func(sn *snapshot) map[string]glueVal { return sn.glues }, name, g)
	}
}

// Toks returns a defensive copy of the named token-list register, so
// a caller mutating the result cannot corrupt the register.
func (s *State) Toks(name string) ttoken.List {
	return slices.Clone(s.toks[name])
}

func (s *State) SetToks(name string, v ttoken.List, global bool) {
	cp := slices.Clone(v)
	s.toks[name] = cp
	if global {
		writeThrough(s.groups, func(sn *snapshot) map[string]ttoken.List { return sn.toks }, name, cp)
	}
}

func (s *State) CurrentFont() font.Face { return s.curFont }

func (s *State) SetCurrentFont(f font.Face, global bool) {
	s.curFont = f
	if global {
		for i := range s.groups {
			s.groups[i].font = f
		}
	}
}
