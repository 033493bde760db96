// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine declares the narrow ports the Stomach needs from its
// tokenization, expansion and symbol-table collaborators, without
// owning any of those concerns itself. Mouth handles raw character
// input, Gullet expands macros and parses numbers/dimensions/glue,
// and State holds the grouped symbol table; all three are out of
// scope here, and are declared only so the root package can depend on
// an interface rather than a concrete implementation. engine/memstate
// and engine/strmouth provide minimal, self-contained implementations
// so the Stomach is runnable and testable without a full Gullet.
package engine

import (
	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/font"
	"github.com/go-tex/stomach/srcref"
	"github.com/go-tex/stomach/ttoken"
)

// Mouth supplies the next resolved token from the input stream and
// lets the Stomach push one back (e.g. an active character requeued
// at a different catcode, per \mathchar code 32768 handling), and
// reports the source positions §6 names: StartRef is where the
// current command began, CurrentSourceRef is the Mouth's present
// read position, UpdateStartRef moves the former to the latter (the
// Stomach calls this once per dispatched command, via EveryTop), and
// LineNumber is CurrentSourceRef's line for diagnostics.
type Mouth interface {
	Next() (ttoken.Token, bool)
	Push(ttoken.Token)

	StartRef() srcref.Ref
	CurrentSourceRef() srcref.Ref
	UpdateStartRef()
	LineNumber() int
}

// Gullet expands macros and parses the numeric/dimension/glue
// arguments a primitive needs, given a Mouth to read from.
type Gullet interface {
	Expand(Mouth) (ttoken.Token, bool)
	ScanInt(Mouth) (int, error)
	ScanDimen(Mouth) (dimen.SP, error)
	ScanGlue(Mouth) (width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder, err error)
	ScanTokenList(Mouth) (ttoken.List, error)
	ScanKeyword(Mouth, string) bool
}

// State is the grouped symbol table: integer, dimension, glue, muglue
// and token-list registers and parameters, plus the current font and
// group nesting. PushGroup/PopGroup bracket a TeX group
// ({...}/\begingroup.../\endgroup); assignments made since the
// matching PushGroup are undone by PopGroup unless made with \global.
type State interface {
	PushGroup()
	PopGroup()

	Int(name string) int
	SetInt(name string, v int, global bool)

	Dimen(name string) dimen.SP
	SetDimen(name string, v dimen.SP, global bool)

	Glue(name string) (width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder)
	SetGlue(name string, width, stretch, shrink dimen.SP, stretchOrder, shrinkOrder dimen.GlueOrder, global bool)

	Toks(name string) ttoken.List
	SetToks(name string, v ttoken.List, global bool)

	CurrentFont() font.Face
	SetCurrentFont(f font.Face, global bool)
}

// ListTarget receives the result of a synchronous sub-list built by a
// nested group (e.g. the body of an opened math subformula read by
// read_char_or_math_group): the caller supplies a continuation rather
// than the Stomach returning control up a call stack it does not own.
type ListTarget[T any] func(T)

// Diagnostics is the sink the Stomach reports warnings and recoverable
// errors to (e.g. the message emitted by Flush when a group was left
// open, or the "a <box> was supposed to be here" report from
// ReadBox); it intentionally does not prescribe how messages are
// displayed, logged or collected.
type Diagnostics interface {
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Refs bundles the Stomach's four collaborators for the duration of a
// single dispatch call, the way RusTeX's EngineReferences aggregate
// does: none of them are safe to hold onto past the call that
// receives a Refs, since exactly one entry point runs at a time (see
// the concurrency model — no locks, no reentrancy beyond in_output).
type Refs struct {
	Mouth  Mouth
	Gullet Gullet
	State  State
	Diag   Diagnostics
}
