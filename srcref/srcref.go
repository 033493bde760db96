// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srcref provides the value-type source reference identifying
// where in the input stream a node originated.
package srcref

// Ref identifies a position in the input stream: a file id plus a byte
// offset. It is a value, never a pointer — nodes carry Refs by copy so
// that the node tree owns no borrows into the Mouth's buffers.
type Ref struct {
	File   int
	Offset int
	Line   int
}

// Span is a start/end pair of Refs, used by list frames and boxes that
// need to report the source range they were built from.
type Span struct {
	Start Ref
	End   Ref
}

// None is the Ref with File -1, which Valid reports as invalid, used
// where no source position is meaningful
// (e.g. a node synthesized by the Stomach itself rather than read from
// input).
var None = Ref{File: -1}

// Valid reports whether r was set from a real input position.
func (r Ref) Valid() bool { return r.File >= 0 }
