// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node provides the algebraic description of the Stomach's
// node model: horizontal, vertical, and math nodes; boxes; whatsits;
// and the open NodeList frames they accumulate into. It is the data
// structure half of the Stomach; dispatch and mode logic live in the
// root package.
//
// The package follows the box model documented in Knuth's TeX: The
// Program (hpack/vpack, glue setting, the node families) the way the
// teacher's internal/latex/tex package does, generalized from a
// formula-only box model to the full H/V/M family split described by
// the Stomach's data model.
package node

import "github.com/go-tex/stomach/dimen"

// HNode is any node that may appear in a horizontal list.
type HNode interface {
	isHNode()
}

// VNode is any node that may appear in a vertical list.
type VNode interface {
	isVNode()
}

// MathNode is any node that may appear in a math list.
type MathNode interface {
	isMathNode()
}

// hpacker is implemented by every HNode; it is how HList.hpack
// accumulates width, height, depth and stretch/shrink totals without
// a type switch per concrete kind living outside this package. A node
// that cannot appear in a horizontal list simply does not implement
// it (mirroring the teacher's own hpacker/vpacker split in tex.go).
type hpacker interface {
	hpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP)
}

// vpacker is the VNode analogue of hpacker.
type vpacker interface {
	vpackDims(width, height, depth *dimen.SP, stretch, shrink *[4]dimen.SP)
}

var (
	_ hpacker = Glue{}
	_ vpacker = Glue{}
	_ hpacker = Kern{}
	_ vpacker = Kern{}
	_ hpacker = Penalty{}
	_ vpacker = Penalty{}
	_ hpacker = (*Rule)(nil)
	_ vpacker = (*Rule)(nil)
	_ hpacker = (*Box)(nil)
	_ vpacker = (*Box)(nil)
	_ hpacker = Mark{}
	_ vpacker = Mark{}
	_ hpacker = Insert{}
	_ vpacker = Insert{}
)
