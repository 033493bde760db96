// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dimen provides the scaled-point dimension type shared by the
// node model, the paragraph builder, and the page builder.
package dimen

import "math"

// SP is a scaled point, TeX's native dimension unit: 1pt == 65536 SP.
type SP float64

const unitsPerPoint = 65536

// Pt converts a quantity in points to SP.
func Pt(pt float64) SP { return SP(pt * unitsPerPoint) }

// Points returns d expressed in points.
func (d SP) Points() float64 { return float64(d) / unitsPerPoint }

// Inf is a dimension treated as a running dimension — TeX's ∞pt, used
// for Rule dimensions that should be stretched out to the enclosing
// box's boundary.
var Inf = SP(math.Inf(1))

// IsInf reports whether d is a running dimension.
func IsInf(d SP) bool { return math.IsInf(float64(d), 0) }

// Max returns the larger of a and b, treating Inf correctly.
func Max(a, b SP) SP {
	if a > b {
		return a
	}
	return b
}

// GlueOrder is the order of infinity a glue's stretch or shrink
// component belongs to: 0 is finite, 1..3 are fil/fill/filll.
type GlueOrder int

const (
	Finite GlueOrder = iota
	Fil
	Fill
	Filll
)

// GlueSign records which way a list's glue was set when it was
// packaged: stretching to fill extra space, or shrinking to remove an
// overfull amount.
type GlueSign int

const (
	GlueNormal GlueSign = iota
	GlueStretching
	GlueShrinking
)
