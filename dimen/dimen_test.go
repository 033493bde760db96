// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimen

import "testing"

func TestPtPoints(t *testing.T) {
	for _, pt := range []float64{0, 1, 12.5, -3, 1000} {
		got := Pt(pt).Points()
		if got != pt {
			t.Errorf("Pt(%v).Points() = %v, want %v", pt, got, pt)
		}
	}
}

func TestIsInf(t *testing.T) {
	if !IsInf(Inf) {
		t.Error("IsInf(Inf) = false, want true")
	}
	if IsInf(Pt(12)) {
		t.Error("IsInf(Pt(12)) = true, want false")
	}
}

func TestMax(t *testing.T) {
	if got := Max(Pt(1), Pt(2)); got != Pt(2) {
		t.Errorf("Max(1pt, 2pt) = %v, want 2pt", got)
	}
	if got := Max(Pt(5), Pt(2)); got != Pt(5) {
		t.Errorf("Max(5pt, 2pt) = %v, want 5pt", got)
	}
	if got := Max(Inf, Pt(1e9)); !IsInf(got) {
		t.Errorf("Max(Inf, 1e9pt) = %v, want Inf", got)
	}
}
