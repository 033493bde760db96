// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mode

import "testing"

func TestPredicates(t *testing.T) {
	cases := []struct {
		m                        Mode
		vertical, horizontal, math bool
	}{
		{Vertical, true, false, false},
		{InternalVertical, true, false, false},
		{Horizontal, false, true, false},
		{RestrictedHorizontal, false, true, false},
		{InlineMath, false, false, true},
		{DisplayMath, false, false, true},
	}
	for _, c := range cases {
		if got := c.m.IsVertical(); got != c.vertical {
			t.Errorf("%s.IsVertical() = %v, want %v", c.m, got, c.vertical)
		}
		if got := c.m.IsHorizontal(); got != c.horizontal {
			t.Errorf("%s.IsHorizontal() = %v, want %v", c.m, got, c.horizontal)
		}
		if got := c.m.IsMath(); got != c.math {
			t.Errorf("%s.IsMath() = %v, want %v", c.m, got, c.math)
		}
		if got, want := c.m.HOrM(), c.horizontal || c.math; got != want {
			t.Errorf("%s.HOrM() = %v, want %v", c.m, got, want)
		}
	}
}

func TestStringUnknown(t *testing.T) {
	if got := Mode(99).String(); got != "unknown mode" {
		t.Errorf("Mode(99).String() = %q, want %q", got, "unknown mode")
	}
}
