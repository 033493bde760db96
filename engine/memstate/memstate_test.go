// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memstate

import (
	"testing"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/ttoken"
)

func TestLocalAssignmentUndoneByPopGroup(t *testing.T) {
	s := New()
	s.SetInt("count0", 1, false)

	s.PushGroup()
	s.SetInt("count0", 2, false)
	if got := s.Int("count0"); got != 2 {
		t.Fatalf("Int(count0) inside group = %d, want 2", got)
	}
	s.PopGroup()

	if got := s.Int("count0"); got != 1 {
		t.Errorf("Int(count0) after PopGroup = %d, want 1 (local assignment undone)", got)
	}
}

func TestGlobalAssignmentSurvivesPopGroup(t *testing.T) {
	s := New()
	s.SetInt("count0", 1, false)

	s.PushGroup()
	s.SetInt("count0", 99, true)
	s.PopGroup()

	if got := s.Int("count0"); got != 99 {
		t.Errorf("Int(count0) after PopGroup = %d, want 99 (global assignment survives)", got)
	}
}

func TestGlobalAssignmentWritesThroughNestedGroups(t *testing.T) {
	s := New()
	s.PushGroup()
	s.PushGroup()
	s.SetDimen("hsize", dimen.Pt(100), true)
	s.PopGroup()
	s.PopGroup()

	if got, want := s.Dimen("hsize"), dimen.Pt(100); got != want {
		t.Errorf("Dimen(hsize) = %v, want %v", got, want)
	}
}

func TestTokListIsDefensivelyCopied(t *testing.T) {
	s := New()
	s.SetToks("everypar", ttoken.List{{Kind: ttoken.Character, Char: 'a'}}, false)

	got := s.Toks("everypar")
	got[0] = ttoken.Token{Kind: ttoken.Character, Char: 'z'}

	if want := rune('a'); s.Toks("everypar")[0].Char != want {
		t.Errorf("mutating Toks result corrupted the register")
	}
}
