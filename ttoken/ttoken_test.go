// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttoken

import "testing"

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Character, Char: 'x'}, "x"},
		{Token{Kind: Primitive, Name: "hbox"}, `\hbox`},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.tok, got, c.want)
		}
	}
}

func TestListString(t *testing.T) {
	l := List{
		{Kind: Character, Char: 'a'},
		{Kind: Character, Char: 'b'},
		{Kind: Primitive, Name: "par"},
	}
	if got, want := l.String(), `ab\par`; got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}
