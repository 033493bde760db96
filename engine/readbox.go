// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/go-tex/stomach/node"

// ReadBox is the default \box/\copy/\lastbox-style register read
// (RusTeX EngineReferences::read_box, §13 of the expanded spec): it
// consumes an optional "=" via Gullet.ScanKeyword (spaces are not
// skipped here) before dispatching to read, the box primitive's own reader (e.g. a register lookup). On
// failure it reports "a <box> was supposed to be here" through the
// diagnostic sink and returns a nil box rather than aborting the
// document — the caller (a do_box reader) treats a nil, nil-error
// result as "nothing to deposit", the same way real TeX absorbs a
// missing box register into a no-op.
func ReadBox(refs *Refs, read func(*Refs) (*node.Box, error)) (*node.Box, error) {
	refs.Gullet.ScanKeyword(refs.Mouth, "=")
	b, err := read(refs)
	if err != nil {
		refs.Diag.Errorf("a <box> was supposed to be here")
		return nil, nil
	}
	return b, nil
}
