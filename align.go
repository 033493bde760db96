// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/srcref"
)

// OpenAlign pushes an Align group on State and a matching interior
// frame: HAlignFrame when inner is HBox (a \halign cell, a horizontal
// list nested inside the align's overall vertical arrangement of
// rows), VAlignFrame when inner is VBox (a \valign column).
func (d *Data) OpenAlign(refs *engine.Refs, ref srcref.Span, inner node.Family) {
	refs.State.PushGroup()
	kind := node.HAlignFrame
	if inner == node.VBox {
		kind = node.VAlignFrame
	}
	d.OpenLists = append(d.OpenLists, node.List{Kind: kind, Ref: ref})
}

// CloseAlign pops the innermost frame, which must be an Align frame.
// The State group pop happens before reparenting the children, per
// §4.4: if the newly exposed enclosing frame is math, the children
// are wrapped as a VCenter atom nucleus with no sub/superscript;
// otherwise they are appended verbatim to whichever list the
// enclosing frame or the page holds.
func (d *Data) CloseAlign(refs *engine.Refs) {
	if len(d.OpenLists) == 0 {
		panic("stomach: close_align called with no open align frame")
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	if top.Kind != node.HAlignFrame && top.Kind != node.VAlignFrame {
		panic("stomach: close_align called but innermost frame is not an align frame")
	}
	d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]
	refs.State.PopGroup()

	if d.Mode().IsMath() {
		var box *node.Box
		if top.Kind == node.HAlignFrame {
			box = node.HPack(top.Ref, top.HList, node.Natural, 0)
		} else {
			box = node.VPack(top.Ref, top.VList, node.Natural, 0)
		}
		d.addNodeM(node.Atom{
			Class:   node.ClassOrd,
			Nucleus: node.VCenterNucleus{Box: box},
		})
		return
	}

	switch top.Kind {
	case node.HAlignFrame:
		for _, n := range top.HList {
			d.addNodeH(n)
		}
	case node.VAlignFrame:
		for _, n := range top.VList {
			d.addNodeV(refs, n)
		}
	}
}
