// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stomach

import (
	"fmt"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/engine"
	"github.com/go-tex/stomach/node"
	"github.com/go-tex/stomach/srcref"
)

// BoxTarget receives the finished box a do_box/close_box pair
// produces: appended to a list, stored in a box register, or handed
// to the output routine as \box255, depending on what asked for it.
type BoxTarget func(*Data, *engine.Refs, *node.Box)

// BoxInfo describes a box whose interior list is still being
// accumulated: do_box pushes a matching frame, and close_box packages
// it and hands the result to Deposit (Target is the size a To or
// Spread directive packs against).
type BoxInfo struct {
	Family  node.Family
	Sizing  node.Sizing
	Target  dimen.SP
	Ref     srcref.Span
	Deposit BoxTarget
}

// BoxResult is what a do_box reader produces: either a box that was
// already complete (e.g. \box255, \copy3) or a BoxInfo describing a
// new frame to open.
type BoxResult struct {
	Finished *node.Box
	Info     *BoxInfo
}

// defaultDeposit appends a finished box through whichever list the
// current mode points at: the innermost horizontal list in H/RH mode,
// the innermost vertical list (or the page) otherwise. Math mode
// cannot receive a bare box this way; the Stomach's math dispatch
// wraps it in a VCenter nucleus instead.
func defaultDeposit(d *Data, refs *engine.Refs, b *node.Box) {
	if d.Mode().HOrM() {
		d.addNodeH(b)
		return
	}
	d.addNodeV(refs, b)
}

// DoBox runs bx to either deposit an already-finished box or push a
// new frame for one being accumulated.
func (d *Data) DoBox(refs *engine.Refs, bx func(*engine.Refs) (BoxResult, error)) error {
	res, err := bx(refs)
	if err != nil {
		return err
	}
	if res.Finished != nil {
		defaultDeposit(d, refs, res.Finished)
		return nil
	}
	info := res.Info
	kind := node.HBoxFrame
	if info.Family == node.VBox {
		kind = node.VBoxFrame
	}
	d.OpenLists = append(d.OpenLists, node.List{Kind: kind, Ref: info.Ref})
	d.PendingBoxes = append(d.PendingBoxes, info)
	return nil
}

// CloseBox pops the innermost frame, which must be a box frame of
// family bt, packages its children per the BoxInfo's sizing
// directive, and hands the result to the BoxInfo's Deposit. A
// mismatched family means the State's group discipline and the list
// stack fell out of sync, which is an internal invariant break, not a
// user-facing error.
func (d *Data) CloseBox(refs *engine.Refs, bt node.Family) {
	if len(d.OpenLists) == 0 || len(d.PendingBoxes) == 0 {
		panic("stomach: close_box called with no open box frame")
	}
	top := d.OpenLists[len(d.OpenLists)-1]
	wantKind := node.HBoxFrame
	if bt == node.VBox {
		wantKind = node.VBoxFrame
	}
	if top.Kind != wantKind {
		panic(fmt.Sprintf("stomach: close_box family mismatch: frame is %v, want %v", top.Kind, wantKind))
	}

	d.OpenLists = d.OpenLists[:len(d.OpenLists)-1]
	info := d.PendingBoxes[len(d.PendingBoxes)-1]
	d.PendingBoxes = d.PendingBoxes[:len(d.PendingBoxes)-1]

	var box *node.Box
	if bt == node.HBox {
		box = node.HPack(info.Ref, top.HList, info.Sizing, info.Target)
	} else {
		box = node.VPack(info.Ref, top.VList, info.Sizing, info.Target)
	}
	info.Deposit(d, refs, box)
}
