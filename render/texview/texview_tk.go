// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tex_tk_viewer

// Package texview provides an optional, interactive Tk viewer of a
// page's node tree, for debugging the page builder without a full PDF
// or SVG render pass. It is gated behind the tex_tk_viewer build tag
// because it pulls in a Tcl/Tk runtime dependency that most callers of
// this module never need.
package texview

import (
	"fmt"
	"strings"

	tk "modernc.org/tk9.0"

	"github.com/go-tex/stomach/node"
)

// View opens a blocking Tk window listing the node types and packaged
// dimensions of every top-level item on page, the way vgtk's own
// Example embeds a rendered plot image in a label and waits on
// tk.App, except here the content is the node tree as text rather
// than a rasterized canvas.
func View(title string, page []node.VNode) {
	var b strings.Builder
	for i, n := range page {
		writeNode(&b, i, n, 0)
	}

	tk.Pack(
		tk.TLabel(tk.Txt(b.String())),
		tk.TExit(),
		tk.Padx("2m"), tk.Pady("2m"), tk.Ipadx("1m"), tk.Ipady("1m"),
	)
	tk.App.WmTitle(title)
	tk.App.SetResizable(false, false)
	tk.App.Wait()
}

func writeNode(b *strings.Builder, i int, n node.VNode, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *node.Box:
		fmt.Fprintf(b, "%s[%d] box w=%.2fpt h=%.2fpt d=%.2fpt\n", pad, i, v.Width.Points(), v.Height.Points(), v.Depth.Points())
		for j, c := range v.VList {
			writeNode(b, j, c, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s[%d] %T\n", pad, i, n)
	}
}
