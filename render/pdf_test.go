// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"rsc.io/pdf"

	"github.com/go-tex/stomach/dimen"
	"github.com/go-tex/stomach/render"
)

// TestPDFAnnotBeginRoundTrips writes a single-page document carrying
// a PDFAnnotBegin-emitted link annotation through fpdf, then reads the
// resulting bytes back with an independent PDF parser: Emit's writer
// and a reader agreeing on page count is the cheapest real check that
// what Emit produced is a well-formed PDF, not just bytes that look
// like one.
func TestPDFAnnotBeginRoundTrips(t *testing.T) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(72, 72, "hello")

	a := render.PDFAnnotBegin{
		Tag:    "a",
		Attrs:  map[string]string{"href": "https://example.invalid"},
		Width:  dimen.Pt(100),
		Height: dimen.Pt(12),
	}
	a.Emit(doc, 72, 90)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("fpdf Output: %v", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("pdf.NewReader: %v", err)
	}
	if got, want := r.NumPage(), 1; got != want {
		t.Errorf("NumPage() = %d, want %d", got, want)
	}
}
