/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/net/html"

	"github.com/vellumpdf/pdftext/contentstream"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// HTMLDevice is the positioned-HTML output device. Runs of characters
// sharing the same rendering matrix are batched into one
// absolutely-positioned <div>; a matrix change flushes the batch.
type HTMLDevice struct {
	contentstream.NopDevice

	w io.Writer

	flipCTM transform.Matrix
	lastCTM transform.Matrix

	bufCTM      transform.Matrix
	bufFontSize float64
	buf         strings.Builder

	err error
}

// NewHTMLDevice returns an HTMLDevice that writes to w.
func NewHTMLDevice(w io.Writer) *HTMLDevice {
	return &HTMLDevice{w: w, flipCTM: transform.IdentityMatrix(), lastCTM: transform.IdentityMatrix()}
}

// Err returns the first write error encountered, if any.
func (d *HTMLDevice) Err() error {
	return d.err
}

func (d *HTMLDevice) BeginPage(pageNumber int, mediaBox *model.Rectangle, _ *model.Rectangle) error {
	d.write(fmt.Sprintf("<!-- page %d -->", pageNumber))
	d.write(fmt.Sprintf(
		"<div id='page%d' style='position: relative; height: %gpx; width: %gpx; border: 1px black solid'>",
		pageNumber, mediaBox.Ury-mediaBox.Lly, mediaBox.Urx-mediaBox.Llx))
	d.flipCTM = transform.NewMatrix(1, 0, 0, -1, 0, mediaBox.Ury-mediaBox.Lly)
	return d.err
}

func (d *HTMLDevice) EndPage() error {
	d.flushString()
	d.buf.Reset()
	d.lastCTM = transform.IdentityMatrix()
	d.write("</div>")
	return d.err
}

// OutputCharacter batches text whose rendering matrix equals the running
// matrix (to floating tolerance) and flushes on a matrix change.
func (d *HTMLDevice) OutputCharacter(trm transform.Matrix, width, spacing, fontSize float64, text string) error {
	if matricesApproxEqual(trm, d.lastCTM) {
		d.buf.WriteString(text)
	} else {
		d.flushString()
		d.buf.Reset()
		d.buf.WriteString(text)
		d.bufFontSize = fontSize
		d.bufCTM = trm
	}
	tx := width*fontSize + spacing
	d.lastCTM = transform.TranslationMatrix(tx, 0).Mult(trm)
	return d.err
}

func (d *HTMLDevice) flushString() {
	if d.buf.Len() == 0 {
		return
	}
	ox, oy := d.bufCTM.Transform(0, 0)
	x, y := d.flipCTM.Transform(ox, oy)
	vx, vy := d.bufCTM.Transform(d.bufFontSize, d.bufFontSize)
	s := math.Sqrt(math.Abs((vx - ox) * (vy - oy)))

	d.write(fmt.Sprintf(
		"<div style='position: absolute; left: %gpx; top: %gpx; font-size: %gpx'>%s</div>",
		x, y, s, insertNBSP(html.EscapeString(d.buf.String()))))
}

// insertNBSP converts every space to a non-breaking space except a single
// space sandwiched between two non-space characters: only an isolated
// interior space survives as a literal space, since runs of spaces (and
// the trailing spaces of a run) would otherwise collapse in HTML.
func insertNBSP(input string) string {
	runes := []rune(input)
	var b strings.Builder
	wordEnd := false
	for i, c := range runes {
		if c == ' ' {
			nextIsSpaceOrEnd := i+1 >= len(runes) || runes[i+1] == ' '
			if !wordEnd || nextIsSpaceOrEnd {
				b.WriteString("&nbsp;")
			} else {
				b.WriteRune(' ')
			}
			wordEnd = false
		} else {
			wordEnd = true
			b.WriteRune(c)
		}
	}
	return b.String()
}

// matricesApproxEqual compares the effect of two matrices on three probe
// points to floating tolerance, since transform.Matrix exposes no raw
// component accessors outside its package.
func matricesApproxEqual(a, b transform.Matrix) bool {
	const eps = 1e-6
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}} {
		ax, ay := a.Transform(p[0], p[1])
		bx, by := b.Transform(p[0], p[1])
		if math.Abs(ax-bx) > eps || math.Abs(ay-by) > eps {
			return false
		}
	}
	return true
}

func (d *HTMLDevice) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}
