/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"io"
	"math"

	"github.com/vellumpdf/pdftext/contentstream"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// TextDevice is the reference plain-text output device. It writes decoded
// glyphs to w, inserting newlines and spaces from the geometry of each
// character's rendering matrix rather than from any marked word/line
// boundary.
type TextDevice struct {
	contentstream.NopDevice

	w io.Writer

	flipCTM   transform.Matrix
	lastEnd   float64
	lastY     float64
	firstChar bool

	err error
}

// NewTextDevice returns a TextDevice that writes to w.
func NewTextDevice(w io.Writer) *TextDevice {
	return &TextDevice{w: w, lastEnd: 1e5, flipCTM: transform.IdentityMatrix()}
}

// Err returns the first write error encountered, if any.
func (d *TextDevice) Err() error {
	return d.err
}

// BeginPage only refreshes the flip transform. last_end/last_y/first_char
// intentionally persist across pages so that extracting a whole multi-page
// document through one TextDevice reads as continuous text rather than
// restarting its line-break heuristic at every page boundary.
func (d *TextDevice) BeginPage(_ int, mediaBox *model.Rectangle, _ *model.Rectangle) error {
	d.flipCTM = transform.NewMatrix(1, 0, 0, -1, 0, mediaBox.Ury-mediaBox.Lly)
	return nil
}

// OutputCharacter implements the plain-text device algorithm: position and
// effective glyph size come from the rendering matrix flipped into
// top-down coordinates, and word/line breaks are inferred from how far
// the new glyph's position has moved relative to that size.
func (d *TextDevice) OutputCharacter(trm transform.Matrix, width, _, fontSize float64, text string) error {
	ox, oy := trm.Transform(0, 0)
	x, y := d.flipCTM.Transform(ox, oy)

	vx, vy := trm.Transform(fontSize, fontSize)
	s := math.Sqrt(math.Abs((vx-ox) * (vy-oy)))

	if d.firstChar {
		if math.Abs(y-d.lastY) > 1.5*s {
			d.write("\n")
		}
		if x < d.lastEnd && math.Abs(y-d.lastY) > 0.5*s {
			d.write("\n")
		}
		if x > d.lastEnd+0.1*s {
			d.write(" ")
		}
	}

	d.write(text)
	d.firstChar = false
	d.lastY = y
	d.lastEnd = x + width*s
	return d.err
}

func (d *TextDevice) BeginWord() error {
	d.firstChar = true
	return nil
}

func (d *TextDevice) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}
