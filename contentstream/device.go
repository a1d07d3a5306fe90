/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// OutputDev is the sink the interpreter drives. Every method returns an
// error only on a write/I-O failure; there is no other return data. A
// device that cannot fail simply always returns nil.
type OutputDev interface {
	// BeginPage starts a new page. artBox is nil if the page has none.
	BeginPage(pageNumber int, mediaBox *model.Rectangle, artBox *model.Rectangle) error
	EndPage() error

	// OutputCharacter is called once per decoded CharCode, after ToUnicode
	// translation. width is the normalized glyph width (raw width / 1000).
	// spacing is character spacing plus word spacing where applicable, in
	// unscaled text units.
	OutputCharacter(trm transform.Matrix, width, spacing, fontSize float64, text string) error

	// BeginWord, EndWord and EndLine are advisory phrase boundaries.
	BeginWord() error
	EndWord() error
	EndLine() error

	// Stroke and Fill report a completed path painting operation. color is
	// the raw numeric tuple set by SC/SCN/sc/scn, or nil for a Pattern
	// colorspace or when no color has been set on this path.
	Stroke(ctm transform.Matrix, cs model.Colorspace, color []float64, path *Path) error
	Fill(ctm transform.Matrix, cs model.Colorspace, color []float64, path *Path) error
}

// NopDevice is an OutputDev whose every method is a no-op returning nil. It
// is useful as an embeddable base for devices that only care about a
// subset of events.
type NopDevice struct{}

func (NopDevice) BeginPage(int, *model.Rectangle, *model.Rectangle) error { return nil }
func (NopDevice) EndPage() error                                         { return nil }
func (NopDevice) OutputCharacter(transform.Matrix, float64, float64, float64, string) error {
	return nil
}
func (NopDevice) BeginWord() error { return nil }
func (NopDevice) EndWord() error   { return nil }
func (NopDevice) EndLine() error   { return nil }
func (NopDevice) Stroke(transform.Matrix, model.Colorspace, []float64, *Path) error { return nil }
func (NopDevice) Fill(transform.Matrix, model.Colorspace, []float64, *Path) error   { return nil }
