/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// TextState is the text-related subset of the graphics state: font,
// sizing/spacing scalars, and the two running matrices.
type TextState struct {
	Font        model.Font
	FontSize    float64
	CharSpacing float64 // Tc
	WordSpacing float64 // Tw
	HorizScale  float64 // Tz, already divided by 100; default 1
	Leading     float64 // TL
	Rise        float64 // Ts
	Tm          transform.Matrix

	// InvalidFont is set by Tf when the selected font's resources resolve
	// but its type is one this module cannot build a model.Font for
	// (e.g. an unextractable Type1C/CFF program). Text operators become
	// no-ops rather than failing the page while it is set.
	InvalidFont bool
}

func newTextState() TextState {
	return TextState{HorizScale: 1, Tm: transform.IdentityMatrix()}
}

// GraphicsState is the full per-q/Q graphics state. Color values are
// stored verbatim as the numeric tuple last passed to SC/SCN/sc/scn,
// except under a Pattern colorspace, where they are empty.
type GraphicsState struct {
	CTM transform.Matrix
	Ts  TextState

	ColorspaceStroking    model.Colorspace
	ColorspaceNonStroking model.Colorspace
	ColorStroking         []float64
	ColorNonStroking      []float64

	LineWidth float64
	SMask     core.PdfObject
}

func newGraphicsState() GraphicsState {
	return GraphicsState{
		CTM:                   transform.IdentityMatrix(),
		Ts:                    newTextState(),
		ColorspaceStroking:    model.DeviceGrayColorspace{},
		ColorspaceNonStroking: model.DeviceGrayColorspace{},
		LineWidth:             1,
	}
}

// clone deep-clones the graphics state for q, including the text state.
// Matrices are value types so a struct copy already deep-clones them;
// only the color slices need an explicit copy since callers must not
// observe a later scn through an earlier pushed state.
func (gs GraphicsState) clone() GraphicsState {
	clone := gs
	clone.ColorStroking = append([]float64(nil), gs.ColorStroking...)
	clone.ColorNonStroking = append([]float64(nil), gs.ColorNonStroking...)
	return clone
}

// GraphicsStateStack implements q/Q. Popping an empty stack is a
// caller-visible condition (logged, not fatal), not a panic.
type GraphicsStateStack []GraphicsState

func (s *GraphicsStateStack) Push(gs GraphicsState) {
	*s = append(*s, gs.clone())
}

func (s *GraphicsStateStack) Pop() (GraphicsState, bool) {
	if len(*s) == 0 {
		return GraphicsState{}, false
	}
	n := len(*s) - 1
	gs := (*s)[n]
	*s = (*s)[:n]
	return gs, true
}
