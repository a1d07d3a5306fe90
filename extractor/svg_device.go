/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/vellumpdf/pdftext/contentstream"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// SVGDevice is the SVG output device. It emits one transform group per
// page and serializes fill paths as SVG path data; text rendering is out
// of scope.
type SVGDevice struct {
	contentstream.NopDevice

	w io.Writer

	err error
}

// NewSVGDevice returns an SVGDevice that writes to w.
func NewSVGDevice(w io.Writer) *SVGDevice {
	return &SVGDevice{w: w}
}

// Err returns the first write error encountered, if any.
func (d *SVGDevice) Err() error {
	return d.err
}

func (d *SVGDevice) BeginPage(_ int, mediaBox *model.Rectangle, artBox *model.Rectangle) error {
	d.write("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	d.write(`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`)

	box := artBox
	if box == nil {
		box = mediaBox
	}
	width := box.Urx - box.Llx
	height := box.Ury - box.Lly
	y := box.Lly
	if artBox != nil {
		y = mediaBox.Ury - artBox.Lly - height
	}
	d.write(fmt.Sprintf(
		"<svg width=\"%g\" height=\"%g\" xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox='%g %g %g %g'>\n",
		width, height, box.Llx, y, width, height))

	ctm := transform.NewMatrix(1, 0, 0, -1, 0, mediaBox.Ury)
	d.write(svgGroupOpen(ctm) + "\n")
	return d.err
}

func (d *SVGDevice) EndPage() error {
	d.write("</g>\n</svg>")
	return d.err
}

// Fill serializes path as SVG path data under its own transform group,
// per original_source's one-<path>-per-fill convention.
func (d *SVGDevice) Fill(ctm transform.Matrix, _ model.Colorspace, _ []float64, path *contentstream.Path) error {
	d.write(svgGroupOpen(ctm))
	d.write(fmt.Sprintf("<path d='%s' />", svgPathData(path)))
	d.write("</g>\n")
	return d.err
}

func svgGroupOpen(ctm transform.Matrix) string {
	a, b, c, dd, tx, ty := affineComponents(ctm)
	return fmt.Sprintf("<g transform='matrix(%g, %g, %g, %g, %g, %g)'>", a, b, c, dd, tx, ty)
}

// affineComponents recovers a,b,c,d,tx,ty from three probe-point
// transforms, since transform.Matrix exposes no raw component accessors
// outside its package.
func affineComponents(m transform.Matrix) (a, b, c, d, tx, ty float64) {
	tx, ty = m.Transform(0, 0)
	x1, y1 := m.Transform(1, 0)
	x2, y2 := m.Transform(0, 1)
	return x1 - tx, y1 - ty, x2 - tx, y2 - ty, tx, ty
}

func svgPathData(path *contentstream.Path) string {
	var parts []string
	for _, seg := range path.Segments {
		switch seg.Type {
		case contentstream.PathMoveTo:
			parts = append(parts, fmt.Sprintf("M%g %g", seg.Points[0], seg.Points[1]))
		case contentstream.PathLineTo:
			parts = append(parts, fmt.Sprintf("L%g %g", seg.Points[0], seg.Points[1]))
		case contentstream.PathCurveTo:
			p := seg.Points
			parts = append(parts, fmt.Sprintf("C%g %g %g %g %g %g", p[0], p[1], p[2], p[3], p[4], p[5]))
		case contentstream.PathClose:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

func (d *SVGDevice) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}
