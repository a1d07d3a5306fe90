/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

// PathSegmentType identifies one path-construction operator's contribution
// to a Path.
type PathSegmentType int

const (
	PathMoveTo PathSegmentType = iota
	PathLineTo
	PathCurveTo // cubic Bezier: [x1 y1 x2 y2 x3 y3]
	PathClose
)

// PathSegment is one path-construction operator, with its operands already
// resolved to absolute user-space points.
type PathSegment struct {
	Type   PathSegmentType
	Points []float64
}

// Path is the current path being built by m/l/c/v/y/h/re, cleared after
// any painting operator. It tracks the current point so that `v` (first
// control point = current point) and `h`/re's implicit close can be
// resolved without looking back at prior segments.
type Path struct {
	Segments []PathSegment

	current    [2]float64
	subpathX   float64
	subpathY   float64
	hasCurrent bool
}

// Clear empties the path, e.g. after S/f/F/n.
func (p *Path) Clear() {
	p.Segments = nil
	p.hasCurrent = false
}

// Empty reports whether the path has no current point, i.e. no `m` has
// been issued since the path was last cleared.
func (p *Path) Empty() bool {
	return !p.hasCurrent
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Type: PathMoveTo, Points: []float64{x, y}})
	p.current = [2]float64{x, y}
	p.subpathX, p.subpathY = x, y
	p.hasCurrent = true
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Type: PathLineTo, Points: []float64{x, y}})
	p.current = [2]float64{x, y}
}

func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Segments = append(p.Segments, PathSegment{
		Type:   PathCurveTo,
		Points: []float64{x1, y1, x2, y2, x3, y3},
	})
	p.current = [2]float64{x3, y3}
}

// CurveToV appends a `v` segment: the first control point is the current
// point. Caller must ensure the path is non-empty.
func (p *Path) CurveToV(x2, y2, x3, y3 float64) {
	p.CurveTo(p.current[0], p.current[1], x2, y2, x3, y3)
}

// CurveToY appends a `y` segment: the last control point equals the
// endpoint.
func (p *Path) CurveToY(x1, y1, x3, y3 float64) {
	p.CurveTo(x1, y1, x3, y3, x3, y3)
}

// Close appends `h`: a straight line back to the current subpath's start.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Type: PathClose})
	p.current = [2]float64{p.subpathX, p.subpathY}
}

// Rectangle appends `re`'s five-segment equivalent (m, l, l, l, h).
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// CurrentPoint returns the path's current point.
func (p *Path) CurrentPoint() (float64, float64) {
	return p.current[0], p.current[1]
}
