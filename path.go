package ggchart

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
	transform(m Matrix) PathElement
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

func (e MoveTo) transform(m Matrix) PathElement {
	return MoveTo{Point: m.TransformPoint(e.Point)}
}

// LineTo extends the subpath with a straight segment.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

func (e LineTo) transform(m Matrix) PathElement {
	return LineTo{Point: m.TransformPoint(e.Point)}
}

// CubicTo extends the subpath with a cubic Bezier segment. Cubic line
// charts produce these from their smoothed control points.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

func (e CubicTo) transform(m Matrix) PathElement {
	return CubicTo{
		Control1: m.TransformPoint(e.Control1),
		Control2: m.TransformPoint(e.Control2),
		Point:    m.TransformPoint(e.Point),
	}
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

func (e Close) transform(Matrix) PathElement { return e }

// Path is a polyline or curve outline, usually built in value space by a
// series renderer and mapped to pixels by a transformer.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements while keeping the backing storage.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform maps every element of p through m in place and returns p.
func (p *Path) Transform(m Matrix) *Path {
	for i, e := range p.elements {
		p.elements[i] = e.transform(m)
	}
	p.start = m.TransformPoint(p.start)
	p.current = m.TransformPoint(p.current)
	return p
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}
