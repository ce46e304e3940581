package ggchart

// Rect is an axis-aligned rectangle in pixel space. Top is above Bottom
// on screen, so a well-formed Rect has Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R is a convenience function to create a Rect from its edges.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Sorted returns r with its edges swapped where needed so that
// Left <= Right and Top <= Bottom.
func (r Rect) Sorted() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}
