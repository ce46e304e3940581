// Package transform maps chart values to pixels and back.
//
// A Transformer composes three matrices: the value matrix scaling the
// axis ranges into the content rect, the viewport's touch matrix, and the
// offset matrix placing the content rect inside the view. Charts keep one
// Transformer per y axis; all of them share one viewport.Handler.
package transform

import (
	"math"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/viewport"
)

// Transformer converts between value space and pixel space for one axis
// dependency. It is not safe for concurrent use.
type Transformer struct {
	vp         *viewport.Handler
	horizontal bool

	base   ggchart.Matrix
	offset ggchart.Matrix

	// generation changes whenever base or offset is rebuilt.
	generation uint64

	cached       bool
	cachedGen    uint64
	cachedRev    uint64
	valueToPixel ggchart.Matrix
	pixelToValue ggchart.Matrix

	valuesBuf []float64
}

// New creates a Transformer for vertical charts.
func New(vp *viewport.Handler) *Transformer {
	return &Transformer{
		vp:     vp,
		base:   ggchart.Identity(),
		offset: ggchart.Identity(),
	}
}

// NewHorizontalBar creates a Transformer for horizontal bar charts. Its
// base is prepared with the y axis along pixel x, and inversion mirrors
// the x direction instead of y.
func NewHorizontalBar(vp *viewport.Handler) *Transformer {
	t := New(vp)
	t.horizontal = true
	return t
}

// IsHorizontal reports whether t was created with NewHorizontalBar.
func (t *Transformer) IsHorizontal() bool { return t.horizontal }

// Viewport returns the shared viewport handler.
func (t *Transformer) Viewport() *viewport.Handler { return t.vp }

// PrepareValueToPixelBase builds the value matrix. Values from xMin to
// xMin+xRange span the content width and values from yMin to yMin+yRange
// span the content height with y pointing up. A zero range produces a
// zero scale rather than an infinite one.
func (t *Transformer) PrepareValueToPixelBase(xMin, xRange, yRange, yMin float64) {
	scaleX := t.vp.ContentWidth() / xRange
	scaleY := t.vp.ContentHeight() / yRange
	if math.IsNaN(scaleX) || math.IsInf(scaleX, 0) {
		ggchart.Logger().Debug("transform: degenerate x range", "range", xRange)
		scaleX = 0
	}
	if math.IsNaN(scaleY) || math.IsInf(scaleY, 0) {
		ggchart.Logger().Debug("transform: degenerate y range", "range", yRange)
		scaleY = 0
	}

	t.base = ggchart.Translate(-xMin, -yMin).PostScale(scaleX, -scaleY)
	t.generation++
}

// PrepareOffsetMatrix builds the offset matrix from the current content
// rect. With inverted set the value axis grows downward (or leftward for
// horizontal bars).
func (t *Transformer) PrepareOffsetMatrix(inverted bool) {
	vp := t.vp
	switch {
	case !inverted:
		t.offset = ggchart.Translate(vp.OffsetLeft(), vp.ChartHeight()-vp.OffsetBottom())
	case t.horizontal:
		t.offset = ggchart.Translate(-(vp.ChartWidth()-vp.OffsetRight()), vp.ChartHeight()-vp.OffsetBottom()).
			PostScale(-1, 1)
	default:
		t.offset = ggchart.Translate(vp.OffsetLeft(), -vp.OffsetTop()).PostScale(1, -1)
	}
	t.generation++
}

// ValueMatrix returns the value matrix.
func (t *Transformer) ValueMatrix() ggchart.Matrix { return t.base }

// OffsetMatrix returns the offset matrix.
func (t *Transformer) OffsetMatrix() ggchart.Matrix { return t.offset }

// ValueToPixelMatrix returns offset * touch * value: values are scaled
// into the content box first, then panned and zoomed, then placed.
func (t *Transformer) ValueToPixelMatrix() ggchart.Matrix {
	t.refresh()
	return t.valueToPixel
}

// PixelToValueMatrix returns the inverse of ValueToPixelMatrix. A singular
// composite yields the identity.
func (t *Transformer) PixelToValueMatrix() ggchart.Matrix {
	t.refresh()
	return t.pixelToValue
}

func (t *Transformer) refresh() {
	rev := t.vp.Revision()
	if t.cached && t.cachedGen == t.generation && t.cachedRev == rev {
		return
	}
	t.valueToPixel = t.offset.Multiply(t.vp.TouchMatrix()).Multiply(t.base)
	t.pixelToValue = t.valueToPixel.Invert()
	t.cached = true
	t.cachedGen = t.generation
	t.cachedRev = rev
}

// PointValuesToPixel maps interleaved x, y values to pixels in place.
func (t *Transformer) PointValuesToPixel(pts []float64) {
	t.ValueToPixelMatrix().MapPoints(pts)
}

// PixelsToValue maps interleaved x, y pixels to values in place.
func (t *Transformer) PixelsToValue(pts []float64) {
	t.PixelToValueMatrix().MapPoints(pts)
}

// ValuesByTouchPoint returns the value under the pixel (x, y).
func (t *Transformer) ValuesByTouchPoint(x, y float64) ggchart.Point {
	return t.PixelToValueMatrix().TransformPoint(ggchart.Pt(x, y))
}

// PixelForValues returns the pixel of the value (x, y).
func (t *Transformer) PixelForValues(x, y float64) ggchart.Point {
	return t.ValueToPixelMatrix().TransformPoint(ggchart.Pt(x, y))
}

// RectValueToPixel maps a value-space rectangle to pixels. The result is
// sorted so that Top <= Bottom.
func (t *Transformer) RectValueToPixel(r ggchart.Rect) ggchart.Rect {
	return t.ValueToPixelMatrix().MapRect(r)
}

// RectToPixelPhase scales the vertical edges of r by phaseY before
// mapping it, for bars growing during an entry animation.
func (t *Transformer) RectToPixelPhase(r ggchart.Rect, phaseY float64) ggchart.Rect {
	r.Top *= phaseY
	r.Bottom *= phaseY
	return t.RectValueToPixel(r)
}

// RectToPixelPhaseHorizontal scales the horizontal edges of r by phaseY
// before mapping it.
func (t *Transformer) RectToPixelPhaseHorizontal(r ggchart.Rect, phaseY float64) ggchart.Rect {
	r.Left *= phaseY
	r.Right *= phaseY
	return t.RectValueToPixel(r)
}

// RectsValueToPixel maps every rectangle in rs in place.
func (t *Transformer) RectsValueToPixel(rs []ggchart.Rect) {
	m := t.ValueToPixelMatrix()
	for i := range rs {
		rs[i] = m.MapRect(rs[i])
	}
}

// PathValueToPixel maps a value-space path to pixels in place.
func (t *Transformer) PathValueToPixel(p *ggchart.Path) *ggchart.Path {
	return p.Transform(t.ValueToPixelMatrix())
}

// GenerateTransformedValues maps the entries from index from to to of s,
// truncated by the animation phaseX, into interleaved pixel pairs. yOf
// selects the y value of an entry and defaults to YValue; the result is
// scaled by phaseY. The returned slice is reused by the next call.
func (t *Transformer) GenerateTransformedValues(s data.Series, phaseX, phaseY float64, from, to int, yOf func(data.Entry) float64) []float64 {
	plainY := yOf == nil
	n := s.Len()
	from = max(from, 0)
	to = min(to, n-1)
	count := 0
	if to >= from {
		count = int(float64(to-from)*phaseX) + 1
	}

	buf := t.valuesBuf[:0]
	for i := 0; i < count; i++ {
		idx := from + i
		if idx >= n {
			buf = append(buf, 0, 0)
			continue
		}
		if plainY {
			buf = append(buf, s.XAt(idx), s.YAt(idx)*phaseY)
			continue
		}
		e := s.Entry(idx)
		buf = append(buf, e.XValue(), yOf(e)*phaseY)
	}
	t.valuesBuf = buf
	t.PointValuesToPixel(buf)
	return buf
}
