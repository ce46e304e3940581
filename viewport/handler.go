// Package viewport holds the pan/zoom state of a chart.
//
// A Handler owns the content rect (the pixel area data is drawn into) and
// the touch matrix applied on top of the value transform. Every mutation
// passes through LimitTransAndScale, so the matrix a renderer reads is
// always within the configured zoom bounds and drag offsets.
//
// The touch matrix operates in a space whose origin is the bottom-left
// corner of the content rect with y pointing up as negative values. Use
// TouchPoint to convert a view pixel into that space.
package viewport

import (
	"math"

	"github.com/gogpu/ggchart"
)

const (
	zoomInFactor  = 1.4
	zoomOutFactor = 0.7
)

// Handler is the viewport state of one chart. It is not safe for
// concurrent use; all calls are expected on the UI goroutine.
type Handler struct {
	touch   ggchart.Matrix
	content ggchart.Rect

	chartWidth  float64
	chartHeight float64

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	scaleX, scaleY float64
	transX, transY float64

	dragOffsetX float64
	dragOffsetY float64

	revision uint64
}

// New creates a Handler with an identity touch matrix, minimum scale 1 and
// unbounded maximum scale.
func New() *Handler {
	return &Handler{
		touch:     ggchart.Identity(),
		minScaleX: 1,
		maxScaleX: math.Inf(1),
		minScaleY: 1,
		maxScaleY: math.Inf(1),
		scaleX:    1,
		scaleY:    1,
	}
}

// SetChartDimens sets the view size and keeps the current offsets.
func (h *Handler) SetChartDimens(width, height float64) {
	left, top := h.OffsetLeft(), h.OffsetTop()
	right, bottom := h.OffsetRight(), h.OffsetBottom()
	h.chartWidth = math.Round(sanitize(width))
	h.chartHeight = math.Round(sanitize(height))
	h.RestrainViewPort(left, top, right, bottom)
}

// HasChartDimens reports whether the view has a non-empty size.
func (h *Handler) HasChartDimens() bool {
	return h.chartWidth > 0 && h.chartHeight > 0
}

// RestrainViewPort sets the content rect from offsets measured inward
// from each view edge.
func (h *Handler) RestrainViewPort(offsetLeft, offsetTop, offsetRight, offsetBottom float64) {
	h.content = ggchart.Rect{
		Left:   offsetLeft,
		Top:    offsetTop,
		Right:  h.chartWidth - offsetRight,
		Bottom: h.chartHeight - offsetBottom,
	}
	h.revision++
}

// OffsetLeft returns the space between the view's left edge and the content.
func (h *Handler) OffsetLeft() float64 { return h.content.Left }

// OffsetRight returns the space between the content and the view's right edge.
func (h *Handler) OffsetRight() float64 { return h.chartWidth - h.content.Right }

// OffsetTop returns the space between the view's top edge and the content.
func (h *Handler) OffsetTop() float64 { return h.content.Top }

// OffsetBottom returns the space between the content and the view's bottom edge.
func (h *Handler) OffsetBottom() float64 { return h.chartHeight - h.content.Bottom }

// ContentLeft returns the left edge of the content rect.
func (h *Handler) ContentLeft() float64 { return h.content.Left }

// ContentTop returns the top edge of the content rect.
func (h *Handler) ContentTop() float64 { return h.content.Top }

// ContentRight returns the right edge of the content rect.
func (h *Handler) ContentRight() float64 { return h.content.Right }

// ContentBottom returns the bottom edge of the content rect.
func (h *Handler) ContentBottom() float64 { return h.content.Bottom }

// ContentWidth returns the width of the content rect.
func (h *Handler) ContentWidth() float64 { return h.content.Width() }

// ContentHeight returns the height of the content rect.
func (h *Handler) ContentHeight() float64 { return h.content.Height() }

// ContentRect returns the pixel area data is drawn into.
func (h *Handler) ContentRect() ggchart.Rect { return h.content }

// ContentCenter returns the center of the content rect.
func (h *Handler) ContentCenter() ggchart.Point { return h.content.Center() }

// ChartWidth returns the view width.
func (h *Handler) ChartWidth() float64 { return h.chartWidth }

// ChartHeight returns the view height.
func (h *Handler) ChartHeight() float64 { return h.chartHeight }

// SmallestContentExtension returns the shorter side of the content rect.
func (h *Handler) SmallestContentExtension() float64 {
	return math.Min(h.content.Width(), h.content.Height())
}

// TouchMatrix returns the current pan/zoom matrix.
func (h *Handler) TouchMatrix() ggchart.Matrix { return h.touch }

// Revision increases every time the touch matrix or the content rect
// changes. Derived matrices may be cached while it stays the same.
func (h *Handler) Revision() uint64 { return h.revision }

// TouchPoint converts a view pixel into touch-matrix space.
func (h *Handler) TouchPoint(x, y float64) ggchart.Point {
	return ggchart.Point{
		X: x - h.OffsetLeft(),
		Y: -(h.chartHeight - y - h.OffsetBottom()),
	}
}

// ZoomIn zooms in by 1.4 about a pivot given in touch-matrix space.
func (h *Handler) ZoomIn(x, y float64) ggchart.Matrix {
	return h.Refresh(h.touch.PostScaleAt(zoomInFactor, zoomInFactor, x, y))
}

// ZoomOut zooms out by 0.7 about a pivot given in touch-matrix space.
func (h *Handler) ZoomOut(x, y float64) ggchart.Matrix {
	return h.Refresh(h.touch.PostScaleAt(zoomOutFactor, zoomOutFactor, x, y))
}

// ResetZoom re-applies the current matrix through the clamp.
func (h *Handler) ResetZoom() ggchart.Matrix {
	return h.Refresh(h.touch)
}

// Zoom scales the current matrix relative to its current scale, anchored
// at the touch-space origin.
func (h *Handler) Zoom(scaleX, scaleY float64) ggchart.Matrix {
	return h.Refresh(h.touch.PostScale(scaleX, scaleY))
}

// ZoomAtPosition scales the current matrix about a touch-space pivot.
func (h *Handler) ZoomAtPosition(scaleX, scaleY, x, y float64) ggchart.Matrix {
	return h.Refresh(h.touch.PostScaleAt(scaleX, scaleY, x, y))
}

// SetZoom replaces the matrix with an absolute scale and no translation.
func (h *Handler) SetZoom(scaleX, scaleY float64) ggchart.Matrix {
	return h.Refresh(ggchart.Scale(scaleX, scaleY))
}

// SetZoomAtPosition replaces the matrix with an absolute scale about a
// touch-space pivot.
func (h *Handler) SetZoomAtPosition(scaleX, scaleY, x, y float64) ggchart.Matrix {
	return h.Refresh(ggchart.ScaleAt(scaleX, scaleY, x, y))
}

// FitScreen removes all zoom and pan and resets the minimum scales to 1.
func (h *Handler) FitScreen() ggchart.Matrix {
	h.minScaleX = 1
	h.minScaleY = 1
	return h.Refresh(h.touch.WithScaleTrans(1, 1, 0, 0))
}

// Translate moves the view so that the pixel pt lands on the top-left
// corner of the content rect.
func (h *Handler) Translate(pt ggchart.Point) ggchart.Matrix {
	x := pt.X - h.OffsetLeft()
	y := pt.Y - h.OffsetTop()
	return h.Refresh(h.touch.PostTranslate(-x, -y))
}

// CenterViewPort is Translate applied as a view-centering move.
func (h *Handler) CenterViewPort(pt ggchart.Point) ggchart.Matrix {
	return h.Translate(pt)
}

// Refresh clamps m, stores it as the touch matrix and returns it.
func (h *Handler) Refresh(m ggchart.Matrix) ggchart.Matrix {
	clamped := h.LimitTransAndScale(m)
	if clamped != m {
		ggchart.Logger().Debug("viewport: matrix clamped",
			"scaleX", m.ScaleX(), "scaleY", m.ScaleY(),
			"clampedScaleX", clamped.ScaleX(), "clampedScaleY", clamped.ScaleY())
	}
	h.apply(clamped)
	return clamped
}

func (h *Handler) apply(m ggchart.Matrix) {
	h.touch = m
	h.scaleX = m.ScaleX()
	h.scaleY = m.ScaleY()
	h.transX = m.TransX()
	h.transY = m.TransY()
	h.revision++
}

// LimitTransAndScale returns m with its scale clamped into the zoom bounds
// and its translation clamped so the scaled content cannot be dragged
// further than the drag offsets past the content rect. It does not modify
// the handler and is idempotent.
func (h *Handler) LimitTransAndScale(m ggchart.Matrix) ggchart.Matrix {
	scaleX := clampScale(m.ScaleX(), h.minScaleX, h.maxScaleX)
	scaleY := clampScale(m.ScaleY(), h.minScaleY, h.maxScaleY)

	width := h.content.Width()
	height := h.content.Height()

	maxTransX := -width * (scaleX - 1)
	transX := math.Min(math.Max(finiteOr(m.TransX(), 0), maxTransX-h.dragOffsetX), h.dragOffsetX)

	maxTransY := height * (scaleY - 1)
	transY := math.Max(math.Min(finiteOr(m.TransY(), 0), maxTransY+h.dragOffsetY), -h.dragOffsetY)

	return m.WithScaleTrans(scaleX, scaleY, transX, transY)
}

func clampScale(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = lo
	}
	return math.Min(math.Max(lo, v), hi)
}

// SetMinimumScaleX sets the minimum x zoom. Values below 1 become 1.
func (h *Handler) SetMinimumScaleX(v float64) {
	h.minScaleX = minBound(v)
	h.Refresh(h.touch)
}

// SetMaximumScaleX sets the maximum x zoom. Zero or less means unbounded.
func (h *Handler) SetMaximumScaleX(v float64) {
	h.maxScaleX = maxBound(v)
	h.Refresh(h.touch)
}

// SetMinMaxScaleX sets both x zoom bounds.
func (h *Handler) SetMinMaxScaleX(minScale, maxScale float64) {
	h.minScaleX = minBound(minScale)
	h.maxScaleX = maxBound(maxScale)
	h.Refresh(h.touch)
}

// SetMinimumScaleY sets the minimum y zoom. Values below 1 become 1.
func (h *Handler) SetMinimumScaleY(v float64) {
	h.minScaleY = minBound(v)
	h.Refresh(h.touch)
}

// SetMaximumScaleY sets the maximum y zoom. Zero or less means unbounded.
func (h *Handler) SetMaximumScaleY(v float64) {
	h.maxScaleY = maxBound(v)
	h.Refresh(h.touch)
}

// SetMinMaxScaleY sets both y zoom bounds.
func (h *Handler) SetMinMaxScaleY(minScale, maxScale float64) {
	h.minScaleY = minBound(minScale)
	h.maxScaleY = maxBound(maxScale)
	h.Refresh(h.touch)
}

func minBound(v float64) float64 {
	if v < 1 || math.IsNaN(v) {
		return 1
	}
	return v
}

func maxBound(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// MinScaleX returns the smallest allowed x scale.
func (h *Handler) MinScaleX() float64 { return h.minScaleX }

// MaxScaleX returns the largest allowed x scale, +Inf when unbounded.
func (h *Handler) MaxScaleX() float64 { return h.maxScaleX }

// MinScaleY returns the smallest allowed y scale.
func (h *Handler) MinScaleY() float64 { return h.minScaleY }

// MaxScaleY returns the largest allowed y scale, +Inf when unbounded.
func (h *Handler) MaxScaleY() float64 { return h.maxScaleY }

// ScaleX returns the clamped x scale of the touch matrix.
func (h *Handler) ScaleX() float64 { return h.scaleX }

// ScaleY returns the clamped y scale of the touch matrix.
func (h *Handler) ScaleY() float64 { return h.scaleY }

// TransX returns the clamped x translation of the touch matrix.
func (h *Handler) TransX() float64 { return h.transX }

// TransY returns the clamped y translation of the touch matrix.
func (h *Handler) TransY() float64 { return h.transY }

// SetDragOffsetX sets how far, in pixels, content may be dragged past its
// horizontal bounds.
func (h *Handler) SetDragOffsetX(offset float64) {
	h.dragOffsetX = math.Max(0, sanitize(offset))
}

// SetDragOffsetY sets how far, in pixels, content may be dragged past its
// vertical bounds.
func (h *Handler) SetDragOffsetY(offset float64) {
	h.dragOffsetY = math.Max(0, sanitize(offset))
}

// DragOffsetX returns the horizontal drag offset in pixels.
func (h *Handler) DragOffsetX() float64 { return h.dragOffsetX }

// DragOffsetY returns the vertical drag offset in pixels.
func (h *Handler) DragOffsetY() float64 { return h.dragOffsetY }

// HasNoDragOffset reports whether both drag offsets are zero.
func (h *Handler) HasNoDragOffset() bool {
	return h.dragOffsetX <= 0 && h.dragOffsetY <= 0
}

// IsFullyZoomedOut reports whether neither axis can zoom out further.
func (h *Handler) IsFullyZoomedOut() bool {
	return h.IsFullyZoomedOutX() && h.IsFullyZoomedOutY()
}

// IsFullyZoomedOutX reports whether the x scale is at its minimum and that
// minimum is 1.
func (h *Handler) IsFullyZoomedOutX() bool {
	return h.scaleX <= h.minScaleX && h.minScaleX <= 1
}

// IsFullyZoomedOutY reports whether the y scale is at its minimum and that
// minimum is 1.
func (h *Handler) IsFullyZoomedOutY() bool {
	return h.scaleY <= h.minScaleY && h.minScaleY <= 1
}

// CanZoomOutMoreX reports whether the x scale is above its minimum.
func (h *Handler) CanZoomOutMoreX() bool { return h.scaleX > h.minScaleX }

// CanZoomInMoreX reports whether the x scale is below its maximum.
func (h *Handler) CanZoomInMoreX() bool { return h.scaleX < h.maxScaleX }

// CanZoomOutMoreY reports whether the y scale is above its minimum.
func (h *Handler) CanZoomOutMoreY() bool { return h.scaleY > h.minScaleY }

// CanZoomInMoreY reports whether the y scale is below its maximum.
func (h *Handler) CanZoomInMoreY() bool { return h.scaleY < h.maxScaleY }

// IsInBoundsLeft reports whether x is not left of the content, with one
// pixel of tolerance.
func (h *Handler) IsInBoundsLeft(x float64) bool {
	return h.content.Left <= x+1
}

// IsInBoundsRight reports whether x is not right of the content, with one
// pixel of tolerance.
func (h *Handler) IsInBoundsRight(x float64) bool {
	return h.content.Right >= x-1
}

// IsInBoundsTop reports whether y is not above the content.
func (h *Handler) IsInBoundsTop(y float64) bool { return h.content.Top <= y }

// IsInBoundsBottom reports whether y is not below the content.
func (h *Handler) IsInBoundsBottom(y float64) bool { return h.content.Bottom >= y }

// IsInBoundsX reports whether x lies between the content's left and right
// edges.
func (h *Handler) IsInBoundsX(x float64) bool {
	return h.IsInBoundsLeft(x) && h.IsInBoundsRight(x)
}

// IsInBoundsY reports whether y lies between the content's top and bottom
// edges.
func (h *Handler) IsInBoundsY(y float64) bool {
	return h.IsInBoundsTop(y) && h.IsInBoundsBottom(y)
}

// IsInBounds reports whether the pixel lies inside the content rect.
func (h *Handler) IsInBounds(x, y float64) bool {
	return h.IsInBoundsX(x) && h.IsInBoundsY(y)
}

func sanitize(v float64) float64 {
	return finiteOr(v, 0)
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
