package chart

import (
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/jobs"
	"github.com/gogpu/ggchart/layout"
)

// ZoomIn zooms in by 1.4 into the center of the content.
func (c *BarLine) ZoomIn() {
	p := c.contentCenter()
	c.vp.ZoomIn(p.X, p.Y)
	c.CalculateOffsets()
}

// ZoomOut zooms out by 0.7 from the center of the content.
func (c *BarLine) ZoomOut() {
	p := c.contentCenter()
	c.vp.ZoomOut(p.X, p.Y)
	c.CalculateOffsets()
}

// ResetZoom removes all zoom and pan.
func (c *BarLine) ResetZoom() {
	c.vp.SetZoom(1, 1)
	c.CalculateOffsets()
}

// Zoom multiplies the zoom by (scaleX, scaleY) about the pixel (x, y).
// Factors below 1 zoom out.
func (c *BarLine) Zoom(scaleX, scaleY, x, y float64) {
	p := c.vp.TouchPoint(x, y)
	c.vp.ZoomAtPosition(scaleX, scaleY, p.X, p.Y)
	c.CalculateOffsets()
}

// ZoomToCenter multiplies the zoom by (scaleX, scaleY) about the center of
// the content.
func (c *BarLine) ZoomToCenter(scaleX, scaleY float64) {
	p := c.contentCenter()
	c.vp.ZoomAtPosition(scaleX, scaleY, p.X, p.Y)
	c.CalculateOffsets()
}

// contentCenter returns the center of the content rect in touch-matrix
// space.
func (c *BarLine) contentCenter() ggchart.Point {
	center := c.vp.ContentCenter()
	return c.vp.TouchPoint(center.X, center.Y)
}

// ZoomAtValue multiplies the zoom by (scaleX, scaleY) and centers the
// values (x, y) of the axis dep. It runs once the chart has a size.
func (c *BarLine) ZoomAtValue(scaleX, scaleY, x, y float64, dep axis.Dependency) {
	c.queue.Post(c.queue.Pool().Zoom(c, c.Transformer(dep), dep, scaleX, scaleY, x, y))
}

// ZoomAndCenterAnimated animates to the absolute zoom (scaleX, scaleY)
// with the values (x, y) of the axis dep centered.
func (c *BarLine) ZoomAndCenterAnimated(scaleX, scaleY, x, y float64, dep axis.Dependency, d time.Duration) {
	origin := c.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentTop(), dep)

	j := jobs.NewAnimatedZoomJob(c, c.Transformer(dep), dep, d, c.cfg.easing)
	j.ScaleX, j.ScaleY = scaleX, scaleY
	j.OriginScaleX, j.OriginScaleY = c.vp.ScaleX(), c.vp.ScaleY()
	j.CenterX, j.CenterY = x, y
	j.OriginX, j.OriginY = origin.X, origin.Y
	c.queue.Post(j)
}

// FitScreen removes all zoom and pan and resets the minimum zoom to 1.
func (c *BarLine) FitScreen() {
	c.vp.FitScreen()
	c.CalculateOffsets()
}

// SetScaleMinima sets the smallest zoom on both axes. 1 fits the screen.
func (c *BarLine) SetScaleMinima(scaleX, scaleY float64) {
	c.vp.SetMinimumScaleX(scaleX)
	c.vp.SetMinimumScaleY(scaleY)
}

// SetVisibleXRangeMaximum limits zooming out so that at most maxRange x
// values are visible at once.
func (c *BarLine) SetVisibleXRangeMaximum(maxRange float64) {
	if s, ok := c.scaleFor(c.xAxis, maxRange); ok {
		c.vp.SetMinimumScaleX(s)
	}
}

// SetVisibleXRangeMinimum limits zooming in so that at least minRange x
// values are visible at once.
func (c *BarLine) SetVisibleXRangeMinimum(minRange float64) {
	if s, ok := c.scaleFor(c.xAxis, minRange); ok {
		c.vp.SetMaximumScaleX(s)
	}
}

// SetVisibleXRange limits the visible x range to [minRange, maxRange].
func (c *BarLine) SetVisibleXRange(minRange, maxRange float64) {
	maxScale, ok1 := c.scaleFor(c.xAxis, minRange)
	minScale, ok2 := c.scaleFor(c.xAxis, maxRange)
	if ok1 && ok2 {
		c.vp.SetMinMaxScaleX(minScale, maxScale)
	}
}

// SetVisibleYRangeMaximum limits zooming out so that at most maxRange
// values of the axis dep are visible at once.
func (c *BarLine) SetVisibleYRangeMaximum(maxRange float64, dep axis.Dependency) {
	if s, ok := c.scaleFor(c.Axis(dep), maxRange); ok {
		c.vp.SetMinimumScaleY(s)
	}
}

// SetVisibleYRangeMinimum limits zooming in so that at least minRange
// values of the axis dep are visible at once.
func (c *BarLine) SetVisibleYRangeMinimum(minRange float64, dep axis.Dependency) {
	if s, ok := c.scaleFor(c.Axis(dep), minRange); ok {
		c.vp.SetMaximumScaleY(s)
	}
}

// SetVisibleYRange limits the visible range of the axis dep to
// [minRange, maxRange].
func (c *BarLine) SetVisibleYRange(minRange, maxRange float64, dep axis.Dependency) {
	a := c.Axis(dep)
	maxScale, ok1 := c.scaleFor(a, minRange)
	minScale, ok2 := c.scaleFor(a, maxRange)
	if ok1 && ok2 {
		c.vp.SetMinMaxScaleY(minScale, maxScale)
	}
}

// scaleFor returns the zoom at which exactly visible values of a fit the
// content.
func (c *BarLine) scaleFor(a *axis.Axis, visible float64) (float64, bool) {
	if !(visible > 0) {
		ggchart.Logger().Debug("chart: ignoring non-positive visible range", "range", visible)
		return 0, false
	}
	return a.Resolved().Range / visible, true
}

// valuesInView returns the x and y spans visible at the current zoom.
func (c *BarLine) valuesInView(dep axis.Dependency) (xIn, yIn float64) {
	xRange, yRange := c.AxisRanges(dep)
	return xRange / c.vp.ScaleX(), yRange / c.vp.ScaleY()
}

// MoveViewToX moves the left edge of the content to the x value.
func (c *BarLine) MoveViewToX(x float64) {
	c.queue.Post(c.queue.Pool().MoveView(c, c.transformer(), x, 0))
}

// MoveViewTo moves the left edge of the content to the x value and
// centers the y value of the axis dep.
func (c *BarLine) MoveViewTo(x, y float64, dep axis.Dependency) {
	_, yIn := c.valuesInView(dep)
	c.queue.Post(c.queue.Pool().MoveView(c, c.Transformer(dep), x, y+yIn/2))
}

// MoveViewToAnimated is MoveViewTo animated over d.
func (c *BarLine) MoveViewToAnimated(x, y float64, dep axis.Dependency, d time.Duration) {
	_, yIn := c.valuesInView(dep)
	c.postAnimatedMove(x, y+yIn/2, dep, d)
}

// CenterViewToY centers the y value of the axis dep and keeps the x
// position.
func (c *BarLine) CenterViewToY(y float64, dep axis.Dependency) {
	_, yIn := c.valuesInView(dep)
	x := c.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentTop(), dep).X
	c.queue.Post(c.queue.Pool().MoveView(c, c.Transformer(dep), x, y+yIn/2))
}

// CenterViewTo centers the values (x, y) of the axis dep.
func (c *BarLine) CenterViewTo(x, y float64, dep axis.Dependency) {
	xIn, yIn := c.valuesInView(dep)
	c.queue.Post(c.queue.Pool().MoveView(c, c.Transformer(dep), x-xIn/2, y+yIn/2))
}

// CenterViewToAnimated is CenterViewTo animated over d.
func (c *BarLine) CenterViewToAnimated(x, y float64, dep axis.Dependency, d time.Duration) {
	xIn, yIn := c.valuesInView(dep)
	c.postAnimatedMove(x-xIn/2, y+yIn/2, dep, d)
}

func (c *BarLine) postAnimatedMove(x, y float64, dep axis.Dependency, d time.Duration) {
	origin := c.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentTop(), dep)
	c.queue.Post(jobs.NewAnimatedMoveViewJob(c, c.Transformer(dep), x, y, origin.X, origin.Y, d, c.cfg.easing))
}

// SetViewPortOffsets fixes the offsets around the content, disabling
// their automatic calculation until ResetViewPortOffsets.
func (c *BarLine) SetViewPortOffsets(left, top, right, bottom float64) {
	c.customViewPort = true
	c.offsets = layout.Insets{Left: left, Top: top, Right: right, Bottom: bottom}
	c.vp.RestrainViewPort(left, top, right, bottom)
	c.prepareOffsetMatrix()
	c.prepareValuePxMatrix()
}

// ResetViewPortOffsets returns to automatically calculated offsets.
func (c *BarLine) ResetViewPortOffsets() {
	c.customViewPort = false
	c.CalculateOffsets()
}
