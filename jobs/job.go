// Package jobs runs deferred and animated viewport changes.
//
// A job moves or zooms a chart's viewport toward a target expressed in
// data values. Instant jobs apply in one step; animated jobs interpolate
// over a duration, driven by Queue.Tick from the host's frame clock.
// Whenever a job finishes or is canceled the view's offsets are
// recalculated exactly once.
package jobs

import (
	"time"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/transform"
	"github.com/gogpu/ggchart/viewport"
)

// View is the chart a job drives.
type View interface {
	Viewport() *viewport.Handler

	// AxisRanges returns the value span of the x axis and of the y axis
	// on dep.
	AxisRanges(dep axis.Dependency) (xRange, yRange float64)

	// CalculateOffsets recomputes the content rect after the viewport
	// changed.
	CalculateOffsets()
}

// Job is a viewport change. Jobs are created by the constructors in this
// package or taken from a Pool, and executed by a Queue.
type Job interface {
	View() View

	// Duration is zero for instant jobs.
	Duration() time.Duration

	start(now time.Time)
	step(now time.Time) (done bool)
}

// MoveViewJob places the value (X, Y) at the top-left corner of the
// content rect.
type MoveViewJob struct {
	view  View
	trans *transform.Transformer

	X, Y float64

	pooled bool
}

// NewMoveViewJob creates an instant move.
func NewMoveViewJob(v View, tr *transform.Transformer, x, y float64) *MoveViewJob {
	return &MoveViewJob{view: v, trans: tr, X: x, Y: y}
}

func (j *MoveViewJob) View() View              { return j.view }
func (j *MoveViewJob) Duration() time.Duration { return 0 }
func (j *MoveViewJob) start(time.Time)         {}

func (j *MoveViewJob) step(time.Time) bool {
	j.view.Viewport().CenterViewPort(j.trans.PixelForValues(j.X, j.Y))
	return true
}

func (j *MoveViewJob) reset() {
	*j = MoveViewJob{pooled: j.pooled}
}

// ZoomJob multiplies the current zoom by (ScaleX, ScaleY) and centers the
// value (X, Y) in the content rect.
type ZoomJob struct {
	view  View
	trans *transform.Transformer

	Axis           axis.Dependency
	ScaleX, ScaleY float64
	X, Y           float64

	pooled bool
}

// NewZoomJob creates an instant zoom. The y value is read on the axis dep.
func NewZoomJob(v View, tr *transform.Transformer, dep axis.Dependency, scaleX, scaleY, x, y float64) *ZoomJob {
	return &ZoomJob{view: v, trans: tr, Axis: dep, ScaleX: scaleX, ScaleY: scaleY, X: x, Y: y}
}

func (j *ZoomJob) View() View              { return j.view }
func (j *ZoomJob) Duration() time.Duration { return 0 }
func (j *ZoomJob) start(time.Time)         {}

func (j *ZoomJob) step(time.Time) bool {
	vp := j.view.Viewport()
	vp.Zoom(j.ScaleX, j.ScaleY)

	xRange, yRange := j.view.AxisRanges(j.Axis)
	xIn := xRange / vp.ScaleX()
	yIn := yRange / vp.ScaleY()
	vp.Translate(j.trans.PixelForValues(j.X-xIn/2, j.Y+yIn/2))
	return true
}

func (j *ZoomJob) reset() {
	*j = ZoomJob{pooled: j.pooled}
}
