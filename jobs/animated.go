package jobs

import (
	"time"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/transform"
)

// Easing maps linear progress in [0, 1] to animation phase. It must map 0
// to 0 and 1 to 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOutQuad accelerates through the first half and decelerates
// through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// EaseOutCubic starts fast and settles gently.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// animation tracks the phase of an animated job.
type animation struct {
	duration time.Duration
	easing   Easing
	started  time.Time
	phase    float64
}

func newAnimation(d time.Duration, e Easing) animation {
	if e == nil {
		e = Linear
	}
	return animation{duration: d, easing: e}
}

func (a *animation) begin(now time.Time) {
	a.started = now
	a.phase = 0
}

// advance returns the eased phase at now and whether the animation has
// reached its end. The final phase is exactly 1.
func (a *animation) advance(now time.Time) (float64, bool) {
	if a.duration <= 0 {
		a.phase = 1
		return 1, true
	}
	t := float64(now.Sub(a.started)) / float64(a.duration)
	if t >= 1 {
		a.phase = 1
		return 1, true
	}
	a.phase = a.easing(max(t, 0))
	return a.phase, false
}

// lerp interpolates from a to b and returns b exactly at phase 1.
func lerp(a, b, phase float64) float64 {
	if phase >= 1 {
		return b
	}
	return a + (b-a)*phase
}

// AnimatedMoveViewJob moves the top-left corner of the content rect from
// the value (OriginX, OriginY) to (X, Y).
type AnimatedMoveViewJob struct {
	view  View
	trans *transform.Transformer
	anim  animation

	X, Y             float64
	OriginX, OriginY float64
}

// NewAnimatedMoveViewJob creates an animated move. A nil easing is linear.
func NewAnimatedMoveViewJob(v View, tr *transform.Transformer, x, y, originX, originY float64, d time.Duration, e Easing) *AnimatedMoveViewJob {
	return &AnimatedMoveViewJob{
		view:    v,
		trans:   tr,
		anim:    newAnimation(d, e),
		X:       x,
		Y:       y,
		OriginX: originX,
		OriginY: originY,
	}
}

func (j *AnimatedMoveViewJob) View() View              { return j.view }
func (j *AnimatedMoveViewJob) Duration() time.Duration { return j.anim.duration }

// Phase returns the eased progress reached by the last step.
func (j *AnimatedMoveViewJob) Phase() float64 { return j.anim.phase }

func (j *AnimatedMoveViewJob) start(now time.Time) { j.anim.begin(now) }

func (j *AnimatedMoveViewJob) step(now time.Time) bool {
	phase, done := j.anim.advance(now)
	x := lerp(j.OriginX, j.X, phase)
	y := lerp(j.OriginY, j.Y, phase)
	j.view.Viewport().CenterViewPort(j.trans.PixelForValues(x, y))
	return done
}

// AnimatedZoomJob animates the zoom from (OriginScaleX, OriginScaleY) to
// (ScaleX, ScaleY) while the top-left corner travels from the value
// (OriginX, OriginY) to where (CenterX, CenterY) ends up centered.
type AnimatedZoomJob struct {
	view  View
	trans *transform.Transformer
	anim  animation

	Axis                       axis.Dependency
	ScaleX, ScaleY             float64
	OriginScaleX, OriginScaleY float64
	CenterX, CenterY           float64
	OriginX, OriginY           float64
}

// NewAnimatedZoomJob creates an animated zoom. A nil easing is linear.
func NewAnimatedZoomJob(v View, tr *transform.Transformer, dep axis.Dependency, d time.Duration, e Easing) *AnimatedZoomJob {
	return &AnimatedZoomJob{
		view:         v,
		trans:        tr,
		anim:         newAnimation(d, e),
		Axis:         dep,
		ScaleX:       1,
		ScaleY:       1,
		OriginScaleX: 1,
		OriginScaleY: 1,
	}
}

func (j *AnimatedZoomJob) View() View              { return j.view }
func (j *AnimatedZoomJob) Duration() time.Duration { return j.anim.duration }

// Phase returns the eased progress reached by the last step.
func (j *AnimatedZoomJob) Phase() float64 { return j.anim.phase }

func (j *AnimatedZoomJob) start(now time.Time) { j.anim.begin(now) }

func (j *AnimatedZoomJob) step(now time.Time) bool {
	phase, done := j.anim.advance(now)
	vp := j.view.Viewport()
	vp.SetZoom(lerp(j.OriginScaleX, j.ScaleX, phase), lerp(j.OriginScaleY, j.ScaleY, phase))

	xRange, yRange := j.view.AxisRanges(j.Axis)
	xIn := xRange / vp.ScaleX()
	yIn := yRange / vp.ScaleY()
	x := lerp(j.OriginX, j.CenterX-xIn/2, phase)
	y := lerp(j.OriginY, j.CenterY+yIn/2, phase)
	vp.Translate(j.trans.PixelForValues(x, y))
	return done
}
