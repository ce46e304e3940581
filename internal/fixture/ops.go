package fixture

import (
	"fmt"
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
)

// FrameInterval is the clock step Settle advances animations by.
const FrameInterval = 16 * time.Millisecond

// maxFrames bounds Settle for animations that never finish.
const maxFrames = 10000

// Apply runs the ops in order. Animated ops start at the next Settle.
func (c *Chart) Apply(ops []Op) error {
	for i, op := range ops {
		if err := c.apply(op); err != nil {
			return fmt.Errorf("fixture: op %d (%s): %w", i, op.Op, err)
		}
		ggchart.Logger().Debug("fixture: op applied", "index", i, "op", op.Op)
	}
	return nil
}

func (c *Chart) apply(op Op) error {
	if c.Radial != nil {
		return c.applyRadial(op)
	}
	dep, err := parseAxis(op.Axis)
	if err != nil {
		return err
	}

	bl := c.BarLine
	switch op.Op {
	case "zoom":
		bl.Zoom(op.ScaleX, op.ScaleY, op.X, op.Y)
	case "zoomIn":
		bl.ZoomIn()
	case "zoomOut":
		bl.ZoomOut()
	case "zoomToCenter":
		bl.ZoomToCenter(op.ScaleX, op.ScaleY)
	case "zoomAtValue":
		bl.ZoomAtValue(op.ScaleX, op.ScaleY, op.X, op.Y, dep)
	case "zoomAndCenterAnimated":
		bl.ZoomAndCenterAnimated(op.ScaleX, op.ScaleY, op.X, op.Y, dep, op.Duration)
	case "resetZoom":
		bl.ResetZoom()
	case "fitScreen":
		bl.FitScreen()
	case "scaleMinima":
		bl.SetScaleMinima(op.ScaleX, op.ScaleY)
	case "visibleXRange":
		bl.SetVisibleXRange(op.Min, op.Max)
	case "visibleYRange":
		bl.SetVisibleYRange(op.Min, op.Max, dep)
	case "moveViewToX":
		bl.MoveViewToX(op.X)
	case "moveViewTo":
		bl.MoveViewTo(op.X, op.Y, dep)
	case "moveViewToAnimated":
		bl.MoveViewToAnimated(op.X, op.Y, dep, op.Duration)
	case "centerViewTo":
		bl.CenterViewTo(op.X, op.Y, dep)
	case "centerViewToY":
		bl.CenterViewToY(op.Y, dep)
	case "centerViewToAnimated":
		bl.CenterViewToAnimated(op.X, op.Y, dep, op.Duration)
	case "rotate", "phase", "maxAngle", "minSliceAngle":
		return ErrNotCartesian
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func (c *Chart) applyRadial(op Op) error {
	r := c.Radial
	switch op.Op {
	case "rotate":
		r.SetRotationAngle(op.Angle)
	case "phase":
		r.SetPhase(op.X, op.Y)
	case "maxAngle":
		r.SetMaxAngle(op.Angle)
	case "minSliceAngle":
		r.SetMinAngleForSlices(op.Angle)
	default:
		return fmt.Errorf("%w: %q", ErrNotCartesian, op.Op)
	}
	return nil
}

// Settle advances a synthetic clock from start until no animation is
// running and returns the number of frames it took.
func (c *Chart) Settle(start time.Time) int {
	if c.BarLine == nil {
		return 0
	}
	now := start
	frames := 0
	for frames < maxFrames {
		frames++
		if !c.BarLine.Tick(now) {
			break
		}
		now = now.Add(FrameInterval)
	}
	return frames
}

// ValueToPixel maps values of the axis dep to a pixel.
func (c *Chart) ValueToPixel(x, y float64, dep axis.Dependency) (ggchart.Point, error) {
	if c.BarLine == nil {
		return ggchart.Point{}, ErrNotCartesian
	}
	return c.BarLine.PixelForValues(x, y, dep), nil
}

// PixelToValue maps a pixel to values of the axis dep.
func (c *Chart) PixelToValue(x, y float64, dep axis.Dependency) (ggchart.Point, error) {
	if c.BarLine == nil {
		return ggchart.Point{}, ErrNotCartesian
	}
	return c.BarLine.ValuesByTouchPoint(x, y, dep), nil
}

// ParseAxis parses "left" or "right". The empty string is left.
func ParseAxis(name string) (axis.Dependency, error) { return parseAxis(name) }

// IsCartesian reports whether the chart has x/y axes.
func (c *Chart) IsCartesian() bool { return !c.Kind.IsRadial() }
