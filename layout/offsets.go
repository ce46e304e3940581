package layout

import (
	"math"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/viewport"
)

// DefaultMinOffset is the smallest offset on every side of the content.
const DefaultMinOffset = 15

// DefaultLabelPadding is the space between a label and the content edge,
// applied on both sides of y labels and below x labels.
const DefaultLabelPadding = 5

// Insets are distances measured inward from each edge of the view.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Max returns the side-wise maximum of i and o.
func (i Insets) Max(o Insets) Insets {
	return Insets{
		Left:   math.Max(i.Left, o.Left),
		Top:    math.Max(i.Top, o.Top),
		Right:  math.Max(i.Right, o.Right),
		Bottom: math.Max(i.Bottom, o.Bottom),
	}
}

// Uniform returns insets of v on every side.
func Uniform(v float64) Insets { return Insets{v, v, v, v} }

// Axes are the axes of a Cartesian chart together with their formatted
// labels. A nil axis takes no space.
type Axes struct {
	X           *axis.Axis
	Left, Right *axis.Axis

	XLabels, LeftLabels, RightLabels []string

	// Horizontal lays the axes out for a horizontal bar chart: the left
	// axis runs along the top, the right axis along the bottom and x
	// labels sit beside the content.
	Horizontal bool
}

// Calculator computes content offsets.
type Calculator struct {
	measurer     Measurer
	minOffset    float64
	extra        Insets
	labelPadding float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMinOffset sets the smallest offset on every side.
func WithMinOffset(v float64) Option {
	return func(c *Calculator) {
		c.minOffset = math.Max(v, 0)
	}
}

// WithExtraOffsets adds fixed space on each side, on top of the labels.
func WithExtraOffsets(extra Insets) Option {
	return func(c *Calculator) {
		c.extra = extra
	}
}

// WithLabelPadding sets the space between labels and the content.
func WithLabelPadding(v float64) Option {
	return func(c *Calculator) {
		c.labelPadding = math.Max(v, 0)
	}
}

// New creates a Calculator measuring labels with m.
func New(m Measurer, opts ...Option) *Calculator {
	c := &Calculator{
		measurer:     m,
		minOffset:    DefaultMinOffset,
		labelPadding: DefaultLabelPadding,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Measurer returns the label measurer.
func (c *Calculator) Measurer() Measurer { return c.measurer }

// Offsets returns the space the axes need around the content.
func (c *Calculator) Offsets(a Axes) Insets {
	if a.Horizontal {
		return c.horizontalOffsets(a)
	}
	var off Insets
	if needsLabels(a.Left) {
		off.Left += c.yLabelWidth(a.LeftLabels)
	}
	if needsLabels(a.Right) {
		off.Right += c.yLabelWidth(a.RightLabels)
	}
	if needsLabels(a.X) {
		h := c.xLabelHeight(a.XLabels)
		switch a.X.Position {
		case axis.Bottom:
			off.Bottom += h
		case axis.Top:
			off.Top += h
		case axis.BothSided:
			off.Bottom += h
			off.Top += h
		}
	}
	return c.finish(off)
}

func (c *Calculator) horizontalOffsets(a Axes) Insets {
	var off Insets
	if needsLabels(a.Left) {
		off.Top += c.yLabelHeight(a.LeftLabels)
	}
	if needsLabels(a.Right) {
		off.Bottom += c.yLabelHeight(a.RightLabels)
	}
	if needsLabels(a.X) {
		w := c.xLabelWidth(a.XLabels)
		switch a.X.Position {
		case axis.Bottom:
			off.Left += w
		case axis.Top:
			off.Right += w
		case axis.BothSided:
			off.Left += w
			off.Right += w
		}
	}
	return c.finish(off)
}

func (c *Calculator) finish(off Insets) Insets {
	off.Left += c.extra.Left
	off.Top += c.extra.Top
	off.Right += c.extra.Right
	off.Bottom += c.extra.Bottom
	return off.Max(Uniform(c.minOffset))
}

// Apply computes the offsets and restrains vp's content rect to them.
func (c *Calculator) Apply(vp *viewport.Handler, a Axes) Insets {
	off := c.Offsets(a)
	vp.RestrainViewPort(off.Left, off.Top, off.Right, off.Bottom)
	return off
}

// RadialOffsets returns the offsets of a pie or radar chart. Labels are
// drawn around the web, so the widest one raises the minimum offset on
// every side.
func (c *Calculator) RadialOffsets(labels []string) Insets {
	w := 0.0
	for _, l := range labels {
		lw, _ := c.measurer.Measure(l)
		w = math.Max(w, lw)
	}
	return c.extra.Max(Uniform(math.Max(c.minOffset, w)))
}

// ApplyRadial computes the radial offsets and restrains vp's content rect
// to them.
func (c *Calculator) ApplyRadial(vp *viewport.Handler, labels []string) Insets {
	off := c.RadialOffsets(labels)
	vp.RestrainViewPort(off.Left, off.Top, off.Right, off.Bottom)
	return off
}

func needsLabels(a *axis.Axis) bool {
	return a != nil && a.Enabled && a.DrawLabels
}

func (c *Calculator) yLabelWidth(labels []string) float64 {
	w := 0.0
	for _, l := range labels {
		lw, _ := c.measurer.Measure(l)
		w = math.Max(w, lw)
	}
	return w + 2*c.labelPadding
}

func (c *Calculator) xLabelHeight(labels []string) float64 {
	return c.maxHeight(labels) + c.labelPadding
}

func (c *Calculator) yLabelHeight(labels []string) float64 {
	return c.maxHeight(labels) + 2*c.labelPadding
}

func (c *Calculator) xLabelWidth(labels []string) float64 {
	w := 0.0
	for _, l := range labels {
		lw, _ := c.measurer.Measure(l)
		w = math.Max(w, lw)
	}
	return w + c.labelPadding
}

func (c *Calculator) maxHeight(labels []string) float64 {
	h := 0.0
	for _, l := range labels {
		_, lh := c.measurer.Measure(l)
		h = math.Max(h, lh)
	}
	return h
}

// Labels recomputes the tick values of a and formats them. A nil f formats
// with the axis' own decimals.
func Labels(a *axis.Axis, f format.Formatter) []string {
	if a == nil {
		return nil
	}
	vals := a.UpdateEntries()
	if f == nil {
		f = format.NewDefault(a.Decimals())
	}
	labels := make([]string, len(vals))
	for i, v := range vals {
		labels[i] = f.Format(v)
	}
	return labels
}
