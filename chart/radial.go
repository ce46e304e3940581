package chart

import (
	"math"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/viewport"
)

// Radial controls a radar or pie chart. Angles are in degrees, clockwise
// from 3 o'clock.
type Radial struct {
	selection

	cfg  config
	kind Kind

	vp    *viewport.Handler
	xAxis *axis.Axis
	yAxis *axis.Axis

	data *data.ChartData

	rotation       float64
	phaseX, phaseY float64

	maxAngle       float64
	minSliceAngle  float64
	drawAngles     []float64
	absoluteAngles []float64

	highlighter highlight.Highlighter

	layout  *layout.Calculator
	offsets layout.Insets
}

// NewRadar creates a radar chart controller.
func NewRadar(opts ...Option) *Radial {
	return newRadial(Radar, opts)
}

// NewPie creates a pie chart controller.
func NewPie(opts ...Option) *Radial {
	return newRadial(Pie, opts)
}

func newRadial(k Kind, opts []Option) *Radial {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.kind = k
	if cfg.measurer == nil {
		cfg.measurer = layout.DefaultMeasurer()
	}

	c := &Radial{
		selection: selection{onSelect: cfg.onSelect},
		cfg:       cfg,
		kind:      k,
		vp:        viewport.New(),
		xAxis:     axis.NewX(),
		yAxis:     axis.NewY(axis.Left),
		phaseX:    1,
		phaseY:    1,
		maxAngle:  360,
		rotation:  270,
		layout: layout.New(cfg.measurer,
			layout.WithMinOffset(cfg.minOffset),
			layout.WithExtraOffsets(cfg.extraOffsets)),
	}
	if k == Pie {
		c.xAxis.Enabled = false
		c.highlighter = highlight.NewPieHighlighter(c)
	} else {
		c.highlighter = highlight.NewRadarHighlighter(c)
	}
	return c
}

// Kind returns Radar or Pie.
func (c *Radial) Kind() Kind { return c.kind }

// Viewport returns the chart's viewport handler.
func (c *Radial) Viewport() *viewport.Handler { return c.vp }

// XAxis returns the axis of the radar spokes.
func (c *Radial) XAxis() *axis.Axis { return c.xAxis }

// YAxis returns the axis of the radar web.
func (c *Radial) YAxis() *axis.Axis { return c.yAxis }

// Offsets returns the offsets computed by the last CalculateOffsets.
func (c *Radial) Offsets() layout.Insets { return c.offsets }

// ChartData implements highlight.RadialProvider.
func (c *Radial) ChartData() *data.ChartData { return c.data }

// SetData replaces the chart's data and recalculates it.
func (c *Radial) SetData(d *data.ChartData) {
	c.data = d
	c.selection.clear()
	c.NotifyDataSetChanged()
}

// SetChartDimens sizes the chart and recalculates it.
func (c *Radial) SetChartDimens(width, height float64) {
	c.vp.SetChartDimens(width, height)
	c.NotifyDataSetChanged()
}

// NotifyDataSetChanged recomputes extents, the radar axes and the pie
// angles, then the offsets.
func (c *Radial) NotifyDataSetChanged() {
	if c.data == nil {
		ggchart.Logger().Debug("chart: data not set")
		return
	}
	c.data.NotifyDataChanged()
	if c.kind == Pie {
		c.calcAngles()
	} else {
		c.yAxis.Calculate(c.data.YMin(axis.Left), c.data.YMax(axis.Left))
		c.xAxis.Calculate(0, float64(c.spokes()))
	}
	if c.vp.HasChartDimens() {
		c.CalculateOffsets()
	}
}

// CalculateOffsets lays out the content rect. Radar spoke labels widen
// the minimum offset.
func (c *Radial) CalculateOffsets() {
	var labels []string
	if c.kind == Radar && c.xAxis.Enabled && c.xAxis.DrawLabels {
		labels = layout.Labels(c.xAxis, c.cfg.xFormatter)
	}
	c.offsets = c.layout.ApplyRadial(c.vp, labels)
	ggchart.Logger().Debug("chart: offsets calculated",
		"left", c.offsets.Left, "top", c.offsets.Top,
		"right", c.offsets.Right, "bottom", c.offsets.Bottom)
}

// spokes returns the entry count of the longest data set.
func (c *Radial) spokes() int {
	if c.data == nil {
		return 0
	}
	s := c.data.MaxEntryCountSet()
	if s == nil {
		return 0
	}
	return s.Len()
}

// Center implements highlight.RadialProvider. It is the center of the
// content rect.
func (c *Radial) Center() ggchart.Point { return c.vp.ContentCenter() }

// Radius implements highlight.RadialProvider.
func (c *Radial) Radius() float64 {
	r := c.vp.ContentRect()
	return math.Max(math.Min(r.Width()/2, r.Height()/2), 0)
}

// RotationAngle implements highlight.RadialProvider.
func (c *Radial) RotationAngle() float64 { return c.rotation }

// SetRotationAngle rotates the chart. The first slice or spoke starts at
// the given angle; the default of 270 starts at 12 o'clock.
func (c *Radial) SetRotationAngle(deg float64) {
	c.rotation = ggchart.NormalizedAngle(deg)
}

// PhaseX implements highlight.RadialProvider.
func (c *Radial) PhaseX() float64 { return c.phaseX }

// PhaseY implements highlight.RadialProvider.
func (c *Radial) PhaseY() float64 { return c.phaseY }

// SetPhase sets the progress of an entry animation on both axes. Values
// are clamped to [0, 1].
func (c *Radial) SetPhase(x, y float64) {
	c.phaseX = clampPhase(x)
	c.phaseY = clampPhase(y)
}

func clampPhase(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Min(math.Max(v, 0), 1)
}

// Factor implements highlight.RadarProvider. It converts values above
// YChartMin into distances from the center.
func (c *Radial) Factor() float64 {
	rng := c.yAxis.Resolved().Range
	if !(rng > 0) {
		return 0
	}
	return c.Radius() / rng
}

// SliceAngle implements highlight.RadarProvider.
func (c *Radial) SliceAngle() float64 {
	n := c.spokes()
	if n == 0 {
		return 0
	}
	return 360 / float64(n)
}

// YChartMin implements highlight.RadarProvider.
func (c *Radial) YChartMin() float64 { return c.yAxis.Resolved().ScaleMinimum() }

// YChartMax returns the value drawn on the outer web.
func (c *Radial) YChartMax() float64 { return c.yAxis.Resolved().ScaleMaximum() }

// AbsoluteAngles implements highlight.PieProvider.
func (c *Radial) AbsoluteAngles() []float64 { return c.absoluteAngles }

// DrawAngles returns the sweep of each pie slice.
func (c *Radial) DrawAngles() []float64 { return c.drawAngles }

// SetMaxAngle sets the total sweep of a pie, from 90 to 360 degrees.
func (c *Radial) SetMaxAngle(deg float64) {
	c.maxAngle = math.Min(math.Max(deg, 90), 360)
	c.NotifyDataSetChanged()
}

// SetMinAngleForSlices gives every pie slice at least the given sweep,
// taking it from the larger slices. It is ignored when the slices cannot
// all fit.
func (c *Radial) SetMinAngleForSlices(deg float64) {
	c.minSliceAngle = math.Max(deg, 0)
	c.NotifyDataSetChanged()
}

func (c *Radial) calcAngles() {
	n := c.data.EntryCount()
	c.drawAngles = c.drawAngles[:0]
	c.absoluteAngles = c.absoluteAngles[:0]

	sum := 0.0
	for _, s := range c.data.DataSets() {
		for i := range s.Len() {
			sum += math.Abs(s.YAt(i))
		}
	}

	withMin := c.minSliceAngle != 0 && float64(n)*c.minSliceAngle <= c.maxAngle
	var surplus, deficit float64
	for _, s := range c.data.DataSets() {
		for i := range s.Len() {
			a := 0.0
			if sum > 0 {
				a = math.Abs(s.YAt(i)) / sum * c.maxAngle
			}
			if withMin {
				if d := a - c.minSliceAngle; d <= 0 {
					deficit -= d
				} else {
					surplus += d
				}
			}
			c.drawAngles = append(c.drawAngles, a)
		}
	}

	if withMin && surplus > 0 {
		for i, a := range c.drawAngles {
			if a <= c.minSliceAngle {
				c.drawAngles[i] = c.minSliceAngle
				continue
			}
			c.drawAngles[i] = a - (a-c.minSliceAngle)/surplus*deficit
		}
	}

	end := 0.0
	for _, a := range c.drawAngles {
		end += a
		c.absoluteAngles = append(c.absoluteAngles, end)
	}
}

// AngleForPoint returns the angle of the pixel around the center.
func (c *Radial) AngleForPoint(x, y float64) float64 {
	return ggchart.AngleForPoint(c.Center(), x, y)
}

// DistanceToCenter returns the distance of the pixel from the center.
func (c *Radial) DistanceToCenter(x, y float64) float64 {
	return ggchart.DistanceToCenter(c.Center(), x, y)
}

// IndexForAngle returns the radar spoke or pie slice at the angle, or -1.
func (c *Radial) IndexForAngle(angle float64) int {
	if c.kind == Pie {
		return highlight.PieIndex(angle, c.rotation, c.absoluteAngles)
	}
	return highlight.RadarIndex(angle, c.rotation, c.SliceAngle(), c.spokes())
}

// Highlighter returns the highlighter resolving touches.
func (c *Radial) Highlighter() highlight.Highlighter { return c.highlighter }

// HighlightsByTouchPoint returns every highlight under the pixel, closest
// first.
func (c *Radial) HighlightsByTouchPoint(x, y float64) []highlight.Highlight {
	if c.data == nil {
		return nil
	}
	return c.highlighter.Highlight(x, y)
}

// HighlightByTouchPoint returns the closest highlight under the pixel.
func (c *Radial) HighlightByTouchPoint(x, y float64) (highlight.Highlight, bool) {
	hs := c.HighlightsByTouchPoint(x, y)
	if len(hs) == 0 {
		return highlight.Highlight{}, false
	}
	return hs[0], true
}

// HighlightTouch selects the closest highlight under the pixel. Touching
// the selected value again, or touching nothing, clears the selection.
func (c *Radial) HighlightTouch(x, y float64) (highlight.Highlight, bool) {
	return c.toggle(c.HighlightByTouchPoint(x, y))
}

// HighlightValue selects h. A highlight that does not resolve to an entry
// clears the selection.
func (c *Radial) HighlightValue(h highlight.Highlight) {
	if _, ok := c.EntryForHighlight(h); !ok {
		c.selection.clear()
		return
	}
	c.set([]highlight.Highlight{h})
}

// EntryForHighlight returns the entry h selects.
func (c *Radial) EntryForHighlight(h highlight.Highlight) (data.Entry, bool) {
	if c.data == nil {
		return nil, false
	}
	return c.data.Entry(h.DataSetIndex, h.EntryIndex)
}
