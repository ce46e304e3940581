// Package chart wires axes, viewport, transformers, highlighters and the
// job queue into chart controllers.
//
// A BarLine drives every chart laid out on an x axis and two y axes:
// line, bar, horizontal bar, scatter, candle, bubble and combined charts.
// A Radial drives radar and pie charts. Controllers hold no drawing code;
// a renderer reads their matrices and content rect each frame.
//
// Controllers are not safe for concurrent use. All calls, including Tick,
// are expected on the UI goroutine.
package chart

import (
	"math"
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/jobs"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/transform"
	"github.com/gogpu/ggchart/viewport"
)

// BarLine controls a Cartesian chart.
type BarLine struct {
	selection

	cfg  config
	kind Kind

	vp          *viewport.Handler
	xAxis       *axis.Axis
	left, right *axis.Axis

	leftTrans, rightTrans *transform.Transformer

	data     *data.ChartData
	combined *data.CombinedData

	highlighter highlight.Highlighter

	queue   *jobs.Queue
	layout  *layout.Calculator
	offsets layout.Insets

	customViewPort bool
}

// NewBarLine creates a Cartesian chart controller. Radial kinds are
// rejected in favor of Line.
func NewBarLine(opts ...Option) *BarLine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.kind.IsRadial() {
		ggchart.Logger().Warn("chart: radial kind given to a Cartesian chart", "kind", cfg.kind)
		cfg.kind = Line
	}
	if cfg.measurer == nil {
		cfg.measurer = layout.DefaultMeasurer()
	}

	vp := viewport.New()
	vp.SetDragOffsetX(cfg.dragOffsetX)
	vp.SetDragOffsetY(cfg.dragOffsetY)

	c := &BarLine{
		selection: selection{onSelect: cfg.onSelect},
		cfg:       cfg,
		vp:        vp,
		xAxis:     axis.NewX(),
		left:      axis.NewY(axis.Left),
		right:     axis.NewY(axis.Right),
		queue:     jobs.NewQueue(jobs.WithPool(cfg.pool)),
		layout: layout.New(cfg.measurer,
			layout.WithMinOffset(cfg.minOffset),
			layout.WithExtraOffsets(cfg.extraOffsets)),
	}
	c.setKind(cfg.kind)
	return c
}

func (c *BarLine) setKind(k Kind) {
	c.kind = k
	if k == HorizontalBar {
		c.leftTrans = transform.NewHorizontalBar(c.vp)
		c.rightTrans = transform.NewHorizontalBar(c.vp)
	} else {
		c.leftTrans = transform.New(c.vp)
		c.rightTrans = transform.New(c.vp)
	}

	switch k {
	case Bar:
		c.highlighter = highlight.NewBarHighlighter(c)
	case HorizontalBar:
		c.highlighter = highlight.NewHorizontalBarHighlighter(c)
	case Combined:
		c.highlighter = highlight.NewCombinedHighlighter(c)
	default:
		c.highlighter = highlight.NewChartHighlighter(c)
	}
}

// Kind returns the chart type.
func (c *BarLine) Kind() Kind { return c.kind }

// Viewport returns the chart's viewport handler.
func (c *BarLine) Viewport() *viewport.Handler { return c.vp }

// XAxis returns the x axis.
func (c *BarLine) XAxis() *axis.Axis { return c.xAxis }

// AxisLeft returns the left y axis.
func (c *BarLine) AxisLeft() *axis.Axis { return c.left }

// AxisRight returns the right y axis.
func (c *BarLine) AxisRight() *axis.Axis { return c.right }

// Axis returns the y axis for dep.
func (c *BarLine) Axis(dep axis.Dependency) *axis.Axis {
	if dep == axis.Right {
		return c.right
	}
	return c.left
}

// Transformer returns the transformer for values plotted against dep.
func (c *BarLine) Transformer(dep axis.Dependency) *transform.Transformer {
	if dep == axis.Right {
		return c.rightTrans
	}
	return c.leftTrans
}

// transformer returns the transformer of the primary y axis.
func (c *BarLine) transformer() *transform.Transformer {
	if c.left.Enabled {
		return c.leftTrans
	}
	return c.rightTrans
}

// Queue returns the job queue driving deferred and animated viewport
// changes.
func (c *BarLine) Queue() *jobs.Queue { return c.queue }

// Offsets returns the offsets computed by the last CalculateOffsets.
func (c *BarLine) Offsets() layout.Insets { return c.offsets }

// ChartData returns the chart's data, or nil. For combined charts it
// aggregates every data object.
func (c *BarLine) ChartData() *data.ChartData {
	if c.combined != nil {
		return c.combined.ChartData
	}
	return c.data
}

// CombinedData returns the data of a combined chart, or nil.
func (c *BarLine) CombinedData() *data.CombinedData { return c.combined }

// SetData replaces the chart's data and recalculates the axes. A combined
// chart keeps its kind and takes d as its only data object.
func (c *BarLine) SetData(d *data.ChartData) {
	if c.kind == Combined && d != nil {
		c.SetCombinedData(wrapCombined(d))
		return
	}
	c.data = d
	c.combined = nil
	c.selection.clear()
	c.NotifyDataSetChanged()
}

// SetCombinedData replaces the chart's data with combined data and turns
// the chart into a combined chart.
func (c *BarLine) SetCombinedData(d *data.CombinedData) {
	if c.kind != Combined {
		c.setKind(Combined)
	}
	c.data = nil
	c.combined = d
	c.selection.clear()
	c.NotifyDataSetChanged()
}

// wrapCombined puts d in a one-part combined data object. Data made only
// of bar sets becomes a bar part, anything else a line part.
func wrapCombined(d *data.ChartData) *data.CombinedData {
	kind := data.KindLine
	if d.DataSetCount() > 0 {
		kind = data.KindBar
		for _, s := range d.DataSets() {
			if _, ok := s.(*data.DataSet[data.BarEntry]); !ok {
				kind = data.KindLine
				break
			}
		}
	}
	cd := data.NewCombinedData()
	cd.Add(kind, d)
	return cd
}

// MaxHighlightDistance implements highlight.Provider.
func (c *BarLine) MaxHighlightDistance() float64 { return c.cfg.maxHighlightDistance }

// SetMaxHighlightDistance sets the pixel distance beyond which touches
// select nothing.
func (c *BarLine) SetMaxHighlightDistance(d float64) { c.cfg.maxHighlightDistance = d }

// HighlightsFilterByAxis implements highlight.Provider.
func (c *BarLine) HighlightsFilterByAxis() bool { return c.cfg.filterByAxis }

// SetHighlightsFilterByAxis controls the closer-axis filter.
func (c *BarLine) SetHighlightsFilterByAxis(enabled bool) { c.cfg.filterByAxis = enabled }

// AxisRanges implements jobs.View.
func (c *BarLine) AxisRanges(dep axis.Dependency) (xRange, yRange float64) {
	return c.xAxis.Resolved().Range, c.Axis(dep).Resolved().Range
}

// SetChartDimens sizes the chart, recalculates it and runs the viewport
// jobs that were waiting for a size.
func (c *BarLine) SetChartDimens(width, height float64) {
	c.vp.SetChartDimens(width, height)
	c.NotifyDataSetChanged()
	c.queue.RunPending()
}

// NotifyDataSetChanged recomputes data extents, axis ranges, offsets and
// matrices. It does nothing until the chart has data and a size.
func (c *BarLine) NotifyDataSetChanged() {
	cd := c.ChartData()
	if cd == nil {
		ggchart.Logger().Debug("chart: data not set")
		return
	}
	if !c.vp.HasChartDimens() {
		ggchart.Logger().Debug("chart: not sized yet")
		return
	}
	if c.combined != nil {
		c.combined.NotifyDataChanged()
	} else {
		cd.NotifyDataChanged()
	}
	c.calcMinMax()
	c.CalculateOffsets()
}

func (c *BarLine) calcMinMax() {
	cd := c.ChartData()
	xMin, xMax := cd.XMin(), cd.XMax()
	if c.cfg.fitBars {
		if w := c.barWidth(); w > 0 {
			xMin -= w / 2
			xMax += w / 2
		}
	}
	c.xAxis.Calculate(xMin, xMax)
	c.left.Calculate(cd.YMin(axis.Left), cd.YMax(axis.Left))
	c.right.Calculate(cd.YMin(axis.Right), cd.YMax(axis.Right))
}

// barWidth returns the widest bar width of the chart's bar data, or 0.
func (c *BarLine) barWidth() float64 {
	switch {
	case c.combined != nil:
		w := 0.0
		for i, part := range c.combined.AllData() {
			if c.combined.KindAt(i) == data.KindBar {
				w = math.Max(w, part.BarWidth)
			}
		}
		return w
	case c.kind == Bar || c.kind == HorizontalBar:
		return c.data.BarWidth
	}
	return 0
}

// CalculateOffsets implements jobs.View. It lays out the content rect
// around the axis labels, unless custom offsets are set, and rebuilds
// both transformers.
func (c *BarLine) CalculateOffsets() {
	if !c.customViewPort {
		c.offsets = c.layout.Apply(c.vp, layout.Axes{
			X:           c.xAxis,
			Left:        c.left,
			Right:       c.right,
			XLabels:     layout.Labels(c.xAxis, c.cfg.xFormatter),
			LeftLabels:  layout.Labels(c.left, c.cfg.yFormatter),
			RightLabels: layout.Labels(c.right, c.cfg.yFormatter),
			Horizontal:  c.kind == HorizontalBar,
		})
		ggchart.Logger().Debug("chart: offsets calculated",
			"left", c.offsets.Left, "top", c.offsets.Top,
			"right", c.offsets.Right, "bottom", c.offsets.Bottom)
	}
	c.prepareOffsetMatrix()
	c.prepareValuePxMatrix()
}

func (c *BarLine) prepareOffsetMatrix() {
	c.leftTrans.PrepareOffsetMatrix(c.left.Inverted)
	c.rightTrans.PrepareOffsetMatrix(c.right.Inverted)
}

func (c *BarLine) prepareValuePxMatrix() {
	x := c.xAxis.Resolved()
	for _, dep := range [...]axis.Dependency{axis.Left, axis.Right} {
		y := c.Axis(dep).Resolved()
		tr := c.Transformer(dep)
		if c.kind == HorizontalBar {
			tr.PrepareValueToPixelBase(y.ScaleMinimum(), y.Range, x.Range, x.ScaleMinimum())
		} else {
			tr.PrepareValueToPixelBase(x.ScaleMinimum(), x.Range, y.Range, y.ScaleMinimum())
		}
	}
}

// Tick advances the running viewport animation to now and, with
// auto-scaling enabled, rescales the y axes to the visible x range. It
// reports whether an animation is still running.
func (c *BarLine) Tick(now time.Time) bool {
	running := c.queue.Tick(now)
	if c.cfg.autoScale {
		c.AutoScale()
	}
	return running
}

// AutoScale recomputes the y axis ranges from the entries inside the
// visible x range.
func (c *BarLine) AutoScale() {
	if c.ChartData() == nil || !c.vp.HasChartDimens() {
		return
	}
	from, to := c.LowestVisibleX(), c.HighestVisibleX()
	if c.combined != nil {
		c.combined.CalcMinMaxY(from, to)
	} else {
		c.data.CalcMinMaxY(from, to)
	}
	c.calcMinMax()
	c.CalculateOffsets()
}

// ValuesByTouchPoint converts a pixel into values on the axis dep.
func (c *BarLine) ValuesByTouchPoint(x, y float64, dep axis.Dependency) ggchart.Point {
	return c.Transformer(dep).ValuesByTouchPoint(x, y)
}

// PixelForValues converts values on the axis dep into a pixel.
func (c *BarLine) PixelForValues(x, y float64, dep axis.Dependency) ggchart.Point {
	return c.Transformer(dep).PixelForValues(x, y)
}

// LowestVisibleX returns the smallest x value inside the content rect.
func (c *BarLine) LowestVisibleX() float64 {
	tr := c.transformer()
	var v float64
	if c.kind == HorizontalBar {
		v = tr.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentBottom()).Y
	} else {
		v = tr.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentBottom()).X
	}
	return math.Max(c.xAxis.Resolved().ScaleMinimum(), v)
}

// HighestVisibleX returns the largest x value inside the content rect.
func (c *BarLine) HighestVisibleX() float64 {
	tr := c.transformer()
	var v float64
	if c.kind == HorizontalBar {
		v = tr.ValuesByTouchPoint(c.vp.ContentLeft(), c.vp.ContentTop()).Y
	} else {
		v = tr.ValuesByTouchPoint(c.vp.ContentRight(), c.vp.ContentBottom()).X
	}
	return math.Min(c.xAxis.Resolved().ScaleMaximum(), v)
}

// VisibleXRange returns the span of x values inside the content rect.
func (c *BarLine) VisibleXRange() float64 {
	return math.Abs(c.HighestVisibleX() - c.LowestVisibleX())
}

// Highlighter returns the highlighter resolving touches.
func (c *BarLine) Highlighter() highlight.Highlighter { return c.highlighter }

// SetHighlighter replaces the highlighter resolving touches.
func (c *BarLine) SetHighlighter(h highlight.Highlighter) { c.highlighter = h }

// HighlightsByTouchPoint returns every highlight under the pixel, closest
// first.
func (c *BarLine) HighlightsByTouchPoint(x, y float64) []highlight.Highlight {
	if c.ChartData() == nil {
		return nil
	}
	return c.highlighter.Highlight(x, y)
}

// HighlightByTouchPoint returns the closest highlight under the pixel.
func (c *BarLine) HighlightByTouchPoint(x, y float64) (highlight.Highlight, bool) {
	hs := c.HighlightsByTouchPoint(x, y)
	if len(hs) == 0 {
		return highlight.Highlight{}, false
	}
	return hs[0], true
}

// HighlightTouch selects the closest highlight under the pixel. Touching
// the selected value again, or touching nothing, clears the selection.
func (c *BarLine) HighlightTouch(x, y float64) (highlight.Highlight, bool) {
	return c.toggle(c.HighlightByTouchPoint(x, y))
}

// HighlightValue selects h. A highlight that does not resolve to an entry
// clears the selection.
func (c *BarLine) HighlightValue(h highlight.Highlight) {
	if _, ok := c.EntryForHighlight(h); !ok {
		c.selection.clear()
		return
	}
	c.set([]highlight.Highlight{h})
}

// HighlightValues selects hs.
func (c *BarLine) HighlightValues(hs []highlight.Highlight) { c.set(hs) }

// EntryForHighlight returns the entry h selects.
func (c *BarLine) EntryForHighlight(h highlight.Highlight) (data.Entry, bool) {
	cd := c.ChartData()
	if c.combined != nil && h.DataIndex >= 0 {
		cd = c.combined.DataByIndex(h.DataIndex)
	}
	if cd == nil {
		return nil, false
	}
	return cd.Entry(h.DataSetIndex, h.EntryIndex)
}

// EntryByTouchPoint returns the entry closest to the pixel.
func (c *BarLine) EntryByTouchPoint(x, y float64) (data.Entry, bool) {
	h, ok := c.HighlightByTouchPoint(x, y)
	if !ok {
		return nil, false
	}
	return c.EntryForHighlight(h)
}

// DataSetByTouchPoint returns the data set of the entry closest to the
// pixel.
func (c *BarLine) DataSetByTouchPoint(x, y float64) (data.Series, bool) {
	h, ok := c.HighlightByTouchPoint(x, y)
	if !ok {
		return nil, false
	}
	cd := c.ChartData()
	if c.combined != nil && h.DataIndex >= 0 {
		cd = c.combined.DataByIndex(h.DataIndex)
	}
	s := cd.DataSet(h.DataSetIndex)
	return s, s != nil
}
