package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/layout"
)

// fixedMeasurer gives every rune a width of 6 and every label a height of
// 10.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(label string) (float64, float64) {
	return 6 * float64(len([]rune(label))), 10
}

func linear(n int, slope float64) []data.Value {
	vals := make([]data.Value, n+1)
	for i := range vals {
		vals[i] = data.Value{X: float64(i), Y: slope * float64(i)}
	}
	return vals
}

func unpadded(c *BarLine) {
	for _, a := range []*axis.Axis{c.AxisLeft(), c.AxisRight()} {
		a.SpacePercentTop, a.SpacePercentBottom = 0, 0
	}
}

// newTestChart shows x in [0,10] and y in [0,100] in a content rect from
// (40,10) to (380,270): pixel x is 40+34x and pixel y is 270-2.6y.
func newTestChart(t *testing.T, opts ...Option) *BarLine {
	t.Helper()
	c := NewBarLine(append([]Option{WithMeasurer(fixedMeasurer{})}, opts...)...)
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("line", linear(10, 10))))
	c.SetChartDimens(400, 300)
	c.SetViewPortOffsets(40, 10, 20, 30)
	return c
}

func assertPoint(t *testing.T, want, got ggchart.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "horizontal-bar", HorizontalBar.String())
	assert.Equal(t, "unknown", Kind(42).String())
	k, ok := ParseKind("pie")
	assert.True(t, ok)
	assert.Equal(t, Pie, k)
	assert.True(t, k.IsRadial())
	_, ok = ParseKind("donut")
	assert.False(t, ok)

	assert.Equal(t, Line, NewBarLine(WithKind(Radar), WithMeasurer(fixedMeasurer{})).Kind())
}

func TestCalculateOffsets(t *testing.T) {
	c := NewBarLine(WithMeasurer(fixedMeasurer{}))
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("line", linear(10, 10))))
	c.SetChartDimens(400, 300)

	// Labels 0..100 are at most 18 wide plus 5 padding on each side; the
	// x labels on top take 10 plus 5 padding.
	assert.Equal(t, layout.Insets{Left: 28, Top: 15, Right: 28, Bottom: 15}, c.Offsets())
	assert.Equal(t, ggchart.R(28, 15, 372, 285), c.Viewport().ContentRect())
	assertPoint(t, ggchart.Pt(200, 150), c.PixelForValues(5, 50, axis.Left))

	c.SetViewPortOffsets(40, 10, 20, 30)
	c.CalculateOffsets()
	assert.Equal(t, ggchart.R(40, 10, 380, 270), c.Viewport().ContentRect(), "custom offsets stick")

	c.ResetViewPortOffsets()
	assert.Equal(t, ggchart.R(28, 15, 372, 285), c.Viewport().ContentRect())
}

func TestValuesAndPixels(t *testing.T) {
	c := newTestChart(t)
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(5, 50, axis.Left))
	assertPoint(t, ggchart.Pt(5, 50), c.ValuesByTouchPoint(210, 140, axis.Left))
	assert.InDelta(t, 0.0, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 10.0, c.HighestVisibleX(), 1e-9)
	assert.InDelta(t, 10.0, c.VisibleXRange(), 1e-9)

	xRange, yRange := c.AxisRanges(axis.Right)
	assert.Equal(t, 10.0, xRange)
	assert.Equal(t, 100.0, yRange)
}

func TestZoomInKeepsCenter(t *testing.T) {
	c := newTestChart(t)
	vp := c.Viewport()

	c.ZoomIn()
	assert.InDelta(t, 1.4, vp.ScaleX(), 1e-12)
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(5, 50, axis.Left))

	c.ZoomOut()
	assert.Equal(t, 1.0, vp.ScaleX(), "0.98 is clamped to the minimum")

	c.Zoom(2, 1, 40, 270)
	assert.Equal(t, 2.0, vp.ScaleX())
	assert.InDelta(t, 0.0, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 5, c.HighestVisibleX(), 1e-9)

	c.ResetZoom()
	assert.True(t, vp.IsFullyZoomedOut())

	c.ZoomToCenter(2, 2)
	assert.InDelta(t, 2.5, c.LowestVisibleX(), 1e-9)
	c.FitScreen()
	assert.InDelta(t, 10.0, c.VisibleXRange(), 1e-9)
}

func TestZoomAtValue(t *testing.T) {
	c := newTestChart(t)
	c.ZoomAtValue(2, 2, 5, 50, axis.Left)

	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(5, 50, axis.Left))
	assert.InDelta(t, 2.5, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 7.5, c.HighestVisibleX(), 1e-9)
	assert.Equal(t, 1, c.Queue().Pool().Free(), "finished zoom returns to the pool")
}

func TestVisibleRangeLimits(t *testing.T) {
	c := newTestChart(t)
	vp := c.Viewport()

	c.SetVisibleXRangeMaximum(5)
	assert.Equal(t, 2.0, vp.MinScaleX())
	assert.Equal(t, 2.0, vp.ScaleX())
	assert.InDelta(t, 5, c.VisibleXRange(), 1e-9)

	c.SetVisibleXRange(2, 5)
	assert.Equal(t, 2.0, vp.MinScaleX())
	assert.Equal(t, 5.0, vp.MaxScaleX())

	c.SetVisibleXRangeMinimum(4)
	assert.Equal(t, 2.5, vp.MaxScaleX())

	c.SetVisibleYRange(10, 50, axis.Left)
	assert.Equal(t, 2.0, vp.MinScaleY())
	assert.Equal(t, 10.0, vp.MaxScaleY())
	c.SetVisibleYRangeMaximum(25, axis.Right)
	assert.Equal(t, 4.0, vp.MinScaleY())
	c.SetVisibleYRangeMinimum(20, axis.Left)
	assert.Equal(t, 5.0, vp.MaxScaleY())

	c.SetVisibleXRangeMaximum(0)
	assert.Equal(t, 2.0, vp.MinScaleX(), "non-positive ranges are ignored")

	c.SetScaleMinima(3, 1)
	assert.Equal(t, 3.0, vp.MinScaleX())
	assert.Equal(t, 1.0, vp.MinScaleY())
}

func TestMoveView(t *testing.T) {
	c := newTestChart(t)
	c.ZoomToCenter(2, 2)

	c.MoveViewToX(1)
	assert.InDelta(t, 1, c.LowestVisibleX(), 1e-9)

	c.CenterViewTo(5, 50, axis.Left)
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(5, 50, axis.Left))

	c.MoveViewTo(3, 40, axis.Left)
	assertPoint(t, ggchart.Pt(3, 65), c.ValuesByTouchPoint(40, 10, axis.Left))

	c.CenterViewToY(60, axis.Left)
	assertPoint(t, ggchart.Pt(3, 85), c.ValuesByTouchPoint(40, 10, axis.Left))
}

func TestJobsWaitForDimensions(t *testing.T) {
	c := NewBarLine(WithMeasurer(fixedMeasurer{}))
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("line", linear(10, 10))))
	c.ZoomAtValue(2, 2, 5, 50, axis.Left)
	assert.Equal(t, 1, c.Queue().Pending())

	c.SetChartDimens(400, 300)
	assert.Zero(t, c.Queue().Pending())
	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assertPoint(t, ggchart.Pt(200, 150), c.PixelForValues(5, 50, axis.Left))
}

func TestAnimatedZoom(t *testing.T) {
	c := newTestChart(t, WithEasing(nil))
	c.ZoomAndCenterAnimated(2, 2, 5, 50, axis.Left, time.Second)
	require.True(t, c.Queue().Running())

	t0 := time.Unix(100, 0)
	assert.True(t, c.Tick(t0))
	assert.Equal(t, 1.0, c.Viewport().ScaleX())

	assert.True(t, c.Tick(t0.Add(500*time.Millisecond)))
	assert.InDelta(t, 1.5, c.Viewport().ScaleX(), 1e-9)

	assert.False(t, c.Tick(t0.Add(time.Second)))
	assert.Equal(t, 2.0, c.Viewport().ScaleX())
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(5, 50, axis.Left))
}

func TestAnimatedMove(t *testing.T) {
	c := newTestChart(t)
	c.ZoomToCenter(2, 2)
	c.CenterViewToAnimated(3, 40, axis.Left, 200*time.Millisecond)

	t0 := time.Unix(100, 0)
	c.Tick(t0)
	assert.False(t, c.Tick(t0.Add(time.Second)))
	assertPoint(t, ggchart.Pt(210, 140), c.PixelForValues(3, 40, axis.Left))

	c.MoveViewToAnimated(1, 40, axis.Left, 200*time.Millisecond)
	c.Tick(t0)
	c.Tick(t0.Add(time.Second))
	assert.InDelta(t, 1, c.LowestVisibleX(), 1e-9)
}

func TestAutoScale(t *testing.T) {
	c := newTestChart(t, WithAutoScaleMinMax(true))
	c.ZoomAtValue(10/4.5, 1, 2.25, 50, axis.Left)
	assert.InDelta(t, 4.5, c.HighestVisibleX(), 1e-9)

	c.Tick(time.Now())
	assert.Equal(t, 0.0, c.AxisLeft().Minimum())
	assert.Equal(t, 50.0, c.AxisLeft().Maximum())

	c.NotifyDataSetChanged()
	assert.Equal(t, 100.0, c.AxisLeft().Maximum())
}

func TestHighlightByTouchPoint(t *testing.T) {
	var selected [][]highlight.Highlight
	c := newTestChart(t, WithOnSelect(func(hs []highlight.Highlight) {
		selected = append(selected, hs)
	}))

	h, ok := c.HighlightByTouchPoint(210, 140)
	require.True(t, ok)
	assert.Equal(t, 5.0, h.X)
	assert.Equal(t, 50.0, h.Y)

	e, ok := c.EntryByTouchPoint(210, 140)
	require.True(t, ok)
	assert.Equal(t, data.Value{X: 5, Y: 50}, e)

	s, ok := c.DataSetByTouchPoint(210, 140)
	require.True(t, ok)
	assert.Equal(t, "line", s.Label())

	_, ok = c.HighlightTouch(210, 140)
	assert.True(t, ok)
	assert.Len(t, c.Highlighted(), 1)
	_, ok = c.HighlightTouch(210, 140)
	assert.False(t, ok, "touching the selection again clears it")
	assert.Empty(t, c.Highlighted())
	require.Len(t, selected, 2)
	assert.Empty(t, selected[1])

	c.HighlightValue(highlight.Highlight{DataSetIndex: 0, EntryIndex: 3})
	assert.Len(t, c.Highlighted(), 1)
	c.HighlightValue(highlight.Highlight{DataSetIndex: 4})
	assert.Empty(t, c.Highlighted())

	c.SetMaxHighlightDistance(5)
	_, ok = c.HighlightByTouchPoint(210, 100)
	assert.False(t, ok)
}

func TestNoData(t *testing.T) {
	c := NewBarLine(WithMeasurer(fixedMeasurer{}))
	c.SetChartDimens(400, 300)
	c.NotifyDataSetChanged()
	c.AutoScale()

	assert.Nil(t, c.ChartData())
	assert.Nil(t, c.HighlightsByTouchPoint(100, 100))
	_, ok := c.EntryByTouchPoint(100, 100)
	assert.False(t, ok)
	_, ok = c.EntryForHighlight(highlight.Highlight{})
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	c := NewBarLine(
		WithMeasurer(fixedMeasurer{}),
		WithDragOffset(10, 5),
		WithHighlightsFilterByAxis(false),
		WithMaxHighlightDistance(42),
		WithMinOffset(0),
		WithExtraOffsets(layout.Insets{Left: 3}),
	)
	assert.Equal(t, 10.0, c.Viewport().DragOffsetX())
	assert.Equal(t, 5.0, c.Viewport().DragOffsetY())
	assert.False(t, c.HighlightsFilterByAxis())
	assert.Equal(t, 42.0, c.MaxHighlightDistance())

	c.SetHighlightsFilterByAxis(true)
	assert.True(t, c.HighlightsFilterByAxis())
}

func TestStackedBarChart(t *testing.T) {
	c := NewBarLine(WithKind(Bar), WithMeasurer(fixedMeasurer{}))
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("bars", []data.BarEntry{
		data.NewBarEntry(0, 0),
		data.NewStackedBarEntry(5, []float64{30, 20, 50}),
		data.NewBarEntry(10, 10),
	})))
	c.SetChartDimens(400, 300)
	c.SetViewPortOffsets(40, 10, 20, 30)

	// The touch at value 40 lies in the middle range [30, 50].
	h, ok := c.HighlightByTouchPoint(210, 166)
	require.True(t, ok)
	assert.Equal(t, 1, h.StackIndex)
	assert.Equal(t, 20.0, h.Y)
	assert.InDelta(t, 166, h.YPx, 1e-9)

	e, ok := c.EntryForHighlight(h)
	require.True(t, ok)
	assert.Equal(t, []float64{30, 20, 50}, e.(data.BarEntry).Stack())
}

func TestFitBars(t *testing.T) {
	c := NewBarLine(WithKind(Bar), WithFitBars(true), WithMeasurer(fixedMeasurer{}))
	cd := data.NewChartData(data.NewDataSet("bars", []data.BarEntry{
		data.NewBarEntry(0, 1), data.NewBarEntry(10, 2),
	}))
	cd.BarWidth = 0.5
	c.SetData(cd)
	c.SetChartDimens(400, 300)
	assert.Equal(t, -0.25, c.XAxis().Minimum())
	assert.Equal(t, 10.25, c.XAxis().Maximum())
}

func TestHorizontalBarChart(t *testing.T) {
	c := NewBarLine(WithKind(HorizontalBar), WithMeasurer(fixedMeasurer{}))
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("bars", []data.BarEntry{
		data.NewBarEntry(0, 0),
		data.NewBarEntry(2, 50),
		data.NewBarEntry(10, 100),
	})))
	c.SetChartDimens(400, 300)

	// Left axis labels run along the top, x labels on the right side.
	assert.Equal(t, layout.Insets{Left: 15, Top: 20, Right: 17, Bottom: 20}, c.Offsets())

	// Values along pixel x are 40+3.4v, x values along pixel y 270-26x.
	c.SetViewPortOffsets(40, 10, 20, 30)
	assert.InDelta(t, 0.0, c.LowestVisibleX(), 1e-9)
	assert.InDelta(t, 10, c.HighestVisibleX(), 1e-9)

	h, ok := c.HighlightByTouchPoint(100, 218)
	require.True(t, ok)
	assert.Equal(t, 2.0, h.X)
	assert.InDelta(t, 210, h.XPx, 1e-9)
}

func TestCombinedChart(t *testing.T) {
	line := data.NewChartData(data.NewDataSet("line", linear(10, 10)))
	bars := data.NewChartData(data.NewDataSet("bars", []data.BarEntry{data.NewBarEntry(5, 80)}))
	cd := data.NewCombinedData()
	cd.Add(data.KindLine, line)
	cd.Add(data.KindBar, bars)

	c := NewBarLine(WithMeasurer(fixedMeasurer{}))
	unpadded(c)
	c.SetCombinedData(cd)
	assert.Equal(t, Combined, c.Kind())
	c.SetChartDimens(400, 300)
	c.SetViewPortOffsets(40, 10, 20, 30)

	// y=80 sits at pixel 62.
	h, ok := c.HighlightByTouchPoint(210, 62)
	require.True(t, ok)
	assert.Equal(t, 1, h.DataIndex)
	e, ok := c.EntryForHighlight(h)
	require.True(t, ok)
	assert.Equal(t, 80.0, e.YValue())

	s, ok := c.DataSetByTouchPoint(210, 62)
	require.True(t, ok)
	assert.Equal(t, "bars", s.Label())
	assert.Same(t, cd, c.CombinedData())
}

func TestCombinedChartWithPlainData(t *testing.T) {
	c := NewBarLine(WithMeasurer(fixedMeasurer{}), WithKind(Combined))
	unpadded(c)
	c.SetData(data.NewChartData(data.NewDataSet("line", linear(10, 10))))
	c.SetChartDimens(400, 300)
	c.SetViewPortOffsets(40, 10, 20, 30)

	assert.Equal(t, Combined, c.Kind())
	require.NotNil(t, c.CombinedData())
	assert.Equal(t, data.KindLine, c.CombinedData().KindAt(0))

	h, ok := c.HighlightByTouchPoint(210, 140)
	require.True(t, ok)
	assert.Equal(t, 5.0, h.X)
	assert.Equal(t, 50.0, h.Y)
	assert.Equal(t, 0, h.DataIndex)

	bars := make([]data.BarEntry, 11)
	for i := range bars {
		bars[i] = data.NewBarEntry(float64(i), 10*float64(i))
	}
	c.SetData(data.NewChartData(data.NewDataSet("bars", bars)))
	assert.Equal(t, data.KindBar, c.CombinedData().KindAt(0))
	s, ok := c.DataSetByTouchPoint(210, 140)
	require.True(t, ok)
	assert.Equal(t, "bars", s.Label())

	c.SetData(nil)
	assert.Nil(t, c.ChartData())
	assert.Empty(t, c.HighlightsByTouchPoint(210, 140))
}
