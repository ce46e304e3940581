package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/layout"
)

func spokes(vals ...float64) []data.Value {
	out := make([]data.Value, len(vals))
	for i, v := range vals {
		out[i] = data.Value{X: float64(i), Y: v}
	}
	return out
}

// newTestRadar has its center at (150,150), a radius of 100 and a web
// from 0 to 10, so one unit is 10 pixels. Spoke 0 points right.
func newTestRadar(t *testing.T, opts ...Option) *Radial {
	t.Helper()
	c := NewRadar(append([]Option{WithMeasurer(fixedMeasurer{}), WithMinOffset(50)}, opts...)...)
	c.XAxis().DrawLabels = false
	c.YAxis().SetAxisMinimum(0)
	c.YAxis().SetAxisMaximum(10)
	c.SetRotationAngle(0)
	c.SetData(data.NewChartData(
		data.NewDataSet("a", spokes(2, 4, 6, 8)),
		data.NewDataSet("b", spokes(9, 1, 5, 3)),
	))
	c.SetChartDimens(300, 300)
	return c
}

func TestRadarGeometry(t *testing.T) {
	c := newTestRadar(t)

	assert.Equal(t, Radar, c.Kind())
	assert.Equal(t, layout.Uniform(50), c.Offsets())
	assert.Equal(t, ggchart.Pt(150, 150), c.Center())
	assert.Equal(t, 100.0, c.Radius())
	assert.Equal(t, 10.0, c.Factor())
	assert.Equal(t, 90.0, c.SliceAngle())
	assert.Equal(t, 0.0, c.YChartMin())
	assert.Equal(t, 10.0, c.YChartMax())

	assert.Equal(t, 1, c.IndexForAngle(100))
	assert.Equal(t, 0, c.IndexForAngle(350))
	assert.InDelta(t, 90, c.AngleForPoint(150, 250), 1e-9)
	assert.InDelta(t, 100, c.DistanceToCenter(150, 250), 1e-9)
}

func TestRadarHighlight(t *testing.T) {
	c := newTestRadar(t)

	// 40 pixels right of the center touches the value 4 on spoke 0.
	hs := c.HighlightsByTouchPoint(190, 150)
	require.Len(t, hs, 2)
	assert.Equal(t, 0, hs[0].DataSetIndex)
	assert.Equal(t, 2.0, hs[0].Y)
	assertPoint(t, ggchart.Pt(170, 150), ggchart.Pt(hs[0].XPx, hs[0].YPx))
	assert.Equal(t, 1, hs[1].DataSetIndex)
	assertPoint(t, ggchart.Pt(240, 150), ggchart.Pt(hs[1].XPx, hs[1].YPx))

	// Spoke 1 points down.
	h, ok := c.HighlightByTouchPoint(150, 230)
	require.True(t, ok)
	assert.Equal(t, 1.0, h.X)
	assert.Equal(t, 4.0, h.Y)
	assertPoint(t, ggchart.Pt(150, 190), ggchart.Pt(h.XPx, h.YPx))

	_, ok = c.HighlightByTouchPoint(150, 260)
	assert.False(t, ok, "outside the web")
}

func TestRadarRotation(t *testing.T) {
	c := newTestRadar(t)
	c.SetRotationAngle(-270)
	assert.Equal(t, 90.0, c.RotationAngle())

	// Spoke 0 now points down.
	assert.Equal(t, 0, c.IndexForAngle(90))
	h, ok := c.HighlightByTouchPoint(150, 170)
	require.True(t, ok)
	assert.Equal(t, 0.0, h.X)
	assert.Equal(t, 0, h.DataSetIndex, "2 lies closest to the touched 2")
}

func TestRadarPhase(t *testing.T) {
	c := newTestRadar(t)
	c.SetPhase(2, -1)
	assert.Equal(t, 1.0, c.PhaseX())
	assert.Equal(t, 0.0, c.PhaseY())

	c.SetPhase(1, 0.5)
	hs := c.HighlightsByTouchPoint(190, 150)
	require.NotEmpty(t, hs)
	assertPoint(t, ggchart.Pt(160, 150), ggchart.Pt(hs[0].XPx, hs[0].YPx))
}

func newTestPie(t *testing.T, opts ...Option) *Radial {
	t.Helper()
	c := NewPie(append([]Option{WithMeasurer(fixedMeasurer{}), WithMinOffset(50)}, opts...)...)
	c.SetChartDimens(300, 300)
	c.SetData(data.NewChartData(data.NewDataSet("pie", []data.PieEntry{
		{Value: 1, Label: "a"},
		{Value: -1, Label: "b"},
		{Value: 2, Label: "c"},
	})))
	return c
}

func TestPieAngles(t *testing.T) {
	c := newTestPie(t)

	assert.Equal(t, Pie, c.Kind())
	assert.False(t, c.XAxis().Enabled)
	assert.Equal(t, 270.0, c.RotationAngle(), "first slice starts at 12 o'clock")
	assert.Equal(t, []float64{90, 90, 180}, c.DrawAngles())
	assert.Equal(t, []float64{90, 180, 360}, c.AbsoluteAngles())

	c.SetMinAngleForSlices(100)
	assert.Equal(t, []float64{100, 100, 160}, c.DrawAngles())
	assert.Equal(t, []float64{100, 200, 360}, c.AbsoluteAngles())

	c.SetMinAngleForSlices(130)
	assert.Equal(t, []float64{90, 90, 180}, c.DrawAngles(), "slices cannot all fit")

	c.SetMinAngleForSlices(0)
	c.SetMaxAngle(180)
	assert.Equal(t, []float64{45, 45, 90}, c.DrawAngles())
	c.SetMaxAngle(10)
	assert.Equal(t, []float64{22.5, 22.5, 45}, c.DrawAngles())
}

func TestPieIndexForAngle(t *testing.T) {
	c := newTestPie(t)

	tests := []struct {
		name     string
		rotation float64
		x, y     float64
		want     int
	}{
		{"top right", 270, 200, 100, 0},
		{"bottom right", 270, 200, 200, 1},
		{"left", 270, 100, 150, 2},
		{"unrotated bottom right", 0, 200, 200, 0},
		{"unrotated top right", 0, 200, 100, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetRotationAngle(tt.rotation)
			assert.Equal(t, tt.want, c.IndexForAngle(c.AngleForPoint(tt.x, tt.y)))
		})
	}
}

func TestPieHighlight(t *testing.T) {
	var selected [][]highlight.Highlight
	c := newTestPie(t, WithOnSelect(func(hs []highlight.Highlight) {
		selected = append(selected, hs)
	}))

	h, ok := c.HighlightByTouchPoint(200, 200)
	require.True(t, ok)
	assert.Equal(t, 1, h.EntryIndex)
	assert.Equal(t, -1.0, h.Y)
	assertPoint(t, ggchart.Pt(200, 200), ggchart.Pt(h.XPx, h.YPx))

	e, ok := c.EntryForHighlight(h)
	require.True(t, ok)
	assert.Equal(t, "b", e.(data.PieEntry).Label)

	_, ok = c.HighlightByTouchPoint(150, 255)
	assert.False(t, ok, "outside the pie")

	_, ok = c.HighlightTouch(200, 200)
	assert.True(t, ok)
	assert.Len(t, c.Highlighted(), 1)
	_, ok = c.HighlightTouch(150, 255)
	assert.False(t, ok)
	assert.Empty(t, c.Highlighted())
	assert.Len(t, selected, 2)

	c.HighlightValue(highlight.Highlight{EntryIndex: 2})
	assert.Len(t, c.Highlighted(), 1)
	c.HighlightValue(highlight.Highlight{EntryIndex: 7})
	assert.Empty(t, c.Highlighted())
}

func TestRadialNoData(t *testing.T) {
	c := NewPie()
	c.SetChartDimens(300, 300)
	assert.Nil(t, c.HighlightsByTouchPoint(150, 150))
	_, ok := c.EntryForHighlight(highlight.Highlight{})
	assert.False(t, ok)
	assert.Equal(t, -1, c.IndexForAngle(0))
	assert.Equal(t, 0.0, NewRadar().SliceAngle())
}
