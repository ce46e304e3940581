package highlight

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/data"
)

// RadialProvider is what radial highlighters need from a pie or radar
// chart. Angles are in degrees, clockwise from 3 o'clock.
type RadialProvider interface {
	ChartData() *data.ChartData
	Center() ggchart.Point
	Radius() float64
	RotationAngle() float64
	PhaseX() float64
	PhaseY() float64
}

// RadarProvider adds the radar web geometry.
type RadarProvider interface {
	RadialProvider

	// Factor converts values above YChartMin into pixel distances.
	Factor() float64
	SliceAngle() float64
	YChartMin() float64
}

// PieProvider adds the end angle of every slice.
type PieProvider interface {
	RadialProvider

	// AbsoluteAngles returns the cumulative end angle of each slice,
	// relative to the rotation.
	AbsoluteAngles() []float64
}

// RadarIndex returns the spoke nearest to angle on a web of count spokes
// spaced sliceAngle apart and starting at rotation. It returns -1 when
// there are no spokes.
func RadarIndex(angle, rotation, sliceAngle float64, count int) int {
	if count <= 0 || !(sliceAngle > 0) {
		return -1
	}
	a := ggchart.NormalizedAngle(angle - rotation)
	return int(math.Floor((a+sliceAngle/2)/sliceAngle)) % count
}

// PieIndex returns the slice whose sweep contains angle, or -1.
func PieIndex(angle, rotation float64, absoluteAngles []float64) int {
	a := ggchart.NormalizedAngle(angle - rotation)
	for i, end := range absoluteAngles {
		if end > a {
			return i
		}
	}
	return -1
}

// RadarHighlighter highlights radar charts.
type RadarHighlighter struct {
	provider RadarProvider
	scored   []scored
}

// NewRadarHighlighter creates a radar highlighter.
func NewRadarHighlighter(p RadarProvider) *RadarHighlighter {
	return &RadarHighlighter{provider: p}
}

// Highlight returns one highlight per data set at the spoke under the
// touch, the set whose value lies closest to the touch radius first.
func (r *RadarHighlighter) Highlight(x, y float64) []Highlight {
	p := r.provider
	cd := p.ChartData()
	if cd == nil || cd.DataSetCount() == 0 {
		return nil
	}
	center := p.Center()
	dist := ggchart.DistanceToCenter(center, x, y)
	factor := p.Factor()
	if dist > p.Radius() || !(factor > 0) {
		return nil
	}
	longest := cd.MaxEntryCountSet()
	slice := p.SliceAngle()
	index := RadarIndex(ggchart.AngleForPoint(center, x, y), p.RotationAngle(), slice, longest.Len())
	if index < 0 {
		return nil
	}

	yMin := p.YChartMin()
	touchValue := dist / factor
	angle := slice*float64(index)*p.PhaseX() + p.RotationAngle()

	r.scored = r.scored[:0]
	for i, set := range cd.DataSets() {
		if !set.IsVisible() || !set.IsHighlightEnabled() || index >= set.Len() {
			continue
		}
		v := set.YAt(index)
		px := ggchart.PositionOnCircle(center, (v-yMin)*factor*p.PhaseY(), angle)
		h := Highlight{
			X:            float64(index),
			Y:            v,
			XPx:          px.X,
			YPx:          px.Y,
			DataIndex:    -1,
			DataSetIndex: i,
			EntryIndex:   index,
			StackIndex:   -1,
			Axis:         set.AxisDependency(),
			DrawX:        px.X,
			DrawY:        px.Y,
		}
		r.scored = append(r.scored, scored{h, math.Abs(v - yMin - touchValue)})
	}
	if len(r.scored) == 0 {
		return nil
	}
	slices.SortStableFunc(r.scored, func(a, b scored) int { return cmp.Compare(a.d, b.d) })
	out := make([]Highlight, len(r.scored))
	for i, s := range r.scored {
		out[i] = s.h
	}
	return out
}

// PieHighlighter highlights pie charts. A pie has a single data set.
type PieHighlighter struct {
	provider PieProvider
}

// NewPieHighlighter creates a pie highlighter.
func NewPieHighlighter(p PieProvider) *PieHighlighter {
	return &PieHighlighter{provider: p}
}

// Highlight returns the slice under the touch. The highlight's pixel is
// the touch itself.
func (h *PieHighlighter) Highlight(x, y float64) []Highlight {
	p := h.provider
	cd := p.ChartData()
	if cd == nil {
		return nil
	}
	set := cd.DataSet(0)
	if set == nil || !set.IsHighlightEnabled() {
		return nil
	}
	center := p.Center()
	if ggchart.DistanceToCenter(center, x, y) > p.Radius() {
		return nil
	}

	angle := ggchart.AngleForPoint(center, x, y)
	if phase := p.PhaseY(); phase > 0 {
		angle /= phase
	}
	index := PieIndex(angle, p.RotationAngle(), p.AbsoluteAngles())
	if index < 0 || index >= set.Len() {
		return nil
	}
	return []Highlight{{
		X:          float64(index),
		Y:          set.YAt(index),
		XPx:        x,
		YPx:        y,
		DataIndex:  -1,
		EntryIndex: index,
		StackIndex: -1,
		Axis:       set.AxisDependency(),
		DrawX:      x,
		DrawY:      y,
	}}
}
