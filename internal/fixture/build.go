package fixture

import (
	"fmt"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/layout"
)

// Chart is a chart built from a fixture. Exactly one of BarLine and
// Radial is set.
type Chart struct {
	Kind    chart.Kind
	BarLine *chart.BarLine
	Radial  *chart.Radial
}

// Build creates the chart f describes, sizes it and loads its data. The
// fixture's ops are not applied; see Apply.
func Build(f *File, opts ...chart.Option) (*Chart, error) {
	k, ok := chart.ParseKind(f.Kind)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, f.Kind)
	}
	if !(f.Width > 0) || !(f.Height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrNoSize, f.Width, f.Height)
	}

	opts = append(f.options(), opts...)
	c := &Chart{Kind: k}
	var err error
	if k.IsRadial() {
		err = c.buildRadial(f, opts)
	} else {
		err = c.buildBarLine(f, opts)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f *File) options() []chart.Option {
	var opts []chart.Option
	if f.MinOffset != nil {
		opts = append(opts, chart.WithMinOffset(*f.MinOffset))
	}
	if f.MaxHighlightDistance != nil {
		opts = append(opts, chart.WithMaxHighlightDistance(*f.MaxHighlightDistance))
	}
	if f.FilterByAxis != nil {
		opts = append(opts, chart.WithHighlightsFilterByAxis(*f.FilterByAxis))
	}
	if len(f.DragOffset) == 2 {
		opts = append(opts, chart.WithDragOffset(f.DragOffset[0], f.DragOffset[1]))
	}
	if f.AutoScale {
		opts = append(opts, chart.WithAutoScaleMinMax(true))
	}
	if f.FitBars {
		opts = append(opts, chart.WithFitBars(true))
	}
	return opts
}

func (c *Chart) buildBarLine(f *File, opts []chart.Option) error {
	bl := chart.NewBarLine(append([]chart.Option{chart.WithKind(c.Kind)}, opts...)...)
	c.BarLine = bl
	f.XAxis.apply(bl.XAxis())
	f.LeftAxis.apply(bl.AxisLeft())
	f.RightAxis.apply(bl.AxisRight())

	if c.Kind == chart.Combined {
		cd, err := combinedData(f)
		if err != nil {
			return err
		}
		bl.SetCombinedData(cd)
	} else {
		cd, err := chartData(f, c.Kind)
		if err != nil {
			return err
		}
		bl.SetData(cd)
	}

	bl.SetChartDimens(f.Width, f.Height)
	if len(f.Offsets) == 4 {
		bl.SetViewPortOffsets(f.Offsets[0], f.Offsets[1], f.Offsets[2], f.Offsets[3])
	}
	return nil
}

func (c *Chart) buildRadial(f *File, opts []chart.Option) error {
	var r *chart.Radial
	if c.Kind == chart.Pie {
		r = chart.NewPie(opts...)
	} else {
		r = chart.NewRadar(opts...)
	}
	c.Radial = r
	f.XAxis.apply(r.XAxis())
	f.LeftAxis.apply(r.YAxis())
	if f.Rotation != nil {
		r.SetRotationAngle(*f.Rotation)
	}

	cd, err := chartData(f, c.Kind)
	if err != nil {
		return err
	}
	r.SetData(cd)
	r.SetChartDimens(f.Width, f.Height)
	return nil
}

func (s AxisSpec) apply(a *axis.Axis) {
	if s.Min != nil {
		a.SetAxisMinimum(*s.Min)
	}
	if s.Max != nil {
		a.SetAxisMaximum(*s.Max)
	}
	if s.SpaceTop != nil {
		a.SpacePercentTop = *s.SpaceTop
	}
	if s.SpaceBottom != nil {
		a.SpacePercentBottom = *s.SpaceBottom
	}
	if s.Enabled != nil {
		a.Enabled = *s.Enabled
	}
	if s.Labels != nil {
		a.DrawLabels = *s.Labels
	}
	a.Inverted = s.Inverted
}

func chartData(f *File, k chart.Kind) (*data.ChartData, error) {
	sets := make([]data.Series, 0, len(f.Sets))
	for i, s := range f.Sets {
		set, err := s.build(k)
		if err != nil {
			return nil, fmt.Errorf("fixture: set %d: %w", i, err)
		}
		sets = append(sets, set)
	}
	cd := data.NewChartData(sets...)
	if f.BarWidth > 0 {
		cd.BarWidth = f.BarWidth
	}
	return cd, nil
}

// combinedData groups the sets by kind, one data object per kind in order
// of first appearance.
func combinedData(f *File) (*data.CombinedData, error) {
	var (
		kinds []data.Kind
		parts = map[data.Kind][]data.Series{}
	)
	for i, s := range f.Sets {
		dk, ok := parseDataKind(s.Kind)
		if !ok {
			return nil, fmt.Errorf("fixture: set %d: %w %q", i, ErrUnknownKind, s.Kind)
		}
		set, err := s.build(chartKind(dk))
		if err != nil {
			return nil, fmt.Errorf("fixture: set %d: %w", i, err)
		}
		if _, seen := parts[dk]; !seen {
			kinds = append(kinds, dk)
		}
		parts[dk] = append(parts[dk], set)
	}

	cd := data.NewCombinedData()
	for _, dk := range kinds {
		part := data.NewChartData(parts[dk]...)
		if f.BarWidth > 0 {
			part.BarWidth = f.BarWidth
		}
		cd.Add(dk, part)
	}
	return cd, nil
}

func parseDataKind(name string) (data.Kind, bool) {
	if name == "" {
		return data.KindLine, true
	}
	for k := data.KindLine; k <= data.KindBubble; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func chartKind(k data.Kind) chart.Kind {
	switch k {
	case data.KindBar:
		return chart.Bar
	case data.KindScatter:
		return chart.Scatter
	case data.KindCandle:
		return chart.Candle
	case data.KindBubble:
		return chart.Bubble
	default:
		return chart.Line
	}
}

func parseAxis(name string) (axis.Dependency, error) {
	switch name {
	case "", "left":
		return axis.Left, nil
	case "right":
		return axis.Right, nil
	default:
		return 0, fmt.Errorf("fixture: unknown axis %q", name)
	}
}

// build converts the values rows into entries of the type k draws.
func (s SetSpec) build(k chart.Kind) (data.Series, error) {
	dep, err := parseAxis(s.Axis)
	if err != nil {
		return nil, err
	}
	switch k {
	case chart.Bar, chart.HorizontalBar:
		return convert(s, dep, 2, -1, func(_ int, v []float64) data.BarEntry {
			if len(v) > 2 {
				return data.NewStackedBarEntry(v[0], v[1:])
			}
			return data.NewBarEntry(v[0], v[1])
		})
	case chart.Candle:
		return convert(s, dep, 5, 5, func(_ int, v []float64) data.CandleEntry {
			return data.CandleEntry{X: v[0], High: v[1], Low: v[2], Open: v[3], Close: v[4]}
		})
	case chart.Bubble:
		return convert(s, dep, 3, 3, func(_ int, v []float64) data.BubbleEntry {
			return data.BubbleEntry{X: v[0], Y: v[1], Size: v[2]}
		})
	case chart.Pie:
		return convert(s, dep, 1, 1, func(i int, v []float64) data.PieEntry {
			e := data.PieEntry{Value: v[0]}
			if i < len(s.Labels) {
				e.Label = s.Labels[i]
			}
			return e
		})
	case chart.Radar:
		return convert(s, dep, 1, 1, func(i int, v []float64) data.Value {
			return data.Value{X: float64(i), Y: v[0]}
		})
	default:
		return convert(s, dep, 2, 2, func(_ int, v []float64) data.Value {
			return data.Value{X: v[0], Y: v[1]}
		})
	}
}

// convert checks that every row has between lo and hi values (hi < 0 for
// no limit) and builds the data set.
func convert[E data.Entry](s SetSpec, dep axis.Dependency, lo, hi int, entry func(int, []float64) E) (data.Series, error) {
	entries := make([]E, len(s.Values))
	for i, v := range s.Values {
		if len(v) < lo || (hi >= 0 && len(v) > hi) {
			return nil, fmt.Errorf("%w: entry %d has %d values", ErrBadValues, i, len(v))
		}
		entries[i] = entry(i, v)
	}
	ds := data.NewDataSet(s.Label, entries)
	ds.Dependency = dep
	ds.Visible = !s.Hidden
	ds.HighlightEnabled = !s.NoHighlight
	return ds, nil
}

// Highlights returns every highlight under the pixel, closest first.
func (c *Chart) Highlights(x, y float64) []highlight.Highlight {
	if c.Radial != nil {
		return c.Radial.HighlightsByTouchPoint(x, y)
	}
	return c.BarLine.HighlightsByTouchPoint(x, y)
}

// SetLabel returns the label of the data set h points into.
func (c *Chart) SetLabel(h highlight.Highlight) string {
	cd := c.chartData()
	if c.BarLine != nil && h.DataIndex >= 0 {
		if cb := c.BarLine.CombinedData(); cb != nil {
			cd = cb.DataByIndex(h.DataIndex)
		}
	}
	if cd == nil {
		return ""
	}
	s := cd.DataSet(h.DataSetIndex)
	if s == nil {
		return ""
	}
	return s.Label()
}

func (c *Chart) chartData() *data.ChartData {
	if c.Radial != nil {
		return c.Radial.ChartData()
	}
	return c.BarLine.ChartData()
}

// Offsets returns the current content offsets.
func (c *Chart) Offsets() layout.Insets {
	if c.Radial != nil {
		return c.Radial.Offsets()
	}
	return c.BarLine.Offsets()
}
