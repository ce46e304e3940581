package chart

import (
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/jobs"
	"github.com/gogpu/ggchart/layout"
)

// Kind is the type of chart a controller drives.
type Kind int

const (
	Line Kind = iota
	Bar
	HorizontalBar
	Scatter
	Candle
	Bubble
	Combined
	Radar
	Pie
)

var kindNames = [...]string{"line", "bar", "horizontal-bar", "scatter", "candle", "bubble", "combined", "radar", "pie"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsRadial reports whether k is drawn around a center.
func (k Kind) IsRadial() bool { return k == Radar || k == Pie }

// Option configures a chart during creation. Options that do not apply to
// a chart type are ignored.
//
// Example:
//
//	c := chart.NewBarLine(
//		chart.WithKind(chart.Bar),
//		chart.WithMaxHighlightDistance(40),
//	)
type Option func(*config)

type config struct {
	kind Kind

	maxHighlightDistance float64
	filterByAxis         bool

	dragOffsetX, dragOffsetY float64

	minOffset    float64
	extraOffsets layout.Insets
	measurer     layout.Measurer

	xFormatter format.Formatter
	yFormatter format.Formatter

	autoScale bool
	fitBars   bool

	pool   *jobs.Pool
	easing jobs.Easing

	onSelect func([]highlight.Highlight)
}

func defaultConfig() config {
	return config{
		kind:                 Line,
		maxHighlightDistance: highlight.DefaultMaxHighlightDistance,
		filterByAxis:         true,
		minOffset:            layout.DefaultMinOffset,
		easing:               jobs.EaseInOutQuad,
	}
}

// WithKind selects the chart type. A Cartesian chart defaults to Line.
func WithKind(k Kind) Option {
	return func(c *config) {
		c.kind = k
	}
}

// WithMaxHighlightDistance sets the pixel distance beyond which touches
// select nothing.
func WithMaxHighlightDistance(d float64) Option {
	return func(c *config) {
		c.maxHighlightDistance = d
	}
}

// WithHighlightsFilterByAxis controls whether a touch between entries on
// both y axes only considers the closer axis. It is on by default.
func WithHighlightsFilterByAxis(enabled bool) Option {
	return func(c *config) {
		c.filterByAxis = enabled
	}
}

// WithDragOffset lets the content be dragged the given number of pixels
// past its edges.
func WithDragOffset(x, y float64) Option {
	return func(c *config) {
		c.dragOffsetX = x
		c.dragOffsetY = y
	}
}

// WithMinOffset sets the smallest space between the view edge and the
// content on every side.
func WithMinOffset(v float64) Option {
	return func(c *config) {
		c.minOffset = v
	}
}

// WithExtraOffsets adds fixed space around the content.
func WithExtraOffsets(extra layout.Insets) Option {
	return func(c *config) {
		c.extraOffsets = extra
	}
}

// WithMeasurer measures axis labels with m instead of the default Go
// Regular face.
func WithMeasurer(m layout.Measurer) Option {
	return func(c *config) {
		c.measurer = m
	}
}

// WithXFormatter formats x axis labels.
func WithXFormatter(f format.Formatter) Option {
	return func(c *config) {
		c.xFormatter = f
	}
}

// WithYFormatter formats the labels of both y axes.
func WithYFormatter(f format.Formatter) Option {
	return func(c *config) {
		c.yFormatter = f
	}
}

// WithAutoScaleMinMax rescales the y axes to the visible x range on every
// Tick.
func WithAutoScaleMinMax(enabled bool) Option {
	return func(c *config) {
		c.autoScale = enabled
	}
}

// WithFitBars widens the x axis by half a bar on both ends so the outer
// bars are fully visible.
func WithFitBars(enabled bool) Option {
	return func(c *config) {
		c.fitBars = enabled
	}
}

// WithJobPool recycles instant viewport jobs through p. Charts sharing a
// UI goroutine may share one pool.
func WithJobPool(p *jobs.Pool) Option {
	return func(c *config) {
		c.pool = p
	}
}

// WithEasing sets the curve of animated viewport changes.
func WithEasing(e jobs.Easing) Option {
	return func(c *config) {
		c.easing = e
	}
}

// WithOnSelect registers fn to be called whenever the highlighted values
// change. An empty slice means the selection was cleared.
func WithOnSelect(fn func([]highlight.Highlight)) Option {
	return func(c *config) {
		c.onSelect = fn
	}
}
