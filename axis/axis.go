// Package axis resolves the value range of a chart axis.
//
// An Axis turns the raw extent of its data into a [Range]: the bounds the
// labels show plus the padded span the transformer scales by. It also
// computes the tick values the layout measures when sizing label margins.
package axis

import "math"

// Dependency identifies the y axis a data set is plotted against.
type Dependency int

const (
	// Left is the primary y axis, drawn on the left edge.
	Left Dependency = iota
	// Right is the secondary y axis, drawn on the right edge.
	Right
)

// String returns the dependency name.
func (d Dependency) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// XPosition is where the x axis labels are placed.
type XPosition int

const (
	Top XPosition = iota
	Bottom
	BothSided
	TopInside
	BottomInside
)

// String returns the position name.
func (p XPosition) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case BothSided:
		return "both"
	case TopInside:
		return "top-inside"
	case BottomInside:
		return "bottom-inside"
	default:
		return "unknown"
	}
}

// Kind distinguishes x axes from y axes.
type Kind int

const (
	KindX Kind = iota
	KindY
)

// Range is the resolved extent of an axis.
//
// Minimum and Maximum are the data-anchored bounds shown by labels. Range
// is the span the transform scales by; it includes the percentage padding,
// of which Bottom sits below Minimum.
type Range struct {
	Minimum float64
	Maximum float64
	Range   float64
	Bottom  float64
}

// ScaleMinimum returns the value mapped to the bottom (or left) edge of the
// content rect.
func (r Range) ScaleMinimum() float64 {
	return r.Minimum - r.Bottom
}

// ScaleMaximum returns the value mapped to the top (or right) edge of the
// content rect.
func (r Range) ScaleMaximum() float64 {
	return r.ScaleMinimum() + r.Range
}

// Contains reports whether v lies within the padded span.
func (r Range) Contains(v float64) bool {
	return v >= r.ScaleMinimum() && v <= r.ScaleMaximum()
}

// Axis holds the configuration of one axis and its last resolved Range.
// The zero value is not ready for use; create axes with NewX or NewY.
type Axis struct {
	Kind Kind

	Enabled    bool
	DrawLabels bool

	// LabelCount is the desired number of labels. ForceLabels makes
	// ComputeEntries emit exactly LabelCount evenly spaced values.
	LabelCount  int
	ForceLabels bool

	// Granularity is the minimum interval between labels. Zero disables it.
	Granularity float64

	// SpaceMin and SpaceMax are absolute margins added to the data extent.
	SpaceMin float64
	SpaceMax float64

	// SpacePercentTop and SpacePercentBottom pad the scale span, in percent
	// of the resolved range.
	SpacePercentTop    float64
	SpacePercentBottom float64

	Inverted bool

	// Dependency is meaningful for y axes, Position for x axes.
	Dependency Dependency
	Position   XPosition

	customMin bool
	customMax bool
	axisMin   float64
	axisMax   float64

	suggestedMin    float64
	suggestedMax    float64
	hasSuggestedMin bool
	hasSuggestedMax bool

	resolved Range
	entries  []float64
	decimals int
}

// NewX creates an x axis with no percentage padding.
func NewX() *Axis {
	return &Axis{
		Kind:       KindX,
		Enabled:    true,
		DrawLabels: true,
		LabelCount: 6,
		Position:   Top,
		resolved:   Range{Minimum: -1, Maximum: 1, Range: 2},
	}
}

// NewY creates a y axis for the given dependency with 10% padding on both
// sides.
func NewY(dep Dependency) *Axis {
	return &Axis{
		Kind:               KindY,
		Enabled:            true,
		DrawLabels:         true,
		LabelCount:         6,
		SpacePercentTop:    10,
		SpacePercentBottom: 10,
		Dependency:         dep,
		resolved:           Range{Minimum: -1, Maximum: 1, Range: 2},
	}
}

// SetAxisMinimum fixes the minimum, overriding the data extent.
func (a *Axis) SetAxisMinimum(v float64) {
	a.customMin = true
	a.axisMin = v
}

// SetAxisMaximum fixes the maximum, overriding the data extent.
func (a *Axis) SetAxisMaximum(v float64) {
	a.customMax = true
	a.axisMax = v
}

// ResetAxisMinimum returns the minimum to data-driven resolution.
func (a *Axis) ResetAxisMinimum() { a.customMin = false }

// ResetAxisMaximum returns the maximum to data-driven resolution.
func (a *Axis) ResetAxisMaximum() { a.customMax = false }

// IsAxisMinimumCustom reports whether SetAxisMinimum is in effect.
func (a *Axis) IsAxisMinimumCustom() bool { return a.customMin }

// IsAxisMaximumCustom reports whether SetAxisMaximum is in effect.
func (a *Axis) IsAxisMaximumCustom() bool { return a.customMax }

// SetSuggestedMinimum sets a lower bound the axis always reaches. Unlike
// SetAxisMinimum it only widens the range.
func (a *Axis) SetSuggestedMinimum(v float64) {
	a.hasSuggestedMin = true
	a.suggestedMin = v
}

// SetSuggestedMaximum sets an upper bound the axis always reaches.
func (a *Axis) SetSuggestedMaximum(v float64) {
	a.hasSuggestedMax = true
	a.suggestedMax = v
}

// ClearSuggested removes both suggested bounds.
func (a *Axis) ClearSuggested() {
	a.hasSuggestedMin = false
	a.hasSuggestedMax = false
}

// Calculate resolves the axis range for the given data extent, stores it
// and returns it. Empty data (infinite or NaN extents) and degenerate
// extents always produce a finite, non-zero range.
func (a *Axis) Calculate(dataMin, dataMax float64) Range {
	lo := dataMin - a.SpaceMin
	if a.customMin {
		lo = a.axisMin
	}
	hi := dataMax + a.SpaceMax
	if a.customMax {
		hi = a.axisMax
	}

	if a.hasSuggestedMin {
		lo = math.Min(lo, a.suggestedMin)
	}
	if a.hasSuggestedMax {
		hi = math.Max(hi, a.suggestedMax)
	}

	if !isFinite(lo) {
		lo = 0
	}
	if !isFinite(hi) {
		hi = 0
	}

	span := math.Abs(hi - lo)
	if span == 0 {
		lo--
		hi++
		span = 2
	}

	var padBottom, padTop float64
	if !a.customMin {
		padBottom = span / 100 * a.SpacePercentBottom
	}
	if !a.customMax {
		padTop = span / 100 * a.SpacePercentTop
	}

	r := Range{
		Minimum: lo,
		Maximum: hi,
		Range:   span + padBottom + padTop,
		Bottom:  padBottom,
	}
	if !isFinite(r.Range) || r.Range < 0 {
		r.Range = span
		r.Bottom = 0
	}
	a.resolved = r
	return r
}

// Resolved returns the range computed by the last Calculate call.
func (a *Axis) Resolved() Range {
	return a.resolved
}

// Minimum returns the resolved minimum.
func (a *Axis) Minimum() float64 { return a.resolved.Minimum }

// Maximum returns the resolved maximum.
func (a *Axis) Maximum() float64 { return a.resolved.Maximum }

// UpdateEntries recomputes the tick values for the resolved range and
// returns them. The slice is owned by the axis and reused between calls.
func (a *Axis) UpdateEntries() []float64 {
	a.entries, a.decimals = appendEntries(a.entries[:0], a.resolved.Minimum, a.resolved.Maximum,
		a.LabelCount, a.Granularity, a.ForceLabels)
	return a.entries
}

// Entries returns the tick values from the last UpdateEntries call.
func (a *Axis) Entries() []float64 { return a.entries }

// Decimals returns the number of fraction digits needed to tell the
// current tick values apart.
func (a *Axis) Decimals() int { return a.decimals }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
