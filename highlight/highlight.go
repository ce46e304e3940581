// Package highlight resolves a touch pixel into the chart entries it
// selects.
//
// Every chart kind has its own Highlighter. Cartesian highlighters invert
// the touch through a transform.Transformer, collect candidate entries
// around the touched x value and rank them by pixel distance. Radial
// highlighters work in polar coordinates around the chart center.
package highlight

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/data"
	"github.com/gogpu/ggchart/transform"
)

// DefaultMaxHighlightDistance is the pixel distance beyond which a
// candidate is never highlighted, unless a provider says otherwise.
const DefaultMaxHighlightDistance = 500

// Highlight is one resolved entry under a touch.
type Highlight struct {
	// X and Y are the entry's values. For a stacked bar Y is the touched
	// sub-value.
	X, Y float64

	// XPx and YPx are the entry's pixel position.
	XPx, YPx float64

	// DataIndex identifies the data object inside combined data, or -1.
	DataIndex int

	DataSetIndex int
	EntryIndex   int

	// StackIndex is the stacked sub-value, or -1.
	StackIndex int

	Axis axis.Dependency

	// DrawX and DrawY are where a marker for this highlight is drawn.
	DrawX, DrawY float64
}

// IsStacked reports whether the highlight selects a stacked sub-value.
func (h Highlight) IsStacked() bool { return h.StackIndex >= 0 }

// Pixel returns the highlight's pixel position.
func (h Highlight) Pixel() ggchart.Point { return ggchart.Pt(h.XPx, h.YPx) }

// Same reports whether h and o select the same entry.
func (h Highlight) Same(o Highlight) bool {
	return h.DataIndex == o.DataIndex &&
		h.DataSetIndex == o.DataSetIndex &&
		h.X == o.X &&
		h.StackIndex == o.StackIndex
}

// Highlighter resolves a touch pixel into highlights, closest first. An
// empty result means nothing is selected.
type Highlighter interface {
	Highlight(x, y float64) []Highlight
}

// Provider is what Cartesian highlighters need from a chart.
type Provider interface {
	Transformer(dep axis.Dependency) *transform.Transformer
	ChartData() *data.ChartData
	MaxHighlightDistance() float64
	HighlightsFilterByAxis() bool
}

// CombinedProvider is a Provider over combined data.
type CombinedProvider interface {
	Provider
	CombinedData() *data.CombinedData
}

// dataProvider substitutes the chart data of a Provider, so that one data
// object of a combined chart can be highlighted on its own.
type dataProvider struct {
	Provider
	data *data.ChartData
}

func (p dataProvider) ChartData() *data.ChartData { return p.data }
