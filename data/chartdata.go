package data

import (
	"math"

	"github.com/gogpu/ggchart/axis"
)

// DefaultBarWidth is the bar width in x units used when none is set.
const DefaultBarWidth = 0.85

// ChartData groups the data sets drawn by one chart and tracks their
// combined extents per axis.
type ChartData struct {
	sets []Series

	// BarWidth is the width of each bar in x units. Only bar data uses it.
	BarWidth float64

	xMin, xMax         float64
	leftMin, leftMax   float64
	rightMin, rightMax float64
}

// NewChartData creates chart data from the given sets and computes their
// extents.
func NewChartData(sets ...Series) *ChartData {
	d := &ChartData{
		sets:     append([]Series(nil), sets...),
		BarWidth: DefaultBarWidth,
	}
	d.CalcMinMax()
	return d
}

// DataSets returns the data sets in draw order.
func (d *ChartData) DataSets() []Series { return d.sets }

// DataSetCount returns the number of data sets.
func (d *ChartData) DataSetCount() int { return len(d.sets) }

// DataSet returns the set at index i, or nil when i is out of range.
func (d *ChartData) DataSet(i int) Series {
	if i < 0 || i >= len(d.sets) {
		return nil
	}
	return d.sets[i]
}

// DataSetByLabel returns the first set with the given label.
func (d *ChartData) DataSetByLabel(label string) (Series, int) {
	for i, s := range d.sets {
		if s.Label() == label {
			return s, i
		}
	}
	return nil, -1
}

// AddDataSet appends s and widens the extents.
func (d *ChartData) AddDataSet(s Series) {
	d.sets = append(d.sets, s)
	d.CalcMinMax()
}

// RemoveDataSet removes the set at index i.
func (d *ChartData) RemoveDataSet(i int) bool {
	if i < 0 || i >= len(d.sets) {
		return false
	}
	d.sets = append(d.sets[:i], d.sets[i+1:]...)
	d.CalcMinMax()
	return true
}

// EntryCount returns the total number of entries over all sets.
func (d *ChartData) EntryCount() int {
	n := 0
	for _, s := range d.sets {
		n += s.Len()
	}
	return n
}

// MaxEntryCountSet returns the set with the most entries, or nil.
func (d *ChartData) MaxEntryCountSet() Series {
	var best Series
	for _, s := range d.sets {
		if best == nil || s.Len() > best.Len() {
			best = s
		}
	}
	return best
}

// Entry returns the entry at entryIndex of the set at setIndex.
func (d *ChartData) Entry(setIndex, entryIndex int) (Entry, bool) {
	s := d.DataSet(setIndex)
	if s == nil || entryIndex < 0 || entryIndex >= s.Len() {
		return nil, false
	}
	return s.Entry(entryIndex), true
}

// CalcMinMax recomputes the extents from the sets' cached extents.
func (d *ChartData) CalcMinMax() {
	d.resetExtents()
	for _, s := range d.sets {
		d.include(s)
	}
	d.mirrorEmptyAxis()
}

// NotifyDataChanged recomputes every set's extents from all of its
// entries, undoing any windowed CalcMinMaxY, and then the combined
// extents.
func (d *ChartData) NotifyDataChanged() {
	for _, s := range d.sets {
		s.CalcMinMax()
	}
	d.CalcMinMax()
}

// CalcMinMaxY recomputes every set's y extent for the x window and then
// the combined extents.
func (d *ChartData) CalcMinMaxY(fromX, toX float64) {
	for _, s := range d.sets {
		s.CalcMinMaxY(fromX, toX)
	}
	d.CalcMinMax()
}

func (d *ChartData) resetExtents() {
	inf := math.Inf(1)
	d.xMin, d.xMax = inf, -inf
	d.leftMin, d.leftMax = inf, -inf
	d.rightMin, d.rightMax = inf, -inf
}

func (d *ChartData) include(s Series) {
	if s.Len() == 0 {
		return
	}
	d.xMin = math.Min(d.xMin, s.XMin())
	d.xMax = math.Max(d.xMax, s.XMax())
	if s.AxisDependency() == axis.Left {
		d.leftMin = math.Min(d.leftMin, s.YMin())
		d.leftMax = math.Max(d.leftMax, s.YMax())
	} else {
		d.rightMin = math.Min(d.rightMin, s.YMin())
		d.rightMax = math.Max(d.rightMax, s.YMax())
	}
}

// mirrorEmptyAxis lets an axis without sets follow the other one.
func (d *ChartData) mirrorEmptyAxis() {
	if math.IsInf(d.leftMin, 1) {
		d.leftMin, d.leftMax = d.rightMin, d.rightMax
	}
	if math.IsInf(d.rightMin, 1) {
		d.rightMin, d.rightMax = d.leftMin, d.leftMax
	}
}

func (d *ChartData) XMin() float64 { return d.xMin }
func (d *ChartData) XMax() float64 { return d.xMax }

// YMin returns the smallest y value of the sets on dep.
func (d *ChartData) YMin(dep axis.Dependency) float64 {
	if dep == axis.Left {
		return d.leftMin
	}
	return d.rightMin
}

// YMax returns the largest y value of the sets on dep.
func (d *ChartData) YMax(dep axis.Dependency) float64 {
	if dep == axis.Left {
		return d.leftMax
	}
	return d.rightMax
}

// Kind is the type of a data object inside combined data.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindScatter
	KindCandle
	KindBubble
)

var kindNames = [...]string{"line", "bar", "scatter", "candle", "bubble"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// CombinedData overlays independent data objects of different kinds. The
// embedded ChartData aggregates all of their sets for extents.
type CombinedData struct {
	*ChartData

	parts []*ChartData
	kinds []Kind
}

// NewCombinedData creates empty combined data.
func NewCombinedData() *CombinedData {
	return &CombinedData{ChartData: NewChartData()}
}

// Add appends a data object of the given kind. Objects keep the order they
// were added in; that order is the data index reported by highlights.
func (c *CombinedData) Add(kind Kind, d *ChartData) {
	c.parts = append(c.parts, d)
	c.kinds = append(c.kinds, kind)
	c.NotifyDataChanged()
}

// AllData returns the data objects in data-index order.
func (c *CombinedData) AllData() []*ChartData { return c.parts }

// KindAt returns the kind of the data object at index i.
func (c *CombinedData) KindAt(i int) Kind { return c.kinds[i] }

// DataByIndex returns the data object at index i, or nil.
func (c *CombinedData) DataByIndex(i int) *ChartData {
	if i < 0 || i >= len(c.parts) {
		return nil
	}
	return c.parts[i]
}

// NotifyDataChanged rebuilds the aggregate set list and extents.
func (c *CombinedData) NotifyDataChanged() {
	var sets []Series
	for _, p := range c.parts {
		p.NotifyDataChanged()
		sets = append(sets, p.sets...)
	}
	c.sets = sets
	c.CalcMinMax()
}

// CalcMinMaxY recomputes the y extents of every data object for the x
// window.
func (c *CombinedData) CalcMinMaxY(fromX, toX float64) {
	for _, p := range c.parts {
		p.CalcMinMaxY(fromX, toX)
	}
	c.CalcMinMax()
}
