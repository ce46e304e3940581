package data

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/ggchart/axis"
)

// Rounding selects which neighbour IndexForX returns when no entry has the
// exact x value.
type Rounding int

const (
	Closest Rounding = iota
	Up
	Down
)

// String returns the rounding name.
func (r Rounding) String() string {
	switch r {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "closest"
	}
}

// Series is the capability highlighters, transformers and charts need
// from a data set.
type Series interface {
	Label() string
	Len() int
	Entry(i int) Entry

	// XAt and YAt return the x and y value of entry i without boxing it.
	XAt(i int) float64
	YAt(i int) float64

	XMin() float64
	XMax() float64
	YMin() float64
	YMax() float64

	// IndexForX returns the index of the entry nearest to x, adjusted by
	// rounding. When closestToY is not NaN and several entries share that
	// x, the one whose y is closest to closestToY wins. Returns -1 for an
	// empty series.
	IndexForX(x, closestToY float64, rounding Rounding) int

	// AppendIndexesForX appends the indexes of all entries whose x equals
	// x exactly and returns the extended slice.
	AppendIndexesForX(dst []int, x float64) []int

	// CalcMinMax recomputes both extents from all entries.
	CalcMinMax()

	// CalcMinMaxY recomputes the y extent from the entries between fromX
	// and toX.
	CalcMinMaxY(fromX, toX float64)

	IsVisible() bool
	IsHighlightEnabled() bool
	AxisDependency() axis.Dependency
}

// DataSet is an ordered collection of entries of one type. Entries are
// kept sorted by x.
type DataSet[E Entry] struct {
	label   string
	entries []E

	Visible          bool
	HighlightEnabled bool
	Dependency       axis.Dependency

	xMin, xMax float64
	yMin, yMax float64
}

// NewDataSet creates a visible, highlightable data set on the left axis.
// The entries are sorted by x; entries sharing an x keep their order.
func NewDataSet[E Entry](label string, entries []E) *DataSet[E] {
	s := &DataSet[E]{
		label:            label,
		entries:          slices.Clone(entries),
		Visible:          true,
		HighlightEnabled: true,
		Dependency:       axis.Left,
	}
	slices.SortStableFunc(s.entries, func(a, b E) int {
		return cmp.Compare(a.XValue(), b.XValue())
	})
	s.CalcMinMax()
	return s
}

func (s *DataSet[E]) Label() string                   { return s.label }
func (s *DataSet[E]) Len() int                        { return len(s.entries) }
func (s *DataSet[E]) Entry(i int) Entry               { return s.entries[i] }
func (s *DataSet[E]) At(i int) E                      { return s.entries[i] }
func (s *DataSet[E]) XAt(i int) float64               { return s.entries[i].XValue() }
func (s *DataSet[E]) YAt(i int) float64               { return s.entries[i].YValue() }
func (s *DataSet[E]) Entries() []E                    { return s.entries }
func (s *DataSet[E]) XMin() float64                   { return s.xMin }
func (s *DataSet[E]) XMax() float64                   { return s.xMax }
func (s *DataSet[E]) YMin() float64                   { return s.yMin }
func (s *DataSet[E]) YMax() float64                   { return s.yMax }
func (s *DataSet[E]) IsVisible() bool                 { return s.Visible }
func (s *DataSet[E]) IsHighlightEnabled() bool        { return s.HighlightEnabled }
func (s *DataSet[E]) AxisDependency() axis.Dependency { return s.Dependency }

// Add inserts e after every entry with an x less than or equal to its own.
func (s *DataSet[E]) Add(e E) {
	i, _ := slices.BinarySearchFunc(s.entries, e.XValue(), func(a E, x float64) int {
		if a.XValue() <= x {
			return -1
		}
		return 1
	})
	s.entries = slices.Insert(s.entries, i, e)
	s.includeX(e)
	s.includeY(e)
}

// Remove deletes the entry at index i. It reports false if i is out of
// range.
func (s *DataSet[E]) Remove(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.CalcMinMax()
	return true
}

// Clear removes all entries.
func (s *DataSet[E]) Clear() {
	s.entries = s.entries[:0]
	s.CalcMinMax()
}

// CalcMinMax recomputes the x and y extents from all entries. An empty set
// has inverted infinite extents.
func (s *DataSet[E]) CalcMinMax() {
	s.xMin, s.xMax = math.Inf(1), math.Inf(-1)
	s.yMin, s.yMax = math.Inf(1), math.Inf(-1)
	for _, e := range s.entries {
		s.includeX(e)
		s.includeY(e)
	}
}

// CalcMinMaxY recomputes the y extent from the entries between fromX and
// toX only.
func (s *DataSet[E]) CalcMinMaxY(fromX, toX float64) {
	s.yMin, s.yMax = math.Inf(1), math.Inf(-1)
	if len(s.entries) == 0 {
		return
	}
	from := s.IndexForX(fromX, math.NaN(), Down)
	to := s.IndexForX(toX, math.NaN(), Up)
	for i := from; i <= to; i++ {
		s.includeY(s.entries[i])
	}
}

func (s *DataSet[E]) includeX(e E) {
	x := e.XValue()
	s.xMin = math.Min(s.xMin, x)
	s.xMax = math.Max(s.xMax, x)
}

func (s *DataSet[E]) includeY(e E) {
	lo, hi := yRange(e)
	s.yMin = math.Min(s.yMin, lo)
	s.yMax = math.Max(s.yMax, hi)
}

func yRange(e Entry) (lo, hi float64) {
	if r, ok := e.(YRanger); ok {
		return r.YRange()
	}
	y := e.YValue()
	return y, y
}

// IndexForX implements Series.
func (s *DataSet[E]) IndexForX(x, closestToY float64, rounding Rounding) int {
	n := len(s.entries)
	if n == 0 {
		return -1
	}

	low, high := 0, n-1
	closest := high
	for low < high {
		m := (low + high) / 2
		d1 := s.entries[m].XValue() - x
		d2 := s.entries[m+1].XValue() - x
		ad1, ad2 := math.Abs(d1), math.Abs(d2)
		switch {
		case ad2 < ad1:
			low = m + 1
		case ad1 < ad2:
			high = m
		case d1 >= 0:
			high = m
		default:
			low = m + 1
		}
		closest = high
	}

	closestX := s.entries[closest].XValue()
	switch rounding {
	case Up:
		if closestX < x && closest < n-1 {
			closest++
		}
	case Down:
		if closestX > x && closest > 0 {
			closest--
		}
	}

	if math.IsNaN(closestToY) {
		return closest
	}

	closestX = s.entries[closest].XValue()
	for closest > 0 && s.entries[closest-1].XValue() == closestX {
		closest--
	}
	best := closest
	bestDist := math.Abs(s.entries[closest].YValue() - closestToY)
	for i := closest + 1; i < n && s.entries[i].XValue() == closestX; i++ {
		if d := math.Abs(s.entries[i].YValue() - closestToY); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// EntryForX returns the entry IndexForX selects.
func (s *DataSet[E]) EntryForX(x, closestToY float64, rounding Rounding) (E, bool) {
	i := s.IndexForX(x, closestToY, rounding)
	if i < 0 {
		var zero E
		return zero, false
	}
	return s.entries[i], true
}

// AppendIndexesForX implements Series.
func (s *DataSet[E]) AppendIndexesForX(dst []int, x float64) []int {
	low, high := 0, len(s.entries)-1
	for low <= high {
		m := (low + high) / 2
		ex := s.entries[m].XValue()
		switch {
		case ex == x:
			for m > 0 && s.entries[m-1].XValue() == x {
				m--
			}
			for ; m < len(s.entries) && s.entries[m].XValue() == x; m++ {
				dst = append(dst, m)
			}
			return dst
		case x > ex:
			low = m + 1
		default:
			high = m - 1
		}
	}
	return dst
}

// IsStacked reports whether any entry has stacked sub-values.
func (s *DataSet[E]) IsStacked() bool {
	return s.StackSize() > 1
}

// StackSize returns the largest number of stacked sub-values in any entry,
// or 1 when no entry is stacked.
func (s *DataSet[E]) StackSize() int {
	size := 1
	for _, e := range s.entries {
		if st, ok := any(e).(Stacked); ok && st.IsStacked() {
			size = max(size, len(st.StackRanges()))
		}
	}
	return size
}
