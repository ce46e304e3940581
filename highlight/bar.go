package highlight

import (
	"math"

	"github.com/gogpu/ggchart/data"
)

// BarHighlighter highlights bar charts. Bars are ranked by horizontal
// distance only, and a stacked bar resolves to the sub-value under the
// touch.
type BarHighlighter struct {
	ChartHighlighter
}

// NewBarHighlighter creates a highlighter for vertical bar charts.
func NewBarHighlighter(p Provider) *BarHighlighter {
	return &BarHighlighter{ChartHighlighter{provider: p, metric: horizontalOnly}}
}

// NewHorizontalBarHighlighter creates a highlighter for horizontal bar
// charts. The provider's transformers must be horizontal, and bars are
// ranked by vertical distance only.
func NewHorizontalBarHighlighter(p Provider) *BarHighlighter {
	return &BarHighlighter{ChartHighlighter{provider: p, metric: verticalOnly, horizontal: true}}
}

// Highlight implements Highlighter.
func (b *BarHighlighter) Highlight(x, y float64) []Highlight {
	hs := b.ChartHighlighter.Highlight(x, y)
	if len(hs) == 0 {
		return hs
	}
	cd := b.provider.ChartData()
	for i := range hs {
		hs[i] = b.resolveStack(cd, hs[i], x, y)
	}
	return hs
}

// resolveStack narrows h to the stacked sub-value under the touch. The
// value along the bar comes from the transformer of h's axis.
func (b *BarHighlighter) resolveStack(cd *data.ChartData, h Highlight, x, y float64) Highlight {
	e, ok := cd.Entry(h.DataSetIndex, h.EntryIndex)
	if !ok {
		return h
	}
	st, ok := e.(data.Stacked)
	if !ok || !st.IsStacked() {
		return h
	}

	tr := b.provider.Transformer(h.Axis)
	pos := tr.ValuesByTouchPoint(x, y)
	v := pos.Y
	if b.horizontal {
		v = pos.X
	}

	ranges := st.StackRanges()
	i := StackIndex(ranges, v)
	if i < 0 {
		return h
	}

	mid := ranges[i].Mid()
	h.StackIndex = i
	h.Y = st.Stack()[i]
	if b.horizontal {
		h.XPx = tr.PixelForValues(mid, h.X).X
		h.DrawX = h.XPx
	} else {
		h.YPx = tr.PixelForValues(h.X, mid).Y
		h.DrawY = h.YPx
	}
	return h
}

// StackIndex returns the index of the range containing v. Range bounds are
// inclusive and the lowest index wins on a shared bound. When no range
// contains v the nearest one is returned, again preferring the lowest
// index. It returns -1 for no ranges.
func StackIndex(ranges []data.StackRange, v float64) int {
	if len(ranges) == 0 || math.IsNaN(v) {
		return -1
	}
	best, bestDist := -1, math.Inf(1)
	for i, r := range ranges {
		if r.Contains(v) {
			return i
		}
		d := r.Low - v
		if v > r.High {
			d = v - r.High
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
