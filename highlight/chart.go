package highlight

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/data"
)

// metric measures the pixel distance between a candidate and the touch.
type metric int

const (
	euclidean metric = iota
	horizontalOnly
	verticalOnly
)

func (m metric) distance(h Highlight, x, y float64) float64 {
	switch m {
	case horizontalOnly:
		return math.Abs(h.XPx - x)
	case verticalOnly:
		return math.Abs(h.YPx - y)
	default:
		return math.Hypot(h.XPx-x, h.YPx-y)
	}
}

type scored struct {
	h Highlight
	d float64
}

// scratch holds the buffers one highlighter reuses between touches.
type scratch struct {
	cands  []Highlight
	idx    []int
	scored []scored
}

// collect appends one candidate per entry of every visible,
// highlight-enabled set of cd at xVal. When a set has no entry at xVal the
// entries at its nearest x below and above are taken.
func (s *scratch) collect(dst []Highlight, p Provider, cd *data.ChartData, xVal float64, dataIndex int, horizontal bool) []Highlight {
	if cd == nil {
		return dst
	}
	for i, set := range cd.DataSets() {
		if !set.IsVisible() || !set.IsHighlightEnabled() || set.Len() == 0 {
			continue
		}
		s.idx = set.AppendIndexesForX(s.idx[:0], xVal)
		if len(s.idx) == 0 {
			below := set.XAt(set.IndexForX(xVal, math.NaN(), data.Down))
			above := set.XAt(set.IndexForX(xVal, math.NaN(), data.Up))
			s.idx = set.AppendIndexesForX(s.idx, below)
			if above != below {
				s.idx = set.AppendIndexesForX(s.idx, above)
			}
		}

		dep := set.AxisDependency()
		tr := p.Transformer(dep)
		for _, j := range s.idx {
			ex, ey := set.XAt(j), set.YAt(j)
			var px ggchart.Point
			if horizontal {
				px = tr.PixelForValues(ey, ex)
			} else {
				px = tr.PixelForValues(ex, ey)
			}
			dst = append(dst, Highlight{
				X:            ex,
				Y:            ey,
				XPx:          px.X,
				YPx:          px.Y,
				DataIndex:    dataIndex,
				DataSetIndex: i,
				EntryIndex:   j,
				StackIndex:   -1,
				Axis:         dep,
				DrawX:        px.X,
				DrawY:        px.Y,
			})
		}
	}
	return dst
}

// filterByAxis keeps only the candidates on the axis closest to the touch.
// The distance runs along the value direction: pixel y for vertical charts
// and pixel x for horizontal bars. The left axis wins only when strictly
// closer.
func filterByAxis(cands []Highlight, x, y float64, horizontal bool) []Highlight {
	if len(cands) < 2 {
		return cands
	}
	left := minAxisDistance(cands, x, y, axis.Left, horizontal)
	right := minAxisDistance(cands, x, y, axis.Right, horizontal)
	keep := axis.Right
	if left < right {
		keep = axis.Left
	}
	return slices.DeleteFunc(cands, func(h Highlight) bool { return h.Axis != keep })
}

func minAxisDistance(cands []Highlight, x, y float64, dep axis.Dependency, horizontal bool) float64 {
	best := math.Inf(1)
	for _, h := range cands {
		if h.Axis != dep {
			continue
		}
		d := math.Abs(h.YPx - y)
		if horizontal {
			d = math.Abs(h.XPx - x)
		}
		best = min(best, d)
	}
	return best
}

// rank drops candidates farther than maxDist and returns the rest sorted
// by distance in a new slice. Equal distances keep collection order.
func (s *scratch) rank(cands []Highlight, x, y, maxDist float64, m metric) []Highlight {
	s.scored = s.scored[:0]
	for _, h := range cands {
		d := m.distance(h, x, y)
		if d <= maxDist {
			s.scored = append(s.scored, scored{h, d})
		}
	}
	if len(s.scored) == 0 {
		return nil
	}
	slices.SortStableFunc(s.scored, func(a, b scored) int { return cmp.Compare(a.d, b.d) })
	out := make([]Highlight, len(s.scored))
	for i, c := range s.scored {
		out[i] = c.h
	}
	return out
}

// ChartHighlighter highlights line, scatter, candle and bubble charts. It
// reuses internal buffers and is not safe for concurrent use.
type ChartHighlighter struct {
	provider   Provider
	metric     metric
	horizontal bool
	buf        scratch
}

// NewChartHighlighter creates a highlighter ranking by Euclidean distance.
func NewChartHighlighter(p Provider) *ChartHighlighter {
	return &ChartHighlighter{provider: p, metric: euclidean}
}

// Highlight implements Highlighter.
func (c *ChartHighlighter) Highlight(x, y float64) []Highlight {
	cd := c.provider.ChartData()
	if cd == nil || cd.DataSetCount() == 0 {
		return nil
	}
	c.buf.cands = c.buf.collect(c.buf.cands[:0], c.provider, cd, c.valueForTouch(x, y), -1, c.horizontal)
	return c.finish(c.buf.cands, x, y)
}

// valueForTouch returns the data x value under the touch, read through the
// left axis transformer.
func (c *ChartHighlighter) valueForTouch(x, y float64) float64 {
	pos := c.provider.Transformer(axis.Left).ValuesByTouchPoint(x, y)
	if c.horizontal {
		return pos.Y
	}
	return pos.X
}

func (c *ChartHighlighter) finish(cands []Highlight, x, y float64) []Highlight {
	if c.provider.HighlightsFilterByAxis() {
		cands = filterByAxis(cands, x, y, c.horizontal)
	}
	return c.buf.rank(cands, x, y, c.provider.MaxHighlightDistance(), c.metric)
}
