package highlight

import "github.com/gogpu/ggchart/data"

// CombinedHighlighter highlights charts overlaying several data objects.
// Bar objects are resolved by a BarHighlighter of their own, so stacked
// bars in different objects never share state. Every highlight carries the
// index of the data object it came from.
type CombinedHighlighter struct {
	ChartHighlighter
	provider CombinedProvider
	bars     []barPart
	all      []Highlight
}

// barPart is the bar highlighter of the data object at one data index.
type barPart struct {
	data *data.ChartData
	h    *BarHighlighter
}

// NewCombinedHighlighter creates a highlighter for combined charts.
func NewCombinedHighlighter(p CombinedProvider) *CombinedHighlighter {
	return &CombinedHighlighter{
		ChartHighlighter: ChartHighlighter{provider: p, metric: euclidean},
		provider:         p,
	}
}

// Highlight implements Highlighter.
func (c *CombinedHighlighter) Highlight(x, y float64) []Highlight {
	cd := c.provider.CombinedData()
	if cd == nil || len(cd.AllData()) == 0 {
		return nil
	}

	parts := cd.AllData()
	if len(c.bars) > len(parts) {
		clear(c.bars[len(parts):])
		c.bars = c.bars[:len(parts)]
	}

	xVal := c.valueForTouch(x, y)
	c.all = c.all[:0]
	for i, part := range parts {
		if cd.KindAt(i) != data.KindBar {
			c.all = c.buf.collect(c.all, c.provider, part, xVal, i, false)
			continue
		}
		for _, h := range c.barHighlighter(i, part).Highlight(x, y) {
			h.DataIndex = i
			c.all = append(c.all, h)
		}
	}
	return c.finish(c.all, x, y)
}

// barHighlighter returns the bar highlighter for the data object at index
// i, replacing it when a different object took that index.
func (c *CombinedHighlighter) barHighlighter(i int, part *data.ChartData) *BarHighlighter {
	for len(c.bars) <= i {
		c.bars = append(c.bars, barPart{})
	}
	if b := c.bars[i]; b.h != nil && b.data == part {
		return b.h
	}
	b := NewBarHighlighter(dataProvider{Provider: c.provider, data: part})
	c.bars[i] = barPart{data: part, h: b}
	return b
}
