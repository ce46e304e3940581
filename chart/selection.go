package chart

import "github.com/gogpu/ggchart/highlight"

// selection holds the highlighted values of a chart.
type selection struct {
	onSelect func([]highlight.Highlight)
	current  []highlight.Highlight
}

func (s *selection) set(hs []highlight.Highlight) {
	s.current = append(s.current[:0], hs...)
	if s.onSelect != nil {
		s.onSelect(s.Highlighted())
	}
}

func (s *selection) clear() {
	if len(s.current) == 0 {
		return
	}
	s.set(nil)
}

// toggle selects h, or clears the selection when h is already the only
// selected value or there is nothing to select.
func (s *selection) toggle(h highlight.Highlight, ok bool) (highlight.Highlight, bool) {
	if !ok || (len(s.current) == 1 && s.current[0].Same(h)) {
		s.clear()
		return highlight.Highlight{}, false
	}
	s.set([]highlight.Highlight{h})
	return h, true
}

// Highlighted returns a copy of the highlighted values.
func (s *selection) Highlighted() []highlight.Highlight {
	return append([]highlight.Highlight(nil), s.current...)
}

// ClearHighlights removes every highlighted value.
func (s *selection) ClearHighlights() { s.clear() }
