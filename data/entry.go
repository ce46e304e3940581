// Package data holds chart entries and the data sets that group them.
//
// Highlighters and transformers never see concrete data set types; they
// work through the [Series] capability, which every [DataSet] implements.
package data

import (
	"math"
	"slices"
)

// Entry is a single data point.
type Entry interface {
	XValue() float64
	YValue() float64
}

// YRanger is implemented by entries that cover a vertical span rather
// than a single value, such as stacked bars and candles.
type YRanger interface {
	YRange() (lo, hi float64)
}

// Stacked is implemented by entries made of stacked sub-values.
type Stacked interface {
	IsStacked() bool
	Stack() []float64
	StackRanges() []StackRange
}

// Value is a plain x/y entry used by line, scatter and radar data sets.
type Value struct {
	X, Y float64
	Data any
}

func (v Value) XValue() float64 { return v.X }
func (v Value) YValue() float64 { return v.Y }

// StackRange is the cumulative span of one stacked sub-value.
// Low <= High always holds.
type StackRange struct {
	Low, High float64
}

// Contains reports whether v lies in the range, both ends inclusive.
func (r StackRange) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Mid returns the midpoint of the range.
func (r StackRange) Mid() float64 {
	return (r.Low + r.High) / 2
}

// BarEntry is a bar value, optionally made of stacked sub-values.
type BarEntry struct {
	X, Y float64
	Data any

	stack  []float64
	ranges []StackRange
	posSum float64
	negSum float64
}

// NewBarEntry returns a single-value bar.
func NewBarEntry(x, y float64) BarEntry {
	return BarEntry{X: x, Y: y}
}

// NewStackedBarEntry returns a bar whose Y is the sum of vals.
func NewStackedBarEntry(x float64, vals []float64) BarEntry {
	e := BarEntry{X: x}
	e.SetStack(vals)
	return e
}

func (e BarEntry) XValue() float64 { return e.X }
func (e BarEntry) YValue() float64 { return e.Y }

// SetStack replaces the stacked sub-values and recomputes the sums and
// ranges. Positive values are stacked upward from zero and negative values
// downward from zero, each in stack order.
func (e *BarEntry) SetStack(vals []float64) {
	e.stack = slices.Clone(vals)
	e.ranges = make([]StackRange, 0, len(vals))
	e.posSum, e.negSum = 0, 0

	var sum, pos, neg float64
	for _, v := range vals {
		sum += v
		if v < 0 {
			e.ranges = append(e.ranges, StackRange{Low: neg + v, High: neg})
			neg += v
		} else {
			e.ranges = append(e.ranges, StackRange{Low: pos, High: pos + v})
			pos += v
		}
	}
	e.Y = sum
	e.posSum = pos
	e.negSum = -neg
}

// Stack returns the stacked sub-values, or nil for a single-value bar.
func (e BarEntry) Stack() []float64 { return e.stack }

// IsStacked reports whether the bar has stacked sub-values.
func (e BarEntry) IsStacked() bool { return len(e.stack) > 0 }

// StackRanges returns the cumulative range of every sub-value.
func (e BarEntry) StackRanges() []StackRange { return e.ranges }

// PositiveSum returns the sum of all positive sub-values.
func (e BarEntry) PositiveSum() float64 { return e.posSum }

// NegativeSum returns the magnitude of the sum of all negative sub-values.
func (e BarEntry) NegativeSum() float64 { return e.negSum }

// SumBelow returns the sum of the sub-values stacked after stackIndex.
func (e BarEntry) SumBelow(stackIndex int) float64 {
	var remainder float64
	for i := len(e.stack) - 1; i > stackIndex && i >= 0; i-- {
		remainder += e.stack[i]
	}
	return remainder
}

// YRange returns the vertical span the bar covers.
func (e BarEntry) YRange() (lo, hi float64) {
	if !e.IsStacked() {
		return e.Y, e.Y
	}
	return -e.negSum, e.posSum
}

// CandleEntry is an open/high/low/close value. Its Y value is the middle
// of the high-low span.
type CandleEntry struct {
	X                      float64
	High, Low, Open, Close float64
	Data                   any
}

func (e CandleEntry) XValue() float64 { return e.X }
func (e CandleEntry) YValue() float64 { return (e.High + e.Low) / 2 }

// YRange returns the low-high span.
func (e CandleEntry) YRange() (lo, hi float64) {
	return math.Min(e.Low, e.High), math.Max(e.Low, e.High)
}

// IsIncreasing reports whether the candle closed above its open.
func (e CandleEntry) IsIncreasing() bool { return e.Close > e.Open }

// BubbleEntry is an x/y value with a bubble size.
type BubbleEntry struct {
	X, Y, Size float64
	Data       any
}

func (e BubbleEntry) XValue() float64 { return e.X }
func (e BubbleEntry) YValue() float64 { return e.Y }

// PieEntry is one pie slice. Its x value is always zero.
type PieEntry struct {
	Value float64
	Label string
	Data  any
}

func (e PieEntry) XValue() float64 { return 0 }
func (e PieEntry) YValue() float64 { return e.Value }
