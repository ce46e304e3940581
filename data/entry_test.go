package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackRanges(t *testing.T) {
	tests := []struct {
		name    string
		vals    []float64
		want    []StackRange
		wantY   float64
		wantPos float64
		wantNeg float64
	}{
		{
			name:    "mixed signs",
			vals:    []float64{3, -2, 5},
			want:    []StackRange{{0, 3}, {-2, 0}, {3, 8}},
			wantY:   6,
			wantPos: 8,
			wantNeg: 2,
		},
		{
			name:    "negatives walk downward",
			vals:    []float64{-1, -2, 4},
			want:    []StackRange{{-1, 0}, {-3, -1}, {0, 4}},
			wantY:   1,
			wantPos: 4,
			wantNeg: 3,
		},
		{
			name:    "zero value is an empty positive range",
			vals:    []float64{2, 0},
			want:    []StackRange{{0, 2}, {2, 2}},
			wantY:   2,
			wantPos: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewStackedBarEntry(1, tt.vals)
			require.True(t, e.IsStacked())
			assert.Equal(t, tt.want, e.StackRanges())
			assert.Equal(t, tt.wantY, e.YValue())
			assert.Equal(t, tt.wantPos, e.PositiveSum())
			assert.Equal(t, tt.wantNeg, e.NegativeSum())
		})
	}
}

func TestStackRangeContains(t *testing.T) {
	r := StackRange{Low: 3, High: 8}
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(8))
	assert.False(t, r.Contains(8.01))
	assert.Equal(t, 5.5, r.Mid())
}

func TestSumBelow(t *testing.T) {
	e := NewStackedBarEntry(0, []float64{1, 2, 3, 4})
	assert.Equal(t, 7.0, e.SumBelow(1))
	assert.Equal(t, 0.0, e.SumBelow(3))
	assert.Equal(t, 0.0, NewBarEntry(0, 5).SumBelow(0))
}

func TestSetStackReuse(t *testing.T) {
	e := NewStackedBarEntry(0, []float64{1, 2})
	e.SetStack([]float64{-4})
	assert.Equal(t, []StackRange{{-4, 0}}, e.StackRanges())
	lo, hi := e.YRange()
	assert.Equal(t, -4.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestSetStackDoesNotAliasCopies(t *testing.T) {
	e := NewStackedBarEntry(1, []float64{3, -2, 5})
	set := NewDataSet("s", []BarEntry{e})
	e.SetStack([]float64{1, 1, 1})

	got := set.At(0)
	assert.Equal(t, 6.0, got.Y)
	assert.Equal(t, []float64{3, -2, 5}, got.Stack())
	assert.Equal(t, []StackRange{{0, 3}, {-2, 0}, {3, 8}}, got.StackRanges())
	assert.Equal(t, 3.0, e.Y)

	vals := []float64{2, 2}
	e.SetStack(vals)
	vals[0] = 9
	assert.Equal(t, []float64{2, 2}, e.Stack())
}
