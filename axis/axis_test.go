package axis

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		axis     func() *Axis
		min, max float64
		want     Range
	}{
		{
			name: "x axis has no padding",
			axis: NewX,
			min:  0, max: 10,
			want: Range{Minimum: 0, Maximum: 10, Range: 10, Bottom: 0},
		},
		{
			name: "y axis pads range only",
			axis: func() *Axis { return NewY(Left) },
			min:  0, max: 100,
			want: Range{Minimum: 0, Maximum: 100, Range: 120, Bottom: 10},
		},
		{
			name: "degenerate range widens by one",
			axis: NewX,
			min:  5, max: 5,
			want: Range{Minimum: 4, Maximum: 6, Range: 2, Bottom: 0},
		},
		{
			name: "empty data resolves to unit range around zero",
			axis: NewX,
			min:  math.Inf(1), max: math.Inf(-1),
			want: Range{Minimum: -1, Maximum: 1, Range: 2, Bottom: 0},
		},
		{
			name: "nan resolves to zero",
			axis: NewX,
			min:  math.NaN(), max: 4,
			want: Range{Minimum: 0, Maximum: 4, Range: 4, Bottom: 0},
		},
		{
			name: "space margins",
			axis: func() *Axis {
				a := NewX()
				a.SpaceMin, a.SpaceMax = 0.5, 1.5
				return a
			},
			min: 0, max: 8,
			want: Range{Minimum: -0.5, Maximum: 9.5, Range: 10, Bottom: 0},
		},
		{
			name: "custom minimum suppresses bottom padding",
			axis: func() *Axis {
				a := NewY(Right)
				a.SetAxisMinimum(-20)
				return a
			},
			min: 0, max: 80,
			want: Range{Minimum: -20, Maximum: 80, Range: 110, Bottom: 0},
		},
		{
			name: "custom maximum suppresses top padding",
			axis: func() *Axis {
				a := NewY(Left)
				a.SetAxisMaximum(50)
				return a
			},
			min: 10, max: 30,
			want: Range{Minimum: 10, Maximum: 50, Range: 44, Bottom: 4},
		},
		{
			name: "suggested bounds widen",
			axis: func() *Axis {
				a := NewX()
				a.SetSuggestedMinimum(-10)
				a.SetSuggestedMaximum(5)
				return a
			},
			min: 0, max: 20,
			want: Range{Minimum: -10, Maximum: 20, Range: 30, Bottom: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.axis()
			got := a.Calculate(tt.min, tt.max)
			if !rangeNearly(got, tt.want) {
				t.Errorf("Calculate(%v, %v) = %+v, want %+v", tt.min, tt.max, got, tt.want)
			}
			if a.Resolved() != got {
				t.Errorf("Resolved() = %+v, want %+v", a.Resolved(), got)
			}
		})
	}
}

func TestCalculateDegenerateIsFinite(t *testing.T) {
	for _, a := range []*Axis{NewX(), NewY(Left), NewY(Right)} {
		r := a.Calculate(5, 5)
		if r.Range <= 0 || math.IsNaN(r.Range) || math.IsInf(r.Range, 0) {
			t.Errorf("Calculate(5, 5) range = %v, want finite and positive", r.Range)
		}
		if math.IsNaN(r.ScaleMinimum()) || math.IsInf(r.ScaleMinimum(), 0) {
			t.Errorf("ScaleMinimum() = %v, want finite", r.ScaleMinimum())
		}
	}
}

func TestResetCustomBounds(t *testing.T) {
	a := NewX()
	a.SetAxisMinimum(-100)
	a.SetAxisMaximum(100)
	if !a.IsAxisMinimumCustom() || !a.IsAxisMaximumCustom() {
		t.Fatal("custom bounds not reported")
	}
	a.ResetAxisMinimum()
	a.ResetAxisMaximum()
	got := a.Calculate(1, 2)
	if got.Minimum != 1 || got.Maximum != 2 {
		t.Errorf("after reset Calculate(1, 2) = %+v, want data bounds", got)
	}
}

func TestScaleBounds(t *testing.T) {
	r := Range{Minimum: 0, Maximum: 100, Range: 120, Bottom: 10}
	if r.ScaleMinimum() != -10 || r.ScaleMaximum() != 110 {
		t.Errorf("scale bounds = [%v, %v], want [-10, 110]", r.ScaleMinimum(), r.ScaleMaximum())
	}
	if !r.Contains(105) || r.Contains(111) {
		t.Error("Contains disagrees with scale bounds")
	}
}

func TestDependencyString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("Dependency strings = %q, %q", Left, Right)
	}
	if BothSided.String() != "both" {
		t.Errorf("BothSided.String() = %q", BothSided)
	}
}

func rangeNearly(a, b Range) bool {
	const eps = 1e-9
	return math.Abs(a.Minimum-b.Minimum) < eps &&
		math.Abs(a.Maximum-b.Maximum) < eps &&
		math.Abs(a.Range-b.Range) < eps &&
		math.Abs(a.Bottom-b.Bottom) < eps
}
