package layout

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/viewport"
)

// fixedMeasurer gives every rune a width of 6 and every label a height of
// 10.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(label string) (float64, float64) {
	return 6 * float64(len([]rune(label))), 10
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, m.Size())
	assert.Greater(t, m.LineHeight(), 10.0)

	w1, h1 := m.Measure("1")
	w3, h3 := m.Measure("100")
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, w3, 2*w1)
	assert.Equal(t, h1, h3)

	again, _ := m.Measure("100")
	assert.Equal(t, w3, again)

	w, h := m.Measure("")
	assert.Zero(t, w)
	assert.Zero(t, h)

	rtl, _ := m.Measure("שלום")
	assert.GreaterOrEqual(t, rtl, 0.0)
}

func TestLabelDirection(t *testing.T) {
	tests := []struct {
		label string
		want  di.Direction
	}{
		{"", di.DirectionLTR},
		{"100", di.DirectionLTR},
		{"abc", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labelDirection(tt.label), tt.label)
	}
}

func TestFontMeasurerErrors(t *testing.T) {
	_, err := NewFontMeasurer(0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = NewFontMeasurer(10, WithFontData([]byte{}))
	assert.True(t, errors.Is(err, ErrEmptyFontData))

	_, err = NewFontMeasurer(10, WithFontData([]byte("not a font")))
	assert.Error(t, err)
}

func TestOffsets(t *testing.T) {
	x := axis.NewX()
	x.Position = axis.Bottom
	left := axis.NewY(axis.Left)
	right := axis.NewY(axis.Right)
	right.Enabled = false

	c := New(fixedMeasurer{})
	off := c.Offsets(Axes{
		X: x, Left: left, Right: right,
		XLabels:    []string{"0", "10"},
		LeftLabels: []string{"0", "1,000"},
	})
	assert.Equal(t, Insets{Left: 40, Top: 15, Right: 15, Bottom: 15}, off)

	x.Position = axis.BothSided
	c = New(fixedMeasurer{}, WithMinOffset(0), WithLabelPadding(2), WithExtraOffsets(Insets{Right: 7}))
	off = c.Offsets(Axes{X: x, Left: left, LeftLabels: []string{"55"}, XLabels: []string{"a"}})
	assert.Equal(t, Insets{Left: 16, Top: 12, Right: 7, Bottom: 12}, off)
}

func TestHorizontalOffsets(t *testing.T) {
	x := axis.NewX()
	x.Position = axis.Bottom
	left := axis.NewY(axis.Left)
	right := axis.NewY(axis.Right)

	off := New(fixedMeasurer{}, WithMinOffset(0)).Offsets(Axes{
		X: x, Left: left, Right: right,
		XLabels:     []string{"Mon", "Tuesday"},
		LeftLabels:  []string{"0", "50"},
		RightLabels: []string{"0"},
		Horizontal:  true,
	})
	assert.Equal(t, Insets{Left: 47, Top: 20, Right: 0, Bottom: 20}, off)
}

func TestOffsetsInsideLabelsTakeNoSpace(t *testing.T) {
	x := axis.NewX()
	x.Position = axis.TopInside
	off := New(fixedMeasurer{}, WithMinOffset(0)).Offsets(Axes{X: x, XLabels: []string{"100"}})
	assert.Equal(t, Insets{}, off)
}

func TestRadialOffsets(t *testing.T) {
	c := New(fixedMeasurer{}, WithExtraOffsets(Insets{Top: 40}))
	assert.Equal(t, Insets{Left: 15, Top: 40, Right: 15, Bottom: 15}, c.RadialOffsets(nil))
	assert.Equal(t, Insets{Left: 24, Top: 40, Right: 24, Bottom: 24}, c.RadialOffsets([]string{"a", "long"}))

	vp := viewport.New()
	vp.SetChartDimens(300, 300)
	New(fixedMeasurer{}, WithMinOffset(50)).ApplyRadial(vp, nil)
	assert.Equal(t, 200.0, vp.ContentWidth())
}

func TestApply(t *testing.T) {
	vp := viewport.New()
	vp.SetChartDimens(400, 300)
	left := axis.NewY(axis.Left)

	off := New(fixedMeasurer{}).Apply(vp, Axes{Left: left, LeftLabels: []string{"12345"}})
	assert.Equal(t, 40.0, off.Left)
	assert.Equal(t, 40.0, vp.ContentLeft())
	assert.Equal(t, 285.0, vp.ContentBottom())
}

func TestLabels(t *testing.T) {
	a := axis.NewY(axis.Left)
	a.SpacePercentTop, a.SpacePercentBottom = 0, 0
	a.LabelCount = 5
	a.Calculate(0, 1)

	got := Labels(a, nil)
	assert.Equal(t, []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0"}, got)

	got = Labels(a, format.NewLarge())
	assert.Equal(t, "0.2", got[1])

	assert.Nil(t, Labels(nil, nil))
}
