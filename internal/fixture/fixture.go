// Package fixture loads chart descriptions from YAML and builds charts
// from them.
//
// A fixture names the chart kind and size, its axes and data sets, and a
// list of viewport operations to apply once the chart is built:
//
//	kind: line
//	width: 400
//	height: 300
//	offsets: [40, 10, 20, 30]
//	leftAxis: {spaceTop: 0, spaceBottom: 0}
//	sets:
//	  - label: temperature
//	    values: [[0, 0], [5, 50], [10, 100]]
//	ops:
//	  - {op: zoomAtValue, scaleX: 2, scaleY: 1, x: 5, y: 50}
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for an unrecognized chart or set kind.
	ErrUnknownKind = errors.New("fixture: unknown kind")

	// ErrUnknownOp is returned for an unrecognized viewport operation.
	ErrUnknownOp = errors.New("fixture: unknown op")

	// ErrBadValues is returned when an entry has the wrong number of
	// values for its set.
	ErrBadValues = errors.New("fixture: bad entry values")

	// ErrNotCartesian is returned for x/y operations on a pie or radar
	// chart.
	ErrNotCartesian = errors.New("fixture: operation needs a cartesian chart")

	// ErrNoSize is returned when the chart has no width or height.
	ErrNoSize = errors.New("fixture: chart size must be positive")
)

// File is a chart description.
type File struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Offsets fixes the content offsets as [left, top, right, bottom].
	// Without it the offsets follow the axis labels.
	Offsets   []float64 `yaml:"offsets,omitempty"`
	MinOffset *float64  `yaml:"minOffset,omitempty"`

	MaxHighlightDistance *float64  `yaml:"maxHighlightDistance,omitempty"`
	FilterByAxis         *bool     `yaml:"filterByAxis,omitempty"`
	DragOffset           []float64 `yaml:"dragOffset,omitempty"`
	AutoScale            bool      `yaml:"autoScale,omitempty"`
	FitBars              bool      `yaml:"fitBars,omitempty"`
	BarWidth             float64   `yaml:"barWidth,omitempty"`

	// Rotation is the start angle of a pie or radar chart in degrees.
	Rotation *float64 `yaml:"rotation,omitempty"`

	XAxis     AxisSpec `yaml:"xAxis,omitempty"`
	LeftAxis  AxisSpec `yaml:"leftAxis,omitempty"`
	RightAxis AxisSpec `yaml:"rightAxis,omitempty"`

	Sets []SetSpec `yaml:"sets"`
	Ops  []Op      `yaml:"ops,omitempty"`
}

// AxisSpec overrides axis settings. Unset fields keep the axis default.
type AxisSpec struct {
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	SpaceTop    *float64 `yaml:"spaceTop,omitempty"`
	SpaceBottom *float64 `yaml:"spaceBottom,omitempty"`
	Enabled     *bool    `yaml:"enabled,omitempty"`
	Labels      *bool    `yaml:"labels,omitempty"`
	Inverted    bool     `yaml:"inverted,omitempty"`
}

// SetSpec is one data set. The meaning of each values row depends on the
// entry type:
//
//	line, scatter  [x, y]
//	bar            [x, y] or [x, v1, v2, ...] for a stacked bar
//	candle         [x, high, low, open, close]
//	bubble         [x, y, size]
//	pie, radar     [y]
type SetSpec struct {
	Label string `yaml:"label"`

	// Kind selects the entry type inside combined charts. Other charts
	// use their own kind.
	Kind string `yaml:"kind,omitempty"`

	// Axis is "left" (the default) or "right".
	Axis string `yaml:"axis,omitempty"`

	Values [][]float64 `yaml:"values"`

	// Labels names pie slices.
	Labels []string `yaml:"labels,omitempty"`

	Hidden      bool `yaml:"hidden,omitempty"`
	NoHighlight bool `yaml:"noHighlight,omitempty"`
}

// Op is a viewport operation. Which fields apply depends on the op.
type Op struct {
	Op       string        `yaml:"op"`
	ScaleX   float64       `yaml:"scaleX,omitempty"`
	ScaleY   float64       `yaml:"scaleY,omitempty"`
	X        float64       `yaml:"x,omitempty"`
	Y        float64       `yaml:"y,omitempty"`
	Min      float64       `yaml:"min,omitempty"`
	Max      float64       `yaml:"max,omitempty"`
	Angle    float64       `yaml:"angle,omitempty"`
	Axis     string        `yaml:"axis,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// Parse decodes a fixture. Unknown fields are rejected.
func Parse(b []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if f.Kind == "" {
		f.Kind = "line"
	}
	return &f, nil
}

// Load reads and decodes the fixture at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
