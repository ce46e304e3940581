package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
)

// run executes chartprobe with the test config, which prints one
// decimal.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { ggchart.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", "testdata/config.yaml"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHighlight(t *testing.T) {
	out, _, err := run(t, "highlight", "-f", "testdata/line.yaml", "--at", "210,140", "--at", "0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "touch (210.0, 140.0): 1 highlight(s)")
	assert.Contains(t, out, `set 0 "line" entry 5 value (5.0, 50.0) pixel (210.0, 140.0) axis left`)
	assert.Contains(t, out, "touch (0.0, 0.0)")
}

func TestHighlightPie(t *testing.T) {
	out, _, err := run(t, "highlight", "-f", "testdata/pie.yaml", "--at", "200,200")
	require.NoError(t, err)
	assert.Contains(t, out, `set 0 "share" entry 1 value (1.0, 1.0)`)
}

func TestTransform(t *testing.T) {
	out, _, err := run(t, "transform", "-f", "testdata/line.yaml",
		"--value", "5,50", "--pixel", "210,140", "--axis", "right")
	require.NoError(t, err)
	assert.Contains(t, out, "value (5.0, 50.0) -> pixel (210.0, 140.0)")
	assert.Contains(t, out, "pixel (210.0, 140.0) -> value (5.0, 50.0)")
}

func TestTransformRadial(t *testing.T) {
	out, _, err := run(t, "transform", "-f", "testdata/pie.yaml", "--pixel", "150,250")
	require.NoError(t, err)
	assert.Contains(t, out, "pixel (150.0, 250.0) -> angle 90.0 distance 100.0 index 2")

	_, _, err = run(t, "transform", "-f", "testdata/pie.yaml", "--value", "1,1")
	assert.Error(t, err)
}

func TestViewport(t *testing.T) {
	out, _, err := run(t, "viewport", "-f", "testdata/zoomed.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "content:  (40.0, 10.0) - (380.0, 270.0)")
	assert.Contains(t, out, "scale:    2.0 [1.0, inf] x 2.0 [1.0, inf]")
	assert.Contains(t, out, "visible x: 2.5 to 7.5")
	assert.Contains(t, out, "left axis: 0.0 to 100.0, visible 25.0 to 75.0")
}

func TestViewportPie(t *testing.T) {
	out, _, err := run(t, "viewport", "-f", "testdata/pie.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "center:   (150.0, 150.0)")
	assert.Contains(t, out, "radius:   100.0")
	assert.Contains(t, out, "rotation: 270.0")
	assert.Contains(t, out, "slices:   90.0 90.0 180.0")
}

func TestSizeOverride(t *testing.T) {
	out, _, err := run(t, "viewport", "-f", "testdata/line.yaml", "--width", "800", "--decimals", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "chart:    800 x 300")
	assert.Contains(t, out, "content:  (40, 10) - (780, 270)")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "viewport", "-f", "testdata/zoomed.yaml", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "op applied")
	assert.Contains(t, stderr, "chart loaded")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file flag", []string{"viewport"}},
		{"missing file", []string{"viewport", "-f", "testdata/nope.yaml"}},
		{"bad point", []string{"highlight", "-f", "testdata/line.yaml", "--at", "12"}},
		{"nothing to transform", []string{"transform", "-f", "testdata/line.yaml"}},
		{"bad axis", []string{"transform", "-f", "testdata/line.yaml", "--value", "1,1", "--axis", "top"}},
		{"bad log level", []string{"viewport", "-f", "testdata/line.yaml", "--log-level", "loud"}},
		{"bad config", []string{"--config", "testdata/nope.yaml", "viewport", "-f", "testdata/line.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint(" 1.5, -2 ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -2.0, y)

	for _, s := range []string{"", "1", "a,1", "1,b"} {
		_, _, err := parsePoint(s)
		assert.ErrorIs(t, err, errBadPoint, s)
	}
}
