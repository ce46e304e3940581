package main

import (
	"fmt"
	"io"
	"math"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/format"
)

func newViewportCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "viewport",
		Short: "Print the viewport after the fixture's operations",
		Long: heredoc.Doc(`
			Print the content rect, zoom and pan of the chart once every
			operation listed in the fixture, animated ones included, has
			run to completion.
		`),
		Example: heredoc.Doc(`
			$ chartprobe viewport -f zoomed.yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(file)
			if err != nil {
				return err
			}
			if c.Radial != nil {
				a.printRadial(cmd.OutOrStdout(), c.Radial)
			} else {
				a.printBarLine(cmd.OutOrStdout(), c.BarLine)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the chart fixture (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// scale formats a zoom factor; unbounded maximums print as "inf".
func (a *app) scale(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return a.formatter().Format(v)
}

func (a *app) printBarLine(w io.Writer, c *chart.BarLine) {
	vp := c.Viewport()
	fm := a.formatter()
	r := vp.ContentRect()
	off := c.Offsets()

	fmt.Fprintf(w, "kind:     %s\n", c.Kind())
	fmt.Fprintf(w, "chart:    %s x %s\n", fm.Format(vp.ChartWidth()), fm.Format(vp.ChartHeight()))
	fmt.Fprintf(w, "content:  %s - %s\n", a.point(r.Left, r.Top), a.point(r.Right, r.Bottom))
	fmt.Fprintf(w, "offsets:  %s\n", format.Join(fm, " ", off.Left, off.Top, off.Right, off.Bottom))
	fmt.Fprintf(w, "scale:    %s [%s, %s] x %s [%s, %s]\n",
		fm.Format(vp.ScaleX()), a.scale(vp.MinScaleX()), a.scale(vp.MaxScaleX()),
		fm.Format(vp.ScaleY()), a.scale(vp.MinScaleY()), a.scale(vp.MaxScaleY()))
	fmt.Fprintf(w, "trans:    %s\n", a.point(vp.TransX(), vp.TransY()))
	fmt.Fprintf(w, "visible x: %s to %s\n", fm.Format(c.LowestVisibleX()), fm.Format(c.HighestVisibleX()))
	for _, dep := range []axis.Dependency{axis.Left, axis.Right} {
		ax := c.Axis(dep)
		if !ax.Enabled {
			continue
		}
		top := c.ValuesByTouchPoint(vp.ContentLeft(), vp.ContentTop(), dep).Y
		bottom := c.ValuesByTouchPoint(vp.ContentLeft(), vp.ContentBottom(), dep).Y
		fmt.Fprintf(w, "%s axis: %s to %s, visible %s to %s\n", dep,
			fm.Format(ax.Minimum()), fm.Format(ax.Maximum()),
			fm.Format(bottom), fm.Format(top))
	}
}

func (a *app) printRadial(w io.Writer, c *chart.Radial) {
	fm := a.formatter()
	center := c.Center()

	fmt.Fprintf(w, "kind:     %s\n", c.Kind())
	fmt.Fprintf(w, "center:   %s\n", a.point(center.X, center.Y))
	fmt.Fprintf(w, "radius:   %s\n", fm.Format(c.Radius()))
	fmt.Fprintf(w, "rotation: %s\n", fm.Format(c.RotationAngle()))
	if c.Kind() == chart.Pie {
		fmt.Fprintf(w, "slices:   %s\n", format.Join(fm, " ", c.DrawAngles()...))
		return
	}
	fmt.Fprintf(w, "spokes:   every %s degrees\n", fm.Format(c.SliceAngle()))
	fmt.Fprintf(w, "web:      %s to %s\n", fm.Format(c.YChartMin()), fm.Format(c.YChartMax()))
}
