package main

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/internal/fixture"
)

func newTransformCmd(a *app) *cobra.Command {
	var (
		file   string
		values []string
		pixels []string
		dep    string
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Map values to pixels and pixels to values",
		Example: heredoc.Doc(`
			# Where is the value (5, 50) drawn?
			$ chartprobe transform -f chart.yaml --value 5,50

			# Which values of the right axis lie under a pixel?
			$ chartprobe transform -f chart.yaml --pixel 210,140 --axis right
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(values) == 0 && len(pixels) == 0 {
				return errors.New("one of --value or --pixel is required")
			}
			axis, err := fixture.ParseAxis(dep)
			if err != nil {
				return err
			}
			c, err := a.load(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range values {
				x, y, err := parsePoint(s)
				if err != nil {
					return err
				}
				p, err := c.ValueToPixel(x, y, axis)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "value %s -> pixel %s\n", a.point(x, y), a.point(p.X, p.Y))
			}
			for _, s := range pixels {
				x, y, err := parsePoint(s)
				if err != nil {
					return err
				}
				if !c.IsCartesian() {
					r := c.Radial
					fmt.Fprintf(out, "pixel %s -> angle %s distance %s index %d\n",
						a.point(x, y),
						a.formatter().Format(r.AngleForPoint(x, y)),
						a.formatter().Format(r.DistanceToCenter(x, y)),
						r.IndexForAngle(r.AngleForPoint(x, y)))
					continue
				}
				v, err := c.PixelToValue(x, y, axis)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "pixel %s -> value %s\n", a.point(x, y), a.point(v.X, v.Y))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the chart fixture (required)")
	cmd.Flags().StringArrayVar(&values, "value", nil, "Value to map to a pixel, as x,y (repeatable)")
	cmd.Flags().StringArrayVar(&pixels, "pixel", nil, "Pixel to map to values, as x,y (repeatable)")
	cmd.Flags().StringVar(&dep, "axis", "left", "Y axis of the values (left or right)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
