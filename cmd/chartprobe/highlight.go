package main

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/highlight"
	"github.com/gogpu/ggchart/internal/fixture"
)

func newHighlightCmd(a *app) *cobra.Command {
	var (
		file    string
		touches []string
	)

	cmd := &cobra.Command{
		Use:   "highlight",
		Short: "Resolve touches into highlighted entries",
		Example: heredoc.Doc(`
			# Highlight the entries under two touches
			$ chartprobe highlight -f chart.yaml --at 210,140 --at 100,60
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(file)
			if err != nil {
				return err
			}
			for _, t := range touches {
				x, y, err := parsePoint(t)
				if err != nil {
					return err
				}
				a.printHighlights(cmd.OutOrStdout(), c, x, y)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the chart fixture (required)")
	cmd.Flags().StringArrayVar(&touches, "at", nil, "Touch pixel as x,y (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func (a *app) printHighlights(w io.Writer, c *fixture.Chart, x, y float64) {
	hs := c.Highlights(x, y)
	fmt.Fprintf(w, "touch %s: %d highlight(s)\n", a.point(x, y), len(hs))
	for _, h := range hs {
		fmt.Fprintf(w, "  %s\n", a.describe(c, h))
	}
}

func (a *app) describe(c *fixture.Chart, h highlight.Highlight) string {
	s := fmt.Sprintf("set %d %q entry %d value %s pixel %s axis %s",
		h.DataSetIndex, c.SetLabel(h), h.EntryIndex,
		a.point(h.X, h.Y), a.point(h.XPx, h.YPx), h.Axis)
	if h.DataIndex >= 0 {
		s += fmt.Sprintf(" data %d", h.DataIndex)
	}
	if h.StackIndex >= 0 {
		s += fmt.Sprintf(" stack %d", h.StackIndex)
	}
	return s
}
