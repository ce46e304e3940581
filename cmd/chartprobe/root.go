package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/internal/fixture"
)

// errBadPoint is returned for a point flag that is not "x,y".
var errBadPoint = errors.New("point must be x,y")

// app holds the configuration shared by all subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "chartprobe",
		Short: "Probe chart transforms and highlights",
		Long: heredoc.Doc(`
			chartprobe builds a chart from a YAML fixture, applies the
			fixture's viewport operations and reports value to pixel
			mappings, highlights and the resulting viewport.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogging(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default is $HOME/.chartprobe.yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Float64("width", 0, "Chart width in pixels, overriding the fixture")
	flags.Float64("height", 0, "Chart height in pixels, overriding the fixture")
	flags.Int("decimals", 2, "Fraction digits printed for values and pixels")
	for _, name := range []string{"log-level", "width", "height", "decimals"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(
		newHighlightCmd(a),
		newTransformCmd(a),
		newViewportCmd(a),
	)
	return cmd
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix("chartprobe")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".chartprobe")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (a *app) initLogging(cmd *cobra.Command) error {
	level, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "chartprobe",
	})
	ggchart.SetLogger(slog.New(logger))
	return nil
}

// load builds the fixture's chart and runs its ops to completion.
func (a *app) load(path string) (*fixture.Chart, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	if w := a.v.GetFloat64("width"); w > 0 {
		f.Width = w
	}
	if h := a.v.GetFloat64("height"); h > 0 {
		f.Height = h
	}

	c, err := fixture.Build(f)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(f.Ops); err != nil {
		return nil, err
	}
	frames := c.Settle(time.Unix(0, 0))
	ggchart.Logger().Debug("chartprobe: chart loaded",
		"file", path, "kind", c.Kind, "ops", len(f.Ops), "frames", frames)
	return c, nil
}

func (a *app) formatter() format.Formatter {
	return format.NewDefault(a.v.GetInt("decimals"))
}

// point formats a pair as "(x, y)".
func (a *app) point(x, y float64) string {
	return "(" + format.Join(a.formatter(), ", ", x, y) + ")"
}

func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	return x, y, nil
}
