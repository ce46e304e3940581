// Package format turns chart values into label text.
//
// Formatters are locale aware through golang.org/x/text; the default
// language is English.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats a value for display.
type Formatter interface {
	Format(v float64) string
}

// Func adapts a function to Formatter.
type Func func(v float64) string

// Format implements Formatter.
func (f Func) Format(v float64) string { return f(v) }

// Option configures a formatter.
type Option func(*config)

type config struct {
	tag language.Tag
}

// WithLanguage selects the locale used for separators and digits.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.tag = tag
	}
}

func newPrinter(opts []Option) *message.Printer {
	c := config{tag: language.English}
	for _, opt := range opts {
		opt(&c)
	}
	return message.NewPrinter(c.tag)
}

// normalize maps -0 to 0 and non-finite values to 0.
func normalize(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Default formats with a fixed number of decimals and digit grouping.
type Default struct {
	decimals int
	p        *message.Printer
}

// NewDefault creates a formatter printing exactly decimals fraction digits.
func NewDefault(decimals int, opts ...Option) *Default {
	return &Default{decimals: max(decimals, 0), p: newPrinter(opts)}
}

// Decimals returns the number of fraction digits printed.
func (d *Default) Decimals() int { return d.decimals }

// Format implements Formatter.
func (d *Default) Format(v float64) string {
	return d.p.Sprint(number.Decimal(normalize(v),
		number.MinFractionDigits(d.decimals),
		number.MaxFractionDigits(d.decimals)))
}

var largeSuffixes = [...]string{"", "k", "m", "b", "t"}

// Large abbreviates values with thousand, million, billion and trillion
// suffixes, keeping three significant digits.
type Large struct {
	p *message.Printer
}

// NewLarge creates a Large formatter.
func NewLarge(opts ...Option) *Large {
	return &Large{p: newPrinter(opts)}
}

// Format implements Formatter.
func (l *Large) Format(v float64) string {
	v = normalize(v)
	exp := 0
	if a := math.Abs(v); a >= 1000 {
		exp = min(int(math.Log10(a))/3, len(largeSuffixes)-1)
	}
	mantissa := v / math.Pow(1000, float64(exp))

	intDigits := 1
	if a := math.Abs(mantissa); a >= 1 {
		intDigits = int(math.Log10(a)) + 1
	}
	frac := max(3-intDigits, 0)
	s := l.p.Sprint(number.Decimal(mantissa, number.MaxFractionDigits(frac)))
	return s + largeSuffixes[exp]
}

// Percent formats values already expressed in percent, such as pie slice
// shares.
type Percent struct {
	decimals int
	p        *message.Printer
}

// NewPercent creates a Percent formatter.
func NewPercent(decimals int, opts ...Option) *Percent {
	return &Percent{decimals: max(decimals, 0), p: newPrinter(opts)}
}

// Format implements Formatter.
func (f *Percent) Format(v float64) string {
	return f.p.Sprint(number.Percent(normalize(v)/100,
		number.MinFractionDigits(f.decimals),
		number.MaxFractionDigits(f.decimals)))
}

// Join formats every value and joins the results with sep.
func Join(f Formatter, sep string, vals ...float64) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f.Format(v))
	}
	return b.String()
}
