// Package layout computes the content rect of a chart from the space its
// axis labels need.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	lru "github.com/hashicorp/golang-lru"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/ggchart"
)

// Sentinel errors for the layout package.
var (
	// ErrEmptyFontData is returned when a measurer is given no font data.
	ErrEmptyFontData = errors.New("layout: empty font data")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("layout: font size must be positive")
)

// DefaultFontSize is the label size used when none is configured.
const DefaultFontSize = 10

const defaultCacheSize = 256

// Measurer reports the pixel size of a label.
type Measurer interface {
	Measure(label string) (width, height float64)
}

// FontMeasurer measures labels by shaping them with HarfBuzz. Widths are
// cached per label. It is safe for concurrent use.
type FontMeasurer struct {
	size       float64
	lineHeight float64

	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper

	cache *lru.Cache
}

type fontConfig struct {
	data      []byte
	cacheSize int
}

// FontOption configures a FontMeasurer.
type FontOption func(*fontConfig)

// WithFontData measures with the given TTF or OTF font instead of Go
// Regular.
func WithFontData(data []byte) FontOption {
	return func(c *fontConfig) {
		c.data = data
	}
}

// WithCacheSize sets how many label widths are remembered.
func WithCacheSize(n int) FontOption {
	return func(c *fontConfig) {
		c.cacheSize = n
	}
}

// NewFontMeasurer creates a measurer for labels of the given size in
// pixels.
func NewFontMeasurer(size float64, opts ...FontOption) (*FontMeasurer, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	c := fontConfig{data: goregular.TTF, cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(c.data)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to parse font: %w", err)
	}
	var buf sfnt.Buffer
	metrics, err := parsed.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to read font metrics: %w", err)
	}

	face, err := font.ParseTTF(bytes.NewReader(c.data))
	if err != nil {
		return nil, fmt.Errorf("layout: failed to parse font: %w", err)
	}

	cache, err := lru.New(max(c.cacheSize, 1))
	if err != nil {
		return nil, err
	}

	return &FontMeasurer{
		size:       size,
		lineHeight: fixedToFloat(metrics.Ascent + metrics.Descent),
		face:       face,
		cache:      cache,
	}, nil
}

// DefaultMeasurer returns a Go Regular measurer at DefaultFontSize.
func DefaultMeasurer() *FontMeasurer {
	m, err := NewFontMeasurer(DefaultFontSize)
	if err != nil {
		// Go Regular is embedded; parsing it cannot fail.
		panic(err)
	}
	return m
}

// Size returns the font size in pixels.
func (m *FontMeasurer) Size() float64 { return m.size }

// LineHeight returns the ascent plus descent of the font.
func (m *FontMeasurer) LineHeight() float64 { return m.lineHeight }

// Measure implements Measurer.
func (m *FontMeasurer) Measure(label string) (width, height float64) {
	if label == "" {
		return 0, 0
	}
	if w, ok := m.cache.Get(label); ok {
		return w.(float64), m.lineHeight
	}

	runes := []rune(label)
	m.mu.Lock()
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: labelDirection(label),
		Face:      m.face,
		Size:      floatToFixed(m.size),
		Script:    labelScript(runes),
		Language:  language.NewLanguage("en"),
	})
	m.mu.Unlock()

	for _, g := range out.Glyphs {
		width += fixedToFloat(g.Advance)
	}
	if width < 0 {
		width = -width
	}
	m.cache.Add(label, width)
	ggchart.Logger().Debug("layout: measured label", "label", label, "width", width)
	return width, m.lineHeight
}

// labelDirection returns right-to-left when the label starts with a
// right-to-left run.
func labelDirection(label string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(label); err != nil {
		return di.DirectionLTR
	}
	ord, err := p.Order()
	if err != nil || ord.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if run := ord.Run(0); run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func labelScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
