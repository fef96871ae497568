package shaping

import (
	"errors"

	"github.com/npillmayer/textpipe"
)

// ErrNoFontSource is returned by shapers if no font source is given.
var ErrNoFontSource = errors.New("shaping: no font source")

// FontMetrics are the metrics of a font at a given size, in layout units.
type FontMetrics struct {
	Size    float32 // em size
	Ascent  float32
	Descent float32 // positive
	LineGap float32
}

// LineHeight returns the distance between the baselines of two lines.
func (m FontMetrics) LineHeight() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// FontSource maps code-points to fonts. Font ids are opaque to the pipeline.
type FontSource interface {
	FontFor(r rune) int
	Metrics(font int) FontMetrics
	HasGlyph(font int, r rune) bool
}

// Buffer receives the output of a shaper. Glyphs of all runs are stored in
// a single slice, runs refer to spans of it.
type Buffer struct {
	Runs   []textpipe.ShapedRun
	Glyphs []textpipe.Glyph
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.Runs = b.Runs[:0]
	b.Glyphs = b.Glyphs[:0]
}

// Shaper shapes text runs. Shape appends to out, which callers usually
// reset before. Glyphs of a run are stored in logical order, even for
// right-to-left runs.
type Shaper interface {
	Shape(cps []rune, runs []textpipe.TextRun, fonts FontSource, out *Buffer) error
}

// SingleFont is a FontSource with one font covering every code-point.
type SingleFont struct {
	ID int
	FontMetrics
}

// NewSingleFont creates a font source with standard metrics for an em size.
func NewSingleFont(id int, size float32) *SingleFont {
	return &SingleFont{
		ID: id,
		FontMetrics: FontMetrics{
			Size:    size,
			Ascent:  size * 0.8,
			Descent: size * 0.2,
			LineGap: size * 0.2,
		},
	}
}

// FontFor implements FontSource.
func (f *SingleFont) FontFor(rune) int { return f.ID }

// Metrics implements FontSource.
func (f *SingleFont) Metrics(int) FontMetrics { return f.FontMetrics }

// HasGlyph implements FontSource.
func (f *SingleFont) HasGlyph(int, rune) bool { return true }
