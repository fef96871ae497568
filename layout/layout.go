/*
Package layout positions the glyphs of broken lines.

Lines are stacked from top to bottom. Each line starts at an x-position
depending on the alignment; runs are placed left to right in the order
line breaking established. Glyphs of right-to-left runs are placed starting
at the run's right edge.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textpipe"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Settings control the layout of lines.
type Settings struct {
	MaxWidth          float32 // available width; ≤ 0 means width of the widest line
	LineSpacing       float32 // extra space between lines
	DefaultLineHeight float32 // for lines without a height
	Alignment         textpipe.Alignment
	// LineAlignment, if set, may override the alignment of individual lines.
	LineAlignment func(line textpipe.Line) (textpipe.Alignment, bool)
}

// DefaultSettings are the settings used if no options are given.
var DefaultSettings = Settings{
	DefaultLineHeight: 20,
	Alignment:         textpipe.Left,
}

// Option configures a Layouter.
type Option func(*Settings)

// MaxWidth sets the available width.
func MaxWidth(w float32) Option {
	return func(s *Settings) { s.MaxWidth = w }
}

// LineSpacing sets extra space between lines.
func LineSpacing(sp float32) Option {
	return func(s *Settings) { s.LineSpacing = sp }
}

// DefaultLineHeight sets the height of lines which do not carry a height.
func DefaultLineHeight(h float32) Option {
	return func(s *Settings) { s.DefaultLineHeight = h }
}

// Align sets the alignment of lines.
func Align(a textpipe.Alignment) Option {
	return func(s *Settings) { s.Alignment = a }
}

// AlignLines sets a function to override the alignment of individual lines.
func AlignLines(f func(line textpipe.Line) (textpipe.Alignment, bool)) Option {
	return func(s *Settings) { s.LineAlignment = f }
}

// Layouter positions glyphs. It re-uses its buffers between calls and must
// not be used concurrently.
type Layouter struct {
	settings Settings
	result   Result
}

// Result holds positioned glyphs. It is owned by the Layouter and valid
// until the Layouter's next call.
type Result struct {
	glyphs    []textpipe.PositionedGlyph
	baselines []float32
	width     float32
	height    float32
}

// Glyphs returns the positioned glyphs, line by line in visual order.
func (r *Result) Glyphs() []textpipe.PositionedGlyph { return r.glyphs }

// Baselines returns the y-position of the baseline of every line.
func (r *Result) Baselines() []float32 { return r.baselines }

// Width returns the width of the widest line.
func (r *Result) Width() float32 { return r.width }

// Height returns the total height of all lines, including line spacing.
func (r *Result) Height() float32 { return r.height }

// New creates a Layouter.
func New(opts ...Option) *Layouter {
	l := &Layouter{settings: DefaultSettings}
	l.Configure(opts...)
	return l
}

// Configure applies options to an existing Layouter.
func (l *Layouter) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&l.settings)
	}
}

// Settings returns the current settings.
func (l *Layouter) Settings() Settings {
	return l.settings
}

// Layout positions the glyphs of lines. runs are the visually ordered runs
// lines refer to, glyphs the glyphs runs refer to.
func (l *Layouter) Layout(lines []textpipe.Line, runs []textpipe.ShapedRun, glyphs []textpipe.Glyph) *Result {
	r := &l.result
	r.glyphs = r.glyphs[:0]
	r.baselines = r.baselines[:0]
	r.width, r.height = 0, 0
	avail := l.settings.MaxWidth
	for _, line := range lines {
		r.width = max(r.width, line.Width)
	}
	if avail <= 0 {
		avail = r.width
	}
	var y float32
	for _, line := range lines {
		x := l.startX(line, avail)
		height := line.Height
		if height <= 0 {
			height = l.settings.DefaultLineHeight
		}
		baseline := y + line.Baseline
		r.baselines = append(r.baselines, baseline)
		for _, run := range runs[line.RunStart : line.RunStart+line.RunCount] {
			if run.Direction == textpipe.RightToLeft {
				gx := x + run.Width
				for _, g := range run.Glyphs(glyphs) {
					gx -= g.XAdvance
					r.glyphs = append(r.glyphs, positioned(g, run, gx, baseline))
				}
			} else {
				gx := x
				for _, g := range run.Glyphs(glyphs) {
					r.glyphs = append(r.glyphs, positioned(g, run, gx, baseline))
					gx += g.XAdvance
				}
			}
			x += run.Width
		}
		y += height + l.settings.LineSpacing
	}
	r.height = y
	tracer().Debugf("layout: %d lines, %d glyphs, %gx%g", len(lines), len(r.glyphs), r.width, r.height)
	return r
}

func positioned(g textpipe.Glyph, run textpipe.ShapedRun, x, y float32) textpipe.PositionedGlyph {
	return textpipe.PositionedGlyph{
		ID:       g.ID,
		X:        x + g.XOffset,
		Y:        y + g.YOffset,
		FontID:   run.FontID,
		Snapshot: run.Snapshot,
	}
}

func (l *Layouter) startX(line textpipe.Line, avail float32) float32 {
	align := l.settings.Alignment
	if l.settings.LineAlignment != nil {
		if a, ok := l.settings.LineAlignment(line); ok {
			align = a
		}
	}
	switch align {
	case textpipe.Right:
		return avail - line.Width
	case textpipe.Center:
		return (avail - line.Width) / 2
	}
	return 0 // Left and Justified
}
