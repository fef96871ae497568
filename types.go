package textpipe

import (
	"fmt"

	"github.com/go-text/typesetting/language"
)

// Range is a half-open range [Start, Start+Length) over a codepoint buffer.
type Range struct {
	Start  int
	Length int
}

// RangeFromTo creates a range from two positions, from ≤ to.
func RangeFromTo(from, to int) Range {
	return Range{Start: from, Length: to - from}
}

// End returns the position after the last codepoint of r.
func (r Range) End() int {
	return r.Start + r.Length
}

// IsEmpty is true for zero-length ranges.
func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Contains is true if position i is covered by r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End()
}

// Overlaps is true if r and o share at least one position.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End() && r.End() > o.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// Direction is the visual direction of text.
type Direction uint8

// Text is either written from left to right or from right to left.
const (
	LeftToRight Direction = iota
	RightToLeft
)

// DirectionOf derives a direction from a bidi embedding level.
// Even levels are left-to-right, odd levels right-to-left.
func DirectionOf(level uint8) Direction {
	if level&1 == 0 {
		return LeftToRight
	}
	return RightToLeft
}

func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// Alignment is the horizontal alignment of lines.
type Alignment uint8

// Lines may be aligned to the left or right margin, be centered or justified.
// Justification is not implemented yet and behaves like Left.
const (
	Left Alignment = iota
	Center
	Right
	Justified
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	case Justified:
		return "justified"
	}
	return "left"
}

// TextRun is the unit of itemization: a range of text homogeneous in bidi level,
// script, font and attribute snapshot. TextRuns are the input for shaping.
type TextRun struct {
	Range
	Level    uint8           // bidi embedding level
	Script   language.Script // resolved script
	FontID   int             // font to shape the run with
	Snapshot int             // attribute snapshot, see markup.Snapshots
}

// Direction returns the direction of the run, derived from its bidi level.
func (run TextRun) Direction() Direction {
	return DirectionOf(run.Level)
}

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// Glyph is a shaped glyph as produced by a shaping engine.
// Cluster is the index of the first codepoint the glyph originates from.
type Glyph struct {
	ID       GlyphID
	Cluster  int
	XAdvance float32
	YAdvance float32
	XOffset  float32
	YOffset  float32
}

// ShapedRun is a TextRun after shaping. It refers to a span of glyphs in a
// glyph slice shared by all runs of a paragraph.
type ShapedRun struct {
	Range
	GlyphStart int
	GlyphCount int
	Width      float32
	Level      uint8
	Direction  Direction
	FontID     int
	Snapshot   int
}

// Glyphs returns the glyphs of run, given the glyph slice of the paragraph.
func (run ShapedRun) Glyphs(all []Glyph) []Glyph {
	return all[run.GlyphStart : run.GlyphStart+run.GlyphCount]
}

// Line is a line of text as produced by line breaking. Its runs are
// [RunStart, RunStart+RunCount) in a slice of visually ordered runs.
type Line struct {
	Range
	RunStart int
	RunCount int
	Width    float32
	Height   float32 // 0 lets the layout use its default line height
	Baseline float32
}

// PositionedGlyph is the final result of the pipeline.
type PositionedGlyph struct {
	ID       GlyphID
	X, Y     float32
	FontID   int
	Snapshot int
}
