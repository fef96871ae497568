package linebreak

import (
	"fmt"
	"math"
	"unicode"

	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/segment"
	"github.com/npillmayer/textpipe/shaping"
	"github.com/npillmayer/textpipe/uax14"
	"github.com/npillmayer/textpipe/ucd"
)

// Breaker breaks paragraphs into lines. A Breaker re-uses its buffers
// between calls and must not be used concurrently.
type Breaker struct {
	lw       *uax14.LineWrap
	seg      *segment.Segmenter
	table    breakTable
	wordWrap bool
	fonts    shaping.FontSource
	segs     []segment.Segment
	pieces   []piece
	result   Result
}

// Result holds the lines of a paragraph. It is owned by the Breaker and
// valid until the Breaker's next call.
type Result struct {
	lines   []textpipe.Line
	ordered []textpipe.ShapedRun
}

// Lines returns the lines in top-to-bottom order.
func (r *Result) Lines() []textpipe.Line {
	return r.lines
}

// OrderedRuns returns the runs of all lines, in visual order per line.
// Line.RunStart and Line.RunCount refer to this slice.
func (r *Result) OrderedRuns() []textpipe.ShapedRun {
	return r.ordered
}

// piece is a run, or part of a run between two break opportunities.
type piece struct {
	textpipe.ShapedRun
	src       int     // index of the run the piece is part of
	trailing  float32 // width of trailing whitespace
	canBreak  bool    // a line may end after the piece
	mandatory bool    // a line has to end after the piece
}

// Option configures a Breaker.
type Option func(*Breaker)

// WordWrap lets the breaker split runs at break opportunities (the
// default). With word wrap switched off, lines are only broken at
// run boundaries.
func WordWrap(b bool) Option {
	return func(br *Breaker) {
		br.wordWrap = b
	}
}

// WithFonts lets the breaker set line heights and baselines from font metrics.
func WithFonts(fonts shaping.FontSource) Option {
	return func(br *Breaker) {
		br.fonts = fonts
	}
}

// New creates a line breaker. If p is nil, textpipe.ErrNoProvider is returned.
func New(p ucd.Provider, opts ...Option) (*Breaker, error) {
	lw, err := uax14.NewLineWrap(p)
	if err != nil {
		return nil, fmt.Errorf("linebreak: %w", err)
	}
	br := &Breaker{lw: lw, wordWrap: true}
	br.table.lw = lw
	br.seg = segment.NewSegmenter(&br.table)
	br.Configure(opts...)
	return br, nil
}

// Configure applies options to an existing breaker.
func (br *Breaker) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(br)
	}
}

// BreakLines breaks a paragraph into lines of at most maxWidth. A maxWidth ≤ 0
// means no limit. runs are the shaped runs of cps in logical order, glyphs
// the glyphs they refer to. Non-mandatory break opportunities strictly inside
// any of the inhibit ranges are suppressed.
//
// Lines may exceed maxWidth if there is no break opportunity to prevent it.
func (br *Breaker) BreakLines(cps []rune, runs []textpipe.ShapedRun, glyphs []textpipe.Glyph,
	maxWidth float32, inhibit ...textpipe.Range) (*Result, error) {
	//
	br.result.lines = br.result.lines[:0]
	br.result.ordered = br.result.ordered[:0]
	br.pieces = br.pieces[:0]
	for _, run := range runs {
		if run.End() > len(cps) || run.GlyphStart+run.GlyphCount > len(glyphs) {
			return nil, fmt.Errorf("linebreak: run %v does not fit text of length %d with %d glyphs",
				run.Range, len(cps), len(glyphs))
		}
	}
	if maxWidth <= 0 {
		maxWidth = math.MaxFloat32
	}
	br.table.breaks = br.lw.Breaks(cps)
	for _, rng := range inhibit {
		for i := max(rng.Start+1, 1); i < rng.End() && i < len(cps); i++ {
			if !br.lw.IsMandatoryAt(cps, i) {
				br.table.breaks[i] = false
			}
		}
	}
	br.split(cps, runs, glyphs)
	br.fill(maxWidth)
	for i := range br.result.lines {
		br.reorder(&br.result.lines[i])
	}
	tracer().Debugf("linebreak: %d runs in %d pieces make %d lines",
		len(runs), len(br.pieces), len(br.result.lines))
	return &br.result, nil
}

// split cuts runs into pieces at break opportunities.
func (br *Breaker) split(cps []rune, runs []textpipe.ShapedRun, glyphs []textpipe.Glyph) {
	br.segs = br.segs[:0]
	if br.wordWrap {
		br.seg.Init(cps)
		for br.seg.Next() {
			br.segs = append(br.segs, br.seg.Segment())
		}
	}
	k := 0 // current segment
	for i, run := range runs {
		if !br.wordWrap || run.GlyphCount == 0 {
			br.pieces = append(br.pieces, br.makePiece(cps, glyphs, run, i))
			continue
		}
		for k < len(br.segs) && br.segs[k].End() <= run.Start {
			k++
		}
		start, g := run.Start, run.GlyphStart
		glyphEnd := run.GlyphStart + run.GlyphCount
		for ; start < run.End() && k < len(br.segs); k++ {
			end := min(br.segs[k].End(), run.End())
			p := run
			p.Range = textpipe.RangeFromTo(start, end)
			p.GlyphStart = g
			p.Width = 0
			for g < glyphEnd && glyphs[g].Cluster < end {
				p.Width += glyphs[g].XAdvance
				g++
			}
			p.GlyphCount = g - p.GlyphStart
			if start == run.Start && end == run.End() {
				p.Width = run.Width
			}
			br.pieces = append(br.pieces, br.makePiece(cps, glyphs, p, i))
			start = end
			if end < br.segs[k].End() {
				break // segment continues in next run
			}
		}
	}
}

func (br *Breaker) makePiece(cps []rune, glyphs []textpipe.Glyph, run textpipe.ShapedRun, src int) piece {
	p := piece{
		ShapedRun: run,
		src:       src,
		canBreak:  br.table.breaks[run.End()],
		mandatory: br.lw.IsMandatoryAt(cps, run.End()),
	}
	for g := run.GlyphStart + run.GlyphCount - 1; g >= run.GlyphStart; g-- {
		if !unicode.IsSpace(cps[glyphs[g].Cluster]) {
			break
		}
		p.trailing += glyphs[g].XAdvance
	}
	return p
}

// fill distributes pieces to lines greedily.
func (br *Breaker) fill(maxWidth float32) {
	lineStart, lastBreak := 0, -1
	var width, widthAtBreak float32
	for i, p := range br.pieces {
		if width+p.Width-p.trailing > maxWidth && lastBreak >= lineStart {
			tracer().P("piece", i).Debugf("linebreak: cutting line after piece %d", lastBreak)
			br.addLine(lineStart, lastBreak+1)
			width -= widthAtBreak
			lineStart, lastBreak = lastBreak+1, -1
		}
		width += p.Width
		if p.mandatory {
			br.addLine(lineStart, i+1)
			width, lineStart, lastBreak = 0, i+1, -1
			continue
		}
		if p.canBreak {
			lastBreak, widthAtBreak = i, width
		}
	}
	if lineStart < len(br.pieces) {
		br.addLine(lineStart, len(br.pieces))
	}
}

// addLine creates a line from pieces [from, to), merging adjacent pieces of
// the same run.
func (br *Breaker) addLine(from, to int) {
	pieces := br.pieces[from:to]
	line := textpipe.Line{
		Range:    textpipe.RangeFromTo(pieces[0].Start, pieces[len(pieces)-1].End()),
		RunStart: len(br.result.ordered),
	}
	for k, p := range pieces {
		line.Width += p.Width
		if k > 0 && p.src == pieces[k-1].src {
			last := &br.result.ordered[len(br.result.ordered)-1]
			last.Length += p.Length
			last.GlyphCount += p.GlyphCount
			last.Width += p.Width
			continue
		}
		br.result.ordered = append(br.result.ordered, p.ShapedRun)
	}
	line.Width -= pieces[len(pieces)-1].trailing
	line.RunCount = len(br.result.ordered) - line.RunStart
	if br.fonts != nil {
		for _, run := range br.result.ordered[line.RunStart:] {
			m := br.fonts.Metrics(run.FontID)
			line.Height = max(line.Height, m.LineHeight())
			line.Baseline = max(line.Baseline, m.Ascent)
		}
	}
	br.result.lines = append(br.result.lines, line)
}

// reorder puts the runs of a line into visual order.
func (br *Breaker) reorder(line *textpipe.Line) {
	runs := br.result.ordered[line.RunStart : line.RunStart+line.RunCount]
	var maxLevel uint8
	for _, run := range runs {
		maxLevel = max(maxLevel, run.Level)
	}
	for k := maxLevel; k >= 1; k-- {
		start := -1
		for i := 0; i <= len(runs); i++ {
			inSeq := i < len(runs) && runs[i].Level >= k
			if inSeq && start < 0 {
				start = i
			} else if !inSeq && start >= 0 {
				reverse(runs, start, i)
				start = -1
			}
		}
	}
}

// reverse reverses runs[i:j].
func reverse(runs []textpipe.ShapedRun, i, j int) {
	for j = j - 1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}

// breakTable presents pre-calculated break opportunities to a segmenter.
type breakTable struct {
	breaks []bool
	lw     *uax14.LineWrap
}

func (bt *breakTable) BreakOpportunities(cps []rune, breaks []bool) error {
	if len(breaks) < len(bt.breaks) {
		return textpipe.ErrBufferTooSmall
	}
	copy(breaks, bt.breaks)
	return nil
}

func (bt *breakTable) IsMandatoryAt(cps []rune, i int) bool {
	return bt.lw.IsMandatoryAt(cps, i)
}
