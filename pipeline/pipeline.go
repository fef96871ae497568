package pipeline

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/bidi"
	"github.com/npillmayer/textpipe/itemize"
	"github.com/npillmayer/textpipe/layout"
	"github.com/npillmayer/textpipe/linebreak"
	"github.com/npillmayer/textpipe/markup"
	"github.com/npillmayer/textpipe/shaping"
	"github.com/npillmayer/textpipe/uax11"
	"github.com/npillmayer/textpipe/uax24"
	"github.com/npillmayer/textpipe/ucd"
)

// ErrNoShaper is returned when creating a Processor without a shaper.
var ErrNoShaper = errors.New("pipeline: no shaper")

// Settings configure a Processor.
type Settings struct {
	MaxWidth      float32            // maximum line width; ≤ 0 means no limit
	BaseDirection bidi.BaseDirection // paragraph direction or bidi.Auto
	RichText      bool               // interpret markup
	WordWrap      bool               // break lines within runs
	Context       *uax11.Context     // typesetting context
	Registry      *markup.Registry   // tags for rich text; nil for the default tags
	Resolver      bidi.LevelResolver // nil for the default level resolver
	Layout        []layout.Option    // further layout options
}

// Option configures a Processor.
type Option func(*Settings)

// MaxWidth sets the maximum line width.
func MaxWidth(w float32) Option {
	return func(s *Settings) { s.MaxWidth = w }
}

// BaseDirection forces the paragraph direction. The default is bidi.Auto.
func BaseDirection(dir bidi.BaseDirection) Option {
	return func(s *Settings) { s.BaseDirection = dir }
}

// RichText switches markup interpretation on or off (default on).
func RichText(b bool) Option {
	return func(s *Settings) { s.RichText = b }
}

// WordWrap switches breaking within runs on or off (default on).
func WordWrap(b bool) Option {
	return func(s *Settings) { s.WordWrap = b }
}

// WithContext sets the typesetting context. The default is the context of
// the user's environment.
func WithContext(ctx *uax11.Context) Option {
	return func(s *Settings) { s.Context = ctx }
}

// WithRegistry sets the tag registry for rich text.
func WithRegistry(reg *markup.Registry) Option {
	return func(s *Settings) { s.Registry = reg }
}

// WithResolver sets the bidi level resolver.
func WithResolver(r bidi.LevelResolver) Option {
	return func(s *Settings) { s.Resolver = r }
}

// WithLayout adds layout options.
func WithLayout(opts ...layout.Option) Option {
	return func(s *Settings) { s.Layout = append(s.Layout, opts...) }
}

// Processor runs text through all the stages of the pipeline.
type Processor struct {
	settings Settings
	parser   *markup.Parser
	scripts  *uax24.Analyzer
	bidi     *bidi.Analyzer
	itemizer *itemize.Itemizer
	shaper   shaping.Shaper
	breaker  *linebreak.Breaker
	layouter *layout.Layouter
	align    func(textpipe.Line) (textpipe.Alignment, bool) // from the layout options
	buf      shaping.Buffer
	inhibit  []textpipe.Range
	result   Result
}

// New creates a Processor. p is shared read-only with all the stages,
// shaper is owned by the processor.
func New(p ucd.Provider, shaper shaping.Shaper, opts ...Option) (*Processor, error) {
	if p == nil {
		return nil, fmt.Errorf("pipeline: %w", textpipe.ErrNoProvider)
	}
	if shaper == nil {
		return nil, fmt.Errorf("pipeline: cannot create processor: %w", ErrNoShaper)
	}
	proc := &Processor{
		settings: Settings{RichText: true, WordWrap: true},
		shaper:   shaper,
		itemizer: itemize.New(),
	}
	for _, opt := range opts {
		opt(&proc.settings)
	}
	if proc.settings.Context == nil {
		proc.settings.Context = uax11.ContextFromEnvironment()
	}
	if proc.settings.Resolver == nil {
		proc.settings.Resolver = bidi.NewResolver(bidi.FallbackFrom(proc.settings.Context))
	}
	var err error
	if proc.scripts, err = uax24.New(p); err != nil {
		return nil, err
	}
	if proc.bidi, err = bidi.NewAnalyzer(proc.settings.Resolver); err != nil {
		return nil, err
	}
	if proc.breaker, err = linebreak.New(p, linebreak.WordWrap(proc.settings.WordWrap)); err != nil {
		return nil, err
	}
	proc.parser = markup.NewParser(proc.settings.Registry)
	proc.layouter = layout.New(append([]layout.Option{layout.MaxWidth(proc.settings.MaxWidth)},
		proc.settings.Layout...)...)
	proc.align = proc.layouter.Settings().LineAlignment
	return proc, nil
}

// Settings returns the settings of proc.
func (proc *Processor) Settings() Settings {
	return proc.settings
}

// Process runs text through the pipeline. The result is valid until the
// next call to proc.
func (proc *Processor) Process(text string, fonts shaping.FontSource) (*Result, error) {
	if fonts == nil {
		return nil, fmt.Errorf("pipeline: %w", shaping.ErrNoFontSource)
	}
	res := &proc.result
	if proc.settings.RichText {
		res.markup = proc.parser.Parse(text)
	} else {
		res.markup = proc.parser.ParsePlain(text)
	}
	cps := res.markup.Codepoints()
	res.scripts = proc.scripts.Analyze(cps)
	var err error
	if proc.settings.BaseDirection == bidi.Auto {
		res.levels, err = proc.bidi.Analyze(cps)
	} else if proc.settings.BaseDirection == bidi.RightToLeft {
		res.levels, err = proc.bidi.AnalyzeWith(cps, textpipe.RightToLeft)
	} else {
		res.levels, err = proc.bidi.AnalyzeWith(cps, textpipe.LeftToRight)
	}
	if err != nil {
		return nil, err
	}
	proc.itemizer.Configure(itemize.WithFonts(fonts), itemize.WithAttributes(res.markup.Snapshots()))
	if res.runs, err = proc.itemizer.Itemize(cps, res.levels, res.scripts); err != nil {
		return nil, err
	}
	proc.buf.Reset()
	if err = proc.shaper.Shape(cps, res.runs, fonts, &proc.buf); err != nil {
		return nil, fmt.Errorf("pipeline: shaping failed: %w", err)
	}
	proc.inhibit = proc.inhibit[:0]
	for _, a := range res.markup.AttributesOf(markup.NoBreak) {
		proc.inhibit = append(proc.inhibit, a.Range)
	}
	proc.breaker.Configure(linebreak.WithFonts(fonts))
	lines, err := proc.breaker.BreakLines(cps, proc.buf.Runs, proc.buf.Glyphs,
		proc.settings.MaxWidth, proc.inhibit...)
	if err != nil {
		return nil, err
	}
	res.lines, res.ordered = lines.Lines(), lines.OrderedRuns()
	aligns := res.markup.AttributesOf(markup.Align)
	proc.layouter.Configure(layout.AlignLines(func(line textpipe.Line) (textpipe.Alignment, bool) {
		for i := len(aligns) - 1; i >= 0; i-- {
			if aligns[i].Range.Contains(line.Start) {
				return aligns[i].Value.Align, true
			}
		}
		if proc.align != nil {
			return proc.align(line)
		}
		return textpipe.Left, false
	}))
	lay := proc.layouter.Layout(res.lines, res.ordered, proc.buf.Glyphs)
	res.glyphs, res.width, res.height = lay.Glyphs(), lay.Width(), lay.Height()
	res.shaped = proc.buf.Runs
	res.base = proc.bidi.BaseDirection()
	tracer().Debugf("pipeline: %d code-points, %d runs, %d lines, %d glyphs",
		len(cps), len(res.runs), len(res.lines), len(res.glyphs))
	return res, nil
}

// Result gives access to the outcome of every stage.
type Result struct {
	markup  *markup.Result
	scripts []language.Script
	levels  []uint8
	base    textpipe.Direction
	runs    []textpipe.TextRun
	shaped  []textpipe.ShapedRun
	lines   []textpipe.Line
	ordered []textpipe.ShapedRun
	glyphs  []textpipe.PositionedGlyph
	width   float32
	height  float32
}

// detach copies r, so that it no longer refers to the buffers of a processor.
func (r *Result) detach() *Result {
	return &Result{
		markup:  r.markup.Clone(),
		scripts: append([]language.Script(nil), r.scripts...),
		levels:  append([]uint8(nil), r.levels...),
		base:    r.base,
		runs:    append([]textpipe.TextRun(nil), r.runs...),
		shaped:  append([]textpipe.ShapedRun(nil), r.shaped...),
		lines:   append([]textpipe.Line(nil), r.lines...),
		ordered: append([]textpipe.ShapedRun(nil), r.ordered...),
		glyphs:  append([]textpipe.PositionedGlyph(nil), r.glyphs...),
		width:   r.width,
		height:  r.height,
	}
}

// Codepoints returns the text without markup.
func (r *Result) Codepoints() []rune { return r.markup.Codepoints() }

// Attributes returns the attributes from markup.
func (r *Result) Attributes() []markup.Attribute { return r.markup.Attributes() }

// Snapshots returns the attribute snapshots.
func (r *Result) Snapshots() *markup.Snapshots { return r.markup.Snapshots() }

// Scripts returns the resolved script per code-point.
func (r *Result) Scripts() []language.Script { return r.scripts }

// Levels returns the bidi embedding level per code-point.
func (r *Result) Levels() []uint8 { return r.levels }

// BaseDirection returns the resolved paragraph direction.
func (r *Result) BaseDirection() textpipe.Direction { return r.base }

// Runs returns the text runs in logical order.
func (r *Result) Runs() []textpipe.TextRun { return r.runs }

// ShapedRuns returns the shaped runs in logical order.
func (r *Result) ShapedRuns() []textpipe.ShapedRun { return r.shaped }

// Lines returns the lines.
func (r *Result) Lines() []textpipe.Line { return r.lines }

// OrderedRuns returns the runs of all lines in visual order.
func (r *Result) OrderedRuns() []textpipe.ShapedRun { return r.ordered }

// Glyphs returns the positioned glyphs.
func (r *Result) Glyphs() []textpipe.PositionedGlyph { return r.glyphs }

// Width returns the width of the widest line.
func (r *Result) Width() float32 { return r.width }

// Height returns the height of the text.
func (r *Result) Height() float32 { return r.height }
