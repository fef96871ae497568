package shaping

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe"
)

func TestMonospace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cps := []rune{'a', 'e', 0x0301, 0x4e16, ' ', 0x05d0}
	runs := []textpipe.TextRun{
		{Range: textpipe.RangeFromTo(0, 5), Level: 0, FontID: 1},
		{Range: textpipe.RangeFromTo(5, 6), Level: 1, FontID: 2, Snapshot: 3},
	}
	shaper := NewMonospace(nil)
	var buf Buffer
	if err := shaper.Shape(cps, runs, NewSingleFont(1, 10), &buf); err != nil {
		t.Fatal(err)
	}
	if len(buf.Runs) != 2 || len(buf.Glyphs) != 5 {
		t.Fatalf("expected 2 runs and 5 glyphs, have %d and %d", len(buf.Runs), len(buf.Glyphs))
	}
	first := buf.Runs[0]
	if first.GlyphCount != 4 || first.Width != 25 || first.FontID != 1 {
		t.Errorf("unexpected first run %+v", first)
	}
	if g := first.Glyphs(buf.Glyphs)[2]; g.Cluster != 3 || g.XAdvance != 10 {
		t.Errorf("expected wide glyph for cluster 3, have %+v", g)
	}
	if g := buf.Glyphs[1]; g.Cluster != 1 || g.ID != 'e' {
		t.Errorf("expected combining sequence to form one glyph, have %+v", g)
	}
	second := buf.Runs[1]
	if second.Direction != textpipe.RightToLeft || second.GlyphStart != 4 || second.Width != 5 ||
		second.FontID != 2 || second.Snapshot != 3 {
		t.Errorf("unexpected second run %+v", second)
	}
	buf.Reset()
	if len(buf.Runs) != 0 || len(buf.Glyphs) != 0 {
		t.Errorf("expected empty buffer after Reset")
	}
}

type noGlyphs struct{ SingleFont }

func (noGlyphs) HasGlyph(int, rune) bool { return false }

func TestMonospaceErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	shaper := NewMonospace(nil)
	cps := []rune("ab")
	runs := []textpipe.TextRun{{Range: textpipe.RangeFromTo(0, 2)}}
	var buf Buffer
	if err := shaper.Shape(cps, runs, nil, &buf); !errors.Is(err, ErrNoFontSource) {
		t.Errorf("expected ErrNoFontSource, have %v", err)
	}
	if err := shaper.Shape(cps[:1], runs, NewSingleFont(0, 10), &buf); err == nil {
		t.Errorf("expected error for run exceeding the text")
	}
	buf.Reset()
	fonts := &noGlyphs{*NewSingleFont(0, 10)}
	if err := shaper.Shape(cps, runs, fonts, &buf); err != nil {
		t.Fatal(err)
	}
	for _, g := range buf.Glyphs {
		if g.ID != NotDef {
			t.Errorf("expected .notdef glyph, have %d", g.ID)
		}
	}
}

func TestMetrics(t *testing.T) {
	f := NewSingleFont(0, 10)
	if h := f.Metrics(0).LineHeight(); h < 11.99 || h > 12.01 {
		t.Errorf("expected line height of 12, have %g", h)
	}
}
