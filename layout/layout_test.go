package layout

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe"
)

// twoRuns is a line with an LTR run of 2 glyphs followed by an RTL run of 2 glyphs,
// all glyphs 10 units wide.
func twoRuns() ([]textpipe.Line, []textpipe.ShapedRun, []textpipe.Glyph) {
	glyphs := []textpipe.Glyph{
		{ID: 1, Cluster: 0, XAdvance: 10}, {ID: 2, Cluster: 1, XAdvance: 10},
		{ID: 3, Cluster: 2, XAdvance: 10}, {ID: 4, Cluster: 3, XAdvance: 10},
	}
	runs := []textpipe.ShapedRun{
		{Range: textpipe.RangeFromTo(0, 2), GlyphStart: 0, GlyphCount: 2, Width: 20, FontID: 7},
		{Range: textpipe.RangeFromTo(2, 4), GlyphStart: 2, GlyphCount: 2, Width: 20, Level: 1,
			Direction: textpipe.RightToLeft, Snapshot: 3},
	}
	lines := []textpipe.Line{{Range: textpipe.RangeFromTo(0, 4), RunStart: 0, RunCount: 2, Width: 40}}
	return lines, runs, glyphs
}

func TestDirections(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	res := New().Layout(twoRuns())
	expected := []struct {
		id textpipe.GlyphID
		x  float32
	}{{1, 0}, {2, 10}, {3, 30}, {4, 20}}
	if len(res.Glyphs()) != len(expected) {
		t.Fatalf("expected %d glyphs, have %d", len(expected), len(res.Glyphs()))
	}
	for i, g := range res.Glyphs() {
		if g.ID != expected[i].id || g.X != expected[i].x {
			t.Errorf("glyph #%d: expected %d at %g, have %d at %g", i, expected[i].id, expected[i].x, g.ID, g.X)
		}
	}
	if g := res.Glyphs()[0]; g.FontID != 7 {
		t.Errorf("expected font id to be carried over")
	}
	if g := res.Glyphs()[3]; g.Snapshot != 3 {
		t.Errorf("expected snapshot id to be carried over")
	}
	if res.Width() != 40 || res.Height() != 20 {
		t.Errorf("expected extent 40x20, have %gx%g", res.Width(), res.Height())
	}
}

func TestAlignment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, x := range []struct {
		align textpipe.Alignment
		x0    float32
	}{
		{textpipe.Left, 0}, {textpipe.Right, 60}, {textpipe.Center, 30}, {textpipe.Justified, 0},
	} {
		res := New(MaxWidth(100), Align(x.align)).Layout(twoRuns())
		if g := res.Glyphs()[0]; g.X != x.x0 {
			t.Errorf("%s: expected first glyph at %g, have %g", x.align, x.x0, g.X)
		}
	}
	l := New(MaxWidth(100), AlignLines(func(textpipe.Line) (textpipe.Alignment, bool) {
		return textpipe.Right, true
	}))
	if g := l.Layout(twoRuns()).Glyphs()[0]; g.X != 60 {
		t.Errorf("expected line alignment override, have x = %g", g.X)
	}
}

func TestLineStacking(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	lines, runs, glyphs := twoRuns()
	lines = []textpipe.Line{
		{Range: textpipe.RangeFromTo(0, 2), RunStart: 0, RunCount: 1, Width: 20, Height: 12, Baseline: 9},
		{Range: textpipe.RangeFromTo(2, 4), RunStart: 1, RunCount: 1, Width: 20},
	}
	res := New(LineSpacing(2), DefaultLineHeight(15)).Layout(lines, runs, glyphs)
	b := res.Baselines()
	if len(b) != 2 || b[0] != 9 || b[1] != 14 {
		t.Errorf("expected baselines [9 14], have %v", b)
	}
	if res.Height() != 31 {
		t.Errorf("expected height 12+2+15+2 = 31, have %g", res.Height())
	}
	if g := res.Glyphs()[2]; g.Y != 14 || g.X != 10 {
		t.Errorf("expected 1st glyph of RTL line at (10,14), have (%g,%g)", g.X, g.Y)
	}
	if res := New().Layout(nil, nil, nil); len(res.Glyphs()) != 0 || res.Height() != 0 {
		t.Errorf("expected empty layout for no lines")
	}
}
