package itemize

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/markup"
	"github.com/npillmayer/textpipe/shaping"
)

// digitFonts uses font 1 for digits and font 0 for everything else.
type digitFonts struct {
	shaping.SingleFont
}

func (digitFonts) FontFor(r rune) int {
	if r >= '0' && r <= '9' {
		return 1
	}
	return 0
}

func TestSplitting(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	L, H := language.Latin, language.Hebrew
	cps := []rune("ab12cd")
	levels := []uint8{0, 0, 0, 0, 1, 1}
	scripts := []language.Script{L, L, L, L, H, H}
	runs, err := Itemize(cps, levels, scripts, WithFonts(&digitFonts{}))
	if err != nil {
		t.Fatal(err)
	}
	expected := []textpipe.Range{
		textpipe.RangeFromTo(0, 2), textpipe.RangeFromTo(2, 4), textpipe.RangeFromTo(4, 6),
	}
	if len(runs) != len(expected) {
		t.Fatalf("expected %d runs, have %v", len(expected), runs)
	}
	for i, run := range runs {
		if run.Range != expected[i] {
			t.Errorf("run #%d: expected %v, have %v", i, expected[i], run.Range)
		}
	}
	if runs[1].FontID != 1 || runs[2].Script != H || runs[2].Direction() != textpipe.RightToLeft {
		t.Errorf("unexpected run properties %+v", runs)
	}
}

func TestSnapshots(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	res := markup.NewParser(nil).Parse("one <b>two</b> three")
	cps := res.Codepoints()
	runs, err := New(WithAttributes(res.Snapshots())).Itemize(cps, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, have %v", runs)
	}
	if runs[1].Range != textpipe.RangeFromTo(4, 7) || runs[1].Snapshot != 1 {
		t.Errorf("expected bold run at [4,7), have %+v", runs[1])
	}
}

func TestEdgeCases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	it := New()
	runs, err := it.Itemize(nil, nil, nil)
	if err != nil || len(runs) != 0 {
		t.Errorf("expected no runs for empty text, have %v, %v", runs, err)
	}
	runs, _ = it.Itemize([]rune("abc"), nil, nil)
	if len(runs) != 1 || runs[0].Length != 3 || runs[0].Script != language.Unknown {
		t.Errorf("expected a single run, have %v", runs)
	}
	if _, err = it.Itemize([]rune("abc"), []uint8{0}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, have %v", err)
	}
	if _, err = it.Itemize([]rune("abc"), nil, []language.Script{language.Latin}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, have %v", err)
	}
}
