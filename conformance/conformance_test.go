package conformance

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/internal/testdata"
	"github.com/npillmayer/textpipe/ucd"
)

func newRunner(t *testing.T, opts ...Option) *Runner {
	runner, err := NewRunner(ucd.Default(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return runner
}

func TestNoProvider(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := NewRunner(nil); !errors.Is(err, textpipe.ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, have %v", err)
	}
}

func TestLineBreakLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `# test lines
× 0041 × 0020 ÷ 0042 ÷    # A space B
× 0041 ÷ 0042 ÷           # wrong on purpose
× zz ÷                    # malformed
`
	summary, err := newRunner(t).LineBreakTest(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("summary: %v", summary)
	if summary.Evaluated != 2 || summary.Passed != 1 || summary.Failed != 1 || summary.Skipped != 1 {
		t.Errorf("unexpected summary %v", summary)
	}
	if len(summary.Samples) != 1 || summary.Samples[0].LineNo != 3 || summary.Samples[0].Position != 1 {
		t.Fatalf("expected failure sample for line 3 @1, have %v", summary.Samples)
	}
	if !strings.HasPrefix(summary.Samples[0].Comment, "LB") {
		t.Errorf("expected sample to name the deciding rule, have %q", summary.Samples[0].Comment)
	}
}

func TestGraphemeBreakLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `÷ 0061 ÷ 0062 ÷
÷ 0061 × 0308 ÷
÷ 000D × 000A ÷
`
	summary, err := newRunner(t).GraphemeBreakTest(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !summary.OK() || summary.Passed != 3 {
		t.Errorf("unexpected summary %v", summary)
	}
}

func TestScriptsLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `0041..005A    ; Latin # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
05D0..05EA    ; Hebrew
0020          ; Common
0030..0039    ; Greek   # wrong on purpose
0000          ; Nonsense
`
	summary, err := newRunner(t, MaxSamples(3)).Scripts(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("summary: %v", summary)
	if summary.Evaluated != 29 || summary.Passed != 19 || summary.Failed != 10 || summary.Skipped != 1 {
		t.Errorf("unexpected summary %v", summary)
	}
	if len(summary.Samples) != 3 || summary.Samples[0].Expected != "Grek" {
		t.Errorf("expected 3 samples for Greek, have %v", summary.Samples)
	}
}

func TestSampleRange(t *testing.T) {
	if cps := sampleRange(0x41, 0x4a); len(cps) != 10 {
		t.Errorf("expected small range to be checked completely, have %v", cps)
	}
	cps := sampleRange(0, 999)
	if len(cps) != 9 || cps[0] != 0 || cps[1] != 1 || cps[2] != 500 || cps[4] != 999 {
		t.Errorf("unexpected sample %v", cps)
	}
	if sampleRange(5, 4) != nil {
		t.Errorf("expected empty sample for empty range")
	}
}

func TestScriptAnalyzerLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `0041 0020 05D0 ; Latn Latn Hebr
0020 0041      ; Latin Latin
0041 0301      ; Latn Zinh       # wrong on purpose
0041           ; Latn Latn       # malformed
`
	summary, err := newRunner(t).ScriptAnalyzerTest(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if summary.Evaluated != 3 || summary.Passed != 2 || summary.Failed != 1 || summary.Skipped != 1 {
		t.Errorf("unexpected summary %v", summary)
	}
	if len(summary.Samples) != 1 || summary.Samples[0].Actual != "Latn" {
		t.Errorf("expected combining mark to resolve to Latn, have %v", summary.Samples)
	}
}

func TestScriptAliases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	runner := newRunner(t)
	if _, err := runner.ParseScript("Old_Turkic"); err == nil {
		t.Errorf("expected Old_Turkic to be unknown without aliases")
	}
	input := `# Script (sc)
sc ; Orkh                             ; Old_Turkic
gc ; Lu                               ; Uppercase_Letter
`
	if err := runner.ScriptAliases(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	sc, err := runner.ParseScript("Old_Turkic")
	if err != nil || sc.String() != "Orkh" {
		t.Errorf("expected Old_Turkic to be Orkh, have %v (%v)", sc, err)
	}
	if sc, err = runner.ParseScript("latn"); err != nil || sc.String() != "Latn" {
		t.Errorf("expected ISO code to be accepted, have %v (%v)", sc, err)
	}
}

func TestUnicodeTestFiles(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	runner := newRunner(t, MaxSamples(5))
	if testdata.Exists("PropertyValueAliases.txt") {
		f, err := os.Open(testdata.UCDPath("PropertyValueAliases.txt"))
		if err != nil {
			t.Fatal(err)
		}
		err = runner.ScriptAliases(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	files := []struct {
		name string
		run  func(*os.File) (Summary, error)
	}{
		{"LineBreakTest.txt", func(f *os.File) (Summary, error) { return runner.LineBreakTest(f) }},
		{"GraphemeBreakTest.txt", func(f *os.File) (Summary, error) { return runner.GraphemeBreakTest(f) }},
		{"Scripts.txt", func(f *os.File) (Summary, error) { return runner.Scripts(f) }},
	}
	for _, file := range files {
		if !testdata.Exists(file.name) {
			t.Logf("%s not present, see internal/testdata", file.name)
			continue
		}
		f, err := os.Open(testdata.UCDPath(file.name))
		if err != nil {
			t.Fatal(err)
		}
		summary, err := file.run(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("%s: %v", file.name, summary)
		// Unicode data of different versions will not agree on every test case
		if summary.Failed*50 > summary.Evaluated {
			t.Errorf("%s: too many failures: %d of %d", file.name, summary.Failed, summary.Evaluated)
		}
	}
}
