package segment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/grapheme"
	"github.com/npillmayer/textpipe/uax14"
	"github.com/npillmayer/textpipe/ucd"
)

func TestWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.InitString("	for (i=0; i<5; i++)   count += i;")
	n := 0
	for seg.Next() {
		t.Logf("segment = '%s'", seg.Text())
		n++
	}
	if n != 14 {
		t.Errorf("Expected 14 segments, have %d", n)
	}
}

func TestSimpleSegmenter(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for i, x := range []struct {
		input string
		n     int
	}{
		{"Hello World ", 4},
		{"lime-tree", 1},
		{"Hello World, how are you?", 9},
		{"", 0},
	} {
		seg := NewSegmenter() // will use a SimpleWordBreaker
		seg.InitString(x.input)
		n := 0
		for seg.Next() {
			n++
		}
		if n != x.n {
			t.Errorf("%d: expected %d segments, have %d", i, x.n, n)
		}
	}
}

func TestLineSegments(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lw, err := uax14.NewLineWrap(ucd.Default())
	if err != nil {
		t.Fatal(err)
	}
	seg := NewSegmenter(lw)
	seg.InitString("lime-tree\nis green")
	var texts []string
	var mandatory []bool
	for seg.Next() {
		texts = append(texts, seg.Text())
		mandatory = append(mandatory, seg.Segment().Mandatory)
	}
	expected := []string{"lime-", "tree\n", "is ", "green"}
	if len(texts) != len(expected) {
		t.Fatalf("expected segments %q, have %q", expected, texts)
	}
	for i := range expected {
		if texts[i] != expected[i] {
			t.Errorf("expected segment %q, have %q", expected[i], texts[i])
		}
	}
	if !mandatory[1] || mandatory[0] || mandatory[2] {
		t.Errorf("expected only 2nd segment to end with a mandatory break, have %v", mandatory)
	}
}

func TestSecondaryBreaker(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(NewSimpleWordBreaker(), grapheme.NewBreaker())
	seg.InitString("ab c")
	n, primary := 0, 0
	for seg.Next() {
		n++
		if seg.Segment().Primary {
			primary++
		}
	}
	if n != 4 || primary != 3 {
		t.Errorf("expected 4 segments (3 primary), have %d (%d)", n, primary)
	}
}

type failingBreaker struct{}

func (failingBreaker) BreakOpportunities([]rune, []bool) error {
	return textpipe.ErrBufferTooSmall
}

func TestErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	if seg.Next() || !errors.Is(seg.Err(), ErrNotInitialized) {
		t.Errorf("expected uninitialized segmenter to fail")
	}
	seg = NewSegmenter(failingBreaker{})
	seg.InitString("x")
	if seg.Next() || seg.Err() == nil {
		t.Errorf("expected breaker error to stop segmenter")
	}
}

func ExampleSegmenter() {
	seg := NewSegmenter() // will use a SimpleWordBreaker
	seg.InitString("Hello World!")
	for seg.Next() {
		fmt.Printf("segment: %v '%s'\n", seg.Segment().Range, seg.Text())
	}
	// Output:
	// segment: [0,5) 'Hello'
	// segment: [5,6) ' '
	// segment: [6,12) 'World!'
}
