package grapheme

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe"
)

func TestGraphemeBreaks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for i, x := range []struct {
		input  []rune
		breaks []bool
	}{
		{[]rune{}, []bool{true}},
		{[]rune("ab"), []bool{true, true, true}},
		{[]rune{'e', 0x0301, 'x'}, []bool{true, false, true, true}},
		{[]rune{'\r', '\n'}, []bool{true, false, true}},
		{[]rune{0xac1c, '='}, []bool{true, true, true}},
		{[]rune{0x1f1e9, 0x1f1ea, 0x1f1e9}, []bool{true, false, true, true}},
	} {
		var gb Breaker
		breaks := gb.Breaks(x.input)
		if len(breaks) != len(x.breaks) {
			t.Fatalf("test #%d: expected %d break entries, have %d", i, len(x.breaks), len(breaks))
		}
		for j := range breaks {
			if breaks[j] != x.breaks[j] {
				t.Errorf("test #%d: expected break[%d] to be %v", i, j, x.breaks[j])
			}
		}
	}
}

func TestBufferTooSmall(t *testing.T) {
	gb := NewBreaker()
	err := gb.BreakOpportunities([]rune("abc"), make([]bool, 3))
	if !errors.Is(err, textpipe.ErrBufferTooSmall) {
		t.Errorf("expected ErrBufferTooSmall, have %v", err)
	}
}

func TestClusters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var gb Breaker
	input := []rune("Hello\tWorld!")
	output := ""
	gb.Clusters(input, func(cluster []rune, _ int) {
		output += "_" + string(cluster)
	})
	if output != "_H_e_l_l_o_\t_W_o_r_l_d_!" {
		t.Errorf("expected grapheme for every char pos, have %s", output)
	}
	if n := gb.Count([]rune{'e', 0x0301}); n != 1 {
		t.Errorf("expected e + combining acute to be 1 grapheme, have %d", n)
	}
}
