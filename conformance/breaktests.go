package conformance

import (
	"fmt"
	"io"

	"github.com/npillmayer/textpipe/internal/ucdparse"
)

// LineBreakTest runs a test file in the format of LineBreakTest.txt
// against the UAX#14 line breaker.
func (r *Runner) LineBreakTest(in io.Reader) (Summary, error) {
	return r.runBreakTest(in, "line breaking", func(cps []rune) []bool {
		return r.lw.Breaks(cps)
	}, func(cps []rune, i int) string {
		return r.lw.RuleAt(cps, i)
	})
}

// GraphemeBreakTest runs a test file in the format of GraphemeBreakTest.txt
// against the grapheme cluster breaker.
func (r *Runner) GraphemeBreakTest(in io.Reader) (Summary, error) {
	return r.runBreakTest(in, "grapheme breaking", func(cps []rune) []bool {
		return r.gb.Breaks(cps)
	}, nil)
}

func (r *Runner) runBreakTest(in io.Reader, what string, breaks func([]rune) []bool,
	rule func([]rune, int) string) (Summary, error) {
	//
	c := r.newCollector()
	tf := ucdparse.NewTestFile(in)
	for tf.Scan() {
		test, err := ucdparse.ParseBreakTest(tf.Text())
		if err != nil {
			c.skip(tf.LineNo(), err)
			continue
		}
		actual := breaks(test.Codepoints)
		if pos, ok := firstMismatch(test.Breaks, actual); ok {
			c.pass()
		} else {
			s := Sample{
				LineNo:   tf.LineNo(),
				Position: pos,
				Expected: marker(test.Breaks[pos]),
				Actual:   marker(pos < len(actual) && actual[pos]),
				Comment:  tf.Comment(),
			}
			if rule != nil {
				s.Comment = fmt.Sprintf("%s; %s", rule(test.Codepoints, pos), s.Comment)
			}
			c.fail(s)
		}
	}
	return c.done(what), tf.Err()
}

// firstMismatch compares break tables. If they differ, it returns the first
// position where they do and false.
func firstMismatch(expected, actual []bool) (int, bool) {
	for i, br := range expected {
		if i >= len(actual) || actual[i] != br {
			return i, false
		}
	}
	return 0, true
}

func marker(br bool) string {
	if br {
		return "÷"
	}
	return "×"
}
