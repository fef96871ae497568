/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Three kinds of input are supported:

  - property files (Scripts.txt, LineBreak.txt, …) with lines of the form
    `0041..005A ; Latin # comment`, parsed with a participle grammar
  - break test files (LineBreakTest.txt, GraphemeBreakTest.txt) with lines
    of the form `÷ 0041 × 0308 ÷ # comment`, recognized by an Earley parser
  - plain line-oriented test files, with comments stripped
*/
package ucdparse

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Token is the parsed content of a single data line of a property file.
type Token struct {
	LineNo     int      // line number within the input, starting at 1
	Codepoints []rune   // code-points; for ranges, the first and last one
	IsRange    bool     // line starts with a range `first..last`
	Fields     []string // ';'-separated fields, trimmed
	Comment    string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	from, to := token.Range()
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo, from, to, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if len(token.Fields) > 0 && i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
// For single code-point items, from and to are identical.
func (token *Token) Range() (from, to rune) {
	if len(token.Codepoints) == 0 {
		return 0, 0
	}
	from = token.Codepoints[0]
	if token.IsRange {
		return from, token.Codepoints[1]
	}
	return from, from
}

// Parse iterates over each data line of a property file and calls callback f on it.
// Comment lines and empty lines are skipped. Parsing stops at the first
// malformed line or at the first error returned by f.
func Parse(r io.Reader, f func(token *Token) error) error {
	tf := NewTestFile(r)
	for tf.Scan() {
		token, err := ParseLine(tf.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", tf.LineNo(), err)
		}
		token.LineNo = tf.LineNo()
		token.Comment = tf.Comment()
		if err = f(token); err != nil {
			return err
		}
	}
	return tf.Err()
}
