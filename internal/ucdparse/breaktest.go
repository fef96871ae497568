package ucdparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// BreakTest is a single test case of a break test file such as
// LineBreakTest.txt or GraphemeBreakTest.txt.
type BreakTest struct {
	LineNo     int
	Codepoints []rune
	Breaks     []bool // len(Codepoints)+1 entries; Breaks[i] is true for '÷' before Codepoints[i]
	Comment    string
}

// Token values for the break test grammar.
const (
	tokBreak   = '/'
	tokNoBreak = '*'
	tokHex     = 'h'
	tokInvalid = '?'
)

var breakTestGrammar *lr.LRAnalysis
var initBreakTestGrammar sync.Once

// newBreakTestGrammar creates the grammar for break test lines:
//
//   Line   ➞ Marker Seq
//   Seq    ➞ Hex Marker Seq | Hex Marker
//   Marker ➞ '÷' | '×'
//
func newBreakTestGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("UCD break test")
	b.LHS("Line").N("Marker").N("Seq").End()
	b.LHS("Seq").T("hex", tokHex).N("Marker").N("Seq").End()
	b.LHS("Seq").T("hex", tokHex).N("Marker").End()
	b.LHS("Marker").T("÷", tokBreak).End()
	b.LHS("Marker").T("×", tokNoBreak).End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func getBreakTestParser() *earley.Parser {
	initBreakTestGrammar.Do(func() {
		breakTestGrammar = newBreakTestGrammar()
	})
	parser := earley.NewParser(breakTestGrammar, earley.GenerateTree(false))
	if parser == nil {
		panic("could not create break test parser")
	}
	return parser
}

// ParseBreakTest parses the data part of a break test line, e.g.
//
//   ÷ 0023 × 0308 ÷ 0020 ÷
//
// It returns an error if the line does not conform to the break test grammar.
func ParseBreakTest(line string) (BreakTest, error) {
	tokenizer := &breakTestTokenizer{fields: strings.Fields(line)}
	accept, err := getBreakTestParser().Parse(tokenizer, nil)
	if err == nil && tokenizer.err != nil {
		err = tokenizer.err
	}
	if err != nil {
		return BreakTest{}, err
	}
	if !accept {
		return BreakTest{}, fmt.Errorf("ucdparse: malformed break test line: %q", line)
	}
	return BreakTest{
		Codepoints: tokenizer.cps,
		Breaks:     tokenizer.breaks,
	}, nil
}

// ParseBreakTests iterates over all test cases of a break test file and
// calls f for each of them. Malformed lines stop the iteration with an error.
func ParseBreakTests(r io.Reader, f func(BreakTest) error) error {
	tf := NewTestFile(r)
	for tf.Scan() {
		test, err := ParseBreakTest(tf.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", tf.LineNo(), err)
		}
		test.LineNo = tf.LineNo()
		test.Comment = tf.Comment()
		if err = f(test); err != nil {
			return err
		}
	}
	return tf.Err()
}

// breakTestTokenizer implements scanner.Tokenizer for the break test
// grammar. It collects code-points and break markers on the fly.
type breakTestTokenizer struct {
	fields []string
	pos    int
	cps    []rune
	breaks []bool
	err    error
}

var _ scanner.Tokenizer = (*breakTestTokenizer)(nil)

func (bt *breakTestTokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if bt.pos >= len(bt.fields) {
		return scanner.EOF, nil, uint64(bt.pos), 0
	}
	field := bt.fields[bt.pos]
	pos := uint64(bt.pos)
	bt.pos++
	switch field {
	case "÷":
		bt.breaks = append(bt.breaks, true)
		return tokBreak, field, pos, 1
	case "×":
		bt.breaks = append(bt.breaks, false)
		return tokNoBreak, field, pos, 1
	}
	n, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		if bt.err == nil {
			bt.err = fmt.Errorf("ucdparse: illegal code-point %q in break test", field)
		}
		return tokInvalid, field, pos, 1
	}
	bt.cps = append(bt.cps, rune(n))
	return tokHex, field, pos, 1
}

// SetErrorHandler is part of interface scanner.Tokenizer. Errors are
// collected by the tokenizer itself.
func (bt *breakTestTokenizer) SetErrorHandler(h func(error)) {
}
