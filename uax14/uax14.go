package uax14

import (
	"fmt"

	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/ucd"
)

// LineWrap is a type to break lines up according to UAX#14.
// It keeps buffers for line breaking classes and results, which are
// reused between calls. A LineWrap must not be used concurrently.
type LineWrap struct {
	props  ucd.Provider
	cps    []rune
	cls    []ucd.LineBreakClass // LB1-resolved classes, CM and ZWJ retained
	breaks []bool
}

// NewLineWrap creates a new UAX#14 line breaker.
// If p is nil, textpipe.ErrNoProvider is returned.
func NewLineWrap(p ucd.Provider) (*LineWrap, error) {
	if p == nil {
		return nil, fmt.Errorf("uax14: cannot create line breaker: %w", textpipe.ErrNoProvider)
	}
	return &LineWrap{props: p}, nil
}

// BreakOpportunities calculates the line break opportunities of cps and
// writes them to breaks. breaks[i] is true if a line may start at position
// i. breaks must have room for len(cps)+1 entries, otherwise
// textpipe.ErrBufferTooSmall is returned.
//
// breaks[0] is false and breaks[len(cps)] is true. For empty input, breaks[0]
// is true.
func (lw *LineWrap) BreakOpportunities(cps []rune, breaks []bool) error {
	n := len(cps)
	if len(breaks) < n+1 {
		return fmt.Errorf("uax14: have %d break entries for %d code-points: %w",
			len(breaks), n, textpipe.ErrBufferTooSmall)
	}
	lw.prepare(cps)
	breaks[0] = n == 0
	for i := 1; i < n; i++ {
		breaks[i], _ = lw.decide(i)
	}
	breaks[n] = true
	TC().Debugf("uax14: breaks for %d code-points = %v", n, breaks[:n+1])
	return nil
}

// Breaks is like BreakOpportunities, but returns the break opportunities
// in a buffer owned by the LineWrap. The result is valid until the next
// call to lw.
func (lw *LineWrap) Breaks(cps []rune) []bool {
	if cap(lw.breaks) < len(cps)+1 {
		lw.breaks = make([]bool, len(cps)+1)
	}
	lw.breaks = lw.breaks[:len(cps)+1]
	_ = lw.BreakOpportunities(cps, lw.breaks)
	return lw.breaks
}

// CanBreakAt returns true if a line may start at position i of cps,
// with 0 < i < len(cps). For any other i, false is returned.
func (lw *LineWrap) CanBreakAt(cps []rune, i int) bool {
	if i <= 0 || i >= len(cps) {
		return false
	}
	lw.prepare(cps)
	br, _ := lw.decide(i)
	return br
}

// RuleAt returns the name of the rule deciding about a break at position i,
// e.g. "LB28". It is intended for diagnostics.
func (lw *LineWrap) RuleAt(cps []rune, i int) string {
	switch {
	case i <= 0:
		return "LB2"
	case i >= len(cps):
		return "LB3"
	}
	lw.prepare(cps)
	_, rule := lw.decide(i)
	return rule
}

// IsMandatoryAt returns true if a line has to start at position i of cps,
// because of a hard line break (classes BK, CR, LF, NL) at i-1.
func (lw *LineWrap) IsMandatoryAt(cps []rune, i int) bool {
	if i <= 0 || i > len(cps) {
		return false
	}
	switch lw.props.LineBreakClass(cps[i-1]) {
	case ucd.BKClass, ucd.LFClass, ucd.NLClass:
		return true
	case ucd.CRClass:
		return i == len(cps) || lw.props.LineBreakClass(cps[i]) != ucd.LFClass
	}
	return false
}

// IsHardBreak is true for classes which force a line break after them.
func IsHardBreak(c ucd.LineBreakClass) bool {
	return c == ucd.BKClass || c == ucd.CRClass || c == ucd.LFClass || c == ucd.NLClass
}

// prepare looks up the line breaking classes of cps.
func (lw *LineWrap) prepare(cps []rune) {
	if cap(lw.cls) < len(cps) {
		lw.cls = make([]ucd.LineBreakClass, len(cps))
	}
	lw.cls = lw.cls[:len(cps)]
	for i, r := range cps {
		lw.cls[i] = resolveSomeClasses(lw.props, r, lw.props.LineBreakClass(r))
	}
	lw.cps = cps
}

// LB1 Assign a line breaking class to each code point of the input.
// Resolve AI, CB, CJ, SA, SG, and XX into other line breaking classes
// depending on criteria outside the scope of this algorithm.
//
// In the absence of such criteria all characters with a specific combination of
// original class and General_Category property value are resolved as follows:
//
//	Resolved 	Original 	 General_Category
//	AL         AI, SG, XX  Any
//	CM         SA          Only Mn or Mc
//	AL         SA          Any except Mn and Mc
//	NS         CJ          Any
//
// CB is left as is and handled by LB20.
func resolveSomeClasses(p ucd.Provider, r rune, c ucd.LineBreakClass) ucd.LineBreakClass {
	switch c {
	case ucd.AIClass, ucd.SGClass, ucd.XXClass:
		return ucd.ALClass
	case ucd.SAClass:
		if p.GeneralCategory(r).IsMark() {
			return ucd.CMClass
		}
		return ucd.ALClass
	case ucd.CJClass:
		return ucd.NSClass
	}
	return c
}
