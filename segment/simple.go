package segment

import (
	"unicode"

	"github.com/npillmayer/textpipe"
)

// SimpleWordBreaker is a Breaker which breaks at the start and at the end
// of runs of whitespace.
type SimpleWordBreaker struct{}

// NewSimpleWordBreaker creates a new SimpleWordBreaker.
func NewSimpleWordBreaker() *SimpleWordBreaker {
	return &SimpleWordBreaker{}
}

// BreakOpportunities implements Breaker.
func (swb *SimpleWordBreaker) BreakOpportunities(cps []rune, breaks []bool) error {
	n := len(cps)
	if len(breaks) < n+1 {
		return textpipe.ErrBufferTooSmall
	}
	breaks[0], breaks[n] = false, true
	for i := 1; i < n; i++ {
		breaks[i] = unicode.IsSpace(cps[i-1]) != unicode.IsSpace(cps[i])
	}
	return nil
}
