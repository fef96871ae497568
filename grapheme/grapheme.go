package grapheme

import (
	"github.com/go-text/typesetting/segmenter"
	"github.com/npillmayer/textpipe"
)

// Breaker finds grapheme cluster boundaries.
// The zero value is ready to use. A Breaker keeps internal buffers and
// must not be used concurrently.
type Breaker struct {
	seg    segmenter.Segmenter
	breaks []bool
}

// NewBreaker creates a grapheme breaker.
func NewBreaker() *Breaker {
	return &Breaker{}
}

// BreakOpportunities marks the cluster boundaries of cps in breaks.
// breaks[i] is true if a cluster starts at i; breaks[len(cps)] is always true,
// as is breaks[0] (start of text). breaks must have room for len(cps)+1
// entries, otherwise textpipe.ErrBufferTooSmall is returned.
func (gb *Breaker) BreakOpportunities(cps []rune, breaks []bool) error {
	n := len(cps)
	if len(breaks) < n+1 {
		return textpipe.ErrBufferTooSmall
	}
	for i := 0; i <= n; i++ {
		breaks[i] = false
	}
	breaks[0], breaks[n] = true, true
	if n == 0 {
		return nil
	}
	gb.seg.Init(cps)
	it := gb.seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		breaks[g.Offset] = true
		breaks[g.Offset+len(g.Text)] = true
	}
	return nil
}

// Breaks returns the cluster boundaries of cps. The result is a view into
// an internal buffer, valid until the next call.
func (gb *Breaker) Breaks(cps []rune) []bool {
	if cap(gb.breaks) < len(cps)+1 {
		gb.breaks = make([]bool, len(cps)+1)
	}
	gb.breaks = gb.breaks[:len(cps)+1]
	_ = gb.BreakOpportunities(cps, gb.breaks)
	return gb.breaks
}

// Clusters calls fn for every grapheme cluster of cps, in logical order.
// cluster is a sub-slice of cps, offset its position.
func (gb *Breaker) Clusters(cps []rune, fn func(cluster []rune, offset int)) {
	if len(cps) == 0 {
		return
	}
	gb.seg.Init(cps)
	it := gb.seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		fn(cps[g.Offset:g.Offset+len(g.Text)], g.Offset)
	}
}

// Count returns the number of grapheme clusters in cps.
func (gb *Breaker) Count(cps []rune) int {
	cnt := 0
	gb.Clusters(cps, func([]rune, int) { cnt++ })
	return cnt
}
