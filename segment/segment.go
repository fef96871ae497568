/*
Package segment is about Unicode text segmenting.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for stepping
through the 'segments' of a text. Successive calls to a segmenter's Next()
method will step through the segments, and clients are able to get the
runes of the segment by calling Runes() or Text().

Clients supply one or more breakers as the breaking engines for a segmenter.
A breaker marks the positions where a segment may start, e.g. the line break
opportunities found by uax14.LineWrap, or the grapheme cluster boundaries
found by grapheme.Breaker. The first breaker is called the primary breaker,
any following breakers are secondary breakers. A segment ends wherever any
of the breakers reports a boundary.

  breaker1 := ...
  breaker2 := ...
  segmenter := segment.NewSegmenter(breaker1, breaker2)
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Runes()
  }

Specifying no breaker results in a segmenter breaking after runs of
whitespace.

How it works

Init asks every breaker for the boundaries of the complete text and collects
the resulting segments in a queue. Next withdraws segments from the front of
the queue. If the primary breaker is able to tell mandatory breaks (as
uax14.LineWrap is), segments ending with a mandatory break are flagged. */
package segment

import (
	"errors"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textpipe"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Breaker finds the positions of cps where a segment may start.
// breaks has room for len(cps)+1 entries.
type Breaker interface {
	BreakOpportunities(cps []rune, breaks []bool) error
}

// MandatoryBreaker is a Breaker which is able to tell if a segment has to
// start at position i.
type MandatoryBreaker interface {
	Breaker
	IsMandatoryAt(cps []rune, i int) bool
}

// Segment is a range of code-points between two break opportunities.
type Segment struct {
	textpipe.Range
	Mandatory bool // the segment ends with a mandatory break
	Primary   bool // the end of the segment is a boundary of the primary breaker
}

// A Segmenter segments a text into smaller parts, called segments.
// A Segmenter must not be used concurrently.
type Segmenter struct {
	breakers []Breaker
	queue    *doublylinkedlist.List // of Segment
	breaks   [][]bool               // one row per breaker
	cps      []rune
	active   Segment
	err      error
	inited   bool
}

// ErrNotInitialized is returned if a segmenter's Next-function is called without
// first setting an input source.
var ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")

// NewSegmenter creates a new Segmenter by providing breaking logic.
// Clients may provide more than one Breaker. Specifying no
// Breaker results in getting a SimpleWordBreaker, which will
// break on whitespace (see SimpleWordBreaker in this package).
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them.
func NewSegmenter(breakers ...Breaker) *Segmenter {
	if len(breakers) == 0 {
		breakers = []Breaker{NewSimpleWordBreaker()}
	}
	return &Segmenter{
		breakers: breakers,
		queue:    doublylinkedlist.New(),
		breaks:   make([][]bool, len(breakers)),
	}
}

// Init initializes a Segmenter with a text to segment. s is either a newly
// created segmenter, or a segmenter already in use.
func (s *Segmenter) Init(cps []rune) {
	s.queue.Clear()
	s.cps = cps
	s.err = nil
	s.active = Segment{}
	s.inited = true
	n := len(cps)
	for b, breaker := range s.breakers {
		if cap(s.breaks[b]) < n+1 {
			s.breaks[b] = make([]bool, n+1)
		}
		s.breaks[b] = s.breaks[b][:n+1]
		if err := breaker.BreakOpportunities(cps, s.breaks[b]); err != nil {
			s.err = err
			return
		}
	}
	start := 0
	for i := 1; i <= n; i++ {
		primary := s.breaks[0][i]
		boundary := primary || i == n
		for b := 1; b < len(s.breakers) && !boundary; b++ {
			boundary = s.breaks[b][i]
		}
		if !boundary {
			continue
		}
		seg := Segment{Range: textpipe.RangeFromTo(start, i), Primary: primary}
		if m, ok := s.breakers[0].(MandatoryBreaker); ok {
			seg.Mandatory = m.IsMandatoryAt(cps, i)
		}
		s.queue.Add(seg)
		start = i
	}
	CT().Debugf("segmenter: %d code-points make %d segments", n, s.queue.Size())
}

// InitString is a shortcut for Init([]rune(text)).
func (s *Segmenter) InitString(text string) {
	s.Init([]rune(text))
}

// Next advances to the next segment. It returns false when there are no
// more segments or an error occurred.
func (s *Segmenter) Next() bool {
	if !s.inited {
		s.err = ErrNotInitialized
	}
	if s.err != nil || s.queue.Empty() {
		return false
	}
	front, _ := s.queue.Get(0)
	s.queue.Remove(0)
	s.active = front.(Segment)
	return true
}

// Segment returns the most recent segment.
func (s *Segmenter) Segment() Segment {
	return s.active
}

// Runes returns the code-points of the most recent segment.
func (s *Segmenter) Runes() []rune {
	return s.cps[s.active.Start:s.active.End()]
}

// Text returns the most recent segment as a string.
func (s *Segmenter) Text() string {
	return string(s.Runes())
}

// Len returns the number of segments not yet withdrawn.
func (s *Segmenter) Len() int {
	return s.queue.Size()
}

// Err returns the first error that was encountered by the Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}
