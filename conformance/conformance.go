package conformance

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/grapheme"
	"github.com/npillmayer/textpipe/uax14"
	"github.com/npillmayer/textpipe/uax24"
	"github.com/npillmayer/textpipe/ucd"
)

// DefaultMaxSamples is the number of failures a Summary keeps by default.
const DefaultMaxSamples = 20

// Sample describes a single failed test case.
type Sample struct {
	LineNo   int    // line of the test file
	Position int    // code-point position of the first mismatch
	Expected string // expected value
	Actual   string // value produced
	Comment  string // comment of the test line or diagnostic info
}

func (s Sample) String() string {
	return fmt.Sprintf("line %d @%d: expected %s, have %s (%s)",
		s.LineNo, s.Position, s.Expected, s.Actual, s.Comment)
}

// Summary is the outcome of running a test file.
type Summary struct {
	Evaluated int
	Passed    int
	Failed    int
	Skipped   int      // malformed or unsupported test lines
	Samples   []Sample // the first failures, capped
}

// OK is true if no test case failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d evaluated, %d passed, %d failed, %d skipped",
		s.Evaluated, s.Passed, s.Failed, s.Skipped)
	for _, sample := range s.Samples {
		b.WriteString("\n  ")
		b.WriteString(sample.String())
	}
	return b.String()
}

// Runner runs conformance tests. A Runner is not safe for concurrent use.
type Runner struct {
	props      ucd.Provider
	maxSamples int
	aliases    map[string]string
	lw         *uax14.LineWrap
	gb         *grapheme.Breaker
	scripts    *uax24.Analyzer
}

// Option configures a Runner.
type Option func(*Runner)

// MaxSamples sets the number of failures kept in a Summary. n ≤ 0 keeps
// no samples.
func MaxSamples(n int) Option {
	return func(r *Runner) {
		r.maxSamples = n
	}
}

// NewRunner creates a runner checking components using property provider p.
func NewRunner(p ucd.Provider, opts ...Option) (*Runner, error) {
	if p == nil {
		return nil, fmt.Errorf("conformance: cannot create runner: %w", textpipe.ErrNoProvider)
	}
	r := &Runner{
		props:      p,
		maxSamples: DefaultMaxSamples,
		aliases:    builtinScriptAliases(),
		gb:         grapheme.NewBreaker(),
	}
	var err error
	if r.lw, err = uax14.NewLineWrap(p); err != nil {
		return nil, err
	}
	if r.scripts, err = uax24.New(p); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// collector accumulates the results of a test file.
type collector struct {
	summary Summary
	samples *arraylist.List
	max     int
}

func (r *Runner) newCollector() *collector {
	return &collector{samples: arraylist.New(), max: r.maxSamples}
}

func (c *collector) pass() {
	c.summary.Evaluated++
	c.summary.Passed++
}

func (c *collector) fail(s Sample) {
	c.summary.Evaluated++
	c.summary.Failed++
	if c.samples.Size() < c.max {
		c.samples.Add(s)
	}
}

func (c *collector) skip(lineno int, err error) {
	c.summary.Skipped++
	tracer().Debugf("conformance: skipping line %d: %v", lineno, err)
}

func (c *collector) done(what string) Summary {
	c.summary.Samples = make([]Sample, 0, c.samples.Size())
	it := c.samples.Iterator()
	for it.Next() {
		c.summary.Samples = append(c.summary.Samples, it.Value().(Sample))
	}
	tracer().Infof("conformance: %s: %d evaluated, %d passed, %d failed, %d skipped", what,
		c.summary.Evaluated, c.summary.Passed, c.summary.Failed, c.summary.Skipped)
	return c.summary
}
