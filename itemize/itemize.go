/*
Package itemize splits a paragraph into text runs.

A text run is a maximal range of code-points homogeneous in bidi embedding
level, script, font and attribute snapshot. Text runs are the units a shaping
engine works on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package itemize

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/shaping"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrLengthMismatch is returned if levels or scripts do not match the text.
var ErrLengthMismatch = errors.New("itemize: input length mismatch")

// AttributeSource maps text positions to attribute snapshot ids.
// markup.Snapshots implements it.
type AttributeSource interface {
	SnapshotAt(pos int) int
}

// Itemizer splits text into runs. It re-uses its run buffer between calls
// and must not be used concurrently.
type Itemizer struct {
	fonts shaping.FontSource
	attrs AttributeSource
	runs  []textpipe.TextRun
}

// Option configures an Itemizer.
type Option func(*Itemizer)

// WithFonts makes the itemizer split runs where the font changes.
func WithFonts(fonts shaping.FontSource) Option {
	return func(it *Itemizer) {
		it.fonts = fonts
	}
}

// WithAttributes makes the itemizer split runs where the attribute
// snapshot changes.
func WithAttributes(attrs AttributeSource) Option {
	return func(it *Itemizer) {
		it.attrs = attrs
	}
}

// New creates an itemizer.
func New(opts ...Option) *Itemizer {
	it := &Itemizer{}
	it.Configure(opts...)
	return it
}

// Configure applies options to an existing itemizer.
func (it *Itemizer) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(it)
	}
}

// Itemize is a convenience function for one-shot itemization.
func Itemize(cps []rune, levels []uint8, scripts []language.Script, opts ...Option) ([]textpipe.TextRun, error) {
	return New(opts...).Itemize(cps, levels, scripts)
}

// Itemize splits cps into text runs. levels and scripts must either be nil or
// have one entry per code-point. A nil levels slice means level 0 throughout,
// nil scripts means unknown script throughout.
//
// The result is valid until the next call to it.
func (it *Itemizer) Itemize(cps []rune, levels []uint8, scripts []language.Script) ([]textpipe.TextRun, error) {
	it.runs = it.runs[:0]
	if levels != nil && len(levels) != len(cps) {
		return nil, fmt.Errorf("itemize: %d levels for %d code-points: %w", len(levels), len(cps), ErrLengthMismatch)
	}
	if scripts != nil && len(scripts) != len(cps) {
		return nil, fmt.Errorf("itemize: %d scripts for %d code-points: %w", len(scripts), len(cps), ErrLengthMismatch)
	}
	var run textpipe.TextRun
	for i, r := range cps {
		cur := it.runAt(i, r, levels, scripts)
		if i == 0 {
			run = cur
		} else if !sameRun(run, cur) {
			run.Length = i - run.Start
			it.runs = append(it.runs, run)
			run = cur
		}
	}
	if len(cps) > 0 {
		run.Length = len(cps) - run.Start
		it.runs = append(it.runs, run)
	}
	tracer().Debugf("itemize: %d code-points make %d runs", len(cps), len(it.runs))
	return it.runs, nil
}

func (it *Itemizer) runAt(i int, r rune, levels []uint8, scripts []language.Script) textpipe.TextRun {
	run := textpipe.TextRun{
		Range:  textpipe.Range{Start: i},
		Script: language.Unknown,
	}
	if levels != nil {
		run.Level = levels[i]
	}
	if scripts != nil {
		run.Script = scripts[i]
	}
	if it.fonts != nil {
		run.FontID = it.fonts.FontFor(r)
	}
	if it.attrs != nil {
		run.Snapshot = it.attrs.SnapshotAt(i)
	}
	return run
}

func sameRun(a, b textpipe.TextRun) bool {
	return a.Level == b.Level && a.Script == b.Script && a.FontID == b.FontID && a.Snapshot == b.Snapshot
}
