package bidi

import (
	"errors"
	"fmt"

	"github.com/npillmayer/textpipe"
)

// ErrNoResolver is returned when creating an Analyzer without a level resolver.
var ErrNoResolver = errors.New("bidi: no level resolver")

// BaseDirection is the base direction of a paragraph, either forced or
// detected from the text.
type BaseDirection uint8

// A paragraph's direction is either detected from its first strong
// character, or forced to be left-to-right or right-to-left.
const (
	Auto BaseDirection = iota
	LeftToRight
	RightToLeft
)

func (b BaseDirection) String() string {
	switch b {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	}
	return "auto"
}

// Base converts a direction into a forced base direction.
func Base(dir textpipe.Direction) BaseDirection {
	if dir == textpipe.RightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// LevelResolver resolves embedding levels for a paragraph of text.
// It writes one level per code-point into levels, which has room for
// len(cps) entries, and returns the resolved base direction.
type LevelResolver interface {
	Resolve(cps []rune, base BaseDirection, levels []uint8) (textpipe.Direction, error)
}

// Analyzer calculates embedding levels by delegating to a LevelResolver.
// It re-uses its levels buffer between calls and must not be used concurrently.
type Analyzer struct {
	resolver LevelResolver
	levels   []uint8
	base     textpipe.Direction
	valid    bool
	hasRTL   bool
}

// NewAnalyzer creates an analyzer. If r is nil, ErrNoResolver is returned.
func NewAnalyzer(r LevelResolver) (*Analyzer, error) {
	if r == nil {
		return nil, fmt.Errorf("bidi: cannot create analyzer: %w", ErrNoResolver)
	}
	return &Analyzer{resolver: r}, nil
}

// Analyze resolves the embedding levels of cps, detecting the base direction
// from the text. The levels are valid until the next call or until Clear.
func (a *Analyzer) Analyze(cps []rune) ([]uint8, error) {
	return a.analyze(cps, Auto)
}

// AnalyzeWith is like Analyze, but forces the base direction.
func (a *Analyzer) AnalyzeWith(cps []rune, dir textpipe.Direction) ([]uint8, error) {
	return a.analyze(cps, Base(dir))
}

func (a *Analyzer) analyze(cps []rune, base BaseDirection) ([]uint8, error) {
	a.Clear()
	if cap(a.levels) < len(cps) {
		a.levels = make([]uint8, len(cps))
	}
	a.levels = a.levels[:len(cps)]
	dir, err := a.resolver.Resolve(cps, base, a.levels)
	if err != nil {
		a.levels = a.levels[:0]
		return nil, fmt.Errorf("bidi: resolving levels failed: %w", err)
	}
	a.base = dir
	a.valid = true
	for _, l := range a.levels {
		if l&1 == 1 {
			a.hasRTL = true
			break
		}
	}
	T().Debugf("bidi: base direction %s, levels = %v", dir, a.levels)
	return a.levels, nil
}

// Levels returns the embedding levels of the last call to Analyze or
// AnalyzeWith, or nil if they have been cleared.
func (a *Analyzer) Levels() []uint8 {
	if !a.valid {
		return nil
	}
	return a.levels
}

// BaseDirection returns the resolved base direction of the last call.
func (a *Analyzer) BaseDirection() textpipe.Direction {
	return a.base
}

// HasRTL is true if the last call found any right-to-left text.
func (a *Analyzer) HasRTL() bool {
	return a.valid && a.hasRTL
}

// Clear invalidates the levels of the last call.
func (a *Analyzer) Clear() {
	a.levels = a.levels[:0]
	a.valid = false
	a.hasRTL = false
	a.base = textpipe.LeftToRight
}
