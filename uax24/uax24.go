package uax24

import (
	"fmt"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/ucd"
)

// Analyzer resolves scripts. It re-uses its result buffer between calls and
// must not be used concurrently.
type Analyzer struct {
	props   ucd.Provider
	scripts []language.Script
}

// New creates a script analyzer. If p is nil, textpipe.ErrNoProvider is returned.
func New(p ucd.Provider) (*Analyzer, error) {
	if p == nil {
		return nil, fmt.Errorf("uax24: cannot create script analyzer: %w", textpipe.ErrNoProvider)
	}
	return &Analyzer{props: p}, nil
}

// Analyze returns the resolved script of each code-point of cps.
// The result is valid until the next call to a.
func (a *Analyzer) Analyze(cps []rune) []language.Script {
	if cap(a.scripts) < len(cps) {
		a.scripts = make([]language.Script, len(cps))
	}
	a.scripts = a.scripts[:len(cps)]
	for i, r := range cps {
		a.scripts[i] = a.props.Script(r)
	}
	resolved := a.inherit()
	tracer().Debugf("uax24: resolved %d of %d code-points", resolved, len(cps))
	return a.scripts
}

// Scripts returns the result of the last call to Analyze.
func (a *Analyzer) Scripts() []language.Script {
	return a.scripts
}

// Clear invalidates the last result.
func (a *Analyzer) Clear() {
	a.scripts = a.scripts[:0]
}

// inherit resolves Common and Inherited in a forward and a backward pass.
// A code-point of unknown script interrupts inheritance.
func (a *Analyzer) inherit() (resolved int) {
	last := language.Unknown
	for i, s := range a.scripts {
		if IsUnresolved(s) {
			if last != language.Unknown {
				a.scripts[i] = last
				resolved++
			}
			continue
		}
		last = s
	}
	last = language.Unknown
	for i := len(a.scripts) - 1; i >= 0; i-- {
		if s := a.scripts[i]; IsUnresolved(s) {
			if last != language.Unknown {
				a.scripts[i] = last
				resolved++
			}
			continue
		}
		last = a.scripts[i]
	}
	return
}

// IsUnresolved is true for scripts Common and Inherited.
func IsUnresolved(s language.Script) bool {
	return s == language.Common || s == language.Inherited
}
