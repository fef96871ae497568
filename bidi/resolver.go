package bidi

import (
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/uax11"
	"golang.org/x/text/unicode/bidi"
)

// Resolver is the default LevelResolver, built on package
// golang.org/x/text/unicode/bidi.
type Resolver struct {
	fallback textpipe.Direction
	testing  bool
	buf      []rune
}

// Option configures a Resolver.
type Option func(r *Resolver)

// Fallback sets the base direction used for paragraphs without any strong
// character. The default is left-to-right.
func Fallback(dir textpipe.Direction) Option {
	return func(r *Resolver) {
		r.fallback = dir
	}
}

// FallbackFrom sets the fallback direction from the script of a typesetting
// context.
func FallbackFrom(ctx *uax11.Context) Option {
	return func(r *Resolver) {
		r.fallback = ctx.Direction()
	}
}

// Testing will set up the resolver to recognize UPPERCASE letters as having
// class R.
func Testing(b bool) Option {
	return func(r *Resolver) {
		r.testing = b
	}
}

// NewResolver creates a level resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve implements LevelResolver.
//
// Levels are derived from run directions: with a left-to-right base direction,
// left-to-right runs get level 0 and right-to-left runs level 1. With a
// right-to-left base direction, right-to-left runs get level 1 and
// left-to-right runs level 2.
func (r *Resolver) Resolve(cps []rune, base BaseDirection, levels []uint8) (textpipe.Direction, error) {
	text := r.prepare(cps)
	dir := r.fallback
	switch base {
	case LeftToRight:
		dir = textpipe.LeftToRight
	case RightToLeft:
		dir = textpipe.RightToLeft
	default:
		if d, ok := FirstStrong(text); ok {
			dir = d
		} else {
			T().P("fallback", dir).Debugf("bidi: no strong character, using fallback direction")
		}
	}
	if len(text) == 0 {
		return dir, nil
	}
	ltr, rtl := uint8(0), uint8(1)
	if dir == textpipe.RightToLeft {
		ltr = 2
	}
	for i := range levels[:len(text)] {
		levels[i] = ltr
	}
	var p bidi.Paragraph
	var err error
	if dir == textpipe.RightToLeft {
		_, err = p.SetString(string(text), bidi.DefaultDirection(bidi.RightToLeft))
	} else {
		_, err = p.SetString(string(text), bidi.DefaultDirection(bidi.LeftToRight))
	}
	if err != nil {
		return dir, err
	}
	order, err := p.Order()
	if err != nil {
		return dir, err
	}
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		start, end := run.Pos() // end is inclusive
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = rtl
		}
	}
	return dir, nil
}

func (r *Resolver) prepare(cps []rune) []rune {
	if !r.testing {
		return cps
	}
	r.buf = append(r.buf[:0], cps...)
	for i, c := range r.buf {
		if c >= 'A' && c <= 'Z' {
			r.buf[i] = 0x05d0 // Hebrew letter alef
		}
	}
	return r.buf
}

// FirstStrong returns the direction of the first strong character in cps
// (bidi classes L, R and AL). If there is none, false is returned.
func FirstStrong(cps []rune) (textpipe.Direction, bool) {
	for _, c := range cps {
		props, _ := bidi.LookupRune(c)
		switch props.Class() {
		case bidi.L:
			return textpipe.LeftToRight, true
		case bidi.R, bidi.AL:
			return textpipe.RightToLeft, true
		}
	}
	return textpipe.LeftToRight, false
}
