package grapheme

import (
	"fmt"
	"strings"
)

// String is a type to represent a graheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string is an operation with
// runtime complexiy O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = 32766

// StringFromString creates a grapheme string from a Go string.
// As grapheme strings are not meant to be created for large amounts of text, but
// rather for manageable segments, s is not allowed to exceed 2^16-2 = 32766 bytes.
//
// StringFromString will panic if a larger input string is given.
//
// Invalid UTF-8 sequences are replaced by U+FFFD.
func StringFromString(s string) String {
	if len(s) > MaxByteLen {
		panic(fmt.Sprintf("grapheme.String may not be built from more than %d bytes, have %d",
			MaxByteLen, len(s)))
	}
	s = strings.ToValidUTF8(s, "�")
	gstr := &gstring{content: s}
	cps := []rune(s)
	if len(cps) == 0 {
		return gstr
	}
	var breaker Breaker
	gstr.breaks = make([]uint16, 1, len(cps)/2+2)
	pos := 0
	breaker.Clusters(cps, func(cluster []rune, _ int) {
		pos += len(string(cluster))
		gstr.breaks = append(gstr.breaks, uint16(pos))
	})
	tracer().Debugf("grapheme string %q has breaks at %v", s, gstr.breaks)
	return gstr
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
//
// StringFromBytes will panic if b exceeds MaxByteLen.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

type gstring struct {
	content string
	breaks  []uint16
}

func (gstr *gstring) Nth(n int) string {
	if n < 0 || n > max(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, max(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *gstring) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}
