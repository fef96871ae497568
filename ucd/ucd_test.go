package ucd

import (
	"testing"
	"unicode"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textpipe/uax11"
)

func TestLineBreakClasses(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := New()
	for i, x := range []struct {
		r rune
		c LineBreakClass
	}{
		{'A', ALClass},
		{' ', SPClass},
		{'\n', LFClass},
		{'\r', CRClass},
		{'(', OPClass},
		{')', CPClass},
		{'7', NUClass},
		{0x200b, ZWClass},
		{0x05d0, HLClass},
		{0x4e00, IDClass},
		{0x2010, HHClass}, // overlay
		{0x1b44, VIClass}, // overlay
		{0x1b13, AKClass}, // overlay
	} {
		if c := p.LineBreakClass(x.r); c != x.c {
			t.Errorf("test #%d: expected class of %U to be %s, is %s", i, x.r, x.c, c)
		}
	}
}

func TestOverlayOption(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	x := &unicode.RangeTable{R16: []unicode.Range16{{0x78, 0x78, 1}}}
	p := New(WithOverlay(BKClass, x))
	if c := p.LineBreakClass('x'); c != BKClass {
		t.Errorf("expected overlay to make 'x' a BK, is %s", c)
	}
	p = New(WithoutBuiltinOverlay())
	if c := p.LineBreakClass(0x1b44); c == VIClass {
		t.Errorf("expected U+1B44 not to be VI without overlay")
	}
}

func TestParseLineBreakClass(t *testing.T) {
	for c := XXClass; c < maxLineBreakClass; c++ {
		parsed, ok := ParseLineBreakClass(c.String())
		if !ok || parsed != c {
			t.Errorf("expected %s to parse to itself, got %s", c, parsed)
		}
	}
	if _, ok := ParseLineBreakClass("QQ"); ok {
		t.Errorf("expected QQ not to be a line breaking class")
	}
	if c, _ := ParseLineBreakClass(" zwj"); c != ZWJClass {
		t.Errorf("expected zwj to parse as ZWJ, is %s", c)
	}
}

func TestGeneralCategory(t *testing.T) {
	p := Default()
	for i, x := range []struct {
		r  rune
		gc GeneralCategory
	}{
		{'a', Ll},
		{'A', Lu},
		{'(', Ps},
		{0x00ab, Pi},
		{0x00bb, Pf},
		{0x0301, Mn},
		{0x0378, Cn},
		{0xe000, Co},
	} {
		if gc := p.GeneralCategory(x.r); gc != x.gc {
			t.Errorf("test #%d: expected category of %U to be %s, is %s", i, x.r, x.gc, gc)
		}
	}
	if !Mc.IsMark() || !Mn.IsMark() || Me.IsMark() {
		t.Errorf("expected Mn and Mc to be marks, but not Me")
	}
}

func TestScriptsAndPredicates(t *testing.T) {
	p := Default()
	if s := p.Script('a'); s != language.Latin {
		t.Errorf("expected 'a' to be Latin, is %s", s)
	}
	if s := p.Script(0x05d0); s != language.Hebrew {
		t.Errorf("expected U+05D0 to be Hebrew, is %s", s)
	}
	if s := p.Script(' '); s != language.Common {
		t.Errorf("expected space to be Common, is %s", s)
	}
	if s := p.Script(0x0301); s != language.Inherited {
		t.Errorf("expected U+0301 to be Inherited, is %s", s)
	}
	if !p.IsDottedCircle(0x25cc) || p.IsDottedCircle('o') {
		t.Errorf("dotted circle predicate is wrong")
	}
	if !p.IsBrahmicForLB28a(0x1b13) || p.IsBrahmicForLB28a('a') {
		t.Errorf("Brahmic predicate is wrong")
	}
	if !p.IsUnambiguousHyphen(0x2010) || p.IsUnambiguousHyphen('-') {
		t.Errorf("unambiguous hyphen predicate is wrong")
	}
	if !p.IsExtendedPictographic(0x1f600) || p.IsExtendedPictographic('a') {
		t.Errorf("Extended_Pictographic predicate is wrong")
	}
	if w := p.EastAsianWidth(0x4e00); w != uax11.W {
		t.Errorf("expected U+4E00 to be wide, is %s", w)
	}
}
