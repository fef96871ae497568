package ucd

import (
	"sync"
	"unicode"

	"github.com/go-text/typesetting/language"
	gtucd "github.com/go-text/typesetting/unicodedata"
	"github.com/npillmayer/textpipe/uax11"
)

// Provider gives access to Unicode character properties.
// Implementations must be total over all Unicode scalar values and safe
// for concurrent use.
type Provider interface {
	LineBreakClass(r rune) LineBreakClass
	GeneralCategory(r rune) GeneralCategory
	Script(r rune) language.Script
	EastAsianWidth(r rune) uax11.Category
	IsExtendedPictographic(r rune) bool
	IsUnambiguousHyphen(r rune) bool
	IsBrahmicForLB28a(r rune) bool
	IsDottedCircle(r rune) bool
}

// Tables is the default Provider, backed by the tables of go-text/typesetting,
// golang.org/x/text and the standard library, plus an overlay for newer
// line breaking classes.
type Tables struct {
	overlay []overlayEntry
}

type overlayEntry struct {
	class LineBreakClass
	table *unicode.RangeTable
}

var _ Provider = (*Tables)(nil)

// Option configures a Tables provider.
type Option func(*Tables)

// WithOverlay adds a range table for a line breaking class. Overlays take
// precedence over the built-in data, later overlays over earlier ones.
func WithOverlay(class LineBreakClass, table *unicode.RangeTable) Option {
	return func(t *Tables) {
		if table == nil {
			return
		}
		t.overlay = append([]overlayEntry{{class: class, table: table}}, t.overlay...)
	}
}

// WithoutBuiltinOverlay removes the built-in overlay for AK, AP, AS, VF, VI
// and HH, leaving the go-text line breaking data as is.
func WithoutBuiltinOverlay() Option {
	return func(t *Tables) {
		t.overlay = t.overlay[:0]
	}
}

// New creates a provider. After New returns, the provider is immutable.
func New(opts ...Option) *Tables {
	t := &Tables{overlay: builtinOverlay()}
	for _, opt := range opts {
		opt(t)
	}
	tracer().Debugf("ucd: provider created with %d overlay tables", len(t.overlay))
	return t
}

var defaultTables *Tables
var defaultOnce sync.Once

// Default returns a process-wide provider with default options.
// Components never use it implicitly; clients have to pass it in.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = New()
	})
	return defaultTables
}

// LineBreakClass returns the UAX #14 class of r. Code points unknown to
// the underlying tables are XX.
func (t *Tables) LineBreakClass(r rune) LineBreakClass {
	for _, o := range t.overlay {
		if unicode.Is(o.table, r) {
			return o.class
		}
	}
	table := gtucd.LookupLineBreakClass(r)
	if table == nil {
		return XXClass
	}
	if c, ok := classFromTable[table]; ok {
		return c
	}
	return XXClass
}

// GeneralCategory returns the general category of r, Cn for unassigned
// code points.
func (t *Tables) GeneralCategory(r rune) GeneralCategory {
	for _, gc := range categoryTables {
		if unicode.Is(gc.table, r) {
			return gc.category
		}
	}
	return Cn
}

// Script returns the UAX #24 script property of r.
func (t *Tables) Script(r rune) language.Script {
	return language.LookupScript(r)
}

// EastAsianWidth returns the UAX #11 width category of r.
func (t *Tables) EastAsianWidth(r rune) uax11.Category {
	return uax11.WidthCategory(r)
}

// IsExtendedPictographic is true for r in Extended_Pictographic.
func (t *Tables) IsExtendedPictographic(r rune) bool {
	return unicode.Is(gtucd.Extended_Pictographic, r)
}

// IsUnambiguousHyphen is true for characters of class HH.
func (t *Tables) IsUnambiguousHyphen(r rune) bool {
	return t.LineBreakClass(r) == HHClass
}

// IsBrahmicForLB28a is true for characters of the scripts LB28a applies to
// (Balinese, Batak, Buginese, Javanese, Kawi, Makasar and others).
func (t *Tables) IsBrahmicForLB28a(r rune) bool {
	return unicode.Is(brahmicLB28a, r)
}

// IsDottedCircle is true for U+25CC DOTTED CIRCLE.
func (t *Tables) IsDottedCircle(r rune) bool {
	return r == DottedCircle
}

// DottedCircle is U+25CC, which LB28a treats like an aksara.
const DottedCircle rune = 0x25CC

// --- Tables ----------------------------------------------------------------

var classFromTable = map[*unicode.RangeTable]LineBreakClass{
	gtucd.BreakAI:  AIClass,
	gtucd.BreakAL:  ALClass,
	gtucd.BreakB2:  B2Class,
	gtucd.BreakBA:  BAClass,
	gtucd.BreakBB:  BBClass,
	gtucd.BreakBK:  BKClass,
	gtucd.BreakCB:  CBClass,
	gtucd.BreakCJ:  CJClass,
	gtucd.BreakCL:  CLClass,
	gtucd.BreakCM:  CMClass,
	gtucd.BreakCP:  CPClass,
	gtucd.BreakCR:  CRClass,
	gtucd.BreakEB:  EBClass,
	gtucd.BreakEM:  EMClass,
	gtucd.BreakEX:  EXClass,
	gtucd.BreakGL:  GLClass,
	gtucd.BreakH2:  H2Class,
	gtucd.BreakH3:  H3Class,
	gtucd.BreakHL:  HLClass,
	gtucd.BreakHY:  HYClass,
	gtucd.BreakID:  IDClass,
	gtucd.BreakIN:  INClass,
	gtucd.BreakIS:  ISClass,
	gtucd.BreakJL:  JLClass,
	gtucd.BreakJT:  JTClass,
	gtucd.BreakJV:  JVClass,
	gtucd.BreakLF:  LFClass,
	gtucd.BreakNL:  NLClass,
	gtucd.BreakNS:  NSClass,
	gtucd.BreakNU:  NUClass,
	gtucd.BreakOP:  OPClass,
	gtucd.BreakPO:  POClass,
	gtucd.BreakPR:  PRClass,
	gtucd.BreakQU:  QUClass,
	gtucd.BreakRI:  RIClass,
	gtucd.BreakSA:  SAClass,
	gtucd.BreakSG:  SGClass,
	gtucd.BreakSP:  SPClass,
	gtucd.BreakSY:  SYClass,
	gtucd.BreakWJ:  WJClass,
	gtucd.BreakXX:  XXClass,
	gtucd.BreakZW:  ZWClass,
	gtucd.BreakZWJ: ZWJClass,
}

type categoryTable struct {
	category GeneralCategory
	table    *unicode.RangeTable
}

// Letters first, as they are most frequent in running text.
var categoryTables = []categoryTable{
	{Ll, unicode.Ll}, {Lu, unicode.Lu}, {Lo, unicode.Lo}, {Lt, unicode.Lt},
	{Lm, unicode.Lm}, {Zs, unicode.Zs}, {Po, unicode.Po}, {Nd, unicode.Nd},
	{Mn, unicode.Mn}, {Mc, unicode.Mc}, {Me, unicode.Me}, {Nl, unicode.Nl},
	{No, unicode.No}, {Pc, unicode.Pc}, {Pd, unicode.Pd}, {Ps, unicode.Ps},
	{Pe, unicode.Pe}, {Pi, unicode.Pi}, {Pf, unicode.Pf}, {Sm, unicode.Sm},
	{Sc, unicode.Sc}, {Sk, unicode.Sk}, {So, unicode.So}, {Zl, unicode.Zl},
	{Zp, unicode.Zp}, {Cc, unicode.Cc}, {Cf, unicode.Cf}, {Cs, unicode.Cs},
	{Co, unicode.Co},
}
