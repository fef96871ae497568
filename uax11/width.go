package uax11

import (
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/grapheme"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "N"
}

// IsWide is true for categories W, F and H. These are the categories
// line breaking rule LB19a considers to be East Asian.
func (c Category) IsWide() bool {
	return c == W || c == F || c == H
}

// WidthCategory returns the width category of a single rune as proposed by the UAX#11
// standard. Please note that this is most probably not what clients will want to use in
// full-grown international applications, as it is preferable to work on graphemes
// rather than on runes. This function is nevertheless provided as a low
// level API function corresponding to UAX#11 section 6.
//
// Returns one of N, A, Na, W, H, F.
func WidthCategory(r rune) Category {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianAmbiguous:
		return A
	case width.EastAsianWide:
		return W
	case width.EastAsianNarrow:
		return Na
	case width.EastAsianHalfwidth:
		return H
	case width.EastAsianFullwidth:
		return F
	}
	if unicode.Is(_CJK_Default_W, r) {
		return W
	}
	// UAX#11:
	//  - All code points, assigned or unassigned, that are not listed
	//      explicitly are given the value "N".
	return N
}

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western languages.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	return &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
		resolve:        resolveToWide,
	}
}

func makeLatinContext() *Context {
	return &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
		resolve:        resolveToNarrow,
	}
}

// ContextFor creates a context for a locale string, e.g. "ja-JP" or "he".
// Ambiguous characters will be resolved to wide for East Asian locales and
// to narrow otherwise.
func ContextFor(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Context{
		Script:  script,
		Locale:  locale,
		resolve: findResolver(script, lang),
	}
}

// ContextFromEnvironment creates a context from the locale of the user
// environment (LANG, LC_ALL, etc.). If the locale cannot be detected,
// "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("UAX#11 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#11 detected user locale %v", userLocale)
	}
	return ContextFor(userLocale)
}

// IsEastAsian returns true if ambiguous characters should be treated as wide.
func (ctx *Context) IsEastAsian() bool {
	if ctx == nil {
		return false
	}
	return ctx.ForceEastAsian || ctx.resolver()(A) == W
}

// Direction returns the dominant writing direction of the context's script.
// It serves as a fallback for paragraphs without any strong bidi character.
func (ctx *Context) Direction() textpipe.Direction {
	if ctx == nil {
		return textpipe.LeftToRight
	}
	switch ctx.Script.String() {
	case "Arab", "Hebr", "Syrc", "Thaa", "Nkoo", "Adlm", "Mand", "Samr", "Rohg", "Yezi":
		return textpipe.RightToLeft
	}
	return textpipe.LeftToRight
}

func (ctx *Context) resolver() resolver {
	if ctx == nil || ctx.resolve == nil {
		return resolveToNarrow
	}
	return ctx.resolve
}

// resolver resolves category A to either W or Na.
type resolver func(Category) Category

func resolveToNarrow(cat Category) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category) Category {
	if cat == A {
		return W
	}
	return cat
}

func findResolver(script language.Script, lang language.Tag) resolver {
	scrcode := script.String()
	switch scrcode {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd",
		// South East Asian
		"Batk", "Beng", "Bugi", "Mymr",
		"Cham", "Java", "Khmr", "Laoo",
		"Lisu", "Mtei", "Thai", "Yiii",
		"Bali", "Khar", "Rjng", "Roro",
		"Tglg", "Wole", "Buhd", "Tagb":
		return resolveToWide
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// Width returns the width of a grapheme, given as a slice of runes, in terms of
// `en`s, where 1en stands for 1/2em, i.e. half a full width character.
// If grphm is empty or starts with a zero width rune, a width of 0 is returned.
//
// If a nil context is given, LatinContext is assumed.
//
// Returns either 0, 1 (narrow character) or 2 (wide character).
func Width(grphm []rune, context *Context) int {
	if len(grphm) == 0 {
		return 0
	}
	r := grphm[0]
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Cc) {
		return 0
	}
	if context == nil {
		context = LatinContext
	}
	cat := WidthCategory(r)
	if cat == A {
		cat = context.resolver()(cat)
	}
	switch cat {
	case W, F:
		return 2
	}
	for _, r := range grphm[1:] {
		if r == 0xFE0F { // emoji presentation selector
			return 2
		}
	}
	return 1
}

// StringWidth returns the fixed-pitch width of a string in `en`s, summing
// up the widths of its grapheme clusters.
func StringWidth(s string, context *Context) int {
	var breaker grapheme.Breaker
	cps := []rune(s)
	w := 0
	breaker.Clusters(cps, func(cluster []rune, _ int) {
		w += Width(cluster, context)
	})
	return w
}

// ---------------------------------------------------------------------------

// UAX#11:
//   - The unassigned code points in the following blocks default to "W":
//     CJK Unified Ideographs Extension A: U+3400..U+4DBF
//     CJK Unified Ideographs:             U+4E00..U+9FFF
//     CJK Compatibility Ideographs:       U+F900..U+FAFF
//   - All undesignated code points in Planes 2 and 3, whether inside or
//     outside of allocated blocks, default to "W":
//     Plane 2:                            U+20000..U+2FFFD
//     Plane 3:                            U+30000..U+3FFFD
var _CJK_Default_W = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}
