package ucd

import "strings"

// LineBreakClass is a line breaking class as defined in UAX #14.
type LineBreakClass int8

// Line breaking classes. The order is not significant, with the exception
// of XXClass being the zero value.
const (
	XXClass  LineBreakClass = iota // Unknown
	BKClass                        // Mandatory Break
	CRClass                        // Carriage Return
	LFClass                        // Line Feed
	CMClass                        // Combining Mark
	NLClass                        // Next Line
	SGClass                        // Surrogate
	WJClass                        // Word Joiner
	ZWClass                        // Zero Width Space
	GLClass                        // Non-breaking ("Glue")
	SPClass                        // Space
	ZWJClass                       // Zero Width Joiner
	B2Class                        // Break Opportunity Before and After
	BAClass                        // Break After
	BBClass                        // Break Before
	HYClass                        // Hyphen
	CBClass                        // Contingent Break Opportunity
	CLClass                        // Close Punctuation
	CPClass                        // Close Parenthesis
	EXClass                        // Exclamation/Interrogation
	INClass                        // Inseparable
	NSClass                        // Nonstarter
	OPClass                        // Open Punctuation
	QUClass                        // Quotation
	ISClass                        // Infix Numeric Separator
	NUClass                        // Numeric
	POClass                        // Postfix Numeric
	PRClass                        // Prefix Numeric
	SYClass                        // Symbols Allowing Break After
	AIClass                        // Ambiguous (Alphabetic or Ideographic)
	ALClass                        // Alphabetic
	CJClass                        // Conditional Japanese Starter
	EBClass                        // Emoji Base
	EMClass                        // Emoji Modifier
	H2Class                        // Hangul LV Syllable
	H3Class                        // Hangul LVT Syllable
	HLClass                        // Hebrew Letter
	IDClass                        // Ideographic
	JLClass                        // Hangul L Jamo
	JVClass                        // Hangul V Jamo
	JTClass                        // Hangul T Jamo
	RIClass                        // Regional Indicator
	SAClass                        // Complex Context Dependent (South East Asian)
	AKClass                        // Aksara
	APClass                        // Aksara Pre-Base
	ASClass                        // Aksara Start
	VFClass                        // Virama Final
	VIClass                        // Virama
	HHClass                        // Unambiguous Hyphen
	maxLineBreakClass
)

var lineBreakClassNames = [...]string{
	"XX", "BK", "CR", "LF", "CM", "NL", "SG", "WJ", "ZW", "GL", "SP", "ZWJ",
	"B2", "BA", "BB", "HY", "CB", "CL", "CP", "EX", "IN", "NS", "OP", "QU",
	"IS", "NU", "PO", "PR", "SY", "AI", "AL", "CJ", "EB", "EM", "H2", "H3",
	"HL", "ID", "JL", "JV", "JT", "RI", "SA", "AK", "AP", "AS", "VF", "VI", "HH",
}

func (c LineBreakClass) String() string {
	if c < 0 || c >= maxLineBreakClass {
		return "XX"
	}
	return lineBreakClassNames[c]
}

// ParseLineBreakClass returns the class for a UCD short name, e.g. "AL".
// Unknown names yield XXClass and false.
func ParseLineBreakClass(name string) (LineBreakClass, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range lineBreakClassNames {
		if n == name {
			return LineBreakClass(i), true
		}
	}
	return XXClass, false
}

// GeneralCategory is the Unicode General_Category property of a character.
type GeneralCategory int8

// General categories. Cn is the zero value and is assigned to every code
// point not listed in the Unicode character database.
const (
	Cn GeneralCategory = iota
	Lu
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co
	maxGeneralCategory
)

var generalCategoryNames = [...]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

func (gc GeneralCategory) String() string {
	if gc < 0 || gc >= maxGeneralCategory {
		return "Cn"
	}
	return generalCategoryNames[gc]
}

// IsMark is true for non-spacing and spacing combining marks (Mn, Mc).
func (gc GeneralCategory) IsMark() bool {
	return gc == Mn || gc == Mc
}
