package uax14

import (
	"github.com/npillmayer/textpipe/ucd"
)

// Shorthands for the line breaking classes, to keep the rules readable.
const (
	AL  = ucd.ALClass
	AK  = ucd.AKClass
	AP  = ucd.APClass
	AS  = ucd.ASClass
	B2  = ucd.B2Class
	BA  = ucd.BAClass
	BB  = ucd.BBClass
	BK  = ucd.BKClass
	CB  = ucd.CBClass
	CL  = ucd.CLClass
	CM  = ucd.CMClass
	CP  = ucd.CPClass
	CR  = ucd.CRClass
	EB  = ucd.EBClass
	EM  = ucd.EMClass
	EX  = ucd.EXClass
	GL  = ucd.GLClass
	H2  = ucd.H2Class
	H3  = ucd.H3Class
	HH  = ucd.HHClass
	HL  = ucd.HLClass
	HY  = ucd.HYClass
	ID  = ucd.IDClass
	IN  = ucd.INClass
	IS  = ucd.ISClass
	JL  = ucd.JLClass
	JT  = ucd.JTClass
	JV  = ucd.JVClass
	LF  = ucd.LFClass
	NL  = ucd.NLClass
	NS  = ucd.NSClass
	NU  = ucd.NUClass
	OP  = ucd.OPClass
	PO  = ucd.POClass
	PR  = ucd.PRClass
	QU  = ucd.QUClass
	RI  = ucd.RIClass
	SP  = ucd.SPClass
	SY  = ucd.SYClass
	VF  = ucd.VFClass
	VI  = ucd.VIClass
	WJ  = ucd.WJClass
	ZW  = ucd.ZWClass
	ZWJ = ucd.ZWJClass
)

// decide returns true if a line may start at position i, 0 < i < len(cps),
// together with the name of the deciding rule.
//
// The effective class of the character before the break position is found
// by skipping combining marks (LB9), the class after is the class at i.
func (lw *LineWrap) decide(i int) (bool, string) {
	beforeRaw := lw.cls[i-1]
	afterRaw := lw.cls[i]
	// LB9: X (CM | ZWJ)* ⟼ X, where X is not one of BK CR LF NL SP ZW
	if lw.isCombining(i) && !isLB9Exception(beforeRaw) {
		return false, "LB9"
	}
	before, bIdx := lw.base(i - 1)
	after := afterRaw
	if lw.isCombining(i) { // LB10
		after = AL
	}
	//
	// LB4–LB6: hard line breaks
	switch {
	case before == BK:
		return true, "LB4"
	case before == CR && after == LF:
		return false, "LB5"
	case before == CR || before == LF || before == NL:
		return true, "LB5"
	case after == BK || after == CR || after == LF || after == NL:
		return false, "LB6"
	}
	// LB7: × SP, × ZW
	if after == SP || after == ZW {
		return false, "LB7"
	}
	// LB8: ZW SP* ÷
	if c, _, _ := lw.skipSpacesBack(before, bIdx); c == ZW {
		return true, "LB8"
	}
	// LB8a: ZWJ ×
	if beforeRaw == ZWJ {
		return false, "LB8a"
	}
	// LB11: × WJ, WJ ×
	if before == WJ || after == WJ {
		return false, "LB11"
	}
	// LB12: GL ×
	if before == GL {
		return false, "LB12"
	}
	// LB12a: [^SP BA HY HH] × GL
	if after == GL && before != SP && before != BA && before != HY && before != HH {
		return false, "LB12a"
	}
	// LB13: × CL, × CP, × EX, × SY
	if after == CL || after == CP || after == EX || after == SY {
		return false, "LB13"
	}
	// LB14: OP SP* ×
	c, k, ok := lw.skipSpacesBack(before, bIdx)
	if ok && c == OP {
		return false, "LB14"
	}
	// LB15a: (sot | BK | CR | LF | NL | OP | QU | GL | SP | ZW) [\p{Pi}&QU] SP* ×
	if ok && c == QU && lw.isPi(k) {
		pc, _, pok := lw.prev(k)
		if !pok || isLB15aContext(pc) {
			return false, "LB15a"
		}
	}
	// LB15b: × [\p{Pf}&QU] ( SP | GL | WJ | CL | QU | CP | EX | IS | SY | BK | CR | LF | NL | ZW | eot)
	if after == QU && lw.isPf(i) {
		nc, _, nok := lw.next(i)
		if !nok || isLB15bContext(nc) {
			return false, "LB15b"
		}
	}
	// LB15c: SP ÷ IS NU
	if before == SP && after == IS {
		if nc, _, nok := lw.next(i); nok && nc == NU {
			return true, "LB15c"
		}
	}
	// LB15d: × IS
	if after == IS {
		return false, "LB15d"
	}
	// LB16: (CL | CP) SP* × NS
	if after == NS && ok && (c == CL || c == CP) {
		return false, "LB16"
	}
	// LB17: B2 SP* × B2
	if after == B2 && ok && c == B2 {
		return false, "LB17"
	}
	// LB18: SP ÷
	if before == SP {
		return true, "LB18"
	}
	// LB19: × [ QU - \p{Pi} ], [ QU - \p{Pf} ] ×
	if after == QU && !lw.isPi(i) {
		return false, "LB19"
	}
	if before == QU && !lw.isPf(bIdx) {
		return false, "LB19"
	}
	// LB19a: quotation marks between East Asian characters
	if after == QU {
		if !lw.isEastAsian(bIdx) {
			return false, "LB19a"
		}
		if _, nk, nok := lw.next(i); !nok || !lw.isEastAsian(nk) {
			return false, "LB19a"
		}
	}
	if before == QU {
		if !lw.isEastAsian(i) {
			return false, "LB19a"
		}
		if _, pk, pok := lw.prev(bIdx); !pok || !lw.isEastAsian(pk) {
			return false, "LB19a"
		}
	}
	// LB20: ÷ CB, CB ÷
	if before == CB || after == CB {
		return true, "LB20"
	}
	// LB20a: (sot | BK | CR | LF | NL | SP | ZW | CB | GL) (HY | HH) × (AL | HL)
	if (before == HY || before == HH) && (after == AL || after == HL) {
		pc, _, pok := lw.prev(bIdx)
		if !pok || isLB20aContext(pc) {
			return false, "LB20a"
		}
	}
	// LB21: × BA, × HH, × HY, × NS, BB ×
	if after == BA || after == HH || after == HY || after == NS || before == BB {
		return false, "LB21"
	}
	// LB21a: HL (HY | HH) × [^HL]
	if (before == HY || before == HH) && after != HL {
		if pc, _, pok := lw.prev(bIdx); pok && pc == HL {
			return false, "LB21a"
		}
	}
	// LB21b: SY × HL
	if before == SY && after == HL {
		return false, "LB21b"
	}
	// LB22: × IN
	if after == IN {
		return false, "LB22"
	}
	// LB23: (AL | HL) × NU, NU × (AL | HL)
	if (before == AL || before == HL) && after == NU {
		return false, "LB23"
	}
	if before == NU && (after == AL || after == HL) {
		return false, "LB23"
	}
	// LB23a: PR × (ID | EB | EM), (ID | EB | EM) × PO
	if before == PR && (after == ID || after == EB || after == EM) {
		return false, "LB23a"
	}
	if (before == ID || before == EB || before == EM) && after == PO {
		return false, "LB23a"
	}
	// LB24: (PR | PO) × (AL | HL), (AL | HL) × (PR | PO)
	if (before == PR || before == PO) && (after == AL || after == HL) {
		return false, "LB24"
	}
	if (before == AL || before == HL) && (after == PR || after == PO) {
		return false, "LB24"
	}
	// LB25: numbers
	if lw.inhibitsNumeric(before, bIdx, after, i) {
		return false, "LB25"
	}
	// LB26: Korean syllable blocks
	if before == JL && (after == JL || after == JV || after == H2 || after == H3) {
		return false, "LB26"
	}
	if (before == JV || before == H2) && (after == JV || after == JT) {
		return false, "LB26"
	}
	if (before == JT || before == H3) && after == JT {
		return false, "LB26"
	}
	// LB27: Korean syllable blocks with prefix and postfix numerics
	if isKorean(before) && after == PO {
		return false, "LB27"
	}
	if before == PR && isKorean(after) {
		return false, "LB27"
	}
	// LB28: (AL | HL) × (AL | HL)
	if (before == AL || before == HL) && (after == AL || after == HL) {
		return false, "LB28"
	}
	// LB28a: Brahmic orthographic syllables
	if lw.inhibitsAksara(before, bIdx, after, i) {
		return false, "LB28a"
	}
	// LB29: IS × (AL | HL)
	if before == IS && (after == AL || after == HL) {
		return false, "LB29"
	}
	// LB30: (AL | HL | NU) × [OP-$EastAsian], [CP-$EastAsian] × (AL | HL | NU)
	if (before == AL || before == HL || before == NU) && after == OP && !lw.isEastAsian(i) {
		return false, "LB30"
	}
	if before == CP && !lw.isEastAsian(bIdx) && (after == AL || after == HL || after == NU) {
		return false, "LB30"
	}
	// LB30a: sot (RI RI)* RI × RI, [^RI] (RI RI)* RI × RI
	if before == RI && after == RI {
		cnt := 0
		for c, k, ok := before, bIdx, true; ok && c == RI; c, k, ok = lw.prev(k) {
			cnt++
		}
		if cnt%2 == 1 {
			return false, "LB30a"
		}
	}
	// LB30b: EB × EM, [\p{Extended_Pictographic}&\p{Cn}] × EM
	if after == EM {
		if before == EB {
			return false, "LB30b"
		}
		r := lw.cps[bIdx]
		if lw.props.IsExtendedPictographic(r) && lw.props.GeneralCategory(r) == ucd.Cn {
			return false, "LB30b"
		}
	}
	// LB31: ALL ÷ ALL
	return true, "LB31"
}

// LB25: do not break between the following pairs of classes relevant to numbers
//
//	NU ( SY | IS )* ( CL | CP )? × ( PO | PR )
//	( PO | PR ) × OP IS? NU
//	( PO | PR | HY | IS ) × NU
//	NU ( SY | IS )* × NU
func (lw *LineWrap) inhibitsNumeric(before ucd.LineBreakClass, bIdx int, after ucd.LineBreakClass, i int) bool {
	switch after {
	case PO, PR:
		c, k, ok := before, bIdx, true
		if c == CL || c == CP {
			c, k, ok = lw.prev(k)
		}
		for ok && (c == SY || c == IS) {
			c, k, ok = lw.prev(k)
		}
		return ok && c == NU
	case OP:
		if before != PO && before != PR {
			return false
		}
		c, k, ok := lw.next(i)
		if ok && c == IS {
			c, _, ok = lw.next(k)
		}
		return ok && c == NU
	case NU:
		switch before {
		case PO, PR, HY, IS, NU:
			return true
		case SY:
			c, k, ok := before, bIdx, true
			for ok && (c == SY || c == IS) {
				c, k, ok = lw.prev(k)
			}
			return ok && c == NU
		}
	}
	return false
}

// LB28a: do not break inside the orthographic syllables of Brahmic scripts
//
//	AP × (AK | ◌ | AS)
//	(AK | ◌ | AS) × (VF | VI)
//	(AK | ◌ | AS) VI × (AK | ◌)
//	(AK | ◌ | AS) × (AK | ◌ | AS) VF
//
// where ◌ is U+25CC DOTTED CIRCLE.
func (lw *LineWrap) inhibitsAksara(before ucd.LineBreakClass, bIdx int, after ucd.LineBreakClass, i int) bool {
	if !lw.props.IsBrahmicForLB28a(lw.cps[i]) && !lw.props.IsBrahmicForLB28a(lw.cps[bIdx]) &&
		!lw.props.IsDottedCircle(lw.cps[i]) && !lw.props.IsDottedCircle(lw.cps[bIdx]) {
		return false
	}
	if before == AP && lw.isAksara(after, i) {
		return true
	}
	if lw.isAksara(before, bIdx) && (after == VF || after == VI) {
		return true
	}
	if before == VI && (after == AK || lw.props.IsDottedCircle(lw.cps[i])) {
		if pc, pk, ok := lw.prev(bIdx); ok && lw.isAksara(pc, pk) {
			return true
		}
	}
	if lw.isAksara(before, bIdx) && lw.isAksara(after, i) {
		if nc, _, ok := lw.next(i); ok && nc == VF {
			return true
		}
	}
	return false
}

// --- Helpers ---------------------------------------------------------------

func (lw *LineWrap) isCombining(i int) bool {
	return lw.cls[i] == CM || lw.cls[i] == ZWJ
}

// base returns the effective class of the character sequence ending at i,
// together with the position of its base character (LB9, LB10).
func (lw *LineWrap) base(i int) (ucd.LineBreakClass, int) {
	k := i
	for k >= 0 && lw.isCombining(k) {
		k--
	}
	if k < 0 {
		return AL, 0 // LB10
	}
	if k != i && isLB9Exception(lw.cls[k]) {
		return AL, k + 1 // LB10
	}
	return lw.cls[k], k
}

// prev returns the effective class and base position of the character
// sequence before the one with base position k. ok is false at the start
// of text.
func (lw *LineWrap) prev(k int) (ucd.LineBreakClass, int, bool) {
	if k <= 0 {
		return AL, 0, false
	}
	c, j := lw.base(k - 1)
	return c, j, true
}

// next returns the class and position of the next character after i,
// skipping combining marks. ok is false at the end of text.
func (lw *LineWrap) next(i int) (ucd.LineBreakClass, int, bool) {
	k := i + 1
	for k < len(lw.cls) && lw.isCombining(k) {
		k++
	}
	if k >= len(lw.cls) {
		return AL, k, false
	}
	return lw.cls[k], k, true
}

// skipSpacesBack skips over SP* backwards, starting with a sequence of class c
// at base position k. ok is false if the start of text has been reached.
func (lw *LineWrap) skipSpacesBack(c ucd.LineBreakClass, k int) (ucd.LineBreakClass, int, bool) {
	ok := true
	for ok && c == SP {
		c, k, ok = lw.prev(k)
	}
	return c, k, ok
}

func (lw *LineWrap) isPi(k int) bool {
	return lw.props.GeneralCategory(lw.cps[k]) == ucd.Pi
}

func (lw *LineWrap) isPf(k int) bool {
	return lw.props.GeneralCategory(lw.cps[k]) == ucd.Pf
}

// isEastAsian is true for East_Asian_Width F, W and H.
func (lw *LineWrap) isEastAsian(k int) bool {
	return lw.props.EastAsianWidth(lw.cps[k]).IsWide()
}

func (lw *LineWrap) isAksara(c ucd.LineBreakClass, k int) bool {
	return c == AK || c == AS || lw.props.IsDottedCircle(lw.cps[k])
}

func isLB9Exception(c ucd.LineBreakClass) bool {
	switch c {
	case BK, CR, LF, NL, SP, ZW:
		return true
	}
	return false
}

func isLB15aContext(c ucd.LineBreakClass) bool {
	switch c {
	case BK, CR, LF, NL, OP, QU, GL, SP, ZW:
		return true
	}
	return false
}

func isLB15bContext(c ucd.LineBreakClass) bool {
	switch c {
	case SP, GL, WJ, CL, QU, CP, EX, IS, SY, BK, CR, LF, NL, ZW:
		return true
	}
	return false
}

func isLB20aContext(c ucd.LineBreakClass) bool {
	switch c {
	case BK, CR, LF, NL, SP, ZW, CB, GL:
		return true
	}
	return false
}

func isKorean(c ucd.LineBreakClass) bool {
	switch c {
	case JL, JV, JT, H2, H3:
		return true
	}
	return false
}
