package ucd

import "unicode"

// Classes AK, AP, AS, VF and VI have been introduced with Unicode 15.1,
// HH with Unicode 16.0. The ranges below cover the letters, viramas and
// digits of the scripts concerned, which is sufficient for LB28a and LB20a.

var overlayHH = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x058a, 0x058a, 1},
		{0x05be, 0x05be, 1},
		{0x1400, 0x1400, 1},
		{0x2010, 0x2010, 1},
		{0x2012, 0x2013, 1},
		{0x2e17, 0x2e17, 1},
		{0x2e40, 0x2e40, 1},
		{0x2e5d, 0x2e5d, 1},
	},
	R32: []unicode.Range32{
		{0x10d6e, 0x10d6e, 1},
		{0x10ead, 0x10ead, 1},
	},
}

var overlayAK = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1a00, 0x1a16, 1}, // Buginese
		{0x1b05, 0x1b33, 1}, // Balinese
		{0x1b45, 0x1b4c, 1},
		{0x1bc0, 0x1be5, 1}, // Batak
		{0xa984, 0xa9b2, 1}, // Javanese
	},
	R32: []unicode.Range32{
		{0x11ee0, 0x11ef1, 1}, // Makasar
		{0x11f04, 0x11f10, 1}, // Kawi
		{0x11f12, 0x11f33, 1},
	},
}

var overlayAP = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x11f02, 0x11f02, 1},
	},
}

var overlayAS = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1b50, 0x1b59, 1},
		{0xa9d0, 0xa9d9, 1},
	},
	R32: []unicode.Range32{
		{0x11f50, 0x11f59, 1},
	},
}

var overlayVF = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1bf2, 0x1bf3, 1},
	},
	R32: []unicode.Range32{
		{0x11f41, 0x11f41, 1},
	},
}

var overlayVI = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1b44, 0x1b44, 1},
		{0xa9c0, 0xa9c0, 1},
	},
	R32: []unicode.Range32{
		{0x11f42, 0x11f42, 1},
	},
}

func builtinOverlay() []overlayEntry {
	return []overlayEntry{
		{HHClass, overlayHH},
		{AKClass, overlayAK},
		{APClass, overlayAP},
		{ASClass, overlayAS},
		{VFClass, overlayVF},
		{VIClass, overlayVI},
	}
}

// Blocks of the scripts the Brahmic special case of LB28a applies to.
var brahmicLB28a = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0840, 0x085f, 1}, // Mandaic
		{0x0f00, 0x0fff, 1}, // Tibetan
		{0x1950, 0x197f, 1}, // Tai Le
		{0x1980, 0x19df, 1}, // New Tai Lue
		{0x1a00, 0x1a1f, 1}, // Buginese
		{0x1b00, 0x1b7f, 1}, // Balinese
		{0x1b80, 0x1bbf, 1}, // Sundanese
		{0x1bc0, 0x1bff, 1}, // Batak
		{0x1cc0, 0x1ccf, 1}, // Sundanese Supplement
		{0xa900, 0xa92f, 1}, // Kayah Li
		{0xa980, 0xa9df, 1}, // Javanese
	},
	R32: []unicode.Range32{
		{0x11600, 0x1165f, 1}, // Modi
		{0x11680, 0x116cf, 1}, // Takri
		{0x119a0, 0x119ff, 1}, // Nandinagari
		{0x11ee0, 0x11eff, 1}, // Makasar
		{0x11f00, 0x11f5f, 1}, // Kawi
	},
}
