package font

// glyphs holds the 5x8 HP82240B character shapes keyed by the rune they print.
// Each byte is one column, bit 0 at the top.
var glyphs = map[rune]Glyph{
	' ': {0x00, 0x00, 0x00, 0x00, 0x00},      // space
	'!': {0x00, 0x00, 0x5f, 0x00, 0x00},      // exclamation mark
	'"': {0x00, 0x07, 0x00, 0x07, 0x00},      // quotation mark
	'#': {0x14, 0x7f, 0x14, 0x7f, 0x14},      // number sign
	'$': {0x24, 0x2a, 0x7f, 0x2a, 0x12},      // dollar sign
	'%': {0x23, 0x13, 0x08, 0x64, 0x62},      // percent sign
	'&': {0x36, 0x49, 0x55, 0x22, 0x50},      // ampersand
	'\'': {0x00, 0x04, 0x03, 0x00, 0x00},     // apostrophe
	'(': {0x00, 0x1c, 0x22, 0x41, 0x00},      // left parenthesis
	')': {0x00, 0x41, 0x22, 0x1c, 0x00},      // right parenthesis
	'*': {0x14, 0x08, 0x3e, 0x08, 0x14},      // asterisk
	'+': {0x08, 0x08, 0x3e, 0x08, 0x08},      // plus sign
	',': {0x00, 0x50, 0x30, 0x00, 0x00},      // comma
	'-': {0x08, 0x08, 0x08, 0x08, 0x08},      // hyphen-minus
	'.': {0x00, 0x60, 0x60, 0x00, 0x00},      // full stop
	'/': {0x20, 0x10, 0x08, 0x04, 0x02},      // solidus
	'0': {0x3e, 0x51, 0x49, 0x45, 0x3e},      // digit zero
	'1': {0x00, 0x42, 0x7f, 0x40, 0x00},      // digit one
	'2': {0x42, 0x61, 0x51, 0x49, 0x46},      // digit two
	'3': {0x21, 0x41, 0x45, 0x4b, 0x31},      // digit three
	'4': {0x18, 0x14, 0x12, 0x7f, 0x10},      // digit four
	'5': {0x27, 0x45, 0x45, 0x45, 0x39},      // digit five
	'6': {0x3c, 0x4a, 0x49, 0x49, 0x30},      // digit six
	'7': {0x01, 0x71, 0x09, 0x05, 0x03},      // digit seven
	'8': {0x36, 0x49, 0x49, 0x49, 0x36},      // digit eight
	'9': {0x06, 0x49, 0x49, 0x29, 0x1e},      // digit nine
	':': {0x00, 0x36, 0x36, 0x00, 0x00},      // colon
	';': {0x00, 0x56, 0x36, 0x00, 0x00},      // semicolon
	'<': {0x08, 0x14, 0x22, 0x41, 0x00},      // less-than sign
	'=': {0x14, 0x14, 0x14, 0x14, 0x14},      // equals sign
	'>': {0x00, 0x41, 0x22, 0x14, 0x08},      // greater-than sign
	'?': {0x02, 0x01, 0x51, 0x09, 0x06},      // question mark
	'@': {0x32, 0x49, 0x79, 0x41, 0x3e},      // commercial at
	'A': {0x7e, 0x09, 0x09, 0x09, 0x7e},      // latin capital letter a
	'B': {0x7f, 0x49, 0x49, 0x49, 0x36},      // latin capital letter b
	'C': {0x3e, 0x41, 0x41, 0x41, 0x22},      // latin capital letter c
	'D': {0x7f, 0x41, 0x41, 0x22, 0x1c},      // latin capital letter d
	'E': {0x7f, 0x49, 0x49, 0x49, 0x41},      // latin capital letter e
	'F': {0x7f, 0x09, 0x09, 0x09, 0x01},      // latin capital letter f
	'G': {0x3e, 0x41, 0x49, 0x49, 0x7a},      // latin capital letter g
	'H': {0x7f, 0x08, 0x08, 0x08, 0x7f},      // latin capital letter h
	'I': {0x00, 0x41, 0x7f, 0x41, 0x00},      // latin capital letter i
	'J': {0x20, 0x40, 0x41, 0x3f, 0x01},      // latin capital letter j
	'K': {0x7f, 0x08, 0x14, 0x22, 0x41},      // latin capital letter k
	'L': {0x7f, 0x40, 0x40, 0x40, 0x40},      // latin capital letter l
	'M': {0x7f, 0x02, 0x0c, 0x02, 0x7f},      // latin capital letter m
	'N': {0x7f, 0x04, 0x08, 0x10, 0x7f},      // latin capital letter n
	'O': {0x3e, 0x41, 0x41, 0x41, 0x3e},      // latin capital letter o
	'P': {0x7f, 0x09, 0x09, 0x09, 0x06},      // latin capital letter p
	'Q': {0x3e, 0x41, 0x51, 0x21, 0x5e},      // latin capital letter q
	'R': {0x7f, 0x09, 0x19, 0x29, 0x46},      // latin capital letter r
	'S': {0x46, 0x49, 0x49, 0x49, 0x31},      // latin capital letter s
	'T': {0x01, 0x01, 0x7f, 0x01, 0x01},      // latin capital letter t
	'U': {0x3f, 0x40, 0x40, 0x40, 0x3f},      // latin capital letter u
	'V': {0x1f, 0x20, 0x40, 0x20, 0x1f},      // latin capital letter v
	'W': {0x3f, 0x40, 0x38, 0x40, 0x3f},      // latin capital letter w
	'X': {0x63, 0x14, 0x08, 0x14, 0x63},      // latin capital letter x
	'Y': {0x03, 0x04, 0x78, 0x04, 0x03},      // latin capital letter y
	'Z': {0x61, 0x51, 0x49, 0x45, 0x43},      // latin capital letter z
	'[': {0x00, 0x7f, 0x41, 0x41, 0x00},      // left square bracket
	'\\': {0x02, 0x04, 0x08, 0x10, 0x20},     // reverse solidus
	']': {0x00, 0x41, 0x41, 0x7f, 0x00},      // right square bracket
	'^': {0x04, 0x02, 0x01, 0x02, 0x04},      // circumflex accent
	'_': {0x80, 0x80, 0x80, 0x80, 0x80},      // low line
	'`': {0x00, 0x01, 0x02, 0x04, 0x00},      // grave accent
	'a': {0x20, 0x54, 0x54, 0x54, 0x78},      // latin small letter a
	'b': {0x7f, 0x48, 0x44, 0x44, 0x38},      // latin small letter b
	'c': {0x38, 0x44, 0x44, 0x44, 0x20},      // latin small letter c
	'd': {0x38, 0x44, 0x44, 0x48, 0x7f},      // latin small letter d
	'e': {0x38, 0x54, 0x54, 0x54, 0x18},      // latin small letter e
	'f': {0x08, 0x7e, 0x09, 0x01, 0x02},      // latin small letter f
	'g': {0x18, 0xa4, 0xa4, 0xa4, 0x7c},      // latin small letter g
	'h': {0x7f, 0x08, 0x04, 0x04, 0x78},      // latin small letter h
	'i': {0x00, 0x44, 0x7d, 0x40, 0x00},      // latin small letter i
	'j': {0x40, 0x80, 0x84, 0x7d, 0x00},      // latin small letter j
	'k': {0x7f, 0x10, 0x28, 0x44, 0x00},      // latin small letter k
	'l': {0x00, 0x41, 0x7f, 0x40, 0x00},      // latin small letter l
	'm': {0x7c, 0x04, 0x18, 0x04, 0x78},      // latin small letter m
	'n': {0x7c, 0x08, 0x04, 0x04, 0x78},      // latin small letter n
	'o': {0x38, 0x44, 0x44, 0x44, 0x38},      // latin small letter o
	'p': {0xfc, 0x24, 0x24, 0x24, 0x18},      // latin small letter p
	'q': {0x18, 0x24, 0x24, 0x24, 0xfc},      // latin small letter q
	'r': {0x7c, 0x08, 0x04, 0x04, 0x08},      // latin small letter r
	's': {0x48, 0x54, 0x54, 0x54, 0x20},      // latin small letter s
	't': {0x04, 0x3f, 0x44, 0x40, 0x20},      // latin small letter t
	'u': {0x3c, 0x40, 0x40, 0x20, 0x7c},      // latin small letter u
	'v': {0x1c, 0x20, 0x40, 0x20, 0x1c},      // latin small letter v
	'w': {0x3c, 0x40, 0x30, 0x40, 0x3c},      // latin small letter w
	'x': {0x44, 0x28, 0x10, 0x28, 0x44},      // latin small letter x
	'y': {0x1c, 0xa0, 0xa0, 0xa0, 0x7c},      // latin small letter y
	'z': {0x44, 0x64, 0x54, 0x4c, 0x44},      // latin small letter z
	'{': {0x00, 0x08, 0x36, 0x41, 0x00},      // left curly bracket
	'|': {0x00, 0x00, 0x7f, 0x00, 0x00},      // vertical line
	'}': {0x00, 0x41, 0x36, 0x08, 0x00},      // right curly bracket
	'~': {0x08, 0x04, 0x08, 0x10, 0x08},      // tilde
	'\u00a0': {0x00, 0x00, 0x00, 0x00, 0x00}, // no-break space
	'\u00a1': {0x00, 0x00, 0x7d, 0x00, 0x00}, // inverted exclamation mark
	'\u00a2': {0x1c, 0x22, 0x7f, 0x22, 0x00}, // cent sign
	'\u00a3': {0x48, 0x3e, 0x49, 0x41, 0x22}, // pound sign
	'\u00a4': {0x22, 0x1c, 0x14, 0x1c, 0x22}, // currency sign
	'\u00a5': {0x15, 0x16, 0x7c, 0x16, 0x15}, // yen sign
	'\u00a6': {0x00, 0x00, 0x77, 0x00, 0x00}, // broken bar
	'\u00a7': {0x02, 0x4d, 0x55, 0x59, 0x20}, // section sign
	'\u00a8': {0x00, 0x01, 0x00, 0x01, 0x00}, // diaeresis
	'\u00a9': {0x3e, 0x41, 0x5d, 0x55, 0x3e}, // copyright sign
	'\u00aa': {0x48, 0x55, 0x55, 0x55, 0x5e}, // feminine ordinal indicator
	'\u00ab': {0x08, 0x14, 0x2a, 0x14, 0x22}, // left-pointing double angle quotation mark
	'\u00ac': {0x04, 0x04, 0x04, 0x04, 0x1c}, // not sign
	'\u00ad': {0x00, 0x08, 0x08, 0x08, 0x00}, // soft hyphen
	'\u00ae': {0x3e, 0x4b, 0x55, 0x41, 0x3e}, // registered sign
	'\u00af': {0x01, 0x01, 0x01, 0x01, 0x01}, // macron
	'\u00b0': {0x06, 0x09, 0x09, 0x06, 0x00}, // degree sign
	'\u00b1': {0x44, 0x44, 0x5f, 0x44, 0x44}, // plus-minus sign
	'\u00b2': {0x00, 0x09, 0x0d, 0x0a, 0x00}, // superscript two
	'\u00b3': {0x00, 0x11, 0x15, 0x0a, 0x00}, // superscript three
	'\u00b4': {0x00, 0x00, 0x02, 0x01, 0x00}, // acute accent
	'\u00b5': {0xfc, 0x20, 0x40, 0x20, 0x3c}, // micro sign
	'\u00b6': {0x06, 0x0f, 0x7f, 0x01, 0x7f}, // pilcrow sign
	'\u00b7': {0x00, 0x00, 0x08, 0x00, 0x00}, // middle dot
	'\u00b8': {0x00, 0x80, 0x40, 0x00, 0x00}, // cedilla
	'\u00b9': {0x00, 0x0a, 0x0f, 0x08, 0x00}, // superscript one
	'\u00ba': {0x26, 0x29, 0x29, 0x29, 0x26}, // masculine ordinal indicator
	'\u00bb': {0x22, 0x14, 0x2a, 0x14, 0x08}, // right-pointing double angle quotation mark
	'\u00bc': {0x27, 0x10, 0x28, 0x74, 0x22}, // vulgar fraction one quarter
	'\u00bd': {0x27, 0x10, 0x08, 0x54, 0x72}, // vulgar fraction one half
	'\u00be': {0x25, 0x17, 0x28, 0x74, 0x22}, // vulgar fraction three quarters
	'\u00bf': {0x30, 0x48, 0x45, 0x40, 0x20}, // inverted question mark
	'\u00c0': {0xfc, 0x13, 0x12, 0x12, 0xfc}, // latin capital letter a with grave
	'\u00c1': {0xfc, 0x12, 0x12, 0x13, 0xfc}, // latin capital letter a with acute
	'\u00c2': {0xfc, 0x12, 0x13, 0x12, 0xfc}, // latin capital letter a with circumflex
	'\u00c3': {0xfc, 0x13, 0x13, 0x12, 0xfd}, // latin capital letter a with tilde
	'\u00c4': {0xfc, 0x13, 0x12, 0x13, 0xfc}, // latin capital letter a with diaeresis
	'\u00c5': {0xfc, 0x13, 0x13, 0x13, 0xfc}, // latin capital letter a with ring above
	'\u00c6': {0x7e, 0x09, 0x7f, 0x49, 0x49}, // latin capital letter ae
	'\u00c7': {0x3e, 0x41, 0xc1, 0x41, 0x22}, // latin capital letter c with cedilla
	'\u00c8': {0xfe, 0x93, 0x92, 0x92, 0x82}, // latin capital letter e with grave
	'\u00c9': {0xfe, 0x92, 0x92, 0x93, 0x82}, // latin capital letter e with acute
	'\u00ca': {0xfe, 0x92, 0x93, 0x92, 0x82}, // latin capital letter e with circumflex
	'\u00cb': {0xfe, 0x93, 0x92, 0x93, 0x82}, // latin capital letter e with diaeresis
	'\u00cc': {0x00, 0x83, 0xfe, 0x82, 0x00}, // latin capital letter i with grave
	'\u00cd': {0x00, 0x82, 0xfe, 0x83, 0x00}, // latin capital letter i with acute
	'\u00ce': {0x00, 0x82, 0xff, 0x82, 0x00}, // latin capital letter i with circumflex
	'\u00cf': {0x00, 0x83, 0xfe, 0x83, 0x00}, // latin capital letter i with diaeresis
	'\u00d0': {0x7f, 0x49, 0x49, 0x22, 0x1c}, // latin capital letter eth
	'\u00d1': {0xfe, 0x09, 0x11, 0x20, 0xff}, // latin capital letter n with tilde
	'\u00d2': {0x7c, 0x83, 0x82, 0x82, 0x7c}, // latin capital letter o with grave
	'\u00d3': {0x7c, 0x82, 0x82, 0x83, 0x7c}, // latin capital letter o with acute
	'\u00d4': {0x7c, 0x82, 0x83, 0x82, 0x7c}, // latin capital letter o with circumflex
	'\u00d5': {0x7c, 0x83, 0x83, 0x82, 0x7d}, // latin capital letter o with tilde
	'\u00d6': {0x7c, 0x83, 0x82, 0x83, 0x7c}, // latin capital letter o with diaeresis
	'\u00d7': {0x22, 0x14, 0x08, 0x14, 0x22}, // multiplication sign
	'\u00d8': {0x3e, 0x61, 0x5d, 0x43, 0x3e}, // latin capital letter o with stroke
	'\u00d9': {0x7e, 0x81, 0x80, 0x80, 0x7e}, // latin capital letter u with grave
	'\u00da': {0x7e, 0x80, 0x80, 0x81, 0x7e}, // latin capital letter u with acute
	'\u00db': {0x7e, 0x80, 0x81, 0x80, 0x7e}, // latin capital letter u with circumflex
	'\u00dc': {0x7e, 0x81, 0x80, 0x81, 0x7e}, // latin capital letter u with diaeresis
	'\u00dd': {0x06, 0x08, 0xf0, 0x09, 0x06}, // latin capital letter y with acute
	'\u00de': {0x7f, 0x12, 0x12, 0x12, 0x0c}, // latin capital letter thorn
	'\u00df': {0x7e, 0x01, 0x49, 0x4e, 0x30}, // latin small letter sharp s
	'\u00e0': {0x20, 0x55, 0x56, 0x54, 0x78}, // latin small letter a with grave
	'\u00e1': {0x20, 0x54, 0x56, 0x55, 0x78}, // latin small letter a with acute
	'\u00e2': {0x20, 0x56, 0x55, 0x56, 0x78}, // latin small letter a with circumflex
	'\u00e3': {0x22, 0x55, 0x55, 0x56, 0x79}, // latin small letter a with tilde
	'\u00e4': {0x20, 0x55, 0x54, 0x55, 0x78}, // latin small letter a with diaeresis
	'\u00e5': {0x20, 0x57, 0x55, 0x57, 0x78}, // latin small letter a with ring above
	'\u00e6': {0x24, 0x54, 0x38, 0x54, 0x58}, // latin small letter ae
	'\u00e7': {0x38, 0x44, 0xc4, 0x44, 0x20}, // latin small letter c with cedilla
	'\u00e8': {0x38, 0x55, 0x56, 0x54, 0x18}, // latin small letter e with grave
	'\u00e9': {0x38, 0x54, 0x56, 0x55, 0x18}, // latin small letter e with acute
	'\u00ea': {0x38, 0x56, 0x55, 0x56, 0x18}, // latin small letter e with circumflex
	'\u00eb': {0x38, 0x55, 0x54, 0x55, 0x18}, // latin small letter e with diaeresis
	'\u00ec': {0x00, 0x45, 0x7e, 0x40, 0x00}, // latin small letter i with grave
	'\u00ed': {0x00, 0x44, 0x7e, 0x41, 0x00}, // latin small letter i with acute
	'\u00ee': {0x00, 0x46, 0x7d, 0x42, 0x00}, // latin small letter i with circumflex
	'\u00ef': {0x00, 0x45, 0x7c, 0x41, 0x00}, // latin small letter i with diaeresis
	'\u00f0': {0x20, 0x55, 0x52, 0x55, 0x38}, // latin small letter eth
	'\u00f1': {0x7e, 0x09, 0x05, 0x06, 0x79}, // latin small letter n with tilde
	'\u00f2': {0x38, 0x45, 0x46, 0x44, 0x38}, // latin small letter o with grave
	'\u00f3': {0x38, 0x44, 0x46, 0x45, 0x38}, // latin small letter o with acute
	'\u00f4': {0x38, 0x46, 0x45, 0x46, 0x38}, // latin small letter o with circumflex
	'\u00f5': {0x3a, 0x45, 0x45, 0x46, 0x39}, // latin small letter o with tilde
	'\u00f6': {0x38, 0x45, 0x44, 0x45, 0x38}, // latin small letter o with diaeresis
	'\u00f7': {0x08, 0x08, 0x2a, 0x08, 0x08}, // division sign
	'\u00f8': {0x38, 0x64, 0x54, 0x4c, 0x38}, // latin small letter o with stroke
	'\u00f9': {0x3c, 0x41, 0x42, 0x20, 0x7c}, // latin small letter u with grave
	'\u00fa': {0x3c, 0x40, 0x42, 0x21, 0x7c}, // latin small letter u with acute
	'\u00fb': {0x3c, 0x42, 0x41, 0x22, 0x7c}, // latin small letter u with circumflex
	'\u00fc': {0x3c, 0x41, 0x40, 0x21, 0x7c}, // latin small letter u with diaeresis
	'\u00fd': {0x1c, 0xa0, 0xa2, 0xa1, 0x7c}, // latin small letter y with acute
	'\u00fe': {0xfe, 0x24, 0x24, 0x24, 0x18}, // latin small letter thorn
	'\u00ff': {0x1c, 0xa1, 0xa0, 0xa1, 0x7c}, // latin small letter y with diaeresis
	'\u0160': {0x8d, 0x92, 0x92, 0x92, 0x63}, // latin capital letter s with caron
	'\u0161': {0x48, 0x55, 0x56, 0x55, 0x20}, // latin small letter s with caron
	'\u0178': {0x06, 0x09, 0xf0, 0x09, 0x06}, // latin capital letter y with diaeresis
	'\u0192': {0x40, 0x44, 0x3e, 0x05, 0x01}, // latin small letter f with hook
	'\u02c6': {0x00, 0x02, 0x01, 0x02, 0x00}, // modifier letter circumflex accent
	'\u02cb': {0x00, 0x01, 0x02, 0x00, 0x00}, // modifier letter grave accent
	'\u02dc': {0x02, 0x01, 0x01, 0x02, 0x01}, // small tilde
	'\u2014': {0x08, 0x08, 0x08, 0x08, 0x08}, // em dash
	'\u20a4': {0x54, 0x3e, 0x55, 0x41, 0x22}, // lira sign
	'\u2592': {0x7f, 0x7f, 0x7f, 0x7f, 0x7f}, // medium shade
	'\u25a0': {0x00, 0x0e, 0x0e, 0x0e, 0x00}, // black square
}
