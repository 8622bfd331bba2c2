package font

// undefined is printed for slots the printer has no character for.
const undefined = '\u2592'

// roman8Layout maps bytes 32..255 to the characters of the HP Roman-8 set.
var roman8Layout = [Size]rune{
	' ', '!', '"', '#', '$', '%', '&', '\'',                                        // 0x20
	'(', ')', '*', '+', ',', '-', '.', '/',                                         // 0x28
	'0', '1', '2', '3', '4', '5', '6', '7',                                         // 0x30
	'8', '9', ':', ';', '<', '=', '>', '?',                                         // 0x38
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',                                         // 0x40
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',                                         // 0x48
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',                                         // 0x50
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',                                        // 0x58
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g',                                         // 0x60
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',                                         // 0x68
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',                                         // 0x70
	'x', 'y', 'z', '{', '|', '}', '~', '\u2592',                                    // 0x78
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x80
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x88
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x90
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x98
	'\u00a0', '\u00c0', '\u00c2', '\u00c8', '\u00ca', '\u00cb', '\u00ce', '\u00cf', // 0xa0
	'\u00b4', '\u02cb', '\u02c6', '\u00a8', '\u02dc', '\u00d9', '\u00db', '\u20a4', // 0xa8
	'\u00af', '\u00dd', '\u00fd', '\u00b0', '\u00c7', '\u00e7', '\u00d1', '\u00f1', // 0xb0
	'\u00a1', '\u00bf', '\u00a4', '\u00a3', '\u00a5', '\u00a7', '\u0192', '\u00a2', // 0xb8
	'\u00e2', '\u00ea', '\u00f4', '\u00fb', '\u00e1', '\u00e9', '\u00f3', '\u00fa', // 0xc0
	'\u00e0', '\u00e8', '\u00f2', '\u00f9', '\u00e4', '\u00eb', '\u00f6', '\u00fc', // 0xc8
	'\u00c5', '\u00ee', '\u00d8', '\u00c6', '\u00e5', '\u00ed', '\u00f8', '\u00e6', // 0xd0
	'\u00c4', '\u00ec', '\u00d6', '\u00dc', '\u00c9', '\u00ef', '\u00df', '\u00d4', // 0xd8
	'\u00c1', '\u00c3', '\u00e3', '\u00d0', '\u00f0', '\u00cd', '\u00cc', '\u00d3', // 0xe0
	'\u00d2', '\u00d5', '\u00f5', '\u0160', '\u0161', '\u00da', '\u0178', '\u00ff', // 0xe8
	'\u00de', '\u00fe', '\u00b7', '\u00b5', '\u00b6', '\u00be', '\u2014', '\u00bc', // 0xf0
	'\u00bd', '\u00aa', '\u00ba', '\u00ab', '\u25a0', '\u00bb', '\u00b1', '\u2592', // 0xf8
}

// ecma94Layout maps bytes 32..255 to the characters of ECMA-94 (ISO 8859-1).
var ecma94Layout = [Size]rune{
	' ', '!', '"', '#', '$', '%', '&', '\'',                                        // 0x20
	'(', ')', '*', '+', ',', '-', '.', '/',                                         // 0x28
	'0', '1', '2', '3', '4', '5', '6', '7',                                         // 0x30
	'8', '9', ':', ';', '<', '=', '>', '?',                                         // 0x38
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',                                         // 0x40
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',                                         // 0x48
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',                                         // 0x50
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',                                        // 0x58
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g',                                         // 0x60
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',                                         // 0x68
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',                                         // 0x70
	'x', 'y', 'z', '{', '|', '}', '~', '\u2592',                                    // 0x78
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x80
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x88
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x90
	'\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', '\u2592', // 0x98
	'\u00a0', '\u00a1', '\u00a2', '\u00a3', '\u00a4', '\u00a5', '\u00a6', '\u00a7', // 0xa0
	'\u00a8', '\u00a9', '\u00aa', '\u00ab', '\u00ac', '\u00ad', '\u00ae', '\u00af', // 0xa8
	'\u00b0', '\u00b1', '\u00b2', '\u00b3', '\u00b4', '\u00b5', '\u00b6', '\u00b7', // 0xb0
	'\u00b8', '\u00b9', '\u00ba', '\u00bb', '\u00bc', '\u00bd', '\u00be', '\u00bf', // 0xb8
	'\u00c0', '\u00c1', '\u00c2', '\u00c3', '\u00c4', '\u00c5', '\u00c6', '\u00c7', // 0xc0
	'\u00c8', '\u00c9', '\u00ca', '\u00cb', '\u00cc', '\u00cd', '\u00ce', '\u00cf', // 0xc8
	'\u00d0', '\u00d1', '\u00d2', '\u00d3', '\u00d4', '\u00d5', '\u00d6', '\u00d7', // 0xd0
	'\u00d8', '\u00d9', '\u00da', '\u00db', '\u00dc', '\u00dd', '\u00de', '\u00df', // 0xd8
	'\u00e0', '\u00e1', '\u00e2', '\u00e3', '\u00e4', '\u00e5', '\u00e6', '\u00e7', // 0xe0
	'\u00e8', '\u00e9', '\u00ea', '\u00eb', '\u00ec', '\u00ed', '\u00ee', '\u00ef', // 0xe8
	'\u00f0', '\u00f1', '\u00f2', '\u00f3', '\u00f4', '\u00f5', '\u00f6', '\u00f7', // 0xf0
	'\u00f8', '\u00f9', '\u00fa', '\u00fb', '\u00fc', '\u00fd', '\u00fe', '\u00ff', // 0xf8
}
