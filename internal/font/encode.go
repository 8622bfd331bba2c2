package font

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Replacement is written for characters a code page cannot print.
const Replacement = '?'

var roman8Bytes = reverse(&roman8Layout)

func reverse(layout *[Size]rune) map[rune]byte {
	m := make(map[rune]byte, Size)
	for i, r := range layout {
		if r == undefined {
			continue
		}
		if _, ok := m[r]; !ok {
			m[r] = byte(i + FirstPrintable)
		}
	}
	return m
}

// Encode converts text into the bytes that print it in the given code page.
// Newlines become end-of-line bytes; other control characters and characters
// missing from the page are replaced.
func Encode(page CodePage, text string) []byte {
	if page == ECMA94 {
		return encodeLatin1(text)
	}
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r == '\n' {
			out = append(out, '\n')
			continue
		}
		if b, ok := roman8Bytes[r]; ok {
			out = append(out, b)
		} else {
			out = append(out, Replacement)
		}
	}
	return out
}

// ECMA-94 is ISO 8859-1 for everything the printer can print.
func encodeLatin1(text string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(text))
	if err != nil {
		// ReplaceUnsupported only fails on malformed encoders.
		return []byte(text)
	}
	for i, b := range out {
		if (b < FirstPrintable && b != '\n') || (b >= 0x7f && b < 0xa0) {
			out[i] = Replacement
		}
	}
	return out
}
