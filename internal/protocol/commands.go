// This file builds the byte sequences a calculator sends to the printer, for
// callers that produce printer input rather than consume it.

package protocol

import (
	"tomgalvin.uk/hp82240/internal/font"
)

func command(c byte) []byte {
	return []byte{Esc, c}
}

func ResetCommand() []byte {
	return command(CmdReset)
}

func SelfTestCommand() []byte {
	return command(CmdSelfTest)
}

func ExpandedCommand(on bool) []byte {
	if on {
		return command(CmdExpandedOn)
	}
	return command(CmdExpandedOff)
}

func UnderlineCommand(on bool) []byte {
	if on {
		return command(CmdUnderlineOn)
	}
	return command(CmdUnderlineOff)
}

func CodePageCommand(page font.CodePage) []byte {
	if page == font.ECMA94 {
		return command(CmdECMA94)
	}
	return command(CmdRoman8)
}

// Graphics wraps raw columns in graphics blocks, splitting them so that no
// block is longer than GraphicsMax.
func Graphics(columns []byte) []byte {
	d := []byte{}
	for start := 0; start < len(columns); start += GraphicsMax {
		end := start + GraphicsMax
		if end > len(columns) {
			end = len(columns)
		}
		d = append(d, Esc, byte(end-start))
		d = append(d, columns[start:end]...)
	}
	return d
}

// Text encodes a string for the given code page, prefixed by the command that
// selects it.
func Text(page font.CodePage, s string) []byte {
	return append(CodePageCommand(page), font.Encode(page, s)...)
}

// Restore returns the bytes that bring a decoder in its power-on state into
// state s. Nothing is drawn by them.
func (s State) Restore() []byte {
	d := []byte{}
	if s.CodePage != font.Roman8 {
		d = append(d, CodePageCommand(s.CodePage)...)
	}
	if s.Expanded {
		d = append(d, ExpandedCommand(true)...)
	}
	if s.Underline {
		d = append(d, UnderlineCommand(true)...)
	}
	switch {
	case s.GraphicsRemaining > 0:
		d = append(d, Esc, byte(s.GraphicsRemaining))
	case s.EscapePending:
		d = append(d, Esc)
	}
	return d
}
