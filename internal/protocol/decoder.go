// Package protocol decodes the byte stream sent to an HP82240B printer.
//
// The printer understands printable characters, two line terminators and a
// handful of commands introduced by an escape byte. One of those commands
// switches into graphics mode, where the following bytes are raw 8-dot columns.
package protocol

import (
	"tomgalvin.uk/hp82240/internal/font"
)

// Control characters
const (
	LF  = 0x04
	EOL = 0x0A
	Esc = 0x1B
)

// Commands that may follow an escape byte. Any value up to GraphicsMax starts
// a graphics block of that many bytes instead.
const (
	CmdReset        = 255
	CmdSelfTest     = 254
	CmdExpandedOn   = 253
	CmdExpandedOff  = 252
	CmdUnderlineOn  = 251
	CmdUnderlineOff = 250
	CmdECMA94       = 249
	CmdRoman8       = 248

	GraphicsMax = 166
)

type decoderMode int

const (
	modeNormal decoderMode = iota
	modeEscape
	modeGraphics
)

// State is the part of the printer that is changed by the byte stream.
type State struct {
	EscapePending     bool
	GraphicsRemaining int
	CodePage          font.CodePage
	Underline         bool
	Expanded          bool
}

// Decoder turns bytes into actions. It is total: every byte in every state
// has a defined outcome, and malformed input is never an error.
type Decoder struct {
	mode      decoderMode
	remaining int
	page      font.CodePage
	underline bool
	expanded  bool
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// State returns a snapshot of the decoder state.
func (d *Decoder) State() State {
	return State{
		EscapePending:     d.mode == modeEscape,
		GraphicsRemaining: d.remaining,
		CodePage:          d.page,
		Underline:         d.underline,
		Expanded:          d.expanded,
	}
}

// Reset puts the decoder back into its power-on state: Roman-8, normal width,
// no underline, nothing pending.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Decode consumes one byte. It returns the resulting action, if any.
func (d *Decoder) Decode(b byte) (Action, bool) {
	switch d.mode {
	case modeGraphics:
		d.remaining--
		if d.remaining == 0 {
			d.mode = modeNormal
		}
		return Action{Kind: DrawGraphicsColumn, Value: b}, true
	case modeEscape:
		d.mode = modeNormal
		return d.command(b)
	}

	switch {
	case b == EOL:
		return Action{Kind: EndOfLine}, true
	case b == LF:
		return Action{Kind: LineFeed}, true
	case b == Esc:
		d.mode = modeEscape
		return Action{}, false
	case b >= font.FirstPrintable:
		return Action{
			Kind:      DrawGlyph,
			Value:     b,
			CodePage:  d.page,
			Expanded:  d.expanded,
			Underline: d.underline,
		}, true
	default:
		return Action{}, false
	}
}

func (d *Decoder) command(b byte) (Action, bool) {
	switch b {
	case CmdReset:
		d.Reset()
		return Action{Kind: ResetPrinter}, true
	case CmdSelfTest:
		return Action{Kind: SelfTest}, true
	case CmdExpandedOn, CmdExpandedOff:
		d.expanded = b == CmdExpandedOn
		return Action{Kind: SetExpanded, Flag: d.expanded}, true
	case CmdUnderlineOn, CmdUnderlineOff:
		d.underline = b == CmdUnderlineOn
		return Action{Kind: SetUnderline, Flag: d.underline}, true
	case CmdECMA94:
		d.page = font.ECMA94
		return Action{Kind: SetCodePage, CodePage: d.page}, true
	case CmdRoman8:
		d.page = font.Roman8
		return Action{Kind: SetCodePage, CodePage: d.page}, true
	}
	if b <= GraphicsMax && b > 0 {
		d.mode = modeGraphics
		d.remaining = int(b)
	}
	return Action{}, false
}

// DecodeAll decodes a whole sequence and collects the actions.
func (d *Decoder) DecodeAll(data []byte) []Action {
	actions := make([]Action, 0, len(data))
	for _, b := range data {
		if a, ok := d.Decode(b); ok {
			actions = append(actions, a)
		}
	}
	return actions
}
