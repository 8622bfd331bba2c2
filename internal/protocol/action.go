package protocol

import (
	"fmt"

	"tomgalvin.uk/hp82240/internal/font"
)

type ActionKind int

const (
	DrawGlyph ActionKind = iota + 1
	DrawGraphicsColumn
	// LineFeed advances the paper one line.
	LineFeed
	// EndOfLine is a line feed that also returns the cursor to the margin.
	EndOfLine
	ResetPrinter
	SelfTest
	SetExpanded
	SetUnderline
	SetCodePage
)

var actionNames = map[ActionKind]string{
	DrawGlyph:          "DrawGlyph",
	DrawGraphicsColumn: "DrawGraphicsColumn",
	LineFeed:           "LineFeed",
	EndOfLine:          "EndOfLine",
	ResetPrinter:       "ResetPrinter",
	SelfTest:           "SelfTest",
	SetExpanded:        "SetExpanded",
	SetUnderline:       "SetUnderline",
	SetCodePage:        "SetCodePage",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is one drawing or control step produced by the decoder.
//
// DrawGlyph carries the character byte in Value together with the attributes
// that were active when it was decoded. DrawGraphicsColumn carries the column
// mask in Value. SetExpanded and SetUnderline carry the new setting in Flag.
type Action struct {
	Kind      ActionKind
	Value     byte
	Flag      bool
	CodePage  font.CodePage
	Expanded  bool
	Underline bool
}

func (a Action) String() string {
	switch a.Kind {
	case DrawGlyph:
		return fmt.Sprintf("%s(%d %s expanded=%v underline=%v)", a.Kind, a.Value, a.CodePage, a.Expanded, a.Underline)
	case DrawGraphicsColumn:
		return fmt.Sprintf("%s(%08b)", a.Kind, a.Value)
	case SetExpanded, SetUnderline:
		return fmt.Sprintf("%s(%v)", a.Kind, a.Flag)
	case SetCodePage:
		return fmt.Sprintf("%s(%s)", a.Kind, a.CodePage)
	default:
		return a.Kind.String()
	}
}
