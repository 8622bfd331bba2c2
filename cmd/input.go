package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/paper"
	"tomgalvin.uk/hp82240/internal/protocol"
)

// readInput returns the printer stream for a command: text given on the
// command line, the named file, or standard input when the name is "-" or
// missing.
func readInput(args []string, text string, page font.CodePage) ([]byte, error) {
	if text != "" {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		return protocol.Text(page, text), nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("Couldn't read standard input:\n%w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("Couldn't read printer stream:\n%w", err)
	}
	return data, nil
}

func parseCodePage(name string) (font.CodePage, error) {
	switch strings.ToLower(name) {
	case "roman8", "":
		return font.Roman8, nil
	case "ecma94", "latin1":
		return font.ECMA94, nil
	}
	return 0, fmt.Errorf("Unknown code page %q, expected roman8 or ecma94", name)
}

// printSession prints data on a fresh paper session built from the configured
// geometry.
func printSession(g paper.Geometry, data []byte) (*paper.Session, error) {
	s, err := paper.NewSession(logger.With("src", "paper"), g)
	if err != nil {
		return nil, err
	}
	s.Append(data)
	return s, nil
}
