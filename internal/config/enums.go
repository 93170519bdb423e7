package config

import (
	"fmt"
	"strings"
)

// BracketStyle selects the pair of characters wrapped around a prefix.
type BracketStyle int

const (
	BracketsNone BracketStyle = iota
	BracketsRound
	BracketsSquare
	BracketsCurly
	BracketsAngle
)

var bracketTable = [...]struct {
	name        string
	open, close string
}{
	BracketsNone:   {"none", "", ""},
	BracketsRound:  {"round", "(", ")"},
	BracketsSquare: {"square", "[", "]"},
	BracketsCurly:  {"curly", "{", "}"},
	BracketsAngle:  {"angle", "<", ">"},
}

// ParseBrackets maps a case-insensitive style name to a BracketStyle.
// "empty" is accepted as a synonym for "none".
func ParseBrackets(s string) (BracketStyle, error) {
	name := strings.ToLower(s)
	if name == "empty" {
		return BracketsNone, nil
	}
	for style, entry := range bracketTable {
		if entry.name == name {
			return BracketStyle(style), nil
		}
	}
	return BracketsNone, fmt.Errorf("unknown brackets type %q", s)
}

func (b BracketStyle) String() string {
	if b < 0 || int(b) >= len(bracketTable) {
		return fmt.Sprintf("BracketStyle(%d)", int(b))
	}
	return bracketTable[b].name
}

// Wrap encloses s in the bracket pair. Unknown styles leave s unchanged.
func (b BracketStyle) Wrap(s string) string {
	if b <= BracketsNone || int(b) >= len(bracketTable) {
		return s
	}
	entry := bracketTable[b]
	return entry.open + s + entry.close
}

// LineBreakMode selects how line breaks in the input are rewritten.
type LineBreakMode int

const (
	// LineBreakUnmodified passes break characters through untouched.
	LineBreakUnmodified LineBreakMode = iota
	LineBreakCR
	LineBreakLF
	LineBreakCRLF
	LineBreakLFCR
)

var lineBreakTable = [...]struct {
	name     string
	sequence string
}{
	LineBreakUnmodified: {"original", ""},
	LineBreakCR:         {"r", "\r"},
	LineBreakLF:         {"n", "\n"},
	LineBreakCRLF:       {"rn", "\r\n"},
	LineBreakLFCR:       {"nr", "\n\r"},
}

// ParseLineBreak maps a case-insensitive mode name (r, n, rn, nr or
// original) to a LineBreakMode.
func ParseLineBreak(s string) (LineBreakMode, error) {
	name := strings.ToLower(s)
	for mode, entry := range lineBreakTable {
		if entry.name == name {
			return LineBreakMode(mode), nil
		}
	}
	return LineBreakUnmodified, fmt.Errorf("unknown line-break type %q", s)
}

func (m LineBreakMode) String() string {
	if m < 0 || int(m) >= len(lineBreakTable) {
		return fmt.Sprintf("LineBreakMode(%d)", int(m))
	}
	return lineBreakTable[m].name
}

// Sequence returns the bytes written in place of a line break. It is empty
// for LineBreakUnmodified.
func (m LineBreakMode) Sequence() string {
	if m < 0 || int(m) >= len(lineBreakTable) {
		return ""
	}
	return lineBreakTable[m].sequence
}

// Normalizes reports whether input line breaks are replaced.
func (m LineBreakMode) Normalizes() bool {
	return m.Sequence() != ""
}
